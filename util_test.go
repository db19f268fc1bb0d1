// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package partialdate_test

import (
	"time"

	"cloud.google.com/go/civil"
	"cloudeng.io/partialdate"
)

func newDate(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

func newPartialDate(y, m, d int, p partialdate.Precision) partialdate.PartialDate {
	pd, err := partialdate.New(newDate(y, m, d), p)
	if err != nil {
		panic(err)
	}
	return pd
}
