// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package partialdate provides support for dates that are known only to a
// given precision: a year, a month, a day, or an approximate "circa" year.
// Such dates are common in genealogical, archival and bibliographic data
// where a record may state no more than "circa 1850" or "1999-02".
package partialdate

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Precision records how much of a date is meaningful.
type Precision int

const (
	Year  Precision = 0
	Month Precision = 1
	Day   Precision = 2
	// Circa represents the least certainty and a lower value than Year
	// would be more natural, but stored data already encodes 3 and sorts
	// circa dates above day ones. Changing the value would disturb every
	// ordering that is already persisted.
	Circa Precision = 3
)

func (p Precision) String() string {
	switch p {
	case Year:
		return "year"
	case Month:
		return "month"
	case Circa:
		return "circa"
	}
	return "day"
}

// canonical coerces any unrecognized value to Day. Persisted data may carry
// arbitrary integers in the precision slot and callers rely on them being
// accepted, so this is a deliberate silent coercion rather than an error.
func (p Precision) canonical() Precision {
	switch p {
	case Year, Month, Day, Circa:
		return p
	}
	return Day
}

// PartialDate is a calendar date tagged with the precision to which it is
// known. The date is always fully populated; components hidden by the
// precision are normalized to 1, so "1999-02" is held as 1999-02-01 with
// month precision. The zero value represents no date at all and formats as
// the empty string.
type PartialDate struct {
	date      civil.Date
	precision Precision
}

// New returns a PartialDate for the given date and precision. The date must
// be a valid calendar date. Components below the precision are normalized:
// month precision resets the day to 1, year and circa precision reset both
// month and day to 1. An unrecognized precision is coerced to Day.
func New(date civil.Date, precision Precision) (PartialDate, error) {
	if !date.IsValid() {
		return PartialDate{}, fmt.Errorf("%v is not a valid calendar date", date)
	}
	precision = precision.canonical()
	switch precision {
	case Month:
		date.Day = 1
	case Year, Circa:
		date.Month = time.January
		date.Day = 1
	}
	return PartialDate{date: date, precision: precision}, nil
}

// Date returns the fully populated calendar date, with any components
// hidden by the precision normalized to 1.
func (pd PartialDate) Date() civil.Date {
	return pd.date
}

// Precision returns the precision to which the date is known.
func (pd PartialDate) Precision() Precision {
	return pd.precision
}

// WithPrecision returns a copy of pd re-tagged with the given precision,
// re-normalized as for New.
func (pd PartialDate) WithPrecision(precision Precision) (PartialDate, error) {
	return New(pd.date, precision)
}

// IsZero returns true if no date is set.
func (pd PartialDate) IsZero() bool {
	return pd == PartialDate{}
}

func (pd PartialDate) IsYear() bool {
	return pd.precision == Year
}

func (pd PartialDate) IsMonth() bool {
	return pd.precision == Month
}

func (pd PartialDate) IsDay() bool {
	return pd.precision == Day
}

func (pd PartialDate) IsCirca() bool {
	return pd.precision == Circa
}
