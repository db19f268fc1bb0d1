// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package partialdate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

var (
	plainRe = regexp.MustCompile(`^(\d+)(?:-(\d{1,2}))?(?:-(\d{1,2}))?$`)
	circaRe = regexp.MustCompile(`^(?i:circa|c\.?)\s*(\d+)$`)
)

const expectedPartialDateFormats = "YYYY, YYYY-MM, YYYY-MM-DD, c. YYYY or circa YYYY"

func parseError(value string) error {
	return fmt.Errorf("invalid partial date %q, expected %s", value, expectedPartialDateFormats)
}

// Parse parses a partial date in the formats 'YYYY', 'YYYY-MM',
// 'YYYY-MM-DD', 'c. YYYY' or 'circa YYYY'. The year may have any number of
// digits, month and day one or two. The circa marker is case insensitive
// and accepts 'circa', 'c.' or 'c' with optional whitespace before the
// year. The precision is determined by the rightmost segment present.
func Parse(value string) (PartialDate, error) {
	if m := circaRe.FindStringSubmatch(value); m != nil {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			return PartialDate{}, parseError(value)
		}
		return New(civil.Date{Year: year, Month: time.January, Day: 1}, Circa)
	}
	m := plainRe.FindStringSubmatch(value)
	if m == nil {
		return PartialDate{}, parseError(value)
	}
	date := civil.Date{Month: time.January, Day: 1}
	precision := Year
	var err error
	if date.Year, err = strconv.Atoi(m[1]); err != nil {
		return PartialDate{}, parseError(value)
	}
	if m[2] != "" {
		month, err := strconv.Atoi(m[2])
		if err != nil {
			return PartialDate{}, parseError(value)
		}
		date.Month = time.Month(month)
		precision = Month
	}
	if m[3] != "" {
		if date.Day, err = strconv.Atoi(m[3]); err != nil {
			return PartialDate{}, parseError(value)
		}
		precision = Day
	}
	if !date.IsValid() {
		return PartialDate{}, parseError(value)
	}
	return New(date, precision)
}

// MustParse is like Parse but panics on error. It is intended for
// initializing package level values from literals known to be valid.
func MustParse(value string) PartialDate {
	pd, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return pd
}

// Parse parses value as for the package level Parse function.
func (pd *PartialDate) Parse(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}
	*pd = parsed
	return nil
}
