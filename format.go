// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package partialdate

import "time"

// Layouts specifies the time layouts, in time.Layout's reference notation,
// used to render a partial date at each precision. Empty fields fall back
// to the corresponding DefaultLayouts field.
type Layouts struct {
	Year  string
	Month string
	Day   string
	Circa string
}

// DefaultLayouts render the canonical wire format: zero padded numeric
// components separated by '-' and a leading 'c. ' marker for circa dates.
var DefaultLayouts = Layouts{
	Year:  "2006",
	Month: "2006-01",
	Day:   "2006-01-02",
	Circa: "c. 2006",
}

// Format renders the date using the layout selected by its precision.
// Day is the fallback for any precision without a more specific layout.
// The zero value renders as the empty string.
func (pd PartialDate) Format(layouts Layouts) string {
	if pd.IsZero() {
		return ""
	}
	var layout, fallback string
	switch {
	case pd.IsYear():
		layout, fallback = layouts.Year, DefaultLayouts.Year
	case pd.IsMonth():
		layout, fallback = layouts.Month, DefaultLayouts.Month
	case pd.IsCirca():
		layout, fallback = layouts.Circa, DefaultLayouts.Circa
	default:
		layout, fallback = layouts.Day, DefaultLayouts.Day
	}
	if layout == "" {
		layout = fallback
	}
	return pd.date.In(time.UTC).Format(layout)
}

// String returns the canonical form, ie. Format(DefaultLayouts).
func (pd PartialDate) String() string {
	return pd.Format(DefaultLayouts)
}
