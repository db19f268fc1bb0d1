// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package partialdate

import "cmp"

// Equal returns true if both the date and the precision are identical.
// Two values for the same day at different precisions are not equal.
func (pd PartialDate) Equal(other PartialDate) bool {
	return pd.date == other.date && pd.precision == other.precision
}

// AtOrAfter returns true if pd's date is at or after other's date and pd's
// precision rank is at or above other's. Precision ranks are the Precision
// integer values, so a circa date outranks a day one when the normalized
// dates coincide. Note that this is a partial order: values whose date and
// precision orderings disagree are not comparable and AtOrAfter is false
// in both directions.
func (pd PartialDate) AtOrAfter(other PartialDate) bool {
	return !pd.date.Before(other.date) && pd.precision >= other.precision
}

// After is like AtOrAfter but excludes equal values.
func (pd PartialDate) After(other PartialDate) bool {
	return pd.AtOrAfter(other) && !pd.Equal(other)
}

// Compare orders by date and then by precision rank, imposing the total
// order used for sorting. It agrees with AtOrAfter wherever AtOrAfter
// defines an ordering.
func (pd PartialDate) Compare(other PartialDate) int {
	switch {
	case pd.date.Before(other.date):
		return -1
	case pd.date.After(other.date):
		return 1
	}
	return cmp.Compare(pd.precision, other.precision)
}
