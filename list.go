// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package partialdate

import (
	"slices"
	"strings"
)

type PartialDateList []PartialDate

// Parse a comma separated list of partial dates. An empty value leaves the
// list unchanged.
func (pl *PartialDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	l := make(PartialDateList, 0, len(parts))
	for _, part := range parts {
		var pd PartialDate
		if err := pd.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		l = append(l, pd)
	}
	*pl = l
	return nil
}

func (pl PartialDateList) String() string {
	var out strings.Builder
	for i, pd := range pl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(pd.String())
	}
	return out.String()
}

func (pl PartialDateList) Contains(pd PartialDate) bool {
	for _, p := range pl {
		if p.Equal(pd) {
			return true
		}
	}
	return false
}

// Sort sorts the list in place by date and then by precision rank.
func (pl PartialDateList) Sort() {
	slices.SortFunc(pl, PartialDate.Compare)
}
