// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sqlstore maps partial dates onto a single SQL datetime column.
// The date part of the stored timestamp carries the normalized date and the
// seconds field carries the precision tag (0=year, 1=month, 2=day,
// 3=circa), so ordering the column orders the values the same way
// PartialDate.Compare does.
package sqlstore

import (
	"database/sql/driver"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"cloudeng.io/partialdate"
)

// timeLayouts are the textual timestamp forms drivers hand back for
// datetime columns, tried in order before falling back to the partial
// date wire format.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

// NullPartialDate represents a partial date that may be null.
// NullPartialDate implements the sql.Scanner and driver.Valuer interfaces
// so it can be used directly as a scan destination and as a query argument,
// similar to sql.NullTime.
type NullPartialDate struct {
	PartialDate partialdate.PartialDate
	Valid       bool // Valid is false when the column is NULL.
}

// Value implements driver.Valuer, emitting a UTC timestamp whose seconds
// field encodes the precision, or nil for null and zero values.
func (n NullPartialDate) Value() (driver.Value, error) {
	if !n.Valid || n.PartialDate.IsZero() {
		return nil, nil
	}
	d := n.PartialDate.Date()
	sec := int(n.PartialDate.Precision())
	return time.Date(d.Year, d.Month, d.Day, 0, 0, sec, 0, time.UTC), nil
}

// Scan implements sql.Scanner. It accepts nil, a time.Time as produced by
// Value, or text: either a driver rendered timestamp or a partial date in
// the wire format. The empty string scans as null.
func (n *NullPartialDate) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*n = NullPartialDate{}
		return nil
	case time.Time:
		return n.fromTime(v)
	case []byte:
		return n.fromText(string(v))
	case string:
		return n.fromText(v)
	}
	return fmt.Errorf("cannot scan %v (%T) into a partial date", value, value)
}

func (n *NullPartialDate) fromTime(t time.Time) error {
	pd, err := partialdate.New(civil.DateOf(t), partialdate.Precision(t.Second()))
	if err != nil {
		return err
	}
	*n = NullPartialDate{PartialDate: pd, Valid: true}
	return nil
}

func (n *NullPartialDate) fromText(s string) error {
	if s == "" {
		*n = NullPartialDate{}
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return n.fromTime(t)
		}
	}
	pd, err := partialdate.Parse(s)
	if err != nil {
		return err
	}
	*n = NullPartialDate{PartialDate: pd, Valid: true}
	return nil
}

// Convert normalizes a value obtained from user input or a form layer into
// a NullPartialDate for the named field. It accepts nil, a PartialDate, a
// NullPartialDate and a partial date string in the wire format; nil and
// the empty string convert to null. Anything else is an error naming the
// field and the offending value.
func Convert(field string, value any) (NullPartialDate, error) {
	switch v := value.(type) {
	case nil:
		return NullPartialDate{}, nil
	case NullPartialDate:
		return v, nil
	case partialdate.PartialDate:
		return NullPartialDate{PartialDate: v, Valid: !v.IsZero()}, nil
	case string:
		if v == "" {
			return NullPartialDate{}, nil
		}
		pd, err := partialdate.Parse(v)
		if err != nil {
			return NullPartialDate{}, fmt.Errorf("%s: %w", field, err)
		}
		return NullPartialDate{PartialDate: pd, Valid: true}, nil
	}
	return NullPartialDate{}, fmt.Errorf("%s: value must be a partial date, a partial date string or nil, not %v (%T)", field, value, value)
}
