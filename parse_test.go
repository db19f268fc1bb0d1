// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package partialdate_test

import (
	"strings"
	"testing"

	"cloudeng.io/partialdate"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		val       string
		date      string
		precision partialdate.Precision
	}{
		{"2020", "2020-01-01", partialdate.Year},
		{"12345", "12345-01-01", partialdate.Year},
		{"2020-5", "2020-05-01", partialdate.Month},
		{"2020-05", "2020-05-01", partialdate.Month},
		{"1999-2-3", "1999-02-03", partialdate.Day},
		{"1999-02-03", "1999-02-03", partialdate.Day},
		{"2020-02-29", "2020-02-29", partialdate.Day},
		{"circa 1850", "1850-01-01", partialdate.Circa},
		{"CIRCA 1850", "1850-01-01", partialdate.Circa},
		{"c. 1850", "1850-01-01", partialdate.Circa},
		{"c.1850", "1850-01-01", partialdate.Circa},
		{"c 1850", "1850-01-01", partialdate.Circa},
		{"c1850", "1850-01-01", partialdate.Circa},
		{"C. 1850", "1850-01-01", partialdate.Circa},
	} {
		pd, err := partialdate.Parse(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := pd.Date().String(), tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		if got, want := pd.Precision(), tc.precision; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, tc := range []struct {
		val string
	}{
		{""},
		{"not-a-date"},
		{"2020-13"},
		{"2020-0"},
		{"2020-02-30"},
		{"2020-1-32"},
		{"2020-05-17-01"},
		{"-2020"},
		{" 2020"},
		{"2020 "},
		{"circa"},
		{"c. "},
		{"circa 1850-05"},
		{"2020/05/17"},
	} {
		_, err := partialdate.Parse(tc.val)
		if err == nil {
			t.Errorf("failed to return an error: %q", tc.val)
			continue
		}
		if !strings.Contains(err.Error(), "YYYY-MM-DD") {
			t.Errorf("%q: error does not name the accepted formats: %v", tc.val, err)
		}
	}
}

func TestParseScenarios(t *testing.T) {
	pd, err := partialdate.Parse("c. 1850")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := pd.Date(), newDate(1850, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !pd.IsCirca() {
		t.Errorf("expected circa precision, got %v", pd.Precision())
	}
	if got, want := pd.String(), "c. 1850"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	pd, err = partialdate.Parse("1999-02")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := pd.Date(), newDate(1999, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !pd.IsMonth() {
		t.Errorf("expected month precision, got %v", pd.Precision())
	}
	if got, want := pd.String(), "1999-02"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		val       string
		canonical string
	}{
		{"2020", "2020"},
		{"1999-1", "1999-01"},
		{"1999-01", "1999-01"},
		{"1999-1-2", "1999-01-02"},
		{"1999-01-02", "1999-01-02"},
		{"c. 1850", "c. 1850"},
		{"c.1850", "c. 1850"},
		{"circa 1850", "c. 1850"},
	} {
		pd, err := partialdate.Parse(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := pd.String(), tc.canonical; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		again, err := partialdate.Parse(pd.String())
		if err != nil {
			t.Errorf("failed to reparse %q: %v", pd.String(), err)
			continue
		}
		if !again.Equal(pd) {
			t.Errorf("%v: reparsing %q yielded %v", tc.val, pd.String(), again)
		}
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	_ = partialdate.MustParse("13-2020")
}
