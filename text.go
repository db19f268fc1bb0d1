// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package partialdate

// MarshalText implements encoding.TextMarshaler using the canonical wire
// format. The zero value marshals as the empty string.
func (pd PartialDate) MarshalText() ([]byte, error) {
	return []byte(pd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the
// zero value rather than an error so that optional fields round trip.
func (pd *PartialDate) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*pd = PartialDate{}
		return nil
	}
	return pd.Parse(string(data))
}
