// models/flexint.go
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt is an integer identifier that tolerates the two encodings
// found in stored documents: JSON numbers and numeric strings. Plan and
// day ids, and the event fields that reference them, all use it so the
// join compares values rather than representations.
type FlexInt int64

func (f FlexInt) Int() int64 { return int64(f) }

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			// Some clients send "2.0"; accept and truncate.
			fl, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil {
				return err
			}
			n = int64(fl)
		}
		*f = FlexInt(n)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	n, err := num.Int64()
	if err != nil {
		fl, ferr := num.Float64()
		if ferr != nil {
			return err
		}
		n = int64(fl)
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}
