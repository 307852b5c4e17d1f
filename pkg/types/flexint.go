// Package types provides small shared wire types.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that accepts either a JSON number or a numeric
// string on unmarshal. External callers are loosely typed about ids, counts
// and party sizes; normalizing them to int at the boundary keeps every
// internal lookup integer-keyed.
type FlexInt int

// UnmarshalJSON accepts 7, "7" and " 7 ".
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid integer string %q", s)
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// MarshalJSON always writes a plain JSON number.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// Int returns the normalized value.
func (f FlexInt) Int() int {
	return int(f)
}
