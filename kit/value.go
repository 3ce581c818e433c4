// SPDX-License-Identifier: EPL-2.0

package kit

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Flag is a boolean that also accepts the strings "true" and "false".
// Any other value decodes as false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w", err)
	}

	switch x := v.(type) {
	case bool:
		*f = Flag(x)
	case string:
		*f = x == "true"
	default:
		*f = false
	}

	return nil
}

// Number is a float64 that also accepts numeric strings. Anything that
// is not a finite number, including null and "", decodes as zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w", err)
	}

	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err == nil {
			f = parsed
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	*n = Number(f)

	return nil
}

func (n Number) Float() float64 { return float64(n) }
func (n Number) Int() int       { return int(n) }
