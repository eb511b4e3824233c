package vybe

import (
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that tolerates the API's mixed numeric encodings:
// the same field may arrive as a JSON number, a quoted decimal string,
// or null depending on the endpoint. Anything unparsable or non-finite
// decodes to 0 so arithmetic and formatting never see a NaN.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

// Float returns the coerced value.
func (n Number) Float() float64 { return float64(n) }
