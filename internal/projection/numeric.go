package projection

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Amount is a monetary field as it arrives in a snapshot. JSON strings,
// numbers, bools and null all decode; the raw text is kept and read by
// ToNumber, so a malformed amount counts as 0 instead of failing the decode.
type Amount string

// UnmarshalJSON accepts any JSON value.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

// ToNumber coerces a monetary field to float64.
// Missing or malformed values yield 0, never an error. Strings are read the way
// a browser's parseFloat reads them: leading whitespace is ignored and the
// longest numeric prefix wins, so "12.5kg" is 12.5 and "abc" is 0.
func ToNumber(value any) float64 {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0
	case string:
		f = parseLeadingFloat(v)
	case Amount:
		f = parseLeadingFloat(string(v))
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		f = parseLeadingFloat(fmt.Sprint(v))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	n := numericPrefixLen(s)
	if n == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		// out of range parses to ±Inf which is not a usable amount
		return 0
	}
	return f
}

// numericPrefixLen returns the length of the longest prefix of s matching
// [+-]?(digits[.digits]|.digits)([eE][+-]?digits)?
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissaDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissaDigits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if mantissaDigits > 0 || frac > 0 {
			i = j
			mantissaDigits += frac
		}
	}
	if mantissaDigits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
