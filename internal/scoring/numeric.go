package scoring

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// NumericValue extracts a usable numeric interpretation from a dynamic answer
// value. Strings are parsed with leading-prefix semantics, so "4abc" is the
// number 4. Lenient on purpose, downstream instruments rely on it.
// Booleans, nulls and string sets have no numeric interpretation.
func NumericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, isFinite(n)
	case int:
		return float64(n), true
	case string:
		return parseLeadingFloat(n)
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// parseLeadingFloat parses the longest numeric prefix of s: optional sign,
// decimal digits with at most one dot, then an optional exponent. Returns
// false when no digits are present or the result is not finite.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := false
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, false
	}

	// The exponent only counts if at least one digit follows it.
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

// ValueKey renders an answer value the way a JSON rule table keys it:
// numbers without trailing zeros, booleans as "true"/"false", string sets
// joined with commas.
func ValueKey(v interface{}) string {
	switch k := v.(type) {
	case string:
		return k
	case float64:
		return strconv.FormatFloat(k, 'f', -1, 64)
	case int:
		return strconv.Itoa(k)
	case bool:
		return strconv.FormatBool(k)
	case []string:
		return strings.Join(k, ",")
	case []interface{}:
		parts := make([]string, len(k))
		for i, e := range k {
			parts[i] = ValueKey(e)
		}
		return strings.Join(parts, ",")
	case nil:
		return "null"
	default:
		return ""
	}
}
