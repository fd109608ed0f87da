package emission

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeScopeNumber coerces any scope representation ("2", "Scope 2", 2)
// into a canonical scope number. Substrings are checked in the order
// "1", "2", "3", so "Scope 12" resolves to 1; downstream fixtures rely on
// that ordering. Unparseable input yields 0 (unclassified).
func NormalizeScopeNumber(value any) int {
	if value == nil {
		return 0
	}
	s := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", value)))
	switch {
	case strings.Contains(s, "1"):
		return 1
	case strings.Contains(s, "2"):
		return 2
	case strings.Contains(s, "3"):
		return 3
	}
	return int(AsNumber(value))
}

// NormalizeScopeLabel returns a display label such as "Scope 2". Input that
// already carries the word "scope" passes through trimmed.
func NormalizeScopeLabel(value any) string {
	s := strings.TrimSpace(fmt.Sprintf("%v", value))
	if strings.Contains(strings.ToLower(s), "scope") {
		return s
	}
	return "Scope " + s
}

// AsNumber coerces any numeric-like value into a finite float64. nil,
// unparseable strings, NaN and infinities all collapse to 0; it never panics.
func AsNumber(value any) float64 {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0
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
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(fmt.Sprintf("%v", value)), 64)
		if err != nil {
			return 0
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToMetricTons converts kilograms of CO2e to metric tons.
func ToMetricTons(kilograms any) float64 {
	return AsNumber(kilograms) / 1000
}

// Round2 rounds half away from zero to two decimal places. The nudge
// compensates for binary representations of decimal midpoints such as
// 1.005, which sit a hair below x.xx5 as float64.
func Round2(value float64) float64 {
	return math.Round(value*100+math.Copysign(1e-9, value)) / 100
}
