package utils

import (
	"strconv"
	"strings"
)

// ParseAmount parses a loosely formatted monetary string into a float.
// It tolerates currency symbols and both European ("1.234,56") and US
// ("1,234.56") separator conventions. Unparsable input yields 0.0, never an
// error; callers reject zero amounts through the item validity check.
func ParseAmount(raw string) float64 {
	var cleaned strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			cleaned.WriteRune(r)
		}
	}

	s := cleaned.String()
	if s == "" {
		return 0.0
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// The separator appearing last is the decimal point.
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		// A single comma followed by exactly two digits is a decimal point,
		// anything else is thousands separators.
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) == 2 {
			s = parts[0] + "." + parts[1]
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return amount
}
