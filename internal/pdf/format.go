package pdf

import (
	"fmt"
	"strings"
)

// FormatINR formats an amount with Indian digit grouping: the last three
// digits stand alone, every group before that has two digits.
// 1234567.5 renders as "12,34,567.50".
func FormatINR(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	intPart := s[:len(s)-3]
	decPart := s[len(s)-3:]

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(groups, ",") + "," + tail
	}

	out := intPart + decPart
	if neg {
		out = "-" + out
	}
	return out
}
