package twilio

import (
	"fmt"
	"strings"
)

// NormalizePhone converts US phone numbers to E.164. Ten digits get a +1
// prefix, eleven digits must start with 1. Anything already in +<digits>
// form passes through unchanged.
func NormalizePhone(number string) (string, error) {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return "", fmt.Errorf("empty phone number")
	}
	if strings.HasPrefix(trimmed, "+") && len(digitsOf(trimmed)) == len(trimmed)-1 {
		return trimmed, nil
	}

	digits := digitsOf(trimmed)
	switch {
	case len(digits) == 10:
		return "+1" + digits, nil
	case len(digits) == 11 && digits[0] == '1':
		return "+" + digits, nil
	default:
		return "", fmt.Errorf("unrecognized phone number format: %q", number)
	}
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
