package validators

import "strings"

// NormalizePhone strips formatting characters so that
// "+380 (67) 111-22-33" and "+380671112233" compare equal.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	p := NormalizePhone(phone)

	digits := p
	if strings.HasPrefix(p, "+") {
		digits = p[1:]
	}

	return len(digits) >= 9 && len(digits) <= 15
}
