package validators

import (
	"regexp"
	"strings"
)

var (
	ssnPattern    = regexp.MustCompile(`^(\d{3}-\d{2}-\d{4}|\d{9})$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// IsDigits reports whether s is non-empty and consists of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsRoutingNumber reports whether s is a 9-digit ABA routing number.
func IsRoutingNumber(s string) bool {
	return len(s) == 9 && IsDigits(s)
}

// IsCVV reports whether s is a 3 or 4 digit card security code.
func IsCVV(s string) bool {
	return (len(s) == 3 || len(s) == 4) && IsDigits(s)
}

// IsAccountNumber reports whether s is a 4 to 17 digit bank account number.
func IsAccountNumber(s string) bool {
	return len(s) >= 4 && len(s) <= 17 && IsDigits(s)
}

// IsCardNumber reports whether s is a 12 to 19 digit number passing the
// Luhn checksum. Spaces and dashes between digit groups are ignored.
func IsCardNumber(s string) bool {
	digits := stripSeparators(s)
	if len(digits) < 12 || len(digits) > 19 || !IsDigits(digits) {
		return false
	}
	return Luhn(digits)
}

// Luhn reports whether the digit string s passes the Luhn checksum.
func Luhn(s string) bool {
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// IsExpiryDate reports whether s has the MM/YY form with a valid month.
func IsExpiryDate(s string) bool {
	return expiryPattern.MatchString(s)
}

// IsSSN reports whether s is DDD-DD-DDDD or nine bare digits.
func IsSSN(s string) bool {
	return ssnPattern.MatchString(s)
}

// IsPhone reports whether s holds 7 to 15 digits, optionally separated by
// spaces, dashes, dots or parentheses and led by a '+'.
func IsPhone(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	digits := strings.NewReplacer("(", "", ")", "", ".", "").Replace(stripSeparators(s))
	return len(digits) >= 7 && len(digits) <= 15 && IsDigits(digits)
}

func stripSeparators(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}
