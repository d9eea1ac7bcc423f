package utils

import "unicode"

// IsStrongPassword requires at least 8 characters with an upper-case letter,
// a lower-case letter and a digit.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// IsPhone accepts E.164-like numbers: optional leading +, 8 to 15 digits.
func IsPhone(phone string) bool {
	if phone == "" {
		return false
	}
	digits := phone
	if digits[0] == '+' {
		digits = digits[1:]
	}
	if len(digits) < 8 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
