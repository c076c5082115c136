package helpers

import (
	"strings"
)

// normalizeDigits strips common formatting separators (hyphens, spaces) and
// returns the remaining string plus whether it is all digits.
func normalizeDigits(value string) (string, bool) {
	var b strings.Builder
	for _, c := range value {
		switch {
		case c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '-' || c == ' ':
			// formatting separator, dropped
		default:
			return "", false
		}
	}
	return b.String(), true
}

// IsSSNValid checks if the provided string is a structurally valid Social
// Security number. It verifies:
// 1. Exactly 9 digits after removing formatting separators
// 2. The area number (first 3 digits) is not 000, 666, or 900-999
// 3. The group (digits 4-5) is not 00 and the serial (last 4) is not 0000
// 4. The number is not a single repeated digit
// Malformed input returns false, never an error.
func IsSSNValid(ssn string) bool {
	digits, ok := normalizeDigits(ssn)
	if !ok || len(digits) != 9 {
		return false
	}

	area := digits[0:3]
	if area == "000" || area == "666" || digits[0] == '9' {
		return false
	}
	if digits[3:5] == "00" || digits[5:9] == "0000" {
		return false
	}

	// Reject a single repeated digit (e.g. 111-11-1111)
	same := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			same = false
			break
		}
	}
	return !same
}

// IsEINValid checks if the provided string is a structurally valid Employer
// Identification number: 2 digits, hyphen, 7 digits. A bare 9-digit string
// is accepted as the unformatted equivalent.
func IsEINValid(ein string) bool {
	trimmed := strings.TrimSpace(ein)
	if len(trimmed) == 10 {
		if trimmed[2] != '-' {
			return false
		}
		trimmed = trimmed[:2] + trimmed[3:]
	}
	if len(trimmed) != 9 {
		return false
	}
	for _, c := range trimmed {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsRoutingNumberValid checks if the provided string is a valid ABA bank
// routing number: exactly 9 digits whose weighted checksum
// 3(d1+d4+d7) + 7(d2+d5+d8) + (d3+d6+d9) is divisible by 10.
// Malformed or non-digit input returns false, never an error.
func IsRoutingNumberValid(routing string) bool {
	if len(routing) != 9 {
		return false
	}
	for _, c := range routing {
		if c < '0' || c > '9' {
			return false
		}
	}

	d := func(i int) int { return int(routing[i] - '0') }
	checksum := 3*(d(0)+d(3)+d(6)) + 7*(d(1)+d(4)+d(7)) + (d(2) + d(5) + d(8))
	return checksum%10 == 0
}

// IsBankAccountNumberValid checks a US bank account number: 4 to 17 digits.
func IsBankAccountNumberValid(account string) bool {
	if len(account) < 4 || len(account) > 17 {
		return false
	}
	for _, c := range account {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsZipValid checks a US ZIP code: 5 digits, optionally followed by a
// hyphen and 4 digits.
func IsZipValid(zip string) bool {
	switch len(zip) {
	case 5:
		return allDigits(zip)
	case 10:
		return allDigits(zip[:5]) && zip[5] == '-' && allDigits(zip[6:])
	default:
		return false
	}
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
