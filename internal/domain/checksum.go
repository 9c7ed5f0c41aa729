package domain

import (
	"fmt"
)

// PrefixLength is the number of digits covered by the check character.
const PrefixLength = 17

// checkWeights are the positional weights applied to digits 1 through 17.
var checkWeights = [PrefixLength]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

// checkChars maps the weighted sum modulo 11 to the check character.
const checkChars = "10X98765432"

// CheckChar computes the 18th character for a 17-digit prefix.
// The result is one of '0'-'9' or 'X'.
func CheckChar(prefix string) (byte, error) {
	if len(prefix) != PrefixLength {
		return 0, fmt.Errorf("%w: prefix has %d characters, want %d", ErrLength, len(prefix), PrefixLength)
	}
	sum := 0
	for i := 0; i < PrefixLength; i++ {
		c := prefix[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q at position %d", ErrNonDigit, c, i+1)
		}
		sum += int(c-'0') * checkWeights[i]
	}
	return checkChars[sum%11], nil
}

// Complete appends the check character to a 17-digit prefix.
func Complete(prefix string) (ID, error) {
	c, err := CheckChar(prefix)
	if err != nil {
		return "", err
	}
	return ID(prefix + string(c)), nil
}

// VerifyChecksum reports whether the 18th character of s matches the
// check character computed from its first 17 digits. Malformed input
// is never valid.
func VerifyChecksum(s string) bool {
	if len(s) != Length {
		return false
	}
	c, err := CheckChar(s[:PrefixLength])
	if err != nil {
		return false
	}
	return s[PrefixLength] == c
}
