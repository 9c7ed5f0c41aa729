// Package domain holds the identity number value type, its check character
// and the eligibility rule applied during a draw.
package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Length is the number of characters in an identity number.
const Length = 18

// ErrLength is returned when an identity number or prefix has the wrong length.
var ErrLength = errors.New("wrong length")

// ErrNonDigit is returned when a position that must be a digit is not.
var ErrNonDigit = errors.New("non-digit character")

// ErrChecksum is returned when the check character does not match.
var ErrChecksum = errors.New("check character mismatch")

// ID is a validated 18-character identity number. Positions 1-6 hold the
// region code, 7-14 the birth date (YYYYMMDD), 15-17 the sequence number
// and 18 the check character, which may be 'X'. Values must come from
// ParseID or Complete; the accessors assume Length characters.
type ID string

// ParseID validates s and returns it as an ID.
func ParseID(s string) (ID, error) {
	if len(s) != Length {
		return "", fmt.Errorf("%w: %d characters, want %d", ErrLength, len(s), Length)
	}
	c, err := CheckChar(s[:PrefixLength])
	if err != nil {
		return "", err
	}
	if s[PrefixLength] != c {
		return "", fmt.Errorf("%w: got %q, want %q", ErrChecksum, s[PrefixLength], c)
	}
	return ID(s), nil
}

// String returns the identity number text.
func (id ID) String() string { return string(id) }

// Region returns the six-digit region code.
func (id ID) Region() string { return string(id[0:6]) }

// BirthYear returns the year encoded in positions 7-10.
func (id ID) BirthYear() int {
	y, _ := strconv.Atoi(string(id[6:10]))
	return y
}

// BirthMonthDay returns the MMDD group encoded in positions 11-14.
func (id ID) BirthMonthDay() string { return string(id[10:14]) }

// Sequence returns the three-digit sequence group in positions 15-17.
func (id ID) Sequence() string { return string(id[14:17]) }

// SexDigit returns the numeric value of position 17.
func (id ID) SexDigit() int { return int(id[16] - '0') }

// Female reports whether the sex digit is even.
func (id ID) Female() bool { return id.SexDigit()%2 == 0 }

// CheckChar returns the stored 18th character.
func (id ID) CheckChar() byte { return id[PrefixLength] }
