// Package normalize canonicalises lines read from hand-maintained pool files.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Line folds a raw line into the form identity numbers are stored in.
// It NFKC-normalizes (full-width digits and letters become ASCII),
// strips a byte order mark and all whitespace, and upper-cases a
// trailing check character 'x'.
func Line(s string) string {
	s = norm.NFKC.String(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\ufeff' {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	if strings.HasSuffix(s, "x") {
		s = s[:len(s)-1] + "X"
	}
	return s
}
