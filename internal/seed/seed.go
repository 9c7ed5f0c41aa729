// Package seed creates and parses the textual seeds that make a draw reproducible.
package seed

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"regexp"
	"strconv"
)

// ErrFormat is returned by Parse for seeds that do not match
// 'pcg:<1-8 hex digits>:<1-8 hex digits>'.
var ErrFormat = errors.New("seed doesn't match format 'pcg:<1-8 hex digits>:<1-8 hex digits>'")

var pattern = regexp.MustCompile(`^pcg:([0-9a-fA-F]{1,8}):([0-9a-fA-F]{1,8})$`)

// Generate reads eight bytes from r and formats them as a PCG seed string.
func Generate(r io.Reader) (string, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	hi := binary.BigEndian.Uint32(buf[:4])
	lo := binary.BigEndian.Uint32(buf[4:])
	return fmt.Sprintf("pcg:%08x:%08x", hi, lo), nil
}

// Parse turns a seed string into a seeded generator.
func Parse(s string) (*rand.Rand, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	s1, err := strconv.ParseUint(m[1], 16, 64)
	if err != nil {
		return nil, err
	}
	s2, err := strconv.ParseUint(m[2], 16, 64)
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(s1, s2)), nil
}
