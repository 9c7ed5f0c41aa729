package seed_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/eykd/hpvdraw/internal/seed"
)

func TestGenerate_FormatsBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "zeros",
			input: []byte{0, 0, 0, 0, 0, 0, 0, 0},
			want:  "pcg:00000000:00000000",
		},
		{
			name:  "sequential",
			input: []byte{1, 2, 3, 4, 0xa, 0xb, 0xc, 0xd},
			want:  "pcg:01020304:0a0b0c0d",
		},
		{
			name:  "extra bytes ignored",
			input: []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 1, 9, 9},
			want:  "pcg:ffffffff:00000001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seed.Generate(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Generate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerate_ShortReader(t *testing.T) {
	_, err := seed.Generate(bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Fatal("expected error for short reader, got nil")
	}
}

func TestGenerate_RoundTripsThroughParse(t *testing.T) {
	s, err := seed.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := seed.Parse(s); err != nil {
		t.Errorf("Parse(%q) error = %v", s, err)
	}
}

func TestParse_Deterministic(t *testing.T) {
	a, err := seed.Parse("pcg:1:2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := seed.Parse("pcg:00000001:00000002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}

func TestParse_RejectsBadFormat(t *testing.T) {
	tests := []string{
		"",
		"1:2",
		"pcg:1",
		"pcg:xyz:1",
		"pcg:123456789:1",
		"mt:1:2",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := seed.Parse(s)
			if !errors.Is(err, seed.ErrFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrFormat", s, err)
			}
		})
	}
}
