package draw

import (
	"errors"
	"fmt"
)

// ErrNoSource is returned when a draw has neither a simulation count nor an input file.
var ErrNoSource = errors.New("no data source: give --sim greater than zero or --input <file>")

// Source is where a draw's pool comes from. It is either a
// SimulatedSource or a FileSource.
type Source interface {
	fmt.Stringer
	isSource()
}

// SimulatedSource generates Count fresh numbers.
type SimulatedSource struct {
	Count int
}

func (SimulatedSource) isSource() {}

func (s SimulatedSource) String() string { return fmt.Sprintf("simulated(%d)", s.Count) }

// FileSource loads numbers from a newline-delimited file.
type FileSource struct {
	Path string
}

func (FileSource) isSource() {}

func (s FileSource) String() string { return "file(" + s.Path + ")" }

// ResolveSource picks the pool source. An input path wins over a
// simulation count, since the count always carries a default. A zero
// count with no path is a usage error; a negative count is passed on so
// the simulator can reject it.
func ResolveSource(sim int, input string) (Source, error) {
	if input != "" {
		return FileSource{Path: input}, nil
	}
	if sim == 0 {
		return nil, ErrNoSource
	}
	return SimulatedSource{Count: sim}, nil
}
