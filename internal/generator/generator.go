// Package generator produces synthetic identity numbers field by field.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/eykd/hpvdraw/internal/domain"
)

// ErrInvalidCount is returned when asked to simulate zero or fewer numbers.
var ErrInvalidCount = errors.New("simulation count must be greater than zero")

// RegionCodes are the sub-district prefixes numbers are drawn from.
var RegionCodes = []string{
	"330102",
	"330103",
	"330104",
	"330105",
	"330106",
	"330108",
	"330109",
	"330110",
	"330122",
	"330127",
	"330181",
	"330182",
	"330183",
	"330184",
	"330185",
}

// Age distribution: Beta(2, 5) stretched over [6, 56] and counted back
// from the reference year.
const (
	AgeAlpha      = 2
	AgeBeta       = 5
	AgeMin        = 6
	AgeSpan       = 50
	ReferenceYear = 2019
)

// sampleBounds returns the earliest and latest instants the month/day
// sampler draws between.
func sampleBounds(loc *time.Location) (time.Time, time.Time) {
	return time.Date(1948, time.January, 1, 0, 0, 0, 0, loc),
		time.Date(2018, time.December, 31, 23, 59, 59, 0, loc)
}

// Generator builds identity numbers from an explicit random source.
// It is not safe for concurrent use.
type Generator struct {
	rand     *rand.Rand
	age      distuv.Beta
	loc      *time.Location
	earliest time.Time
	latest   time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithLocation sets the time zone used to read month and day from sampled instants.
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// New creates a Generator drawing from r.
func New(r *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rand: r,
		age:  distuv.Beta{Alpha: AgeAlpha, Beta: AgeBeta, Src: r},
		loc:  time.Local,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.earliest, g.latest = sampleBounds(g.loc)
	return g
}

// Region returns a region code chosen uniformly from RegionCodes.
func (g *Generator) Region() string {
	return RegionCodes[g.rand.IntN(len(RegionCodes))]
}

// Age returns a skewed-young age in [AgeMin, AgeMin+AgeSpan].
func (g *Generator) Age() float64 {
	return AgeMin + AgeSpan*g.age.Rand()
}

// BirthYear returns the four-digit year ReferenceYear minus a truncated Age.
func (g *Generator) BirthYear() string {
	return strconv.Itoa(ReferenceYear - int(g.Age()))
}

// MonthDay returns MMDD of an instant drawn uniformly between the sampler bounds.
// It is independent of BirthYear.
func (g *Generator) MonthDay() string {
	span := g.latest.Sub(g.earliest)
	t := g.earliest.Add(time.Duration(g.rand.Float64() * float64(span)))
	return t.In(g.loc).Format("0102")
}

// Sequence returns an even number in [0, 998], zero padded to three digits.
func (g *Generator) Sequence() string {
	return fmt.Sprintf("%03d", 2*g.rand.IntN(500))
}

// Next assembles one complete identity number.
func (g *Generator) Next() (domain.ID, error) {
	prefix := g.Region() + g.BirthYear() + g.MonthDay() + g.Sequence()
	return domain.Complete(prefix)
}

// Simulate generates n identity numbers.
func (g *Generator) Simulate(n int) ([]domain.ID, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	ids := make([]domain.ID, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.Next()
		if err != nil {
			return nil, fmt.Errorf("simulating number %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
