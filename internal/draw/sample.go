package draw

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/eykd/hpvdraw/internal/domain"
)

// ErrInsufficientPopulation is returned when a sample is larger than its pool.
var ErrInsufficientPopulation = errors.New("insufficient population")

// ErrNegativeCount is returned for negative extract or pick counts.
var ErrNegativeCount = errors.New("count must not be negative")

// Sample draws n distinct positions of pool uniformly at random, in random
// order. The pool is not modified.
func Sample(r *rand.Rand, pool []domain.ID, n int) ([]domain.ID, error) {
	if n < 0 {
		return nil, fmt.Errorf("extract: %w: %d", ErrNegativeCount, n)
	}
	if n > len(pool) {
		return nil, fmt.Errorf("%w: cannot extract %d from a pool of %d", ErrInsufficientPopulation, n, len(pool))
	}
	out := slices.Clone(pool)
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:n:n], nil
}

// Select walks candidates in order and keeps those the rule accepts until
// pick have been kept. reject, if non-nil, is told about every candidate
// evaluated and turned down.
func Select(candidates []domain.ID, pick int, rule domain.Rule, reject func(domain.ID, domain.Verdict)) []domain.ID {
	accepted := make([]domain.ID, 0, min(pick, len(candidates)))
	for _, id := range candidates {
		if len(accepted) >= pick {
			break
		}
		v := rule.Evaluate(id)
		if !v.Eligible {
			if reject != nil {
				reject(id, v)
			}
			continue
		}
		accepted = append(accepted, id)
	}
	return accepted
}
