// Package draw provides the application service that builds a pool of
// identity numbers, samples it and keeps the eligible candidates.
package draw

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/eykd/hpvdraw/internal/domain"
)

// Output file names, relative to the writer's root.
const (
	PoolFile     = "ids.txt"
	SelectedFile = "last_ids.txt"
)

// LineReader abstracts reading a newline-delimited file.
type LineReader interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
}

// FileWriter abstracts replacing a file in the output directory.
type FileWriter interface {
	WriteFile(ctx context.Context, filename, content string) error
}

// Locker runs fn while holding the output directory lock.
type Locker interface {
	With(ctx context.Context, fn func(context.Context) error) error
}

// Simulator abstracts generating synthetic identity numbers.
type Simulator interface {
	Simulate(n int) ([]domain.ID, error)
}

// Request describes one draw.
type Request struct {
	Source  Source
	Extract int
	Pick    int
}

// Result holds the outcome of a draw.
type Result struct {
	Source       string
	PoolSize     int
	Sampled      int
	Accepted     []domain.ID
	Rejected     map[domain.Reason]int
	Findings     []domain.Finding
	PoolWritten  bool
	SelectedFile string
}

// LoadResult holds the numbers and findings read from a pool file.
type LoadResult struct {
	IDs      []domain.ID
	Findings []domain.Finding
}

// SimulateResult holds the numbers written by Simulate.
type SimulateResult struct {
	IDs      []domain.ID
	PoolFile string
}

// Verification is the outcome of checking one number given on the command line.
type Verification struct {
	Input   string
	ID      domain.ID
	Err     error
	Verdict domain.Verdict
}

// Valid reports whether the input parsed with a matching check character.
func (v Verification) Valid() bool { return v.Err == nil }

// Service coordinates a draw with advisory locking.
type Service struct {
	reader     LineReader
	writer     FileWriter
	locker     Locker
	sim        Simulator
	rand       *rand.Rand
	rule       domain.Rule
	normalizer Normalizer
	log        *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRule replaces the default eligibility rule.
func WithRule(r domain.Rule) Option {
	return func(s *Service) { s.rule = r }
}

// WithNormalizer sets how pool file lines are canonicalised.
func WithNormalizer(n Normalizer) Option {
	return func(s *Service) { s.normalizer = n }
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service with the given dependencies. r drives sampling
// and should be the same source the simulator draws from, so that one seed
// reproduces a whole run.
func NewService(reader LineReader, writer FileWriter, locker Locker, sim Simulator, r *rand.Rand, opts ...Option) *Service {
	s := &Service{
		reader:     reader,
		writer:     writer,
		locker:     locker,
		sim:        sim,
		rand:       r,
		rule:       domain.DefaultRule(),
		normalizer: identityNormalizer{},
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draw builds the pool, samples Extract numbers from it and keeps up to
// Pick eligible ones, writing them to SelectedFile. Simulated pools are
// written to PoolFile before sampling.
func (s *Service) Draw(ctx context.Context, req Request) (*Result, error) {
	if req.Source == nil {
		return nil, ErrNoSource
	}
	if req.Extract < 0 {
		return nil, fmt.Errorf("extract: %w: %d", ErrNegativeCount, req.Extract)
	}
	if req.Pick < 0 {
		return nil, fmt.Errorf("pick: %w: %d", ErrNegativeCount, req.Pick)
	}

	var result *Result
	err := s.locker.With(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.draw(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) draw(ctx context.Context, req Request) (*Result, error) {
	result := &Result{
		Source:       req.Source.String(),
		Rejected:     make(map[domain.Reason]int),
		SelectedFile: SelectedFile,
	}

	var pool []domain.ID
	switch src := req.Source.(type) {
	case SimulatedSource:
		ids, err := s.simulate(ctx, src.Count)
		if err != nil {
			return nil, err
		}
		pool = ids
		result.PoolWritten = true
	case FileSource:
		loaded, err := s.load(ctx, src.Path)
		if err != nil {
			return nil, err
		}
		pool = loaded.IDs
		result.Findings = loaded.Findings
	default:
		return nil, fmt.Errorf("unsupported source %T", req.Source)
	}
	result.PoolSize = len(pool)
	s.log.Debug("pool ready", "source", result.Source, "size", len(pool))

	sample, err := Sample(s.rand, pool, req.Extract)
	if err != nil {
		return nil, err
	}
	result.Sampled = len(sample)

	result.Accepted = Select(sample, req.Pick, s.rule, func(id domain.ID, v domain.Verdict) {
		result.Rejected[v.Reason]++
		s.logRejection(ctx, id, v)
	})

	if err := s.writer.WriteFile(ctx, SelectedFile, joinIDs(result.Accepted)); err != nil {
		return nil, fmt.Errorf("writing %s: %w", SelectedFile, err)
	}
	s.log.Info("draw complete",
		"pool", result.PoolSize,
		"sampled", result.Sampled,
		"accepted", len(result.Accepted),
	)
	return result, nil
}

// Simulate generates n numbers and writes them to PoolFile.
func (s *Service) Simulate(ctx context.Context, n int) (*SimulateResult, error) {
	var ids []domain.ID
	err := s.locker.With(ctx, func(ctx context.Context) error {
		var err error
		ids, err = s.simulate(ctx, n)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &SimulateResult{IDs: ids, PoolFile: PoolFile}, nil
}

func (s *Service) simulate(ctx context.Context, n int) ([]domain.ID, error) {
	ids, err := s.sim.Simulate(n)
	if err != nil {
		return nil, err
	}
	if err := s.writer.WriteFile(ctx, PoolFile, joinIDs(ids)); err != nil {
		return nil, fmt.Errorf("writing %s: %w", PoolFile, err)
	}
	s.log.Debug("pool written", "file", PoolFile, "count", len(ids))
	return ids, nil
}

// Load reads and validates a pool file without taking the lock.
func (s *Service) Load(ctx context.Context, path string) (*LoadResult, error) {
	return s.load(ctx, path)
}

func (s *Service) load(ctx context.Context, path string) (*LoadResult, error) {
	lines, err := s.reader.ReadLines(ctx, path)
	if err != nil {
		return nil, err
	}
	ids, findings := ParseLines(lines, s.normalizer)
	for _, f := range findings {
		level := slog.LevelDebug
		if f.Severity == domain.SeverityError {
			level = slog.LevelWarn
		}
		s.log.Log(ctx, level, "pool line "+string(f.Severity),
			"file", path, "line", f.Line, "type", f.Type, "detail", f.Message)
	}
	return &LoadResult{IDs: ids, Findings: findings}, nil
}

// Verify parses each input and evaluates the valid ones against the rule.
func (s *Service) Verify(inputs []string) []Verification {
	out := make([]Verification, 0, len(inputs))
	for _, in := range inputs {
		v := Verification{Input: in}
		id, err := domain.ParseID(s.normalizer.Line(in))
		if err != nil {
			v.Err = err
		} else {
			v.ID = id
			v.Verdict = s.rule.Evaluate(id)
		}
		out = append(out, v)
	}
	return out
}

func (s *Service) logRejection(ctx context.Context, id domain.ID, v domain.Verdict) {
	switch v.Reason {
	case domain.ReasonMale:
		s.log.InfoContext(ctx, "only female candidates are eligible", "id", id.String())
	default:
		s.log.DebugContext(ctx, "candidate rejected", "id", id.String(), "reason", string(v.Reason))
	}
}

func joinIDs(ids []domain.ID) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(id.String())
	}
	return b.String()
}
