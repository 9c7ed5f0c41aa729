package cmd

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eykd/hpvdraw/internal/config"
	"github.com/eykd/hpvdraw/internal/draw"
	"github.com/eykd/hpvdraw/internal/fs"
	"github.com/eykd/hpvdraw/internal/generator"
	"github.com/eykd/hpvdraw/internal/lock"
	"github.com/eykd/hpvdraw/internal/seed"
)

// Runner abstracts the draw.Service methods used by commands.
type Runner interface {
	Draw(ctx context.Context, req draw.Request) (*draw.Result, error)
	Simulate(ctx context.Context, n int) (*draw.SimulateResult, error)
	Load(ctx context.Context, path string) (*draw.LoadResult, error)
	Verify(inputs []string) []draw.Verification
}

// Session is a wired Runner plus the identifiers of the run.
type Session struct {
	Runner Runner
	RunID  string
	Seed   string
	Log    *slog.Logger
}

// SessionFactory builds a Session from resolved settings.
type SessionFactory func(cfg config.Config, log *slog.Logger) (*Session, error)

// NewSession wires a draw.Service to the filesystem, the directory lock and
// a generator seeded from cfg.Seed, or from a fresh random seed when empty.
// The output directory is created by the first command that writes to it.
func NewSession(cfg config.Config, log *slog.Logger) (*Session, error) {
	seedText := cfg.Seed
	if seedText == "" {
		var err error
		seedText, err = seed.Generate(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generating seed: %w", err)
		}
	}
	r, err := seed.Parse(seedText)
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	runID := uuid.NewString()
	log = log.With("run_id", runID, "seed", seedText)

	svc := draw.NewService(
		fs.OSLineReader{},
		&fs.OSWriter{Root: cfg.OutDir},
		lock.ForDir(cfg.OutDir),
		generator.New(r, generator.WithLocation(loc)),
		r,
		draw.WithRule(cfg.Eligibility),
		draw.WithNormalizer(fs.NormalizeAdapter{}),
		draw.WithLogger(log),
	)

	return &Session{Runner: svc, RunID: runID, Seed: seedText, Log: log}, nil
}
