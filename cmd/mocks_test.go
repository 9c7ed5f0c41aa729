package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/eykd/hpvdraw/internal/config"
	"github.com/eykd/hpvdraw/internal/domain"
	"github.com/eykd/hpvdraw/internal/draw"
)

// mockRunner is a test double for Runner.
type mockRunner struct {
	drawReq     *draw.Request
	drawResult  *draw.Result
	drawErr     error
	simulateN   int
	simResult   *draw.SimulateResult
	simErr      error
	loadPath    string
	loadResult  *draw.LoadResult
	loadErr     error
	verifyInput []string
	verifyOut   []draw.Verification
}

func (m *mockRunner) Draw(_ context.Context, req draw.Request) (*draw.Result, error) {
	m.drawReq = &req
	return m.drawResult, m.drawErr
}

func (m *mockRunner) Simulate(_ context.Context, n int) (*draw.SimulateResult, error) {
	m.simulateN = n
	return m.simResult, m.simErr
}

func (m *mockRunner) Load(_ context.Context, path string) (*draw.LoadResult, error) {
	m.loadPath = path
	return m.loadResult, m.loadErr
}

func (m *mockRunner) Verify(inputs []string) []draw.Verification {
	m.verifyInput = inputs
	return m.verifyOut
}

// fakeFactory returns a SessionFactory handing out runner and recording cfg.
func fakeFactory(runner Runner, got *config.Config) SessionFactory {
	return func(cfg config.Config, log *slog.Logger) (*Session, error) {
		if got != nil {
			*got = cfg
		}
		return &Session{Runner: runner, RunID: "run-1", Seed: "pcg:1:2", Log: log}, nil
	}
}

// execute runs a fresh command tree with args and returns stdout, stderr and the error.
func execute(t *testing.T, factory SessionFactory, args ...string) (string, string, error) {
	t.Helper()
	root := BuildCommandTree(factory)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func mustID(t *testing.T, prefix string) domain.ID {
	t.Helper()
	id, err := domain.Complete(prefix)
	if err != nil {
		t.Fatalf("Complete(%q) error = %v", prefix, err)
	}
	return id
}
