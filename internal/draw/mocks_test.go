package draw

import (
	"context"
	"fmt"
	"testing"

	"github.com/eykd/hpvdraw/internal/domain"
)

// mockReader is a test double for LineReader.
type mockReader struct {
	lines map[string][]string
	err   error
}

func (m *mockReader) ReadLines(_ context.Context, path string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	lines, ok := m.lines[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	return lines, nil
}

// mockWriter records written files.
type mockWriter struct {
	files map[string]string
	errOn string
	err   error
}

func newMockWriter() *mockWriter {
	return &mockWriter{files: make(map[string]string)}
}

func (m *mockWriter) WriteFile(_ context.Context, filename, content string) error {
	if m.err != nil && (m.errOn == "" || m.errOn == filename) {
		return m.err
	}
	m.files[filename] = content
	return nil
}

// mockLocker runs fn unless err is set.
type mockLocker struct {
	err      error
	calls    int
	released int
}

func (m *mockLocker) With(ctx context.Context, fn func(context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	defer func() { m.released++ }()
	return fn(ctx)
}

// mockSimulator returns a fixed pool.
type mockSimulator struct {
	ids   []domain.ID
	err   error
	asked int
}

func (m *mockSimulator) Simulate(n int) ([]domain.ID, error) {
	m.asked = n
	if m.err != nil {
		return nil, m.err
	}
	if n > len(m.ids) {
		n = len(m.ids)
	}
	return m.ids[:n], nil
}

// mustID builds a valid ID from a 17-digit prefix.
func mustID(t *testing.T, prefix string) domain.ID {
	t.Helper()
	id, err := domain.Complete(prefix)
	if err != nil {
		t.Fatalf("Complete(%q) error = %v", prefix, err)
	}
	return id
}

// mixedPool returns count numbers alternating eligible women, men born in
// range and women born out of range.
func mixedPool(t *testing.T, count int) []domain.ID {
	t.Helper()
	ids := make([]domain.ID, 0, count)
	for i := 0; i < count; i++ {
		var prefix string
		switch i % 3 {
		case 0:
			prefix = fmt.Sprintf("3301022000%04d%03d", 101+i%28, (i*2)%1000)
		case 1:
			prefix = fmt.Sprintf("3301022000%04d%03d", 101+i%28, (i*2+1)%1000)
		default:
			prefix = fmt.Sprintf("3301021970%04d%03d", 101+i%28, (i*2)%1000)
		}
		ids = append(ids, mustID(t, prefix))
	}
	return ids
}
