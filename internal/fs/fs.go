// Package fs provides filesystem adapters that implement draw service interfaces.
package fs

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eykd/hpvdraw/internal/normalize"
)

// maxLineBytes bounds a single pool file line.
const maxLineBytes = 1 << 20

// OSLineReader implements draw.LineReader using a buffered scanner.
type OSLineReader struct{}

// ReadLines returns the lines of the file at path without line terminators.
func (OSLineReader) ReadLines(ctx context.Context, path string) (lines []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if len(lines)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// OSWriter implements draw.FileWriter. Files are written to a temporary
// sibling and renamed into place, so a reader never sees a partial file.
type OSWriter struct {
	Root string
}

// WriteFile replaces filename under Root with content.
func (w *OSWriter) WriteFile(ctx context.Context, filename, content string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(w.Root, filename)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// NormalizeAdapter implements draw.Normalizer using the normalize package.
type NormalizeAdapter struct{}

// Line canonicalises a pool file line.
func (NormalizeAdapter) Line(s string) string { return normalize.Line(s) }
