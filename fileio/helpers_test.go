package fileio

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newLocalStore returns a store on the OS filesystem and a fresh directory.
func newLocalStore(t *testing.T, opts ...Option) (*Store, string) {
	t.Helper()
	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	return New(opts...), t.TempDir()
}

// newMemStore returns a store on an in-memory filesystem.
func newMemStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithFilesystem(memfs.New()), WithLogger(discardLogger())}, opts...)
	return New(opts...)
}

// captureLogs returns a logger writing text records into the returned buffer.
func captureLogs() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func sampleFrame(t *testing.T) *Frame {
	t.Helper()
	f := NewFrame("id", "score", "name", "active")
	for _, row := range [][]any{
		{int64(1), 2.5, "alpha", true},
		{int64(2), 3.0, "beta", false},
		{int64(3), nil, "gamma, delta", true},
	} {
		if err := f.Append(row...); err != nil {
			t.Fatalf("Append(%v) error = %v", row, err)
		}
	}
	return f
}
