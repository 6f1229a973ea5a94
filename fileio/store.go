package fileio

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

const (
	// DefaultIndent is the number of spaces used when writing JSON records.
	DefaultIndent = 4
	// DefaultSheet is the worksheet written to XLSX files.
	DefaultSheet = "Sheet1"
)

// Store reads and writes file contents on a billy filesystem.
// A Store is safe for concurrent use when its filesystem is.
type Store struct {
	fs          billy.Filesystem
	local       bool
	logger      *slog.Logger
	indent      int
	concurrency int
	sheet       string
}

// Option configures a Store.
type Option func(*Store)

// WithFilesystem sets the backing filesystem. Paths are used as given,
// without resolving them against the working directory.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(s *Store) {
		if fs != nil {
			s.fs = fs
			s.local = false
		}
	}
}

// WithLogger sets the logger that receives failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIndent sets the number of spaces used to indent JSON records. Zero
// keeps one item per line with no indentation.
func WithIndent(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.indent = n
		}
	}
}

// WithConcurrency bounds the number of files processed at once by the
// concurrent directory operations.
func WithConcurrency(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithSheet sets the worksheet name used when writing XLSX files.
func WithSheet(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.sheet = name
		}
	}
}

// New creates a Store on the local filesystem.
func New(opts ...Option) *Store {
	s := &Store{
		fs:          osfs.New("/"),
		local:       true,
		logger:      slog.Default(),
		indent:      DefaultIndent,
		concurrency: runtime.NumCPU(),
		sheet:       DefaultSheet,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Filesystem returns the backing filesystem.
func (s *Store) Filesystem() billy.Filesystem { return s.fs }

// Logger returns the logger receiving diagnostics.
func (s *Store) Logger() *slog.Logger { return s.logger }

// resolve turns a caller path into a path on the backing filesystem.
func (s *Store) resolve(path string) string {
	if s.local {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	}
	return filepath.Clean(path)
}

func (s *Store) readFile(path string) ([]byte, error) {
	p := s.resolve(path)
	info, err := s.fs.Stat(p)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrExpectedFile
	}
	f, err := s.fs.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (s *Store) writeFile(path string, data []byte) (err error) {
	f, err := s.create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}

// create opens path for writing, truncating any existing file.
func (s *Store) create(path string) (billy.File, error) {
	return s.fs.OpenFile(s.resolve(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}

// fail classifies err, logs it as a diagnostic and returns it.
func (s *Store) fail(op, path string, err error) error {
	err = wrapError(err, op, path)
	s.logger.Warn(diagnostic(err), "op", op, "path", path, "err", err)
	return err
}
