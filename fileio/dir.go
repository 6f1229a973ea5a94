package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ReadDir reads every file in dir that matches dt and returns its content
// keyed by identifier. A missing dir yields an empty map and no error.
//
// A file that fails to read keeps its identifier, mapped to the empty value
// for dt, and its error is joined into the returned error.
func (s *Store) ReadDir(dir string, dt DType) (Contents, error) {
	listing, err := s.List(dir, dt)
	if err != nil {
		return Contents{}, err
	}
	contents := make(Contents, listing.Len())
	var errs []error
	for e := range listing.Iterate {
		c, err := s.readContent(e.Path, dt)
		contents[e.Ident] = c
		if err != nil {
			errs = append(errs, err)
		}
	}
	return contents, errors.Join(errs...)
}

// WriteDir writes each entry of contents to <dir>/<ident>.<ext>, creating dir
// and its parents as needed. Entries already written stay in place when a
// later entry fails.
func (s *Store) WriteDir(dir string, contents Contents, dt DType) error {
	if err := s.prepareDir(dir, dt); err != nil {
		return err
	}
	var errs []error
	for _, ident := range contents.Idents() {
		if err := s.writeContent(dir, ident, contents[ident], dt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// prepareDir checks dt can be written and creates dir.
func (s *Store) prepareDir(dir string, dt DType) error {
	if !dt.Writable() {
		return s.fail("write dir", dir, fmt.Errorf("%w: %q cannot be written", ErrUnsupportedDType, dt))
	}
	p := s.resolve(dir)
	info, err := s.fs.Stat(p)
	switch {
	case err == nil && !info.IsDir():
		return s.fail("write dir", dir, ErrExpectedDirectory)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return s.fail("write dir", dir, err)
	}
	if err := s.fs.MkdirAll(p, 0o755); err != nil {
		return s.fail("write dir", dir, err)
	}
	return nil
}

// ReadContent reads a single file with the reader selected by dt.
// On failure it returns the empty value for dt and the classified error.
func (s *Store) ReadContent(path string, dt DType) (Content, error) {
	return s.readContent(path, dt)
}

func (s *Store) readContent(path string, dt DType) (Content, error) {
	switch dt.Format() {
	case FormatJSON:
		return s.ReadJSON(path)
	case FormatCSV, FormatXLSX, FormatPickle, FormatSQLite:
		return s.ReadFrame(path, dt)
	case FormatText, FormatAll:
		text, err := s.ReadText(path)
		return Text(text), err
	}
	return emptyContent(dt), s.fail("read", path, fmt.Errorf("%w: %q", ErrUnsupportedDType, dt))
}

func (s *Store) writeContent(dir, ident string, c Content, dt DType) error {
	if ident == "" || strings.ContainsAny(ident, `/\`) || ident == "." || ident == ".." {
		return s.fail("write", filepath.Join(dir, ident), fmt.Errorf("%w: %q", ErrInvalidIdent, ident))
	}
	path := filepath.Join(dir, dt.FileName(ident))
	if c == nil || c.Kind() != dt.Kind() {
		return s.fail("write", path, fmt.Errorf("%w: %s content for %q", ErrContentMismatch, kindOf(c), dt))
	}
	switch v := c.(type) {
	case Record:
		return s.WriteJSON(path, v)
	case *Frame:
		return s.WriteFrame(path, v, dt)
	case Text:
		return s.WriteText(path, string(v))
	}
	return s.fail("write", path, fmt.Errorf("%w: %T", ErrContentMismatch, c))
}

func kindOf(c Content) string {
	if c == nil {
		return "nil"
	}
	return c.Kind().String()
}
