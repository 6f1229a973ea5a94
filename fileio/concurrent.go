package fileio

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ReadDirConcurrent is ReadDir with one task per matching file, at most the
// store's concurrency running at once. Every task is awaited; a failing file
// does not cancel its siblings. Once ctx is done no further files are
// scheduled and the skipped identifiers report ctx's error.
func (s *Store) ReadDirConcurrent(ctx context.Context, dir string, dt DType) (Contents, error) {
	listing, err := s.List(dir, dt)
	if err != nil {
		return Contents{}, err
	}

	results := make([]Content, listing.Len())
	errs := make([]error, listing.Len())

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, e := range listing.Entries {
		if err := ctx.Err(); err != nil {
			results[i] = emptyContent(dt)
			errs[i] = s.fail("read", e.Path, err)
			continue
		}
		g.Go(func() error {
			results[i], errs[i] = s.readContent(e.Path, dt)
			return nil
		})
	}
	_ = g.Wait()

	contents := make(Contents, len(results))
	for i, ident := range listing.Idents() {
		contents[ident] = results[i]
	}
	return contents, errors.Join(errs...)
}

// WriteDirConcurrent is WriteDir with one task per entry. Every task is
// awaited and writing N entries into a fresh directory yields N files.
func (s *Store) WriteDirConcurrent(ctx context.Context, dir string, contents Contents, dt DType) error {
	if err := s.prepareDir(dir, dt); err != nil {
		return err
	}

	idents := contents.Idents()
	errs := make([]error, len(idents))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, ident := range idents {
		if err := ctx.Err(); err != nil {
			errs[i] = s.fail("write", ident, err)
			continue
		}
		g.Go(func() error {
			errs[i] = s.writeContent(dir, ident, contents[ident], dt)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
