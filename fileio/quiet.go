package fileio

import "context"

// Quiet wraps a Store for callers that never handle errors. Every failure is
// still logged by the store and the empty value for the call is returned.
type Quiet struct {
	s *Store
}

// Quiet returns the best-effort view of the store.
func (s *Store) Quiet() Quiet { return Quiet{s: s} }

func (q Quiet) dtype(tag string) (DType, bool) {
	dt, err := ParseDType(tag)
	if err != nil {
		q.s.fail("parse dtype", tag, err)
		return DType{}, false
	}
	return dt, true
}

// ReadText returns "" when the file cannot be read.
func (q Quiet) ReadText(path string) string {
	text, _ := q.s.ReadText(path)
	return text
}

// WriteText writes data to path, logging any failure.
func (q Quiet) WriteText(path, data string) {
	_ = q.s.WriteText(path, data)
}

// ReadJSON returns an empty record when the file is missing or malformed.
func (q Quiet) ReadJSON(path string) Record {
	rec, _ := q.s.ReadJSON(path)
	return rec
}

// WriteJSON writes rec with the store's indentation, logging any failure.
func (q Quiet) WriteJSON(path string, rec Record) {
	_ = q.s.WriteJSON(path, rec)
}

// ReadFrame returns an empty frame when the tag or the file is invalid.
func (q Quiet) ReadFrame(path, tag string) *Frame {
	dt, ok := q.dtype(tag)
	if !ok {
		return NewFrame()
	}
	f, _ := q.s.ReadFrame(path, dt)
	return f
}

// WriteFrame writes f with the codec named by tag, logging any failure.
func (q Quiet) WriteFrame(path string, f *Frame, tag string) {
	if dt, ok := q.dtype(tag); ok {
		_ = q.s.WriteFrame(path, f, dt)
	}
}

// ReadDir returns an empty map when the tag is invalid.
func (q Quiet) ReadDir(dir, tag string) Contents {
	dt, ok := q.dtype(tag)
	if !ok {
		return Contents{}
	}
	c, _ := q.s.ReadDir(dir, dt)
	return c
}

// WriteDir writes every entry it can and logs the rest.
func (q Quiet) WriteDir(dir string, contents Contents, tag string) {
	if dt, ok := q.dtype(tag); ok {
		_ = q.s.WriteDir(dir, contents, dt)
	}
}

// ReadDirConcurrent is ReadDir with files read in parallel.
func (q Quiet) ReadDirConcurrent(ctx context.Context, dir, tag string) Contents {
	dt, ok := q.dtype(tag)
	if !ok {
		return Contents{}
	}
	c, _ := q.s.ReadDirConcurrent(ctx, dir, dt)
	return c
}

// WriteDirConcurrent is WriteDir with files written in parallel.
func (q Quiet) WriteDirConcurrent(ctx context.Context, dir string, contents Contents, tag string) {
	if dt, ok := q.dtype(tag); ok {
		_ = q.s.WriteDirConcurrent(ctx, dir, contents, dt)
	}
}
