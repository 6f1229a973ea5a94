package fileio

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

type (
	// Entry is a file matched for a dtype.
	Entry struct {
		Name     string    `json:"name"`     // file name within the directory
		Ident    string    `json:"ident"`    // name with the dtype suffix removed
		Path     string    `json:"path"`     // directory joined with name
		Size     int64     `json:"size"`     // size of the file in bytes
		Modified time.Time `json:"modified"` // modification time of the file
	}
	// Listing is the set of entries in a directory matched for a dtype,
	// sorted by name.
	Listing struct {
		Dir     string  `json:"dir"`
		DType   string  `json:"dtype"`
		Entries []Entry `json:"entries"`
	}
	// Summary aggregates a listing.
	Summary struct {
		Count     int       `json:"count"`
		TotalSize int64     `json:"total_size"`
		Oldest    time.Time `json:"oldest"`
		Newest    time.Time `json:"newest"`
	}
)

// List returns the regular files in dir that match dt. It does not recurse.
// A missing dir, or a path that is not a directory, yields an empty listing.
func (s *Store) List(dir string, dt DType) (Listing, error) {
	l := Listing{Dir: dir, DType: dt.String(), Entries: []Entry{}}
	p := s.resolve(dir)
	info, err := s.fs.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return l, s.fail("list", dir, err)
	}
	if !info.IsDir() {
		return l, nil
	}
	infos, err := s.fs.ReadDir(p)
	if err != nil {
		return l, s.fail("list", dir, err)
	}
	for _, fi := range infos {
		if !fi.Mode().IsRegular() {
			continue
		}
		ident, ok := dt.Match(fi.Name())
		if !ok {
			continue
		}
		l.Entries = append(l.Entries, Entry{
			Name:     fi.Name(),
			Ident:    ident,
			Path:     filepath.Join(dir, fi.Name()),
			Size:     fi.Size(),
			Modified: fi.ModTime(),
		})
	}
	slices.SortFunc(l.Entries, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return l, nil
}

// Len returns the number of entries.
func (l Listing) Len() int { return len(l.Entries) }

// Iterate yields every entry in name order.
func (l Listing) Iterate(yield func(Entry) bool) {
	for _, e := range l.Entries {
		if !yield(e) {
			return
		}
	}
}

// Idents returns the identifiers in name order.
func (l Listing) Idents() []string {
	idents := make([]string, 0, len(l.Entries))
	for e := range l.Iterate {
		idents = append(idents, e.Ident)
	}
	return idents
}

// Summarize returns the count, total size and modification time range of the
// listing. Times are zero for an empty listing.
func (l Listing) Summarize() Summary {
	var sum Summary
	for e := range l.Iterate {
		sum.Count++
		sum.TotalSize += e.Size
		if sum.Oldest.IsZero() || e.Modified.Before(sum.Oldest) {
			sum.Oldest = e.Modified
		}
		if e.Modified.After(sum.Newest) {
			sum.Newest = e.Modified
		}
	}
	return sum
}
