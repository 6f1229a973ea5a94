package fileio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDirConcurrentCreatesAllFiles(t *testing.T) {
	const n = 64
	s, dir := newLocalStore(t, WithConcurrency(4))
	out := filepath.Join(dir, "fresh")

	contents := make(Contents, n)
	for i := range n {
		contents[fmt.Sprintf("rec-%03d", i)] = Record{Value: map[string]any{"i": int64(i)}}
	}
	require.NoError(t, s.WriteDirConcurrent(context.Background(), out, contents, JSON))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, n)
}

func TestReadDirConcurrentMatchesSync(t *testing.T) {
	for _, dt := range []DType{JSON, CSV, Pickle, TextDType("txt")} {
		t.Run(dt.String(), func(t *testing.T) {
			s, dir := newLocalStore(t, WithConcurrency(3))
			data := filepath.Join(dir, "data")
			contents := make(Contents)
			for i := range 10 {
				ident := fmt.Sprintf("item-%d", i)
				switch dt.Kind() {
				case KindRecord:
					contents[ident] = Record{Value: map[string]any{"n": int64(i)}}
				case KindTable:
					f := NewFrame("n", "label")
					require.NoError(t, f.Append(int64(i), fmt.Sprintf("label %d", i)))
					contents[ident] = f
				default:
					contents[ident] = Text(fmt.Sprintf("text %d", i))
				}
			}
			require.NoError(t, s.WriteDirConcurrent(context.Background(), data, contents, dt))

			syncGot, err := s.ReadDir(data, dt)
			require.NoError(t, err)
			concGot, err := s.ReadDirConcurrent(context.Background(), data, dt)
			require.NoError(t, err)

			assert.Equal(t, contents, concGot)
			assert.Equal(t, syncGot, concGot)
		})
	}
}

func TestReadDirConcurrentMissing(t *testing.T) {
	s := newMemStore(t)
	got, err := s.ReadDirConcurrent(context.Background(), "/nowhere", JSON)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadDirConcurrentKeepsFailedIdents(t *testing.T) {
	s, dir := newLocalStore(t)
	require.NoError(t, s.WriteText(filepath.Join(dir, "ok.json"), `[1]`))
	require.NoError(t, s.WriteText(filepath.Join(dir, "broken.json"), `[`))

	got, err := s.ReadDirConcurrent(context.Background(), dir, JSON)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, Contents{
		"ok":     Record{Value: []any{int64(1)}},
		"broken": EmptyRecord(),
	}, got)
}

func TestReadDirConcurrentCanceled(t *testing.T) {
	s := newMemStore(t)
	require.NoError(t, s.WriteDir("/d", Contents{"a": Text("1"), "b": Text("2")}, TextDType("txt")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := s.ReadDirConcurrent(ctx, "/d", TextDType("txt"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Contents{"a": Text(""), "b": Text("")}, got)
}

func TestWriteDirConcurrentCanceled(t *testing.T) {
	s := newMemStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WriteDirConcurrent(ctx, "/d", Contents{"a": Text("1")}, TextDType("txt"))
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := s.fs.Stat("/d/a.txt")
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteDirConcurrentMismatch(t *testing.T) {
	s, dir := newLocalStore(t)
	err := s.WriteDirConcurrent(context.Background(), dir, Contents{
		"good": Record{Value: map[string]any{}},
		"bad":  Text("not a record"),
	}, JSON)
	assert.ErrorIs(t, err, ErrContentMismatch)

	got, readErr := s.ReadDir(dir, JSON)
	require.NoError(t, readErr)
	assert.Equal(t, Contents{"good": EmptyRecord()}, got)
}
