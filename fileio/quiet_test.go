package fileio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuietReturnsEmptyValues(t *testing.T) {
	logger, logs := captureLogs()
	q := newMemStore(t, WithLogger(logger)).Quiet()

	assert.Equal(t, "", q.ReadText("/missing.txt"))
	assert.Equal(t, EmptyRecord(), q.ReadJSON("/missing.json"))
	assert.Equal(t, NewFrame(), q.ReadFrame("/missing.csv", "csv"))
	assert.Equal(t, NewFrame(), q.ReadFrame("/missing.csv", ""))
	assert.Equal(t, Contents{}, q.ReadDir("/missing", "json"))
	assert.Equal(t, Contents{}, q.ReadDir("/missing", ""))
	assert.Equal(t, Contents{}, q.ReadDirConcurrent(context.Background(), "/missing", "json"))

	assert.Contains(t, logs.String(), "file not found")
	assert.Contains(t, logs.String(), "invalid input")
}

func TestQuietRoundTrip(t *testing.T) {
	q := newMemStore(t).Quiet()

	q.WriteText("/t.txt", "hello")
	assert.Equal(t, "hello", q.ReadText("/t.txt"))

	q.WriteJSON("/doc", Record{Value: map[string]any{"a": "b"}})
	assert.Equal(t, Record{Value: map[string]any{"a": "b"}}, q.ReadJSON("/doc.json"))

	f := NewFrame("x")
	f.Rows = append(f.Rows, []any{int64(9)})
	q.WriteFrame("/f.pickle", f, "pickle")
	assert.Equal(t, f, q.ReadFrame("/f.pickle", "pickle"))

	q.WriteDir("/d", Contents{"n": Text("note")}, "md")
	assert.Equal(t, Contents{"n": Text("note")}, q.ReadDir("/d", "md"))

	q.WriteDirConcurrent(context.Background(), "/e", Contents{"m": Text("memo")}, "md")
	assert.Equal(t, Contents{"m": Text("memo")}, q.ReadDirConcurrent(context.Background(), "/e", "md"))
}
