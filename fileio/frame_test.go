package fileio

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameAppend(t *testing.T) {
	f := NewFrame("a", "b")
	require.NoError(t, f.Append(1, "x"))
	require.NoError(t, f.Append(int32(2), []byte("y")))
	assert.Equal(t, [][]any{{int64(1), "x"}, {int64(2), "y"}}, f.Rows)

	err := f.Append(1)
	assert.True(t, errors.Is(err, ErrContentMismatch))
	assert.Equal(t, 2, f.Len())
}

func TestFrameAppendUnsigned(t *testing.T) {
	f := NewFrame("n")
	require.NoError(t, f.Append(uint64(42)))
	require.NoError(t, f.Append(uint64(math.MaxUint64)))
	require.NoError(t, f.Append(uint(7)))
	assert.Equal(t, [][]any{{int64(42)}, {float64(math.MaxUint64)}, {int64(7)}}, f.Rows)
}

func TestFrameColumn(t *testing.T) {
	f := sampleFrame(t)
	names, ok := f.Column("name")
	require.True(t, ok)
	assert.Equal(t, []any{"alpha", "beta", "gamma, delta"}, names)

	_, ok = f.Column("missing")
	assert.False(t, ok)
}

func TestFrameEmpty(t *testing.T) {
	assert.True(t, NewFrame().Empty())
	assert.False(t, NewFrame("a").Empty())
}

func TestFrameRecords(t *testing.T) {
	f := NewFrame("a", "b")
	require.NoError(t, f.Append(int64(1), "x"))
	assert.Equal(t, []any{map[string]any{"a": int64(1), "b": "x"}}, f.Records())
}

func TestFrameJSON(t *testing.T) {
	f := NewFrame("id", "score", "name", "active")
	require.NoError(t, f.Append(int64(1), 2.5, "alpha", true))
	require.NoError(t, f.Append(int64(2), nil, "beta", false))
	data, err := json.Marshal(f)
	require.NoError(t, err)

	got := NewFrame()
	require.NoError(t, json.Unmarshal(data, got))
	assert.Equal(t, f, got)

	empty, err := json.Marshal(&Frame{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":[],"rows":[]}`, string(empty))

	err = json.Unmarshal([]byte(`{"columns":["a"],"rows":[[1,2]]}`), NewFrame())
	assert.True(t, errors.Is(err, ErrContentMismatch))
}

func TestInferFrame(t *testing.T) {
	header := []string{"int", "float", "bool", "text", "sparse"}
	records := [][]string{
		{"1", "1.5", "true", "a", ""},
		{"-2", "2", "FALSE", "3", "7"},
		{"3", "", "False", "c"},
	}
	f := inferFrame(header, records)

	assert.Equal(t, header, f.Columns)
	assert.Equal(t, [][]any{
		{int64(1), 1.5, true, "a", nil},
		{int64(-2), 2.0, false, "3", int64(7)},
		{int64(3), nil, false, "c", nil},
	}, f.Rows)
}

func TestInferFrameUnnamedColumns(t *testing.T) {
	f := inferFrame([]string{"a"}, [][]string{{"1", "x"}})
	assert.Equal(t, []string{"a", "Unnamed: 1"}, f.Columns)
	assert.Equal(t, [][]any{{int64(1), "x"}}, f.Rows)
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{int64(42), "42"},
		{7, "7"},
		{2.5, "2.5"},
		{3.0, "3.0"},
		{true, "True"},
		{false, "False"},
	}
	for _, tt := range tests {
		if got := formatCell(tt.in); got != tt.want {
			t.Errorf("formatCell(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
