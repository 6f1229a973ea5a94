package fileio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContents(t *testing.T) {
	tests := []struct {
		name    string
		dt      DType
		input   string
		want    Contents
		wantErr error
	}{
		{
			name:  "text",
			dt:    TextDType("txt"),
			input: `{"a": "one", "b": ""}`,
			want:  Contents{"a": Text("one"), "b": Text("")},
		},
		{
			name:  "records",
			dt:    JSON,
			input: `{"a": {"x": 1}, "b": [true]}`,
			want: Contents{
				"a": Record{Value: map[string]any{"x": int64(1)}},
				"b": Record{Value: []any{true}},
			},
		},
		{
			name:  "frames",
			dt:    CSV,
			input: `{"t": {"columns": ["n", "s"], "rows": [[1, "x"], [2.5, null]]}}`,
			want: Contents{"t": &Frame{
				Columns: []string{"n", "s"},
				Rows:    [][]any{{int64(1), "x"}, {2.5, nil}},
			}},
		},
		{
			name:    "text must be a string",
			dt:      TextDType("txt"),
			input:   `{"a": 1}`,
			wantErr: ErrContentMismatch,
		},
		{
			name:    "not an object",
			dt:      JSON,
			input:   `[1, 2]`,
			wantErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeContents([]byte(tt.input), tt.dt)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeContents(t *testing.T) {
	f := NewFrame("a")
	require.NoError(t, f.Append("<x>"))
	data, err := EncodeContents(Contents{
		"f": f,
		"r": Record{Value: map[string]any{"k": 1.0}},
		"t": Text("hi"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"f": {"columns": ["a"], "rows": [["<x>"]]},
		"r": {"k": 1},
		"t": "hi"
	}`, string(data))
	assert.Contains(t, string(data), "<x>")
}

func TestMarshalWithoutHTMLEscaping(t *testing.T) {
	data, err := Record{Value: map[string]any{"q": "a < b && c > d"}}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"q":"a < b && c > d"}`, string(data))

	f := NewFrame("<col>")
	require.NoError(t, f.Append("&"))
	data, err = f.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"columns":["<col>"],"rows":[["&"]]}`, string(data))
}

func TestRecordUnmarshalKeepsIntegers(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"big": 9007199254740993, "f": 0.5, "huge": 123456789012345678901234567890}`), &rec))
	m, ok := rec.Map()
	require.True(t, ok)
	assert.Equal(t, int64(9007199254740993), m["big"])
	assert.Equal(t, 0.5, m["f"])
	assert.Equal(t, json.Number("123456789012345678901234567890"), m["huge"])
}

func TestRecordHelpers(t *testing.T) {
	assert.True(t, EmptyRecord().IsEmpty())
	assert.True(t, Record{}.IsEmpty())
	assert.True(t, Record{Value: []any{}}.IsEmpty())
	assert.False(t, Record{Value: 0.0}.IsEmpty())

	m, ok := Record{Value: map[string]any{"a": 1.0}}.Map()
	require.True(t, ok)
	assert.Equal(t, 1.0, m["a"])

	_, ok = Record{Value: "s"}.Map()
	assert.False(t, ok)
}
