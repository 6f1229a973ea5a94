package fileio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	s, dir := newLocalStore(t)
	path := filepath.Join(dir, "notes.txt")

	require.NoError(t, s.WriteText(path, "line one\nline two\n"))
	got, err := s.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", got)

	require.NoError(t, s.WriteText(path, "short"))
	got, err = s.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "short", got, "write should truncate")
}

func TestReadTextMissing(t *testing.T) {
	logger, logs := captureLogs()
	s := newMemStore(t, WithLogger(logger))

	got, err := s.ReadText("/nope/missing.txt")
	require.Error(t, err)
	assert.Equal(t, "", got)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, logs.String(), "file not found")
	assert.Contains(t, logs.String(), "/nope/missing.txt")
}

func TestReadTextDirectory(t *testing.T) {
	s, dir := newLocalStore(t)
	_, err := s.ReadText(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpectedFile)
	assert.Equal(t, platformerrors.CodeInvalidInput, Code(err))
}

func TestJSONRoundTrip(t *testing.T) {
	s, dir := newLocalStore(t)
	rec := Record{Value: map[string]any{
		"station": "blue-oak",
		"elev":    1234.5,
		"count":   int64(3),
		"big":     int64(9007199254740993),
		"tags":    []any{"a", true, nil},
		"nested":  map[string]any{"k": "<v>"},
	}}

	path := filepath.Join(dir, "station")
	require.NoError(t, s.WriteJSON(path, rec))

	got, err := s.ReadJSON(path + ".json")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestWriteJSONFormatting(t *testing.T) {
	s, dir := newLocalStore(t)
	path := filepath.Join(dir, "doc.json")

	require.NoError(t, s.WriteJSON(path, Record{Value: map[string]any{"a": "<b>"}}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": \"<b>\"\n}", string(data))

	require.NoError(t, s.WriteJSONIndent(path, Record{Value: map[string]any{"a": 1.0}}, 2))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))

	_, err = os.Stat(path + ".json")
	assert.True(t, os.IsNotExist(err), "extension must not be appended twice")
}

func TestWithIndent(t *testing.T) {
	s := newMemStore(t, WithIndent(0))
	require.NoError(t, s.WriteJSON("/doc", Record{Value: map[string]any{"a": []any{1.0, 2.0}}}))
	got, err := s.ReadText("/doc.json")
	require.NoError(t, err)
	assert.Equal(t, "{\n\"a\": [\n1,\n2\n]\n}", got)

	require.NoError(t, s.WriteJSONIndent("/compact", Record{Value: []any{1.0, 2.0}}, -1))
	got, err = s.ReadText("/compact.json")
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", got)
}

func TestLargeIntegersSurviveRewrite(t *testing.T) {
	s := newMemStore(t)
	in := Contents{"n": Record{Value: map[string]any{"n": int64(9007199254740993)}}}
	require.NoError(t, s.WriteDir("/first", in, JSON))

	got, err := s.ReadDir("/first", JSON)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	require.NoError(t, s.WriteDir("/second", got, JSON))

	first, err := s.ReadText("/first/n.json")
	require.NoError(t, err)
	second, err := s.ReadText("/second/n.json")
	require.NoError(t, err)
	assert.Contains(t, first, "9007199254740993")
	assert.Equal(t, first, second)
}

func TestReadJSONTrailingData(t *testing.T) {
	s := newMemStore(t)
	require.NoError(t, s.WriteText("/two.json", `{"a": 1} {"b": 2}`))
	_, err := s.ReadJSON("/two.json")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadJSONMalformed(t *testing.T) {
	logger, logs := captureLogs()
	s := newMemStore(t, WithLogger(logger))
	require.NoError(t, s.WriteText("/bad.json", "{not json"))

	got, err := s.ReadJSON("/bad.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, EmptyRecord(), got)
	assert.Equal(t, platformerrors.CodeInvalidInput, Code(err))
	assert.Contains(t, logs.String(), "file is corrupted")
}

func TestReadJSONMissing(t *testing.T) {
	s := newMemStore(t)
	got, err := s.ReadJSON("/missing.json")
	assert.True(t, IsNotFound(err))
	assert.True(t, got.IsEmpty())
}

func TestWriteJSONUnencodable(t *testing.T) {
	s := newMemStore(t)
	err := s.WriteJSON("/x.json", Record{Value: map[string]any{"ch": make(chan int)}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContentMismatch)
}

func TestRelativePathsResolveAgainstWorkingDir(t *testing.T) {
	s, dir := newLocalStore(t)
	t.Chdir(dir)

	require.NoError(t, s.WriteText("rel.txt", "hi"))
	data, err := os.ReadFile(filepath.Join(dir, "rel.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestCodeClassification(t *testing.T) {
	s := newMemStore(t)

	_, err := s.ReadText("/missing")
	assert.Equal(t, platformerrors.CodeNotFound, Code(err))

	_, err = s.ReadFrame("/x.json", JSON)
	assert.Equal(t, platformerrors.CodeInvalidInput, Code(err))
	assert.ErrorIs(t, err, ErrUnsupportedDType)

	assert.Equal(t, platformerrors.CodeUnknown, Code(nil))
	assert.False(t, IsNotFound(nil))
}

func TestErrorMessageNamesOperationAndPath(t *testing.T) {
	s := newMemStore(t)
	_, err := s.ReadText("/a/b.txt")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "read text /a/b.txt: "), err.Error())
}
