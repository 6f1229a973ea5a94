package fileio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Content is the value of one file: Text, Record or *Frame.
type Content interface {
	Kind() Kind
	isContent()
}

// Contents maps identifiers to the content of their files.
type Contents map[string]Content

// Idents returns the identifiers in lexical order.
func (c Contents) Idents() []string {
	return slices.Sorted(maps.Keys(c))
}

// Text is a raw text blob.
type Text string

func (Text) Kind() Kind { return KindText }
func (Text) isContent() {}

// Record is a structured JSON record. Value holds map[string]any, []any,
// string, int64, float64, bool or nil. Integers too large for int64 are kept
// as json.Number.
type Record struct {
	Value any
}

func (Record) Kind() Kind { return KindRecord }
func (Record) isContent() {}

// EmptyRecord returns a record holding an empty mapping.
func EmptyRecord() Record {
	return Record{Value: map[string]any{}}
}

// Map returns the record as a mapping if it is one.
func (r Record) Map() (map[string]any, bool) {
	m, ok := r.Value.(map[string]any)
	return m, ok
}

// IsEmpty reports whether the record is nil or an empty mapping or sequence.
func (r Record) IsEmpty() bool {
	switch v := r.Value.(type) {
	case nil:
		return true
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

// MarshalJSON encodes the record value without HTML escaping.
func (r Record) MarshalJSON() ([]byte, error) {
	return marshalJSON(r.Value)
}

// UnmarshalJSON decodes data with the same number handling as ReadJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	rec, err := decodeRecord(data)
	if err != nil {
		return err
	}
	r.Value = rec.Value
	return nil
}

// emptyContent returns the value used in place of a file that failed.
func emptyContent(dt DType) Content {
	switch dt.Kind() {
	case KindRecord:
		return EmptyRecord()
	case KindTable:
		return NewFrame()
	default:
		return Text("")
	}
}

// DecodeContents parses a JSON object of identifier to content, using dt to
// decide how each value is read: strings for text, any JSON value for records,
// {"columns": [...], "rows": [[...]]} objects for frames.
func DecodeContents(data []byte, dt DType) (Contents, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	contents := make(Contents, len(raw))
	for ident, msg := range raw {
		c, err := decodeContent(msg, dt)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", ident, err)
		}
		contents[ident] = c
	}
	return contents, nil
}

func decodeContent(msg json.RawMessage, dt DType) (Content, error) {
	switch dt.Kind() {
	case KindRecord:
		rec, err := decodeRecord(msg)
		if err != nil {
			return nil, err
		}
		return rec, nil
	case KindTable:
		f := NewFrame()
		if err := json.Unmarshal(msg, f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return f, nil
	default:
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return nil, fmt.Errorf("%w: text content must be a JSON string", ErrContentMismatch)
		}
		return Text(s), nil
	}
}

// EncodeContents renders contents as an indented JSON object.
func EncodeContents(c Contents) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
