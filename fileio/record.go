package fileio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReadJSON parses the JSON document at path.
// A missing or malformed file yields an empty record and an error.
func (s *Store) ReadJSON(path string) (Record, error) {
	data, err := s.readFile(path)
	if err != nil {
		return EmptyRecord(), s.fail("read json", path, err)
	}
	rec, err := decodeRecord(data)
	if err != nil {
		return EmptyRecord(), s.fail("read json", path, err)
	}
	return rec, nil
}

// WriteJSON writes rec to path with the store's indentation.
// The ".json" extension is appended when path lacks it.
func (s *Store) WriteJSON(path string, rec Record) error {
	return s.WriteJSONIndent(path, rec, s.indent)
}

// WriteJSONIndent is WriteJSON with an explicit indentation width. Zero puts
// each item on its own line without indentation; a negative width writes
// compact JSON.
func (s *Store) WriteJSONIndent(path string, rec Record, indent int) error {
	if !strings.HasSuffix(path, "."+JSON.ext) {
		path += "." + JSON.ext
	}
	data, err := encodeRecord(rec, indent)
	if err != nil {
		return s.fail("write json", path, err)
	}
	if err := s.writeFile(path, data); err != nil {
		return s.fail("write json", path, err)
	}
	return nil
}

// decodeRecord parses one JSON document. Integer literals become int64 and
// other numbers float64; integers outside the int64 range keep their literal
// as a json.Number so they encode back unchanged.
func decodeRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return EmptyRecord(), fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return EmptyRecord(), fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}
	return Record{Value: resolveNumbers(v)}, nil
}

func resolveNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if !strings.ContainsAny(x.String(), ".eE") {
			return x
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x
	case map[string]any:
		for k, item := range x {
			x[k] = resolveNumbers(item)
		}
		return x
	case []any:
		for i, item := range x {
			x[i] = resolveNumbers(item)
		}
		return x
	default:
		return v
	}
}

// encodeRecord renders rec with one item per line indented by indent spaces.
// Zero keeps the line breaks without indentation and a negative indent
// writes compact JSON.
func encodeRecord(rec Record, indent int) ([]byte, error) {
	data, err := marshalJSON(rec.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentMismatch, err)
	}
	if indent < 0 {
		return data, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentMismatch, err)
	}
	return buf.Bytes(), nil
}

// marshalJSON is json.Marshal without HTML escaping.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
