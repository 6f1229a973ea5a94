package fileio

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

// Convert reshapes content into the given kind.
//
// Frames become records as a list of row mappings and records become frames
// from a mapping or a list of mappings, with nested values kept as JSON text.
// Text is parsed as JSON for records and as CSV for frames, and both render
// back the same way.
func Convert(c Content, to Kind) (Content, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil content", ErrContentMismatch)
	}
	if c.Kind() == to {
		return c, nil
	}
	switch v := c.(type) {
	case Text:
		switch to {
		case KindRecord:
			rec, err := decodeRecord([]byte(v))
			if err != nil {
				return nil, err
			}
			return rec, nil
		case KindTable:
			f, err := decodeCSV([]byte(v))
			if err != nil {
				return nil, err
			}
			return f, nil
		}
	case Record:
		switch to {
		case KindText:
			data, err := encodeRecord(v, DefaultIndent)
			if err != nil {
				return nil, err
			}
			return Text(data), nil
		case KindTable:
			f, err := recordFrame(v)
			if err != nil {
				return nil, err
			}
			return f, nil
		}
	case *Frame:
		if v == nil {
			v = NewFrame()
		}
		switch to {
		case KindText:
			data, err := encodeCSV(v)
			if err != nil {
				return nil, err
			}
			return Text(data), nil
		case KindRecord:
			return Record{Value: v.Records()}, nil
		}
	}
	return nil, fmt.Errorf("%w: cannot convert %s to %s", ErrContentMismatch, c.Kind(), to)
}

// ConvertContents converts every entry, keeping failed identifiers mapped to
// the empty value of the target dtype.
func ConvertContents(c Contents, to DType) (Contents, error) {
	out := make(Contents, len(c))
	var errs []error
	for _, ident := range c.Idents() {
		converted, err := Convert(c[ident], to.Kind())
		if err != nil {
			out[ident] = emptyContent(to)
			errs = append(errs, fmt.Errorf("convert %s: %w", ident, err))
			continue
		}
		out[ident] = converted
	}
	return out, errors.Join(errs...)
}

func recordFrame(r Record) (*Frame, error) {
	var rows []map[string]any
	switch v := r.Value.(type) {
	case map[string]any:
		if len(v) > 0 {
			rows = append(rows, v)
		}
	case []any:
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: item %d is not an object", ErrContentMismatch, i)
			}
			rows = append(rows, m)
		}
	case nil:
	default:
		return nil, fmt.Errorf("%w: record is not an object or a list of objects", ErrContentMismatch)
	}

	seen := map[string]bool{}
	for _, row := range rows {
		for k := range row {
			seen[k] = true
		}
	}
	f := NewFrame(slices.Sorted(maps.Keys(seen))...)
	for _, row := range rows {
		cells := make([]any, len(f.Columns))
		for i, col := range f.Columns {
			cells[i] = recordCell(row[col])
		}
		f.Rows = append(f.Rows, cells)
	}
	return f, nil
}

// recordCell turns a decoded JSON value into a frame cell. Integral numbers
// become int64.
func recordCell(v any) any {
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return int64(x)
		}
		return x
	case map[string]any, []any:
		data, err := marshalJSON(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	default:
		return normalizeCell(x)
	}
}
