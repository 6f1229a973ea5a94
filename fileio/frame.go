package fileio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Frame is an in-memory table with named columns and ordered rows.
// Cells are nil, string, int64, float64 or bool.
type Frame struct {
	Columns []string
	Rows    [][]any
}

func (*Frame) Kind() Kind { return KindTable }
func (*Frame) isContent() {}

// NewFrame returns an empty frame with the given columns.
func NewFrame(columns ...string) *Frame {
	return &Frame{
		Columns: append([]string{}, columns...),
		Rows:    [][]any{},
	}
}

// Append adds a row. The row must have one cell per column.
func (f *Frame) Append(cells ...any) error {
	if len(cells) != len(f.Columns) {
		return fmt.Errorf("%w: row has %d cells, frame has %d columns", ErrContentMismatch, len(cells), len(f.Columns))
	}
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = normalizeCell(c)
	}
	f.Rows = append(f.Rows, row)
	return nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.Rows) }

// Empty reports whether the frame has no columns and no rows.
func (f *Frame) Empty() bool { return len(f.Columns) == 0 && len(f.Rows) == 0 }

// Column returns the cells of the named column.
func (f *Frame) Column(name string) ([]any, bool) {
	idx := slices.Index(f.Columns, name)
	if idx < 0 {
		return nil, false
	}
	cells := make([]any, len(f.Rows))
	for i, row := range f.Rows {
		cells[i] = cellAt(row, idx)
	}
	return cells, true
}

// Records returns one mapping per row keyed by column name.
func (f *Frame) Records() []any {
	out := make([]any, 0, len(f.Rows))
	for _, row := range f.Rows {
		m := make(map[string]any, len(f.Columns))
		for i, col := range f.Columns {
			m[col] = cellAt(row, i)
		}
		out = append(out, m)
	}
	return out
}

type frameJSON struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// MarshalJSON encodes the frame as {"columns": [...], "rows": [[...]]}
// without HTML escaping.
func (f *Frame) MarshalJSON() ([]byte, error) {
	aux := frameJSON{Columns: f.Columns, Rows: f.Rows}
	if aux.Columns == nil {
		aux.Columns = []string{}
	}
	if aux.Rows == nil {
		aux.Rows = [][]any{}
	}
	return marshalJSON(aux)
}

// UnmarshalJSON replaces the frame with the decoded columns and rows.
// Every row must have one cell per column.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var aux frameJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&aux); err != nil {
		return err
	}
	f.Columns = append([]string{}, aux.Columns...)
	f.Rows = make([][]any, 0, len(aux.Rows))
	for _, row := range aux.Rows {
		if len(row) != len(f.Columns) {
			return fmt.Errorf("%w: row has %d cells, frame has %d columns", ErrContentMismatch, len(row), len(f.Columns))
		}
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = normalizeCell(c)
		}
		f.Rows = append(f.Rows, cells)
	}
	return nil
}

// cellAt returns the cell at idx, or nil for short rows.
func cellAt(row []any, idx int) any {
	if idx < len(row) {
		return row[idx]
	}
	return nil
}

// normalizeCell converts Go scalars to the frame's cell types.
func normalizeCell(v any) any {
	switch x := v.(type) {
	case nil, string, int64, float64, bool:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return uintCell(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return uintCell(x)
	case float32:
		return float64(x)
	case []byte:
		return string(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// uintCell keeps unsigned values that overflow int64 as float64.
func uintCell(x uint64) any {
	if x > math.MaxInt64 {
		return float64(x)
	}
	return int64(x)
}

// formatCell renders a cell for delimited text. Integral floats keep a ".0"
// suffix so they read back as floats.
func formatCell(v any) string {
	switch x := normalizeCell(v).(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !math.IsInf(x, 0) && !math.IsNaN(x) && x == math.Trunc(x) && !strings.ContainsAny(s, "e.") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(x)
	}
}

// inferFrame builds a frame from a header and string records, choosing a type
// per column: int64, then float64, then bool, then string. Empty cells are nil.
func inferFrame(header []string, records [][]string) *Frame {
	width := len(header)
	for _, rec := range records {
		width = max(width, len(rec))
	}
	columns := make([]string, width)
	for i := range columns {
		if i < len(header) {
			columns[i] = header[i]
		} else {
			columns[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}

	f := NewFrame(columns...)
	f.Rows = make([][]any, len(records))
	for i := range records {
		f.Rows[i] = make([]any, width)
	}
	for col := range width {
		parse := inferColumn(records, col)
		for i, rec := range records {
			if col < len(rec) && rec[col] != "" {
				f.Rows[i][col] = parse(rec[col])
			}
		}
	}
	return f
}

func inferColumn(records [][]string, col int) func(string) any {
	allInt, allFloat, allBool := true, true, true
	for _, rec := range records {
		if col >= len(rec) || rec[col] == "" {
			continue
		}
		cell := rec[col]
		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			allFloat = false
		}
		if _, ok := parseBool(cell); !ok {
			allBool = false
		}
	}
	switch {
	case allInt:
		return func(s string) any { i, _ := strconv.ParseInt(s, 10, 64); return i }
	case allFloat:
		return func(s string) any { f, _ := strconv.ParseFloat(s, 64); return f }
	case allBool:
		return func(s string) any { b, _ := parseBool(s); return b }
	default:
		return func(s string) any { return s }
	}
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	return false, false
}
