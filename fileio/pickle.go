package fileio

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// frameSnapshot is the gob form of a frame.
type frameSnapshot struct {
	Columns []string
	Rows    [][]any
}

func init() {
	// Cell types carried in interface values.
	gob.Register("")
	gob.Register(int64(0))
	gob.Register(float64(0))
	gob.Register(false)
}

func decodePickle(data []byte) (*Frame, error) {
	var snap frameSnapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	f := NewFrame(snap.Columns...)
	for _, row := range snap.Rows {
		cells := make([]any, len(f.Columns))
		copy(cells, row)
		f.Rows = append(f.Rows, cells)
	}
	return f, nil
}

func encodePickle(f *Frame) ([]byte, error) {
	snap := frameSnapshot{Columns: f.Columns, Rows: make([][]any, len(f.Rows))}
	for i, row := range f.Rows {
		cells := make([]any, len(f.Columns))
		for j := range cells {
			cells[j] = normalizeCell(cellAt(row, j))
		}
		snap.Rows[i] = cells
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
