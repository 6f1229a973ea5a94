package fileio

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

func decodeCSV(data []byte) (*Frame, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(records) == 0 {
		return NewFrame(), nil
	}
	return inferFrame(records[0], records[1:]), nil
}

func encodeCSV(f *Frame) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if len(f.Columns) > 0 {
		if err := w.Write(f.Columns); err != nil {
			return nil, err
		}
	}
	record := make([]string, len(f.Columns))
	for _, row := range f.Rows {
		for i := range record {
			record[i] = formatCell(cellAt(row, i))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
