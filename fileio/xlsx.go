package fileio

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// decodeXLSX reads the first worksheet of a workbook. The first row is the
// header.
func decodeXLSX(data []byte) (*Frame, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return NewFrame(), nil
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(rows) == 0 {
		return NewFrame(), nil
	}
	return inferFrame(rows[0], rows[1:]), nil
}

// encodeXLSX writes f as a single worksheet workbook with a header row.
func encodeXLSX(f *Frame, sheet string) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	if sheet != DefaultSheet {
		if err := wb.SetSheetName(DefaultSheet, sheet); err != nil {
			return nil, err
		}
	}

	if len(f.Columns) > 0 {
		header := make([]any, len(f.Columns))
		for i, col := range f.Columns {
			header[i] = col
		}
		if err := writeXLSXRow(wb, sheet, 1, header); err != nil {
			return nil, err
		}
	}
	for i, row := range f.Rows {
		cells := make([]any, len(f.Columns))
		for j := range cells {
			cells[j] = cellAt(row, j)
		}
		if err := writeXLSXRow(wb, sheet, i+2, cells); err != nil {
			return nil, err
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXLSXRow(wb *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return wb.SetSheetRow(sheet, cell, &cells)
}
