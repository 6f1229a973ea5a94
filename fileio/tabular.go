package fileio

import "fmt"

// ReadFrame reads the table at path using the codec selected by dt.
// On failure it returns an empty frame and the classified error.
func (s *Store) ReadFrame(path string, dt DType) (*Frame, error) {
	if !dt.IsTabular() {
		return NewFrame(), s.fail("read frame", path, fmt.Errorf("%w: %q is not tabular", ErrUnsupportedDType, dt))
	}
	data, err := s.readFile(path)
	if err != nil {
		return NewFrame(), s.fail("read frame", path, err)
	}
	f, err := s.decodeFrame(data, dt)
	if err != nil {
		return NewFrame(), s.fail("read frame", path, err)
	}
	return f, nil
}

// WriteFrame writes f to path using the codec selected by dt.
func (s *Store) WriteFrame(path string, f *Frame, dt DType) error {
	if f == nil {
		f = NewFrame()
	}
	if !dt.IsTabular() {
		return s.fail("write frame", path, fmt.Errorf("%w: %q is not tabular", ErrUnsupportedDType, dt))
	}
	data, err := s.encodeFrame(f, dt)
	if err != nil {
		return s.fail("write frame", path, err)
	}
	if err := s.writeFile(path, data); err != nil {
		return s.fail("write frame", path, err)
	}
	return nil
}

func (s *Store) decodeFrame(data []byte, dt DType) (*Frame, error) {
	switch dt.Format() {
	case FormatCSV:
		return decodeCSV(data)
	case FormatXLSX:
		return decodeXLSX(data)
	case FormatPickle:
		return decodePickle(data)
	case FormatSQLite:
		return decodeSQLite(data)
	case FormatJSON, FormatText, FormatAll:
	}
	return nil, fmt.Errorf("%w: %q is not tabular", ErrUnsupportedDType, dt)
}

func (s *Store) encodeFrame(f *Frame, dt DType) ([]byte, error) {
	switch dt.Format() {
	case FormatCSV:
		return encodeCSV(f)
	case FormatXLSX:
		return encodeXLSX(f, s.sheet)
	case FormatPickle:
		return encodePickle(f)
	case FormatSQLite:
		return encodeSQLite(f)
	case FormatJSON, FormatText, FormatAll:
	}
	return nil, fmt.Errorf("%w: %q is not tabular", ErrUnsupportedDType, dt)
}
