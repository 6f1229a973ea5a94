package fileio

// ReadText returns the contents of the file at path.
// On failure it returns an empty string and the classified error.
func (s *Store) ReadText(path string) (string, error) {
	data, err := s.readFile(path)
	if err != nil {
		return "", s.fail("read text", path, err)
	}
	return string(data), nil
}

// WriteText writes data to path, replacing any existing file.
func (s *Store) WriteText(path, data string) error {
	if err := s.writeFile(path, []byte(data)); err != nil {
		return s.fail("write text", path, err)
	}
	return nil
}
