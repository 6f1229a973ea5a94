package fileio

import (
	"fmt"
	"strings"
)

// Kind is the shape of a file's content.
type Kind int

const (
	// KindText is a raw text blob.
	KindText Kind = iota
	// KindRecord is a structured JSON record.
	KindRecord
	// KindTable is a tabular frame.
	KindTable
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindTable:
		return "table"
	default:
		return "text"
	}
}

// Format identifies the codec used for a file.
type Format int

const (
	// FormatText stores the content as raw text under any extension.
	FormatText Format = iota
	// FormatJSON stores one JSON document per file.
	FormatJSON
	// FormatCSV stores a frame as comma-separated values with a header row.
	FormatCSV
	// FormatXLSX stores a frame on one worksheet of a spreadsheet.
	FormatXLSX
	// FormatPickle stores a binary snapshot of a frame.
	FormatPickle
	// FormatSQLite stores a frame as a table in a SQLite database file.
	FormatSQLite
	// FormatAll reads every file as text. It cannot be written.
	FormatAll
)

// Kind returns the content kind produced by the format.
func (f Format) Kind() Kind {
	switch f {
	case FormatJSON:
		return KindRecord
	case FormatCSV, FormatXLSX, FormatPickle, FormatSQLite:
		return KindTable
	default:
		return KindText
	}
}

// DType pairs a Format with the file extension it reads and writes.
// Values are resolved once from a tag with ParseDType.
type DType struct {
	format Format
	ext    string
}

// Predefined dtypes.
var (
	JSON   = DType{format: FormatJSON, ext: "json"}
	CSV    = DType{format: FormatCSV, ext: "csv"}
	XLSX   = DType{format: FormatXLSX, ext: "xlsx"}
	Pickle = DType{format: FormatPickle, ext: "pickle"}
	SQLite = DType{format: FormatSQLite, ext: "sqlite"}
	All    = DType{format: FormatAll, ext: "all"}
)

var knownDTypes = map[string]DType{
	JSON.ext:   JSON,
	CSV.ext:    CSV,
	XLSX.ext:   XLSX,
	Pickle.ext: Pickle,
	SQLite.ext: SQLite,
	All.ext:    All,
}

// TextDType returns a raw text dtype using ext as the file extension.
func TextDType(ext string) DType {
	return DType{format: FormatText, ext: strings.TrimPrefix(ext, ".")}
}

// ParseDType resolves a dtype tag such as "json", "csv" or "txt".
// Unknown tags are raw text. A leading dot is ignored.
func ParseDType(tag string) (DType, error) {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), ".")
	if tag == "" {
		return DType{}, fmt.Errorf("%w: empty tag", ErrUnsupportedDType)
	}
	if dt, ok := knownDTypes[tag]; ok {
		return dt, nil
	}
	return TextDType(tag), nil
}

// Format returns the codec format.
func (d DType) Format() Format { return d.format }

// Ext returns the file extension without a leading dot.
func (d DType) Ext() string { return d.ext }

// Kind returns the content kind the dtype reads and writes.
func (d DType) Kind() Kind { return d.format.Kind() }

// String returns the tag the dtype was parsed from.
func (d DType) String() string { return d.ext }

// IsTabular reports whether the dtype uses a frame codec.
func (d DType) IsTabular() bool { return d.Kind() == KindTable }

// Writable reports whether files can be written with this dtype.
func (d DType) Writable() bool { return d.format != FormatAll && d.ext != "" }

// Match reports whether the file name belongs to the dtype and returns its
// identifier. The All dtype matches every name and keeps it whole. A name
// that is only the suffix, such as ".json", has no identifier and does not
// match.
func (d DType) Match(name string) (string, bool) {
	if d.format == FormatAll {
		return name, true
	}
	if d.ext == "" {
		return "", false
	}
	suffix := "." + d.ext
	if !strings.HasSuffix(name, suffix) {
		return "", false
	}
	ident := strings.TrimSuffix(name, suffix)
	if ident == "" {
		return "", false
	}
	return ident, true
}

// FileName returns the on-disk name for an identifier.
func (d DType) FileName(ident string) string {
	return ident + "." + d.ext
}
