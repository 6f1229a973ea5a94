// Package fileio provides the file content access layer for dendra-fileio.
//
// A Store reads and writes single files and whole directories of sibling files
// named <identifier>.<ext>. A DType selects the codec for a file:
//
//   - json: structured records (Record), written with 4-space indentation by default
//   - csv, xlsx, pickle, sqlite: tabular frames (*Frame)
//   - all: read-only sentinel matching every file, read as raw text
//   - anything else: raw text (Text), using the tag as the file extension
//
// Directory operations come in two flavours. ReadDir and WriteDir touch one file
// at a time. ReadDirConcurrent and WriteDirConcurrent start one task per file,
// bounded by the store's concurrency limit, and wait for every task before
// returning. A failing file never stops its siblings.
//
// Every operation returns an error, but on failure the value returned is still
// the benign empty value for its kind (empty string, empty record, empty frame),
// and the failure is logged through the store's slog.Logger. Errors carry a
// platform error code (see Code) so callers can tell "missing" from "corrupt".
// Callers that want the old never-fail behaviour can use Store.Quiet.
//
// Storage is a go-billy filesystem. New uses the local disk; WithFilesystem
// accepts any billy.Filesystem, such as memfs for tests.
package fileio
