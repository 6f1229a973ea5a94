// Package version reports build metadata for the fileio binary.
//
// Values set at link time take precedence:
//
//	-ldflags "-X github.com/dendrascience/dendra-fileio/version.Version=v1.0.0 -X github.com/dendrascience/dendra-fileio/version.Commit=abc123"
//
// Otherwise the module version and VCS settings embedded by the Go toolchain
// are used, with "development" and "unknown" as the last resort.
package version
