// Package main provides the fileio command-line interface.
//
// fileio reads and writes directories of sibling files that share an
// extension: JSON records, csv, xlsx, pickle and sqlite tables, or raw text.
// Each file is addressed by its identifier, the file name without the
// extension.
//
// The main binary supports multiple subcommands:
//   - read: Print the contents of a directory as JSON
//   - write: Write a JSON object of contents into a directory
//   - convert: Rewrite a directory from one file type to another
//   - validate: Check that every file in a directory can be read
//   - count: Summarize the files in a directory
//   - seed: Generate sample files
//   - init: Write a default configuration file
//   - version: Print build information
package main
