// Package cmd provides the command-line interface implementation for fileio.
//
// This package contains all the subcommand implementations for the fileio CLI
// tool. It uses the Cobra library for command structure, Fang for styling,
// Viper for configuration and tint for log output on stderr.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, shared flags and configuration
//   - read, write: Directory contents as JSON on stdout and stdin
//   - convert: Rewriting a directory from one file type to another
//   - validate: Reading every file and reporting failures
//   - count: Listing summaries
//   - seed: Sample file generation
//   - init: Default configuration file
//   - version: Build information
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Commands that touch files share the
// fileio.Store built by the root command from flags and fileio.yaml.
package cmd
