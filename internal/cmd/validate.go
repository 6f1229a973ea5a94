package cmd

import (
	"fmt"
	"os"

	"github.com/dendrascience/dendra-fileio/fileio"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates and returns the validate subcommand.
// It reads every matching file and reports the ones that fail.
func NewValidateCmd(a *app) *cobra.Command {
	var (
		dirPath string
		dtype   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that every file in a directory can be read",
		Long: `Read every file of the given type in a directory and report each one
that is missing, unreadable or malformed.

The command exits with a non-zero status when any file fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := fileio.ParseDType(dtype)
			if err != nil {
				return err
			}
			return runValidate(cmd, a.store, dirPath, dt, verbose)
		},
	}

	cmd.Flags().StringVarP(&dirPath, "path", "p", "", "Directory to validate (required)")
	cmd.Flags().StringVarP(&dtype, "type", "t", "json", "File type to validate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("path")

	return cmd
}

func runValidate(cmd *cobra.Command, store *fileio.Store, dirPath string, dt fileio.DType, verbose bool) error {
	out := cmd.OutOrStdout()

	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("directory does not exist: %s", dirPath)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", fileio.ErrExpectedDirectory, dirPath)
	}

	if verbose {
		fmt.Fprintf(out, "Validating %s files in %s\n", dt, dirPath)
	}

	listing, err := store.List(dirPath, dt)
	if err != nil {
		return err
	}

	var totalErrors int
	for e := range listing.Iterate {
		if _, err := store.ReadContent(e.Path, dt); err != nil {
			totalErrors++
			fmt.Fprintf(out, "File %s is invalid:\n  - %s\n", e.Path, err)
			continue
		}
		if verbose {
			fmt.Fprintf(out, "File %s is valid\n", e.Path)
		}
	}

	fmt.Fprintf(out, "\nValidation complete:\n")
	fmt.Fprintf(out, "  Files checked: %d\n", listing.Len())
	fmt.Fprintf(out, "  Total errors: %d\n", totalErrors)

	if totalErrors > 0 {
		return fmt.Errorf("%d of %d files failed validation", totalErrors, listing.Len())
	}
	return nil
}
