package cmd

import (
	"errors"
	"fmt"

	"github.com/dendrascience/dendra-fileio/fileio"
	"github.com/spf13/cobra"
)

// NewReadCmd creates and returns the read subcommand.
// It prints the contents of a directory as a JSON object keyed by identifier.
func NewReadCmd(a *app) *cobra.Command {
	var (
		dtype      string
		concurrent bool
	)

	cmd := &cobra.Command{
		Use:   "read DIR",
		Short: "Print the contents of a directory as JSON",
		Long: `Read every file in DIR with the given type and print a JSON object
mapping each identifier to its content.

Records are printed as JSON values, tables as {"columns": [...], "rows": [...]}
and text as strings. A missing directory prints an empty object. Files that fail
to read are printed with an empty value and reported on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := fileio.ParseDType(dtype)
			if err != nil {
				return err
			}

			var contents fileio.Contents
			var readErr error
			if concurrent {
				contents, readErr = a.store.ReadDirConcurrent(cmd.Context(), args[0], dt)
			} else {
				contents, readErr = a.store.ReadDir(args[0], dt)
			}

			data, err := fileio.EncodeContents(contents)
			if err != nil {
				return errors.Join(readErr, err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return errors.Join(readErr, err)
			}
			if readErr != nil {
				return fmt.Errorf("some files could not be read: %w", readErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dtype, "type", "t", "json", "File type to read (json, csv, xlsx, pickle, sqlite, all or any extension)")
	cmd.Flags().BoolVar(&concurrent, "concurrent", false, "Read files concurrently")

	return cmd
}
