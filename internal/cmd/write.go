package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dendrascience/dendra-fileio/fileio"
	"github.com/spf13/cobra"
)

// NewWriteCmd creates and returns the write subcommand.
// It writes a JSON object of identifier to content into a directory.
func NewWriteCmd(a *app) *cobra.Command {
	var (
		dtype      string
		inputPath  string
		concurrent bool
	)

	cmd := &cobra.Command{
		Use:   "write DIR",
		Short: "Write a JSON object of contents into a directory",
		Long: `Write each entry of a JSON object to DIR/<identifier>.<type>.

The object is read from --input, or from stdin when --input is "-" or unset.
Values follow the output of the read command: JSON values for records,
{"columns": [...], "rows": [...]} objects for tables and strings for text.
DIR and its parents are created as needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := fileio.ParseDType(dtype)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, inputPath)
			if err != nil {
				return err
			}
			contents, err := fileio.DecodeContents(data, dt)
			if err != nil {
				return fmt.Errorf("decode input: %w", err)
			}

			if concurrent {
				err = a.store.WriteDirConcurrent(cmd.Context(), args[0], contents, dt)
			} else {
				err = a.store.WriteDir(args[0], contents, dt)
			}
			if err != nil {
				return fmt.Errorf("some files could not be written: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(contents), args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&dtype, "type", "t", "json", "File type to write (json, csv, xlsx, pickle, sqlite or any extension)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "JSON file holding the contents, - for stdin")
	cmd.Flags().BoolVar(&concurrent, "concurrent", false, "Write files concurrently")

	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
