package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dendrascience/dendra-fileio/fileio"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand.
// It summarizes the files of one type in a directory.
func NewCountCmd(a *app) *cobra.Command {
	var (
		path   string
		dtype  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Summarize the files in a directory",
		Long: `Count the files of the given type directly inside a directory and
report their total size and modification time range.

The directory is not walked recursively. The default type "all" counts every
regular file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			dt, err := fileio.ParseDType(dtype)
			if err != nil {
				return err
			}
			listing, err := a.store.List(path, dt)
			if err != nil {
				return err
			}
			sum := listing.Summarize()

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}
			fmt.Fprintf(out, "Total files: %d\n", sum.Count)
			fmt.Fprintf(out, "Total size: %d bytes\n", sum.TotalSize)
			if sum.Count > 0 {
				fmt.Fprintf(out, "Oldest: %s\n", sum.Oldest.Format(time.RFC3339))
				fmt.Fprintf(out, "Newest: %s\n", sum.Newest.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count files in")
	cmd.Flags().StringVarP(&dtype, "type", "t", "all", "File type to count")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")

	return cmd
}
