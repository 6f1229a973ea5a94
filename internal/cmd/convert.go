package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dendrascience/dendra-fileio/fileio"
	"github.com/spf13/cobra"
)

// NewConvertCmd creates and returns the convert subcommand.
// It rewrites every file of one type in a directory as another type.
func NewConvertCmd(a *app) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		fromType   string
		toType     string
		verbose    bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Rewrite a directory from one file type to another",
		Long: `Read every file of type --from in --input and write it as type --to
into --output, keeping identifiers.

Tables become records as a list of row objects, records become tables from an
object or a list of objects, and text is parsed as JSON or CSV. Files that fail
to read or convert are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := fileio.ParseDType(fromType)
			if err != nil {
				return err
			}
			to, err := fileio.ParseDType(toType)
			if err != nil {
				return err
			}
			if !to.Writable() {
				return fmt.Errorf("%w: cannot convert to %q", fileio.ErrUnsupportedDType, to)
			}
			if from == to && samePath(inputPath, outputPath) {
				return fmt.Errorf("input and output are the same directory and type: %s", inputPath)
			}
			return runConvert(cmd, a.store, convertOptions{
				input:   inputPath,
				output:  outputPath,
				from:    from,
				to:      to,
				verbose: verbose,
				dryRun:  dryRun,
			})
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input directory (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output directory (required)")
	cmd.Flags().StringVarP(&fromType, "from", "f", "", "File type to read (required)")
	cmd.Flags().StringVarP(&toType, "to", "t", "", "File type to write (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

type convertOptions struct {
	input, output string
	from, to      fileio.DType
	verbose       bool
	dryRun        bool
}

func runConvert(cmd *cobra.Command, store *fileio.Store, opts convertOptions) error {
	out := cmd.OutOrStdout()

	listing, err := store.List(opts.input, opts.from)
	if err != nil {
		return err
	}
	if opts.verbose {
		fmt.Fprintf(out, "Converting %d %s files in %s to %s in %s\n",
			listing.Len(), opts.from, opts.input, opts.to, opts.output)
		if opts.dryRun {
			fmt.Fprintln(out, "DRY RUN - no changes will be made")
		}
	}

	if opts.dryRun {
		fmt.Fprintln(out, "Files that would be written:")
		for e := range listing.Iterate {
			fmt.Fprintf(out, "  %s -> %s\n", e.Path, filepath.Join(opts.output, opts.to.FileName(e.Ident)))
		}
		return nil
	}

	var errs []error
	converted := make(fileio.Contents, listing.Len())
	for e := range listing.Iterate {
		c, err := store.ReadContent(e.Path, opts.from)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c, err = fileio.Convert(c, opts.to.Kind())
		if err != nil {
			errs = append(errs, fmt.Errorf("convert %s: %w", e.Path, err))
			continue
		}
		converted[e.Ident] = c
	}

	if err := store.WriteDir(opts.output, converted, opts.to); err != nil {
		errs = append(errs, err)
	}

	if opts.verbose {
		fmt.Fprintf(out, "Conversion complete!\n")
		fmt.Fprintf(out, "  Files converted: %d\n", len(converted))
		fmt.Fprintf(out, "  Files skipped: %d\n", listing.Len()-len(converted))
		fmt.Fprintf(out, "  Output directory: %s\n", opts.output)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("conversion finished with errors: %w", err)
	}
	return nil
}

// samePath reports whether two paths name the same directory once made
// absolute and cleaned.
func samePath(path1, path2 string) bool {
	abs1, err1 := filepath.Abs(path1)
	abs2, err2 := filepath.Abs(path2)
	if err1 != nil || err2 != nil {
		return filepath.Clean(path1) == filepath.Clean(path2)
	}
	return abs1 == abs2
}
