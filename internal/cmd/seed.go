package cmd

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/dendrascience/dendra-fileio/fileio"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const seedPoolSize = 50

// NewSeedCmd creates and returns the seed subcommand.
// It generates sample files of any writable type.
func NewSeedCmd(a *app) *cobra.Command {
	var (
		outputPath string
		fileCount  int
		dtype      string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate sample files",
		Long: `Generate sample files for trying out the other commands.

Each file gets a random hexadecimal identifier and a payload built around a UUID
drawn from a small pool: a record for json, a few table rows for tabular types
and a single UUID line for text. Files are written concurrently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := fileio.ParseDType(dtype)
			if err != nil {
				return err
			}
			if !dt.Writable() {
				return fmt.Errorf("%w: cannot seed %q files", fileio.ErrUnsupportedDType, dt)
			}
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Generating %d %s files in %s\n", fileCount, dt, outputPath)
			}

			contents, err := seedContents(fileCount, dt)
			if err != nil {
				return err
			}
			if err := a.store.WriteDirConcurrent(cmd.Context(), outputPath, contents, dt); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully created %d files\n", len(contents))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().StringVarP(&dtype, "type", "t", "json", "File type to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// seedContents builds count entries with unique random identifiers.
func seedContents(count int, dt fileio.DType) (fileio.Contents, error) {
	uuidPool := make([]string, seedPoolSize)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	baseTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	contents := make(fileio.Contents, count)
	for i := 0; len(contents) < count; i++ {
		name, err := randInt(0xFFFFFFFF)
		if err != nil {
			return nil, err
		}
		ident := fmt.Sprintf("%08x", name)
		if _, exists := contents[ident]; exists {
			continue
		}
		pick, err := randInt(seedPoolSize)
		if err != nil {
			return nil, err
		}
		offset, err := randInt(365 * 24 * 60 * 60)
		if err != nil {
			return nil, err
		}
		id := uuidPool[pick]
		created := baseTime.Add(time.Duration(offset) * time.Second)

		switch dt.Kind() {
		case fileio.KindRecord:
			contents[ident] = fileio.Record{Value: map[string]any{
				"id":      id,
				"index":   int64(i),
				"created": created.Format(time.RFC3339),
			}}
		case fileio.KindTable:
			f := fileio.NewFrame("id", "index", "created", "value")
			for row := range i%3 + 1 {
				value, err := randInt(10000)
				if err != nil {
					return nil, err
				}
				if err := f.Append(id, int64(i), created.Add(time.Duration(row)*time.Minute).Format(time.RFC3339), float64(value)/100); err != nil {
					return nil, err
				}
			}
			contents[ident] = f
		case fileio.KindText:
			contents[ident] = fileio.Text(id + "\n")
		}
	}
	return contents, nil
}

func randInt(n int64) (int64, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}
