package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInitCmd creates and returns the init subcommand.
// It writes a default configuration file.
func NewInitCmd() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write fileio.yaml with the default settings. An existing file is left
untouched unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := writeConfig(outputPath, DefaultConfig(), force)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", outputPath)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", configFileName+"."+configFileType, "Path of the config file to write")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
