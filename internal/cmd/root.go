package cmd

import (
	"log/slog"

	"github.com/dendrascience/dendra-fileio/fileio"
	"github.com/dendrascience/dendra-fileio/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by subcommands once flags and config are read.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        Config
	logger     *slog.Logger
	store      *fileio.Store
}

// setup loads configuration and builds the logger and store.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, a.configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.store = fileio.New(append(cfg.StoreOptions(), fileio.WithLogger(logger))...)
	if path := a.v.ConfigFileUsed(); path != "" {
		logger.Debug("config file loaded", "path", path)
	}
	return nil
}

// NewRootCmd creates and returns the root cobra command for the fileio CLI.
// It sets up all subcommands, command groups, and the shared configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	defaults := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "fileio",
		Short: "fileio - read and write directories of JSON, tabular and text files",
		Long: `fileio reads and writes directories of sibling files that share an extension.

Each file is addressed by its identifier, the file name without the extension.
JSON files are read as records, csv, xlsx, pickle and sqlite files as tables,
and any other extension as raw text. The "all" type reads every file as text.

Use subcommands to perform different operations:
  - read: Print the contents of a directory as JSON
  - write: Write a JSON object of contents into a directory
  - convert: Rewrite a directory from one file type to another
  - validate: Check that every file in a directory can be read
  - count: Summarize the files in a directory
  - seed: Generate sample files
  - init: Write a default configuration file`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file (default: ./fileio.yaml or the user config dir)")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	flags.Int("indent", defaults.Indent, "Spaces used to indent written JSON")
	flags.Int("concurrency", defaults.Concurrency, "Files processed at once by concurrent operations (0 = one per CPU)")
	flags.String("sheet", defaults.Sheet, "Worksheet name for written xlsx files")

	for key, name := range map[string]string{
		cfgKeyLogLevel:    "log-level",
		cfgKeyIndent:      "indent",
		cfgKeyConcurrency: "concurrency",
		cfgKeySheet:       "sheet",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	groupData := "data"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupData,
		Title: "Data Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	readCmd := NewReadCmd(a)
	writeCmd := NewWriteCmd(a)
	convertCmd := NewConvertCmd(a)
	validateCmd := NewValidateCmd(a)
	countCmd := NewCountCmd(a)
	seedCmd := NewSeedCmd(a)
	initCmd := NewInitCmd()
	versionCmd := NewVersionCmd()

	readCmd.GroupID = groupData
	writeCmd.GroupID = groupData
	convertCmd.GroupID = groupData
	validateCmd.GroupID = groupUtilities
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	initCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

