package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dendrascience/dendra-fileio/fileio"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "fileio"
	configFileType = "yaml"

	cfgKeyLogLevel    = "log_level"
	cfgKeyIndent      = "indent"
	cfgKeyConcurrency = "concurrency"
	cfgKeySheet       = "sheet"
)

// Config holds the settings shared by every command. Values come from flags,
// then fileio.yaml, then the defaults below.
type Config struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	Indent      int    `mapstructure:"indent" yaml:"indent"`
	Concurrency int    `mapstructure:"concurrency" yaml:"concurrency"`
	Sheet       string `mapstructure:"sheet" yaml:"sheet"`
}

// DefaultConfig returns the built-in settings. A concurrency of 0 means one
// worker per CPU.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		Indent:      fileio.DefaultIndent,
		Concurrency: 0,
		Sheet:       fileio.DefaultSheet,
	}
}

// StoreOptions converts the settings into store options.
func (c Config) StoreOptions() []fileio.Option {
	return []fileio.Option{
		fileio.WithIndent(c.Indent),
		fileio.WithConcurrency(c.Concurrency),
		fileio.WithSheet(c.Sheet),
	}
}

// configDirs returns the directories searched for fileio.yaml.
func configDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "fileio"))
	}
	return dirs
}

// loadConfig reads fileio.yaml into v. An explicit path must exist; a missing
// file in the search directories is not an error.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	defaults := DefaultConfig()
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyIndent, defaults.Indent)
	v.SetDefault(cfgKeyConcurrency, defaults.Concurrency)
	v.SetDefault(cfgKeySheet, defaults.Sheet)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// writeConfig writes cfg as YAML to path. An existing file is kept unless
// force is set.
func writeConfig(path string, cfg Config, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
