package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
)

// cliConfig is the optional on-disk configuration at
// <user config dir>/eurocode/config.toml. Explicit flags always win
// over file values.
type cliConfig struct {
	Country string `toml:"country"`
	JSON    bool   `toml:"json"`
}

// configPath returns the config file location for the current user.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "eurocode", "config.toml"), nil
}

// loadConfig reads the config file. A missing file is not an error and
// yields nil; a present but unparsable file is reported.
func loadConfig() (*cliConfig, error) {
	path, err := configPath()
	if err != nil {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg cliConfig
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfigDefaults fills flags the user did not set explicitly from
// the config file.
func applyConfigDefaults(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}
	flags := cmd.Root().PersistentFlags()
	if !flags.Changed("country") && cfg.Country != "" {
		countryFlag = cfg.Country
	}
	if !flags.Changed("json") && cfg.JSON {
		jsonFlag = true
	}
	return nil
}
