package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"highvis/internal/core/model"
	"highvis/internal/storage"
)

// cliConfig holds the terminal-relevant settings. Keys match settings.yaml.
type cliConfig struct {
	InitialSeconds int    `mapstructure:"initial_seconds"`
	LogLevel       string `mapstructure:"log_level"`
	LogFile        string `mapstructure:"log_file"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	configDir, err := os.UserConfigDir()
	if err != nil {
		return cfg, fmt.Errorf("resolve user config dir: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("HIGHVIS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("initial_seconds", model.DefaultInitialTime)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", filepath.Join(configDir, appName, "highvis-tui.log"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, appName, storage.SettingsFileName))
	}
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}
