package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/conduit-lang/introspect/registry"
)

// Config holds CLI configuration loaded from introspect.yml and the
// environment.
type Config struct {
	Snapshot string `mapstructure:"snapshot"`
	Format   string `mapstructure:"format"`
}

// loadConfig reads introspect.yml (or .yaml) from the working directory.
// A missing config file is not an error; defaults apply.
func loadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("snapshot", "introspect.snapshot.json")
	v.SetDefault("format", "table")

	v.SetConfigName("introspect")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INTROSPECT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// newLogger returns a development logger when --verbose is set and a no-op
// logger otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadRegistry resolves the snapshot path (flag wins over config) and loads
// it into a fresh registry.
func loadRegistry(logger *zap.Logger) (*registry.Registry, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	path := snapshotPath
	if path == "" {
		path = config.Snapshot
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	reg := registry.New()
	if err := reg.LoadJSON(data); err != nil {
		return nil, err
	}

	snapshot := reg.Snapshot()
	logger.Debug("snapshot loaded",
		zap.String("path", path),
		zap.String("version", snapshot.Version),
		zap.Int("routes", len(snapshot.Routes)),
		zap.Int("models", len(snapshot.Models)),
		zap.Int("views", len(snapshot.Views)))

	return reg, nil
}
