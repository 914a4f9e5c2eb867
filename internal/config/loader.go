package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load merges configuration sources: defaults, then the global config file,
// then the project one, then environment overrides. A missing file is not an
// error; defaults always produce a usable config.
func Load() (*Config, error) {
	cfg := Default()

	if home, err := os.UserHomeDir(); err == nil {
		_ = loadFile(filepath.Join(home, ".taskflowd", "config.yaml"), cfg)
	}
	if cwd, err := os.Getwd(); err == nil {
		_ = loadFile(filepath.Join(cwd, ".taskflowd", "config.yaml"), cfg)
	}

	ApplyEnv(cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(cfg)
}

// GlobalConfigPath returns the path of the per-user config file.
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".taskflowd", "config.yaml")
}
