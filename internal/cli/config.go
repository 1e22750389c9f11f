// Package cli holds the configuration and terminal rendering of the fintrack
// command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Dan9191/fintrack/internal/projection"
)

// Config is the CLI config file.
type Config struct {
	Assumptions projection.Assumptions `toml:"assumptions"`
}

// DefaultConfig returns the built-in assumptions.
func DefaultConfig() Config {
	return Config{Assumptions: projection.DefaultAssumptions()}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fintrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fintrack")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadConfig reads the config at path, returning defaults if it doesn't
// exist. Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating the directory if needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// LoadSnapshot reads a JSON snapshot of a user's records.
func LoadSnapshot(path string) (projection.InsightInput, error) {
	var in projection.InsightInput
	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("reading snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return in, nil
}
