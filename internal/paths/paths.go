// Package paths resolves the configuration directory and database file
// location from flags, config values, environment variables, and platform
// defaults.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDatabaseName is the database file used when nothing overrides it,
// relative to the current working directory.
const DefaultDatabaseName = "datapainter.db"

// Environment variable names for location overrides.
const (
	EnvConfigDir = "DATAPAINTER_CONFIG_DIR"
	EnvDatabase  = "DATAPAINTER_DB"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/datapainter (fallback ~/.config/datapainter)
// macOS:   ~/Library/Application Support/datapainter
// Windows: %APPDATA%/datapainter
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "datapainter"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "datapainter"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "datapainter"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > DATAPAINTER_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDatabase returns the database file path following the precedence
// chain: flag > config.yaml value > DATAPAINTER_DB env > $(CWD)/datapainter.db.
func ResolveDatabase(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDatabase); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDatabaseName), nil
}
