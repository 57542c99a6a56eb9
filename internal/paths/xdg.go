// Package paths resolves the XDG locations kakui uses.
package paths

import (
	"os"
	"path/filepath"
)

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns the kakui config directory ($XDG_CONFIG_HOME/kakui).
func ConfigDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "kakui")
	}
	return filepath.Join(homeDir(), ".config", "kakui")
}

// ConfigFile returns the kakui config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}
