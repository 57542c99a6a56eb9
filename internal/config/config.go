// Package config loads the kakui TOML configuration.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/lydakis/kakui/internal/paths"
)

// DefaultEditor is spawned when no command is configured.
const DefaultEditor = "kak"

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads the config file and returns the parsed Config.
// If the config file does not exist, it returns the defaults (no error).
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom reads and parses a config file at the given path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyDefaults(&cfg)
	expandConfigEnvVars(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Editor.Command == "" {
		cfg.Editor.Command = DefaultEditor
	}
	if cfg.UIOptions == nil {
		cfg.UIOptions = make(map[string]string)
	}
}

func expandConfigEnvVars(cfg *Config) {
	cfg.Editor.Command = expandEnvVars(cfg.Editor.Command)
	cfg.Session = expandEnvVars(cfg.Session)

	for i := range cfg.Editor.Args {
		cfg.Editor.Args[i] = expandEnvVars(cfg.Editor.Args[i])
	}
	for k, v := range cfg.Editor.Env {
		cfg.Editor.Env[k] = expandEnvVars(v)
	}
	for k, v := range cfg.UIOptions {
		cfg.UIOptions[k] = expandEnvVars(v)
	}
}

// expandEnvVars replaces ${VAR_NAME} with the value of the environment variable.
func expandEnvVars(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRe.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match // leave unresolved vars as-is
	})
}
