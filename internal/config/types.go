package config

// Config is the top-level kakui configuration.
type Config struct {
	Editor      EditorConfig      `toml:"editor"`
	Session     string            `toml:"session"`
	UIOptions   map[string]string `toml:"ui_options"`
	StartupKeys []string          `toml:"startup_keys"`
}

// EditorConfig describes how to spawn the editor subprocess. The UI-mode
// flags are not configurable; the session package always adds them.
type EditorConfig struct {
	Command string            `toml:"command"`
	Args    []string          `toml:"args"`
	Env     map[string]string `toml:"env"`
}
