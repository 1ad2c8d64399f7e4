// Package config loads taskdesk settings from a TOML file, preferring a
// project-local .taskdesk directory over the user config dir.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

type Config struct {
	BaseURL        string `toml:"base_url"`
	RequestTimeout string `toml:"request_timeout"`
	ExportDir      string `toml:"export_dir"`
	Locale         string `toml:"locale"`
	LogFile        string `toml:"log_file"`
}

const TaskdeskDir = ".taskdesk"

const DefaultConfigToml = `# taskdesk configuration

# Remote task store (json-server compatible REST API)
base_url = "http://localhost:3000"

# Per-request timeout for remote calls
request_timeout = "10s"

# Directory task exports are written to ("" = current directory)
export_dir = ""

# Collation locale for title sorting
locale = "es"

# Log file ("" = <config dir>/taskdesk.log)
log_file = ""
`

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	// DefaultConfigToml is a constant; a decode failure is a programming error.
	if _, err := toml.Decode(DefaultConfigToml, &cfg); err != nil {
		panic(err)
	}
	return cfg
}

// LoadFromRoot reads the config file under root, falling back to the user
// config dir and finally the built-in defaults. Missing files are not an
// error; malformed files are.
func LoadFromRoot(root string) (Config, error) {
	cfg := Default()
	path := configPath(root)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EnsureInitialized writes the default config file under root if none exists.
func EnsureInitialized(root string) error {
	dir := filepath.Join(root, TaskdeskDir)
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(DefaultConfigToml), 0o644)
}

// Timeout parses the configured request timeout, falling back to 10s.
func (c Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// LanguageTag parses the configured locale, falling back to Spanish.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// LogPath resolves the log file location.
func (c Config) LogPath(root string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(root, TaskdeskDir, "taskdesk.log")
}

// configPath prefers the project-local file, then the user config dir.
func configPath(root string) string {
	local := filepath.Join(root, TaskdeskDir, "config.toml")
	if _, err := os.Stat(local); err == nil {
		return local
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		global := filepath.Join(configDir, "taskdesk", "config.toml")
		if _, err := os.Stat(global); err == nil {
			return global
		}
	}
	return local
}
