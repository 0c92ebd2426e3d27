package config

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultFile     = "blueprint.md"
	DefaultHost     = "127.0.0.1"
	DefaultPort     = 3141
	DefaultLogLevel = "info"
	DefaultKeep     = 200
)

// ProjectFileNames are looked up, in order, in the project directory
var ProjectFileNames = []string{".nira.toml", "nira.toml"}

// Config is the effective nira configuration
type Config struct {
	File     string        `toml:"file"`
	LogLevel string        `toml:"log_level"`
	Server   ServerConfig  `toml:"server"`
	Journal  JournalConfig `toml:"journal"`
}

// ServerConfig controls `nira serve`
type ServerConfig struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	OpenBrowser bool   `toml:"open_browser"`
}

// JournalConfig controls the revision journal
type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	DataDir string `toml:"data_dir"`
	Keep    int    `toml:"keep"`
}

// Addr returns host:port for the live server
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		File:     DefaultFile,
		LogLevel: DefaultLogLevel,
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			OpenBrowser: true,
		},
		Journal: JournalConfig{
			Enabled: true,
			Keep:    DefaultKeep,
		},
	}
}

// Load builds the configuration from, in increasing priority:
// defaults, the user config file, the project config file in dir, and
// NIRA_* environment variables. Command-line flags are applied by the caller.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if path := UserConfigFile(); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	if path := ProjectConfigFile(dir); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component can work with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("file must not be empty")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q (expected debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// loadFile decodes a TOML file over cfg. Keys the file sets replace the
// current values; keys it omits are left alone.
func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// UserConfigFile returns the user-level config file if it exists:
// $XDG_CONFIG_HOME/nira/config.toml or the OS equivalent.
func UserConfigFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	path := filepath.Join(dir, "nira", "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// ProjectConfigFile returns the first project config file found in dir
func ProjectConfigFile(dir string) string {
	for _, name := range ProjectFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFromEnv overrides config from environment variables
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("NIRA_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("NIRA_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("NIRA_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid NIRA_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("NIRA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NIRA_NO_OPEN"); v != "" {
		cfg.Server.OpenBrowser = !boolFromString(v)
	}
	if v := os.Getenv("NIRA_JOURNAL"); v != "" {
		cfg.Journal.Enabled = boolFromString(v)
	}
	if v := os.Getenv("NIRA_DATA_DIR"); v != "" {
		cfg.Journal.DataDir = v
	}
	return nil
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

// Encode writes cfg as TOML, in the same shape Load reads
func Encode(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
