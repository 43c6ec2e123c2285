// Package config loads the daemon configuration file. Every value has a
// working default so a missing file is not an error, and environment
// variables override the file for scripted setups.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/pomod/pomod/common"
)

// Config is the daemon configuration.
type Config struct {
	// SocketPath overrides the default unix socket location.
	SocketPath string `yaml:"socket_path"`

	// TCPPort is the localhost fallback port used when the socket
	// cannot be created.
	TCPPort int `yaml:"tcp_port"`

	// DataDir holds the sqlite store.
	DataDir string `yaml:"data_dir"`

	// LogFile, when set, redirects daemon logging from stderr to a file.
	LogFile string `yaml:"log_file"`

	// Web enables the localhost HTTP bridge (JSON-RPC + websocket).
	Web struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"web"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.TCPPort = common.DefaultTCPPort
	c.Web.Port = common.DefaultWebPort
	return c
}

// DefaultPath returns the conventional config file location, or an empty
// string if the user config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pomod", "config.yml")
}

// DefaultDataDir returns the data directory used when the config does
// not name one.
func DefaultDataDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "pomod"), nil
}

// Load reads the config at path, falling back to defaults when the file
// is absent. Environment variables override file values.
func Load(fs afero.Fs, path string) (Config, error) {
	c := Default()
	if path != "" {
		raw, err := afero.ReadFile(fs, path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &c); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	applyEnv(&c)
	if c.TCPPort <= 0 || c.TCPPort > 65535 {
		return Config{}, fmt.Errorf("invalid tcp_port %d", c.TCPPort)
	}
	if c.Web.Enabled && (c.Web.Port <= 0 || c.Web.Port > 65535) {
		return Config{}, fmt.Errorf("invalid web port %d", c.Web.Port)
	}
	return c, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv(common.SocketPathEnv); v != "" {
		c.SocketPath = v
	}
	if v := os.Getenv(common.TCPPortEnv); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.TCPPort = port
		}
	}
	if v := os.Getenv(common.DataDirEnv); v != "" {
		c.DataDir = v
	}
}
