package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/pomod/pomod/common"
	"github.com/pomod/pomod/internal/config"
)

const pidFileName = "daemon.pid"

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, pidFileName)
}

// loadDaemonConfig reads the daemon config from the path named by the
// environment, falling back to the conventional location.
func loadDaemonConfig() (config.Config, error) {
	cfgPath := os.Getenv(common.ConfigPathEnv)
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	return config.Load(afero.NewOsFs(), cfgPath)
}

// dataDirFromConfig returns the data directory the daemon stores its
// files in: the configured data_dir when set, the default otherwise.
func dataDirFromConfig(cfg config.Config) (string, error) {
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	return config.DefaultDataDir()
}

// resolveDataDir runs the full config resolution so the pid file is
// looked up in the same directory the daemon wrote it to, including
// data_dir from the config file and the environment override.
func resolveDataDir() (string, error) {
	cfg, err := loadDaemonConfig()
	if err != nil {
		return "", err
	}
	return dataDirFromConfig(cfg)
}

func writePidFile(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(pidFilePath(dataDir), []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPidFile(dataDir string) (int, error) {
	data, err := os.ReadFile(pidFilePath(dataDir))
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("invalid PID: %d", pid)
	}
	return pid, nil
}

func removePidFile(dataDir string) error {
	err := os.Remove(pidFilePath(dataDir))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
