//go:build !windows

package server

import (
	"net"
	"os"
	"path/filepath"

	"github.com/pomod/pomod/common"
)

// DefaultSocketPath returns the socket path, honoring the environment
// override.
func DefaultSocketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "pomod.sock")
}

func listenSocket(path string) (net.Listener, error) {
	_ = os.Remove(path)
	l, err := net.ListenUnix("unix", &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, err
	}
	_ = os.Chmod(path, 0o600)
	return l, nil
}
