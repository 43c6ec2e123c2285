//go:build windows

package server

import (
	"net"
	"os"

	"github.com/Microsoft/go-winio"

	"github.com/pomod/pomod/common"
)

// DefaultSocketPath returns the named pipe path, honoring the
// environment override.
func DefaultSocketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return `\\.\pipe\pomod`
}

func listenSocket(path string) (net.Listener, error) {
	return winio.ListenPipe(path, nil)
}
