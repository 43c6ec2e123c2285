//go:build !windows

package pomocli

import (
	"os"
	"path/filepath"

	"github.com/pomod/pomod/common"
)

func socketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "pomod.sock")
}

func getConnectionPath() string {
	return socketPath()
}
