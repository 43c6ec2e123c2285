package common

// Environment variable names for configuration.
const (
	// SocketPathEnv is the environment variable for a custom socket path.
	SocketPathEnv = "POMOD_SOCKET_PATH"

	// TCPPortEnv is the environment variable for the TCP fallback port.
	TCPPortEnv = "POMOD_TCP_PORT"

	// DataDirEnv is the environment variable for the daemon data directory.
	DataDirEnv = "POMOD_DATA_DIR"

	// ConfigPathEnv is the environment variable for the daemon config file.
	ConfigPathEnv = "POMOD_CONFIG"
)
