package pomocli

import (
	"fmt"
	"net"
	"time"
)

const (
	daemonStartTimeout = 3 * time.Second
	socketPollInterval = 50 * time.Millisecond
)

// ensureDaemon checks whether the daemon is reachable and spawns it if
// not.
func ensureDaemon() error {
	path := getConnectionPath()
	if isDaemonRunning(path) {
		return nil
	}
	if err := spawnDaemon(); err != nil {
		return err
	}
	return waitForSocket(path, daemonStartTimeout)
}

// isDaemonRunning probes the socket/pipe and the TCP fallback.
func isDaemonRunning(path string) bool {
	if conn, err := probe(path); err == nil {
		conn.Close()
		return true
	}
	if conn, err := net.DialTimeout("tcp", tcpAddress(), socketPollInterval); err == nil {
		conn.Close()
		return true
	}
	return false
}

// waitForSocket polls until the socket becomes reachable or the timeout
// expires.
func waitForSocket(path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if isDaemonRunning(path) {
			return nil
		}
		time.Sleep(socketPollInterval)
	}
	return fmt.Errorf("daemon failed to start within %v", timeout)
}
