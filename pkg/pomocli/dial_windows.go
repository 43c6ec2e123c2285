//go:build windows

package pomocli

import (
	"context"
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"

	"github.com/pomod/pomod/common"
)

// dial connects to the daemon via named pipe, falling back to TCP.
func dial() (net.Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), common.DefaultDialTimeout)
	defer cancel()
	conn, pipeErr := winio.DialPipeContext(ctx, pipePath())
	if pipeErr != nil {
		conn, err := dialFunc("tcp", tcpAddress())
		if err != nil {
			return nil, fmt.Errorf("failed to connect: named pipe error: %v; tcp error: %w", pipeErr, err)
		}
		return conn, nil
	}
	return conn, nil
}
