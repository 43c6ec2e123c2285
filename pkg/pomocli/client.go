// Package pomocli is the client library for the pomod daemon. It speaks
// the framed JSON protocol over the unix socket (or named pipe on
// Windows) with a localhost TCP fallback, and transparently spawns the
// daemon when none is running.
package pomocli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/pomod/pomod/common"
)

// Client is a connection to the pomod daemon. Safe for concurrent use;
// requests are serialized on the single connection.
type Client struct {
	mu   sync.Mutex
	conn net.Conn
}

// NewClient connects to a running daemon, spawning one first if needed.
func NewClient() (*Client, error) {
	if err := ensureDaemon(); err != nil {
		return nil, err
	}
	conn, err := dial()
	if err != nil {
		return nil, fmt.Errorf("error connecting to daemon: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the daemon connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(method common.Method, message any) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	buf, err := json.Marshal(&Request{
		Method:  method,
		Message: message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", method, err)
	}
	if err = write(c.conn, buf); err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", method, err)
	}
	buf, err = read(c.conn)
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", method, err)
	}
	var res Response
	if err = json.Unmarshal(buf, &res); err != nil {
		return nil, fmt.Errorf("failed to read %s reply: %w", method, err)
	}
	if !res.Ok {
		return nil, errors.New(res.Error)
	}
	return res.Message, nil
}
