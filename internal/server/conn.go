package server

import (
	"net"
	"sync"
)

// SyncConn wraps a net.Conn with per-direction locking so a handler and
// the read loop never interleave partial frames.
type SyncConn struct {
	conn net.Conn
	rmu  sync.Mutex
	wmu  sync.Mutex
}

// NewSyncConn wraps conn.
func NewSyncConn(conn net.Conn) *SyncConn {
	return &SyncConn{conn: conn}
}

// Read reads one framed message.
func (c *SyncConn) Read() ([]byte, error) {
	c.rmu.Lock()
	defer c.rmu.Unlock()
	return readFrame(c.conn)
}

// Write writes one framed message.
func (c *SyncConn) Write(b []byte) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return writeFrame(c.conn, b)
}
