package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/pomod/pomod/common"
	"github.com/pomod/pomod/pkg/logger"
)

// Server accepts command connections from CLI clients over a unix socket
// (named pipe on Windows), falling back to TCP on localhost, and
// dispatches framed requests to registered handlers.
type Server struct {
	log        logger.Logger
	handlers   map[common.Method]HandlerFunc
	socketPath string
	port       int
	web        *WebServer
	listener   net.Listener
	mu         sync.Mutex
}

// NewServer creates a server listening on socketPath with the given TCP
// fallback port. web may be nil when the web bridge is disabled.
func NewServer(l logger.Logger, socketPath string, port int, web *WebServer) *Server {
	return &Server{
		log:        l,
		handlers:   make(map[common.Method]HandlerFunc),
		socketPath: socketPath,
		port:       port,
		web:        web,
	}
}

// RegisterHandler associates a handler with a command method.
func (s *Server) RegisterHandler(method common.Method, handler HandlerFunc) {
	s.handlers[method] = handler
}

func (s *Server) createListener() (net.Listener, error) {
	l, err := listenSocket(s.socketPath)
	if err != nil {
		s.log.Warning("socket listener failed (%v), falling back to tcp", err)
		tcpListener, tcpErr := net.Listen("tcp", fmt.Sprintf("localhost:%d", s.port))
		if tcpErr != nil {
			return nil, fmt.Errorf("error listening: %w", tcpErr)
		}
		return tcpListener, nil
	}
	return l, nil
}

// Start begins accepting connections and blocks until ctx is cancelled.
// Each connection is handled in its own goroutine.
func (s *Server) Start(ctx context.Context) error {
	if s.web != nil {
		go func() {
			if err := s.web.Start(); err != nil {
				s.log.Error("web bridge stopped: %v", err)
			}
		}()
	}

	l, err := s.createListener()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	s.log.Info("listening on %s", l.Addr())
	for {
		conn, err := l.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			s.log.Error("accept failed: %v", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

// Shutdown closes the listener, the web bridge, and removes the socket file.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.log.Warning("closing listener: %v", err)
		}
		s.listener = nil
	}

	if s.web != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.web.Shutdown(shutdownCtx); err != nil {
			s.log.Warning("shutting down web bridge: %v", err)
		}
	}

	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		s.log.Warning("removing socket file: %v", err)
	}
	return nil
}

func (s *Server) handleConnection(conn net.Conn) {
	sconn := NewSyncConn(conn)
	defer conn.Close()
	for {
		buf, err := sconn.Read()
		if err != nil {
			if err != io.EOF {
				s.log.Warning("read failed: %v", err)
			}
			return
		}
		if err := s.handleRequest(sconn, buf); err != nil {
			s.log.Error("handling request: %v", err)
			return
		}
	}
}

func (s *Server) handleRequest(sconn *SyncConn, b []byte) error {
	req, err := ParseRequest(b)
	if err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}
	handler, ok := s.handlers[req.Method]
	if !ok {
		return sconn.Write(CreateError("unknown method: " + string(req.Method)))
	}
	res, err := handler(req.Message)
	if err != nil {
		return sconn.Write(InitError(err))
	}
	return sconn.Write(MakeResult(res))
}
