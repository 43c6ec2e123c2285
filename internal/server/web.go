package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/creachadair/jrpc2/jhttp"

	"github.com/pomod/pomod/pkg/logger"
)

// WebServer exposes the daemon over HTTP on localhost: a JSON-RPC 2.0
// endpoint at /rpc (Bearer token required) and a websocket state stream
// at /ws for live countdown displays.
type WebServer struct {
	log    logger.Logger
	port   int
	secret string
	driver Driver
	bridge jhttp.Bridge
	server *http.Server
	mu     sync.Mutex
}

// NewWebServer creates the web bridge. An empty secret disables all
// /rpc access but the constructor succeeds, so callers can still serve
// the (also token-guarded) state stream knowing it will reject clients.
func NewWebServer(l logger.Logger, d Driver, port int, secret string) *WebServer {
	return &WebServer{
		log:    l,
		port:   port,
		secret: secret,
		driver: d,
		bridge: newRPCBridge(d),
	}
}

// Start runs the HTTP server. Blocks until Shutdown is called.
func (s *WebServer) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/rpc", requireToken(s.secret, s.bridge))
	mux.Handle("/ws", requireToken(s.secret, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveStateStream(s.driver, w, r)
	})))

	s.mu.Lock()
	s.server = &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler: mux,
	}
	srv := s.server
	s.mu.Unlock()

	s.log.Info("web bridge listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes the bridge.
func (s *WebServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bridge.Close()
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
