// Package server wraps http.Server with sane timeouts, optional TLS and
// graceful shutdown.
package server

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"trigger-console/internal/common/logging"
)

// Server is the console's HTTP server.
type Server struct {
	srv     *http.Server
	tlsCert string
	tlsKey  string
}

// New creates a server listening on the given port. When both TLS paths are
// set the server speaks HTTPS.
func New(handler http.Handler, port, tlsCert, tlsKey string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		tlsCert: tlsCert,
		tlsKey:  tlsKey,
	}
}

// Start begins serving in a background goroutine and returns immediately.
func (s *Server) Start() error {
	serve := func() error { return s.srv.ListenAndServe() }

	if s.tlsCert != "" && s.tlsKey != "" {
		s.srv.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		serve = func() error { return s.srv.ListenAndServeTLS(s.tlsCert, s.tlsKey) }
	}

	go func() {
		if err := serve(); err != nil && err != http.ErrServerClosed {
			logging.Error("server stopped unexpectedly", err)
		}
	}()
	return nil
}

// Shutdown stops accepting new connections and waits for in-flight requests
// until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
