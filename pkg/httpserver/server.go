// Package httpserver implements HTTP server.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/device-management-toolkit/storefront/pkg/logger"
)

const (
	_defaultReadTimeout     = 15 * time.Second
	_defaultWriteTimeout    = 60 * time.Second
	_defaultAddr            = ":80"
	_defaultShutdownTimeout = 3 * time.Second
)

// ErrTLSCertKeyRequired is sent on Notify when TLS is enabled without a cert/key pair.
var ErrTLSCertKeyRequired = errors.New("tls enabled: both certFile and keyFile must be set")

// Server -.
type Server struct {
	server          *http.Server
	notify          chan error
	shutdownTimeout time.Duration
	useTLS          bool
	certFile        string
	keyFile         string
	listener        net.Listener
	log             logger.Interface
}

// New starts serving handler in the background. Errors surface on Notify.
func New(handler http.Handler, opts ...Option) *Server {
	httpServer := &http.Server{
		Handler:      handler,
		ReadTimeout:  _defaultReadTimeout,
		WriteTimeout: _defaultWriteTimeout,
		Addr:         _defaultAddr,
	}

	s := &Server{
		server:          httpServer,
		notify:          make(chan error, 1),
		shutdownTimeout: _defaultShutdownTimeout,
		log:             logger.New("info"),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.start()

	return s
}

func (s *Server) start() {
	go func() {
		s.notify <- s.serve()

		close(s.notify)
	}()
}

func (s *Server) serve() error {
	if !s.useTLS {
		s.log.Info("httpserver - listening on %s", s.addr())

		if s.listener != nil {
			return s.server.Serve(s.listener)
		}

		return s.server.ListenAndServe()
	}

	if s.certFile == "" || s.keyFile == "" {
		return ErrTLSCertKeyRequired
	}

	for _, f := range []string{s.certFile, s.keyFile} {
		if _, err := os.Stat(f); err != nil {
			return fmt.Errorf("httpserver - tls: %w", err)
		}
	}

	s.log.Info("httpserver - listening on %s (tls)", s.addr())

	if s.listener != nil {
		return s.server.ServeTLS(s.listener, s.certFile, s.keyFile)
	}

	return s.server.ListenAndServeTLS(s.certFile, s.keyFile)
}

func (s *Server) addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.server.Addr
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown -.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
