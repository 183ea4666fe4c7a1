package httpserver

import (
	"net"
	"time"

	"github.com/device-management-toolkit/storefront/pkg/logger"
)

// Option -.
type Option func(*Server)

// Port sets the listen address from a host and port pair.
func Port(host, port string) Option {
	return func(s *Server) {
		s.server.Addr = net.JoinHostPort(host, port)
	}
}

// TLS enables TLS and optionally sets cert and key file paths.
func TLS(enable bool, certFile, keyFile string) Option {
	return func(s *Server) {
		s.useTLS = enable
		s.certFile = certFile
		s.keyFile = keyFile
	}
}

// Listener serves on an already bound listener instead of Addr.
func Listener(l net.Listener) Option {
	return func(s *Server) {
		s.listener = l
	}
}

// ReadTimeout overrides the default. Zero or negative keeps the default.
func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.server.ReadTimeout = timeout
		}
	}
}

// WriteTimeout overrides the default. Zero or negative keeps the default.
func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.server.WriteTimeout = timeout
		}
	}
}

// ShutdownTimeout overrides the default. Zero or negative keeps the default.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}

// Logger injects a logger to be used by the HTTP server internals.
func Logger(l logger.Interface) Option {
	return func(s *Server) {
		s.log = l
	}
}
