package server

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/Vlex127/ukoni/internal/config"
)

type Server struct {
	mu         sync.Mutex
	httpServer *http.Server
	closed     bool
}

func New() *Server {
	return &Server{}
}

// Run blocks until the server stops. A graceful Shutdown is not reported as an error.
func (s *Server) Run(cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        cfg.Handler,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.httpServer = srv
	s.mu.Unlock()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops a running server. Called before Run, it makes Run return without listening.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	srv := s.httpServer
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
