package httpsrv

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Server exposes the health and metrics endpoints. It is optional: the
// watchdog itself has no network surface.
type Server struct {
	srv    *http.Server
	router *http.ServeMux
}

func NewServer(addr, metricsPath string, metrics http.Handler) *Server {
	router := http.NewServeMux()

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	router.Handle("/health", healthHandler())
	router.Handle(metricsPath, metrics)

	return &Server{
		srv:    srv,
		router: router,
	}
}

func (s *Server) ListenAddr() string {
	return s.srv.Addr
}

func (s *Server) Start() error {
	err := s.srv.ListenAndServe()

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
