package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ErikSvanes/flashcards/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, address string, requestTimeout time.Duration, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:    address,
		Handler: handler,
	}
	if requestTimeout > 0 {
		srv.Handler = http.TimeoutHandler(handler, requestTimeout, "")
		srv.ReadHeaderTimeout = requestTimeout
		srv.ReadTimeout = requestTimeout
		srv.WriteTimeout = requestTimeout + time.Second
	}

	return &httpServer{server: srv, logger: logger}
}

// RunServer blocks until the listener fails or the server is shut down.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("launching HTTP server")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	h.logger.Info().Msg("HTTP server stopped")
	return nil
}
