package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-ledger/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger

	// ready is closed once the listener is bound; addr is valid after that.
	ready chan struct{}
	addr  string
}

func newHTTPServer(handler http.Handler, address string, requestTimeout time.Duration, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: requestTimeout,
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// RunServer binds the listener and serves until Shutdown. A clean shutdown is
// not an error.
func (h *httpServer) RunServer() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		close(h.ready)
		return fmt.Errorf("http server listen on %s: %w", h.server.Addr, err)
	}
	h.addr = listener.Addr().String()
	close(h.ready)

	h.logger.Info().Str("address", h.addr).Msg("http server listening")

	if err = h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
