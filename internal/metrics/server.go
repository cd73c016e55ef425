package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"premier-league-notifier/internal/logging"
)

// Server exposes the Prometheus scrape endpoint on its own listener. It only
// runs for local and container deployments; in Lambda metrics stay disabled
// by default and nothing is served.
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// StartServer binds the port and begins serving the scrape handler at
// /metrics in the background. The listener is bound before returning so
// callers see bind errors synchronously.
func StartServer(handler http.Handler, port string, logger *slog.Logger) (*Server, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, err
	}

	s := &Server{srv: &http.Server{Handler: mux}, ln: ln}
	go func() {
		if serveErr := s.srv.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logging.Error(logger, "metrics server stopped", serveErr)
		}
	}()
	return s, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
