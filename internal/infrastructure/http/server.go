// Package http owns the HTTP server lifecycle: timeouts, startup, and
// graceful shutdown around the Echo instance built by the api package.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server wraps an Echo instance with production server settings.
type Server struct {
	echo *echo.Echo
	addr string
	log  zerolog.Logger
}

func NewServer(e *echo.Echo, port string, log zerolog.Logger) *Server {
	return &Server{
		echo: e,
		addr: ":" + port,
		log:  log,
	}
}

// Run starts the server and blocks until ctx is cancelled, then drains
// in-flight requests for up to shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("http server listening")
		if err := s.echo.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}
