package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/bss/internal/server/handlers"
	"github.com/tuncanbit/bss/internal/server/middleware"
	"github.com/tuncanbit/bss/pkg/config"
)

type Server struct {
	Cfg        *config.Config
	Logger     zerolog.Logger
	Router     *gin.Engine
	handlers   *handlers.Handlers
	middleware *middleware.Middleware
	httpServer *http.Server
}

func New(cfg *config.Config, h *handlers.Handlers, mw *middleware.Middleware, logger zerolog.Logger) *Server {
	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		Cfg:        cfg,
		Logger:     logger,
		Router:     gin.New(),
		handlers:   h,
		middleware: mw,
	}
}

func (s *Server) SetupRouter() {
	s.middleware.SetupMiddleware(s.Router)
	s.handlers.SetupHandlers(s.Router)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	s.SetupRouter()

	s.httpServer = &http.Server{
		Addr:         s.Cfg.Server.Host + ":" + s.Cfg.Server.Port,
		Handler:      s.Router,
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 40 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info().Msgf("Starting server on %s", s.httpServer.Addr)
		var err error
		if s.Cfg.Security.TLSCertPath != "" && s.Cfg.Security.TLSKeyPath != "" {
			err = s.httpServer.ListenAndServeTLS(s.Cfg.Security.TLSCertPath, s.Cfg.Security.TLSKeyPath)
		} else {
			err = s.httpServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.Logger.Info().Msg("Shutdown signal received, shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.Logger.Info().Msg("Server exited gracefully")
	return nil
}
