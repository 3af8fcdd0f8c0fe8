package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Server runs the HTTP facade.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer builds the gin engine with CORS and all API routes mounted.
func NewServer(cfg config.ServerConfig, handler *Handler, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	engine.Use(cors.New(corsConfig))

	handler.Register(engine)

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.ListenAddress,
			Handler: engine,
		},
		logger: logger,
	}
}

// Start begins serving in the background.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("address", s.httpServer.Addr))

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
