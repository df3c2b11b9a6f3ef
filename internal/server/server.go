// internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecommerce-chatbot/internal/chat"
	"ecommerce-chatbot/internal/common/config"
	"ecommerce-chatbot/internal/common/logger"
	"ecommerce-chatbot/internal/common/observability"
)

// Server is the HTTP boundary: health, chat, and metrics endpoints. All
// per-request failures are absorbed into user-facing strings or 4xx codes
// here; nothing below this layer terminates a request with a 5xx.
type Server struct {
	cfg        config.ServerConfig
	chat       *chat.Service
	obs        *observability.Observability
	logger     logger.Logger
	httpServer *http.Server
}

func New(cfg config.ServerConfig, chatSvc *chat.Service, obs *observability.Observability, log logger.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		chat:   chatSvc,
		obs:    obs,
		logger: log.With(map[string]interface{}{"component": "server"}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := s.withRequestLogging(s.withCORS(mux))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Millisecond,
	}

	return s
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
