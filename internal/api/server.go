package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"phishguard/internal/config"
	"phishguard/internal/model"
	"phishguard/internal/monitoring"
	"phishguard/internal/storage"
)

// Server holds the dependencies for the HTTP server. The adapter and both
// stores are read-only after construction; redisStore and pgStore may be nil
// when the corresponding backend is not configured.
type Server struct {
	config     *config.Config
	router     http.Handler
	httpServer *http.Server
	adapter    *model.Adapter
	redisStore *storage.RedisStore
	pgStore    *storage.PostgresStore
	metrics    *monitoring.Metrics
	logger     *zap.Logger
}

func NewServer(cfg *config.Config, a *model.Adapter, rs *storage.RedisStore, ps *storage.PostgresStore, m *monitoring.Metrics, l *zap.Logger) *Server {
	s := &Server{
		config:     cfg,
		adapter:    a,
		redisStore: rs,
		pgStore:    ps,
		metrics:    m,
		logger:     l,
	}
	s.router = s.setupRouter()
	return s
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.ServerPort),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
