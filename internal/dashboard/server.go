// Package dashboard serves the browser dashboard: a JSON API consumed by
// the frontend plus server-rendered go-echarts charts.
package dashboard

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/qepting91/fanpulse/internal/aggregator"
	"github.com/qepting91/fanpulse/internal/domain"
	"github.com/qepting91/fanpulse/internal/insight"
	"github.com/qepting91/fanpulse/internal/ranking"
)

// Server wires the HTTP surface over the services.
type Server struct {
	agg      *aggregator.Service
	rank     *ranking.Service
	dir      domain.PlayerDirectory
	insight  *insight.Client
	router   *chi.Mux
	logger   *slog.Logger
	metrics  http.Handler
	pageSize int
}

// NewServer builds the router. metricsHandler may be nil to disable the
// /metrics endpoint.
func NewServer(
	agg *aggregator.Service,
	rank *ranking.Service,
	dir domain.PlayerDirectory,
	ins *insight.Client,
	logger *slog.Logger,
	metricsHandler http.Handler,
	pageSize int,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize < 1 {
		pageSize = 10
	}
	s := &Server{
		agg:      agg,
		rank:     rank,
		dir:      dir,
		insight:  ins,
		router:   chi.NewRouter(),
		logger:   logger,
		metrics:  metricsHandler,
		pageSize: pageSize,
	}
	s.setupRoutes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleCharts)
	s.router.Get("/health", s.handleHealth)
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics)
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/players", s.handlePlayerSearch)
		r.Get("/discussions", s.handleDiscussions)
		r.Get("/rankings", s.handleRankings)
		r.Get("/summary", s.handleSummary)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}
