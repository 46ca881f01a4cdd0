package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/qepting91/fanpulse/internal/aggregator"
	"github.com/qepting91/fanpulse/internal/collector"
	"github.com/qepting91/fanpulse/internal/config"
	"github.com/qepting91/fanpulse/internal/dashboard"
	"github.com/qepting91/fanpulse/internal/insight"
	"github.com/qepting91/fanpulse/internal/metrics"
	"github.com/qepting91/fanpulse/internal/players"
	"github.com/qepting91/fanpulse/internal/ranking"
)

func main() {
	godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	col, err := collector.New(collector.Options{
		Mode:      cfg.Reddit.Mode,
		ClientID:  cfg.Reddit.ClientID,
		Secret:    cfg.Reddit.Secret,
		Username:  cfg.Reddit.Username,
		Password:  cfg.Reddit.Password,
		UserAgent: cfg.Reddit.UserAgent,
	})
	if err != nil {
		logger.Error("Failed to initialize collector", "error", err)
		os.Exit(1)
	}
	logger.Info("Collector initialized", "mode", cfg.Reddit.Mode)

	registry := prometheus.NewRegistry()
	recorder := metrics.NewCollector(registry)

	dir := players.NewDirectory()
	agg := aggregator.NewService(col, aggregator.Config{
		MaxSubreddits:       cfg.Search.MaxSubreddits,
		TotalPosts:          cfg.Search.TotalPosts,
		PostsPerPage:        cfg.Search.PostsPerPage,
		TopPostsForComments: cfg.Search.TopPostsForComments,
		CommentBudget:       cfg.Search.CommentBudget,
		SearchTimeout:       cfg.Search.SearchTimeout,
		CommentTimeout:      cfg.Search.CommentTimeout,
		CacheTTL:            cfg.Search.CacheTTL,
	}, logger, recorder, nil)
	rank := ranking.NewService(dir, ranking.Config{
		TTL:         cfg.Ranking.TTL,
		TrendingTTL: cfg.Ranking.TrendingTTL,
		Seed:        cfg.Ranking.Seed,
	}, nil)
	ins := insight.NewClient(insight.Config{
		Endpoint: cfg.Insight.Endpoint,
		APIKey:   cfg.Insight.APIKey,
		Timeout:  cfg.Insight.Timeout,
	}, logger, recorder)

	// Precompute trending on a schedule so the dashboard landing page is
	// always warm.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Ranking.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := rank.Trending(ctx, 10); err != nil {
			logger.Error("Trending refresh failed", "error", err)
		}
	})
	if err != nil {
		logger.Error("Failed to schedule trending refresh", "error", err)
		os.Exit(1)
	}
	scheduler.Start()

	server := dashboard.NewServer(agg, rank, dir, ins, logger, metrics.Handler(registry), cfg.Search.PostsPerPage)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{Addr: addr, Handler: server.Handler()}

	go func() {
		logger.Info("Starting dashboard", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Dashboard failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutdown signal received")

	scheduler.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("Shutdown complete")
}
