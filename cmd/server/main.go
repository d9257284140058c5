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

	"github.com/prometheus/client_golang/prometheus"

	"creditrisk/internal/decision"
	decisionHandler "creditrisk/internal/decision/handler"
	decisionMetrics "creditrisk/internal/decision/metrics"
	"creditrisk/internal/model"
	"creditrisk/internal/platform/config"
	"creditrisk/internal/platform/httpserver"
	"creditrisk/internal/platform/logger"
	"creditrisk/internal/platform/metrics"
	"creditrisk/internal/platform/redis"
	httptransport "creditrisk/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy, scale, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		return err
	}

	source, redisClient, err := buildSource(cfg)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warn("failed to close redis client", "error", err)
			}
		}()
	}

	loader, err := model.NewLoader(source, cfg.Artifacts.ClassifierName, cfg.Artifacts.EncoderName,
		model.WithLogger(log),
		model.WithMetrics(metrics.New()),
	)
	if err != nil {
		return err
	}
	// Warm the loader so the first request does not pay for decoding. A failure
	// is cached and surfaces as model_unavailable on every analysis.
	if _, _, err := loader.Artifacts(ctx); err != nil {
		log.Error("risk model unavailable, serving limit previews only", "error", err)
	}

	svc, err := decision.New(loader,
		decision.WithLogger(log),
		decision.WithMetrics(decisionMetrics.New()),
		decision.WithPolicy(policy),
		decision.WithScoreScale(scale),
		decision.WithEvaluateTimeout(cfg.EvaluateTimeout),
	)
	if err != nil {
		return fmt.Errorf("build decision service: %w", err)
	}

	checks := map[string]httptransport.ReadinessCheck{
		"model": func(ctx context.Context) error {
			_, _, err := loader.Artifacts(ctx)
			return err
		},
	}
	if redisClient != nil {
		checks["redis"] = redisClient.Health
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Modules:  []httptransport.Registrar{decisionHandler.New(svc, log)},
		Gatherer: prometheus.DefaultGatherer,
		Checks:   checks,
	})
	srv := httpserver.New(cfg.Addr, router, cfg.EvaluateTimeout)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting creditrisk", "addr", cfg.Addr, "artifact_source", cfg.Artifacts.Source)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// buildSource fails only on configuration errors. An unreachable Redis is
// left to the loader, which reports it as model_unavailable.
func buildSource(cfg config.Server) (model.Source, *redis.Client, error) {
	switch cfg.Artifacts.Source {
	case config.ArtifactSourceFile:
		return model.NewFileSource(cfg.Artifacts.Dir), nil, nil
	case config.ArtifactSourceRedis:
		if cfg.Redis.URL == "" {
			return nil, nil, errors.New("CREDIT_REDIS_URL is required when artifacts are read from redis")
		}
		client, err := redis.New(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return model.NewRedisSource(client, cfg.Artifacts.RedisKeyPrefix), client, nil
	default:
		return nil, nil, fmt.Errorf("unknown artifact source %q", cfg.Artifacts.Source)
	}
}
