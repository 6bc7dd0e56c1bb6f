package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/riskibarqy/fantasy-rankings/internal/app"
	"github.com/riskibarqy/fantasy-rankings/internal/config"
	"github.com/riskibarqy/fantasy-rankings/internal/observability"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	games := flag.String("games", "", "comma separated game ids to recompute (default: catalogue, then every season in the database)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 2
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName, "version", cfg.ServiceVersion)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	explicit, err := parseGameIDs(*games)
	if err != nil {
		logger.Error("parse -games", "error", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(cfg, logger)
	if err != nil {
		logger.Error("init tracing", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	stopProfiler, err := observability.InitProfiling(cfg, logger)
	if err != nil {
		logger.Error("init profiling", "error", err)
		return 1
	}
	defer func() {
		_ = stopProfiler()
	}()

	var catalogue config.Catalogue
	if cfg.CataloguePath != "" {
		catalogue, err = config.LoadCatalogue(cfg.CataloguePath)
		if err != nil {
			logger.Error("load league catalogue", "path", cfg.CataloguePath, "error", err)
			return 1
		}
	}

	application, err := app.New(ctx, cfg, catalogue, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
	}()

	ids, err := application.GameIDs(ctx, explicit, catalogue)
	if err != nil {
		logger.Error("resolve seasons", "error", err)
		return 1
	}

	result, err := application.Service.RecomputeMany(ctx, ids, cfg.RecomputeWorkers)
	if err != nil {
		logger.Error("recompute seasons", "error", err)
		return 1
	}
	if result.FailedCount > 0 {
		return 1
	}
	return 0
}

func parseGameIDs(raw string) ([]int64, error) {
	var out []int64
	for _, part := range strings.Split(raw, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid game id %q: %w", item, err)
		}
		out = append(out, id)
	}
	return out, nil
}
