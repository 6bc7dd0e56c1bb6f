package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/fantasy-rankings/internal/config"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

func noopShutdown(context.Context) error { return nil }

// InitTracing exports recompute spans to Uptrace. Every span carries the
// job's sink and worker settings so batches can be compared across runs.
func InitTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	switch {
	case !cfg.UptraceEnabled:
		logger.Info("tracing off", "reason", "UPTRACE_ENABLED=false")
		return noopShutdown, nil
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("tracing off", "reason", "no uptrace dsn")
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
		uptrace.WithResourceAttributes(jobAttributes(cfg)...),
	)

	logger.Info("tracing on",
		"service_name", cfg.ServiceName,
		"environment", cfg.AppEnv,
		"result_sink", cfg.ResultSink,
		"workers", cfg.RecomputeWorkers,
	)
	return uptrace.Shutdown, nil
}

func jobAttributes(cfg config.Config) []attribute.KeyValue {
	sink := cfg.ResultSink
	if sink == "" {
		sink = config.SinkPostgres
	}
	return []attribute.KeyValue{
		attribute.String("rankings.result_sink", sink),
		attribute.Int("rankings.workers", cfg.RecomputeWorkers),
		attribute.Int("rankings.era_overrides", len(cfg.EraOverrides)),
	}
}
