package observability

import (
	"context"
	"runtime/pprof"
	"testing"

	"github.com/riskibarqy/fantasy-rankings/internal/config"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitTracing_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "fantasy-rankings",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitTracing(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown tracing: %v", err)
	}
}

func TestInitTracing_EnabledWithoutDSNIsNoop(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	shutdown, err := InitTracing(cfg, nil)
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown tracing: %v", err)
	}
}

func TestJobAttributes(t *testing.T) {
	attrs := jobAttributes(config.Config{RecomputeWorkers: 4})

	assert.Contains(t, attrs, attribute.String("rankings.result_sink", config.SinkPostgres))
	assert.Contains(t, attrs, attribute.Int("rankings.workers", 4))
	assert.Contains(t, attrs, attribute.Int("rankings.era_overrides", 0))
}

func TestInitProfiling_Disabled(t *testing.T) {
	stop, err := InitProfiling(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init profiling: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop profiling: %v", err)
	}
}

func TestProfileSeason_LabelsContext(t *testing.T) {
	called := false
	ProfileSeason(context.Background(), 406, func(ctx context.Context) {
		called = true
		value, ok := pprof.Label(ctx, "game_id")
		require.True(t, ok)
		assert.Equal(t, "406", value)
	})
	assert.True(t, called)
}
