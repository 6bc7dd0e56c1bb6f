package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
	"github.com/riskibarqy/fantasy-rankings/internal/platform/logging"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "false")
	t.Setenv("RESULT_SINK", "")
	t.Setenv("RULES_ERA_OVERRIDES", "")
	t.Setenv("RECOMPUTE_WORKERS", "")
	t.Setenv("SOURCE_BREAKER_THRESHOLD", "")
	t.Setenv("SOURCE_BREAKER_OPEN_TIMEOUT", "")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	isolateEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ResultSink != SinkPostgres {
		t.Fatalf("unexpected default sink: %q", cfg.ResultSink)
	}
	if cfg.RecomputeWorkers != 4 {
		t.Fatalf("unexpected default workers: %d", cfg.RecomputeWorkers)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected default log level: %s", cfg.LogLevel)
	}
	if !cfg.DBDisablePreparedBinary {
		t.Fatalf("expected DBDisablePreparedBinary=true by default")
	}
	if len(cfg.EraOverrides) != 0 {
		t.Fatalf("expected no era overrides, got %+v", cfg.EraOverrides)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	isolateEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	isolateEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	isolateEnv(t)
	t.Setenv("APP_SERVICE_NAME", "fantasy-rankings-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")
	t.Setenv("PYROSCOPE_UPLOAD_RATE", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fantasy-rankings-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
	if cfg.PyroscopeUploadRate != 30*time.Second {
		t.Fatalf("unexpected upload rate: %s", cfg.PyroscopeUploadRate)
	}
}

func TestLoad_ResultSink(t *testing.T) {
	isolateEnv(t)

	t.Run("json", func(t *testing.T) {
		t.Setenv("RESULT_SINK", " JSON ")
		t.Setenv("EXPORT_DIR", "/tmp/rankings")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ResultSink != SinkJSON || cfg.ExportDir != "/tmp/rankings" {
			t.Fatalf("unexpected sink config: %q %q", cfg.ResultSink, cfg.ExportDir)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("RESULT_SINK", "s3")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid RESULT_SINK")
		}
	})
}

func TestLoad_RecomputeWorkers(t *testing.T) {
	isolateEnv(t)

	t.Setenv("RECOMPUTE_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for RECOMPUTE_WORKERS=0")
	}

	t.Setenv("RECOMPUTE_WORKERS", "many")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric RECOMPUTE_WORKERS")
	}
}

func TestLoad_SourceBreaker(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SourceBreakerThreshold != 5 || cfg.SourceBreakerOpenTimeout != 15*time.Second {
		t.Fatalf("unexpected breaker defaults: %d %s", cfg.SourceBreakerThreshold, cfg.SourceBreakerOpenTimeout)
	}

	t.Setenv("SOURCE_BREAKER_THRESHOLD", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SOURCE_BREAKER_THRESHOLD=0")
	}

	t.Setenv("SOURCE_BREAKER_THRESHOLD", "3")
	t.Setenv("SOURCE_BREAKER_OPEN_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid SOURCE_BREAKER_OPEN_TIMEOUT")
	}
}

func TestLoad_RulesEraOverrides(t *testing.T) {
	isolateEnv(t)

	t.Run("valid", func(t *testing.T) {
		t.Setenv("RULES_ERA_OVERRIDES", "314:legacy, 399:modern")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.EraOverrides[314] != season.EraLegacy || cfg.EraOverrides[399] != season.EraModern {
			t.Fatalf("unexpected overrides: %+v", cfg.EraOverrides)
		}
	})

	for _, raw := range []string{"314", "x:legacy", "0:legacy", "314:future"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			t.Setenv("RULES_ERA_OVERRIDES", raw)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %q", raw)
			}
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("DOTENV_PATH", path)
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("expected LOG_LEVEL from dotenv, got %s", cfg.LogLevel)
	}
}
