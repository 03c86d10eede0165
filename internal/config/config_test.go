package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STATE_MACHINE_ARN", "")
	t.Setenv("WORKFLOW_BACKEND", "")
	t.Setenv("METRICS_BACKEND", "")
	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, WorkflowSFN, cfg.WorkflowBackend)
	require.Equal(t, MetricsNone, cfg.MetricsBackend)
	require.Equal(t, "jewelers-mutual-clone", cfg.AppTag)
	require.NoError(t, cfg.Validate())
	require.ErrorIs(t, cfg.CheckWorkflow(), ErrMissingStateMachineARN)
	require.Empty(t, cfg.WorkflowID())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STATE_MACHINE_ARN", " arn:aws:states:eu-west-1:1:stateMachine:q ")
	t.Setenv("METRICS_BACKEND", "DogStatsD")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "bogus")
	cfg := Load()
	require.Equal(t, "arn:aws:states:eu-west-1:1:stateMachine:q", cfg.StateMachineARN)
	require.Equal(t, MetricsDogStatsD, cfg.MetricsBackend)
	require.InDelta(t, 2.5, cfg.RateLimitRPS, 1e-9)
	require.Equal(t, 20, cfg.RateLimitBurst)
	require.NoError(t, cfg.Validate())
	require.NoError(t, cfg.CheckWorkflow())
	require.Equal(t, "arn:aws:states:eu-west-1:1:stateMachine:q", cfg.WorkflowID())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "port: \"9090\"\nworkflowBackend: local\nmetricsBackend: prometheus\nappTag: from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("STATE_MACHINE_ARN", "")
	t.Setenv("WORKFLOW_BACKEND", "")
	t.Setenv("METRICS_BACKEND", "")
	t.Setenv("METRICS_APP_TAG", "from-env")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, WorkflowLocal, cfg.WorkflowBackend)
	require.Equal(t, MetricsPrometheus, cfg.MetricsBackend)
	require.Equal(t, "from-env", cfg.AppTag)
	require.NoError(t, cfg.Validate())
	require.NoError(t, cfg.CheckWorkflow())
	require.Equal(t, WorkflowLocal, cfg.WorkflowID())
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0o600))
	base := Default()
	got, err := LoadFile(path, base)
	require.Error(t, err)
	require.Equal(t, base, got)
}

func TestValidate_UnknownBackends(t *testing.T) {
	cfg := Default()
	cfg.WorkflowBackend = "lambda"
	cfg.MetricsBackend = "graphite"
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrUnknownWorkflowBackend)
	require.ErrorIs(t, err, ErrUnknownMetricsBackend)
}
