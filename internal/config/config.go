package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	infraconfig "jewelquote-service/internal/infrastructure/config"

	"gopkg.in/yaml.v3"
)

const (
	WorkflowSFN   = "sfn"
	WorkflowLocal = "local"

	MetricsNone       = "none"
	MetricsPrometheus = "prometheus"
	MetricsDogStatsD  = "dogstatsd"
)

var (
	ErrMissingStateMachineARN = errors.New("STATE_MACHINE_ARN is not set")
	ErrUnknownWorkflowBackend = errors.New("unknown WORKFLOW_BACKEND")
	ErrUnknownMetricsBackend  = errors.New("unknown METRICS_BACKEND")
)

type Config struct {
	// Common
	Env      string `yaml:"env"`
	LogLevel string `yaml:"logLevel"`
	// API
	Port           string  `yaml:"port"`
	RateLimitRPS   float64 `yaml:"rateLimitRps"`
	RateLimitBurst int     `yaml:"rateLimitBurst"`
	// Workflow
	WorkflowBackend string `yaml:"workflowBackend"`
	StateMachineARN string `yaml:"stateMachineArn"`
	// Metrics
	MetricsBackend string `yaml:"metricsBackend"`
	DogStatsDAddr  string `yaml:"dogstatsdAddr"`
	AppTag         string `yaml:"appTag"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Env:             "local",
		LogLevel:        "info",
		Port:            infraconfig.DefaultHTTPPort,
		RateLimitRPS:    infraconfig.DefaultRateLimitRPS,
		RateLimitBurst:  infraconfig.DefaultRateLimitBurst,
		WorkflowBackend: WorkflowSFN,
		MetricsBackend:  MetricsNone,
		DogStatsDAddr:   infraconfig.DefaultDogStatsDAddr,
		AppTag:          infraconfig.DefaultAppTag,
	}
}

// Load applies, in order, defaults, the YAML file named by CONFIG_FILE and
// environment variables. An unreadable or invalid file is ignored.
func Load() Config {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if fileCfg, err := LoadFile(path, cfg); err == nil {
			cfg = fileCfg
		}
	}
	ApplyEnv(&cfg)
	return cfg
}

// LoadFile overlays the YAML document at path on base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config file: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with every environment variable that is set.
func ApplyEnv(cfg *Config) {
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.RateLimitRPS = atofDef(os.Getenv("RATE_LIMIT_RPS"), cfg.RateLimitRPS)
	cfg.RateLimitBurst = atoiDef(os.Getenv("RATE_LIMIT_BURST"), cfg.RateLimitBurst)
	cfg.WorkflowBackend = strings.ToLower(getEnv("WORKFLOW_BACKEND", cfg.WorkflowBackend))
	cfg.StateMachineARN = strings.TrimSpace(getEnv("STATE_MACHINE_ARN", cfg.StateMachineARN))
	cfg.MetricsBackend = strings.ToLower(getEnv("METRICS_BACKEND", cfg.MetricsBackend))
	cfg.DogStatsDAddr = getEnv("DOGSTATSD_ADDR", cfg.DogStatsDAddr)
	cfg.AppTag = getEnv("METRICS_APP_TAG", cfg.AppTag)
}

// Validate reports configuration errors that prevent startup.
func (c Config) Validate() error {
	var errs []error
	switch c.WorkflowBackend {
	case WorkflowSFN, WorkflowLocal:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownWorkflowBackend, c.WorkflowBackend))
	}
	switch c.MetricsBackend {
	case MetricsNone, MetricsPrometheus, MetricsDogStatsD:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownMetricsBackend, c.MetricsBackend))
	}
	return errors.Join(errs...)
}

// CheckWorkflow reports a missing workflow identifier. It is not fatal: the
// service starts and answers quote requests with "Server not configured".
func (c Config) CheckWorkflow() error {
	if c.WorkflowBackend == WorkflowSFN && c.StateMachineARN == "" {
		return ErrMissingStateMachineARN
	}
	return nil
}

// WorkflowID is the identifier passed to the workflow runner.
func (c Config) WorkflowID() string {
	if c.WorkflowBackend == WorkflowLocal && c.StateMachineARN == "" {
		return WorkflowLocal
	}
	return c.StateMachineARN
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func atofDef(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
