package bootstrap

import (
	"context"
	"fmt"

	"jewelquote-service/internal/application"
	"jewelquote-service/internal/config"
	infraconfig "jewelquote-service/internal/infrastructure/config"
	httpserver "jewelquote-service/internal/infrastructure/http"
	lambdahandler "jewelquote-service/internal/infrastructure/lambda"
	"jewelquote-service/internal/infrastructure/logx"
	"jewelquote-service/internal/infrastructure/metrics"
	"jewelquote-service/internal/infrastructure/ratelimit"
	"jewelquote-service/internal/infrastructure/sfn"
	"jewelquote-service/internal/infrastructure/workflow"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func ProvideLogger() *zap.Logger { return logx.L() }

// ProvideConfig loads and validates configuration once per process.
func ProvideConfig(log *zap.Logger) (config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.CheckWorkflow(); err != nil {
		log.Warn("workflow not configured; quote requests will fail", zap.Error(err))
	}
	return cfg, nil
}

func ProvideRegistry() *prometheus.Registry { return prometheus.NewRegistry() }

// ProvideMetrics selects the observability backend named by METRICS_BACKEND.
func ProvideMetrics(cfg config.Config, reg *prometheus.Registry, log *zap.Logger) (application.Metrics, func(), error) {
	switch cfg.MetricsBackend {
	case config.MetricsPrometheus:
		return metrics.NewPrometheus(reg), func() {}, nil
	case config.MetricsDogStatsD:
		d, err := metrics.NewDogStatsD(cfg.DogStatsDAddr)
		if err != nil {
			// The backend is optional; run without it rather than fail the invocation.
			log.Warn("dogstatsd unavailable; metrics disabled", zap.Error(err))
			return application.NoopMetrics{}, func() {}, nil
		}
		cleanup := func() {
			if err := d.Close(); err != nil {
				log.Warn("closing dogstatsd", zap.Error(err))
			}
		}
		return d, cleanup, nil
	default:
		return application.NoopMetrics{}, func() {}, nil
	}
}

// ProvideWorkflowRunner returns the Step Functions runner or, for
// WORKFLOW_BACKEND=local, an in-process calculator.
func ProvideWorkflowRunner(ctx context.Context, cfg config.Config, m application.Metrics, log *zap.Logger) (application.WorkflowRunner, error) {
	switch cfg.WorkflowBackend {
	case config.WorkflowLocal:
		return workflow.NewLocal(ProvideCalculatorService(cfg, m, log)), nil
	default:
		r, err := sfn.NewFromEnv(ctx)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

func ProvideQuoteService(cfg config.Config, runner application.WorkflowRunner, m application.Metrics, log *zap.Logger) *application.QuoteService {
	return application.NewQuoteService(runner, cfg.WorkflowID(),
		application.WithMetrics(m),
		application.WithLogger(log),
		application.WithAppTag(cfg.AppTag),
	)
}

// ProvideCalculatorService builds a service that only computes premiums.
func ProvideCalculatorService(cfg config.Config, m application.Metrics, log *zap.Logger) *application.QuoteService {
	return application.NewQuoteService(nil, "",
		application.WithMetrics(m),
		application.WithLogger(log),
		application.WithAppTag(cfg.AppTag),
	)
}

func ProvideHTTPServer(svc *application.QuoteService, cfg config.Config, reg *prometheus.Registry) *httpserver.Server {
	srv := httpserver.NewServer(svc)
	if cfg.MetricsBackend == config.MetricsPrometheus {
		srv.SetMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	srv.SetRateLimiter(ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst, infraconfig.DefaultRateLimitIdle))
	return srv
}

func ProvideQuoteAPIHandler(svc *application.QuoteService) *lambdahandler.QuoteAPI {
	return lambdahandler.NewQuoteAPI(svc)
}

func ProvideComputeQuoteHandler(svc *application.QuoteService) *lambdahandler.ComputeQuote {
	return lambdahandler.NewComputeQuote(svc)
}
