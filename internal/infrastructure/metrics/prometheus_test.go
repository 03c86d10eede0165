package metrics

import (
	"context"
	"testing"

	"jewelquote-service/internal/application"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_GaugeAndCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)
	ctx := context.Background()

	require.NoError(t, p.Emit(ctx, application.Sample{
		Name: application.MetricPremium, Kind: application.KindGauge, Value: 50,
		Tags: []string{"app:jm", "customer:Alice"},
	}))
	require.NoError(t, p.Emit(ctx, application.Sample{
		Name: application.MetricRequests, Kind: application.KindCount, Value: 1,
		Tags: []string{"app:jm"},
	}))
	require.NoError(t, p.Emit(ctx, application.Sample{
		Name: application.MetricRequests, Kind: application.KindCount, Value: 1,
		Tags: []string{"app:jm"},
	}))

	require.InDelta(t, 50.0, testutil.ToFloat64(p.gauges["quote_premium"].vec.WithLabelValues("jm", "Alice")), 1e-9)
	require.InDelta(t, 2.0, testutil.ToFloat64(p.counters["quote_request_total"].vec.WithLabelValues("jm")), 1e-9)

	n, err := testutil.GatherAndCount(reg, "quote_premium", "quote_request_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestPrometheus_Errors(t *testing.T) {
	p := NewPrometheus(prometheus.NewRegistry())
	ctx := context.Background()

	require.NoError(t, p.Emit(ctx, application.Sample{Name: "quote.premium", Value: 1, Tags: []string{"app:jm"}}))
	err := p.Emit(ctx, application.Sample{Name: "quote.premium", Value: 1, Tags: []string{"customer:x"}})
	require.ErrorIs(t, err, ErrLabelMismatch)

	err = p.Emit(ctx, application.Sample{Name: "quote.request", Kind: application.KindCount, Value: -1})
	require.Error(t, err)

	err = p.Emit(ctx, application.Sample{Name: "x", Tags: []string{"a:1", "a:2"}})
	require.Error(t, err)
}

func TestPrometheus_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	ctx := context.Background()
	s := application.Sample{Name: "quote.premium", Value: 3, Tags: []string{"app:jm"}}

	require.NoError(t, NewPrometheus(reg).Emit(ctx, s))
	require.NoError(t, NewPrometheus(reg).Emit(ctx, s))
}

func TestMetricName(t *testing.T) {
	require.Equal(t, "quote_premium", metricName("quote.premium"))
	require.Equal(t, "_lives", metricName("9lives"))
	require.Equal(t, "p99", metricName("p99"))
	require.Equal(t, "a_b_c", metricName("a-b c"))
}
