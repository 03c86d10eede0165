package metrics

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"jewelquote-service/internal/application"

	"github.com/prometheus/client_golang/prometheus"
)

var _ application.Metrics = (*Prometheus)(nil)

var ErrLabelMismatch = errors.New("metric emitted with different tag keys")

// Prometheus records samples in a registry. Each sample name gets one vector,
// created on first use; tag keys become label names and must stay the same
// for every sample with that name.
type Prometheus struct {
	reg prometheus.Registerer

	mu       sync.Mutex
	gauges   map[string]*labeledGauge
	counters map[string]*labeledCounter
}

type labeledGauge struct {
	keys []string
	vec  *prometheus.GaugeVec
}

type labeledCounter struct {
	keys []string
	vec  *prometheus.CounterVec
}

func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Prometheus{
		reg:      reg,
		gauges:   map[string]*labeledGauge{},
		counters: map[string]*labeledCounter{},
	}
}

func (p *Prometheus) Emit(_ context.Context, s application.Sample) error {
	keys, values, err := splitTags(s.Tags)
	if err != nil {
		return err
	}
	name := metricName(s.Name)

	p.mu.Lock()
	defer p.mu.Unlock()

	switch s.Kind {
	case application.KindCount:
		if s.Value < 0 {
			return fmt.Errorf("counter %s: negative increment %v", s.Name, s.Value)
		}
		c, err := p.counter(name+"_total", s.Name, keys)
		if err != nil {
			return err
		}
		c.WithLabelValues(values...).Add(s.Value)
	default:
		g, err := p.gauge(name, s.Name, keys)
		if err != nil {
			return err
		}
		g.WithLabelValues(values...).Set(s.Value)
	}
	return nil
}

func (p *Prometheus) gauge(name, help string, keys []string) (*prometheus.GaugeVec, error) {
	if g, ok := p.gauges[name]; ok {
		if !slices.Equal(g.keys, keys) {
			return nil, fmt.Errorf("%w: %s", ErrLabelMismatch, name)
		}
		return g.vec, nil
	}
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, keys)
	if err := p.reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.GaugeVec)
		if !ok {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
		vec = existing
	}
	p.gauges[name] = &labeledGauge{keys: keys, vec: vec}
	return vec, nil
}

func (p *Prometheus) counter(name, help string, keys []string) (*prometheus.CounterVec, error) {
	if c, ok := p.counters[name]; ok {
		if !slices.Equal(c.keys, keys) {
			return nil, fmt.Errorf("%w: %s", ErrLabelMismatch, name)
		}
		return c.vec, nil
	}
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, keys)
	if err := p.reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
		vec = existing
	}
	p.counters[name] = &labeledCounter{keys: keys, vec: vec}
	return vec, nil
}

// splitTags turns "key:value" tags into label names and values.
// A tag without a colon is a label with an empty value.
func splitTags(tags []string) ([]string, []string, error) {
	keys := make([]string, 0, len(tags))
	values := make([]string, 0, len(tags))
	for _, t := range tags {
		k, v, _ := strings.Cut(t, ":")
		k = metricName(k)
		if slices.Contains(keys, k) {
			return nil, nil, fmt.Errorf("duplicate tag key %q", k)
		}
		keys = append(keys, k)
		values = append(values, v)
	}
	return keys, values, nil
}

// metricName maps a dotted metric name onto the Prometheus charset.
func metricName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9' && i > 0:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
