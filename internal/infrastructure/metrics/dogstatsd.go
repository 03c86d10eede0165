package metrics

import (
	"context"
	"fmt"

	"jewelquote-service/internal/application"

	"github.com/DataDog/datadog-go/v5/statsd"
)

var (
	_ application.Metrics = (*DogStatsD)(nil)
	_ application.Flusher = (*DogStatsD)(nil)
)

// DogStatsD ships samples to a Datadog agent or the Datadog Lambda extension.
// Sends are buffered and never block on the network.
type DogStatsD struct {
	client statsd.ClientInterface
}

func NewDogStatsD(addr string, opts ...statsd.Option) (*DogStatsD, error) {
	c, err := statsd.New(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dogstatsd client: %w", err)
	}
	return &DogStatsD{client: c}, nil
}

func (d *DogStatsD) Emit(_ context.Context, s application.Sample) error {
	switch s.Kind {
	case application.KindCount:
		return d.client.Count(s.Name, int64(s.Value), s.Tags, 1)
	default:
		return d.client.Gauge(s.Name, s.Value, s.Tags, 1)
	}
}

func (d *DogStatsD) Flush() error { return d.client.Flush() }

func (d *DogStatsD) Close() error { return d.client.Close() }
