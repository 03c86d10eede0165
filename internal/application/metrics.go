package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NoopMetrics drops every sample; selected when no backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Emit(context.Context, Sample) error { return nil }

// BestEffort emits samples without ever failing the caller.
// Errors and panics from the backend are logged and dropped.
type BestEffort struct {
	m   Metrics
	log *zap.Logger
}

func NewBestEffort(m Metrics, log *zap.Logger) BestEffort {
	if m == nil {
		m = NoopMetrics{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return BestEffort{m: m, log: log}
}

func (b BestEffort) Emit(ctx context.Context, s Sample) {
	if b.m == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn("metrics.emit_failed", zap.String("metric", s.Name), zap.String("panic", fmt.Sprint(r)))
		}
	}()
	if err := b.m.Emit(ctx, s); err != nil {
		b.log.Warn("metrics.emit_failed", zap.String("metric", s.Name), zap.Error(err))
	}
}

// Flush pushes buffered samples if the backend buffers.
func (b BestEffort) Flush() {
	f, ok := b.m.(Flusher)
	if !ok {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn("metrics.flush_failed", zap.String("panic", fmt.Sprint(r)))
		}
	}()
	if err := f.Flush(); err != nil {
		b.log.Warn("metrics.flush_failed", zap.Error(err))
	}
}

// Tag formats a "key:value" metric tag.
func Tag(key, value string) string { return key + ":" + value }
