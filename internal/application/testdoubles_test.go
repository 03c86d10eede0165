package application

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrBackend = errors.New("backend down")
)

type fakeRunner struct {
	res   WorkflowResult
	err   error
	calls int
	id    string
	input []byte
}

func (f *fakeRunner) RunSync(_ context.Context, workflowID string, input []byte) (WorkflowResult, error) {
	f.calls++
	f.id = workflowID
	f.input = input
	if f.err != nil {
		return WorkflowResult{}, f.err
	}
	return f.res, nil
}

type recordingMetrics struct {
	mu      sync.Mutex
	samples []Sample
	flushes int
}

func (r *recordingMetrics) Emit(_ context.Context, s Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, s)
	return nil
}

func (r *recordingMetrics) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushes++
	return nil
}

type failingMetrics struct{ err error }

func (f failingMetrics) Emit(context.Context, Sample) error { return f.err }

func (f failingMetrics) Flush() error { return f.err }

type panickingMetrics struct{}

func (panickingMetrics) Emit(context.Context, Sample) error { panic("statsd exploded") }
