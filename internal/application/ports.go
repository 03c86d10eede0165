package application

import "context"

// WorkflowRunner starts a workflow and blocks until it finishes.
// Only express-class workflows support this synchronous mode.
type WorkflowRunner interface {
	RunSync(ctx context.Context, workflowID string, input []byte) (WorkflowResult, error)
}

// WorkflowResult is what a synchronous execution reports back.
// Output is the raw JSON document the workflow produced, empty when it produced none.
type WorkflowResult struct {
	ExecutionID string
	Status      string
	Output      string
	Error       string
	Cause       string
}

type MetricKind int

const (
	KindGauge MetricKind = iota
	KindCount
)

func (k MetricKind) String() string {
	switch k {
	case KindCount:
		return "count"
	default:
		return "gauge"
	}
}

// Sample is a single observability data point. Tags are "key:value" strings.
type Sample struct {
	Name  string
	Kind  MetricKind
	Value float64
	Tags  []string
}

// Metrics is the observability backend capability.
type Metrics interface {
	Emit(ctx context.Context, s Sample) error
}

// Flusher is implemented by backends that buffer samples.
type Flusher interface {
	Flush() error
}
