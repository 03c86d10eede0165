package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"jewelquote-service/internal/application"
	"jewelquote-service/internal/domain"
)

// Calculator prices a workflow state.
type Calculator interface {
	Compute(ctx context.Context, event map[string]any) domain.QuoteResult
}

var _ application.WorkflowRunner = (*Local)(nil)

// Local runs the quote calculator in-process in place of the express state machine.
type Local struct {
	calc Calculator
	seq  atomic.Uint64
}

func NewLocal(calc Calculator) *Local { return &Local{calc: calc} }

func (l *Local) RunSync(ctx context.Context, workflowID string, input []byte) (application.WorkflowResult, error) {
	if err := ctx.Err(); err != nil {
		return application.WorkflowResult{}, err
	}
	res := application.WorkflowResult{
		ExecutionID: fmt.Sprintf("%s:local-%d", workflowID, l.seq.Add(1)),
	}

	var event map[string]any
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil {
		res.Status = "FAILED"
		res.Error = "States.Runtime"
		res.Cause = err.Error()
		return res, nil
	}

	out, err := json.Marshal(l.calc.Compute(ctx, event))
	if err != nil {
		return application.WorkflowResult{}, fmt.Errorf("encode output: %w", err)
	}
	res.Status = "SUCCEEDED"
	res.Output = string(out)
	return res, nil
}
