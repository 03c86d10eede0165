package sfn

import (
	"context"
	"fmt"

	"jewelquote-service/internal/application"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
)

// StartSyncExecutionAPI is the slice of the Step Functions client the runner uses.
type StartSyncExecutionAPI interface {
	StartSyncExecution(ctx context.Context, params *sfn.StartSyncExecutionInput, optFns ...func(*sfn.Options)) (*sfn.StartSyncExecutionOutput, error)
}

var _ application.WorkflowRunner = (*Runner)(nil)

// Runner executes express state machines synchronously.
type Runner struct {
	client StartSyncExecutionAPI
}

func New(client StartSyncExecutionAPI) *Runner { return &Runner{client: client} }

// NewFromEnv builds a runner from the default AWS credential and region chain.
func NewFromEnv(ctx context.Context) (*Runner, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return New(sfn.NewFromConfig(cfg)), nil
}

// RunSync starts the state machine and waits for it to finish. Errors from
// the API call are returned as is; a failed execution is not an error and
// comes back with an empty Output.
func (r *Runner) RunSync(ctx context.Context, stateMachineARN string, input []byte) (application.WorkflowResult, error) {
	out, err := r.client.StartSyncExecution(ctx, &sfn.StartSyncExecutionInput{
		StateMachineArn: aws.String(stateMachineARN),
		Input:           aws.String(string(input)),
	})
	if err != nil {
		return application.WorkflowResult{}, err
	}
	return application.WorkflowResult{
		ExecutionID: aws.ToString(out.ExecutionArn),
		Status:      string(out.Status),
		Output:      aws.ToString(out.Output),
		Error:       aws.ToString(out.Error),
		Cause:       aws.ToString(out.Cause),
	}, nil
}
