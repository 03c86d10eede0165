package sfn

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/sfn/types"
	"github.com/stretchr/testify/require"
)

type fakeSFN struct {
	in  *sfn.StartSyncExecutionInput
	out *sfn.StartSyncExecutionOutput
	err error
}

func (f *fakeSFN) StartSyncExecution(_ context.Context, in *sfn.StartSyncExecutionInput, _ ...func(*sfn.Options)) (*sfn.StartSyncExecutionOutput, error) {
	f.in = in
	return f.out, f.err
}

const arn = "arn:aws:states:us-east-1:123456789012:stateMachine:quote"

func TestRunSync_Succeeded(t *testing.T) {
	f := &fakeSFN{out: &sfn.StartSyncExecutionOutput{
		ExecutionArn: aws.String(arn + ":exec-1"),
		Status:       types.SyncExecutionStatusSucceeded,
		Output:       aws.String(`{"quote":50.0}`),
	}}
	res, err := New(f).RunSync(context.Background(), arn, []byte(`{"name":"Alice","email":"a@x.com","value":5000}`))
	require.NoError(t, err)
	require.Equal(t, arn, aws.ToString(f.in.StateMachineArn))
	require.JSONEq(t, `{"name":"Alice","email":"a@x.com","value":5000}`, aws.ToString(f.in.Input))
	require.Equal(t, "SUCCEEDED", res.Status)
	require.Equal(t, `{"quote":50.0}`, res.Output)
	require.Equal(t, arn+":exec-1", res.ExecutionID)
}

func TestRunSync_FailedExecution(t *testing.T) {
	f := &fakeSFN{out: &sfn.StartSyncExecutionOutput{
		Status: types.SyncExecutionStatusFailed,
		Error:  aws.String("States.TaskFailed"),
		Cause:  aws.String("lambda crashed"),
	}}
	res, err := New(f).RunSync(context.Background(), arn, []byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, res.Output)
	require.Equal(t, "FAILED", res.Status)
	require.Equal(t, "States.TaskFailed", res.Error)
	require.Equal(t, "lambda crashed", res.Cause)
}

func TestRunSync_CallError(t *testing.T) {
	f := &fakeSFN{err: errors.New("timeout")}
	_, err := New(f).RunSync(context.Background(), arn, []byte(`{}`))
	require.EqualError(t, err, "timeout")
}
