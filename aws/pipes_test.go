package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/pipes/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zalando-incubator/cfn-pipes/aws/fake"
)

const pipeArn = "arn:aws:pipes:eu-central-1:123456789012:pipe/orders-pipe"

func TestPipeName(t *testing.T) {
	assert.Equal(t, "orders-pipe", PipeName(pipeArn))
	assert.Equal(t, "orders-pipe", PipeName("orders-pipe"))
}

func TestGetPipeState(t *testing.T) {
	p := &fake.PipesClient{
		States:  []types.PipeState{types.PipeStateRunning},
		Desired: types.RequestedPipeStateDescribeResponseRunning,
	}
	state, err := newTestAdapter(nil, nil, p).GetPipeState(context.Background(), pipeArn)
	require.NoError(t, err)
	assert.Equal(t, "orders-pipe", state.Name)
	assert.Equal(t, "RUNNING", state.Current)
	assert.Equal(t, "RUNNING", state.Desired)
	assert.False(t, state.IsFailed())
}

func TestSetPipeState(t *testing.T) {
	p := &fake.PipesClient{}
	a := newTestAdapter(nil, nil, p)

	require.NoError(t, a.SetPipeState(context.Background(), pipeArn, "RUNNING"))
	require.NoError(t, a.SetPipeState(context.Background(), "orders-pipe", "STOPPED"))
	assert.Equal(t, []string{"orders-pipe"}, p.Started)
	assert.Equal(t, []string{"orders-pipe"}, p.Stopped)

	assert.EqualError(t, a.SetPipeState(context.Background(), pipeArn, "PAUSED"), `invalid pipe state "PAUSED"`)

	p.Err = fake.ErrDummy
	assert.ErrorIs(t, a.SetPipeState(context.Background(), pipeArn, "RUNNING"), fake.ErrDummy)
}

func TestWaitForPipeState(t *testing.T) {
	for _, ti := range []struct {
		name          string
		states        []types.PipeState
		err           error
		timeout       time.Duration
		want          string
		wantErr       error
		wantAnyErr    bool
		wantDescribes int
	}{
		{
			name:          "immediately",
			states:        []types.PipeState{types.PipeStateRunning},
			want:          "RUNNING",
			wantDescribes: 1,
		},
		{
			name:          "after-starting",
			states:        []types.PipeState{types.PipeStateCreating, types.PipeStateStarting, types.PipeStateRunning},
			want:          "RUNNING",
			wantDescribes: 3,
		},
		{
			name:          "failed",
			states:        []types.PipeState{types.PipeStateStarting, types.PipeStateStartFailed},
			wantErr:       ErrPipeFailed,
			wantDescribes: 2,
		},
		{
			name:       "timeout",
			states:     []types.PipeState{types.PipeStateStarting},
			timeout:    20 * time.Millisecond,
			wantAnyErr: true,
		},
		{
			name:          "describe-error",
			err:           fake.ErrDummy,
			wantErr:       fake.ErrDummy,
			wantDescribes: 0,
		},
	} {
		t.Run(ti.name, func(t *testing.T) {
			p := &fake.PipesClient{States: ti.states, Err: ti.err, Reason: "because"}
			a := newTestAdapter(nil, nil, p)
			if ti.timeout > 0 {
				a.WithCreationTimeout(ti.timeout)
			}

			state, err := a.WaitForPipeState(context.Background(), pipeArn, "RUNNING")
			switch {
			case ti.wantErr != nil:
				assert.True(t, errors.Is(err, ti.wantErr), "got %v", err)
			case ti.wantAnyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, ti.want, state.Current)
			}
			if ti.wantDescribes > 0 {
				assert.Equal(t, ti.wantDescribes, p.Describes())
			}
		})
	}
}
