package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pipes"
	pipestypes "github.com/aws/aws-sdk-go-v2/service/pipes/types"
	log "github.com/sirupsen/logrus"
)

// ErrPipeFailed is used to signal that a pipe reached a failed state.
var ErrPipeFailed = errors.New("pipe failed")

// PipeState is the current and desired state of a pipe.
type PipeState struct {
	Name         string
	Current      string
	Desired      string
	StateReason  string
	LastModified time.Time
}

// IsFailed returns true if the pipe will not reach its desired state
// without intervention.
func (s *PipeState) IsFailed() bool {
	return strings.HasSuffix(s.Current, "_FAILED")
}

// PipeName returns the name of the pipe with the given ARN.
func PipeName(arn string) string {
	if i := strings.LastIndex(arn, "/"); i >= 0 {
		return arn[i+1:]
	}
	return arn
}

// GetPipeState returns the state of the pipe with the given name or ARN.
func (a *Adapter) GetPipeState(ctx context.Context, pipe string) (*PipeState, error) {
	name := PipeName(pipe)
	resp, err := a.pipes.DescribePipe(ctx, &pipes.DescribePipeInput{Name: aws.String(name)})
	if err != nil {
		return nil, fmt.Errorf("failed to describe pipe %q: %w", name, err)
	}
	return &PipeState{
		Name:         aws.ToString(resp.Name),
		Current:      string(resp.CurrentState),
		Desired:      string(resp.DesiredState),
		StateReason:  aws.ToString(resp.StateReason),
		LastModified: aws.ToTime(resp.LastModifiedTime),
	}, nil
}

// SetPipeState starts or stops the pipe.
func (a *Adapter) SetPipeState(ctx context.Context, pipe, desired string) error {
	name := PipeName(pipe)
	var err error
	switch pipestypes.RequestedPipeState(desired) {
	case pipestypes.RequestedPipeStateRunning:
		_, err = a.pipes.StartPipe(ctx, &pipes.StartPipeInput{Name: aws.String(name)})
	case pipestypes.RequestedPipeStateStopped:
		_, err = a.pipes.StopPipe(ctx, &pipes.StopPipeInput{Name: aws.String(name)})
	default:
		return fmt.Errorf("invalid pipe state %q", desired)
	}
	if err != nil {
		return fmt.Errorf("failed to set state of pipe %q to %s: %w", name, desired, err)
	}
	return nil
}

// WaitForPipeState polls the pipe until it reports the desired state. It
// fails early when the pipe enters a failed state and gives up after the
// creation timeout of the adapter.
func (a *Adapter) WaitForPipeState(ctx context.Context, pipe, desired string) (*PipeState, error) {
	ctx, cancel := context.WithTimeout(ctx, a.creationTimeout)
	defer cancel()

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		state, err := a.GetPipeState(ctx, pipe)
		if err != nil {
			return nil, err
		}
		log.WithField("pipe", state.Name).Debugf("pipe is %s, want %s", state.Current, desired)
		if state.Current == desired {
			return state, nil
		}
		if state.IsFailed() {
			return state, fmt.Errorf("%w: %s is %s: %s", ErrPipeFailed, state.Name, state.Current, state.StateReason)
		}

		select {
		case <-ctx.Done():
			return state, fmt.Errorf("pipe %s did not reach %s: %w", state.Name, desired, ctx.Err())
		case <-ticker.C:
		}
	}
}
