package fake

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pipes"
	"github.com/aws/aws-sdk-go-v2/service/pipes/types"
)

// PipesClient reports the pipe states in order, repeating the last one.
type PipesClient struct {
	States    []types.PipeState
	Desired   types.RequestedPipeStateDescribeResponse
	Reason    string
	Err       error
	Started   []string
	Stopped   []string
	describes int
}

func (m *PipesClient) DescribePipe(_ context.Context, in *pipes.DescribePipeInput, _ ...func(*pipes.Options)) (*pipes.DescribePipeOutput, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.States) == 0 {
		return nil, errors.New("no pipe states configured")
	}
	i := m.describes
	if i >= len(m.States) {
		i = len(m.States) - 1
	}
	m.describes++
	return &pipes.DescribePipeOutput{
		Name:         in.Name,
		Arn:          aws.String("arn:aws:pipes:eu-central-1:123456789012:pipe/" + aws.ToString(in.Name)),
		CurrentState: m.States[i],
		DesiredState: m.Desired,
		StateReason:  aws.String(m.Reason),
	}, nil
}

func (m *PipesClient) StartPipe(_ context.Context, in *pipes.StartPipeInput, _ ...func(*pipes.Options)) (*pipes.StartPipeOutput, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Started = append(m.Started, aws.ToString(in.Name))
	return &pipes.StartPipeOutput{Name: in.Name}, nil
}

func (m *PipesClient) StopPipe(_ context.Context, in *pipes.StopPipeInput, _ ...func(*pipes.Options)) (*pipes.StopPipeOutput, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Stopped = append(m.Stopped, aws.ToString(in.Name))
	return &pipes.StopPipeOutput{Name: in.Name}, nil
}

// Describes returns how often DescribePipe was called.
func (m *PipesClient) Describes() int {
	return m.describes
}
