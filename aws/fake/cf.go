package fake

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

type CFOutputs struct {
	DescribeStacks              *APIResponse
	CreateStack                 *APIResponse
	UpdateStack                 *APIResponse
	DeleteStack                 *APIResponse
	UpdateTerminationProtection *APIResponse
}

// CFClient is a CloudFormation client returning canned responses. When
// Pages is set, listing all stacks returns one page per element.
type CFClient struct {
	Outputs CFOutputs
	Pages   []*cloudformation.DescribeStacksOutput

	LastCreate               *cloudformation.CreateStackInput
	LastUpdate               *cloudformation.UpdateStackInput
	TerminationProtection    []bool
	Deleted                  []string
	DescribeStacksCallsCount int
}

func (m *CFClient) DescribeStacks(_ context.Context, in *cloudformation.DescribeStacksInput, _ ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	m.DescribeStacksCallsCount++
	if len(m.Pages) > 0 && in.StackName == nil {
		i := 0
		if in.NextToken != nil {
			i, _ = strconv.Atoi(*in.NextToken)
		}
		page := *m.Pages[i]
		page.NextToken = nil
		if i+1 < len(m.Pages) {
			page.NextToken = aws.String(strconv.Itoa(i + 1))
		}
		return &page, nil
	}
	out, err := m.Outputs.DescribeStacks.result()
	if o, ok := out.(*cloudformation.DescribeStacksOutput); ok {
		return o, err
	}
	return nil, err
}

func (m *CFClient) CreateStack(_ context.Context, in *cloudformation.CreateStackInput, _ ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error) {
	m.LastCreate = in
	out, err := m.Outputs.CreateStack.result()
	if o, ok := out.(*cloudformation.CreateStackOutput); ok {
		return o, err
	}
	return nil, err
}

func (m *CFClient) UpdateStack(_ context.Context, in *cloudformation.UpdateStackInput, _ ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error) {
	m.LastUpdate = in
	out, err := m.Outputs.UpdateStack.result()
	if o, ok := out.(*cloudformation.UpdateStackOutput); ok {
		return o, err
	}
	return nil, err
}

func (m *CFClient) DeleteStack(_ context.Context, in *cloudformation.DeleteStackInput, _ ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	out, err := m.Outputs.DeleteStack.result()
	if err == nil {
		m.Deleted = append(m.Deleted, aws.ToString(in.StackName))
	}
	if o, ok := out.(*cloudformation.DeleteStackOutput); ok {
		return o, err
	}
	return &cloudformation.DeleteStackOutput{}, err
}

func (m *CFClient) UpdateTerminationProtection(_ context.Context, in *cloudformation.UpdateTerminationProtectionInput, _ ...func(*cloudformation.Options)) (*cloudformation.UpdateTerminationProtectionOutput, error) {
	out, err := m.Outputs.UpdateTerminationProtection.result()
	if err == nil {
		m.TerminationProtection = append(m.TerminationProtection, aws.ToBool(in.EnableTerminationProtection))
	}
	if o, ok := out.(*cloudformation.UpdateTerminationProtectionOutput); ok {
		return o, err
	}
	return &cloudformation.UpdateTerminationProtectionOutput{StackId: in.StackName}, err
}

func MockCSOutput(stackID string) *cloudformation.CreateStackOutput {
	return &cloudformation.CreateStackOutput{
		StackId: aws.String(stackID),
	}
}

func MockUSOutput(stackID string) *cloudformation.UpdateStackOutput {
	return &cloudformation.UpdateStackOutput{
		StackId: aws.String(stackID),
	}
}

// TestStack describes a stack returned by DescribeStacks.
type TestStack struct {
	Name    string
	Status  types.StackStatus
	Tags    Tags
	Outputs map[string]string
}

func (s TestStack) stack() types.Stack {
	stack := types.Stack{
		StackName:   aws.String(s.Name),
		StackId:     aws.String("arn:aws:cloudformation:eu-central-1:123456789012:stack/" + s.Name + "/1"),
		StackStatus: s.Status,
	}
	for k, v := range s.Tags {
		stack.Tags = append(stack.Tags, types.Tag{Key: aws.String(k), Value: aws.String(v)})
	}
	for k, v := range s.Outputs {
		stack.Outputs = append(stack.Outputs, types.Output{OutputKey: aws.String(k), OutputValue: aws.String(v)})
	}
	return stack
}

func MockDescribeStacksOutput(stacks ...TestStack) *cloudformation.DescribeStacksOutput {
	out := &cloudformation.DescribeStacksOutput{}
	for _, s := range stacks {
		out.Stacks = append(out.Stacks, s.stack())
	}
	return out
}
