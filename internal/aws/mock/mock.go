package mock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/pipes"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/zalando-incubator/cfn-pipes/aws"

	"github.com/stretchr/testify/mock"
)

// CloudFormationAPI is a mock implementation of [aws.CloudFormationAPI]
type CloudFormationAPI struct {
	mock.Mock
}

var _ aws.CloudFormationAPI = &CloudFormationAPI{}

func (m *CloudFormationAPI) DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*cloudformation.DescribeStacksOutput), args.Error(1)
}

func (m *CloudFormationAPI) CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*cloudformation.CreateStackOutput), args.Error(1)
}

func (m *CloudFormationAPI) UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*cloudformation.UpdateStackOutput), args.Error(1)
}

func (m *CloudFormationAPI) DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*cloudformation.DeleteStackOutput), args.Error(1)
}

func (m *CloudFormationAPI) UpdateTerminationProtection(ctx context.Context, params *cloudformation.UpdateTerminationProtectionInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateTerminationProtectionOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*cloudformation.UpdateTerminationProtectionOutput), args.Error(1)
}

// SQSAPI is a mock implementation of [aws.SQSAPI]
type SQSAPI struct {
	mock.Mock
}

var _ aws.SQSAPI = &SQSAPI{}

func (m *SQSAPI) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*sqs.SendMessageOutput), args.Error(1)
}

func (m *SQSAPI) GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*sqs.GetQueueAttributesOutput), args.Error(1)
}

// PipesAPI is a mock implementation of [aws.PipesAPI]
type PipesAPI struct {
	mock.Mock
}

var _ aws.PipesAPI = &PipesAPI{}

func (m *PipesAPI) DescribePipe(ctx context.Context, params *pipes.DescribePipeInput, optFns ...func(*pipes.Options)) (*pipes.DescribePipeOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*pipes.DescribePipeOutput), args.Error(1)
}

func (m *PipesAPI) StartPipe(ctx context.Context, params *pipes.StartPipeInput, optFns ...func(*pipes.Options)) (*pipes.StartPipeOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*pipes.StartPipeOutput), args.Error(1)
}

func (m *PipesAPI) StopPipe(ctx context.Context, params *pipes.StopPipeInput, optFns ...func(*pipes.Options)) (*pipes.StopPipeOutput, error) {
	args := m.Called(ctx, params, optFns)
	return args.Get(0).(*pipes.StopPipeOutput), args.Error(1)
}
