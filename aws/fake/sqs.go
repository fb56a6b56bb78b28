package fake

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type SQSOutputs struct {
	SendMessage        *APIResponse
	GetQueueAttributes *APIResponse
}

type SQSClient struct {
	Outputs SQSOutputs
	Sent    []*sqs.SendMessageInput
}

func (m *SQSClient) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	out, err := m.Outputs.SendMessage.result()
	if err != nil {
		return nil, err
	}
	m.Sent = append(m.Sent, in)
	if o, ok := out.(*sqs.SendMessageOutput); ok {
		return o, nil
	}
	return &sqs.SendMessageOutput{}, nil
}

func (m *SQSClient) GetQueueAttributes(_ context.Context, _ *sqs.GetQueueAttributesInput, _ ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error) {
	out, err := m.Outputs.GetQueueAttributes.result()
	if o, ok := out.(*sqs.GetQueueAttributesOutput); ok {
		return o, err
	}
	return nil, err
}
