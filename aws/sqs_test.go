package aws_test

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zalando-incubator/cfn-pipes/aws"
	"github.com/zalando-incubator/cfn-pipes/aws/fake"
	awsmock "github.com/zalando-incubator/cfn-pipes/internal/aws/mock"
)

const queueURL = "https://sqs.eu-central-1.amazonaws.com/123456789012/orders-SourceQueue"

func TestSendMessage(t *testing.T) {
	sqsClient := &awsmock.SQSAPI{}
	sqsClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
		attr, ok := in.MessageAttributes["cfn-pipes-smoke-test"]
		return awssdk.ToString(in.QueueUrl) == queueURL &&
			awssdk.ToString(in.MessageBody) == `{"id":1}` &&
			ok && awssdk.ToString(attr.StringValue) != ""
	}), mock.Anything).Return(&sqs.SendMessageOutput{MessageId: awssdk.String("msg-1")}, nil)

	a := aws.NewAdapterFromClients(&fake.CFClient{}, sqsClient, &fake.PipesClient{}, "")
	id, err := a.SendMessage(context.Background(), queueURL, `{"id":1}`)
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	sqsClient.AssertExpectations(t)
}

func TestSendMessageUniqueCorrelation(t *testing.T) {
	sqsClient := &fake.SQSClient{}
	a := aws.NewAdapterFromClients(&fake.CFClient{}, sqsClient, &fake.PipesClient{}, "")

	for i := 0; i < 2; i++ {
		_, err := a.SendMessage(context.Background(), queueURL, "hello")
		require.NoError(t, err)
	}
	require.Len(t, sqsClient.Sent, 2)
	first := awssdk.ToString(sqsClient.Sent[0].MessageAttributes["cfn-pipes-smoke-test"].StringValue)
	second := awssdk.ToString(sqsClient.Sent[1].MessageAttributes["cfn-pipes-smoke-test"].StringValue)
	assert.NotEqual(t, first, second)
}

func TestSendMessageError(t *testing.T) {
	sqsClient := &fake.SQSClient{Outputs: fake.SQSOutputs{SendMessage: fake.R(nil, fake.ErrDummy)}}
	a := aws.NewAdapterFromClients(&fake.CFClient{}, sqsClient, &fake.PipesClient{}, "")

	_, err := a.SendMessage(context.Background(), queueURL, "hello")
	assert.ErrorIs(t, err, fake.ErrDummy)
}

func TestQueueDepth(t *testing.T) {
	for _, ti := range []struct {
		name         string
		attributes   map[string]string
		wantVisible  int
		wantInFlight int
		wantErr      bool
	}{
		{
			name: "both",
			attributes: map[string]string{
				"ApproximateNumberOfMessages":           "4",
				"ApproximateNumberOfMessagesNotVisible": "2",
			},
			wantVisible:  4,
			wantInFlight: 2,
		},
		{
			name:       "missing",
			attributes: map[string]string{},
		},
		{
			name:       "invalid",
			attributes: map[string]string{"ApproximateNumberOfMessages": "many"},
			wantErr:    true,
		},
	} {
		t.Run(ti.name, func(t *testing.T) {
			sqsClient := &fake.SQSClient{Outputs: fake.SQSOutputs{
				GetQueueAttributes: fake.R(&sqs.GetQueueAttributesOutput{Attributes: ti.attributes}, nil),
			}}
			a := aws.NewAdapterFromClients(&fake.CFClient{}, sqsClient, &fake.PipesClient{}, "")

			visible, inFlight, err := a.QueueDepth(context.Background(), queueURL)
			if ti.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ti.wantVisible, visible)
			assert.Equal(t, ti.wantInFlight, inFlight)
		})
	}
}
