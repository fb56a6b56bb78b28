package aws

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const smokeTestAttribute = "cfn-pipes-smoke-test"

// SendMessage sends body to the queue and returns the message ID. Every
// message carries a unique correlation attribute so it can be recognized
// downstream.
func (a *Adapter) SendMessage(ctx context.Context, queueURL, body string) (string, error) {
	correlationID := uuid.New().String()
	resp, err := a.sqs.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(body),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			smokeTestAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(correlationID),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send message to %s: %w", queueURL, err)
	}
	log.WithField("queue", queueURL).Debugf("sent message %s with correlation id %s", aws.ToString(resp.MessageId), correlationID)
	return aws.ToString(resp.MessageId), nil
}

// QueueDepth returns the approximate number of visible and in flight
// messages in the queue.
func (a *Adapter) QueueDepth(ctx context.Context, queueURL string) (visible, inFlight int, err error) {
	resp, err := a.sqs.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl: aws.String(queueURL),
		AttributeNames: []sqstypes.QueueAttributeName{
			sqstypes.QueueAttributeNameApproximateNumberOfMessages,
			sqstypes.QueueAttributeNameApproximateNumberOfMessagesNotVisible,
		},
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get attributes of %s: %w", queueURL, err)
	}
	visible, err = atoiAttribute(resp.Attributes, sqstypes.QueueAttributeNameApproximateNumberOfMessages)
	if err != nil {
		return 0, 0, err
	}
	inFlight, err = atoiAttribute(resp.Attributes, sqstypes.QueueAttributeNameApproximateNumberOfMessagesNotVisible)
	if err != nil {
		return 0, 0, err
	}
	return visible, inFlight, nil
}

func atoiAttribute(attributes map[string]string, name sqstypes.QueueAttributeName) (int, error) {
	v, ok := attributes[string(name)]
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid queue attribute %s=%q: %w", name, v, err)
	}
	return n, nil
}
