package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zalando-incubator/cfn-pipes/aws/fake"
)

func newTestAdapter(cf CloudFormationAPI, sqsClient SQSAPI, pipesClient PipesAPI) *Adapter {
	return NewAdapterFromClients(cf, sqsClient, pipesClient, "test-controller").
		WithPollInterval(time.Millisecond).
		WithCreationTimeout(time.Second)
}

func TestNewAdapterFromClientsDefaults(t *testing.T) {
	a := NewAdapterFromClients(&fake.CFClient{}, &fake.SQSClient{}, &fake.PipesClient{}, "")
	assert.Equal(t, DefaultControllerID, a.ControllerID())
	assert.Equal(t, DefaultCreationTimeout, a.creationTimeout)
	assert.Equal(t, DefaultPollInterval, a.pollInterval)
	assert.False(t, a.stackTerminationProtection)
}

func TestAdapterSetters(t *testing.T) {
	a := NewAdapterFromClients(&fake.CFClient{}, &fake.SQSClient{}, &fake.PipesClient{}, "x").
		WithCreationTimeout(3 * time.Minute).
		WithPollInterval(2 * time.Second).
		WithStackTerminationProtection(true).
		WithStackPrefix("prod")

	assert.Equal(t, 3*time.Minute, a.creationTimeout)
	assert.Equal(t, 2*time.Second, a.pollInterval)
	assert.True(t, a.stackTerminationProtection)
	assert.Equal(t, "prod-orders", a.StackName("orders"))

	// non-positive durations are ignored
	a.WithCreationTimeout(0).WithPollInterval(-1)
	assert.Equal(t, 3*time.Minute, a.creationTimeout)
	assert.Equal(t, 2*time.Second, a.pollInterval)
}

func TestNewAdapter(t *testing.T) {
	defer func(loader func(context.Context, string) (aws.Config, error)) { configLoader = loader }(configLoader)

	t.Run("with-region", func(t *testing.T) {
		configLoader = func(_ context.Context, region string) (aws.Config, error) {
			return aws.Config{Region: region}, nil
		}
		a, err := NewAdapter(context.Background(), "eu-central-1", "ctrl")
		require.NoError(t, err)
		assert.Equal(t, "ctrl", a.ControllerID())
		assert.NotNil(t, a.cloudformation)
		assert.NotNil(t, a.sqs)
		assert.NotNil(t, a.pipes)
	})

	t.Run("no-region", func(t *testing.T) {
		configLoader = func(context.Context, string) (aws.Config, error) {
			return aws.Config{}, nil
		}
		_, err := NewAdapter(context.Background(), "", "ctrl")
		assert.EqualError(t, err, "no AWS region configured")
	})

	t.Run("loader-error", func(t *testing.T) {
		configLoader = func(context.Context, string) (aws.Config, error) {
			return aws.Config{}, errors.New("no credentials")
		}
		_, err := NewAdapter(context.Background(), "eu-west-1", "ctrl")
		assert.EqualError(t, err, "failed to load AWS config: no credentials")
	})
}
