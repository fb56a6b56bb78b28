package aws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/pipes"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/linki/instrumented_http"
	log "github.com/sirupsen/logrus"
)

// CloudFormationAPI is the subset of the CloudFormation client used by the Adapter.
type CloudFormationAPI interface {
	cloudformation.DescribeStacksAPIClient
	CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
	UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error)
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
	UpdateTerminationProtection(ctx context.Context, params *cloudformation.UpdateTerminationProtectionInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateTerminationProtectionOutput, error)
}

// SQSAPI is the subset of the SQS client used by the Adapter.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
}

// PipesAPI is the subset of the EventBridge Pipes client used by the Adapter.
type PipesAPI interface {
	DescribePipe(ctx context.Context, params *pipes.DescribePipeInput, optFns ...func(*pipes.Options)) (*pipes.DescribePipeOutput, error)
	StartPipe(ctx context.Context, params *pipes.StartPipeInput, optFns ...func(*pipes.Options)) (*pipes.StartPipeOutput, error)
	StopPipe(ctx context.Context, params *pipes.StopPipeInput, optFns ...func(*pipes.Options)) (*pipes.StopPipeOutput, error)
}

var (
	_ CloudFormationAPI = (*cloudformation.Client)(nil)
	_ SQSAPI            = (*sqs.Client)(nil)
	_ PipesAPI          = (*pipes.Client)(nil)
)

// An Adapter deploys stacks with CloudFormation and inspects the resources they create.
type Adapter struct {
	cloudformation CloudFormationAPI
	sqs            SQSAPI
	pipes          PipesAPI

	controllerID               string
	stackPrefix                string
	creationTimeout            time.Duration
	pollInterval               time.Duration
	stackTerminationProtection bool
}

const (
	DefaultControllerID    = "cfn-pipes"
	DefaultCreationTimeout = 10 * time.Minute
	DefaultPollInterval    = 5 * time.Second
	DefaultMaxRetries      = 3
)

var (
	// ErrStackNotFound is used to signal that a given CF stack was not found.
	ErrStackNotFound = errors.New("stack not found")
	// ErrStackNotReady is used to signal that a given CF stack is not in a complete state.
	ErrStackNotReady = errors.New("existing stack not ready")
	// ErrNoUpdates is used to signal that CloudFormation found no changes to apply.
	ErrNoUpdates = errors.New("no updates are to be performed")
	// ErrMissingOutput is used to signal that a stack lacks an expected output.
	ErrMissingOutput = errors.New("missing stack output")
)

var configLoader = defaultConfigLoader

func defaultConfigLoader(ctx context.Context, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRetryMaxAttempts(DefaultMaxRetries),
		config.WithRetryMode(aws.RetryModeStandard),
		config.WithHTTPClient(instrumented_http.NewClient(&http.Client{}, nil)),
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// NewAdapter returns a new Adapter using the default credential chain. An
// empty region selects the region of the environment.
func NewAdapter(ctx context.Context, region, controllerID string) (*Adapter, error) {
	cfg, err := configLoader(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return nil, errors.New("no AWS region configured")
	}
	log.Debugf("using AWS region %s", cfg.Region)

	return NewAdapterFromClients(
		cloudformation.NewFromConfig(cfg, func(o *cloudformation.Options) {
			o.Retryer = retry.AddWithMaxBackoffDelay(o.Retryer, 20*time.Second)
		}),
		sqs.NewFromConfig(cfg),
		pipes.NewFromConfig(cfg),
		controllerID,
	), nil
}

// NewAdapterFromClients returns an Adapter using the given service clients.
func NewAdapterFromClients(cf CloudFormationAPI, sqsClient SQSAPI, pipesClient PipesAPI, controllerID string) *Adapter {
	if controllerID == "" {
		controllerID = DefaultControllerID
	}
	return &Adapter{
		cloudformation:  cf,
		sqs:             sqsClient,
		pipes:           pipesClient,
		controllerID:    controllerID,
		creationTimeout: DefaultCreationTimeout,
		pollInterval:    DefaultPollInterval,
	}
}

// WithCreationTimeout returns the receiver adapter after changing the
// time CloudFormation and the waiters allow for a stack operation.
func (a *Adapter) WithCreationTimeout(timeout time.Duration) *Adapter {
	if timeout > 0 {
		a.creationTimeout = timeout
	}
	return a
}

// WithPollInterval returns the receiver adapter after changing the
// interval between state checks while waiting.
func (a *Adapter) WithPollInterval(interval time.Duration) *Adapter {
	if interval > 0 {
		a.pollInterval = interval
	}
	return a
}

// WithStackTerminationProtection returns the receiver adapter after changing
// the stack termination protection of created stacks.
func (a *Adapter) WithStackTerminationProtection(terminationProtection bool) *Adapter {
	a.stackTerminationProtection = terminationProtection
	return a
}

// WithStackPrefix returns the receiver adapter after changing the prefix
// prepended to every physical stack name.
func (a *Adapter) WithStackPrefix(prefix string) *Adapter {
	a.stackPrefix = prefix
	return a
}

// ControllerID returns the ID tagged on every stack the adapter manages.
func (a *Adapter) ControllerID() string {
	return a.controllerID
}

// StackName returns the physical CloudFormation stack name of a definition.
func (a *Adapter) StackName(name string) string {
	return normalizeStackName(a.stackPrefix, name)
}
