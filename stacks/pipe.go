package stacks

import (
	"encoding/json"
	"fmt"

	cf "github.com/zalando-incubator/cfn-pipes/internal/aws/cloudformation"
)

// Logical IDs and outputs of the pipe stack. The CLI and the smoke test
// look resources up by these names.
const (
	PipeSourceQueueID       = "SourceQueue"
	PipeDeadLetterQueueID   = "SourceQueueDLQ"
	PipeEventBusID          = "TargetEventBus"
	PipeRoleID              = "PipeRole"
	PipeID                  = "Pipe"
	PipeLogGroupID          = "PipeLogGroup"
	PipeConsumerRuleID      = "ConsumerRule"
	PipeTargetQueueID       = "TargetQueue"
	PipeTargetQueuePolicyID = "TargetQueuePolicy"

	OutputQueueURL       = "QueueURL"
	OutputQueueArn       = "QueueArn"
	OutputEventBusName   = "EventBusName"
	OutputEventBusArn    = "EventBusArn"
	OutputPipeArn        = "PipeArn"
	OutputTargetQueueURL = "TargetQueueURL"
)

const (
	DefaultVisibilityTimeout  = 60
	DefaultMessageRetention   = 4 * 24 * 60 * 60
	DefaultMaxReceiveCount    = 3
	DefaultBatchSize          = 1
	DefaultEventSource        = "cdk.myapp"
	DefaultEventDetailType    = "transaction"
	DefaultLogRetentionInDays = 14

	PipeStateRunning = "RUNNING"
	PipeStateStopped = "STOPPED"

	policyVersion = "2012-10-17"
)

// PipeConfig configures a stack where an SQS queue feeds an EventBridge
// bus through an EventBridge Pipe.
type PipeConfig struct {
	Queue                        QueueConfig    `json:"queue,omitempty"`
	EventBusName                 string         `json:"eventBusName,omitempty"`
	Source                       string         `json:"source,omitempty"`
	DetailType                   string         `json:"detailType,omitempty"`
	InputTemplate                string         `json:"inputTemplate,omitempty"`
	BatchSize                    int64          `json:"batchSize,omitempty" validate:"omitempty,min=1,max=10000"`
	MaximumBatchingWindowSeconds int64          `json:"maximumBatchingWindowSeconds,omitempty" validate:"omitempty,max=300"`
	Filters                      []string       `json:"filters,omitempty" validate:"max=5"`
	DesiredState                 string         `json:"desiredState,omitempty" validate:"omitempty,oneof=RUNNING STOPPED"`
	Logging                      *LoggingConfig `json:"logging,omitempty"`
	Consumer                     *QueueConfig   `json:"consumer,omitempty"`
}

// QueueConfig configures an SQS queue. Zero values select the defaults.
type QueueConfig struct {
	VisibilityTimeoutSeconds int64             `json:"visibilityTimeoutSeconds,omitempty" validate:"omitempty,max=43200"`
	RetentionSeconds         int64             `json:"retentionSeconds,omitempty" validate:"omitempty,min=60,max=1209600"`
	DeadLetter               *DeadLetterConfig `json:"deadLetter,omitempty"`
}

// DeadLetterConfig enables a dead-letter queue.
type DeadLetterConfig struct {
	MaxReceiveCount int64 `json:"maxReceiveCount,omitempty" validate:"omitempty,min=1,max=1000"`
}

// LoggingConfig enables pipe execution logs in CloudWatch Logs.
type LoggingConfig struct {
	Level                string `json:"level,omitempty" validate:"omitempty,oneof=OFF ERROR INFO TRACE"`
	RetentionInDays      int64  `json:"retentionInDays,omitempty"`
	IncludeExecutionData bool   `json:"includeExecutionData,omitempty"`
}

// PipeStack is the Definition of a queue to bus pipe.
type PipeStack struct {
	name   string
	config PipeConfig
	tags   map[string]string
}

// NewPipeStack returns the pipe stack name configured by config.
func NewPipeStack(name string, config PipeConfig, tags map[string]string) *PipeStack {
	return &PipeStack{name: name, config: config, tags: tags}
}

func (s *PipeStack) Name() string { return s.name }

func (s *PipeStack) Kind() Kind { return KindPipe }

// EventBusName is the name of the target bus.
func (s *PipeStack) EventBusName() string {
	if s.config.EventBusName != "" {
		return s.config.EventBusName
	}
	return s.name + "-bus"
}

// Config returns the configuration of the pipe.
func (s *PipeStack) Config() PipeConfig { return s.config }

// Tags returns the tags of every resource in the stack.
func (s *PipeStack) Tags() map[string]string { return s.tags }

// EventSource is the source of the events put on the bus.
func (s *PipeStack) EventSource() string {
	if s.config.Source != "" {
		return s.config.Source
	}
	return DefaultEventSource
}

// DetailType is the detail type of the events put on the bus.
func (s *PipeStack) DetailType() string {
	if s.config.DetailType != "" {
		return s.config.DetailType
	}
	return DefaultEventDetailType
}

// LogGroupName is the name of the pipe log group.
func (s *PipeStack) LogGroupName() string {
	return "/aws/vendedlogs/pipes/" + s.name
}

// LogLevel is the pipe log level, ERROR unless configured.
func (s *PipeStack) LogLevel() string {
	if s.config.Logging == nil {
		return ""
	}
	return defaultString(s.config.Logging.Level, "ERROR")
}

// DesiredState is the state the pipe is deployed in.
func (s *PipeStack) DesiredState() string {
	if s.config.DesiredState != "" {
		return s.config.DesiredState
	}
	return PipeStateRunning
}

func (s *PipeStack) Template() (*cf.Template, error) {
	for i, f := range s.config.Filters {
		if !json.Valid([]byte(f)) {
			return nil, fmt.Errorf("filter %d is not a valid JSON event pattern", i)
		}
	}

	t := cf.NewTemplate()
	t.Description = fmt.Sprintf("Queue to event bus pipe %s", s.name)

	addQueue(t, PipeSourceQueueID, PipeDeadLetterQueueID, s.config.Queue, s.tags)

	t.AddResource(PipeEventBusID, &cf.EventsEventBus{
		Name: cf.String(s.EventBusName()),
		Tags: cf.Tags(s.tags),
	})

	policies := cf.IAMRolePolicyList{
		rolePolicy("SourcePolicy", []string{"sqs:ReceiveMessage", "sqs:DeleteMessage", "sqs:GetQueueAttributes"}, cf.GetAtt(PipeSourceQueueID, "Arn")),
		rolePolicy("TargetPolicy", []string{"events:PutEvents"}, cf.GetAtt(PipeEventBusID, "Arn")),
	}
	if s.config.Logging != nil {
		policies = append(policies, rolePolicy("LogPolicy", []string{"logs:CreateLogStream", "logs:PutLogEvents"}, cf.GetAtt(PipeLogGroupID, "Arn")))
	}
	t.AddResource(PipeRoleID, &cf.IAMRole{
		AssumeRolePolicyDocument: cf.IAMPolicyDocument{
			Version: policyVersion,
			Statement: cf.IAMPolicyStatementList{{
				Effect:    "Allow",
				Principal: &cf.IAMPrincipal{Service: cf.StringList(cf.String("pipes.amazonaws.com"))},
				Action:    cf.StringList(cf.String("sts:AssumeRole")),
				Condition: map[string]interface{}{
					"StringEquals": map[string]interface{}{
						"aws:SourceAccount": cf.Ref("AWS::AccountId"),
					},
				},
			}},
		},
		Policies: &policies,
		Tags:     cf.Tags(s.tags),
	})

	pipe := &cf.PipesPipe{
		Description:  cf.String(fmt.Sprintf("Forwards messages of %s to %s", PipeSourceQueueID, s.EventBusName())),
		DesiredState: cf.String(s.DesiredState()),
		RoleArn:      cf.GetAtt(PipeRoleID, "Arn"),
		Source:       cf.GetAtt(PipeSourceQueueID, "Arn"),
		SourceParameters: &cf.PipesPipePipeSourceParameters{
			FilterCriteria: s.filterCriteria(),
			SqsQueueParameters: &cf.PipesPipePipeSourceSqsQueueParameters{
				BatchSize:                      cf.Integer(defaultInt(s.config.BatchSize, DefaultBatchSize)),
				MaximumBatchingWindowInSeconds: optionalInteger(s.config.MaximumBatchingWindowSeconds),
			},
		},
		Target: cf.GetAtt(PipeEventBusID, "Arn"),
		TargetParameters: &cf.PipesPipePipeTargetParameters{
			EventBridgeEventBusParameters: &cf.PipesPipePipeTargetEventBridgeEventBusParameters{
				Source:     cf.String(s.EventSource()),
				DetailType: cf.String(s.DetailType()),
			},
			InputTemplate: optionalString(s.config.InputTemplate),
		},
	}
	if len(s.tags) > 0 {
		pipe.Tags = s.tags
	}
	if s.config.Logging != nil {
		t.AddResource(PipeLogGroupID, &cf.LogsLogGroup{
			LogGroupName:    cf.String(s.LogGroupName()),
			RetentionInDays: cf.Integer(defaultInt(s.config.Logging.RetentionInDays, DefaultLogRetentionInDays)),
			Tags:            cf.Tags(s.tags),
		})
		logConfig := &cf.PipesPipePipeLogConfiguration{
			CloudwatchLogsLogDestination: &cf.PipesPipeCloudwatchLogsLogDestination{
				LogGroupArn: cf.GetAtt(PipeLogGroupID, "Arn"),
			},
			Level: cf.String(s.LogLevel()),
		}
		if s.config.Logging.IncludeExecutionData {
			logConfig.IncludeExecutionData = cf.StringList(cf.String("ALL"))
		}
		pipe.LogConfiguration = logConfig
	}
	t.AddResource(PipeID, pipe)

	if s.config.Consumer != nil {
		s.addConsumer(t)
	}

	t.AddOutput(OutputQueueURL, "URL of the source queue", cf.Ref(PipeSourceQueueID).String())
	t.AddOutput(OutputQueueArn, "ARN of the source queue", cf.GetAtt(PipeSourceQueueID, "Arn"))
	t.AddOutput(OutputEventBusName, "Name of the target event bus", cf.Ref(PipeEventBusID).String())
	t.AddOutput(OutputEventBusArn, "ARN of the target event bus", cf.GetAtt(PipeEventBusID, "Arn"))
	t.AddOutput(OutputPipeArn, "ARN of the pipe", cf.GetAtt(PipeID, "Arn"))
	return t, nil
}

func (s *PipeStack) filterCriteria() *cf.PipesPipeFilterCriteria {
	if len(s.config.Filters) == 0 {
		return nil
	}
	filters := make(cf.PipesPipeFilterList, 0, len(s.config.Filters))
	for _, f := range s.config.Filters {
		filters = append(filters, cf.PipesPipeFilter{Pattern: cf.String(f)})
	}
	return &cf.PipesPipeFilterCriteria{Filters: &filters}
}

// addConsumer subscribes a queue to the events the pipe publishes.
func (s *PipeStack) addConsumer(t *cf.Template) {
	addQueue(t, PipeTargetQueueID, PipeTargetQueueID+"DLQ", *s.config.Consumer, s.tags)

	t.AddResource(PipeConsumerRuleID, &cf.EventsRule{
		Description:  cf.String("Consumer SQS Rule"),
		EventBusName: cf.Ref(PipeEventBusID).String(),
		EventPattern: map[string]interface{}{
			"source": []string{s.EventSource()},
		},
		State: cf.String("ENABLED"),
		Targets: &cf.EventsRuleTargetList{{
			Arn: cf.GetAtt(PipeTargetQueueID, "Arn"),
			ID:  cf.String(PipeTargetQueueID),
		}},
	})

	t.AddResource(PipeTargetQueuePolicyID, &cf.SQSQueuePolicy{
		Queues: cf.StringList(cf.Ref(PipeTargetQueueID)),
		PolicyDocument: cf.IAMPolicyDocument{
			Version: policyVersion,
			Statement: cf.IAMPolicyStatementList{{
				Effect:    "Allow",
				Principal: &cf.IAMPrincipal{Service: cf.StringList(cf.String("events.amazonaws.com"))},
				Action:    cf.StringList(cf.String("sqs:SendMessage")),
				Resource:  cf.StringList(cf.GetAtt(PipeTargetQueueID, "Arn")),
				Condition: map[string]interface{}{
					"ArnEquals": map[string]interface{}{
						"aws:SourceArn": cf.GetAtt(PipeConsumerRuleID, "Arn"),
					},
				},
			}},
		},
	})

	t.AddOutput(OutputTargetQueueURL, "URL of the consumer queue", cf.Ref(PipeTargetQueueID).String())
}

// addQueue adds an SQS queue and, when configured, its dead-letter queue.
func addQueue(t *cf.Template, id, dlqID string, config QueueConfig, tags map[string]string) {
	queue := &cf.SQSQueue{
		VisibilityTimeout:      cf.Integer(defaultInt(config.VisibilityTimeoutSeconds, DefaultVisibilityTimeout)),
		MessageRetentionPeriod: cf.Integer(defaultInt(config.RetentionSeconds, DefaultMessageRetention)),
		SqsManagedSseEnabled:   cf.Bool(true),
		Tags:                   cf.Tags(tags),
	}
	if config.DeadLetter != nil {
		t.AddResource(dlqID, &cf.SQSQueue{
			MessageRetentionPeriod: cf.Integer(1209600),
			SqsManagedSseEnabled:   cf.Bool(true),
			Tags:                   cf.Tags(tags),
		})
		queue.RedrivePolicy = map[string]interface{}{
			"deadLetterTargetArn": cf.GetAtt(dlqID, "Arn"),
			"maxReceiveCount":     defaultInt(config.DeadLetter.MaxReceiveCount, DefaultMaxReceiveCount),
		}
	}
	t.AddResource(id, queue)
}

func rolePolicy(name string, actions []string, resource cf.Stringable) cf.IAMRolePolicy {
	return cf.IAMRolePolicy{
		PolicyName: cf.String(name),
		PolicyDocument: cf.IAMPolicyDocument{
			Version: policyVersion,
			Statement: cf.IAMPolicyStatementList{{
				Effect:   "Allow",
				Action:   stringList(actions),
				Resource: cf.StringList(resource),
			}},
		},
	}
}

func defaultInt(v, def int64) int64 {
	if v == 0 {
		return def
	}
	return v
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
