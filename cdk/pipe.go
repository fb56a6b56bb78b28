package cdk

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsevents"
	"github.com/aws/aws-cdk-go/awscdk/v2/awseventstargets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/aws-cdk-go/awscdk/v2/awspipes"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssqs"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/zalando-incubator/cfn-pipes/stacks"
)

const deadLetterRetention = 14 * 24 * 60 * 60

// NewPipeStack declares the queue, bus, role and pipe of def.
func NewPipeStack(scope constructs.Construct, def *stacks.PipeStack, props *awscdk.StackProps) awscdk.Stack {
	stack := awscdk.NewStack(scope, jsii.String(def.Name()), props)
	config := def.Config()

	queue := newQueue(stack, stacks.PipeSourceQueueID, stacks.PipeDeadLetterQueueID, config.Queue)

	bus := awsevents.NewEventBus(stack, jsii.String(stacks.PipeEventBusID), &awsevents.EventBusProps{
		EventBusName: jsii.String(def.EventBusName()),
	})

	role := awsiam.NewRole(stack, jsii.String(stacks.PipeRoleID), &awsiam.RoleProps{
		AssumedBy: awsiam.NewServicePrincipal(jsii.String("pipes.amazonaws.com"), &awsiam.ServicePrincipalOpts{
			Conditions: &map[string]interface{}{
				"StringEquals": map[string]interface{}{
					"aws:SourceAccount": stack.Account(),
				},
			},
		}),
	})
	logicalID(bus, stacks.PipeEventBusID)
	logicalID(role, stacks.PipeRoleID)
	role.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions:   jsii.Strings("sqs:ReceiveMessage", "sqs:DeleteMessage", "sqs:GetQueueAttributes"),
		Resources: &[]*string{queue.QueueArn()},
	}))
	role.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions:   jsii.Strings("events:PutEvents"),
		Resources: &[]*string{bus.EventBusArn()},
	}))

	sourceParams := &awspipes.CfnPipe_PipeSourceParametersProperty{
		SqsQueueParameters: &awspipes.CfnPipe_PipeSourceSqsQueueParametersProperty{
			BatchSize:                      jsii.Number(float64(orDefault(config.BatchSize, stacks.DefaultBatchSize))),
			MaximumBatchingWindowInSeconds: optionalNumber(config.MaximumBatchingWindowSeconds),
		},
	}
	if len(config.Filters) > 0 {
		sourceParams.FilterCriteria = filterCriteria(config.Filters)
	}

	pipeProps := &awspipes.CfnPipeProps{
		Description:      jsii.String("Forwards messages of " + stacks.PipeSourceQueueID + " to " + def.EventBusName()),
		DesiredState:     jsii.String(def.DesiredState()),
		RoleArn:          role.RoleArn(),
		Source:           queue.QueueArn(),
		SourceParameters: sourceParams,
		Target:           bus.EventBusArn(),
		TargetParameters: &awspipes.CfnPipe_PipeTargetParametersProperty{
			EventBridgeEventBusParameters: &awspipes.CfnPipe_PipeTargetEventBridgeEventBusParametersProperty{
				Source:     jsii.String(def.EventSource()),
				DetailType: jsii.String(def.DetailType()),
			},
			InputTemplate: optionalString(config.InputTemplate),
		},
	}

	if config.Logging != nil {
		logGroup := awslogs.NewCfnLogGroup(stack, jsii.String(stacks.PipeLogGroupID), &awslogs.CfnLogGroupProps{
			LogGroupName:    jsii.String(def.LogGroupName()),
			RetentionInDays: jsii.Number(float64(orDefault(config.Logging.RetentionInDays, stacks.DefaultLogRetentionInDays))),
		})
		role.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
			Actions:   jsii.Strings("logs:CreateLogStream", "logs:PutLogEvents"),
			Resources: &[]*string{logGroup.AttrArn()},
		}))
		logConfig := &awspipes.CfnPipe_PipeLogConfigurationProperty{
			Level: jsii.String(def.LogLevel()),
			CloudwatchLogsLogDestination: &awspipes.CfnPipe_CloudwatchLogsLogDestinationProperty{
				LogGroupArn: logGroup.AttrArn(),
			},
		}
		if config.Logging.IncludeExecutionData {
			logConfig.IncludeExecutionData = jsii.Strings("ALL")
		}
		pipeProps.LogConfiguration = logConfig
	}

	pipe := awspipes.NewCfnPipe(stack, jsii.String(stacks.PipeID), pipeProps)
	pipe.Node().AddDependency(role)

	if config.Consumer != nil {
		target := newQueue(stack, stacks.PipeTargetQueueID, stacks.PipeTargetQueueID+"DLQ", *config.Consumer)
		rule := awsevents.NewRule(stack, jsii.String(stacks.PipeConsumerRuleID), &awsevents.RuleProps{
			Description: jsii.String("Consumer SQS Rule"),
			EventBus:    bus,
			EventPattern: &awsevents.EventPattern{
				Source: jsii.Strings(def.EventSource()),
			},
		})
		logicalID(rule, stacks.PipeConsumerRuleID)
		rule.AddTarget(awseventstargets.NewSqsQueue(target, nil))
		output(stack, stacks.OutputTargetQueueURL, "URL of the consumer queue", target.QueueUrl())
	}

	output(stack, stacks.OutputQueueURL, "URL of the source queue", queue.QueueUrl())
	output(stack, stacks.OutputQueueArn, "ARN of the source queue", queue.QueueArn())
	output(stack, stacks.OutputEventBusName, "Name of the target event bus", bus.EventBusName())
	output(stack, stacks.OutputEventBusArn, "ARN of the target event bus", bus.EventBusArn())
	output(stack, stacks.OutputPipeArn, "ARN of the pipe", pipe.AttrArn())

	tag(stack, def.Tags())
	return stack
}

func newQueue(stack awscdk.Stack, id, dlqID string, config stacks.QueueConfig) awssqs.Queue {
	props := &awssqs.QueueProps{
		VisibilityTimeout: awscdk.Duration_Seconds(jsii.Number(float64(orDefault(config.VisibilityTimeoutSeconds, stacks.DefaultVisibilityTimeout)))),
		RetentionPeriod:   awscdk.Duration_Seconds(jsii.Number(float64(orDefault(config.RetentionSeconds, stacks.DefaultMessageRetention)))),
		Encryption:        awssqs.QueueEncryption_SQS_MANAGED,
	}
	if config.DeadLetter != nil {
		dlq := awssqs.NewQueue(stack, jsii.String(dlqID), &awssqs.QueueProps{
			RetentionPeriod: awscdk.Duration_Seconds(jsii.Number(deadLetterRetention)),
			Encryption:      awssqs.QueueEncryption_SQS_MANAGED,
		})
		logicalID(dlq, dlqID)
		props.DeadLetterQueue = &awssqs.DeadLetterQueue{
			Queue:           dlq,
			MaxReceiveCount: jsii.Number(float64(orDefault(config.DeadLetter.MaxReceiveCount, stacks.DefaultMaxReceiveCount))),
		}
	}
	queue := awssqs.NewQueue(stack, jsii.String(id), props)
	logicalID(queue, id)
	return queue
}

// logicalID pins the logical ID of the resource behind an L2 construct so
// the template matches the one of the stacks package.
func logicalID(c constructs.Construct, id string) {
	if res, ok := c.Node().DefaultChild().(awscdk.CfnResource); ok {
		res.OverrideLogicalId(jsii.String(id))
	}
}

func filterCriteria(patterns []string) *awspipes.CfnPipe_FilterCriteriaProperty {
	filters := make([]interface{}, 0, len(patterns))
	for _, p := range patterns {
		filters = append(filters, &awspipes.CfnPipe_FilterProperty{Pattern: jsii.String(p)})
	}
	return &awspipes.CfnPipe_FilterCriteriaProperty{Filters: filters}
}

func output(stack awscdk.Stack, id, description string, value *string) {
	awscdk.NewCfnOutput(stack, jsii.String(id), &awscdk.CfnOutputProps{
		Description: jsii.String(description),
		Value:       value,
	})
}

func tag(stack awscdk.Stack, tags map[string]string) {
	for k, v := range tags {
		awscdk.Tags_Of(stack).Add(jsii.String(k), jsii.String(v), nil)
	}
}

func orDefault(v, def int64) int64 {
	if v == 0 {
		return def
	}
	return v
}

func optionalNumber(v int64) *float64 {
	if v == 0 {
		return nil
	}
	return jsii.Number(float64(v))
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return jsii.String(v)
}
