// This program emits a cloudformation document for a queue feeding an
// event bus through a pipe to stdout
package main

import (
	"encoding/json"
	"log"
	"os"

	cf "github.com/zalando-incubator/cfn-pipes/internal/aws/cloudformation"
)

func makeTemplate() *cf.Template {
	t := cf.NewTemplate()
	t.Description = "example queue to bus pipe"
	t.Parameters["BusName"] = &cf.Parameter{
		Description: "Name of the event bus receiving the queue messages",
		Type:        "String",
		Default:     "example-bus",
	}

	t.AddResource("Queue", cf.SQSQueue{
		VisibilityTimeout:    cf.Integer(60),
		SqsManagedSseEnabled: cf.Bool(true),
	})
	t.AddResource("Bus", cf.EventsEventBus{
		Name: cf.Ref("BusName").String(),
	})
	t.AddResource("Role", cf.IAMRole{
		AssumeRolePolicyDocument: cf.IAMPolicyDocument{
			Version: "2012-10-17",
			Statement: cf.IAMPolicyStatementList{{
				Effect:    "Allow",
				Principal: &cf.IAMPrincipal{Service: cf.StringList(cf.String("pipes.amazonaws.com"))},
				Action:    cf.StringList(cf.String("sts:AssumeRole")),
			}},
		},
		Policies: &cf.IAMRolePolicyList{
			cf.IAMRolePolicy{
				PolicyName: cf.String("Pipe"),
				PolicyDocument: cf.IAMPolicyDocument{
					Version: "2012-10-17",
					Statement: cf.IAMPolicyStatementList{
						{
							Effect:   "Allow",
							Action:   cf.StringList(cf.String("sqs:ReceiveMessage"), cf.String("sqs:DeleteMessage"), cf.String("sqs:GetQueueAttributes")),
							Resource: cf.StringList(cf.GetAtt("Queue", "Arn")),
						},
						{
							Effect:   "Allow",
							Action:   cf.StringList(cf.String("events:PutEvents")),
							Resource: cf.StringList(cf.GetAtt("Bus", "Arn")),
						},
					},
				},
			},
		},
	})
	t.AddResource("Pipe", cf.PipesPipe{
		RoleArn: cf.GetAtt("Role", "Arn"),
		Source:  cf.GetAtt("Queue", "Arn"),
		SourceParameters: &cf.PipesPipePipeSourceParameters{
			SqsQueueParameters: &cf.PipesPipePipeSourceSqsQueueParameters{
				BatchSize: cf.Integer(1),
			},
		},
		Target: cf.GetAtt("Bus", "Arn"),
		TargetParameters: &cf.PipesPipePipeTargetParameters{
			EventBridgeEventBusParameters: &cf.PipesPipePipeTargetEventBridgeEventBusParameters{
				Source:     cf.String("example.app"),
				DetailType: cf.String("message"),
			},
		},
	})
	t.AddOutput("QueueURL", "URL to send messages to", cf.Ref("Queue").String())

	return t
}

func main() {
	template := makeTemplate()
	if err := template.Validate(); err != nil {
		log.Fatalf("validate: %s", err)
	}
	buf, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %s", err)
	}
	os.Stdout.Write(buf)
}
