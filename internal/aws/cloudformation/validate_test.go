package cloudformation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPipeTemplate() *Template {
	template := NewTemplate()
	template.Parameters["Stage"] = &Parameter{Type: "String", Default: "test"}
	template.AddResource("SourceQueue", &SQSQueue{VisibilityTimeout: Integer(60)})
	template.AddResource("TargetEventBus", &EventsEventBus{
		Name: Sub("${AWS::StackName}-${Stage}-bus"),
	})
	template.AddResource("PipeRole", &IAMRole{
		AssumeRolePolicyDocument: IAMPolicyDocument{Version: "2012-10-17"},
	})
	template.AddResource("Pipe", &PipesPipe{
		RoleArn: GetAtt("PipeRole", "Arn"),
		Source:  GetAtt("SourceQueue", "Arn"),
		Target:  GetAtt("TargetEventBus", "Arn"),
	}).DependsOn = []string{"PipeRole"}
	template.AddOutput("QueueURL", "", Ref("SourceQueue").String())
	return template
}

func TestValidateAcceptsConsistentTemplate(t *testing.T) {
	require.NoError(t, validPipeTemplate().Validate())
}

func TestValidateRequiredProperties(t *testing.T) {
	template := validPipeTemplate()
	template.AddResource("Pipe", &PipesPipe{
		Source: GetAtt("SourceQueue", "Arn"),
	})

	err := template.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resource Pipe (AWS::Pipes::Pipe): property RoleArn is required")
	assert.Contains(t, err.Error(), "resource Pipe (AWS::Pipes::Pipe): property Target is required")
}

func TestValidateNestedRequiredProperties(t *testing.T) {
	template := NewTemplate()
	template.AddResource("Cluster", &MSKServerlessCluster{
		ClusterName: String("events"),
		ClientAuthentication: &MSKServerlessClusterClientAuthentication{
			Sasl: &MSKServerlessClusterSasl{},
		},
		VPCConfigs: &MSKServerlessClusterVPCConfigList{
			{SubnetIDs: StringList(String("subnet-1"))},
		},
	})

	err := template.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property ClientAuthentication.Sasl.Iam is required")
}

func TestValidateReferences(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(*Template)
		wantErr string
	}{
		{
			name: "ref to unknown resource",
			mutate: func(tmpl *Template) {
				tmpl.AddOutput("Missing", "", Ref("Nope").String())
			},
			wantErr: "output Missing: Ref to undeclared Nope",
		},
		{
			name: "getatt on unknown resource",
			mutate: func(tmpl *Template) {
				tmpl.Resources["Pipe"].Properties.(*PipesPipe).Target = GetAtt("OtherBus", "Arn")
			},
			wantErr: "resource Pipe: Fn::GetAtt on undeclared resource OtherBus",
		},
		{
			name: "getatt with unknown attribute",
			mutate: func(tmpl *Template) {
				tmpl.Resources["Pipe"].Properties.(*PipesPipe).Source = GetAtt("SourceQueue", "Url")
			},
			wantErr: "resource Pipe: SourceQueue (AWS::SQS::Queue) has no attribute Url",
		},
		{
			name: "sub with unknown variable",
			mutate: func(tmpl *Template) {
				tmpl.Resources["TargetEventBus"].Properties.(*EventsEventBus).Name = Sub("${Environment}-bus")
			},
			wantErr: "resource TargetEventBus: Fn::Sub references undeclared Environment",
		},
		{
			name: "sub with unknown attribute",
			mutate: func(tmpl *Template) {
				tmpl.Resources["TargetEventBus"].Properties.(*EventsEventBus).Name = Sub("${SourceQueue.Name}")
			},
			wantErr: "resource TargetEventBus: SourceQueue (AWS::SQS::Queue) has no attribute Name",
		},
		{
			name: "depends on unknown resource",
			mutate: func(tmpl *Template) {
				tmpl.Resources["Pipe"].DependsOn = []string{"Ghost"}
			},
			wantErr: "resource Pipe: depends on undeclared resource Ghost",
		},
		{
			name: "unknown condition",
			mutate: func(tmpl *Template) {
				tmpl.Resources["SourceQueue"].Condition = "IsProd"
			},
			wantErr: "resource SourceQueue: undeclared condition IsProd",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			template := validPipeTemplate()
			tc.mutate(template)
			err := template.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateSubLocalVariablesAndEscapes(t *testing.T) {
	template := validPipeTemplate()
	template.Resources["TargetEventBus"].Properties.(*EventsEventBus).Name = SubWithVariables(
		"${Prefix}-${!Literal}-${SourceQueue.QueueName}",
		map[string]*StringExpr{"Prefix": Ref("Stage").String()},
	)
	require.NoError(t, template.Validate())
}

func TestValidateCustomResourceAttributes(t *testing.T) {
	template := validPipeTemplate()
	template.AddResource("Seed", &MyResource{
		CloudFormationCustomResource: CloudFormationCustomResource{
			ServiceToken: String("arn:aws:lambda:eu-central-1:123456789012:function:seed"),
		},
	})
	template.AddOutput("SeedValue", "", GetAtt("Seed", "Anything"))
	require.NoError(t, template.Validate())
}
