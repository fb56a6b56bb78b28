package cloudformation

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type IAMPolicyTest struct{}

var _ = Suite(&IAMPolicyTest{})

func (testSuite *IAMPolicyTest) TestWildcardPrincipal(c *C) {
	queuePolicy := `{"Version":"2012-10-17","Statement":[{"Sid":"ConsumerRule","Effect":"Allow","Principal":"*",` +
		`"Action":["sqs:SendMessage"],"Resource":["arn:aws:sqs:eu-central-1:123456789012:orders-target"],` +
		`"Condition":{"ArnEquals":{"aws:SourceArn":"arn:aws:events:eu-central-1:123456789012:rule/orders-bus/ConsumerRule"}}}]}`

	v := IAMPolicyDocument{}
	c.Assert(json.Unmarshal([]byte(queuePolicy), &v), IsNil)
	c.Assert(v.Statement, HasLen, 1)
	s := v.Statement[0]
	c.Assert(s.Sid, Equals, "ConsumerRule")
	c.Assert(s.Principal.AWS, DeepEquals, StringList(String("*")))
	c.Assert(s.Principal.Service, IsNil)
	c.Assert(s.Action, DeepEquals, StringList(String("sqs:SendMessage")))

	buf, err := json.Marshal(v)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, queuePolicy)
}

func (testSuite *IAMPolicyTest) TestSingleStatement(c *C) {
	clusterPolicy := `{
  "Version": "2012-10-17",
  "Id": "MskClusterPolicy",
  "Statement": {
    "Sid": "CrossAccountRead",
    "Effect": "Allow",
    "Principal": {"AWS": "arn:aws:iam::111122223333:root"},
    "Action": ["kafka:CreateVpcConnection", "kafka:GetBootstrapBrokers", "kafka:DescribeClusterV2"],
    "Resource": {"Fn::GetAtt": ["Cluster", "Arn"]}
  }
}`

	v := IAMPolicyDocument{}
	c.Assert(json.Unmarshal([]byte(clusterPolicy), &v), IsNil)
	c.Assert(v.ID, Equals, "MskClusterPolicy")
	c.Assert(v.Statement, HasLen, 1)
	s := v.Statement[0]
	c.Assert(s.Principal.AWS, DeepEquals, StringList(String("arn:aws:iam::111122223333:root")))
	c.Assert(s.Principal.CanonicalUser, IsNil)
	c.Assert(s.Principal.Federated, IsNil)
	c.Assert(s.Resource, DeepEquals, GetAttFunc{Resource: "Cluster", Name: "Arn"}.StringList())

	buf, err := json.Marshal(v)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, `{"Version":"2012-10-17","Id":"MskClusterPolicy","Statement":[{"Sid":"CrossAccountRead","Effect":"Allow",`+
		`"Principal":{"AWS":["arn:aws:iam::111122223333:root"]},`+
		`"Action":["kafka:CreateVpcConnection","kafka:GetBootstrapBrokers","kafka:DescribeClusterV2"],`+
		`"Resource":{"Fn::GetAtt":["Cluster","Arn"]}}]}`)
}

func (testSuite *IAMPolicyTest) TestServicePrincipals(c *C) {
	trustPolicy := `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"Service": ["pipes.amazonaws.com", "events.amazonaws.com"]},
    "Action": "sts:AssumeRole"
  }]
}`

	v := IAMPolicyDocument{}
	c.Assert(json.Unmarshal([]byte(trustPolicy), &v), IsNil)
	s := v.Statement[0]
	c.Assert(s.Principal.AWS, IsNil)
	c.Assert(s.Principal.Service, DeepEquals, StringList(String("pipes.amazonaws.com"), String("events.amazonaws.com")))
	c.Assert(s.Action, DeepEquals, StringList(String("sts:AssumeRole")))

	buf, err := json.Marshal(v)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, `{"Version":"2012-10-17","Statement":[{"Effect":"Allow",`+
		`"Principal":{"Service":["pipes.amazonaws.com","events.amazonaws.com"]},"Action":["sts:AssumeRole"]}]}`)
}

func (testSuite *IAMPolicyTest) TestConditionAndComputedResource(c *C) {
	doc := IAMPolicyDocument{
		Version: "2012-10-17",
		Statement: IAMPolicyStatementList{
			{
				Effect:    "Allow",
				Principal: &IAMPrincipal{Service: StringList(String("pipes.amazonaws.com"))},
				Action:    StringList(String("sts:AssumeRole")),
				Condition: map[string]interface{}{
					"StringEquals": map[string]interface{}{
						"aws:SourceAccount": Ref("AWS::AccountId"),
					},
				},
			},
			{
				Effect:   "Allow",
				Action:   StringList(String("sqs:ReceiveMessage")),
				Resource: StringList(GetAtt("SourceQueue", "Arn")),
			},
		},
	}

	buf, err := json.Marshal(doc)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, `{"Version":"2012-10-17","Statement":[`+
		`{"Effect":"Allow","Principal":{"Service":["pipes.amazonaws.com"]},"Action":["sts:AssumeRole"],"Condition":{"StringEquals":{"aws:SourceAccount":{"Ref":"AWS::AccountId"}}}},`+
		`{"Effect":"Allow","Action":["sqs:ReceiveMessage"],"Resource":[{"Fn::GetAtt":["SourceQueue","Arn"]}]}]}`)

	decoded := IAMPolicyDocument{}
	c.Assert(json.Unmarshal(buf, &decoded), IsNil)
	c.Assert(decoded.Statement, HasLen, 2)
	c.Assert(decoded.Statement[1].Resource, DeepEquals, StringList(GetAtt("SourceQueue", "Arn")))
}
