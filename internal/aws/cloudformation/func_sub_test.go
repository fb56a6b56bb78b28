package cloudformation

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type SubFuncTest struct{}

var _ = Suite(&SubFuncTest{})

func (testSuite *SubFuncTest) TestShortForm(c *C) {
	inputBuf := `{"Fn::Sub":"arn:${AWS::Partition}:sqs:${AWS::Region}:${AWS::AccountId}:${SourceQueue.QueueName}"}`
	f, err := unmarshalFunc([]byte(inputBuf))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals,
		Sub("arn:${AWS::Partition}:sqs:${AWS::Region}:${AWS::AccountId}:${SourceQueue.QueueName}"))

	buf, err := json.Marshal(f)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, inputBuf)
}

func (testSuite *SubFuncTest) TestWithVariables(c *C) {
	inputBuf := `{"Fn::Sub":["${Prefix}/clusterId",{"Prefix":{"Ref":"ParameterPrefix"}}]}`
	f, err := unmarshalFunc([]byte(inputBuf))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals,
		SubWithVariables("${Prefix}/clusterId", map[string]*StringExpr{
			"Prefix": Ref("ParameterPrefix").String(),
		}))

	buf, err := json.Marshal(f)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, inputBuf)
}

func (testSuite *SubFuncTest) TestFailures(c *C) {
	inputBuf := `{"Fn::Sub": 1}`
	_, err := unmarshalFunc([]byte(inputBuf))
	c.Assert(err, ErrorMatches, "cannot decode function")

	inputBuf = `{"Fn::Sub": ["only-template"]}`
	_, err = unmarshalFunc([]byte(inputBuf))
	c.Assert(err, ErrorMatches, "cannot decode function")

	inputBuf = `{"Fn::Sub": ["${A}", {"A": true}]}`
	_, err = unmarshalFunc([]byte(inputBuf))
	c.Assert(err, ErrorMatches, "cannot decode function")
}
