package cloudformation

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type GetAttFuncTest struct{}

var _ = Suite(&GetAttFuncTest{})

func (testSuite *GetAttFuncTest) TestQueueArn(c *C) {
	input := `{"Fn::GetAtt" : ["SourceQueue", "Arn"]}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals, GetAtt("SourceQueue", "Arn"))
	checkRoundTrip(c, input, f)
}

func (testSuite *GetAttFuncTest) TestListAttribute(c *C) {
	input := `{"Subnets":{"Fn::GetAtt":["ClientSubnets","SubnetIds"]}}`
	v := struct {
		Subnets *StringListExpr
	}{}
	c.Assert(json.Unmarshal([]byte(input), &v), IsNil)
	c.Assert(v.Subnets, DeepEquals, GetAttFunc{Resource: "ClientSubnets", Name: "SubnetIds"}.StringList())
	checkRoundTrip(c, input, v)
}

func (testSuite *GetAttFuncTest) TestFailures(c *C) {
	checkDecodeFailures(c,
		`{"Fn::GetAtt": "SourceQueue.Arn"}`,
		`{"Fn::GetAtt": ["SourceQueue"]}`,
		`{"Fn::GetAtt": ["TargetEventBus", "Arn", "Name"]}`,
		`{"Fn::GetAtt": ["Pipe", 1]}`,
	)
}
