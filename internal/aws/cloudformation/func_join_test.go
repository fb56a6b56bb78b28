package cloudformation

import (
	. "gopkg.in/check.v1"
)

type JoinFuncTest struct{}

var _ = Suite(&JoinFuncTest{})

func (testSuite *JoinFuncTest) TestLogGroupName(c *C) {
	input := `{"Fn::Join":["/",["/aws/vendedlogs/pipes",{"Ref":"AWS::StackName"}]]}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals,
		Join("/", String("/aws/vendedlogs/pipes"), Ref("AWS::StackName")))
	checkRoundTrip(c, input, f)
}

func (testSuite *JoinFuncTest) TestNestedAttributes(c *C) {
	input := `{"Fn::Join":[" -> ",[{"Fn::GetAtt":["SourceQueue","QueueName"]},{"Ref":"TargetEventBus"}]]}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)

	// values and pointers are both Stringable
	c.Assert(f.(StringFunc).String(), DeepEquals,
		Join(" -> ", *GetAtt("SourceQueue", "QueueName"), Ref("TargetEventBus").String()))
	checkRoundTrip(c, input, f)
}

func (testSuite *JoinFuncTest) TestFailures(c *C) {
	checkDecodeFailures(c,
		`{"Fn::Join": "-"}`,
		`{"Fn::Join": ["-"]}`,
		`{"Fn::Join": ["-", [60]]}`,
		`{"Fn::Join": ["-", ["SourceQueue"], "DLQ"]}`,
		`{"Fn::Join": [7, ["SourceQueue"]]}`,
	)
}
