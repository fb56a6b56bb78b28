package cloudformation

import (
	. "gopkg.in/check.v1"
)

type ImportValueFuncTest struct{}

var _ = Suite(&ImportValueFuncTest{})

func (testSuite *ImportValueFuncTest) TestExportName(c *C) {
	input := `{"Fn::ImportValue" : "orders-QueueArn"}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals, ImportValue(String("orders-QueueArn")))
	checkRoundTrip(c, input, f)
}

func (testSuite *ImportValueFuncTest) TestComputedExportName(c *C) {
	input := `{"Fn::ImportValue":{"Fn::Join":["-",[{"Ref":"AWS::StackName"},"EventBusArn"]]}}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals,
		ImportValue(Join("-", Ref("AWS::StackName"), String("EventBusArn"))))
	checkRoundTrip(c, input, f)
}

func (testSuite *ImportValueFuncTest) TestFailures(c *C) {
	checkDecodeFailures(c,
		`{"Fn::ImportValue": ["orders-QueueArn"]}`,
		`{"Fn::ImportValue": true}`,
	)
}
