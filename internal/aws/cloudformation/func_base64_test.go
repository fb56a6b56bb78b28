package cloudformation

import (
	. "gopkg.in/check.v1"
)

type Base64FuncTest struct{}

var _ = Suite(&Base64FuncTest{})

func (testSuite *Base64FuncTest) TestServerProperties(c *C) {
	input := `{"Fn::Base64": {"Fn::Join": ["", [
		"auto.create.topics.enable=false\n",
		"default.replication.factor=", {"Ref": "ReplicationFactor"}, "\n",
		"log.retention.hours=", {"Fn::FindInMap": ["Retention", {"Ref": "Environment"}, "Hours"]}, "\n"
	]]}}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(Stringable).String(), DeepEquals, Base64(Join("",
		String("auto.create.topics.enable=false\n"),
		String("default.replication.factor="), Ref("ReplicationFactor"), String("\n"),
		String("log.retention.hours="), FindInMap("Retention", Ref("Environment"), String("Hours")), String("\n"),
	)))
	checkRoundTrip(c, input, f)
}

func (testSuite *Base64FuncTest) TestLiteral(c *C) {
	f, err := unmarshalFunc([]byte(`{"Fn::Base64": "orders"}`))
	c.Assert(err, IsNil)
	c.Assert(f, DeepEquals, Base64Func{Value: *String("orders")})
}

func (testSuite *Base64FuncTest) TestFailures(c *C) {
	checkDecodeFailures(c,
		`{"Fn::Base64": 1}`,
		`{"Fn::Base64": ["orders"]}`,
	)
}
