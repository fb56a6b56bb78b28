package cloudformation

import (
	. "gopkg.in/check.v1"
)

type FindInMapFuncTest struct{}

var _ = Suite(&FindInMapFuncTest{})

func (testSuite *FindInMapFuncTest) TestBrokerSizing(c *C) {
	input := `{"Fn::FindInMap": ["BrokerSizing", {"Ref": "Environment"}, "InstanceType"]}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals,
		FindInMap("BrokerSizing", Ref("Environment"), String("InstanceType")))
	checkRoundTrip(c, input, f)
}

func (testSuite *FindInMapFuncTest) TestNested(c *C) {
	input := `{"Fn::FindInMap": ["KafkaVersions", {"Ref": "AWS::Region"},
		{"Fn::FindInMap": ["Tiers", {"Ref": "Tier"}, "Version"]}]}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals, FindInMap(
		"KafkaVersions", Ref("AWS::Region"),
		FindInMap("Tiers", Ref("Tier"), String("Version"))))
	checkRoundTrip(c, input, f)
}

func (testSuite *FindInMapFuncTest) TestFailures(c *C) {
	checkDecodeFailures(c,
		`{"Fn::FindInMap": "BrokerSizing"}`,
		`{"Fn::FindInMap": ["BrokerSizing", "prod"]}`,
		`{"Fn::FindInMap": [3, "prod", "InstanceType"]}`,
		`{"Fn::FindInMap": ["BrokerSizing", 3, "InstanceType"]}`,
		`{"Fn::FindInMap": ["BrokerSizing", "prod", true]}`,
	)
}
