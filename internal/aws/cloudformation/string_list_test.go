package cloudformation

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type StringListTest struct{}

var _ = Suite(&StringListTest{})

type vpcConfig struct {
	SubnetIds        *StringListExpr `json:",omitempty"`
	SecurityGroupIds *StringListExpr `json:",omitempty"`
	Zones            *StringListExpr `json:",omitempty"`
}

func (testSuite *StringListTest) TestLiteralItems(c *C) {
	input := `{"SubnetIds": ["subnet-a", {"Ref": "SubnetB"}], "SecurityGroupIds": ["sg-1"]}`
	v := vpcConfig{}
	c.Assert(json.Unmarshal([]byte(input), &v), IsNil)

	c.Assert(v.SubnetIds, DeepEquals, StringList(String("subnet-a"), Ref("SubnetB")))
	c.Assert(v.SecurityGroupIds, DeepEquals, StringList(*String("sg-1")))
	c.Assert(v.Zones, IsNil)
	checkRoundTrip(c, input, v)
}

func (testSuite *StringListTest) TestFunctions(c *C) {
	input := `{"SubnetIds": {"Fn::GetAtt": ["ClientSubnets", "SubnetIds"]}, "Zones": {"Fn::GetAZs": ""}}`
	v := vpcConfig{}
	c.Assert(json.Unmarshal([]byte(input), &v), IsNil)

	c.Assert(v.SubnetIds, DeepEquals, GetAttFunc{Resource: "ClientSubnets", Name: "SubnetIds"}.StringList())
	c.Assert(v.Zones, DeepEquals, GetAZs(String("")))
	checkRoundTrip(c, input, v)
}

func (testSuite *StringListTest) TestSingleString(c *C) {
	v := vpcConfig{}
	c.Assert(json.Unmarshal([]byte(`{"SecurityGroupIds": "sg-1"}`), &v), IsNil)
	c.Assert(v.SecurityGroupIds, DeepEquals, StringList(String("sg-1")))

	buf, err := json.Marshal(v)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, `{"SecurityGroupIds":["sg-1"]}`)
}

func (testSuite *StringListTest) TestErrors(c *C) {
	for input, expected := range map[string]string{
		`{"SubnetIds": false}`:                    "json: cannot unmarshal .*",
		`{"SubnetIds": [2]}`:                      "json: cannot unmarshal .*",
		`{"SubnetIds": {"Fn::Base64": "subnet"}}`: ".* is not a StringListFunc",
		`{"SubnetIds": {"Fn::Length": []}}`:       "unknown function Fn::Length",
	} {
		c.Check(json.Unmarshal([]byte(input), &vpcConfig{}), ErrorMatches, expected, Commentf("input: %s", input))
	}
}
