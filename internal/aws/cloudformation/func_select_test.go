package cloudformation

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type SelectFuncTest struct{}

var _ = Suite(&SelectFuncTest{})

func (testSuite *SelectFuncTest) TestAvailabilityZone(c *C) {
	input := `{"Fn::Select":["0",{"Fn::GetAZs":{"Ref":"AWS::Region"}}]}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals, Select("0", GetAZs(Ref("AWS::Region"))))
	checkRoundTrip(c, input, f)
}

func (testSuite *SelectFuncTest) TestSubnetAttribute(c *C) {
	input := `{"Fn::Select":["1",{"Fn::GetAtt":["ClientSubnets","SubnetIds"]}]}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals,
		Select("1", GetAttFunc{Resource: "ClientSubnets", Name: "SubnetIds"}))
	checkRoundTrip(c, input, f)
}

func (testSuite *SelectFuncTest) TestLiteralItems(c *C) {
	f, err := unmarshalFunc([]byte(`{"Fn::Select":["2",["subnet-a","subnet-b","subnet-c"]]}`))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals,
		Select("2", String("subnet-a"), String("subnet-b"), String("subnet-c")))
}

func (testSuite *SelectFuncTest) TestNumericIndex(c *C) {
	f, err := unmarshalFunc([]byte(`{"Fn::Select":[1,["subnet-a","subnet-b"]]}`))
	c.Assert(err, IsNil)
	c.Assert(f.(SelectFunc).Selector, Equals, "1")

	buf, err := json.Marshal(f)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, `{"Fn::Select":["1",["subnet-a","subnet-b"]]}`)
}

func (testSuite *SelectFuncTest) TestNotStringable(c *C) {
	c.Assert(func() { Select("0", String("subnet-a"), 42) }, PanicMatches, "item 42 must be Stringable")
}

func (testSuite *SelectFuncTest) TestFailures(c *C) {
	checkDecodeFailures(c,
		`{"Fn::Select": 0}`,
		`{"Fn::Select": ["0"]}`,
		`{"Fn::Select": ["0", [1]]}`,
		`{"Fn::Select": ["0", ["subnet-a"], "subnet-b"]}`,
		`{"Fn::Select": [false, ["subnet-a"]]}`,
	)
}
