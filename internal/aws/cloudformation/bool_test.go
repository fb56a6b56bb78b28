package cloudformation

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type BoolTest struct{}

var _ = Suite(&BoolTest{})

type encryptionSettings struct {
	SqsManagedSseEnabled *BoolExpr `json:",omitempty"`
	InCluster            *BoolExpr `json:",omitempty"`
	Iam                  *BoolExpr `json:",omitempty"`
	Unauthenticated      *BoolExpr `json:",omitempty"`
}

func (testSuite *BoolTest) TestBool(c *C) {
	input := `{"SqsManagedSseEnabled": true, "InCluster": {"Ref": "EnableTls"}, "Unauthenticated": false}`
	v := encryptionSettings{}
	c.Assert(json.Unmarshal([]byte(input), &v), IsNil)

	c.Assert(v.SqsManagedSseEnabled, DeepEquals, Bool(true))
	c.Assert(v.InCluster, DeepEquals, Ref("EnableTls").Bool())
	c.Assert(v.Iam, IsNil)
	c.Assert(v.Unauthenticated, DeepEquals, Bool(false))
	checkRoundTrip(c, input, v)
}

func (testSuite *BoolTest) TestStringLiterals(c *C) {
	v := encryptionSettings{}
	c.Assert(json.Unmarshal([]byte(`{"Iam": "true", "Unauthenticated": "false"}`), &v), IsNil)
	c.Assert(v.Iam, DeepEquals, Bool(true))
	c.Assert(v.Unauthenticated, DeepEquals, Bool(false))

	buf, err := json.Marshal(v)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, `{"Iam":true,"Unauthenticated":false}`)
}

func (testSuite *BoolTest) TestErrors(c *C) {
	for input, expected := range map[string]string{
		`{"Iam": "enabled"}`:                          "json: cannot unmarshal string.*",
		`{"Iam": 1}`:                                  "json: cannot unmarshal number.*",
		`{"Iam": {"Fn::GetAtt": ["Cluster", "Arn"]}}`: ".* is not a BoolFunc",
		`{"Iam": {"Fn::Length": []}}`:                 "unknown function Fn::Length",
	} {
		c.Check(json.Unmarshal([]byte(input), &encryptionSettings{}), ErrorMatches, expected, Commentf("input: %s", input))
	}
}
