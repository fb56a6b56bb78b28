package cloudformation

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type RefFuncTest struct{}

var _ = Suite(&RefFuncTest{})

func (testSuite *RefFuncTest) TestPseudoParameter(c *C) {
	input := `{"Ref" : "AWS::AccountId"}`
	f, err := unmarshalFunc([]byte(input))
	c.Assert(err, IsNil)
	c.Assert(f.(StringFunc).String(), DeepEquals, Ref("AWS::AccountId").String())
	checkRoundTrip(c, input, f)
}

func (testSuite *RefFuncTest) TestTypedContexts(c *C) {
	input := `{"Queue":{"Ref":"SourceQueue"},"BatchSize":{"Ref":"BatchSize"},"Subnets":{"Ref":"SubnetIds"},"Tls":{"Ref":"EnableTls"}}`
	v := struct {
		Queue     *StringExpr
		BatchSize *IntegerExpr
		Subnets   *StringListExpr
		Tls       *BoolExpr
	}{}
	c.Assert(json.Unmarshal([]byte(input), &v), IsNil)

	c.Assert(v.Queue, DeepEquals, Ref("SourceQueue").String())
	c.Assert(v.BatchSize, DeepEquals, Ref("BatchSize").Integer())
	c.Assert(v.Subnets, DeepEquals, Ref("SubnetIds").StringList())
	c.Assert(v.Tls, DeepEquals, Ref("EnableTls").Bool())
	checkRoundTrip(c, input, v)
}

func (testSuite *RefFuncTest) TestFailures(c *C) {
	checkDecodeFailures(c,
		`{"Ref": {"Ref": "SourceQueue"}}`,
		`{"Ref": ["SourceQueue"]}`,
		`{"Ref": false}`,
	)
}
