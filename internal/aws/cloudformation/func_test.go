package cloudformation

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type FuncTest struct{}

var _ = Suite(&FuncTest{})

// checkRoundTrip asserts that v marshals to the same JSON value as input.
func checkRoundTrip(c *C, input string, v interface{}) {
	buf, err := json.Marshal(v)
	c.Assert(err, IsNil)
	c.Assert(normalizeJSON(c, string(buf)), Equals, normalizeJSON(c, input))
}

func normalizeJSON(c *C, input string) string {
	var tidy interface{}
	c.Assert(json.Unmarshal([]byte(input), &tidy), IsNil, Commentf("input: %s", input))
	buf, err := json.Marshal(tidy)
	c.Assert(err, IsNil)
	return string(buf)
}

func checkDecodeFailures(c *C, inputs ...string) {
	for _, input := range inputs {
		_, err := unmarshalFunc([]byte(input))
		c.Check(err, ErrorMatches, "cannot decode function", Commentf("input: %s", input))
	}
}

func (testSuite *FuncTest) TestUnmarshalFunc(c *C) {
	f, err := unmarshalFunc([]byte(`{"Ref": "TargetEventBus"}`))
	c.Assert(err, IsNil)
	c.Assert(f, DeepEquals, RefFunc{Name: "TargetEventBus"})
	checkRoundTrip(c, `{"Ref":"TargetEventBus"}`, f)

	f, err = unmarshalFunc([]byte("\n\t{\"Fn::GetAtt\": [\"Pipe\", \"Arn\"]}"))
	c.Assert(err, IsNil)
	c.Assert(f, DeepEquals, GetAttFunc{Resource: "Pipe", Name: "Arn"})
}

func (testSuite *FuncTest) TestUnmarshalFuncErrors(c *C) {
	_, err := unmarshalFunc([]byte(`"SourceQueue"`))
	c.Assert(err, ErrorMatches, "json: cannot unmarshal .*")

	_, err = unmarshalFunc([]byte(`{"Fn::Length": ["SourceQueue"]}`))
	c.Assert(err, DeepEquals, UnknownFunctionError{Name: "Fn::Length"})
	c.Assert(err.Error(), Equals, "unknown function Fn::Length")

	checkDecodeFailures(c,
		`{}`,
		`{"Ref": "SourceQueue", "Fn::GetAtt": ["SourceQueue", "Arn"]}`,
	)
}

func (testSuite *FuncTest) TestIsObject(c *C) {
	for input, want := range map[string]bool{
		`{"Ref":"Pipe"}`:  true,
		" \r\n\t{}":       true,
		`["subnet-a"]`:    false,
		`"arn:aws:pipes"`: false,
		"":                false,
		"   ":             false,
	} {
		c.Check(isObject([]byte(input)), Equals, want, Commentf("input: %q", input))
	}
}
