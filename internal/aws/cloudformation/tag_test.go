package cloudformation

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type TagTest struct{}

var _ = Suite(&TagTest{})

func (testSuite *TagTest) TestTagsFromMap(c *C) {
	tags := Tags(map[string]string{"team": "payments", "app": "orders"})
	c.Assert(tags, NotNil)

	buf, err := json.Marshal(tags)
	c.Assert(err, IsNil)
	c.Assert(string(buf), Equals, `[{"Key":"app","Value":"orders"},{"Key":"team","Value":"payments"}]`)

	c.Assert(Tags(nil), IsNil)
}

func (testSuite *TagTest) TestSingleTagDecodesAsList(c *C) {
	v := struct {
		Tags *TagList
	}{}
	err := json.Unmarshal([]byte(`{"Tags": {"Key": "app", "Value": {"Ref": "AWS::StackName"}}}`), &v)
	c.Assert(err, IsNil)
	c.Assert(*v.Tags, HasLen, 1)
	c.Assert((*v.Tags)[0].Value, DeepEquals, Ref("AWS::StackName").String())
}
