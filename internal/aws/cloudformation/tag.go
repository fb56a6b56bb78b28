package cloudformation

import "encoding/json"

// Tag represents CloudFormation resource tag
type Tag struct {
	Key   *StringExpr `json:"Key,omitempty" validate:"required"`
	Value *StringExpr `json:"Value,omitempty" validate:"required"`
}

// TagList represents a list of Tag
type TagList []Tag

// UnmarshalJSON sets the object from the provided JSON representation
func (l *TagList) UnmarshalJSON(buf []byte) error {
	// Cloudformation allows a single object when a list of objects is expected
	item := Tag{}
	if err := json.Unmarshal(buf, &item); err == nil {
		*l = TagList{item}
		return nil
	}
	list := []Tag{}
	err := json.Unmarshal(buf, &list)
	if err == nil {
		*l = TagList(list)
		return nil
	}
	return err
}

// Tags builds a TagList from a map, sorted by key so that templates
// render deterministically.
func Tags(tags map[string]string) *TagList {
	if len(tags) == 0 {
		return nil
	}
	rv := TagList{}
	for _, key := range sortedKeys(tags) {
		rv = append(rv, Tag{Key: String(key), Value: String(tags[key])})
	}
	return &rv
}
