package cloudformation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Select returns a new instance of SelectFunc choosing the selector-th
// element of items. A single StringListable item is used as the list
// itself; otherwise every item must be Stringable.
func Select(selector string, items ...interface{}) *StringExpr {
	if len(items) == 1 {
		if itemList, ok := items[0].(StringListable); ok {
			return SelectFunc{Selector: selector, Items: *itemList.StringList()}.String()
		}
	}
	stringableItems := make([]Stringable, 0, len(items))
	for _, item := range items {
		stringableItem, ok := item.(Stringable)
		if !ok {
			panic(fmt.Sprintf("item %#v must be Stringable", item))
		}
		stringableItems = append(stringableItems, stringableItem)
	}
	return SelectFunc{Selector: selector, Items: *StringList(stringableItems...)}.String()
}

// SelectFunc represents an invocation of the Fn::Select intrinsic.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference-select.html
type SelectFunc struct {
	Selector string
	Items    StringListExpr
}

// MarshalJSON returns a JSON representation of the object
func (f SelectFunc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FnSelect []interface{} `json:"Fn::Select"`
	}{FnSelect: []interface{}{f.Selector, f.Items}})
}

// UnmarshalJSON sets the object from the provided JSON representation.
// The selector may be a number or a numeric string.
func (f *SelectFunc) UnmarshalJSON(buf []byte) error {
	v := []json.RawMessage{}
	if err := json.Unmarshal(buf, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return errors.New("expected two arguments: index and list of values")
	}

	var index int64
	if err := json.Unmarshal(v[0], &index); err == nil {
		f.Selector = strconv.FormatInt(index, 10)
	} else if err := json.Unmarshal(v[0], &f.Selector); err != nil {
		return err
	}
	return json.Unmarshal(v[1], &f.Items)
}

// String returns this reference as a StringExpr
func (f SelectFunc) String() *StringExpr {
	return &StringExpr{Func: f}
}

var _ StringFunc = SelectFunc{}
