package cloudformation

import (
	"encoding/json"
	"fmt"
)

// StringListable is satisfied by StringListExpr and by every intrinsic
// function that evaluates to a list of strings.
type StringListable interface {
	StringList() *StringListExpr
}

// StringListExpr is a string list expression. If the value is computed
// then Func will be non-nil. Otherwise Literal holds the items, each of
// which may itself be computed.
type StringListExpr struct {
	Func    StringListFunc
	Literal []*StringExpr
}

// StringList returns x. It allows StringListExpr to satisfy StringListable.
func (x StringListExpr) StringList() *StringListExpr {
	return &x
}

// MarshalJSON returns a JSON representation of the object
func (x StringListExpr) MarshalJSON() ([]byte, error) {
	if x.Func != nil {
		return json.Marshal(x.Func)
	}
	return json.Marshal(x.Literal)
}

// UnmarshalJSON sets the object from the provided JSON representation.
// A single string is decoded as a list with one item.
func (x *StringListExpr) UnmarshalJSON(data []byte) error {
	if isObject(data) {
		funcCall, err := unmarshalFunc(data)
		if err != nil {
			return err
		}
		stringListFunc, ok := funcCall.(StringListFunc)
		if !ok {
			return fmt.Errorf("%#v is not a StringListFunc", funcCall)
		}
		x.Func = stringListFunc
		x.Literal = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		x.Func = nil
		x.Literal = []*StringExpr{String(single)}
		return nil
	}

	var items []*StringExpr
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	x.Func = nil
	x.Literal = items
	return nil
}

// StringList returns a new StringListExpr representing the literal value v.
func StringList(v ...Stringable) *StringListExpr {
	rv := &StringListExpr{Literal: []*StringExpr{}}
	for _, item := range v {
		rv.Literal = append(rv.Literal, item.String())
	}
	return rv
}
