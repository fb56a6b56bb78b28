package cloudformation

import (
	"encoding/json"
	"fmt"
)

// Stringable is satisfied by StringExpr and by every intrinsic function
// that evaluates to a string.
type Stringable interface {
	String() *StringExpr
}

// StringExpr is a string expression. If the value is computed then
// Func will be non-nil. If it is a literal string then Literal gives
// the value. Typically instances of this function are created by
// String() or one of the function constructors.
type StringExpr struct {
	Func    StringFunc
	Literal string
}

// String returns x. It allows StringExpr to satisfy Stringable.
func (x StringExpr) String() *StringExpr {
	return &x
}

// MarshalJSON returns a JSON representation of the object
func (x StringExpr) MarshalJSON() ([]byte, error) {
	if x.Func != nil {
		return json.Marshal(x.Func)
	}
	return json.Marshal(x.Literal)
}

// UnmarshalJSON sets the object from the provided JSON representation
func (x *StringExpr) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		x.Func = nil
		x.Literal = v
		return nil
	}

	funcCall, err := unmarshalFunc(data)
	if err != nil {
		return err
	}
	stringFunc, ok := funcCall.(StringFunc)
	if !ok {
		return fmt.Errorf("%#v is not a StringFunc", funcCall)
	}
	x.Func = stringFunc
	x.Literal = ""
	return nil
}

// String returns a new StringExpr representing the literal value v.
func String(v string) *StringExpr {
	return &StringExpr{Literal: v}
}
