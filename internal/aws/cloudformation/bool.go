package cloudformation

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// BoolExpr is a boolean expression. If the value is computed then
// Func will be non-nil. If it is a literal `true` or `false` then
// the Literal gives the value.
type BoolExpr struct {
	Func    BoolFunc
	Literal bool
}

// MarshalJSON returns a JSON representation of the object
func (x BoolExpr) MarshalJSON() ([]byte, error) {
	if x.Func != nil {
		return json.Marshal(x.Func)
	}
	return json.Marshal(x.Literal)
}

// UnmarshalJSON sets the object from the provided JSON representation.
// The strings "true" and "false" are accepted as literals.
func (x *BoolExpr) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		var v bool
		boolErr := json.Unmarshal(data, &v)
		if boolErr == nil {
			x.Func = nil
			x.Literal = v
			return nil
		}

		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return boolErr
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return boolErr
		}
		x.Func = nil
		x.Literal = v
		return nil
	}

	funcCall, err := unmarshalFunc(data)
	if err != nil {
		return err
	}
	boolFunc, ok := funcCall.(BoolFunc)
	if !ok {
		return fmt.Errorf("%#v is not a BoolFunc", funcCall)
	}
	x.Func = boolFunc
	x.Literal = false
	return nil
}

// Bool returns a new BoolExpr representing the literal value v.
func Bool(v bool) *BoolExpr {
	return &BoolExpr{Literal: v}
}
