package cloudformation

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// IntegerExpr is an integer expression. If the value is computed then
// Func will be non-nil. If it is a literal value then Literal gives the
// value.
type IntegerExpr struct {
	Func    IntegerFunc
	Literal int64
}

// MarshalJSON returns a JSON representation of the object
func (x IntegerExpr) MarshalJSON() ([]byte, error) {
	if x.Func != nil {
		return json.Marshal(x.Func)
	}
	return json.Marshal(x.Literal)
}

// UnmarshalJSON sets the object from the provided JSON representation.
// CloudFormation accepts numbers encoded as strings, so "1" decodes to 1.
func (x *IntegerExpr) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		var v int64
		numberErr := json.Unmarshal(data, &v)
		if numberErr == nil {
			x.Func = nil
			x.Literal = v
			return nil
		}

		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return numberErr
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return numberErr
		}
		x.Func = nil
		x.Literal = v
		return nil
	}

	funcCall, err := unmarshalFunc(data)
	if err != nil {
		return err
	}
	integerFunc, ok := funcCall.(IntegerFunc)
	if !ok {
		return fmt.Errorf("%#v is not an IntegerFunc", funcCall)
	}
	x.Func = integerFunc
	x.Literal = 0
	return nil
}

// Integer returns a new IntegerExpr representing the literal value v.
func Integer(v int64) *IntegerExpr {
	return &IntegerExpr{Literal: v}
}
