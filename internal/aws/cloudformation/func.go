package cloudformation

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Func is an interface provided by objects that represent CloudFormation
// intrinsic functions.
type Func interface {
}

// StringFunc is an intrinsic function that evaluates to a string.
type StringFunc interface {
	Func
	String() *StringExpr
}

// IntegerFunc is an intrinsic function that evaluates to an integer.
type IntegerFunc interface {
	Func
	Integer() *IntegerExpr
}

// BoolFunc is an intrinsic function that evaluates to a boolean.
type BoolFunc interface {
	Func
	Bool() *BoolExpr
}

// StringListFunc is an intrinsic function that evaluates to a list of
// strings.
type StringListFunc interface {
	Func
	StringList() *StringListExpr
}

// UnknownFunctionError is returned when a function name is not recognized.
type UnknownFunctionError struct {
	Name string
}

func (ufe UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %s", ufe.Name)
}

var errCannotDecodeFunc = errors.New("cannot decode function")

type funcDecoder func(buf []byte) (Func, error)

var funcDecoders = map[string]funcDecoder{
	"Ref": func(buf []byte) (Func, error) {
		f := RefFunc{}
		err := json.Unmarshal(buf, &f)
		return f, err
	},
	"Fn::GetAtt": func(buf []byte) (Func, error) {
		f := GetAttFunc{}
		err := json.Unmarshal(buf, &f)
		return f, err
	},
	"Fn::Join": func(buf []byte) (Func, error) {
		f := JoinFunc{}
		err := json.Unmarshal(buf, &f)
		return f, err
	},
	"Fn::Sub": func(buf []byte) (Func, error) {
		f := SubFunc{}
		err := json.Unmarshal(buf, &f)
		return f, err
	},
	"Fn::Select": func(buf []byte) (Func, error) {
		f := SelectFunc{}
		err := json.Unmarshal(buf, &f)
		return f, err
	},
	"Fn::GetAZs": func(buf []byte) (Func, error) {
		f := GetAZsFunc{}
		err := json.Unmarshal(buf, &f)
		return f, err
	},
	"Fn::Base64": func(buf []byte) (Func, error) {
		f := Base64Func{}
		err := json.Unmarshal(buf, &f)
		return f, err
	},
	"Fn::FindInMap": func(buf []byte) (Func, error) {
		f := FindInMapFunc{}
		err := json.Unmarshal(buf, &f)
		return f, err
	},
	"Fn::ImportValue": func(buf []byte) (Func, error) {
		f := ImportValueFunc{}
		err := json.Unmarshal(buf, &f)
		return f, err
	},
}

// unmarshalFunc decodes a single-key JSON object into the intrinsic
// function it names.
func unmarshalFunc(data []byte) (Func, error) {
	rawDecode := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &rawDecode); err != nil {
		return nil, err
	}
	if len(rawDecode) != 1 {
		return nil, errCannotDecodeFunc
	}
	for key, raw := range rawDecode {
		decode, ok := funcDecoders[key]
		if !ok {
			return nil, UnknownFunctionError{Name: key}
		}
		f, err := decode(raw)
		if err != nil {
			return nil, errCannotDecodeFunc
		}
		return f, nil
	}
	return nil, errCannotDecodeFunc
}

// isObject reports whether the first non-whitespace byte of data opens a
// JSON object.
func isObject(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
