package cloudformation

import (
	"encoding/json"
	"errors"
)

// Sub returns a new instance of SubFunc. The template may reference
// parameters, resources and attributes as ${Name} or ${Resource.Attr}.
func Sub(template string) *StringExpr {
	return SubFunc{Template: template}.String()
}

// SubWithVariables returns a new instance of SubFunc that also declares
// local variables available to the template.
func SubWithVariables(template string, variables map[string]*StringExpr) *StringExpr {
	return SubFunc{Template: template, Variables: variables}.String()
}

// SubFunc represents an invocation of the Fn::Sub intrinsic.
//
// See https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference-sub.html
type SubFunc struct {
	Template  string
	Variables map[string]*StringExpr
}

// MarshalJSON returns a JSON representation of the object. Without
// variables the short form {"Fn::Sub": "template"} is used.
func (f SubFunc) MarshalJSON() ([]byte, error) {
	if len(f.Variables) == 0 {
		return json.Marshal(struct {
			FnSub string `json:"Fn::Sub"`
		}{FnSub: f.Template})
	}
	return json.Marshal(struct {
		FnSub []interface{} `json:"Fn::Sub"`
	}{FnSub: []interface{}{f.Template, f.Variables}})
}

// UnmarshalJSON sets the object from the provided JSON representation
func (f *SubFunc) UnmarshalJSON(buf []byte) error {
	var template string
	if err := json.Unmarshal(buf, &template); err == nil {
		f.Template = template
		f.Variables = nil
		return nil
	}

	v := []json.RawMessage{}
	if err := json.Unmarshal(buf, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return errors.New("expected two arguments: template and variable map")
	}
	if err := json.Unmarshal(v[0], &f.Template); err != nil {
		return err
	}
	f.Variables = map[string]*StringExpr{}
	return json.Unmarshal(v[1], &f.Variables)
}

// String returns this reference as a StringExpr
func (f SubFunc) String() *StringExpr {
	return &StringExpr{Func: f}
}

var _ StringFunc = SubFunc{}
