package cloudformation

import (
	"encoding/json"
	"errors"
)

// GetAtt returns a new instance of GetAttFunc.
func GetAtt(resource, name string) *StringExpr {
	return GetAttFunc{Resource: resource, Name: name}.String()
}

// GetAttFunc represents an invocation of the Fn::GetAtt intrinsic.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference-getatt.html
type GetAttFunc struct {
	Resource string
	Name     string
}

// MarshalJSON returns a JSON representation of the object
func (f GetAttFunc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FnGetAtt []string `json:"Fn::GetAtt"`
	}{FnGetAtt: []string{f.Resource, f.Name}})
}

// UnmarshalJSON sets the object from the provided JSON representation
func (f *GetAttFunc) UnmarshalJSON(buf []byte) error {
	v := []string{}
	if err := json.Unmarshal(buf, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return errors.New("expected two arguments: resource and attribute name")
	}
	f.Resource = v[0]
	f.Name = v[1]
	return nil
}

// String returns this reference as a StringExpr
func (f GetAttFunc) String() *StringExpr {
	return &StringExpr{Func: f}
}

// StringList returns this reference as a StringListExpr, for attributes
// such as a subnet group's subnet IDs.
func (f GetAttFunc) StringList() *StringListExpr {
	return &StringListExpr{Func: f}
}

var _ StringFunc = GetAttFunc{}
var _ StringListFunc = GetAttFunc{}
