package cloudformation

import "encoding/json"

// GetAZs returns a new instance of GetAZsFunc.
func GetAZs(region Stringable) *StringListExpr {
	return GetAZsFunc{Region: *region.String()}.StringList()
}

// GetAZsFunc represents an invocation of the Fn::GetAZs intrinsic.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference-getavailabilityzones.html
type GetAZsFunc struct {
	Region StringExpr
}

// MarshalJSON returns a JSON representation of the object
func (f GetAZsFunc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FnGetAZs StringExpr `json:"Fn::GetAZs"`
	}{FnGetAZs: f.Region})
}

// UnmarshalJSON sets the object from the provided JSON representation
func (f *GetAZsFunc) UnmarshalJSON(buf []byte) error {
	return json.Unmarshal(buf, &f.Region)
}

// StringList returns this reference as a StringListExpr
func (f GetAZsFunc) StringList() *StringListExpr {
	return &StringListExpr{Func: f}
}

var _ StringListFunc = GetAZsFunc{}
