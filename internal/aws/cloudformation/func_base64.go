package cloudformation

import "encoding/json"

// Base64 returns a new instance of Base64Func.
func Base64(value Stringable) *StringExpr {
	return Base64Func{Value: *value.String()}.String()
}

// Base64Func represents an invocation of the Fn::Base64 intrinsic.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference-base64.html
type Base64Func struct {
	Value StringExpr
}

// MarshalJSON returns a JSON representation of the object
func (f Base64Func) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FnBase64 StringExpr `json:"Fn::Base64"`
	}{FnBase64: f.Value})
}

// UnmarshalJSON sets the object from the provided JSON representation
func (f *Base64Func) UnmarshalJSON(buf []byte) error {
	return json.Unmarshal(buf, &f.Value)
}

// String returns this reference as a StringExpr
func (f Base64Func) String() *StringExpr {
	return &StringExpr{Func: f}
}

var _ StringFunc = Base64Func{}
