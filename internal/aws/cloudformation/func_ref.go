package cloudformation

import "encoding/json"

// Ref returns a reference to a resource, parameter or pseudo parameter
// such as AWS::Region.
func Ref(name string) RefFunc {
	return RefFunc{Name: name}
}

// RefFunc represents an invocation of the Ref intrinsic.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference-ref.html
type RefFunc struct {
	Name string `json:"Ref"`
}

// MarshalJSON returns a JSON representation of the object
func (r RefFunc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string `json:"Ref"`
	}{Name: r.Name})
}

// UnmarshalJSON sets the object from the provided JSON representation
func (r *RefFunc) UnmarshalJSON(buf []byte) error {
	return json.Unmarshal(buf, &r.Name)
}

// Bool returns this reference as a BoolExpr
func (r RefFunc) Bool() *BoolExpr {
	return &BoolExpr{Func: r}
}

// Integer returns this reference as an IntegerExpr
func (r RefFunc) Integer() *IntegerExpr {
	return &IntegerExpr{Func: r}
}

// String returns this reference as a StringExpr
func (r RefFunc) String() *StringExpr {
	return &StringExpr{Func: r}
}

// StringList returns this reference as a StringListExpr
func (r RefFunc) StringList() *StringListExpr {
	return &StringListExpr{Func: r}
}

var _ Stringable = RefFunc{}
var _ StringFunc = RefFunc{}
var _ StringListFunc = RefFunc{}
var _ BoolFunc = RefFunc{}
var _ IntegerFunc = RefFunc{}
