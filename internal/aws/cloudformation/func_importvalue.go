package cloudformation

import "encoding/json"

// ImportValue returns a new instance of ImportValueFunc that imports
// valueToImport, the name of an output exported by another stack.
func ImportValue(valueToImport Stringable) *StringExpr {
	return ImportValueFunc{ValueToImport: *valueToImport.String()}.String()
}

// ImportValueFunc represents an invocation of the Fn::ImportValue intrinsic.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference-importvalue.html
type ImportValueFunc struct {
	ValueToImport StringExpr `json:"Fn::ImportValue"`
}

// MarshalJSON returns a JSON representation of the object
func (f ImportValueFunc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ValueToImport StringExpr `json:"Fn::ImportValue"`
	}{ValueToImport: f.ValueToImport})
}

// UnmarshalJSON sets the object from the provided JSON representation
func (f *ImportValueFunc) UnmarshalJSON(buf []byte) error {
	return json.Unmarshal(buf, &f.ValueToImport)
}

// String returns this reference as a StringExpr
func (f ImportValueFunc) String() *StringExpr {
	return &StringExpr{Func: f}
}

var _ StringFunc = ImportValueFunc{}
