package cloudformation

import (
	"encoding/json"
	"errors"
)

// Join returns a new instance of JoinFunc that joins items with separator.
func Join(separator string, items ...Stringable) *StringExpr {
	return JoinFunc{Separator: separator, Items: *StringList(items...)}.String()
}

// JoinFunc represents an invocation of the Fn::Join intrinsic.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference-join.html
type JoinFunc struct {
	Separator string
	Items     StringListExpr
}

// MarshalJSON returns a JSON representation of the object
func (f JoinFunc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FnJoin []interface{} `json:"Fn::Join"`
	}{FnJoin: []interface{}{f.Separator, f.Items}})
}

// UnmarshalJSON sets the object from the provided JSON representation
func (f *JoinFunc) UnmarshalJSON(buf []byte) error {
	v := []json.RawMessage{}
	if err := json.Unmarshal(buf, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return errors.New("expected two arguments: separator and list of values")
	}
	if err := json.Unmarshal(v[0], &f.Separator); err != nil {
		return err
	}
	return json.Unmarshal(v[1], &f.Items)
}

// String returns this reference as a StringExpr
func (f JoinFunc) String() *StringExpr {
	return &StringExpr{Func: f}
}

var _ StringFunc = JoinFunc{}
