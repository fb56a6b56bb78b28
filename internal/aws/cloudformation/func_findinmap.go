package cloudformation

import (
	"encoding/json"
	"errors"
)

// FindInMap returns a new instance of FindInMapFunc.
func FindInMap(mapName string, topLevelKey Stringable, secondLevelKey Stringable) *StringExpr {
	return FindInMapFunc{
		MapName:        mapName,
		TopLevelKey:    *topLevelKey.String(),
		SecondLevelKey: *secondLevelKey.String(),
	}.String()
}

// FindInMapFunc represents an invocation of the Fn::FindInMap intrinsic.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference-findinmap.html
type FindInMapFunc struct {
	MapName        string
	TopLevelKey    StringExpr
	SecondLevelKey StringExpr
}

// MarshalJSON returns a JSON representation of the object
func (f FindInMapFunc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FnFindInMap []interface{} `json:"Fn::FindInMap"`
	}{FnFindInMap: []interface{}{f.MapName, f.TopLevelKey, f.SecondLevelKey}})
}

// UnmarshalJSON sets the object from the provided JSON representation
func (f *FindInMapFunc) UnmarshalJSON(buf []byte) error {
	v := []json.RawMessage{}
	if err := json.Unmarshal(buf, &v); err != nil {
		return err
	}
	if len(v) != 3 {
		return errors.New("expected three arguments: map name, top level key and second level key")
	}
	if err := json.Unmarshal(v[0], &f.MapName); err != nil {
		return err
	}
	if err := json.Unmarshal(v[1], &f.TopLevelKey); err != nil {
		return err
	}
	return json.Unmarshal(v[2], &f.SecondLevelKey)
}

// String returns this reference as a StringExpr
func (f FindInMapFunc) String() *StringExpr {
	return &StringExpr{Func: f}
}

var _ StringFunc = FindInMapFunc{}
