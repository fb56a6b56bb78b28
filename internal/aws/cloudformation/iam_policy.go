package cloudformation

import (
	"encoding/json"
)

// IAMPolicyDocument represents an IAM policy document
type IAMPolicyDocument struct {
	Version   string                 `json:",omitempty"`
	ID        string                 `json:"Id,omitempty"`
	Statement IAMPolicyStatementList `json:",omitempty"`
}

// IAMPrincipal represents a principal in an IAM policy statement. The
// wildcard "*" is decoded as AWS=["*"] and encoded back as "*".
type IAMPrincipal struct {
	AWS           *StringListExpr `json:",omitempty"`
	CanonicalUser *StringListExpr `json:",omitempty"`
	Federated     *StringListExpr `json:",omitempty"`
	Service       *StringListExpr `json:",omitempty"`
}

type iamPrincipal IAMPrincipal

func (p IAMPrincipal) isWildcard() bool {
	if p.CanonicalUser != nil || p.Federated != nil || p.Service != nil {
		return false
	}
	if p.AWS == nil || p.AWS.Func != nil || len(p.AWS.Literal) != 1 {
		return false
	}
	item := p.AWS.Literal[0]
	return item != nil && item.Func == nil && item.Literal == "*"
}

// MarshalJSON returns a JSON representation of the object
func (p IAMPrincipal) MarshalJSON() ([]byte, error) {
	if p.isWildcard() {
		return json.Marshal("*")
	}
	return json.Marshal(iamPrincipal(p))
}

// UnmarshalJSON sets the object from the provided JSON representation
func (p *IAMPrincipal) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = IAMPrincipal{AWS: StringList(String(s))}
		return nil
	}
	var v iamPrincipal
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = IAMPrincipal(v)
	return nil
}

// IAMPolicyStatement represents an IAM policy statement
type IAMPolicyStatement struct {
	Sid          string          `json:",omitempty"`
	Effect       string          `json:",omitempty"`
	Principal    *IAMPrincipal   `json:",omitempty"`
	NotPrincipal *IAMPrincipal   `json:",omitempty"`
	Action       *StringListExpr `json:",omitempty"`
	NotAction    *StringListExpr `json:",omitempty"`
	Resource     *StringListExpr `json:",omitempty"`
	NotResource  *StringListExpr `json:",omitempty"`
	Condition    interface{}     `json:",omitempty"`
}

// IAMPolicyStatementList represents a list of statements
type IAMPolicyStatementList []IAMPolicyStatement

// UnmarshalJSON sets the object from the provided JSON representation
func (l *IAMPolicyStatementList) UnmarshalJSON(buf []byte) error {
	// Cloudformation allows a single object when a list of objects is expected
	item := IAMPolicyStatement{}
	if err := json.Unmarshal(buf, &item); err == nil {
		*l = IAMPolicyStatementList{item}
		return nil
	}
	list := []IAMPolicyStatement{}
	err := json.Unmarshal(buf, &list)
	if err == nil {
		*l = IAMPolicyStatementList(list)
		return nil
	}
	return err
}
