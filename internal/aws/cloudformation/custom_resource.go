package cloudformation

// CloudFormationCustomResource represents a custom resource. Embed it in
// a struct carrying the resource's own properties and register the type
// with RegisterCustomResourceProvider so that templates containing it can
// be decoded.
type CloudFormationCustomResource struct {
	ServiceToken *StringExpr `json:"ServiceToken,omitempty" validate:"required"`

	// ResourceTypeName is the name of the custom type, without the
	// Custom:: prefix. It defaults to CloudFormation::CustomResource.
	ResourceTypeName string `json:"-"`
}

// CfnResourceType returns the type of the custom resource.
func (s CloudFormationCustomResource) CfnResourceType() string {
	if s.ResourceTypeName == "" {
		return "AWS::CloudFormation::CustomResource"
	}
	return "Custom::" + s.ResourceTypeName
}

// CfnResourceAttributes returns the attributes produced by this resource.
// Custom resources may return any attribute, so none are declared.
func (s CloudFormationCustomResource) CfnResourceAttributes() []string {
	return []string{}
}
