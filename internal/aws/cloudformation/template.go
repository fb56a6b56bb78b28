package cloudformation

import (
	"encoding/json"
	"fmt"
	"sort"
)

// NewTemplate returns a new empty Template initialized with some
// default values.
func NewTemplate() *Template {
	return &Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Mappings:                 map[string]*Mapping{},
		Parameters:               map[string]*Parameter{},
		Resources:                map[string]*Resource{},
		Outputs:                  map[string]*Output{},
		Conditions:               map[string]interface{}{},
	}
}

// Template represents a cloudformation template.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/template-anatomy.html
type Template struct {
	AWSTemplateFormatVersion string                 `json:",omitempty"`
	Description              string                 `json:",omitempty"`
	Mappings                 map[string]*Mapping    `json:",omitempty"`
	Parameters               map[string]*Parameter  `json:",omitempty"`
	Resources                map[string]*Resource   `json:",omitempty"`
	Outputs                  map[string]*Output     `json:",omitempty"`
	Conditions               map[string]interface{} `json:",omitempty"`
}

// AddResource adds the resource to the template as name, displacing
// any resource with the same name that already exists.
func (t *Template) AddResource(name string, resource ResourceProperties) *Resource {
	templateResource := &Resource{Properties: resource}
	t.Resources[name] = templateResource
	return templateResource
}

// AddOutput adds an output named name whose value is value.
func (t *Template) AddOutput(name, description string, value interface{}) *Output {
	output := &Output{Description: description, Value: value}
	t.Outputs[name] = output
	return output
}

// ResourceNames returns the logical IDs of all resources, sorted.
func (t *Template) ResourceNames() []string {
	names := make([]string, 0, len(t.Resources))
	for name := range t.Resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mapping matches a key to a corresponding set of named values. For example,
// if you want to set values based on a region, you can create a mapping that
// uses the region name as a key and contains the values you want to specify
// for each specific region. You use the Fn::FindInMap intrinsic function to
// retrieve values in a map.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/mappings-section-structure.html
type Mapping map[string]map[string]string

// Parameter represents a parameter to the template.
//
// You can use the optional Parameters section to pass values into your
// template when you create a stack. With parameters, you can create templates
// that are customized each time you create a stack. Each parameter must
// contain a value when you create a stack. You can specify a default value to
// make the parameter optional.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/parameters-section-structure.html
type Parameter struct {
	Type                  string       `json:",omitempty"`
	Default               string       `json:",omitempty"`
	NoEcho                *BoolExpr    `json:",omitempty"`
	AllowedValues         []string     `json:",omitempty"`
	AllowedPattern        string       `json:",omitempty"`
	MinLength             *IntegerExpr `json:",omitempty"`
	MaxLength             *IntegerExpr `json:",omitempty"`
	MinValue              *IntegerExpr `json:",omitempty"`
	MaxValue              *IntegerExpr `json:",omitempty"`
	Description           string       `json:",omitempty"`
	ConstraintDescription string       `json:",omitempty"`
}

// OutputExport represents the name of the resource output that should
// be used for cross stack references.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/walkthrough-crossstackref.html
type OutputExport struct {
	Name *StringExpr `json:",omitempty"`
}

// Output represents a template output
//
// The optional Outputs section declares output values that you want to view
// from the AWS CloudFormation console or that you want to return in response
// to describe stack calls. For example, you can output the Amazon S3 bucket
// name for a stack so that the bucket is easier to find.
//
// See http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/outputs-section-structure.html
type Output struct {
	Description string        `json:",omitempty"`
	Value       interface{}   `json:",omitempty"`
	Export      *OutputExport `json:",omitempty"`
}

// ResourceProperties is an interface that is implemented by resource objects.
type ResourceProperties interface {
	CfnResourceType() string
	CfnResourceAttributes() []string
}

// Resource represents a resource in a cloudformation template. It contains resource
// metadata and, in Properties, a struct that implements ResourceProperties which
// contains the properties of the resource.
type Resource struct {
	DependsOn           []string
	Metadata            map[string]interface{}
	CreationPolicy      interface{}
	UpdatePolicy        interface{}
	DeletionPolicy      string
	UpdateReplacePolicy string
	Condition           string
	Properties          ResourceProperties
}

type resourceJSON struct {
	Type                string                 `json:",omitempty"`
	DependsOn           []string               `json:",omitempty"`
	Metadata            map[string]interface{} `json:",omitempty"`
	CreationPolicy      interface{}            `json:",omitempty"`
	UpdatePolicy        interface{}            `json:",omitempty"`
	DeletionPolicy      string                 `json:",omitempty"`
	UpdateReplacePolicy string                 `json:",omitempty"`
	Condition           string                 `json:",omitempty"`
	Properties          json.RawMessage        `json:",omitempty"`
}

// MarshalJSON returns a JSON representation of the object
func (r Resource) MarshalJSON() ([]byte, error) {
	if r.Properties == nil {
		return nil, fmt.Errorf("resource has no properties")
	}
	properties, err := json.Marshal(r.Properties)
	if err != nil {
		return nil, err
	}
	if string(properties) == "{}" {
		properties = nil
	}
	return json.Marshal(resourceJSON{
		Type:                r.Properties.CfnResourceType(),
		DependsOn:           r.DependsOn,
		Metadata:            r.Metadata,
		CreationPolicy:      r.CreationPolicy,
		UpdatePolicy:        r.UpdatePolicy,
		DeletionPolicy:      r.DeletionPolicy,
		UpdateReplacePolicy: r.UpdateReplacePolicy,
		Condition:           r.Condition,
		Properties:          properties,
	})
}

// UnmarshalJSON sets the object from the provided JSON representation
func (r *Resource) UnmarshalJSON(buf []byte) error {
	raw := struct {
		resourceJSON
		DependsOn json.RawMessage `json:",omitempty"`
	}{}
	if err := json.Unmarshal(buf, &raw); err != nil {
		return err
	}

	dependsOn, err := unmarshalDependsOn(raw.DependsOn)
	if err != nil {
		return err
	}

	r.DependsOn = dependsOn
	r.Metadata = raw.Metadata
	r.CreationPolicy = raw.CreationPolicy
	r.UpdatePolicy = raw.UpdatePolicy
	r.DeletionPolicy = raw.DeletionPolicy
	r.UpdateReplacePolicy = raw.UpdateReplacePolicy
	r.Condition = raw.Condition
	r.Properties = NewResourceByType(raw.Type)
	if r.Properties == nil {
		return fmt.Errorf("unknown resource type: %s", raw.Type)
	}
	if len(raw.Properties) > 0 {
		if err := json.Unmarshal(raw.Properties, r.Properties); err != nil {
			return fmt.Errorf("%s: %w", raw.Type, err)
		}
	}
	return nil
}

// unmarshalDependsOn accepts either a single logical ID or a list.
func unmarshalDependsOn(buf json.RawMessage) ([]string, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	var single string
	if err := json.Unmarshal(buf, &single); err == nil {
		return []string{single}, nil
	}
	var list []string
	if err := json.Unmarshal(buf, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
