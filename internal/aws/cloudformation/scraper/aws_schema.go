package scraper

import (
	"encoding/json"
	"fmt"
	"strings"
)

// See:
// * http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/cfn-resource-specification-format.html and
// * http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/cfn-resource-specification.html
// for more information

// CloudFormationSchema represents the root of the
// schema
type CloudFormationSchema struct {
	PropertyTypes                map[string]PropertyTypes
	ResourceTypes                map[string]ResourceTypes
	ResourceSpecificationVersion string
}

// PropertyTypes is a definition of a property
type PropertyTypes struct {
	Documentation string
	Properties    map[string]PropertyTypeDefinition
}

// ResourceTypes is a definition of a resource
type ResourceTypes struct {
	Documentation string
	Attributes    map[string]ResourceAttribute
	Properties    map[string]PropertyTypeDefinition
}

// ResourceAttribute are outputs of CloudFormation
// resource
type ResourceAttribute struct {
	PrimitiveType     string `json:",omitempty"`
	Type              string `json:",omitempty"`
	PrimitiveItemType string `json:",omitempty"`
}

// PropertyItemType represents the type of a property
type PropertyItemType struct {
	Scalar      string
	MultiValues []string
}

// MarshalJSON to handle whichever field is set
func (piType PropertyItemType) MarshalJSON() ([]byte, error) {
	var value interface{}
	if len(piType.Scalar) != 0 {
		value = piType.Scalar
	} else {
		value = piType.MultiValues
	}
	return json.Marshal(value)
}

// UnmarshalJSON does the custom unmarshalling
func (piType *PropertyItemType) UnmarshalJSON(data []byte) error {
	singleString := ""
	singleErr := json.Unmarshal(data, &singleString)
	if singleErr == nil {
		piType.Scalar = singleString
		return nil
	}
	var stringArray []string
	sliceErr := json.Unmarshal(data, &stringArray)
	if sliceErr == nil {
		piType.MultiValues = stringArray
		return nil
	}
	return fmt.Errorf("failed to unmarshal type: %w", sliceErr)
}

// PropertyTypeDefinition is the definition of a property
type PropertyTypeDefinition struct {
	Required          bool
	Documentation     string
	PrimitiveType     string           `json:",omitempty"`
	UpdateType        string           `json:",omitempty"`
	Type              PropertyItemType `json:",omitempty"`
	DuplicatesAllowed bool             `json:",omitempty"`
	ItemType          string           `json:",omitempty"`
	PrimitiveItemType string           `json:",omitempty"`
}

// Filter returns the part of the schema describing the given services.
// Services are named as in resource types, e.g. "SQS" for AWS::SQS::Queue.
// An empty list keeps everything. The generic Tag property type is always
// dropped since it is provided by hand.
func (s CloudFormationSchema) Filter(services []string) CloudFormationSchema {
	keep := func(typeName string) bool {
		if len(services) == 0 {
			return true
		}
		for _, service := range services {
			if strings.HasPrefix(typeName, "AWS::"+service+"::") {
				return true
			}
		}
		return false
	}

	filtered := CloudFormationSchema{
		PropertyTypes:                map[string]PropertyTypes{},
		ResourceTypes:                map[string]ResourceTypes{},
		ResourceSpecificationVersion: s.ResourceSpecificationVersion,
	}
	for name, propertyType := range s.PropertyTypes {
		if name != "Tag" && keep(name) {
			filtered.PropertyTypes[name] = propertyType
		}
	}
	for name, resourceType := range s.ResourceTypes {
		if keep(name) {
			filtered.ResourceTypes[name] = resourceType
		}
	}
	return filtered
}
