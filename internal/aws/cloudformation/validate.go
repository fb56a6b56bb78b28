package cloudformation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/zalando-incubator/cfn-pipes/problem"
	"gopkg.in/go-playground/validator.v9"
)

var validate = newValidator()

// pseudoParameters are the references CloudFormation resolves without a
// declaration in the template.
var pseudoParameters = map[string]bool{
	"AWS::AccountId":        true,
	"AWS::NotificationARNs": true,
	"AWS::NoValue":          true,
	"AWS::Partition":        true,
	"AWS::Region":           true,
	"AWS::StackId":          true,
	"AWS::StackName":        true,
	"AWS::URLSuffix":        true,
}

var subVariable = regexp.MustCompile(`\$\{([^!}][^}]*)\}`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks that every resource carries its required properties
// and that every Ref, Fn::GetAtt, Fn::Sub variable, DependsOn and
// Condition names something declared in the template. All problems are
// reported in a single error.
func (t *Template) Validate() error {
	problems := &problem.List{}

	for _, name := range t.ResourceNames() {
		resource := t.Resources[name]
		if resource == nil || resource.Properties == nil {
			problems.Add("resource %s: no properties", name)
			continue
		}
		t.validateProperties(problems, name, resource.Properties)

		for _, dependency := range resource.DependsOn {
			if _, ok := t.Resources[dependency]; !ok {
				problems.Add("resource %s: depends on undeclared resource %s", name, dependency)
			}
		}
		if resource.Condition != "" {
			if _, ok := t.Conditions[resource.Condition]; !ok {
				problems.Add("resource %s: undeclared condition %s", name, resource.Condition)
			}
		}

		tree, err := toTree(resource.Properties)
		if err != nil {
			problems.Add("resource %s: %w", name, err)
			continue
		}
		t.checkReferences(problems, "resource "+name, tree)
	}

	for _, name := range sortedOutputNames(t.Outputs) {
		tree, err := toTree(t.Outputs[name])
		if err != nil {
			problems.Add("output %s: %w", name, err)
			continue
		}
		t.checkReferences(problems, "output "+name, tree)
	}

	return problems.Err()
}

func (t *Template) validateProperties(problems *problem.List, name string, properties ResourceProperties) {
	err := validate.Struct(properties)
	if err == nil {
		return
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		problems.Add("resource %s: %w", name, err)
		return
	}
	for _, fieldErr := range validationErrors {
		// drop the leading Go type name from the namespace
		field := fieldErr.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		if fieldErr.Tag() == "required" {
			problems.Add("resource %s (%s): property %s is required", name, properties.CfnResourceType(), field)
			continue
		}
		problems.Add("resource %s (%s): property %s failed %s", name, properties.CfnResourceType(), field, fieldErr.Tag())
	}
}

func toTree(v interface{}) (interface{}, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree interface{}
	if err := json.Unmarshal(buf, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (t *Template) checkReferences(problems *problem.List, where string, node interface{}) {
	switch n := node.(type) {
	case []interface{}:
		for _, item := range n {
			t.checkReferences(problems, where, item)
		}
	case map[string]interface{}:
		if len(n) == 1 {
			if target, ok := n["Ref"].(string); ok {
				if !t.isReferenceable(target) {
					problems.Add("%s: Ref to undeclared %s", where, target)
				}
				return
			}
			if args, ok := n["Fn::GetAtt"].([]interface{}); ok && len(args) == 2 {
				resource, _ := args[0].(string)
				attribute, _ := args[1].(string)
				t.checkAttribute(problems, where, resource, attribute)
				return
			}
			if sub, ok := n["Fn::Sub"]; ok {
				t.checkSub(problems, where, sub)
				return
			}
		}
		for _, key := range sortedTreeKeys(n) {
			t.checkReferences(problems, where, n[key])
		}
	}
}

func (t *Template) isReferenceable(name string) bool {
	if pseudoParameters[name] {
		return true
	}
	if _, ok := t.Parameters[name]; ok {
		return true
	}
	_, ok := t.Resources[name]
	return ok
}

func (t *Template) checkAttribute(problems *problem.List, where, resource, attribute string) {
	target, ok := t.Resources[resource]
	if !ok || target.Properties == nil {
		problems.Add("%s: Fn::GetAtt on undeclared resource %s", where, resource)
		return
	}
	attributes := target.Properties.CfnResourceAttributes()
	if len(attributes) == 0 && isCustomResourceType(target.Properties.CfnResourceType()) {
		return
	}
	for _, a := range attributes {
		if a == attribute {
			return
		}
	}
	problems.Add("%s: %s (%s) has no attribute %s", where, resource, target.Properties.CfnResourceType(), attribute)
}

func (t *Template) checkSub(problems *problem.List, where string, sub interface{}) {
	var template string
	locals := map[string]bool{}
	switch s := sub.(type) {
	case string:
		template = s
	case []interface{}:
		if len(s) != 2 {
			problems.Add("%s: malformed Fn::Sub", where)
			return
		}
		template, _ = s[0].(string)
		if variables, ok := s[1].(map[string]interface{}); ok {
			for name, value := range variables {
				locals[name] = true
				t.checkReferences(problems, where, value)
			}
		}
	default:
		problems.Add("%s: malformed Fn::Sub", where)
		return
	}

	for _, match := range subVariable.FindAllStringSubmatch(template, -1) {
		variable := strings.TrimSpace(match[1])
		if locals[variable] {
			continue
		}
		if resource, attribute, ok := strings.Cut(variable, "."); ok && !pseudoParameters[variable] {
			t.checkAttribute(problems, where, resource, attribute)
			continue
		}
		if !t.isReferenceable(variable) {
			problems.Add("%s: Fn::Sub references undeclared %s", where, variable)
		}
	}
}

func isCustomResourceType(resourceType string) bool {
	return strings.HasPrefix(resourceType, "Custom::") ||
		resourceType == "AWS::CloudFormation::CustomResource"
}

func sortedTreeKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedOutputNames(m map[string]*Output) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
