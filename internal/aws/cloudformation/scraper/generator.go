package scraper

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"regexp"
	"sort"
	"strings"
	"text/template"
	"unicode"
)

// Top level resources must comply with the ResourceProperties interface
var topLevelTemplate = template.Must(template.New("resource").Parse(`// CfnResourceType returns {{.AWSTypeName}} to implement the ResourceProperties interface
func (s {{.GoTypeName}}) CfnResourceType() string {
	return "{{.AWSTypeName}}"
}

// CfnResourceAttributes returns the attributes produced by this resource
func (s {{.GoTypeName}}) CfnResourceAttributes() []string {
	return []string{ {{- range $i, $a := .Attributes}}{{if $i}}, {{end}}"{{$a}}"{{end -}} }
}

`))

// Non-top level properties must have a custom Unmarshaller to handle
// heterogeneous types
var nonTopLevelTemplate = template.Must(template.New("property").Parse(`// {{.GoTypeName}}List represents a list of {{.GoTypeName}}
type {{.GoTypeName}}List []{{.GoTypeName}}

// UnmarshalJSON sets the object from the provided JSON representation
func (l *{{.GoTypeName}}List) UnmarshalJSON(buf []byte) error {
	// Cloudformation allows a single object when a list of objects is expected
	item := {{.GoTypeName}}{}
	if err := json.Unmarshal(buf, &item); err == nil {
		*l = {{.GoTypeName}}List{item}
		return nil
	}
	list := []{{.GoTypeName}}{}
	err := json.Unmarshal(buf, &list)
	if err == nil {
		*l = {{.GoTypeName}}List(list)
		return nil
	}
	return err
}

`))

// Typical transformations that Golint is going to complain about
// See https://github.com/golang/lint/blob/master/lint.go#L739
var golintTransformations = map[string]string{
	"Id":   "ID",
	"Ids":  "IDs",
	"Ssh":  "SSH",
	"Api":  "API",
	"Url":  "URL",
	"Acl":  "ACL",
	"Ip":   "IP",
	"Tls":  "TLS",
	"Uri":  "URI",
	"Http": "HTTP",
	"Dns":  "DNS",
	"Sql":  "SQL",
	"Ttl":  "TTL",
	"Xss":  "XSS",
	"Cpu":  "CPU",
	"Json": "JSON",
	"Vpc":  "VPC",
}

var typeNameSeparators = regexp.MustCompile(`[:\.]+`)

// Generator turns a CloudFormation resource specification into Go
// property bag types.
type Generator struct {
	schema        CloudFormationSchema
	resourceNames map[string]bool
	out           bytes.Buffer
	err           error
}

// Generate returns the gofmt-ed Go source for every property and resource
// type in schema.
func Generate(schema CloudFormationSchema) ([]byte, error) {
	g := &Generator{
		schema:        schema,
		resourceNames: map[string]bool{},
	}
	for name := range schema.ResourceTypes {
		goName, err := canonicalGoTypename(name, true, nil)
		if err != nil {
			return nil, err
		}
		g.resourceNames[goName] = true
	}

	g.writeHeader()
	g.writePropertyTypesDefinition()
	g.writeResourceTypesDefinition()
	g.writeFactoryFooter()
	if g.err != nil {
		return nil, g.err
	}

	formatted, err := format.Source(g.out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source does not parse: %w", err)
	}
	return formatted, nil
}

// WriteTo generates the source for schema into w.
func WriteTo(schema CloudFormationSchema, w io.Writer) error {
	source, err := Generate(schema)
	if err != nil {
		return err
	}
	_, err = w.Write(source)
	return err
}

func (g *Generator) fail(format string, args ...interface{}) {
	if g.err == nil {
		g.err = fmt.Errorf(format, args...)
	}
}

func (g *Generator) printf(format string, args ...interface{}) {
	fmt.Fprintf(&g.out, format, args...)
}

func golintTransformedIdentifier(identifier string) string {
	var result strings.Builder
	for _, word := range camelCaseWords(identifier) {
		if replacement, ok := golintTransformations[word]; ok {
			word = replacement
		}
		result.WriteString(word)
	}
	return result.String()
}

// camelCaseWords splits s before every upper case letter.
func camelCaseWords(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > start && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	return append(words, s[start:])
}

func canonicalGoTypename(awsName string, isTopLevel bool, resourceNames map[string]bool) (string, error) {
	// If it's Tag, then it's Tag
	if awsName == "Tag" {
		return "Tag", nil
	}
	nameParts := typeNameSeparators.Split(awsName, -1)
	if len(nameParts) <= 1 {
		return "", fmt.Errorf("failed to determine Go typename for AWS name: %s", awsName)
	}
	// If the first element is "AWS", skip it
	if nameParts[0] == "AWS" {
		nameParts = nameParts[1:]
	}
	canonicalName := golintTransformedIdentifier(strings.Join(nameParts, ""))
	// Property types whose name collides with a resource type, such as
	// AWS::EC2::SecurityGroup.Ingress, get a suffix
	if !isTopLevel && resourceNames[canonicalName] {
		canonicalName += "Property"
	}
	return canonicalName, nil
}

func (g *Generator) primitiveGoType(cloudformationType, propertyName string) string {
	// String, Long, Integer, Double, Boolean, Timestamp or Json
	switch cloudformationType {
	case "String":
		return "*StringExpr"
	case "Timestamp":
		return "time.Time"
	case "Boolean":
		return "*BoolExpr"
	case "Integer", "Double", "Long":
		return "*IntegerExpr"
	case "Json", "Map":
		return "interface{}"
	}
	g.fail("can't determine Go primitive type for %s of %s", cloudformationType, propertyName)
	return ""
}

func (g *Generator) complexGoType(cloudFormationPropertyTypeName, propertyName string, property PropertyTypeDefinition) string {
	internalTypeName := cloudFormationPropertyTypeName
	if i := strings.Index(internalTypeName, "."); i >= 0 {
		internalTypeName = internalTypeName[:i]
	}
	internalSubType := property.ItemType
	if internalSubType == "" {
		internalSubType = property.Type.Scalar
	}
	if internalSubType == "" {
		g.fail("failed to find type for entry %s.%s", cloudFormationPropertyTypeName, propertyName)
		return ""
	}
	goName, err := canonicalGoTypename(internalTypeName+"."+internalSubType, false, g.resourceNames)
	if err != nil {
		g.fail("%s.%s: %w", cloudFormationPropertyTypeName, propertyName, err)
	}
	return goName
}

func (g *Generator) fieldGoType(cloudFormationPropertyTypeName, propertyName string, property PropertyTypeDefinition) string {
	switch {
	case property.Type.Scalar == "List":
		switch {
		case property.ItemType == "Tag":
			return "*TagList"
		case property.ItemType == "String" || property.PrimitiveItemType == "String":
			return "*StringListExpr"
		case property.ItemType == "Json" || property.PrimitiveItemType == "Json":
			return "[]interface{}"
		case property.PrimitiveItemType != "":
			return "[]" + g.primitiveGoType(property.PrimitiveItemType, propertyName)
		}
		return "*" + g.complexGoType(cloudFormationPropertyTypeName, propertyName, property) + "List"
	case property.Type.Scalar == "Map":
		return "interface{}"
	case property.Type.Scalar != "":
		return "*" + g.complexGoType(cloudFormationPropertyTypeName, propertyName, property)
	case property.PrimitiveType != "":
		return g.primitiveGoType(property.PrimitiveType, propertyName)
	}
	return "interface{}"
}

func (g *Generator) writePropertyFieldDefinition(cloudFormationPropertyTypeName, propertyName string, property PropertyTypeDefinition) {
	goType := g.fieldGoType(cloudFormationPropertyTypeName, propertyName, property)
	goName := golintTransformedIdentifier(upperFirst(propertyName))

	g.printf("\t// %s docs: %s\n", goName, property.Documentation)
	validationTags := ""
	if property.Required {
		validationTags = ` validate:"required"`
	}
	g.printf("\t%s %s `json:\"%s,omitempty\"%s`\n", goName, goType, propertyName, validationTags)
}

func (g *Generator) writePropertyDefinition(cloudFormationPropertyTypeName string,
	properties map[string]PropertyTypeDefinition,
	documentationURL string,
	attributes []string,
	isTopLevel bool) {

	goTypeName, err := canonicalGoTypename(cloudFormationPropertyTypeName, isTopLevel, g.resourceNames)
	if err != nil {
		g.fail("%w", err)
		return
	}
	modifierText := "resource type"
	if !isTopLevel {
		modifierText = "property type"
	}
	g.printf("// %s represents the %s CloudFormation %s\n", goTypeName, cloudFormationPropertyTypeName, modifierText)
	g.printf("// See %s\n", documentationURL)
	g.printf("type %s struct {\n", goTypeName)
	for _, name := range sortedKeys(properties) {
		g.writePropertyFieldDefinition(cloudFormationPropertyTypeName, name, properties[name])
	}
	g.printf("}\n\n")

	templateParams := struct {
		AWSTypeName string
		GoTypeName  string
		Attributes  []string
	}{
		AWSTypeName: cloudFormationPropertyTypeName,
		GoTypeName:  goTypeName,
		Attributes:  attributes,
	}

	// Property level items should always have Lists created for them
	codeTemplate := topLevelTemplate
	if !isTopLevel {
		codeTemplate = nonTopLevelTemplate
	}
	if err := codeTemplate.Execute(&g.out, templateParams); err != nil {
		g.fail("failed to expand template for %s: %w", cloudFormationPropertyTypeName, err)
	}
}

func (g *Generator) usesTimestamps() bool {
	uses := func(properties map[string]PropertyTypeDefinition) bool {
		for _, p := range properties {
			if p.PrimitiveType == "Timestamp" || p.PrimitiveItemType == "Timestamp" {
				return true
			}
		}
		return false
	}
	for _, p := range g.schema.PropertyTypes {
		if uses(p.Properties) {
			return true
		}
	}
	for _, r := range g.schema.ResourceTypes {
		if uses(r.Properties) {
			return true
		}
	}
	return false
}

func (g *Generator) writeHeader() {
	g.printf("// Code generated by cfn-codegen. DO NOT EDIT.\n\n")
	g.printf("package cloudformation\n\n")
	g.printf("// RESOURCE SPECIFICATION VERSION: %s\n", g.schema.ResourceSpecificationVersion)
	g.printf("import (\n\t\"encoding/json\"\n")
	if g.usesTimestamps() {
		g.printf("\t\"time\"\n")
	}
	g.printf("\n\t_ \"gopkg.in/go-playground/validator.v9\" // Used for struct level validation tags\n)\n\n")
	g.printf(`// ResourceSpecificationVersion is the version of the CloudFormation
// resource specification these types were generated from.
const ResourceSpecificationVersion = "%s"

// CustomResourceProvider allows extend the NewResourceByType factory method
// with their own resource types.
type CustomResourceProvider func(customResourceType string) ResourceProperties

var customResourceProviders []CustomResourceProvider

// RegisterCustomResourceProvider registers a custom resource provider.
// Multiple providers may be registered. The first provider that returns a
// non-nil interface will be used and there is no check for a uniquely
// registered resource type.
func RegisterCustomResourceProvider(provider CustomResourceProvider) {
	customResourceProviders = append(customResourceProviders, provider)
}
`, g.schema.ResourceSpecificationVersion)
}

func (g *Generator) writePropertyTypesDefinition() {
	g.printf(`
//
//  ____                            _   _
// |  _ \ _ __ ___  _ __   ___ _ __| |_(_) ___  ___
// | |_) | '__/ _ \| '_ \ / _ \ '__| __| |/ _ \/ __|
// |  __/| | | (_) | |_) |  __/ |  | |_| |  __/\__ \
// |_|   |_|  \___/| .__/ \___|_|   \__|_|\___||___/
//                 |_|
//

`)
	for _, name := range sortedKeys(g.schema.PropertyTypes) {
		propertyType := g.schema.PropertyTypes[name]
		g.writePropertyDefinition(name, propertyType.Properties, propertyType.Documentation, nil, false)
	}
}

func (g *Generator) writeResourceTypesDefinition() {
	g.printf(`
//
//  ____
// |  _ \ ___  ___  ___  _   _ _ __ ___ ___  ___
// | |_) / _ \/ __|/ _ \| | | | '__/ __/ _ \/ __|
// |  _ <  __/\__ \ (_) | |_| | | | (_|  __/\__ \
// |_| \_\___||___/\___/ \__,_|_|  \___\___||___/
//

`)
	for _, name := range sortedKeys(g.schema.ResourceTypes) {
		resourceType := g.schema.ResourceTypes[name]
		g.writePropertyDefinition(name,
			resourceType.Properties,
			resourceType.Documentation,
			sortedKeys(resourceType.Attributes),
			true)
	}
}

func (g *Generator) writeFactoryFooter() {
	g.printf(`// NewResourceByType returns a new resource object corresponding with the provided type
func NewResourceByType(typeName string) ResourceProperties {
	switch typeName {
`)
	for _, name := range sortedKeys(g.schema.ResourceTypes) {
		goName, _ := canonicalGoTypename(name, true, nil)
		g.printf("\tcase %q:\n\t\treturn &%s{}\n", name, goName)
	}
	g.printf(`	default:
		for _, eachProvider := range customResourceProviders {
			customType := eachProvider(typeName)
			if customType != nil {
				return customType
			}
		}
	}
	return nil
}
`)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
