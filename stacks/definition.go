package stacks

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"
	cf "github.com/zalando-incubator/cfn-pipes/internal/aws/cloudformation"
)

// Kind identifies which template builder produces a stack.
type Kind string

const (
	KindPipe         Kind = "pipe"
	KindMediaPackage Kind = "mediapackage"
	KindMSK          Kind = "msk"
)

// Definition is a named, deployable CloudFormation stack.
type Definition interface {
	Name() string
	Kind() Kind
	Template() (*cf.Template, error)
}

// Synthesize builds and validates the template of def and renders it as
// indented JSON.
func Synthesize(def Definition) ([]byte, error) {
	template, err := def.Template()
	if err != nil {
		return nil, fmt.Errorf("failed to build template for stack %q: %w", def.Name(), err)
	}
	if err := template.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template for stack %q: %w", def.Name(), err)
	}
	buf, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template for stack %q: %w", def.Name(), err)
	}
	return buf, nil
}

// SynthesizeYAML is Synthesize rendering YAML instead of JSON.
func SynthesizeYAML(def Definition) ([]byte, error) {
	buf, err := Synthesize(def)
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(buf)
}

// TemplateHash computes the hash used to detect template drift between the
// desired and the deployed version of a stack.
func TemplateHash(body []byte) string {
	hash := sha256.New()
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}

// stackTags merges the global tags with the stack tags, the latter taking
// precedence.
func stackTags(global, local map[string]string) map[string]string {
	if len(global) == 0 && len(local) == 0 {
		return nil
	}
	tags := make(map[string]string, len(global)+len(local))
	for k, v := range global {
		tags[k] = v
	}
	for k, v := range local {
		tags[k] = v
	}
	return tags
}

func stringList(values []string) *cf.StringListExpr {
	if len(values) == 0 {
		return nil
	}
	items := make([]cf.Stringable, 0, len(values))
	for _, v := range values {
		items = append(items, cf.String(v))
	}
	return cf.StringList(items...)
}

// optionalInteger returns nil for zero so the property is omitted.
func optionalInteger(v int64) *cf.IntegerExpr {
	if v == 0 {
		return nil
	}
	return cf.Integer(v)
}

func optionalString(v string) *cf.StringExpr {
	if v == "" {
		return nil
	}
	return cf.String(v)
}
