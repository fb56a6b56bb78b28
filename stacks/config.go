package stacks

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/ghodss/yaml"
	"gopkg.in/go-playground/validator.v9"
)

// DefaultControllerID is used to tag stacks when the configuration does not
// name a controller.
const DefaultControllerID = "cfn-pipes"

var stackNamePattern = regexp.MustCompile(`^[A-Za-z][-A-Za-z0-9]{0,127}$`)

// Config is the file format declaring the desired stacks.
type Config struct {
	ControllerID string            `json:"controllerID,omitempty"`
	Tags         map[string]string `json:"tags,omitempty"`
	Stacks       []StackConfig     `json:"stacks" validate:"required,min=1,dive"`
}

// StackConfig declares a single stack. Exactly the section matching Kind
// is used.
type StackConfig struct {
	Name         string              `json:"name" validate:"required,stackname"`
	Kind         Kind                `json:"kind" validate:"required,oneof=pipe mediapackage msk"`
	Tags         map[string]string   `json:"tags,omitempty"`
	Pipe         *PipeConfig         `json:"pipe,omitempty"`
	MediaPackage *MediaPackageConfig `json:"mediaPackage,omitempty"`
	MSK          *MSKConfig          `json:"msk,omitempty"`
}

func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("stackname", func(fl validator.FieldLevel) bool {
		return stackNamePattern.MatchString(fl.Field().String())
	})
	return v
}

// LoadConfig reads and validates a YAML or JSON stack configuration file.
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(buf)
}

// ParseConfig parses and validates a YAML or JSON stack configuration.
func ParseConfig(buf []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ControllerID == "" {
		cfg.ControllerID = DefaultControllerID
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints, the uniqueness of stack names and that
// every stack carries the section for its kind.
func (c *Config) Validate() error {
	if err := newConfigValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	seen := make(map[string]bool, len(c.Stacks))
	for _, s := range c.Stacks {
		if seen[s.Name] {
			return fmt.Errorf("invalid config: duplicate stack name %q", s.Name)
		}
		seen[s.Name] = true

		var missing bool
		switch s.Kind {
		case KindPipe:
			missing = s.Pipe == nil
		case KindMediaPackage:
			missing = s.MediaPackage == nil
		case KindMSK:
			missing = s.MSK == nil
		}
		if missing {
			return fmt.Errorf("invalid config: stack %q of kind %s has no %s section", s.Name, s.Kind, sectionName(s.Kind))
		}
	}
	return nil
}

func sectionName(kind Kind) string {
	switch kind {
	case KindMediaPackage:
		return "mediaPackage"
	default:
		return string(kind)
	}
}

// FromConfig builds the stack definitions declared by cfg, in file order.
func FromConfig(cfg *Config) ([]Definition, error) {
	defs := make([]Definition, 0, len(cfg.Stacks))
	for _, s := range cfg.Stacks {
		tags := stackTags(cfg.Tags, s.Tags)
		switch s.Kind {
		case KindPipe:
			defs = append(defs, NewPipeStack(s.Name, *s.Pipe, tags))
		case KindMediaPackage:
			defs = append(defs, NewMediaPackageStack(s.Name, *s.MediaPackage, tags))
		case KindMSK:
			defs = append(defs, NewMSKStack(s.Name, *s.MSK, tags))
		default:
			return nil, fmt.Errorf("stack %q has unknown kind %q", s.Name, s.Kind)
		}
	}
	return defs, nil
}

// Lookup returns the definition named name.
func Lookup(defs []Definition, name string) (Definition, bool) {
	for _, d := range defs {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}
