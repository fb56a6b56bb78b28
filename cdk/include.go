package cdk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/cloudformationinclude"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/zalando-incubator/cfn-pipes/stacks"
)

// NewIncludedStack writes the template of def to templateDir and imports
// it into a new stack.
func NewIncludedStack(scope constructs.Construct, def stacks.Definition, templateDir string, props *awscdk.StackProps) (awscdk.Stack, error) {
	body, err := stacks.Synthesize(def)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(templateDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create template directory: %w", err)
	}
	path := filepath.Join(templateDir, def.Name()+".template.json")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write template of stack %q: %w", def.Name(), err)
	}

	stack := awscdk.NewStack(scope, jsii.String(def.Name()), props)
	cloudformationinclude.NewCfnInclude(stack, jsii.String("Template"), &cloudformationinclude.CfnIncludeProps{
		TemplateFile: jsii.String(path),
	})
	return stack, nil
}
