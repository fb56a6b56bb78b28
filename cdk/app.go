package cdk

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	log "github.com/sirupsen/logrus"

	"github.com/zalando-incubator/cfn-pipes/stacks"
)

// AppProps configures NewApp.
type AppProps struct {
	// Definitions are the stacks of the app.
	Definitions []stacks.Definition
	// Env is the target environment. Nil gives environment agnostic
	// stacks.
	Env *awscdk.Environment
	// TemplateDir receives the templates imported with CfnInclude.
	TemplateDir string
	// AppProps is passed to awscdk.NewApp.
	AppProps *awscdk.AppProps
}

// NewApp returns a CDK app with one stack per definition.
func NewApp(props *AppProps) (awscdk.App, error) {
	app := awscdk.NewApp(props.AppProps)
	if _, err := AddStacks(app, props); err != nil {
		return nil, err
	}
	return app, nil
}

// AddStacks adds one stack per definition to app and returns them by
// definition name.
func AddStacks(app awscdk.App, props *AppProps) (map[string]awscdk.Stack, error) {
	result := make(map[string]awscdk.Stack, len(props.Definitions))
	for _, def := range props.Definitions {
		stackProps := &awscdk.StackProps{
			Env:         props.Env,
			Description: jsii.String(fmt.Sprintf("%s stack %s", def.Kind(), def.Name())),
		}

		var stack awscdk.Stack
		switch d := def.(type) {
		case *stacks.PipeStack:
			stack = NewPipeStack(app, d, stackProps)
		default:
			var err error
			stack, err = NewIncludedStack(app, def, props.TemplateDir, stackProps)
			if err != nil {
				return nil, err
			}
		}
		log.WithFields(log.Fields{"stack": def.Name(), "kind": def.Kind()}).Debug("added CDK stack")
		result[def.Name()] = stack
	}
	return result, nil
}
