// This program synthesizes the configured stacks as a CDK app. Run it
// through the CDK CLI with `cdk synth --app "go run ./cmd/cdk-app"`.
package main

import (
	"os"
	"path/filepath"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	log "github.com/sirupsen/logrus"

	"github.com/zalando-incubator/cfn-pipes/cdk"
	"github.com/zalando-incubator/cfn-pipes/stacks"
)

func main() {
	defer jsii.Close()

	configFile := os.Getenv("CFN_PIPES_CONFIG")
	if configFile == "" {
		configFile = "stacks.yaml"
	}
	cfg, err := stacks.LoadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}
	defs, err := stacks.FromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	outdir := os.Getenv("CDK_OUTDIR")
	if outdir == "" {
		outdir = "cdk.out"
	}
	app, err := cdk.NewApp(&cdk.AppProps{
		Definitions: defs,
		Env:         env(),
		TemplateDir: filepath.Join(outdir, "included"),
	})
	if err != nil {
		log.Fatal(err)
	}
	app.Synth(nil)
}

// env pins the stacks to the account and region of the CDK CLI when
// known. Otherwise the stacks are environment agnostic.
func env() *awscdk.Environment {
	account, region := os.Getenv("CDK_DEFAULT_ACCOUNT"), os.Getenv("CDK_DEFAULT_REGION")
	if account == "" || region == "" {
		return nil
	}
	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}
}
