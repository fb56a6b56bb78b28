package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/sirupsen/logrus"

	"github.com/zalando-incubator/cfn-pipes/aws"
	"github.com/zalando-incubator/cfn-pipes/stacks"
)

var version = "dev"

type options struct {
	configFile            string
	logLevel              string
	logFormat             string
	region                string
	controllerID          string
	stackPrefix           string
	creationTimeout       time.Duration
	pollInterval          time.Duration
	terminationProtection bool

	synthOutput string
	synthFormat string
	stackNames  []string
	noWait      bool

	smokeStack   string
	smokeMessage string
	smokeCount   int

	controllerInterval time.Duration
	once               bool
	deleteOrphans      bool
	metricsAddress     string
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("cfn-pipes", "Deploys queue to event bus pipes and their companion stacks with CloudFormation.")
	app.Version(version)
	app.DefaultEnvars()

	app.Flag("config", "Stack configuration file (YAML or JSON).").
		Short('c').Default("stacks.yaml").StringVar(&opts.configFile)
	app.Flag("log-level", "Log level.").
		Default(log.InfoLevel.String()).EnumVar(&opts.logLevel, "panic", "fatal", "error", "warn", "warning", "info", "debug", "trace")
	app.Flag("log-format", "Log format.").
		Default("text").EnumVar(&opts.logFormat, "text", "json")
	app.Flag("aws-region", "AWS region, the region of the environment when empty.").
		Envar("AWS_REGION").StringVar(&opts.region)
	app.Flag("controller-id", "ID tagged on every managed stack, overrides the configuration file.").
		StringVar(&opts.controllerID)
	app.Flag("stack-prefix", "Prefix of every CloudFormation stack name.").
		StringVar(&opts.stackPrefix)
	app.Flag("creation-timeout", "Time allowed for a stack operation.").
		Default(aws.DefaultCreationTimeout.String()).DurationVar(&opts.creationTimeout)
	app.Flag("poll-interval", "Interval between state checks while waiting for a stack or pipe.").
		Default(aws.DefaultPollInterval.String()).DurationVar(&opts.pollInterval)
	app.Flag("termination-protection", "Enable termination protection on managed stacks.").
		BoolVar(&opts.terminationProtection)

	synth := app.Command("synth", "Write the CloudFormation templates.")
	synth.Flag("output", "Output directory, stdout when empty.").Short('o').StringVar(&opts.synthOutput)
	synth.Flag("format", "Template format.").Default("json").EnumVar(&opts.synthFormat, "json", "yaml")
	synth.Arg("stacks", "Stacks to synthesize, all when omitted.").StringsVar(&opts.stackNames)

	validate := app.Command("validate", "Build and validate the templates.")
	validate.Arg("stacks", "Stacks to validate, all when omitted.").StringsVar(&opts.stackNames)

	deploy := app.Command("deploy", "Create or update the stacks.")
	deploy.Flag("no-wait", "Do not wait for the stack operations to finish.").BoolVar(&opts.noWait)
	deploy.Arg("stacks", "Stacks to deploy, all when omitted.").StringsVar(&opts.stackNames)

	del := app.Command("delete", "Delete the stacks.")
	del.Flag("no-wait", "Do not wait for the stack operations to finish.").BoolVar(&opts.noWait)
	del.Arg("stacks", "Stacks to delete.").Required().StringsVar(&opts.stackNames)

	status := app.Command("status", "Show the reconciliation status of the stacks.")
	status.Arg("stacks", "Stacks to show, all when omitted.").StringsVar(&opts.stackNames)

	app.Command("list", "List all stacks managed by the controller ID.")

	smoke := app.Command("smoke", "Send test messages through a deployed pipe.")
	smoke.Arg("stack", "Pipe stack to test.").Required().StringVar(&opts.smokeStack)
	smoke.Flag("message", "Message body.").Default(`{"message":"hello from cfn-pipes"}`).StringVar(&opts.smokeMessage)
	smoke.Flag("count", "Number of messages.").Default("1").IntVar(&opts.smokeCount)

	controller := app.Command("controller", "Continuously reconcile the configured stacks.")
	controller.Flag("interval", "Reconciliation interval.").Default("1m").DurationVar(&opts.controllerInterval)
	controller.Flag("once", "Run a single reconciliation and exit.").BoolVar(&opts.once)
	controller.Flag("delete-orphans", "Delete managed stacks that are no longer configured.").BoolVar(&opts.deleteOrphans)
	controller.Flag("metrics-address", "Address of the Prometheus metrics endpoint.").Default(":7979").StringVar(&opts.metricsAddress)

	return app
}

func setupLogging(opts *options) error {
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if opts.logFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func newAdapter(ctx context.Context, opts *options, cfg *stacks.Config) (*aws.Adapter, error) {
	controllerID := cfg.ControllerID
	if opts.controllerID != "" {
		controllerID = opts.controllerID
	}
	adapter, err := aws.NewAdapter(ctx, opts.region, controllerID)
	if err != nil {
		return nil, err
	}
	return adapter.
		WithCreationTimeout(opts.creationTimeout).
		WithPollInterval(opts.pollInterval).
		WithStackTerminationProtection(opts.terminationProtection).
		WithStackPrefix(opts.stackPrefix), nil
}

func run(ctx context.Context, command string, opts *options) error {
	cfg, err := stacks.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	defs, err := stacks.FromConfig(cfg)
	if err != nil {
		return err
	}
	selected, err := selectDefinitions(defs, opts.stackNames)
	if err != nil {
		return err
	}

	switch command {
	case "synth":
		return synth(os.Stdout, selected, opts.synthOutput, opts.synthFormat)
	case "validate":
		return validate(os.Stdout, selected)
	}

	adapter, err := newAdapter(ctx, opts, cfg)
	if err != nil {
		return err
	}
	log.Debugf("managing stacks of controller %s", adapter.ControllerID())

	switch command {
	case "deploy":
		desired, err := renderAll(selected, cfg.Tags)
		if err != nil {
			return err
		}
		return deploy(ctx, &worker{adapter: adapter, desired: desired, metrics: newMetrics(), wait: !opts.noWait})
	case "delete":
		return remove(ctx, adapter, selected, !opts.noWait)
	case "status":
		desired, err := renderAll(selected, cfg.Tags)
		if err != nil {
			return err
		}
		return status(ctx, os.Stdout, adapter, desired)
	case "list":
		return list(ctx, os.Stdout, adapter)
	case "smoke":
		def, ok := stacks.Lookup(defs, opts.smokeStack)
		if !ok {
			return fmt.Errorf("unknown stack %q", opts.smokeStack)
		}
		return smoke(ctx, os.Stdout, adapter, def, opts.smokeMessage, opts.smokeCount)
	case "controller":
		desired, err := renderAll(defs, cfg.Tags)
		if err != nil {
			return err
		}
		m := newMetrics()
		w := &worker{adapter: adapter, desired: desired, metrics: m, deleteOrphans: opts.deleteOrphans}
		if opts.once {
			w.wait = true
			return w.doWork(ctx)
		}
		go m.serve(opts.metricsAddress)
		log.Infof("reconciling %d stacks every %s", len(desired), opts.controllerInterval)
		w.startPolling(ctx, opts.controllerInterval)
		return nil
	}
	return fmt.Errorf("unknown command %q", command)
}

func main() {
	opts := &options{}
	app := newApp(opts)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := setupLogging(opts); err != nil {
		app.Fatalf("%v", err)
	}
	if err := run(context.Background(), command, opts); err != nil {
		log.Fatal(err)
	}
}
