package main

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zalando-incubator/cfn-pipes/aws"
)

func TestParseDefaults(t *testing.T) {
	opts := &options{}
	command, err := newApp(opts).Parse([]string{"deploy"})
	require.NoError(t, err)

	assert.Equal(t, "deploy", command)
	assert.Equal(t, "stacks.yaml", opts.configFile)
	assert.Equal(t, "info", opts.logLevel)
	assert.Equal(t, "text", opts.logFormat)
	assert.Equal(t, aws.DefaultCreationTimeout, opts.creationTimeout)
	assert.Equal(t, aws.DefaultPollInterval, opts.pollInterval)
	assert.False(t, opts.noWait)
	assert.Empty(t, opts.stackNames)
}

func TestParseCommands(t *testing.T) {
	for _, ti := range []struct {
		name  string
		args  []string
		check func(*testing.T, *options)
	}{
		{
			name: "synth",
			args: []string{"synth", "-o", "out", "--format", "yaml", "orders", "live"},
			check: func(t *testing.T, o *options) {
				assert.Equal(t, "out", o.synthOutput)
				assert.Equal(t, "yaml", o.synthFormat)
				assert.Equal(t, []string{"orders", "live"}, o.stackNames)
			},
		},
		{
			name: "controller",
			args: []string{"--stack-prefix", "prod", "controller", "--interval", "30s", "--once", "--delete-orphans"},
			check: func(t *testing.T, o *options) {
				assert.Equal(t, "prod", o.stackPrefix)
				assert.Equal(t, 30*time.Second, o.controllerInterval)
				assert.True(t, o.once)
				assert.True(t, o.deleteOrphans)
				assert.Equal(t, ":7979", o.metricsAddress)
			},
		},
		{
			name: "smoke",
			args: []string{"smoke", "orders", "--count", "3"},
			check: func(t *testing.T, o *options) {
				assert.Equal(t, "orders", o.smokeStack)
				assert.Equal(t, 3, o.smokeCount)
			},
		},
	} {
		t.Run(ti.name, func(t *testing.T) {
			opts := &options{}
			command, err := newApp(opts).Parse(ti.args)
			require.NoError(t, err)
			assert.Equal(t, ti.name, command)
			ti.check(t, opts)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, args := range [][]string{
		{"delete"},
		{"smoke"},
		{"synth", "--format", "xml"},
		{"--log-format", "pretty", "list"},
		{"unknown"},
	} {
		_, err := newApp(&options{}).Parse(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	require.NoError(t, setupLogging(&options{logLevel: "debug", logFormat: "json"}))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	require.NoError(t, setupLogging(&options{logLevel: "warn", logFormat: "text"}))
	assert.Equal(t, log.WarnLevel, log.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
}
