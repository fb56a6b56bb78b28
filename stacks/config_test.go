package stacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/stacks.yaml")
	require.NoError(t, err)

	assert.Equal(t, "orders-controller", cfg.ControllerID)
	require.Len(t, cfg.Stacks, 3)
	assert.Equal(t, KindPipe, cfg.Stacks[0].Kind)
	assert.Equal(t, int64(5), cfg.Stacks[0].Pipe.Queue.DeadLetter.MaxReceiveCount)
	assert.NotNil(t, cfg.Stacks[0].Pipe.Consumer)
	assert.Equal(t, "PASSTHROUGH", cfg.Stacks[1].MediaPackage.AdMarkers)
	assert.Equal(t, []string{"subnet-a", "subnet-b"}, cfg.Stacks[2].MSK.SubnetIDs)

	defs, err := FromConfig(cfg)
	require.NoError(t, err)
	require.Len(t, defs, 3)
	for i, kind := range []Kind{KindPipe, KindMediaPackage, KindMSK} {
		assert.Equal(t, kind, defs[i].Kind())
		assert.Equal(t, cfg.Stacks[i].Name, defs[i].Name())
	}

	pipe := defs[0].(*PipeStack)
	assert.Equal(t, map[string]string{"team": "orders"}, pipe.tags)
	mediaPackage := defs[1].(*MediaPackageStack)
	assert.Equal(t, map[string]string{"team": "payments"}, mediaPackage.tags)

	def, ok := Lookup(defs, "events")
	assert.True(t, ok)
	assert.Equal(t, KindMSK, def.Kind())
	_, ok = Lookup(defs, "missing")
	assert.False(t, ok)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"stacks": [{"name": "a", "kind": "pipe", "pipe": {}}]}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultControllerID, cfg.ControllerID)
}

func TestParseConfigErrors(t *testing.T) {
	for _, test := range []struct {
		name   string
		config string
		err    string
	}{
		{
			name:   "malformed",
			config: "stacks: [",
			err:    "failed to parse config",
		},
		{
			name:   "no stacks",
			config: "controllerID: x",
			err:    "invalid config",
		},
		{
			name:   "unknown kind",
			config: "stacks: [{name: a, kind: lambda}]",
			err:    "oneof",
		},
		{
			name:   "invalid name",
			config: "stacks: [{name: 1a_b, kind: pipe, pipe: {}}]",
			err:    "stackname",
		},
		{
			name:   "duplicate name",
			config: "stacks: [{name: a, kind: pipe, pipe: {}}, {name: a, kind: pipe, pipe: {}}]",
			err:    `duplicate stack name "a"`,
		},
		{
			name:   "missing section",
			config: "stacks: [{name: a, kind: mediapackage}]",
			err:    `stack "a" of kind mediapackage has no mediaPackage section`,
		},
		{
			name:   "invalid desired state",
			config: "stacks: [{name: a, kind: pipe, pipe: {desiredState: PAUSED}}]",
			err:    "desiredState",
		},
		{
			name:   "invalid batch size",
			config: "stacks: [{name: a, kind: pipe, pipe: {batchSize: 20000}}]",
			err:    "batchSize",
		},
		{
			name:   "incomplete authorization",
			config: "stacks: [{name: a, kind: mediapackage, mediaPackage: {authorization: {secretArn: x}, hls: {}}}]",
			err:    "roleArn",
		},
		{
			name:   "single subnet",
			config: "stacks: [{name: a, kind: msk, msk: {mode: serverless, subnetIDs: [s]}}]",
			err:    "subnetIDs",
		},
		{
			name:   "relative parameter prefix",
			config: "stacks: [{name: a, kind: msk, msk: {mode: serverless, subnetIDs: [s, t], parameterPrefix: msk}}]",
			err:    "parameterPrefix",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(test.config))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.err)
		})
	}
}

func TestStackTags(t *testing.T) {
	assert.Nil(t, stackTags(nil, nil))
	assert.Equal(t,
		map[string]string{"a": "1", "b": "3", "c": "4"},
		stackTags(map[string]string{"a": "1", "b": "2"}, map[string]string{"b": "3", "c": "4"}),
	)
}
