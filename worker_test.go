package main

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfnaws "github.com/zalando-incubator/cfn-pipes/aws"
	"github.com/zalando-incubator/cfn-pipes/aws/fake"
	"github.com/zalando-incubator/cfn-pipes/stacks"
)

const testControllerID = "test-controller"

func testDesired(t *testing.T) []*desiredStack {
	t.Helper()
	desired, err := renderAll([]stacks.Definition{
		stacks.NewPipeStack("orders", stacks.PipeConfig{}, nil),
		stacks.NewMediaPackageStack("live", stacks.MediaPackageConfig{HLS: &stacks.PackagingConfig{}}, nil),
	}, map[string]string{"team": "payments"})
	require.NoError(t, err)
	return desired
}

func managedStack(name, kind, hash string) fake.TestStack {
	return fake.TestStack{
		Name:   name,
		Status: cftypes.StackStatusCreateComplete,
		Tags: fake.Tags{
			"cfn-pipes:managed-by":    testControllerID,
			"cfn-pipes:template-hash": hash,
			"cfn-pipes:kind":          kind,
		},
	}
}

func testAdapter(cf *fake.CFClient) *cfnaws.Adapter {
	return cfnaws.NewAdapterFromClients(cf, &fake.SQSClient{}, &fake.PipesClient{}, testControllerID).
		WithPollInterval(time.Millisecond).
		WithCreationTimeout(time.Second)
}

func TestManagedItemStatus(t *testing.T) {
	desired := testDesired(t)[0]
	current := &cfnaws.Stack{Tags: map[string]string{"cfn-pipes:template-hash": desired.spec.TemplateHash}}
	stale := &cfnaws.Stack{Tags: map[string]string{"cfn-pipes:template-hash": "old"}}

	for _, ti := range []struct {
		name string
		item *managedItem
		want stackStatus
	}{
		{"orphan", &managedItem{stack: stale}, orphan},
		{"missing", &managedItem{desired: desired}, missing},
		{"outdated", &managedItem{desired: desired, stack: stale}, outdated},
		{"ready", &managedItem{desired: desired, stack: current}, ready},
	} {
		t.Run(ti.name, func(t *testing.T) {
			assert.Equal(t, ti.want, ti.item.Status())
			assert.Equal(t, ti.name, ti.item.Status().String())
		})
	}
}

func TestBuildManagedModel(t *testing.T) {
	adapter := testAdapter(&fake.CFClient{}).WithStackPrefix("prod")
	model := buildManagedModel(adapter, testDesired(t), []*cfnaws.Stack{
		{Name: "prod-orders"},
		{Name: "prod-gone"},
	})

	require.Len(t, model, 3)
	assert.Equal(t, []string{"prod-gone", "prod-live", "prod-orders"}, sortedNames(model))
	assert.Equal(t, orphan, model["prod-gone"].Status())
	assert.Equal(t, missing, model["prod-live"].Status())
	assert.Equal(t, outdated, model["prod-orders"].Status())
}

func TestDoWork(t *testing.T) {
	desired := testDesired(t)
	for _, ti := range []struct {
		name          string
		deleteOrphans bool
		wantDeleted   []string
	}{
		{name: "keep-orphans"},
		{name: "delete-orphans", deleteOrphans: true, wantDeleted: []string{"gone"}},
	} {
		t.Run(ti.name, func(t *testing.T) {
			cf := &fake.CFClient{Outputs: fake.CFOutputs{
				DescribeStacks: fake.R(fake.MockDescribeStacksOutput(
					managedStack("orders", "pipe", "old"),
					managedStack("gone", "msk", "whatever"),
				), nil),
				CreateStack: fake.R(fake.MockCSOutput("live-id"), nil),
				UpdateStack: fake.R(fake.MockUSOutput("orders-id"), nil),
			}}
			m := newMetrics()
			w := &worker{adapter: testAdapter(cf), desired: desired, metrics: m, deleteOrphans: ti.deleteOrphans}

			require.NoError(t, w.doWork(context.Background()))

			require.NotNil(t, cf.LastCreate)
			assert.Equal(t, "live", aws.ToString(cf.LastCreate.StackName))
			require.NotNil(t, cf.LastUpdate)
			assert.Equal(t, "orders", aws.ToString(cf.LastUpdate.StackName))
			assert.Equal(t, ti.wantDeleted, cf.Deleted)

			assert.Equal(t, 1.0, testutil.ToFloat64(m.changesTotal.WithLabelValues("mediapackage", "create")))
			assert.Equal(t, 1.0, testutil.ToFloat64(m.changesTotal.WithLabelValues("pipe", "update")))
			assert.Equal(t, 2.0, testutil.ToFloat64(m.stacksTotal))
			assert.Equal(t, 2.0, testutil.ToFloat64(m.desiredStacksTotal))
			assert.Equal(t, 0.0, testutil.ToFloat64(m.problemsTotal))
			assert.NotZero(t, testutil.ToFloat64(m.lastSyncTimestamp))
		})
	}
}

func TestDoWorkReady(t *testing.T) {
	desired := testDesired(t)
	cf := &fake.CFClient{Outputs: fake.CFOutputs{
		DescribeStacks: fake.R(fake.MockDescribeStacksOutput(
			managedStack("orders", "pipe", desired[0].spec.TemplateHash),
			managedStack("live", "mediapackage", desired[1].spec.TemplateHash),
		), nil),
	}}
	w := &worker{adapter: testAdapter(cf), desired: desired, metrics: newMetrics()}

	require.NoError(t, w.doWork(context.Background()))
	assert.Nil(t, cf.LastCreate)
	assert.Nil(t, cf.LastUpdate)
}

func TestDoWorkInProgressIsBusy(t *testing.T) {
	desired := testDesired(t)
	busy := managedStack("orders", "pipe", "old")
	busy.Status = cftypes.StackStatusUpdateInProgress
	cf := &fake.CFClient{Outputs: fake.CFOutputs{
		DescribeStacks: fake.R(fake.MockDescribeStacksOutput(
			busy,
			managedStack("live", "mediapackage", desired[1].spec.TemplateHash),
		), nil),
		CreateStack: fake.R(nil, fake.ErrAlreadyExists),
	}}
	m := newMetrics()
	w := &worker{adapter: testAdapter(cf), desired: desired, metrics: m}

	require.NoError(t, w.doWork(context.Background()))
	require.NotNil(t, cf.LastCreate)
	assert.Equal(t, "orders", aws.ToString(cf.LastCreate.StackName))
	assert.Nil(t, cf.LastUpdate)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stacksTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.changesTotal.WithLabelValues("pipe", "create")))
}

func TestDoWorkProblems(t *testing.T) {
	cf := &fake.CFClient{Outputs: fake.CFOutputs{
		DescribeStacks: fake.R(fake.MockDescribeStacksOutput(managedStack("orders", "pipe", "old")), nil),
		CreateStack:    fake.R(nil, fake.ErrDummy),
		UpdateStack:    fake.R(nil, fake.ErrNoUpdates),
	}}
	m := newMetrics()
	w := &worker{adapter: testAdapter(cf), desired: testDesired(t), metrics: m}

	err := w.doWork(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fake.ErrDummy)
	assert.Contains(t, err.Error(), `failed to create stack "live"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.problemsTotal))
	assert.Zero(t, testutil.ToFloat64(m.lastSyncTimestamp))
}

func TestDoWorkListError(t *testing.T) {
	cf := &fake.CFClient{Outputs: fake.CFOutputs{DescribeStacks: fake.R(nil, fake.ErrDummy)}}
	w := &worker{adapter: testAdapter(cf), desired: testDesired(t), metrics: newMetrics()}
	assert.Error(t, w.doWork(context.Background()))
}

func TestCreateStackAlreadyExists(t *testing.T) {
	cf := &fake.CFClient{Outputs: fake.CFOutputs{
		CreateStack: fake.R(nil, fake.ErrAlreadyExists),
		DescribeStacks: fake.R(fake.MockDescribeStacksOutput(fake.TestStack{
			Name:   "live",
			Status: cftypes.StackStatusCreateInProgress,
		}), nil),
	}}
	m := newMetrics()
	w := &worker{adapter: testAdapter(cf), metrics: m}
	item := &managedItem{desired: testDesired(t)[1]}

	require.NoError(t, w.createStack(context.Background(), "live", item))
	require.NotNil(t, item.stack)
	assert.Equal(t, "CREATE_IN_PROGRESS", item.stack.Status)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.changesTotal.WithLabelValues("mediapackage", "create")))
}

func TestCreateStackAlreadyExistsLookupFails(t *testing.T) {
	cf := &fake.CFClient{Outputs: fake.CFOutputs{
		CreateStack:    fake.R(nil, fake.ErrAlreadyExists),
		DescribeStacks: fake.R(nil, fake.ErrDummy),
	}}
	w := &worker{adapter: testAdapter(cf), metrics: newMetrics()}
	item := &managedItem{desired: testDesired(t)[1]}

	err := w.createStack(context.Background(), "live", item)
	require.Error(t, err)
	assert.True(t, cfnaws.IsAlreadyExistsError(err))
	assert.Contains(t, err.Error(), fake.ErrDummy.Error())
	assert.Nil(t, item.stack)
}

func TestCreateStackWaits(t *testing.T) {
	cf := &fake.CFClient{Outputs: fake.CFOutputs{
		CreateStack: fake.R(fake.MockCSOutput("live"), nil),
		DescribeStacks: fake.R(fake.MockDescribeStacksOutput(fake.TestStack{
			Name:   "live",
			Status: cftypes.StackStatusCreateFailed,
		}), nil),
	}}
	w := &worker{adapter: testAdapter(cf), metrics: newMetrics(), wait: true}

	err := w.createStack(context.Background(), "live", &managedItem{desired: testDesired(t)[1]})
	assert.Error(t, err)
}

func TestStartPollingStopsWithContext(t *testing.T) {
	cf := &fake.CFClient{Outputs: fake.CFOutputs{DescribeStacks: fake.R(fake.MockDescribeStacksOutput(), nil)}}
	w := &worker{adapter: testAdapter(cf), metrics: newMetrics()}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		w.startPolling(ctx, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("polling did not stop")
	}
	assert.GreaterOrEqual(t, cf.DescribeStacksCallsCount, 1)
}
