package commit_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/commit"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/rollback"
)

func newOrchestrator() (*commit.Orchestrator, *observer) {
	obs := &observer{}
	return commit.New(testLogger(), commit.WithObserver(obs)), obs
}

func TestCreate_PushesEveryNPUInOrder(t *testing.T) {
	o, obs := newOrchestrator()
	rec := &recorder{}
	obj := newFake(rec, "vlan", 2, 0, 1)

	require.NoError(t, o.Create(context.Background(), obj, obj.NpuList(), false))

	assert.Equal(t, []string{"vlan.create(0)", "vlan.create(1)", "vlan.create(2)"}, rec.calls)
	assert.Equal(t, 1, obj.payloads, "one payload per call")
	assert.Equal(t, []string{"create:ok"}, obs.commits)
	assert.Zero(t, obs.steps)
}

func TestCreate_FailureRollsBackInReverse(t *testing.T) {
	o, obs := newOrchestrator()
	rec := &recorder{}
	obj := newFake(rec, "vlan", 0, 1, 2).failOn("create", 2)

	err := o.Create(context.Background(), obj, obj.NpuList(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, nas.ErrHardwareFailure)
	assert.ErrorIs(t, err, errInjected)
	assert.Contains(t, err.Error(), "vlan on npu 2")
	assert.Equal(t, []string{
		"vlan.create(0)", "vlan.create(1)", "vlan.create(2)",
		"vlan.delete(1)", "vlan.delete(0)",
	}, rec.calls)
	assert.Equal(t, []string{"create:error"}, obs.commits)
	assert.Equal(t, 2, obs.steps)
}

func TestCreate_SkippedNPUsAreNotRolledBack(t *testing.T) {
	o, _ := newOrchestrator()
	rec := &recorder{}
	obj := newFake(rec, "vlan", 0, 1, 2).failOn("create", 2)
	obj.skip = nas.NewNpuSet(1)

	require.Error(t, o.Create(context.Background(), obj, obj.NpuList(), false))
	assert.Equal(t, []string{"vlan.create(0)", "vlan.create(2)", "vlan.delete(0)"}, rec.calls)
}

func TestCreate_RollingBackContinuesPastFailures(t *testing.T) {
	o, obs := newOrchestrator()
	rec := &recorder{}
	obj := newFake(rec, "vlan", 0, 1, 2).failOn("create", 1)

	require.NoError(t, o.Create(context.Background(), obj, obj.NpuList(), true))
	assert.Equal(t, []string{"vlan.create(0)", "vlan.create(1)", "vlan.create(2)"}, rec.calls)
	assert.Zero(t, obs.steps)
}

func TestCreate_EmptyNpuSetIsNoop(t *testing.T) {
	o, _ := newOrchestrator()
	rec := &recorder{}
	obj := newFake(rec, "vlan")

	require.NoError(t, o.Create(context.Background(), obj, obj.NpuList(), false))
	assert.Empty(t, rec.calls)
	assert.Zero(t, obj.payloads)
}

func TestCreate_RollbackFailureDoesNotMaskOriginalError(t *testing.T) {
	o, obs := newOrchestrator()
	rec := &recorder{}
	obj := newFake(rec, "vlan", 0, 1, 2).failOn("create", 2).failOn("delete", 1)

	err := o.Create(context.Background(), obj, obj.NpuList(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "npu 2")
	assert.Equal(t, []string{
		"vlan.create(0)", "vlan.create(1)", "vlan.create(2)",
		"vlan.delete(1)", "vlan.delete(0)",
	}, rec.calls, "replay carries on after a failed step")
	assert.Equal(t, 2, obs.steps)
	assert.Equal(t, 1, obs.failures)
}

func TestDelete_FailureRecreatesWithRebuiltPayload(t *testing.T) {
	o, obs := newOrchestrator()
	rec := &recorder{}
	obj := newFake(rec, "vlan", 0, 1, 2).failOn("delete", 2)

	err := o.Delete(context.Background(), obj, obj.NpuList(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, nas.ErrHardwareFailure)
	assert.Equal(t, []string{
		"vlan.delete(0)", "vlan.delete(1)", "vlan.delete(2)",
		"vlan.create(1)", "vlan.create(0)",
	}, rec.calls)
	assert.Equal(t, 1, obj.payloads, "payload built once for the whole replay")
	assert.Equal(t, []string{"delete:error"}, obs.commits)
}

func TestDelete_FailureOnFirstNPUHasNothingToUndo(t *testing.T) {
	o, _ := newOrchestrator()
	rec := &recorder{}
	obj := newFake(rec, "vlan", 0, 1, 2).failOn("delete", 0, 1, 2)

	require.Error(t, o.Delete(context.Background(), obj, obj.NpuList(), false))
	assert.Equal(t, []string{"vlan.delete(0)"}, rec.calls)
	assert.Zero(t, obj.payloads)
}

func TestModify_AddedNPUsRolledBackWhenLeafPushFails(t *testing.T) {
	o, _ := newOrchestrator()
	rec := &recorder{}
	oldObj := newFake(rec, "old", 2)
	newObj := newFake(rec, "new", 0, 1, 2).failOn("leaf", 2)
	newObj.dirty = nas.NewAttrSet(5)

	err := o.Modify(context.Background(), newObj, oldObj, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, nas.ErrHardwareFailure)
	assert.Equal(t, []string{
		"new.create(0)", "new.create(1)",
		"new.leaf(2,[5])",
		"new.delete(1)", "new.delete(0)",
	}, rec.calls)
}

func TestModify_RestoresAttrsAndRecreatesRemovedNPUs(t *testing.T) {
	o, _ := newOrchestrator()
	rec := &recorder{}
	oldObj := newFake(rec, "old", 0, 1, 2)
	newObj := newFake(rec, "new", 0, 1).failOn("leaf", 1)
	newObj.dirty = nas.NewAttrSet(1, 2)

	err := o.Modify(context.Background(), newObj, oldObj, false)

	require.Error(t, err)
	assert.Equal(t, []string{
		"old.delete(2)",
		"new.leaf(0,[1])", "new.leaf(1,[1])",
		"old.leaf(0,[1])",
		"old.create(2)",
	}, rec.calls)
	assert.Equal(t, 1, oldObj.payloads)
	assert.Zero(t, newObj.payloads)
}

func TestModify_NonLeafAttrEntries(t *testing.T) {
	tests := []struct {
		name string
		kind rollback.Kind
		want string
	}{
		{name: "created sub-attr undone on new", kind: rollback.CreatedAttr, want: "new.rollback-created(0,[4,100])"},
		{name: "deleted sub-attr restored on old", kind: rollback.DeletedAttr, want: "old.rollback-deleted(0,[4,100])"},
		{name: "modified nested attr restored on old", kind: rollback.ModifiedAttr, want: "old.rollback-modified-from-new(0,[4,100])"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, _ := newOrchestrator()
			rec := &recorder{}
			oldObj := newFake(rec, "old", 0)
			newObj := newFake(rec, "new", 0).failOn("leaf", 0)
			newObj.nonLeaf[4] = true
			newObj.nonLeafKind = tt.kind
			// Attribute 4 sorts before 6, so the non-leaf push lands
			// before the failing leaf push.
			newObj.dirty = nas.NewAttrSet(6, 4)

			require.Error(t, o.Modify(context.Background(), newObj, oldObj, false))
			assert.Equal(t, []string{
				"new.nonleaf(0,[4,100])",
				"new.leaf(0,[6])",
				tt.want,
			}, rec.calls)
		})
	}
}

func TestModify_NonLeafFailureIsClassified(t *testing.T) {
	o, _ := newOrchestrator()
	rec := &recorder{}
	oldObj := newFake(rec, "old", 0, 1)
	newObj := newFake(rec, "new", 0, 1).failOn("nonleaf", 1)
	newObj.nonLeaf[4] = true
	newObj.dirty = nas.NewAttrSet(4)

	err := o.Modify(context.Background(), newObj, oldObj, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, nas.ErrHardwareFailure)
	assert.Equal(t, []string{
		"new.nonleaf(0,[4,100])",
		"new.nonleaf(1,[4,100])",
		"new.rollback-created(0,[4,100])",
	}, rec.calls)
}

func TestModify_NoChangesMakesNoHookCalls(t *testing.T) {
	o, obs := newOrchestrator()
	rec := &recorder{}
	oldObj := newFake(rec, "old", 0, 1)
	newObj := newFake(rec, "new", 0, 1)

	require.NoError(t, o.Modify(context.Background(), newObj, oldObj, false))
	assert.Empty(t, rec.calls)
	assert.Equal(t, []string{"modify:ok"}, obs.commits)
}

func TestModify_RollingBackNeverUndoes(t *testing.T) {
	o, obs := newOrchestrator()
	rec := &recorder{}
	oldObj := newFake(rec, "old", 1)
	newObj := newFake(rec, "new", 0, 1).failOn("create", 0).failOn("leaf", 1)
	newObj.dirty = nas.NewAttrSet(3)

	require.NoError(t, o.Modify(context.Background(), newObj, oldObj, true))
	assert.Equal(t, []string{"new.create(0)", "new.leaf(1,[3])"}, rec.calls)
	assert.Zero(t, obs.steps)
}

func TestUnclassifiedCodesArePreserved(t *testing.T) {
	o, _ := newOrchestrator()
	rec := &recorder{}
	obj := newFake(rec, "vlan", 0)
	unsupported := &unsupportedCreate{fakeObject: obj}

	err := o.Create(context.Background(), unsupported, obj.NpuList(), false)
	assert.ErrorIs(t, err, nas.ErrUnsupported)
}

type unsupportedCreate struct {
	*fakeObject
}

func (u *unsupportedCreate) PushCreate(context.Context, nas.NpuID, any) (bool, error) {
	return false, nas.Errorf(nas.CodeUnsupported, "PushCreate", "not implemented")
}

func TestTransactionIDIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{CLISpec: "debug", Output: &buf})
	require.NoError(t, err)

	o := commit.New(logger)
	rec := &recorder{}
	obj := newFake(rec, "vlan", 0)

	ctx := logging.ContextWithTxnID(context.Background(), "txn-42")
	require.NoError(t, o.Create(ctx, obj, obj.NpuList(), false))
	assert.Contains(t, buf.String(), "txn=txn-42")
	assert.Contains(t, buf.String(), "component=commit")

	buf.Reset()
	require.NoError(t, o.Delete(context.Background(), obj, obj.NpuList(), false))
	assert.Regexp(t, `txn=[0-9a-f-]{36}`, buf.String())
}
