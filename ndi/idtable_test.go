package ndi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ndi"
)

func TestIDTable(t *testing.T) {
	var tbl ndi.IDTable
	_, ok := tbl.Get(0)
	assert.False(t, ok)

	tbl.Set(2, 20)
	tbl.Set(0, 10)
	tbl.Set(1, 11)
	tbl.Set(1, 12)

	id, ok := tbl.Get(1)
	require.True(t, ok)
	assert.Equal(t, nas.NdiObjID(12), id)
	assert.Equal(t, []nas.NpuID{0, 1, 2}, tbl.NPUs())

	clone := tbl.Clone()
	tbl.Erase(0)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 3, clone.Len(), "clone is independent")

	tbl.Retain(nas.NewNpuSet(2, 5))
	assert.Equal(t, []nas.NpuID{2}, tbl.NPUs())
}

func TestParseOp(t *testing.T) {
	for _, op := range ndi.Ops {
		got, err := ndi.ParseOp(string(op))
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	_, err := ndi.ParseOp("reboot")
	assert.Error(t, err)
}

func TestError(t *testing.T) {
	cause := errors.New("table full")
	err := &ndi.Error{Op: ndi.OpCreateVLAN, NPU: 3, Err: cause}
	assert.Equal(t, "ndi create-vlan on npu 3: table full", err.Error())
	assert.ErrorIs(t, err, cause)
}
