package ndi

import (
	"maps"
	"slices"

	"github.com/frobware/go-nas"
)

// IDTable maps each NPU an object is programmed on to the object id
// the driver assigned there. The zero value is ready to use.
type IDTable struct {
	ids map[nas.NpuID]nas.NdiObjID
}

// Set records id for npu, replacing any previous id.
func (t *IDTable) Set(npu nas.NpuID, id nas.NdiObjID) {
	if t.ids == nil {
		t.ids = make(map[nas.NpuID]nas.NdiObjID)
	}
	t.ids[npu] = id
}

// Get returns the id on npu.
func (t IDTable) Get(npu nas.NpuID) (nas.NdiObjID, bool) {
	id, ok := t.ids[npu]
	return id, ok
}

// Erase forgets npu.
func (t *IDTable) Erase(npu nas.NpuID) {
	delete(t.ids, npu)
}

// Retain drops every NPU not in npus.
func (t *IDTable) Retain(npus nas.NpuSet) {
	maps.DeleteFunc(t.ids, func(npu nas.NpuID, _ nas.NdiObjID) bool {
		return !npus.Contains(npu)
	})
}

// Len returns the number of NPUs with an id.
func (t IDTable) Len() int {
	return len(t.ids)
}

// NPUs returns the NPUs with an id, ascending.
func (t IDTable) NPUs() []nas.NpuID {
	return slices.Sorted(maps.Keys(t.ids))
}

// Clone returns an independent copy.
func (t IDTable) Clone() IDTable {
	return IDTable{ids: maps.Clone(t.ids)}
}
