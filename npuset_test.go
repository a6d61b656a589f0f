package nas_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/frobware/go-nas"
)

func TestNpuSet_AddRemoveContains(t *testing.T) {
	var s nas.NpuSet
	assert.True(t, s.Empty())

	s.Add(2)
	s.Add(0)
	s.Add(2)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(1))

	s.Remove(0)
	s.Remove(7)
	assert.Equal(t, []nas.NpuID{2}, s.IDs())

	s.Clear()
	assert.True(t, s.Empty())
}

func TestNpuSet_IterationIsAscending(t *testing.T) {
	s := nas.NewNpuSet(5, 1, 3, 0)
	assert.Equal(t, []nas.NpuID{0, 1, 3, 5}, slices.Collect(s.All()))
	assert.Equal(t, "NPUs: 0, 1, 3, 5", s.String())
}

func TestNpuSet_CloneIsIndependent(t *testing.T) {
	a := nas.NewNpuSet(1, 2)
	b := a.Clone()
	b.Add(3)
	assert.False(t, a.Contains(3))
	assert.True(t, a.Equal(nas.NewNpuSet(2, 1)))
}

func TestNpuSet_Compare(t *testing.T) {
	tests := []struct {
		name                        string
		mine, other                 []nas.NpuID
		onlyMine, onlyOther, inBoth []nas.NpuID
	}{
		{
			name:      "disjoint",
			mine:      []nas.NpuID{0, 1},
			other:     []nas.NpuID{2},
			onlyMine:  []nas.NpuID{0, 1},
			onlyOther: []nas.NpuID{2},
		},
		{
			name:      "overlap",
			mine:      []nas.NpuID{0, 1, 2},
			other:     []nas.NpuID{2, 3},
			onlyMine:  []nas.NpuID{0, 1},
			onlyOther: []nas.NpuID{3},
			inBoth:    []nas.NpuID{2},
		},
		{
			name:   "identical",
			mine:   []nas.NpuID{4, 5},
			other:  []nas.NpuID{5, 4},
			inBoth: []nas.NpuID{4, 5},
		},
		{
			name: "both empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mine := nas.NewNpuSet(tt.mine...)
			other := nas.NewNpuSet(tt.other...)

			onlyMine, onlyOther, inBoth := mine.Compare(other)

			opt := cmpopts.EquateEmpty()
			assert.Empty(t, cmp.Diff(tt.onlyMine, onlyMine.IDs(), opt))
			assert.Empty(t, cmp.Diff(tt.onlyOther, onlyOther.IDs(), opt))
			assert.Empty(t, cmp.Diff(tt.inBoth, inBoth.IDs(), opt))

			// The three results partition the union.
			union := mine.Clone()
			for id := range other.All() {
				union.Add(id)
			}
			assert.Equal(t, union.Len(), onlyMine.Len()+onlyOther.Len()+inBoth.Len())
			for id := range union.All() {
				n := 0
				for _, part := range []nas.NpuSet{onlyMine, onlyOther, inBoth} {
					if part.Contains(id) {
						n++
					}
				}
				assert.Equal(t, 1, n, "npu %d", id)
			}
		})
	}
}
