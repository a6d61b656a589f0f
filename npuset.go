package nas

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// NpuSet is a set of NPU ids. Iteration is in ascending id order, so
// the order is stable for a given content. The zero value is an empty
// set ready to use.
type NpuSet struct {
	ids []NpuID
}

// NewNpuSet returns a set holding ids.
func NewNpuSet(ids ...NpuID) NpuSet {
	var s NpuSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id. Adding an existing id is a no-op.
func (s *NpuSet) Add(id NpuID) {
	i, found := slices.BinarySearch(s.ids, id)
	if found {
		return
	}
	s.ids = slices.Insert(s.ids, i, id)
}

// Remove deletes id if present.
func (s *NpuSet) Remove(id NpuID) {
	i, found := slices.BinarySearch(s.ids, id)
	if found {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
}

// Clear empties the set.
func (s *NpuSet) Clear() {
	s.ids = nil
}

// Contains reports whether id is in the set.
func (s NpuSet) Contains(id NpuID) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// Len returns the number of NPUs in the set.
func (s NpuSet) Len() int {
	return len(s.ids)
}

// Empty reports whether the set has no members.
func (s NpuSet) Empty() bool {
	return len(s.ids) == 0
}

// All iterates the set in ascending order.
func (s NpuSet) All() iter.Seq[NpuID] {
	return slices.Values(s.ids)
}

// IDs returns a copy of the members in ascending order.
func (s NpuSet) IDs() []NpuID {
	return slices.Clone(s.ids)
}

// Clone returns an independent copy of the set.
func (s NpuSet) Clone() NpuSet {
	return NpuSet{ids: slices.Clone(s.ids)}
}

// Equal reports whether both sets hold the same members.
func (s NpuSet) Equal(other NpuSet) bool {
	return slices.Equal(s.ids, other.ids)
}

// Compare partitions s ∪ other into the NPUs only in s, the NPUs only
// in other and the NPUs in both. Every NPU lands in exactly one of
// the three results.
func (s NpuSet) Compare(other NpuSet) (onlyMine, onlyOther, inBoth NpuSet) {
	for _, id := range other.ids {
		if s.Contains(id) {
			inBoth.Add(id)
		} else {
			onlyOther.Add(id)
		}
	}
	for _, id := range s.ids {
		if !other.Contains(id) {
			onlyMine.Add(id)
		}
	}
	return onlyMine, onlyOther, inBoth
}

// String renders the set as "NPUs: 0, 1, 2".
func (s NpuSet) String() string {
	parts := make([]string, len(s.ids))
	for i, id := range s.ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return "NPUs: " + strings.Join(parts, ", ")
}
