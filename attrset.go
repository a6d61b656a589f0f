package nas

import (
	"iter"
	"slices"
)

// AttrSet is a set of attribute ids that also remembers the largest
// id ever inserted, so callers can size lookup tables without a scan.
// Iteration is in ascending id order. The zero value is ready to use.
type AttrSet struct {
	ids []AttrID
	max AttrID
}

// NewAttrSet returns a set holding ids.
func NewAttrSet(ids ...AttrID) AttrSet {
	var s AttrSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and raises the max id if needed.
func (s *AttrSet) Add(id AttrID) {
	i, found := slices.BinarySearch(s.ids, id)
	if !found {
		s.ids = slices.Insert(s.ids, i, id)
	}
	if id > s.max {
		s.max = id
	}
}

// Union inserts every id of other. The max id becomes the larger of
// the two.
func (s *AttrSet) Union(other AttrSet) {
	for _, id := range other.ids {
		i, found := slices.BinarySearch(s.ids, id)
		if !found {
			s.ids = slices.Insert(s.ids, i, id)
		}
	}
	s.max = max(s.max, other.max)
}

// Clear empties the set and resets the max id.
func (s *AttrSet) Clear() {
	s.ids = nil
	s.max = 0
}

// Contains reports whether id is in the set.
func (s AttrSet) Contains(id AttrID) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// Len returns the number of ids in the set.
func (s AttrSet) Len() int {
	return len(s.ids)
}

// Empty reports whether the set has no members.
func (s AttrSet) Empty() bool {
	return len(s.ids) == 0
}

// Max returns the largest id ever added since the last Clear.
func (s AttrSet) Max() AttrID {
	return s.max
}

// All iterates the set in ascending order.
func (s AttrSet) All() iter.Seq[AttrID] {
	return slices.Values(s.ids)
}

// ToArray returns a snapshot of the ids in ascending order.
func (s AttrSet) ToArray() []AttrID {
	return slices.Clone(s.ids)
}

// Clone returns an independent copy of the set.
func (s AttrSet) Clone() AttrSet {
	return AttrSet{ids: slices.Clone(s.ids), max: s.max}
}
