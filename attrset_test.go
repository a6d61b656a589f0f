package nas_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frobware/go-nas"
)

func TestAttrSet_AddTracksMax(t *testing.T) {
	var s nas.AttrSet
	assert.Equal(t, nas.AttrID(0), s.Max())

	s.Add(7)
	s.Add(3)
	s.Add(7)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, nas.AttrID(7), s.Max())
	assert.Equal(t, []nas.AttrID{3, 7}, s.ToArray())
	assert.Equal(t, []nas.AttrID{3, 7}, slices.Collect(s.All()))

	s.Clear()
	assert.True(t, s.Empty())
	assert.Equal(t, nas.AttrID(0), s.Max())
}

func TestAttrSet_Union(t *testing.T) {
	a := nas.NewAttrSet(1, 4)
	b := nas.NewAttrSet(2, 9)

	u := a.Clone()
	u.Union(b)

	for _, id := range []nas.AttrID{1, 2, 4, 9} {
		assert.True(t, u.Contains(id), "attr %d", id)
		assert.True(t, a.Contains(id) || b.Contains(id))
	}
	assert.False(t, u.Contains(3))
	assert.Equal(t, max(a.Max(), b.Max()), u.Max())
	assert.False(t, a.Contains(9), "union must not alias its source")
}

