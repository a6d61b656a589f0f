package alloc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-nas/alloc"
)

type payload struct {
	VlanID uint16
	MTU    uint32
}

func TestScope_CloseReleasesInReverse(t *testing.T) {
	s := alloc.NewScope()
	var order []int
	s.Track(func() { order = append(order, 1) })
	s.Track(func() { order = append(order, 2) })
	s.Track(func() { order = append(order, 3) })
	assert.Equal(t, 3, s.Len())

	s.Close()
	assert.Equal(t, []int{3, 2, 1}, order)
	assert.Equal(t, 0, s.Len())

	s.Close()
	assert.Equal(t, []int{3, 2, 1}, order, "second Close is a no-op")
}

func TestScope_ReleasesOnErrorPath(t *testing.T) {
	var p *payload
	build := func() error {
		s := alloc.NewScope()
		defer s.Close()
		p = alloc.New[payload](s)
		p.VlanID = 10
		p.MTU = 1500
		return errors.New("push failed")
	}

	require.Error(t, build())
	assert.Equal(t, payload{}, *p, "payload reset on scope exit")
}

func TestScope_Slices(t *testing.T) {
	s := alloc.NewScope()
	ports := alloc.NewSlice[uint32](s, 4)
	ports[0] = 7
	assert.Equal(t, 1, s.Len())

	s.Close()
	assert.Equal(t, []uint32{0, 0, 0, 0}, ports)
}

func TestScope_TrackAfterClosePanics(t *testing.T) {
	s := alloc.NewScope()
	s.Close()
	assert.Panics(t, func() { s.Track(func() {}) })
}
