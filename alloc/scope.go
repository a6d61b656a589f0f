// Package alloc provides Scope, an owner for the temporary buffers a
// commit builds while shuttling hardware payloads up the call stack.
//
// Everything registered with a Scope is released when the Scope is
// closed, whichever way the enclosing function returns:
//
//	s := alloc.NewScope()
//	defer s.Close()
//	attrs := alloc.New[ndi.VLANAttrs](s)
package alloc

// noCopy trips go vet's copylocks check when a Scope is copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Scope owns buffers and release callbacks until Close. A Scope must
// not be copied; pass it by pointer.
type Scope struct {
	_ noCopy

	releases []func()
	closed   bool
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Track registers fn to run on Close. Callbacks run in reverse order
// of registration.
func (s *Scope) Track(fn func()) {
	if s.closed {
		panic("alloc: Track on closed scope")
	}
	s.releases = append(s.releases, fn)
}

// Len returns the number of live registrations.
func (s *Scope) Len() int {
	return len(s.releases)
}

// Close releases everything the scope owns. Calling Close more than
// once is harmless.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// New allocates a zero T owned by s. On Close the value is reset to
// its zero value so stale payloads are never observed through a
// retained pointer.
func New[T any](s *Scope) *T {
	v := new(T)
	s.Track(func() {
		var zero T
		*v = zero
	})
	return v
}

// NewSlice allocates a slice of n zero Ts owned by s.
func NewSlice[T any](s *Scope, n int) []T {
	v := make([]T, n)
	s.Track(func() {
		clear(v)
	})
	return v
}
