package nas

import "math/bits"

// IDGenerator hands out ids in the range [1, max] from a bitmap. Id 0
// is never issued. Allocation scans forward from a rotating cursor so
// freshly released ids are not immediately reused.
type IDGenerator struct {
	used   []uint64
	slots  uint64 // max + 1
	cursor uint64
}

// MaxIDLimit is the largest max NewIDGenerator honours. The bitmap
// for it is 2 MiB.
const MaxIDLimit = 1 << 24

// NewIDGenerator returns a generator issuing ids 1..max. A max above
// MaxIDLimit is clamped to it.
func NewIDGenerator(max uint64) *IDGenerator {
	max = min(max, MaxIDLimit)
	slots := max + 1
	return &IDGenerator{
		used:   make([]uint64, (slots+63)/64),
		slots:  slots,
		cursor: 1,
	}
}

// Max returns the largest id this generator can issue.
func (g *IDGenerator) Max() uint64 {
	return g.slots - 1
}

// InUse returns the number of ids currently allocated or reserved.
func (g *IDGenerator) InUse() int {
	n := 0
	for _, w := range g.used {
		n += bits.OnesCount64(w)
	}
	return n
}

func (g *IDGenerator) isUsed(id uint64) bool {
	return g.used[id/64]&(1<<(id%64)) != 0
}

func (g *IDGenerator) mark(id uint64) {
	g.used[id/64] |= 1 << (id % 64)
}

// Allocate returns the first free id at or after the cursor, wrapping
// to 1 once. It fails with CodeExhausted when every id is taken.
func (g *IDGenerator) Allocate() (uint64, error) {
	for range 2 {
		for id := g.cursor; id < g.slots; id++ {
			if !g.isUsed(id) {
				g.mark(id)
				g.cursor = id + 1
				if g.cursor >= g.slots {
					g.cursor = 1
				}
				return id, nil
			}
		}
		g.cursor = 1
	}
	return 0, Errorf(CodeExhausted, "allocate", "no more free IDs (max %d)", g.Max())
}

// Reserve claims a specific id. It reports false when id is 0, beyond
// max or already taken.
func (g *IDGenerator) Reserve(id uint64) bool {
	if id == 0 || id >= g.slots || g.isUsed(id) {
		return false
	}
	g.mark(id)
	return true
}

// Release frees id. Ids outside [1, max] are ignored.
func (g *IDGenerator) Release(id uint64) {
	if id == 0 || id >= g.slots {
		return
	}
	g.used[id/64] &^= 1 << (id % 64)
}

// IsUsed reports whether id is currently taken.
func (g *IDGenerator) IsUsed(id uint64) bool {
	if id == 0 || id >= g.slots {
		return false
	}
	return g.isUsed(id)
}
