// Package scratch builds per-worker scratch memory on top of bump arenas.
//
// A Pool keeps one idle arena per worker name in an LRU cache, so a
// worker that comes back gets its previous region without a new
// allocation:
//
//	p, err := scratch.NewPool(16, func() (bump.Allocator, error) {
//		return bump.New[bump.Align8](bump.Up, bump.Fast, 1<<20)
//	})
//	...
//	a, err := p.Acquire("decoder-1")
//	block, err := scratch.DecodeBlock(a, compressed)
//	...
//	p.Return("decoder-1", a)
//
// The Pool is safe for concurrent use, the arenas it hands out are not.
package scratch
