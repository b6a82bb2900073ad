package scratch

import (
	"context"
	"sync"

	"github.com/Jille/easymutex"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/storozhukBM/bump"
)

// Factory creates a new arena for a worker that has none cached.
type Factory func() (bump.Allocator, error)

// Stats are cumulative Pool counters.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
}

// Pool caches idle arenas by worker name.
// Arenas that leave the cache for any reason other than Acquire are released.
type Pool struct {
	mtx     sync.Mutex
	idle    *lru.Cache[string, bump.Allocator]
	factory Factory

	// all fields below are guarded by mtx.
	// every cache mutation happens with mtx held and eviction callbacks run
	// synchronously on the mutating goroutine.
	taking bool
	stats  Stats
}

// NewPool creates a pool that keeps at most size idle arenas.
func NewPool(size int, factory Factory) (*Pool, error) {
	if size <= 0 {
		return nil, errors.Wrapf(bump.InvalidArgumentError, "pool size %v should be positive", size)
	}
	if factory == nil {
		return nil, errors.Wrap(bump.InvalidArgumentError, "pool factory is nil")
	}
	p := &Pool{factory: factory}
	idle, err := lru.NewWithEvict[string, bump.Allocator](size, p.onEvicted)
	if err != nil {
		return nil, errors.Wrap(err, "can't create idle arena cache")
	}
	p.idle = idle
	return p, nil
}

// onEvicted is called when an arena leaves the idle cache.
func (p *Pool) onEvicted(worker string, a bump.Allocator) {
	if p.taking {
		return
	}
	p.stats.Evictions++
	debugf("releasing idle arena of worker %v", worker)
	a.Release()
}

// Acquire returns the idle arena of worker or creates a new one.
// The factory runs without the pool lock held.
func (p *Pool) Acquire(worker string) (bump.Allocator, error) {
	em := easymutex.LockMutex(&p.mtx)
	defer em.Unlock()
	if a, ok := p.idle.Peek(worker); ok {
		p.taking = true
		p.idle.Remove(worker)
		p.taking = false
		p.stats.Hits++
		return a, nil
	}
	p.stats.Misses++
	em.Unlock()

	a, err := p.factory()
	if err != nil {
		errorf("can't create arena for worker %v: %v", worker, err)
		return nil, errors.Wrapf(err, "can't create arena for worker %v", worker)
	}
	return a, nil
}

// Return clears a and caches it as the idle arena of worker.
// An arena already cached for worker is released.
func (p *Pool) Return(worker string, a bump.Allocator) {
	a.Clear()
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if cached, ok := p.idle.Peek(worker); ok {
		if cached == a {
			return
		}
		p.idle.Remove(worker)
	}
	p.idle.Add(worker, a)
}

// Bind acquires the arena of worker and binds it to ctx,
// so callees can reach it with bump.GetAllocator.
// done returns the arena to the pool and must be called once.
func (p *Pool) Bind(ctx context.Context, worker string) (context.Context, func(), error) {
	a, err := p.Acquire(worker)
	if err != nil {
		return ctx, func() {}, err
	}
	return bump.WithAllocator(ctx, a), func() { p.Return(worker, a) }, nil
}

// Purge releases every idle arena.
func (p *Pool) Purge() {
	p.mtx.Lock()
	p.idle.Purge()
	p.mtx.Unlock()
}

// Resize changes the number of idle arenas the pool keeps.
// Arenas over the new limit are released.
func (p *Pool) Resize(size int) error {
	if size <= 0 {
		return errors.Wrapf(bump.InvalidArgumentError, "pool size %v should be positive", size)
	}
	p.mtx.Lock()
	evicted := p.idle.Resize(size)
	p.mtx.Unlock()
	if evicted > 0 {
		infof("pool resized to %v, %v idle arenas released", size, evicted)
	}
	return nil
}

// Len returns the number of idle arenas.
func (p *Pool) Len() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.idle.Len()
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.stats
}

// IdleMetrics sums the metrics of all idle arenas.
func (p *Pool) IdleMetrics() bump.Metrics {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	var result bump.Metrics
	for _, a := range p.idle.Values() {
		m := a.Metrics()
		result.UsedBytes += m.UsedBytes
		result.AvailableBytes += m.AvailableBytes
		result.AllocatedBytes += m.AllocatedBytes
		result.MaxCapacity += m.MaxCapacity
		result.CountOfAllocations += m.CountOfAllocations
		result.DataBytes += m.DataBytes
		result.PaddingOverhead += m.PaddingOverhead
	}
	return result
}
