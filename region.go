package bump

import (
	"fmt"
	"math/rand"
	"unsafe"

	"github.com/pkg/errors"
)

// MaxCapacity is the largest capacity a single arena accepts.
// It keeps every region far below the address space ceiling,
// which is what the fast allocation paths rely on.
const MaxCapacity = int(^uint(0) >> 2)

// minBaseAlign is the alignment of every region base
// regardless of the arena MinAlign.
const minBaseAlign = 8

// region is the fixed backing memory of an arena.
// buf is obtained once and the usable part starts at buf[base].
type region struct {
	buf  []byte
	base int

	start    uintptr
	end      uintptr
	minAlign uintptr

	arenaMask uint16
}

func newRegion(capacity int, minAlign uintptr) (r region, err error) {
	if capacity < 0 || capacity > MaxCapacity {
		return region{}, errors.Wrapf(InvalidArgumentError, "capacity %v is out of range [0, %v]", capacity, MaxCapacity)
	}
	size := roundUp(uintptr(capacity), minAlign)
	baseAlign := max(minAlign, minBaseAlign)

	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Wrapf(ConstructionError, "capacity %v: %v", capacity, rec)
		}
	}()
	// baseAlign extra bytes are always enough to find an aligned base
	// and keep buf[base+size] addressable for zero-size allocations at the end.
	buf := make([]byte, int(size+baseAlign))
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	base := alignOffset(addr, baseAlign)
	return region{
		buf:       buf,
		base:      int(base),
		start:     addr + base,
		end:       addr + base + size,
		minAlign:  minAlign,
		arenaMask: uint16(rand.Uint32()) | 1,
	}, nil
}

// Start returns the address of the first byte of the arena region.
func (r *region) Start() uintptr {
	return r.start
}

// End returns the address right after the last byte of the arena region.
func (r *region) End() uintptr {
	return r.end
}

// Capacity returns the usable size of the arena region.
// It is the requested capacity rounded up to a multiple of MinAlign.
func (r *region) Capacity() int {
	return int(r.end - r.start)
}

// MinAlign returns the minimal alignment of every allocation boundary.
func (r *region) MinAlign() uintptr {
	return r.minAlign
}

// Addr returns the address of the allocation.
func (r *region) Addr(p Ptr) uintptr {
	return r.start + p.offset
}

// ToRef converts p into unsafe.Pointer. It panics if p was produced by
// another arena or before the last Clear.
func (r *region) ToRef(p Ptr) unsafe.Pointer {
	r.checkPtr(p)
	return unsafe.Pointer(&r.buf[r.base+int(p.offset)])
}

// Bytes returns n bytes of arena memory starting at p.
func (r *region) Bytes(p Ptr, n int) []byte {
	r.checkPtr(p)
	size := r.Capacity()
	target := r.buf[r.base : r.base+size : r.base+size]
	from := int(p.offset)
	return target[from : from+n : from+n]
}

func (r *region) checkPtr(p Ptr) {
	if r.released() {
		panic("arena: use after Release()")
	}
	if p.arenaMask != r.arenaMask {
		panic("pointer isn't part of this arena")
	}
}

// released reports whether the backing buffer was dropped by Release.
func (r *region) released() bool {
	return r.buf == nil
}

func (r *region) nextGeneration() {
	r.arenaMask = (r.arenaMask + 1) | 1
}

func (r *region) release() {
	r.buf = nil
	r.base = 0
	r.end = r.start
}

func (r *region) metrics(usedBytes int, countOfAllocations int, dataBytes int) Metrics {
	return Metrics{
		UsedBytes:          usedBytes,
		AvailableBytes:     r.Capacity() - usedBytes,
		AllocatedBytes:     cap(r.buf),
		MaxCapacity:        r.Capacity(),
		CountOfAllocations: countOfAllocations,
		DataBytes:          dataBytes,
		PaddingOverhead:    usedBytes - dataBytes,
	}
}

func (r *region) describe(kind string, cursor uintptr) string {
	return fmt.Sprintf(
		"%v{mask: %v minAlign: %v cursor: %v capacity: %v}",
		kind, r.arenaMask, r.minAlign, cursor-r.start, r.Capacity(),
	)
}
