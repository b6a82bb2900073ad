package bump

import "github.com/pkg/errors"

// DownArena is a fixed-capacity bump allocator whose cursor starts at
// the high end of the region and moves towards the low end.
// Allocated space is [cursor, End).
//
// Moving down makes alignment a single mask operation: the candidate
// address is rounded down, so no padding has to be added in front of it.
//
// DownArena is not safe for concurrent use.
type DownArena[A MinAlign] struct {
	region
	cursor uintptr

	countOfAllocations int
	dataBytes          int
}

// NewDownArena allocates a region of at least capacity bytes.
// The capacity is rounded up to a multiple of MinAlign and never changes.
func NewDownArena[A MinAlign](capacity int) (*DownArena[A], error) {
	minAlign, alignErr := minAlignOf[A]()
	if alignErr != nil {
		return nil, errors.Wrapf(alignErr, "min alignment of %T", *new(A))
	}
	r, regionErr := newRegion(capacity, minAlign)
	if regionErr != nil {
		errorf("down arena construction failed: %v", regionErr)
		return nil, regionErr
	}
	debugf("down arena created: capacity %v minAlign %v", r.Capacity(), minAlign)
	return &DownArena[A]{region: r, cursor: r.end}, nil
}

// Alloc is the fast allocation path.
//
// The size is padded up to MinAlign, so the candidate address stays
// a multiple of MinAlign and only alignments above MinAlign need rounding.
func (a *DownArena[A]) Alloc(l Layout) (Ptr, error) {
	checkLayout(l)
	if a.released() {
		return Ptr{}, CapacityExhaustedError
	}
	cursor := a.cursor
	// cursor-start is a multiple of minAlign, so the padded size fits as well
	if cursor-a.start < l.Size {
		return Ptr{}, CapacityExhaustedError
	}
	result := cursor - roundUp(l.Size, a.minAlign)
	if l.Align > a.minAlign {
		result = roundDown(result, l.Align)
		if result < a.start {
			return Ptr{}, CapacityExhaustedError
		}
	}
	a.cursor = result
	a.countOfAllocations += 1
	a.dataBytes += int(l.Size)
	return Ptr{offset: result - a.start, arenaMask: a.arenaMask}, nil
}

// AllocChecked is the portable allocation path.
// It never lets the address wrap below zero and reports it as CapacityExhaustedError.
// It returns the same addresses as Alloc for the same sequence of layouts.
func (a *DownArena[A]) AllocChecked(l Layout) (Ptr, error) {
	checkLayout(l)
	if a.released() {
		return Ptr{}, CapacityExhaustedError
	}
	if a.cursor < l.Size {
		return Ptr{}, CapacityExhaustedError
	}
	result := roundDown(a.cursor-l.Size, max(l.Align, a.minAlign))
	if result < a.start {
		return Ptr{}, CapacityExhaustedError
	}
	a.cursor = result
	a.countOfAllocations += 1
	a.dataBytes += int(l.Size)
	return Ptr{offset: result - a.start, arenaMask: a.arenaMask}, nil
}

// Clear resets the cursor to the end of the region in O(1).
// Memory isn't zeroed and all previously returned pointers become invalid.
func (a *DownArena[A]) Clear() {
	a.cursor = a.end
	a.countOfAllocations = 0
	a.dataBytes = 0
	a.nextGeneration()
}

// Release drops the backing region. The arena can't be used afterwards.
func (a *DownArena[A]) Release() {
	if a.released() {
		warnf("down arena is already released")
		return
	}
	debugf("down arena released: capacity %v", a.Capacity())
	a.release()
	a.cursor = a.end
	a.countOfAllocations = 0
	a.dataBytes = 0
}

// CurrentOffset returns the cursor position relative to the start of the region.
func (a *DownArena[A]) CurrentOffset() Offset {
	return Offset{p: Ptr{offset: a.cursor - a.start, arenaMask: a.arenaMask}}
}

func (a *DownArena[A]) Metrics() Metrics {
	return a.metrics(int(a.end-a.cursor), a.countOfAllocations, a.dataBytes)
}

func (a *DownArena[A]) String() string {
	return a.describe("downarena", a.cursor)
}
