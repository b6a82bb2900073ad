package bump

import "github.com/pkg/errors"

// UpArena is a fixed-capacity bump allocator whose cursor starts at
// the low end of the region and moves towards the high end.
// Allocated space is [Start, cursor).
//
// UpArena is not safe for concurrent use.
type UpArena[A MinAlign] struct {
	region
	cursor uintptr

	countOfAllocations int
	dataBytes          int
}

// NewUpArena allocates a region of at least capacity bytes.
// The capacity is rounded up to a multiple of MinAlign and never changes.
func NewUpArena[A MinAlign](capacity int) (*UpArena[A], error) {
	minAlign, alignErr := minAlignOf[A]()
	if alignErr != nil {
		return nil, errors.Wrapf(alignErr, "min alignment of %T", *new(A))
	}
	r, regionErr := newRegion(capacity, minAlign)
	if regionErr != nil {
		errorf("up arena construction failed: %v", regionErr)
		return nil, regionErr
	}
	debugf("up arena created: capacity %v minAlign %v", r.Capacity(), minAlign)
	return &UpArena[A]{region: r, cursor: r.start}, nil
}

// Alloc is the fast allocation path.
//
// The cursor is always a multiple of MinAlign, so alignments up to MinAlign
// are satisfied without rounding, and every allocation consumes its size
// padded up to MinAlign to keep it that way.
// Alloc assumes l.Size stays far below the address space limit;
// use AllocChecked for untrusted sizes.
func (a *UpArena[A]) Alloc(l Layout) (Ptr, error) {
	checkLayout(l)
	if a.released() {
		return Ptr{}, CapacityExhaustedError
	}
	cursor := a.cursor
	alignmentOffset := uintptr(0)
	if l.Align > a.minAlign {
		alignmentOffset = alignOffset(cursor, l.Align)
	}
	size := l.Size + alignmentOffset
	if a.end-cursor < size {
		return Ptr{}, CapacityExhaustedError
	}
	endOffset := alignOffset(l.Size, a.minAlign)
	a.cursor = cursor + size + endOffset
	a.countOfAllocations += 1
	a.dataBytes += int(l.Size)
	return Ptr{offset: cursor + alignmentOffset - a.start, arenaMask: a.arenaMask}, nil
}

// AllocChecked is the portable allocation path.
// Every step is overflow checked and overflow is reported as CapacityExhaustedError.
// It returns the same addresses as Alloc for the same sequence of layouts.
func (a *UpArena[A]) AllocChecked(l Layout) (Ptr, error) {
	checkLayout(l)
	if a.released() {
		return Ptr{}, CapacityExhaustedError
	}
	aligned, ok := roundUpChecked(a.cursor, l.Align)
	if !ok {
		return Ptr{}, CapacityExhaustedError
	}
	limit, ok := addChecked(aligned, l.Size)
	if !ok || limit > a.end {
		return Ptr{}, CapacityExhaustedError
	}
	// end is a multiple of minAlign, so the rounded limit stays within the region
	a.cursor = roundUp(limit, a.minAlign)
	a.countOfAllocations += 1
	a.dataBytes += int(l.Size)
	return Ptr{offset: aligned - a.start, arenaMask: a.arenaMask}, nil
}

// Clear resets the cursor to the start of the region in O(1).
// Memory isn't zeroed and all previously returned pointers become invalid.
func (a *UpArena[A]) Clear() {
	a.cursor = a.start
	a.countOfAllocations = 0
	a.dataBytes = 0
	a.nextGeneration()
}

// Release drops the backing region. The arena can't be used afterwards.
func (a *UpArena[A]) Release() {
	if a.released() {
		warnf("up arena is already released")
		return
	}
	debugf("up arena released: capacity %v", a.Capacity())
	a.release()
	a.cursor = a.start
	a.countOfAllocations = 0
	a.dataBytes = 0
}

// CurrentOffset returns the cursor position relative to the start of the region.
func (a *UpArena[A]) CurrentOffset() Offset {
	return Offset{p: Ptr{offset: a.cursor - a.start, arenaMask: a.arenaMask}}
}

func (a *UpArena[A]) Metrics() Metrics {
	return a.metrics(int(a.cursor-a.start), a.countOfAllocations, a.dataBytes)
}

func (a *UpArena[A]) String() string {
	return a.describe("uparena", a.cursor)
}
