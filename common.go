package bump

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Error type used by the library to declare error constants.
type Error string

// Error method that implements error interface.
func (e Error) Error() string {
	return string(e)
}

// CapacityExhaustedError returned if the requested layout
// doesn't fit into the space left in the arena.
const CapacityExhaustedError = Error("capacity exhausted")

// InvalidArgumentError returned if you passed an invalid argument
// to one of the constructors.
const InvalidArgumentError = Error("argument is invalid")

// ConstructionError returned if the backing region of an arena can't be obtained.
const ConstructionError = Error("can't allocate arena region")

// Ptr is a struct, which represents an offset of the allocated value
// from the start of the arena region.
//
// bump.Ptr is a simple struct that should be passed by value and
// is not considered by Go runtime as a legit pointer type.
// So the GC can skip it during the concurrent mark phase.
//
// bump.Ptr can be converted to unsafe.Pointer by using arena ToRef method,
// but we'd suggest to do it right before use to eliminate its visibility scope
// and potentially prevent it's escaping to the heap.
type Ptr struct {
	offset    uintptr
	arenaMask uint16
}

// Offset returns the distance in bytes between the start of the arena region and the allocation.
func (p Ptr) Offset() uintptr {
	return p.offset
}

// String provides a string snapshot of the current bump.Ptr.
func (p Ptr) String() string {
	return fmt.Sprintf("{mask: %v offset: %v}", p.arenaMask, p.offset)
}

// Offset is a snapshot of the arena cursor that can't be converted to unsafe.Pointer.
type Offset struct {
	p Ptr
}

// Value returns the cursor position relative to the start of the arena region.
func (o Offset) Value() uintptr {
	return o.p.offset
}

// String provides a string snapshot of the current bump.Offset.
func (o Offset) String() string {
	return o.p.String()
}

// Metrics is a struct that represents a snapshot of current allocation statistics.
type Metrics struct {
	UsedBytes          int // bytes consumed by allocations, including padding
	AvailableBytes     int // bytes left between the cursor and the arena boundary
	AllocatedBytes     int // bytes requested from the general heap for the backing buffer
	MaxCapacity        int // usable size of the arena region
	CountOfAllocations int // successful allocations since the last Clear
	DataBytes          int // bytes requested by callers since the last Clear
	PaddingOverhead    int // UsedBytes - DataBytes
}

// Utilization returns the ratio of used bytes to the arena capacity (0.0 to 1.0).
func (m Metrics) Utilization() float64 {
	if m.MaxCapacity == 0 {
		return 0
	}
	return float64(m.UsedBytes) / float64(m.MaxCapacity)
}

// String provides a string snapshot of the Metrics state.
func (m Metrics) String() string {
	return fmt.Sprintf(
		"{UsedBytes: %v AvailableBytes: %v AllocatedBytes: %v MaxCapacity: %v CountOfAllocations: %v DataBytes: %v PaddingOverhead: %v}",
		humanize.Bytes(uint64(m.UsedBytes)), humanize.Bytes(uint64(m.AvailableBytes)),
		humanize.Bytes(uint64(m.AllocatedBytes)), humanize.Bytes(uint64(m.MaxCapacity)),
		m.CountOfAllocations, m.DataBytes, m.PaddingOverhead,
	)
}
