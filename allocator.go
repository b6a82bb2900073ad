package bump

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
)

// Allocator is the capability shared by every arena direction and strategy.
type Allocator interface {
	Alloc(l Layout) (Ptr, error)
	Clear()
	Release()
	ToRef(p Ptr) unsafe.Pointer
	Bytes(p Ptr, n int) []byte
	Addr(p Ptr) uintptr
	Metrics() Metrics
}

// CheckedAllocator is an arena that also exposes the portable allocation path.
type CheckedAllocator interface {
	Allocator
	AllocChecked(l Layout) (Ptr, error)
}

var (
	_ CheckedAllocator = (*UpArena[Align8])(nil)
	_ CheckedAllocator = (*DownArena[Align8])(nil)
)

// Direction of the cursor motion.
type Direction uint8

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection parses "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, errors.Wrapf(InvalidArgumentError, "unknown direction %q", s)
}

// Strategy selects the allocation algorithm.
type Strategy uint8

const (
	// Fast skips alignment rounding for alignments up to MinAlign.
	Fast Strategy = iota
	// Checked uses overflow-safe arithmetic on every step.
	Checked
)

func (s Strategy) String() string {
	switch s {
	case Fast:
		return "fast"
	case Checked:
		return "checked"
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// ParseStrategy parses "fast" or "checked".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "fast":
		return Fast, nil
	case "checked":
		return Checked, nil
	}
	return 0, errors.Wrapf(InvalidArgumentError, "unknown strategy %q", s)
}

type checked struct {
	CheckedAllocator
}

func (c checked) Alloc(l Layout) (Ptr, error) {
	return c.AllocChecked(l)
}

func (c checked) String() string {
	return fmt.Sprintf("checked{%v}", c.CheckedAllocator)
}

// WithChecked returns an Allocator whose Alloc uses the portable path of target.
func WithChecked(target CheckedAllocator) Allocator {
	return checked{target}
}

// New creates an arena of the given direction and strategy.
func New[A MinAlign](d Direction, s Strategy, capacity int) (Allocator, error) {
	var target CheckedAllocator
	switch d {
	case Up:
		a, err := NewUpArena[A](capacity)
		if err != nil {
			return nil, err
		}
		target = a
	case Down:
		a, err := NewDownArena[A](capacity)
		if err != nil {
			return nil, err
		}
		target = a
	default:
		return nil, errors.Wrapf(InvalidArgumentError, "unknown direction %v", d)
	}

	switch s {
	case Fast:
		return target, nil
	case Checked:
		return WithChecked(target), nil
	}
	target.Release()
	return nil, errors.Wrapf(InvalidArgumentError, "unknown strategy %v", s)
}
