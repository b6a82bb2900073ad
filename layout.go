package bump

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
)

// Layout describes a single allocation request.
// Align must be a power of two.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// NewLayout validates size and align and returns the Layout.
func NewLayout(size, align uintptr) (Layout, error) {
	if !isPowerOfTwo(align) {
		return Layout{}, errors.Wrapf(InvalidArgumentError, "alignment %v is not a power of two", align)
	}
	return Layout{Size: size, Align: align}, nil
}

// LayoutOf returns the layout of a single value of type T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// ArrayLayout returns the layout of n consecutive values of type T.
func ArrayLayout[T any](n int) (Layout, error) {
	if n < 0 {
		return Layout{}, errors.Wrapf(InvalidArgumentError, "negative length %v", n)
	}
	elem := LayoutOf[T]()
	size, ok := mulChecked(elem.Size, uintptr(n))
	if !ok {
		return Layout{}, errors.Wrapf(InvalidArgumentError, "array of %v elements of size %v overflows", n, elem.Size)
	}
	return Layout{Size: size, Align: elem.Align}, nil
}

// String provides a string snapshot of the current bump.Layout.
func (l Layout) String() string {
	return fmt.Sprintf("{size: %v align: %v}", l.Size, l.Align)
}
