package bump

import "unsafe"

// Make returns a pointer to a zeroed T stored inside the arena.
//
// The GC doesn't scan arena memory, so T must not contain Go pointers.
// The pointer is valid until the next Clear or Release of the arena.
func Make[T any](a Allocator) (*T, error) {
	p, allocErr := a.Alloc(LayoutOf[T]())
	if allocErr != nil {
		return nil, allocErr
	}
	result := (*T)(a.ToRef(p))
	var zero T
	*result = zero
	return result, nil
}

// MakeSlice returns a zeroed slice of n elements of type T stored inside the arena.
// The same restrictions as for Make apply.
func MakeSlice[T any](a Allocator, n int) ([]T, error) {
	l, layoutErr := ArrayLayout[T](n)
	if layoutErr != nil {
		return nil, layoutErr
	}
	if n == 0 {
		return []T{}, nil
	}
	p, allocErr := a.Alloc(l)
	if allocErr != nil {
		return nil, allocErr
	}
	result := unsafe.Slice((*T)(a.ToRef(p)), n)
	clear(result)
	return result, nil
}

// Embed copies src into arena memory.
//
// It can be used to keep a full copy for future use
// without a separate heap allocation.
func Embed(a Allocator, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	p, allocErr := a.Alloc(Layout{Size: uintptr(len(src)), Align: 1})
	if allocErr != nil {
		return nil, allocErr
	}
	result := a.Bytes(p, len(src))
	copy(result, src)
	return result, nil
}

// EmbedString copies s into arena memory and returns a string backed by it.
// The string must not be used after the next Clear or Release of the arena.
func EmbedString(a Allocator, s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	p, allocErr := a.Alloc(Layout{Size: uintptr(len(s)), Align: 1})
	if allocErr != nil {
		return "", allocErr
	}
	result := a.Bytes(p, len(s))
	copy(result, s)
	return unsafe.String(unsafe.SliceData(result), len(result)), nil
}
