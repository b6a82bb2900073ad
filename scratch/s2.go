package scratch

import (
	"context"

	"github.com/klauspost/compress/s2"
	"github.com/pkg/errors"
	"github.com/storozhukBM/bump"
)

// DecodeBlock decodes the S2 block src into arena memory.
// The result is valid until the next Clear or Release of a.
func DecodeBlock(a bump.Allocator, src []byte) ([]byte, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, errors.Wrap(err, "can't read decoded block length")
	}
	buf, allocErr := bump.MakeSlice[byte](a, n)
	if allocErr != nil {
		return nil, allocErr
	}
	decoded, err := s2.Decode(buf, src)
	if err != nil {
		return nil, errors.Wrap(err, "can't decode block")
	}
	return decoded, nil
}

// DecodeBlockContext decodes src into the arena bound to ctx,
// or into the Go heap when ctx carries no arena.
func DecodeBlockContext(ctx context.Context, src []byte) ([]byte, error) {
	if a, ok := bump.GetAllocator(ctx); ok {
		return DecodeBlock(a, src)
	}
	decoded, err := s2.Decode(nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "can't decode block")
	}
	return decoded, nil
}

// EncodeBlock encodes src as a single S2 block in arena memory.
// The worst case encoded size is reserved, the unused tail stays
// allocated until the next Clear.
func EncodeBlock(a bump.Allocator, src []byte) ([]byte, error) {
	n := s2.MaxEncodedLen(len(src))
	if n < 0 {
		return nil, errors.Wrapf(bump.InvalidArgumentError, "block of %v bytes is too large", len(src))
	}
	buf, allocErr := bump.MakeSlice[byte](a, n)
	if allocErr != nil {
		return nil, allocErr
	}
	return s2.Encode(buf, src), nil
}

// Allocator is the buffer allocation shape used by S2 random access readers.
type Allocator interface {
	Alloc(n int) []byte
	Free([]byte)
}

// BufferAllocator serves buffers from an arena and falls back
// to the Go heap once the arena is exhausted.
// Free is a no-op, arena memory comes back on Clear.
type BufferAllocator struct {
	arena     bump.Allocator
	fallbacks int
}

var _ Allocator = (*BufferAllocator)(nil)

func NewBufferAllocator(a bump.Allocator) *BufferAllocator {
	return &BufferAllocator{arena: a}
}

func (b *BufferAllocator) Alloc(n int) []byte {
	buf, err := bump.MakeSlice[byte](b.arena, n)
	if err != nil {
		b.fallbacks++
		return make([]byte, n)
	}
	return buf
}

func (b *BufferAllocator) Free([]byte) {
}

// Fallbacks returns how many buffers came from the Go heap.
func (b *BufferAllocator) Fallbacks() int {
	return b.fallbacks
}
