package bump

import "context"

type allocatorCtxKey string

const arenaCtxKey allocatorCtxKey = "_bumpArenaCtxK"

// WithAllocator binds ctx with target allocator,
// it can be received later using GetAllocator and GetAllocatorOrDefault.
func WithAllocator(ctx context.Context, allocator Allocator) context.Context {
	return context.WithValue(ctx, arenaCtxKey, allocator)
}

// GetAllocator returns the allocator associated with ctx
// and true if there was some association.
func GetAllocator(ctx context.Context) (Allocator, bool) {
	allocator, ok := ctx.Value(arenaCtxKey).(Allocator)
	if !ok || allocator == nil {
		return nil, false
	}
	return allocator, true
}

// GetAllocatorOrDefault returns the allocator associated with ctx
// or defaultAllocator if there is no association.
func GetAllocatorOrDefault(ctx context.Context, defaultAllocator Allocator) Allocator {
	ctxAllocator, ok := GetAllocator(ctx)
	if !ok {
		return defaultAllocator
	}
	return ctxAllocator
}
