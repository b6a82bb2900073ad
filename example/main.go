package main

import (
	"context"
	"fmt"
	"time"

	"github.com/klauspost/compress/s2"
	"github.com/storozhukBM/bump"
	"github.com/storozhukBM/bump/scratch"
)

func main() {
	ar, err := bump.NewDownArena[bump.Align8](4 * 1024)
	if err != nil {
		panic(err)
	}
	defer ar.Release()

	tPtr := AllocTimestampPtr(ar, time.Now())
	fmt.Printf("%+v\n", tPtr)
	fmt.Printf("%+v\n", tPtr.DeRef(ar))

	tPtr.Set(ar, tPtr.DeRef(ar).Add(time.Hour))

	fmt.Printf("%+v\n", tPtr)
	fmt.Printf("%+v\n", tPtr.DeRef(ar))
	fmt.Printf("%v\n", ar.Metrics())

	pool, err := scratch.NewPool(2, func() (bump.Allocator, error) {
		return bump.New[bump.Align16](bump.Up, bump.Checked, 64*1024)
	})
	if err != nil {
		panic(err)
	}
	defer pool.Purge()

	ctx, done, err := pool.Bind(context.Background(), "decoder")
	if err != nil {
		panic(err)
	}
	defer done()
	block, err := scratch.DecodeBlockContext(ctx, s2.Encode(nil, []byte("hello from the arena")))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s\n", block)
	if worker, ok := bump.GetAllocator(ctx); ok {
		fmt.Printf("%v\n", worker.Metrics())
	}
}

// TimestampPtr points to a wall clock timestamp stored in the arena.
// time.Time holds a *Location, so only the nanoseconds are stored.
type TimestampPtr bump.Ptr

func AllocTimestampPtr(arena bump.Allocator, target time.Time) TimestampPtr {
	p, allocErr := arena.Alloc(bump.LayoutOf[int64]())
	if allocErr != nil {
		panic(allocErr)
	}
	tmpPtr := (*int64)(arena.ToRef(p))
	*tmpPtr = target.UnixNano()
	return TimestampPtr(p)
}

func (t TimestampPtr) DeRef(arena bump.Allocator) time.Time {
	return time.Unix(0, *(*int64)(arena.ToRef(bump.Ptr(t))))
}

func (t TimestampPtr) Set(arena bump.Allocator, target time.Time) {
	tmpPtr := (*int64)(arena.ToRef(bump.Ptr(t)))
	*tmpPtr = target.UnixNano()
}
