package bump

import (
	"fmt"
	"math/rand"
	"runtime/debug"
	"testing"
)

func assert(condition bool, msg string, args ...interface{}) {
	if !condition {
		fmt.Printf(msg, args...)
		fmt.Printf("\n")
		panic("assertion failed")
	}
}

func failOnError(t *testing.T, e error) {
	if e != nil {
		t.Error(e)
		debug.PrintStack()
		t.FailNow()
	}
}

func expectPanic(t *testing.T, expected string, body func()) {
	t.Helper()
	panicHappened := false
	func() {
		defer func() {
			err := recover()
			if err == nil {
				return
			}
			panicHappened = true
			errStr, ok := err.(string)
			assert(ok && errStr == expected, "unexpected panic.\n exp: %v\n act: %v\n", expected, err)
		}()
		body()
	}()
	assert(panicHappened, "panic %q should happen", expected)
}

// testArena is the surface shared by UpArena and DownArena.
type testArena interface {
	CheckedAllocator
	Start() uintptr
	End() uintptr
	Capacity() int
	CurrentOffset() Offset
}

// variant is a single direction + MinAlign combination.
type variant struct {
	name     string
	dir      Direction
	minAlign uintptr
	newArena func(capacity int) (testArena, error)
}

func variantsFor[A MinAlign]() []variant {
	var a A
	m := a.Bytes()
	return []variant{
		{
			name: fmt.Sprintf("up/%v", m), dir: Up, minAlign: m,
			newArena: func(capacity int) (testArena, error) { return NewUpArena[A](capacity) },
		},
		{
			name: fmt.Sprintf("down/%v", m), dir: Down, minAlign: m,
			newArena: func(capacity int) (testArena, error) { return NewDownArena[A](capacity) },
		},
	}
}

func allVariants() []variant {
	var result []variant
	result = append(result, variantsFor[Align1]()...)
	result = append(result, variantsFor[Align2]()...)
	result = append(result, variantsFor[Align4]()...)
	result = append(result, variantsFor[Align8]()...)
	result = append(result, variantsFor[Align16]()...)
	result = append(result, variantsFor[Align32]()...)
	result = append(result, variantsFor[Align64]()...)
	return result
}

// allocFunc picks one of the two allocation paths of an arena.
type allocFunc func(a CheckedAllocator, l Layout) (Ptr, error)

var strategies = []struct {
	name  string
	alloc allocFunc
}{
	{name: "fast", alloc: func(a CheckedAllocator, l Layout) (Ptr, error) { return a.Alloc(l) }},
	{name: "checked", alloc: func(a CheckedAllocator, l Layout) (Ptr, error) { return a.AllocChecked(l) }},
}

// randomLayouts generates layouts with alignments up to 128 bytes,
// so both the "align <= MinAlign" and "align > MinAlign" branches are exercised.
func randomLayouts(r *rand.Rand, count int) []Layout {
	result := make([]Layout, count)
	for i := range result {
		size := uintptr(r.Intn(48))
		if r.Intn(10) == 0 {
			size = uintptr(r.Intn(512))
		}
		result[i] = Layout{Size: size, Align: 1 << uint(r.Intn(8))}
	}
	return result
}

type allocationRecord struct {
	addr uintptr
	err  error
}

func (r allocationRecord) String() string {
	return fmt.Sprintf("{addr: %x err: %v}", r.addr, r.err)
}

func record(a CheckedAllocator, alloc allocFunc, layouts []Layout) []allocationRecord {
	result := make([]allocationRecord, len(layouts))
	for i, l := range layouts {
		p, err := alloc(a, l)
		result[i] = allocationRecord{err: err}
		if err == nil {
			result[i].addr = a.Addr(p)
		}
	}
	return result
}

type point struct {
	x int64
	y int64
}
