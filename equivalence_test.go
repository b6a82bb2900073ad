package bump

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// The checked path is the oracle for the fast path: both must produce
// the same addresses and the same failures for any sequence of layouts.
func TestFastAndCheckedPathsAreEquivalent(t *testing.T) {
	for _, v := range allVariants() {
		v := v
		t.Run(v.name, func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(v.minAlign)*31 + int64(v.dir)))
			a, err := v.newArena(4096)
			require.NoError(t, err)
			defer a.Release()

			for round := 0; round < 50; round++ {
				layouts := randomLayouts(r, 300)

				a.Clear()
				fast := record(a, strategies[0].alloc, layouts)
				a.Clear()
				checked := record(a, strategies[1].alloc, layouts)

				require.Equal(t, fast, checked, "round %v", round)
			}
		})
	}
}

func TestFastAndCheckedPathsCanBeInterleaved(t *testing.T) {
	for _, v := range allVariants() {
		v := v
		t.Run(v.name, func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(v.minAlign)*17 + int64(v.dir)))
			a, err := v.newArena(2048)
			require.NoError(t, err)
			defer a.Release()

			for round := 0; round < 20; round++ {
				layouts := randomLayouts(r, 200)

				a.Clear()
				fast := record(a, strategies[0].alloc, layouts)

				a.Clear()
				mixed := make([]allocationRecord, len(layouts))
				for i, l := range layouts {
					s := strategies[r.Intn(len(strategies))]
					p, allocErr := s.alloc(a, l)
					mixed[i] = allocationRecord{err: allocErr}
					if allocErr == nil {
						mixed[i].addr = a.Addr(p)
					}
				}

				require.Equal(t, fast, mixed, "round %v", round)
			}
		})
	}
}

func TestStrategiesThroughAllocatorInterface(t *testing.T) {
	for _, d := range []Direction{Up, Down} {
		fast, err := New[Align8](d, Fast, 512)
		require.NoError(t, err)
		portable, err := New[Align8](d, Checked, 512)
		require.NoError(t, err)

		_, isChecked := portable.(checked)
		require.True(t, isChecked, "%v checked allocator should route to the checked path", d)
		_, isChecked = fast.(checked)
		require.False(t, isChecked, "%v fast allocator shouldn't be wrapped", d)

		// regions of different arenas share only the MinAlign base alignment,
		// so offsets are comparable for alignments up to MinAlign
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 200; i++ {
			l := Layout{Size: uintptr(r.Intn(40)), Align: 1 << uint(r.Intn(4))}
			fp, fastErr := fast.Alloc(l)
			cp, checkedErr := portable.Alloc(l)
			require.Equal(t, fastErr, checkedErr, "%v: layout %v", d, l)
			if fastErr == nil {
				require.Equal(t, fp.Offset(), cp.Offset(), "%v: layout %v", d, l)
			}
		}
		fast.Release()
		portable.Release()
	}
}
