// Package bump implements fixed-capacity bump allocators (memory arenas).
//
// An arena owns a single byte region obtained once at construction.
// Allocations are carved out of it by moving a cursor and the whole
// region is reclaimed at once with Clear. There is no per-object free.
//
// Two directions are available:
//
//   - UpArena moves the cursor from the start of the region to the end.
//   - DownArena moves the cursor from the end of the region to the start.
//
// Each arena is parameterized by a MinAlign type (Align1 ... Align64).
// The region base and every allocation boundary are kept at multiples
// of MinAlign, which lets the fast path (Alloc) skip alignment rounding
// for requests aligned to MinAlign or less. The checked path (AllocChecked)
// uses overflow-safe arithmetic and returns exactly the same addresses.
//
//	a, err := bump.NewUpArena[bump.Align8](64 * 1024)
//	if err != nil {
//		return err
//	}
//	defer a.Release()
//
//	p, err := a.Alloc(bump.LayoutOf[point]())
//	if err != nil {
//		return err // bump.CapacityExhaustedError
//	}
//	pt := (*point)(a.ToRef(p))
//
//	a.Clear() // O(1), pt is invalid from now on
//
// Arenas are not safe for concurrent use. Give each worker its own arena,
// see the scratch package for a pool of per-worker arenas.
package bump
