package bump

// MinAlign is a type-level constant that tells an arena the minimum
// alignment every allocation boundary is kept at.
//
// The arena base address and its cursor are always multiples of MinAlign,
// so requests with an alignment not greater than MinAlign never pay for
// rounding on the fast path. The price is that every allocation consumes
// a multiple of MinAlign bytes.
//
// Custom implementations must be zero-size types returning a power of two.
type MinAlign interface {
	Bytes() uintptr
}

type (
	Align1  struct{}
	Align2  struct{}
	Align4  struct{}
	Align8  struct{}
	Align16 struct{}
	Align32 struct{}
	Align64 struct{}
)

func (Align1) Bytes() uintptr  { return 1 }
func (Align2) Bytes() uintptr  { return 2 }
func (Align4) Bytes() uintptr  { return 4 }
func (Align8) Bytes() uintptr  { return 8 }
func (Align16) Bytes() uintptr { return 16 }
func (Align32) Bytes() uintptr { return 32 }
func (Align64) Bytes() uintptr { return 64 }

func minAlignOf[A MinAlign]() (uintptr, error) {
	var a A
	result := a.Bytes()
	if !isPowerOfTwo(result) {
		return 0, InvalidArgumentError
	}
	return result, nil
}
