package bump

import "math/bits"

func isPowerOfTwo(x uintptr) bool {
	return x != 0 && (x&(x-1)) == 0
}

// alignOffset is the closed form of (align - x%align) % align.
// align must be a power of two.
func alignOffset(x uintptr, align uintptr) uintptr {
	mask := align - 1
	return (align - (x & mask)) & mask
}

func roundUp(x uintptr, align uintptr) uintptr {
	mask := align - 1
	return (x + mask) &^ mask
}

func roundDown(x uintptr, align uintptr) uintptr {
	return x &^ (align - 1)
}

func addChecked(x uintptr, y uintptr) (uintptr, bool) {
	sum, carry := bits.Add(uint(x), uint(y), 0)
	return uintptr(sum), carry == 0
}

func roundUpChecked(x uintptr, align uintptr) (uintptr, bool) {
	sum, ok := addChecked(x, align-1)
	if !ok {
		return 0, false
	}
	return sum &^ (align - 1), true
}

func mulChecked(x uintptr, y uintptr) (uintptr, bool) {
	hi, lo := bits.Mul(uint(x), uint(y))
	return uintptr(lo), hi == 0
}
