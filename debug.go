//go:build debug

package bump

import "fmt"

func checkLayout(l Layout) {
	if !isPowerOfTwo(l.Align) {
		panic(fmt.Errorf("layout %v: alignment is not a power of two", l))
	}
}
