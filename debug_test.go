//go:build debug

package bump

import "testing"

func TestContractViolationPanicsInDebugBuilds(t *testing.T) {
	for _, v := range allVariants() {
		a, err := v.newArena(64)
		failOnError(t, err)
		for _, s := range strategies {
			panicHappened := false
			func() {
				defer func() {
					panicHappened = recover() != nil
				}()
				_, _ = s.alloc(a, Layout{Size: 8, Align: 3})
			}()
			assert(panicHappened, "%v/%v: invalid alignment should panic", v.name, s.name)
		}
		a.Release()
	}
}
