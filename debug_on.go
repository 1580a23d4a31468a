//go:build arenadebug

package region

import "fmt"

// checkAlign enforces the power-of-two alignment precondition of AllocRaw.
func checkAlign(align uintptr) {
	if align == 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("region: alignment %d is not a power of two", align))
	}
}
