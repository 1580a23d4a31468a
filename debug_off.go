//go:build !arenadebug

package region

func checkAlign(uintptr) {}
