//go:build !linux

package cpu

// Current always reports CPU 0 on platforms without a getcpu facility.
func Current() int {
	return 0
}
