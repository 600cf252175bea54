//go:build linux

package memcpy

import (
	"golang.org/x/sys/unix"
)

// allocBuffer maps an anonymous writable region for the working set,
// keeping it off the Go heap so the GC never scans or pads the buffers
// and the sub-buffer offsets stay exactly where the pattern expects.
func allocBuffer(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

func freeBuffer(buf []byte) error {
	return unix.Munmap(buf)
}
