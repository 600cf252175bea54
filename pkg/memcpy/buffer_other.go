//go:build !linux

package memcpy

// allocBuffer falls back to a heap slice where mmap is not available.
func allocBuffer(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func freeBuffer(buf []byte) error {
	return nil
}
