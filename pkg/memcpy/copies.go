package memcpy

import (
	"unsafe"
)

// copyFunc is the shape of every copy/move primitive: copy len(src)
// bytes from src to dest and return dest. dest and src always have the
// same length at the call sites.
type copyFunc func(dest, src []byte) []byte

// libcMemcpy copies through the runtime's memmove, the closest analogue
// of the platform memcpy. Overlapping inputs are passed straight through;
// whatever the primitive produces is what verification sees.
func libcMemcpy(dest, src []byte) []byte {
	copy(dest, src)
	return dest
}

// libcMemmove is the overlap-safe move primitive, also the runtime's
// memmove underneath.
func libcMemmove(dest, src []byte) []byte {
	copy(dest, src)
	return dest
}

// The naive variants are deliberately written as plain byte loops and
// instantiated several times so the compiler treats each copy as an
// independent function. Go offers no per-function optimization levels,
// so the o0..o3 spread is expressed as separately compiled bodies under
// inlining control; names and table ordering stay stable.

//go:noinline
func naiveMemcpy(dest, src []byte) []byte {
	for i := 0; i < len(src); i++ {
		dest[i] = src[i]
	}
	return dest
}

//go:noinline
func naiveMemcpyO0(dest, src []byte) []byte {
	for i := 0; i < len(src); i++ {
		dest[i] = src[i]
	}
	return dest
}

//go:noinline
func naiveMemcpyO1(dest, src []byte) []byte {
	for i := 0; i < len(src); i++ {
		dest[i] = src[i]
	}
	return dest
}

//go:noinline
func naiveMemcpyO2(dest, src []byte) []byte {
	for i := 0; i < len(src); i++ {
		dest[i] = src[i]
	}
	return dest
}

//go:noinline
func naiveMemcpyO3(dest, src []byte) []byte {
	for i := 0; i < len(src); i++ {
		dest[i] = src[i]
	}
	return dest
}

// The naive moves copy byte by byte choosing the direction from the
// pointer order, the classical memmove contract: forward when dest is
// below src, backward otherwise.

//go:noinline
func naiveMemmove(dest, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dest
	}
	if uintptr(unsafe.Pointer(&dest[0])) < uintptr(unsafe.Pointer(&src[0])) {
		for i := 0; i < n; i++ {
			dest[i] = src[i]
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			dest[i] = src[i]
		}
	}
	return dest
}

//go:noinline
func naiveMemmoveO0(dest, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dest
	}
	if uintptr(unsafe.Pointer(&dest[0])) < uintptr(unsafe.Pointer(&src[0])) {
		for i := 0; i < n; i++ {
			dest[i] = src[i]
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			dest[i] = src[i]
		}
	}
	return dest
}

//go:noinline
func naiveMemmoveO1(dest, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dest
	}
	if uintptr(unsafe.Pointer(&dest[0])) < uintptr(unsafe.Pointer(&src[0])) {
		for i := 0; i < n; i++ {
			dest[i] = src[i]
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			dest[i] = src[i]
		}
	}
	return dest
}

//go:noinline
func naiveMemmoveO2(dest, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dest
	}
	if uintptr(unsafe.Pointer(&dest[0])) < uintptr(unsafe.Pointer(&src[0])) {
		for i := 0; i < n; i++ {
			dest[i] = src[i]
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			dest[i] = src[i]
		}
	}
	return dest
}

//go:noinline
func naiveMemmoveO3(dest, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dest
	}
	if uintptr(unsafe.Pointer(&dest[0])) < uintptr(unsafe.Pointer(&src[0])) {
		for i := 0; i < n; i++ {
			dest[i] = src[i]
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			dest[i] = src[i]
		}
	}
	return dest
}
