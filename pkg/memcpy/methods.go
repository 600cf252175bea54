package memcpy

import (
	"bytes"

	"weike.sh/stressbox/pkg/stress"
)

// checkFunc wraps one primitive invocation, optionally verifying it.
type checkFunc func(fn copyFunc, dest, src []byte) []byte

// memcpyCheck runs the copy and verifies both the content and the
// returned pointer. Mismatches are reported on the failure channel and
// never abort the worker.
func (s *Stressor) memcpyCheck(fn copyFunc, dest, src []byte) []byte {
	ptr := fn(dest, src)

	if !bytes.Equal(dest, src) {
		stress.Failf(s.args.Name, "%s: memcpy content is different than expected", s.methodName)
	}
	if len(ptr) == 0 || &ptr[0] != &dest[0] {
		stress.Failf(s.args.Name, "%s: memcpy return was %p and not %p as expected",
			s.methodName, ptr, dest)
	}
	return ptr
}

func (s *Stressor) memcpyNoCheck(fn copyFunc, dest, src []byte) []byte {
	return fn(dest, src)
}

func (s *Stressor) memmoveCheck(fn copyFunc, dest, src []byte) []byte {
	ptr := fn(dest, src)

	if !bytes.Equal(dest, src) {
		stress.Failf(s.args.Name, "%s: memmove content is different than expected", s.methodName)
	}
	if len(ptr) == 0 || &ptr[0] != &dest[0] {
		stress.Failf(s.args.Name, "%s: memmove return was %p and not %p as expected",
			s.methodName, ptr, dest)
	}
	return ptr
}

func (s *Stressor) memmoveNoCheck(fn copyFunc, dest, src []byte) []byte {
	return fn(dest, src)
}

// patternLoop drives the fixed eight-step sequence of aligned,
// unaligned, overlapping-forward and overlapping-backward operations
// Loops times. One full patternLoop is one bogo operation.
func (s *Stressor) patternLoop(name string, cpy, mov copyFunc) {
	s.methodName = name

	for i := 0; i < Loops; i++ {
		s.cpyCheck(cpy, s.str3[:MemSize], s.str2[:MemSize])
		s.cpyCheck(cpy, s.str2[:MemSize/2], s.str3[:MemSize/2])
		s.movCheck(mov, s.str3[:MemSize-AlignSize], s.str3[AlignSize:MemSize])
		s.cpyCheck(cpy, s.str1[:MemSize], s.str2[:MemSize])
		s.movCheck(mov, s.str3[AlignSize:MemSize], s.str3[:MemSize-AlignSize])
		s.cpyCheck(cpy, s.str3[:MemSize], s.str1[:MemSize])
		s.movCheck(mov, s.str3[1:MemSize], s.str3[:MemSize-1])
		s.movCheck(mov, s.str3[:MemSize-1], s.str3[1:MemSize])
	}
}

func (s *Stressor) memcpyLibc() {
	s.patternLoop("libc", libcMemcpy, libcMemmove)
}

// memcpyBuiltin: Go has no separate compiler-intrinsic memcpy path, so
// this is the documented fallback, reporting itself accordingly.
func (s *Stressor) memcpyBuiltin() {
	s.patternLoop("builtin (libc)", libcMemcpy, libcMemmove)
}

func (s *Stressor) memcpyNaive() {
	s.patternLoop("naive", naiveMemcpy, naiveMemmove)
}

func (s *Stressor) memcpyNaiveO0() {
	s.patternLoop("naive_o0", naiveMemcpyO0, naiveMemmoveO0)
}

func (s *Stressor) memcpyNaiveO1() {
	s.patternLoop("naive_o1", naiveMemcpyO1, naiveMemmoveO1)
}

func (s *Stressor) memcpyNaiveO2() {
	s.patternLoop("naive_o2", naiveMemcpyO2, naiveMemmoveO2)
}

func (s *Stressor) memcpyNaiveO3() {
	s.patternLoop("naive_o3", naiveMemcpyO3, naiveMemmoveO3)
}

// memcpyAll round-robins over a fixed subset of the table; the cursor is
// per-worker so concurrent workers each see the full cycle.
func (s *Stressor) memcpyAll() {
	switch s.whence {
	case 0:
		s.whence++
		s.memcpyLibc()
	case 1:
		s.whence++
		s.memcpyBuiltin()
	case 2:
		s.whence++
		s.memcpyNaive()
	case 3:
		s.whence++
		s.memcpyNaiveO0()
	default:
		s.whence = 0
		s.memcpyNaiveO3()
	}
}
