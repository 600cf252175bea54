package stress

// Option flag bits mirrored from the command line. The CLI sets them once
// before any worker starts; workers only read them afterwards.
const (
	// FlagChangeCPU enables periodic migration away from the current CPU.
	FlagChangeCPU uint64 = 1 << iota
	// FlagVerify makes every copy/move operation check its result.
	FlagVerify
)

var optFlags uint64

// SetFlag turns the given option flag bit(s) on.
func SetFlag(flag uint64) {
	optFlags |= flag
}

// ClearFlag turns the given option flag bit(s) off.
func ClearFlag(flag uint64) {
	optFlags &^= flag
}

// Flag reports whether any of the given option flag bits are set.
func Flag(flag uint64) bool {
	return optFlags&flag != 0
}
