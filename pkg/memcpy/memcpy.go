// Package memcpy implements the memory-copy stressor: a battery of
// memcpy/memmove style primitives driven over three fixed-size working
// buffers, with optional verification of every operation.
package memcpy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	log "github.com/sirupsen/logrus"
	"weike.sh/stressbox/pkg/stress"
)

const (
	// AlignSize is the offset used by the overlapping move steps and
	// the amount of random seed data planted in str3.
	AlignSize = 64
	// MemSize is the size of each of the three working buffers.
	MemSize = 2048
	// Loops is how many times the inner pattern runs per bogo op.
	Loops = 1024
)

// Settings-store keys the stressor resolves its options from.
const (
	methodSetting = "memcpy-method"
	opsSetting    = "memcpy-ops"
)

// ErrNoResource reports that the stressor could not allocate its
// working set; the harness may keep running other workers.
var ErrNoResource = errors.New("no resources")

type methodInfo struct {
	name string
	fn   func(*Stressor)
}

// methods is the canonical table; the "all" round-robin depends on this
// ordering, so entries must not be reordered.
var methods = []methodInfo{
	{"all", (*Stressor).memcpyAll},
	{"libc", (*Stressor).memcpyLibc},
	{"builtin", (*Stressor).memcpyBuiltin},
	{"naive", (*Stressor).memcpyNaive},
	{"naive_o0", (*Stressor).memcpyNaiveO0},
	{"naive_o1", (*Stressor).memcpyNaiveO1},
	{"naive_o2", (*Stressor).memcpyNaiveO2},
	{"naive_o3", (*Stressor).memcpyNaiveO3},
}

// MethodNames returns the valid method names in table order.
func MethodNames() []string {
	names := make([]string, len(methods))
	for i := range methods {
		names[i] = methods[i].name
	}
	return names
}

func lookupMethod(name string) *methodInfo {
	for i := range methods {
		if methods[i].name == name {
			return &methods[i]
		}
	}
	return nil
}

// SetMethod selects the memcpy method by name in the settings store.
// An unknown name is rejected with the full list of valid names.
func SetMethod(settings *stress.Settings, name string) error {
	if lookupMethod(name) == nil {
		return fmt.Errorf("memcpy-method must be one of: %s",
			strings.Join(MethodNames(), " "))
	}
	settings.SetString(methodSetting, name)
	return nil
}

// SetDefaults installs the default method selection.
func SetDefaults(settings *stress.Settings) {
	settings.SetString(methodSetting, "all")
}

// SetOps records the per-worker bogo-op bound; 0 means unbounded.
func SetOps(settings *stress.Settings, ops uint64) {
	settings.SetUint64(opsSetting, ops)
}

// Ops returns the configured bogo-op bound, 0 when unset.
func Ops(settings *stress.Settings) uint64 {
	ops, _ := settings.GetUint64(opsSetting)
	return ops
}

// Stressor owns everything one worker needs: the working buffers, the
// round-robin cursor, the current sub-method name for diagnostics, and
// the wrapper selection. Nothing here is shared between workers.
type Stressor struct {
	args     *stress.Args
	settings *stress.Settings

	buf  []byte
	str1 []byte
	str2 []byte
	str3 []byte

	methodName string
	whence     int

	cpyCheck checkFunc
	movCheck checkFunc

	migrate func(oldCPU int) int
}

func New(args *stress.Args, settings *stress.Settings) *Stressor {
	return &Stressor{
		args:     args,
		settings: settings,
	}
}

// SetMigrateHook installs a callback run between method invocations so
// the harness can move the worker to another CPU mid-run. The hook
// receives the CPU the worker was last seen on (-1 when unknown) and
// returns the CPU it ended up on.
func (s *Stressor) SetMigrateHook(hook func(oldCPU int) int) {
	s.migrate = hook
}

// Run allocates the working set and drives the selected method until the
// keep-stressing predicate says otherwise. Returns ErrNoResource when
// the buffers cannot be allocated.
func (s *Stressor) Run() error {
	buf, err := allocBuffer(3 * MemSize)
	if err != nil {
		log.Infof("%s: cannot allocate %s sized buffer: %v", s.args.Name,
			datasize.ByteSize(3*MemSize).HumanReadable(), err)
		return ErrNoResource
	}
	s.buf = buf
	s.str1 = buf[:MemSize]
	s.str2 = buf[MemSize : 2*MemSize]
	s.str3 = buf[2*MemSize:]

	s.bindCheckers()

	method := &methods[0]
	if name, ok := s.settings.GetString(methodSetting); ok {
		// unknown names were rejected at configuration time; fall
		// back to "all" just in case.
		if info := lookupMethod(name); info != nil {
			method = info
		}
	}

	stress.RndBuf(s.str3[:AlignSize])

	s.args.SetProcState(stress.StateRun)

	curCPU := -1
	for {
		method.fn(s)
		s.args.IncCounter()
		if !s.args.KeepStressing() {
			break
		}
		if s.migrate != nil {
			curCPU = s.migrate(curCPU)
		}
	}

	s.args.SetProcState(stress.StateDeinit)

	s.str1, s.str2, s.str3, s.buf = nil, nil, nil, nil
	return freeBuffer(buf)
}

// bindCheckers latches the verification mode for the whole run.
func (s *Stressor) bindCheckers() {
	if stress.Flag(stress.FlagVerify) {
		s.cpyCheck = s.memcpyCheck
		s.movCheck = s.memmoveCheck
	} else {
		s.cpyCheck = s.memcpyNoCheck
		s.movCheck = s.memmoveNoCheck
	}
}

// MethodName returns the name of the sub-method that ran last, as used
// in diagnostics.
func (s *Stressor) MethodName() string {
	return s.methodName
}
