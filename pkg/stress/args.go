package stress

import (
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// State annotates where in its lifecycle a worker currently is.
type State string

const (
	StateInit   State = "init"
	StateRun    State = "run"
	StateDeinit State = "deinit"
	StateExit   State = "exit"
)

// Args carries the per-worker identity and accounting shared between a
// stressor and the surrounding harness. One Args value belongs to exactly
// one worker; only the counter and the stop latch are touched from other
// goroutines, so both are atomics.
type Args struct {
	// Name of the stressor, e.g. "memcpy"; prefixes all diagnostics.
	Name string
	// Instance number of this worker, 0..N-1.
	Instance int
	// MaxOps bounds the number of bogo operations; 0 means unbounded.
	MaxOps uint64
	// Deadline stops the worker when it passes; zero means no deadline.
	Deadline time.Time

	counter uint64
	stop    uint32
	state   atomic.Value
}

func NewArgs(name string, instance int, maxOps uint64) *Args {
	args := &Args{
		Name:     name,
		Instance: instance,
		MaxOps:   maxOps,
	}
	args.state.Store(StateInit)
	return args
}

// IncCounter accounts one completed bogo operation.
func (a *Args) IncCounter() {
	atomic.AddUint64(&a.counter, 1)
}

// Counter returns the number of bogo operations completed so far.
func (a *Args) Counter() uint64 {
	return atomic.LoadUint64(&a.counter)
}

// Stop asks the worker to finish after its current operation.
func (a *Args) Stop() {
	atomic.StoreUint32(&a.stop, 1)
}

// KeepStressing is polled by the stress loop between method invocations.
func (a *Args) KeepStressing() bool {
	if atomic.LoadUint32(&a.stop) != 0 {
		return false
	}
	if a.MaxOps > 0 && a.Counter() >= a.MaxOps {
		return false
	}
	if !a.Deadline.IsZero() && time.Now().After(a.Deadline) {
		return false
	}
	return true
}

// SetProcState records the lifecycle state of the worker.
func (a *Args) SetProcState(state State) {
	a.state.Store(state)
	log.Debugf("%s: instance %d entering state %s", a.Name, a.Instance, state)
}

// ProcState returns the lifecycle state last recorded by the worker.
func (a *Args) ProcState() State {
	return a.state.Load().(State)
}
