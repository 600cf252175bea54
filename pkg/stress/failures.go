package stress

import (
	"fmt"
	"sync"
	"time"

	"github.com/eapache/queue"
	log "github.com/sirupsen/logrus"
)

// failureBacklog bounds how many individual failure records we keep
// around; the total count is tracked separately and never trimmed.
const failureBacklog = 64

// Failure is one recorded verification mismatch.
type Failure struct {
	Name string
	Msg  string
	Time time.Time
}

var failures = struct {
	sync.Mutex
	ring  *queue.Queue
	total uint64
}{ring: queue.New()}

// Failf reports a verification failure on behalf of the named stressor
// instance. The failure is logged on the error channel and recorded so
// the harness can decide at exit whether the whole run failed; it never
// aborts the worker.
func Failf(name, format string, argv ...interface{}) {
	msg := fmt.Sprintf(format, argv...)
	log.Errorf("%s: %s", name, msg)

	failures.Lock()
	defer failures.Unlock()
	failures.total++
	failures.ring.Add(Failure{Name: name, Msg: msg, Time: time.Now()})
	for failures.ring.Length() > failureBacklog {
		failures.ring.Remove()
	}
}

// FailureCount returns the total number of failures reported so far.
func FailureCount() uint64 {
	failures.Lock()
	defer failures.Unlock()
	return failures.total
}

// RecentFailures drains and returns the retained failure records,
// oldest first.
func RecentFailures() []Failure {
	failures.Lock()
	defer failures.Unlock()

	records := make([]Failure, 0, failures.ring.Length())
	for failures.ring.Length() > 0 {
		records = append(records, failures.ring.Remove().(Failure))
	}
	return records
}

// ResetFailures clears both the records and the total count.
func ResetFailures() {
	failures.Lock()
	defer failures.Unlock()
	for failures.ring.Length() > 0 {
		failures.ring.Remove()
	}
	failures.total = 0
}
