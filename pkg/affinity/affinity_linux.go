//go:build linux

package affinity

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
	"weike.sh/stressbox/pkg/cpu"
	"weike.sh/stressbox/pkg/stress"
)

// bound caches the mask committed by SetCPUAffinity. It is written once
// before any worker starts and only read afterwards; a zero population
// count means no taskset option was given.
var bound unix.CPUSet

// SetCPUAffinity parses a CPU list, applies it to the whole process via
// the scheduler mask, and caches it for later migrations.
func SetCPUAffinity(list string) error {
	cpus, err := Parse(list)
	if err != nil {
		return err
	}

	var set unix.CPUSet
	for _, c := range cpus {
		set.Set(c)
	}

	if err := unix.SchedSetaffinity(os.Getpid(), &set); err != nil {
		errno, _ := err.(unix.Errno)
		return fmt.Errorf("%s: cannot set CPU affinity, errno=%d (%v)",
			option, int(errno), err)
	}
	bound = set

	log.Debugf("%s: bound process %d to CPUs %s", option, os.Getpid(), FormatList(cpus))
	return nil
}

// BoundList returns the CPUs of the cached mask, or nil when no bind
// has happened.
func BoundList() []int {
	return setToList(&bound)
}

// CurrentList queries the kernel for the effective mask of the calling
// thread.
func CurrentList() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("cannot get CPU affinity: %v", err)
	}
	return setToList(&set), nil
}

// ChangeCPU tries to move the calling thread to a different CPU than
// oldCPU. A negative oldCPU means "whatever CPU I am on now". Returns the
// CPU the thread ended up on, or oldCPU untouched when migration is
// disabled or the kernel refuses. Failures are expected on single-CPU
// masks, so they are only worth a debug line.
func ChangeCPU(args *stress.Args, oldCPU int) int {
	if !stress.Flag(stress.FlagChangeCPU) {
		return oldCPU
	}

	var mask unix.CPUSet
	if bound.Count() == 0 {
		if err := unix.SchedGetaffinity(0, &mask); err != nil {
			return oldCPU
		}
	} else {
		mask = bound
	}

	fromCPU := oldCPU
	if oldCPU < 0 {
		fromCPU = cpu.Current()
	} else if mask.Count() > 1 {
		// try hard not to land on the CPU we came from, but never
		// empty the mask.
		mask.Clear(fromCPU)
	}

	if err := unix.SchedSetaffinity(0, &mask); err != nil {
		log.Debugf("%s: instance %d could not migrate away from CPU %d: %v",
			args.Name, args.Instance, fromCPU, err)
		return fromCPU
	}

	movedCPU := cpu.Current()
	log.Debugf("%s: process [%d] (instance %d moved from CPU %d to CPU %d)",
		args.Name, os.Getpid(), args.Instance, fromCPU, movedCPU)
	return movedCPU
}

func setToList(set *unix.CPUSet) []int {
	var cpus []int
	for i := 0; i < len(set)*64; i++ {
		if set.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	return cpus
}
