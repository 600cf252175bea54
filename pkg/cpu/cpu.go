// Package cpu answers basic questions about the processors of the host:
// how many are configured, and which one the caller is running on.
package cpu

import (
	"io/ioutil"
	"regexp"
	"runtime"
)

const sysCPUDir = "/sys/devices/system/cpu"

var cpuDirRe = regexp.MustCompile(`^cpu\d+$`)

// Configured returns the number of CPUs configured on the host. The cpu
// list in sysfs can be sparse due to offlined cpus, so counting the cpuN
// entries is more faithful than runtime.NumCPU, which only reports the
// cpus in the current affinity mask. Returns -1 when nothing can be
// determined, which disables range validation in callers.
func Configured() int32 {
	files, err := ioutil.ReadDir(sysCPUDir)
	if err != nil {
		if n := runtime.NumCPU(); n > 0 {
			return int32(n)
		}
		return -1
	}

	var count int32
	for _, file := range files {
		if cpuDirRe.MatchString(file.Name()) {
			count++
		}
	}
	if count == 0 {
		return int32(runtime.NumCPU())
	}
	return count
}
