//go:build !linux

package affinity

import (
	"fmt"

	"weike.sh/stressbox/pkg/stress"
)

// SetCPUAffinity always fails on platforms without a CPU-mask scheduler
// facility; the CLI turns this into a failure exit.
func SetCPUAffinity(list string) error {
	return fmt.Errorf("%s: setting CPU affinity not supported", option)
}

// BoundList reports an empty mask; no bind can ever have happened.
func BoundList() []int {
	return nil
}

// CurrentList is unsupported.
func CurrentList() ([]int, error) {
	return nil, fmt.Errorf("getting CPU affinity not supported")
}

// ChangeCPU is a no-op without a scheduler mask to manipulate.
func ChangeCPU(args *stress.Args, oldCPU int) int {
	return oldCPU
}
