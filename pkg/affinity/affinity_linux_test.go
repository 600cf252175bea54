//go:build linux

package affinity

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
	"weike.sh/stressbox/pkg/stress"
)

func TestChangeCPU_Disabled(t *testing.T) {
	stress.ClearFlag(stress.FlagChangeCPU)

	args := stress.NewArgs("memcpy", 0, 0)
	assert.Equal(t, 5, ChangeCPU(args, 5))
	assert.Equal(t, -1, ChangeCPU(args, -1))
}

func TestChangeCPU_CachedSingleCPU(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var old unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &old))
	defer unix.SchedSetaffinity(0, &old)

	target := -1
	for i := 0; i < len(old)*64; i++ {
		if old.IsSet(i) {
			target = i
			break
		}
	}
	require.GreaterOrEqual(t, target, 0)

	savedBound := bound
	defer func() { bound = savedBound }()
	bound = unix.CPUSet{}
	bound.Set(target)

	stress.SetFlag(stress.FlagChangeCPU)
	defer stress.ClearFlag(stress.FlagChangeCPU)

	args := stress.NewArgs("memcpy", 0, 0)
	assert.Equal(t, target, ChangeCPU(args, -1))
}

func TestChangeCPU_AvoidsFromCPU(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var old unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &old))
	defer unix.SchedSetaffinity(0, &old)

	var cpus []int
	for i := 0; i < len(old)*64 && len(cpus) < 2; i++ {
		if old.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	if len(cpus) < 2 {
		t.Skip("need at least 2 usable CPUs")
	}

	savedBound := bound
	defer func() { bound = savedBound }()
	bound = unix.CPUSet{}
	bound.Set(cpus[0])
	bound.Set(cpus[1])

	stress.SetFlag(stress.FlagChangeCPU)
	defer stress.ClearFlag(stress.FlagChangeCPU)

	args := stress.NewArgs("memcpy", 0, 0)
	moved := ChangeCPU(args, cpus[0])
	assert.Equal(t, cpus[1], moved)
}

func TestSetCPUAffinity_BadList(t *testing.T) {
	for _, list := range []string{"", "bogus", "3-1"} {
		err := SetCPUAffinity(list)
		require.Errorf(t, err, "list %q", list)
		assert.IsType(t, &ParseError{}, err)
	}
}

func TestSetCPUAffinity_Binds(t *testing.T) {
	var old unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &old))
	defer func() {
		unix.SchedSetaffinity(0, &old)
		bound = unix.CPUSet{}
	}()

	current, err := CurrentList()
	require.NoError(t, err)
	require.NotEmpty(t, current)

	require.NoError(t, SetCPUAffinity(FormatList(current)))
	assert.Equal(t, current, BoundList())
	assert.Equal(t, len(current), bound.Count())
}
