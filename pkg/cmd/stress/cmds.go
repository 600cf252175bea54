package stress

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
	"weike.sh/stressbox/pkg/affinity"
	"weike.sh/stressbox/pkg/cpu"
	"weike.sh/stressbox/pkg/memcpy"
)

var runFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "taskset",
		Usage: "Bind the run to a list of CPUs, e.g. 0,2-3",
	},
	cli.IntFlag{
		Name:  "memcpy,m",
		Usage: "Number of memcpy workers to start",
		Value: 1,
	},
	cli.StringFlag{
		Name:  "memcpy-method",
		Usage: "Memcpy method (one of: all libc builtin naive naive_o0..naive_o3)",
		Value: "all",
	},
	cli.Uint64Flag{
		Name:  "memcpy-ops",
		Usage: "Stop each worker after N bogo operations",
	},
	cli.DurationFlag{
		Name:  "timeout,t",
		Usage: "Stop all workers after the given duration, e.g. 30s",
	},
	cli.BoolFlag{
		Name:  "verify",
		Usage: "Verify every copy/move operation against the expected result",
	},
	cli.BoolFlag{
		Name:  "change-cpu",
		Usage: "Migrate workers away from the CPU they started on",
	},
	cli.StringFlag{
		Name:  "name,n",
		Usage: "Assign a name to the run session",
	},
	cli.StringFlag{
		Name:  "yamlfile",
		Usage: "Write end-of-run metrics to the given YAML file",
	},
}

var Run = cli.Command{
	Name:  "run",
	Usage: "Run the memcpy stressors",
	Flags: runFlags,
	Action: func(ctx *cli.Context) error {
		return runStressors(ctx)
	},
}

var Methods = cli.Command{
	Name:  "methods",
	Usage: "List all memcpy stress methods",
	Action: func(ctx *cli.Context) error {
		fmt.Println(strings.Join(memcpy.MethodNames(), "\n"))
		return nil
	},
}

var Cpus = cli.Command{
	Name:  "cpus",
	Usage: "Show the configured CPUs and the current affinity mask",
	Action: func(ctx *cli.Context) error {
		fmt.Printf("configured: %d\n", cpu.Configured())
		cpus, err := affinity.CurrentList()
		if err != nil {
			return err
		}
		fmt.Printf("affinity:   %s\n", affinity.FormatList(cpus))
		return nil
	},
}
