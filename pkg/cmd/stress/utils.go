package stress

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/Pallinder/go-randomdata"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"weike.sh/stressbox/pkg/affinity"
	"weike.sh/stressbox/pkg/memcpy"
	"weike.sh/stressbox/pkg/stress"
)

func runStressors(ctx *cli.Context) error {
	if ctx.Bool("verify") {
		stress.SetFlag(stress.FlagVerify)
	}
	if ctx.Bool("change-cpu") {
		stress.SetFlag(stress.FlagChangeCPU)
	}

	// option parsing happens before any real work: a bad taskset list
	// or method name must abort here, never mid-run.
	if list := ctx.String("taskset"); list != "" {
		if err := affinity.SetCPUAffinity(list); err != nil {
			return err
		}
	}

	settings := stress.NewSettings()
	memcpy.SetDefaults(settings)
	if method := ctx.String("memcpy-method"); method != "" {
		if err := memcpy.SetMethod(settings, method); err != nil {
			return err
		}
	}
	memcpy.SetOps(settings, ctx.Uint64("memcpy-ops"))

	session := ctx.String("name")
	if session == "" {
		// generate a random session name if necessary.
		session = strings.ToLower(randomdata.SillyName())
	}

	workers := ctx.Int("memcpy")
	if workers < 1 {
		workers = 1
	}

	var deadline time.Time
	if timeout := ctx.Duration("timeout"); timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	log.Infof("%s: starting %d memcpy worker(s)", session, workers)

	var wg sync.WaitGroup
	argsList := make([]*stress.Args, workers)
	start := time.Now()

	for i := 0; i < workers; i++ {
		args := stress.NewArgs("memcpy", i, memcpy.Ops(settings))
		args.Deadline = deadline
		argsList[i] = args

		wg.Add(1)
		go func(args *stress.Args) {
			defer wg.Done()
			runWorker(args, settings)
		}(args)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		log.Infof("%s: got signal %v, stopping workers", session, sig)
		for _, args := range argsList {
			args.Stop()
		}
		<-done
	case <-done:
	}

	elapsed := time.Since(start)
	report := stress.NewReport(session, argsList, elapsed)
	log.Infof("%s: %d bogo ops in %.2fs (%.2f ops/s)", session,
		report.TotalOps(), elapsed.Seconds(),
		float64(report.TotalOps())/elapsed.Seconds())

	if path := ctx.String("yamlfile"); path != "" {
		if err := report.WriteYAML(path); err != nil {
			return err
		}
		log.Debugf("%s: wrote metrics to %s", session, path)
	}

	if stress.Flag(stress.FlagVerify) && report.Failures > 0 {
		return fmt.Errorf("%s: %d verification failure(s) detected", session,
			report.Failures)
	}
	return nil
}

// runWorker pins one worker to an OS thread so migrations through the
// scheduler mask stick to it, then hands control to the stressor. With
// change-cpu enabled the worker migrates once at start and again between
// method invocations through the stressor's hook.
func runWorker(args *stress.Args, settings *stress.Settings) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	affinity.ChangeCPU(args, -1)

	stressor := memcpy.New(args, settings)
	stressor.SetMigrateHook(func(oldCPU int) int {
		return affinity.ChangeCPU(args, oldCPU)
	})
	if err := stressor.Run(); err != nil {
		log.Errorf("%s: instance %d exited: %v", args.Name, args.Instance, err)
		return
	}
	args.SetProcState(stress.StateExit)
}
