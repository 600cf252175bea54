package main

import (
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"weike.sh/stressbox/pkg/cmd/stress"
)

const usage = `stressbox is a small memory/scheduler stress harness.
It binds itself to a chosen set of CPUs and hammers memcpy/memmove
style primitives over fixed-size buffers, optionally verifying
every single copy against the expected result.`

func init() {
	rand.Seed(time.Now().UnixNano())
}

func main() {
	app := cli.NewApp()
	app.Name = "stressbox"
	app.Usage = usage

	app.Commands = []cli.Command{
		stress.Run,
		stress.Methods,
		stress.Cpus,
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "print stressbox debug logs",
		},
	}

	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool("debug") {
			log.SetLevel(log.DebugLevel)
		}

		log.SetOutput(os.Stdout)
		log.SetFormatter(&prefixed.TextFormatter{
			ForceColors:     true,
			ForceFormatting: true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
