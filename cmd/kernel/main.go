package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"rigid-kernel/internal/engineconfig"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "kernel:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "kernel"
	app.Usage = "step, predict and collide rigid bodies described by a scenario file"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Value: engineconfig.DefaultPath,
			Usage: "engine config (YAML)",
		},
		cli.StringFlag{
			Name:  "env",
			Value: ".env",
			Usage: "file of KEY=VALUE overrides",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "do not echo log lines to stderr",
		},
	}
	scenarioFlag := cli.StringFlag{
		Name:  "scenario, s",
		Usage: "scenario file (YAML)",
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "run the scenario script, or step it --steps times when it has none",
			Flags: []cli.Flag{
				scenarioFlag,
				cli.IntFlag{Name: "steps", Usage: "steps to run (overrides config)"},
				cli.Float64Flag{Name: "dt", Usage: "step length in seconds (overrides config)"},
			},
			Action: runAction,
		},
		{
			Name:  "predict",
			Usage: "print analytically predicted states of one body",
			Flags: []cli.Flag{
				scenarioFlag,
				cli.StringFlag{Name: "body", Usage: "body name"},
				cli.IntFlag{Name: "n", Value: 10, Usage: "number of states"},
				cli.Float64Flag{Name: "dt", Usage: "spacing in seconds (default: config time_step)"},
				cli.BoolFlag{Name: "legacy-z", Usage: "use the historical Z velocity formula"},
			},
			Action: predictAction,
		},
		{
			Name:  "collide",
			Usage: "resolve one collision between two bodies and print the result",
			Flags: []cli.Flag{
				scenarioFlag,
				cli.StringFlag{Name: "a", Usage: "first body"},
				cli.StringFlag{Name: "b", Usage: "second body"},
				cli.StringFlag{Name: "mode", Value: "stick", Usage: "none, bounce, slide or stick"},
			},
			Action: collideAction,
		},
		{
			Name:   "view",
			Usage:  "open the raylib viewer",
			Flags:  []cli.Flag{scenarioFlag},
			Action: viewAction,
		},
	}
	return app
}
