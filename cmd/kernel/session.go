package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"rigid-kernel/internal/commands"
	"rigid-kernel/internal/engineconfig"
	"rigid-kernel/internal/env"
	"rigid-kernel/internal/logger"
	"rigid-kernel/internal/physics"
	"rigid-kernel/internal/scenario"
)

// session is everything one CLI invocation works with.
type session struct {
	cfg      engineconfig.EngineConfig
	log      *logger.Logger
	world    *physics.World
	scenario *scenario.Scenario
	reg      *commands.Registry
}

func newSession(c *cli.Context) (*session, error) {
	if err := env.Load(c.GlobalString("env")); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	cfg, err := engineconfig.Load(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if c.IsSet("dt") {
		cfg.TimeStep = c.Float64("dt")
	}
	if c.IsSet("steps") {
		cfg.Steps = c.Int("steps")
	}
	if c.Bool("legacy-z") {
		cfg.LegacyZVelocity = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log := logger.New(cfg.LogPath)
	if !c.GlobalBool("quiet") {
		log.SetEcho(os.Stderr)
	}
	wcfg, err := cfg.WorldConfig(log)
	if err != nil {
		return nil, err
	}
	world, err := physics.NewWorld(wcfg)
	if err != nil {
		return nil, err
	}

	path := c.String("scenario")
	if path == "" {
		return nil, fmt.Errorf("--scenario is required")
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if err := sc.Populate(world); err != nil {
		return nil, err
	}
	log.Logf("loaded scenario %q: %d bodies, processor %s", sc.Name, world.Len(), world.Processor())

	reg := commands.NewRegistry()
	wc := &commands.WorldCommands{
		World:     world,
		Predictor: cfg.Predictor(),
		Out:       lineWriter{c.App.Writer},
		TimeStep:  cfg.TimeStep,
	}
	wc.Register(reg)
	return &session{cfg: cfg, log: log, world: world, scenario: sc, reg: reg}, nil
}

// lineWriter prints command output as plain lines, unlike the timestamped log.
type lineWriter struct{ w io.Writer }

func (l lineWriter) Log(line string) { fmt.Fprintln(l.w, line) }

func runAction(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	if len(s.scenario.Script) > 0 {
		return s.reg.RunScript(s.scenario.Script)
	}
	return s.reg.RunScript([]string{
		fmt.Sprintf("step -n %d", s.cfg.Steps),
		"print",
	})
}

func predictAction(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	return s.reg.Execute([]string{"predict", "-body", c.String("body"), "-n", fmt.Sprint(c.Int("n"))})
}

func collideAction(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	args := []string{"collide", "-a", c.String("a"), "-b", c.String("b"), "-mode", c.String("mode")}
	if err := s.reg.Execute(args); err != nil {
		return err
	}
	return s.reg.Execute([]string{"print"})
}
