package main

import (
	"flag"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/urfave/cli"

	"rigid-kernel/internal/commands"
	"rigid-kernel/internal/debug"
	"rigid-kernel/internal/graphics"
	"rigid-kernel/internal/scene"
	"rigid-kernel/internal/terminal"
	"rigid-kernel/internal/ui"
)

// pathSpacing spreads predicted path points over several simulation steps.
const pathSpacing = 4

func viewAction(c *cli.Context) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	s.log.SetEcho(nil)

	v := s.cfg.Viewer
	scn := scene.New()
	scn.SetGridVisible(v.GridVisible)
	style := ui.DefaultStyle()
	for _, col := range []struct {
		hex string
		dst *rl.Color
	}{
		{v.BodyColor, &scn.BodyColor},
		{v.PathColor, &scn.PathColor},
		{v.PanelColor, &style.Background},
	} {
		if col.hex == "" {
			continue
		}
		parsed, err := ui.ParseHexColor(col.hex)
		if err != nil {
			return err
		}
		*col.dst = parsed
	}
	inspector := ui.NewInspector(style)
	overlay := debug.New(v.ShowFPS)

	// console output goes to the on-screen log instead of stdout
	reg := commands.NewRegistry()
	wc := &commands.WorldCommands{
		World:     s.world,
		Predictor: s.cfg.Predictor(),
		Out:       s.log,
		TimeStep:  s.cfg.TimeStep,
	}
	wc.Register(reg)

	paused := true
	reg.Register("pause", "toggle stepping every frame", func(_ *flag.FlagSet) func() error {
		return func() error {
			paused = !paused
			return nil
		}
	})
	reg.Register("select", "show one body in the inspector", func(fs *flag.FlagSet) func() error {
		name := fs.String("body", "", "body to inspect")
		return func() error {
			if _, err := s.world.Body(*name); err != nil {
				return err
			}
			inspector.Select(*name)
			inspector.Visible = true
			return nil
		}
	})
	term := terminal.New(s.log, reg)
	s.log.Log("ESC opens the console; P or \"cmd pause\" toggles stepping, TAB cycles the inspector, I hides it")

	var stepErr error
	update := func() {
		term.Update()
		scn.Update(term.IsOpen())
		if !term.IsOpen() {
			if rl.IsKeyPressed(rl.KeyTab) {
				inspector.Next(s.world.Snapshots())
				inspector.Visible = true
			}
			if rl.IsKeyPressed(rl.KeyI) {
				inspector.Visible = !inspector.Visible
			}
			if rl.IsKeyPressed(rl.KeyP) {
				paused = !paused
			}
		}
		if !paused && stepErr == nil {
			if stepErr = s.world.Step(s.cfg.TimeStep); stepErr != nil {
				s.log.Log(stepErr.Error())
			}
		}
		if err := scn.UpdatePaths(s.world.Bodies(), s.cfg.Predictor(), s.cfg.TimeStep*pathSpacing, v.PredictStates); err != nil {
			s.log.Log(err.Error())
		}
		scn.Selected = ""
		if inspector.Visible {
			scn.Selected = inspector.Selected()
		}
	}
	draw := func() {
		states := s.world.Snapshots()
		scn.Draw(states)
		overlay.Draw(debug.Stats{
			SimTime:   s.world.Elapsed(),
			Bodies:    len(states),
			Processor: s.world.Processor().String(),
			Paused:    paused,
		})
		inspector.Draw(states)
		term.Draw()
	}
	graphics.Run(graphics.Window{
		Title:     "kernel - " + s.scenario.Name,
		Width:     v.Width,
		Height:    v.Height,
		TargetFPS: v.TargetFPS,
		OnClose:   scn.Close,
	}, update, draw)
	return nil
}
