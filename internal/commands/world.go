package commands

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"rigid-kernel/internal/physics"
	"rigid-kernel/internal/vmath"
)

// Output receives the lines commands print.
type Output interface {
	Log(line string)
}

// WorldCommands wires the standard world commands into a registry.
type WorldCommands struct {
	World     *physics.World
	Predictor physics.Predictor
	Out       Output
	// TimeStep is the step length used when a command does not pass -dt.
	TimeStep float64
}

// Register adds apply, step, collide, predict, print, remove and clear to r.
func (wc *WorldCommands) Register(r *Registry) {
	r.Register("apply", "-body name -x -y -z [-px -py -pz] [-duration s]", wc.apply)
	r.Register("step", "[-n count] [-dt seconds]", wc.step)
	r.Register("collide", "-a name -b name [-mode none|bounce|slide|stick]", wc.collide)
	r.Register("predict", "-body name [-n count] [-dt seconds] [-legacy-z]", wc.predict)
	r.Register("print", "[-body name]", wc.print)
	r.Register("remove", "-body name", wc.remove)
	r.Register("clear", "", wc.clear)
}

func vectorFlags(fs *flag.FlagSet, prefix, what string) *vmath.Vector3 {
	v := &vmath.Vector3{}
	fs.Float64Var(&v.X, prefix+"x", 0, what+" x")
	fs.Float64Var(&v.Y, prefix+"y", 0, what+" y")
	fs.Float64Var(&v.Z, prefix+"z", 0, what+" z")
	return v
}

func (wc *WorldCommands) apply(fs *flag.FlagSet) func() error {
	name := fs.String("body", "", "target body")
	force := vectorFlags(fs, "", "force")
	point := vectorFlags(fs, "p", "application point")
	duration := fs.Float64("duration", 0, "seconds; 0 means indefinite")
	return func() error {
		b, err := wc.World.Body(*name)
		if err != nil {
			return err
		}
		d := *duration
		if d == 0 {
			d = math.Inf(1)
		}
		b.ApplyForceAt(*force, *point, d)
		wc.Out.Log(fmt.Sprintf("applied %v at %v to %q for %gs", *force, *point, b.Name, d))
		return nil
	}
}

func (wc *WorldCommands) step(fs *flag.FlagSet) func() error {
	n := fs.Int("n", 1, "number of steps")
	dt := fs.Float64("dt", 0, "step length in seconds; 0 uses the configured step")
	return func() error {
		h := *dt
		if h == 0 {
			h = wc.TimeStep
		}
		if !(h > 0) {
			return fmt.Errorf("step length must be positive, got %g", h)
		}
		if *n < 1 {
			return fmt.Errorf("step count must be at least 1, got %d", *n)
		}
		for i := 0; i < *n; i++ {
			if err := wc.World.Step(h); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		wc.Out.Log(fmt.Sprintf("stepped %d x %gs, world time %g", *n, h, wc.World.Elapsed()))
		return nil
	}
}

func (wc *WorldCommands) collide(fs *flag.FlagSet) func() error {
	a := fs.String("a", "", "first body")
	b := fs.String("b", "", "second body")
	mode := fs.String("mode", "stick", "none, bounce, slide or stick")
	return func() error {
		m, err := physics.ParseCollisionMode(*mode)
		if err != nil {
			return err
		}
		ba, err := wc.World.Body(*a)
		if err != nil {
			return err
		}
		bb, err := wc.World.Body(*b)
		if err != nil {
			return err
		}
		info, err := wc.World.Resolve(ba, bb, m)
		if err != nil {
			return err
		}
		wc.Out.Log(fmt.Sprintf("%s collision %q/%q: %v", m, ba.Name, bb.Name, info))
		return nil
	}
}

func (wc *WorldCommands) predict(fs *flag.FlagSet) func() error {
	name := fs.String("body", "", "body to predict")
	n := fs.Int("n", 5, "number of states")
	dt := fs.Float64("dt", 0, "spacing in seconds; 0 uses the configured step")
	legacy := fs.Bool("legacy-z", wc.Predictor.LegacyZVelocity, "use the historical Z velocity formula")
	return func() error {
		b, err := wc.World.Body(*name)
		if err != nil {
			return err
		}
		h := *dt
		if h == 0 {
			h = wc.TimeStep
		}
		p := wc.Predictor
		p.LegacyZVelocity = *legacy
		states, err := p.ObjectStates(b, h, *n)
		if err != nil {
			return err
		}
		for _, s := range states {
			wc.Out.Log(fmt.Sprintf("t=%g %q position %v velocity %v", s.Time, s.Name, s.Position, s.Velocity))
		}
		return nil
	}
}

func (wc *WorldCommands) print(fs *flag.FlagSet) func() error {
	name := fs.String("body", "", "only this body")
	return func() error {
		states := wc.World.Snapshots()
		if *name != "" {
			b, err := wc.World.Body(*name)
			if err != nil {
				return err
			}
			states = []physics.BodyState{b.Snapshot()}
		}
		data, err := yaml.Marshal(states)
		if err != nil {
			return err
		}
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			wc.Out.Log(line)
		}
		return nil
	}
}

func (wc *WorldCommands) remove(fs *flag.FlagSet) func() error {
	name := fs.String("body", "", "body to remove")
	return func() error {
		b, err := wc.World.Body(*name)
		if err != nil {
			return err
		}
		wc.World.RemoveBody(b)
		wc.Out.Log(fmt.Sprintf("removed %q", b.Name))
		return nil
	}
}

func (wc *WorldCommands) clear(fs *flag.FlagSet) func() error {
	return func() error {
		wc.World.Clear()
		wc.Out.Log("cleared world")
		return nil
	}
}
