package physics

import "rigid-kernel/internal/vmath"

// Predictor computes future states analytically, assuming the state's acceleration stays
// constant. It never steps the integrator and never mutates its input.
type Predictor struct {
	// LegacyZVelocity reproduces the historical velocity formula that derived the Z component
	// from the Y axis (vz = vy0 + ay*t). Positions are unaffected. Off by default.
	LegacyZVelocity bool
}

// SimulateAhead returns a copy of state advanced by deltaTime under constant acceleration:
// position p + v0*t + a*t²/2, velocity v0 + a*t. Rotation and forces are carried over as they are.
func (p Predictor) SimulateAhead(state *Body, deltaTime float64) (*Body, error) {
	out, err := state.Clone()
	if err != nil {
		return nil, err
	}
	t := deltaTime
	v0, a := out.Velocity, out.Acceleration

	finalV := vmath.Vec3(v0.X+a.X*t, v0.Y+a.Y*t, v0.Z+a.Z*t)
	if p.LegacyZVelocity {
		finalV.Z = v0.Y + a.Y*t
	}
	delta := vmath.Vec3(
		componentDisplacement(v0.X, t, a.X),
		componentDisplacement(v0.Y, t, a.Y),
		componentDisplacement(v0.Z, t, a.Z),
	)

	out.Velocity = finalV
	out.Position = out.Position.Add(delta)
	out.Time += deltaTime
	return out, nil
}

// ObjectStates returns totalStates predictions; state i is offset by timeStep*i from the
// original state, not chained from the previous prediction.
func (p Predictor) ObjectStates(state *Body, timeStep float64, totalStates int) ([]*Body, error) {
	if totalStates <= 0 {
		return []*Body{}, nil
	}
	out := make([]*Body, 0, totalStates)
	for i := 0; i < totalStates; i++ {
		s, err := p.SimulateAhead(state, timeStep*float64(i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// SimulateAhead predicts with the default (corrected) formula.
func SimulateAhead(state *Body, deltaTime float64) (*Body, error) {
	return Predictor{}.SimulateAhead(state, deltaTime)
}

// GetObjectStates predicts with the default (corrected) formula.
func GetObjectStates(state *Body, timeStep float64, totalStates int) ([]*Body, error) {
	return Predictor{}.ObjectStates(state, timeStep, totalStates)
}

// componentDisplacement is v0*t + a*t²/2 along one axis.
func componentDisplacement(v0, t, a float64) float64 {
	return v0*t + 0.5*a*t*t
}
