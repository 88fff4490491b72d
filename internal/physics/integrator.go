package physics

import "rigid-kernel/internal/vmath"

// Simulate advances the body by one timeStep with semi-implicit Euler: velocity is updated
// before position. Forces are treated as constant across the step, so timeStep should be small.
// Forces are refreshed with UpdateForces and then queried again, so a force whose lifetime
// runs out during this step no longer contributes to it. The body is validated first and left
// untouched on error.
func (b *Body) Simulate(timeStep float64) error {
	if err := b.Validate(); err != nil {
		return err
	}
	b.Time += timeStep

	if err := b.UpdateForces(timeStep); err != nil {
		return err
	}
	acc := b.accumulate()

	b.Acceleration = acc.force.Div(b.Mass)
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(timeStep))
	b.Position = b.Position.Add(b.Velocity.Scale(timeStep))

	b.AngularAcceleration = acc.torque.Div(b.MomentOfInertia)
	b.AngularVelocity = b.AngularVelocity.Add(b.AngularAcceleration.Scale(timeStep))
	// world frame: the step's rotation composes on the outside
	step := vmath.FromAxisAngle(b.AngularVelocity, b.AngularVelocity.Magnitude()*timeStep)
	b.Rotation = step.Mul(b.Rotation)
	return nil
}
