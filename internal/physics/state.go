package physics

import "rigid-kernel/internal/vmath"

// BodyState is a flat, read-only snapshot of a body for renderers and serializers.
type BodyState struct {
	Name                string           `yaml:"name" json:"name"`
	Time                float64          `yaml:"time" json:"time"`
	Position            vmath.Vector3    `yaml:"position" json:"position"`
	Velocity            vmath.Vector3    `yaml:"velocity" json:"velocity"`
	Acceleration        vmath.Vector3    `yaml:"acceleration" json:"acceleration"`
	Rotation            vmath.Quaternion `yaml:"rotation" json:"rotation"`
	AngularVelocity     vmath.Vector3    `yaml:"angular_velocity" json:"angular_velocity"`
	AngularAcceleration vmath.Vector3    `yaml:"angular_acceleration" json:"angular_acceleration"`
	Mass                float64          `yaml:"mass" json:"mass"`
	MomentOfInertia     float64          `yaml:"moment_of_inertia" json:"moment_of_inertia"`
	Size                vmath.Vector3    `yaml:"size" json:"size"`
	Shape3D             string           `yaml:"shape3d" json:"shape3d"`
	Shape2D             string           `yaml:"shape2d" json:"shape2d"`
	Charge              float64          `yaml:"charge" json:"charge"`
	ActiveForces        int              `yaml:"active_forces" json:"active_forces"`
	NetForce            vmath.Vector3    `yaml:"net_force" json:"net_force"`
}

// Snapshot captures the body's current state. Expired forces are excluded from the count
// and net force but are not removed from the body.
func (b *Body) Snapshot() BodyState {
	live := 0
	for _, f := range b.ActiveForces {
		if !f.Expired() {
			live++
		}
	}
	return BodyState{
		Name:                b.Name,
		Time:                b.Time,
		Position:            b.Position,
		Velocity:            b.Velocity,
		Acceleration:        b.Acceleration,
		Rotation:            b.Rotation,
		AngularVelocity:     b.AngularVelocity,
		AngularAcceleration: b.AngularAcceleration,
		Mass:                b.Mass,
		MomentOfInertia:     b.MomentOfInertia,
		Size:                b.Size,
		Shape3D:             b.Shape3D.String(),
		Shape2D:             b.Shape2D.String(),
		Charge:              b.Charge,
		ActiveForces:        live,
		NetForce:            b.liveNetForce(),
	}
}
