package physics

import (
	"fmt"
	"math"

	"github.com/jinzhu/copier"

	"rigid-kernel/internal/vmath"
)

// Body is a rigid body: linear and rotational motion state, mass properties, shape tags and the
// forces currently acting on it. A Body is not safe for concurrent use; World serializes access.
type Body struct {
	Name string

	Position     vmath.Vector3
	Velocity     vmath.Vector3
	Acceleration vmath.Vector3

	Rotation            vmath.Quaternion
	AngularVelocity     vmath.Vector3
	AngularAcceleration vmath.Vector3

	Mass            float64
	MomentOfInertia float64
	// Size is the body's length, width and height. Metadata only.
	Size    vmath.Vector3
	Shape3D Shape3D
	Shape2D Shape2D
	// Charge in coulombs, 1 for a new body. Carried for field extensions; dynamics ignore it.
	Charge float64

	// Time is the simulation timestamp of this state.
	Time float64

	ActiveForces []Force
}

const defaultCharge = 1

// NewBody returns a body at rest at the origin with identity rotation.
// Mass and momentOfInertia must be positive before the body can be simulated.
func NewBody(name string, mass, momentOfInertia float64) *Body {
	return &Body{
		Name:            name,
		Rotation:        vmath.Identity(),
		Mass:            mass,
		MomentOfInertia: momentOfInertia,
		Shape3D:         PointMass3D,
		Shape2D:         PointMass2D,
		Charge:          defaultCharge,
		ActiveForces:    []Force{},
	}
}

// ApplyForce adds a force that never expires, applied at the center of mass.
func (b *Body) ApplyForce(v vmath.Vector3) {
	b.ActiveForces = append(b.ActiveForces, NewForce(v))
}

// ApplyForceFor adds a force that lasts duration seconds.
func (b *Body) ApplyForceFor(v vmath.Vector3, duration float64) {
	b.ActiveForces = append(b.ActiveForces, NewTimedForce(v, duration))
}

// ApplyForceAt adds a force at point (relative to the center of mass) for duration seconds.
// Pass math.Inf(1) for an indefinite force.
func (b *Body) ApplyForceAt(v, point vmath.Vector3, duration float64) {
	b.ActiveForces = append(b.ActiveForces, NewForceAt(v, point, duration))
}

// AddForce appends an already built force.
func (b *Body) AddForce(f Force) {
	b.ActiveForces = append(b.ActiveForces, f)
}

// ClearForces removes every active force.
func (b *Body) ClearForces() {
	b.ActiveForces = b.ActiveForces[:0]
}

// Validate reports ErrInvalidBody when mass or moment of inertia is not a positive finite number.
func (b *Body) Validate() error {
	if err := b.validateMass(); err != nil {
		return err
	}
	if !(b.MomentOfInertia > 0) || math.IsInf(b.MomentOfInertia, 0) {
		return fmt.Errorf("%s: moment of inertia %g: %w", b.label(), b.MomentOfInertia, ErrInvalidBody)
	}
	return nil
}

func (b *Body) validateMass() error {
	if !(b.Mass > 0) || math.IsInf(b.Mass, 0) {
		return fmt.Errorf("%s: mass %g: %w", b.label(), b.Mass, ErrInvalidBody)
	}
	return nil
}

func (b *Body) label() string {
	if b.Name == "" {
		return "body"
	}
	return fmt.Sprintf("body %q", b.Name)
}

// Clone returns a deep copy. The force list is copied, not shared.
func (b *Body) Clone() (*Body, error) {
	if b == nil {
		return nil, fmt.Errorf("clone nil body: %w", ErrInvalidBody)
	}
	out := &Body{}
	if err := copier.CopyWithOption(out, b, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone %s: %w", b.label(), err)
	}
	if out.ActiveForces == nil {
		out.ActiveForces = []Force{}
	}
	return out, nil
}

func (b *Body) String() string {
	return fmt.Sprintf("%s: at position %v at rotation %v moving with velocity %v at an acceleration of %v; "+
		"%d active forces with net force %v; angular velocity %v, angular acceleration %v; mass %g, charge %gC",
		b.Name, b.Position, b.Rotation, b.Velocity, b.Acceleration,
		len(b.ActiveForces), b.liveNetForce(), b.AngularVelocity, b.AngularAcceleration, b.Mass, b.Charge)
}
