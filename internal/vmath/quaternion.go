package vmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion is a rotation (W, X, Y, Z). Repeated composition drifts from unit length;
// callers renormalize when they need to.
type Quaternion struct {
	W float64 `yaml:"w" json:"w"`
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Identity returns the no-rotation quaternion.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

func quatFromMgl(q mgl64.Quat) Quaternion {
	return Quaternion{W: q.W, X: q.V[0], Y: q.V[1], Z: q.V[2]}
}

func (q Quaternion) mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// FromAxisAngle builds a rotation of angle radians about axis. The axis is normalized here;
// a zero axis yields the identity.
func FromAxisAngle(axis Vector3, angle float64) Quaternion {
	if axis.IsZero() {
		return Identity()
	}
	return quatFromMgl(mgl64.QuatRotate(angle, axis.Normalize().mgl()))
}

// Mul returns q*o: the rotation o followed by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return quatFromMgl(q.mgl().Mul(o.mgl()))
}

// Len returns the quaternion norm.
func (q Quaternion) Len() float64 {
	return q.mgl().Len()
}

// Normalize returns q scaled to unit length. A zero quaternion normalizes to the identity.
func (q Quaternion) Normalize() Quaternion {
	return quatFromMgl(q.mgl().Normalize())
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Rotate applies the rotation to v. q is expected to be unit length.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	return fromMgl(q.mgl().Rotate(v.mgl()))
}

// ApproxEqual reports whether every component differs by at most eps.
func (q Quaternion) ApproxEqual(o Quaternion, eps float64) bool {
	return math.Abs(q.W-o.W) <= eps && math.Abs(q.X-o.X) <= eps &&
		math.Abs(q.Y-o.Y) <= eps && math.Abs(q.Z-o.Z) <= eps
}

// Component returns component i (0=W, 1=X, 2=Y, 3=Z).
func (q Quaternion) Component(i int) (float64, error) {
	switch i {
	case 0:
		return q.W, nil
	case 1:
		return q.X, nil
	case 2:
		return q.Y, nil
	case 3:
		return q.Z, nil
	}
	return 0, fmt.Errorf("quaternion component %d: %w", i, ErrIndexOutOfRange)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("[%g; %g, %g, %g]", q.W, q.X, q.Y, q.Z)
}
