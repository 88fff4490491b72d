package vmath

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrIndexOutOfRange is returned by indexed component access outside the valid range.
var ErrIndexOutOfRange = errors.New("vmath: index out of range")

// Vector3 is a 3D vector value. Its magnitude is always derived from the current components.
type Vector3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Basis vectors.
var (
	BasisI = Vector3{1, 0, 0}
	BasisJ = Vector3{0, 1, 0}
	BasisK = Vector3{0, 0, 1}
)

// Vec3 returns the vector (x, y, z).
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func fromMgl(v mgl64.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

func (v Vector3) mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Magnitude returns the Euclidean norm of the vector.
func (v Vector3) Magnitude() float64 {
	return v.mgl().Len()
}

// MagnitudeSq returns the squared norm.
func (v Vector3) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div divides every component by s. Division by zero follows IEEE rules; callers validate s.
func (v Vector3) Div(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.mgl().Dot(o.mgl())
}

// Cross returns v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return fromMgl(v.mgl().Cross(o.mgl()))
}

// Normalize returns the unit vector in the direction of v. The zero vector normalizes to zero.
func (v Vector3) Normalize() Vector3 {
	if v.IsZero() {
		return Vector3{}
	}
	return fromMgl(v.mgl().Normalize())
}

// IsZero reports whether all components are exactly zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Equal reports exact component equality.
func (v Vector3) Equal(o Vector3) bool {
	return v == o
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector3) ApproxEqual(o Vector3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

// Component returns component i (0=X, 1=Y, 2=Z).
func (v Vector3) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, fmt.Errorf("vector component %d: %w", i, ErrIndexOutOfRange)
}

// SetComponent sets component i (0=X, 1=Y, 2=Z).
func (v *Vector3) SetComponent(i int, value float64) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		return fmt.Errorf("vector component %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
