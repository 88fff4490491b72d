package physics

import (
	"cmp"
	"fmt"
	"math"

	"rigid-kernel/internal/vmath"
)

// Force is a push on a body. TimeRemaining counts down once per step; PointApplied is
// relative to the body's center of mass and only affects torque.
type Force struct {
	Vector        vmath.Vector3 `yaml:"vector" json:"vector"`
	TimeRemaining float64       `yaml:"time_remaining" json:"time_remaining"`
	PointApplied  vmath.Vector3 `yaml:"point_applied" json:"point_applied"`
}

// NewForce returns a force that never expires, applied at the center of mass.
func NewForce(v vmath.Vector3) Force {
	return Force{Vector: v, TimeRemaining: math.Inf(1)}
}

// NewTimedForce returns a force that lasts duration seconds of simulation time.
func NewTimedForce(v vmath.Vector3, duration float64) Force {
	return Force{Vector: v, TimeRemaining: duration}
}

// NewForceAt returns a force applied at point for duration seconds (+Inf for indefinite).
func NewForceAt(v, point vmath.Vector3, duration float64) Force {
	return Force{Vector: v, TimeRemaining: duration, PointApplied: point}
}

// Magnitude returns |Vector|.
func (f Force) Magnitude() float64 {
	return f.Vector.Magnitude()
}

// Torque returns PointApplied × Vector.
func (f Force) Torque() vmath.Vector3 {
	return f.PointApplied.Cross(f.Vector)
}

// Expired reports whether the force no longer contributes: out of time or zero length.
func (f Force) Expired() bool {
	return f.TimeRemaining <= 0 || f.Magnitude() == 0
}

// Add combines the vectors of f and o. Lifetime and application point are taken from f.
func (f Force) Add(o Force) Force {
	f.Vector = f.Vector.Add(o.Vector)
	return f
}

// Sub subtracts o's vector from f's. Lifetime and application point are taken from f.
func (f Force) Sub(o Force) Force {
	f.Vector = f.Vector.Sub(o.Vector)
	return f
}

func (f Force) Scale(s float64) Force {
	f.Vector = f.Vector.Scale(s)
	return f
}

func (f Force) Div(s float64) Force {
	f.Vector = f.Vector.Div(s)
	return f
}

// Compare orders forces by magnitude: -1 if f is weaker than o, +1 if stronger, 0 if equal.
func (f Force) Compare(o Force) int {
	return cmp.Compare(f.Magnitude(), o.Magnitude())
}

func (f Force) MagnitudeGreaterThan(o Force) bool { return f.Compare(o) > 0 }

func (f Force) MagnitudeLessThan(o Force) bool { return f.Compare(o) < 0 }

func (f Force) MagnitudeEqual(o Force) bool { return f.Compare(o) == 0 }

func (f Force) String() string {
	return fmt.Sprintf("%v at %v for %gs", f.Vector, f.PointApplied, f.TimeRemaining)
}
