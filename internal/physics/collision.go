package physics

import (
	"fmt"
	"strings"

	"rigid-kernel/internal/vmath"
)

// CollisionMode selects how Resolve treats two colliding bodies.
type CollisionMode uint8

const (
	// CollisionNone produces a zero impulse and changes nothing.
	CollisionNone CollisionMode = iota
	// CollisionBounce is a placeholder: the impulse is computed, velocities are not changed.
	CollisionBounce
	// CollisionSlide is a placeholder: the impulse is computed, velocities are not changed.
	CollisionSlide
	// CollisionStick is a perfectly inelastic collision; both bodies leave with one shared velocity.
	CollisionStick
)

func (m CollisionMode) String() string {
	switch m {
	case CollisionNone:
		return "none"
	case CollisionBounce:
		return "bounce"
	case CollisionSlide:
		return "slide"
	case CollisionStick:
		return "stick"
	}
	return fmt.Sprintf("collision(%d)", uint8(m))
}

// Placeholder reports whether the mode computes an impulse without applying it.
func (m CollisionMode) Placeholder() bool {
	return m == CollisionBounce || m == CollisionSlide
}

// ParseCollisionMode maps a name (none, bounce, slide, stick) to a mode.
func ParseCollisionMode(name string) (CollisionMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CollisionNone, nil
	case "bounce":
		return CollisionBounce, nil
	case "slide":
		return CollisionSlide, nil
	case "stick":
		return CollisionStick, nil
	}
	return CollisionNone, fmt.Errorf("unknown collision mode %q", name)
}

// CollisionInfo is the result of one collision query. It references the two bodies; it does
// not own them. CollisionPoint and Duration are never computed since no geometric test exists.
type CollisionInfo struct {
	Collided       bool
	CollisionPoint vmath.Vector3
	Impulse        vmath.Vector3
	Duration       float64
	Object1        *Body
	Object2        *Body
}

func (c CollisionInfo) String() string {
	return fmt.Sprintf("Collided: %t, Collision Point: %v, Impulse: %v", c.Collided, c.CollisionPoint, c.Impulse)
}

// Resolve computes the total momentum of a and b and applies mode. Stick overwrites both
// bodies' velocities with momentum/(m1+m2). Bounce and Slide report the momentum as the
// impulse but leave velocities alone. None and unknown modes yield a zero impulse.
func Resolve(a, b *Body, mode CollisionMode) (CollisionInfo, error) {
	if a == nil || b == nil {
		return CollisionInfo{}, fmt.Errorf("resolve collision with nil body: %w", ErrInvalidBody)
	}
	info := CollisionInfo{Object1: a, Object2: b}
	momentum := a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass))

	switch mode {
	case CollisionBounce, CollisionSlide:
		info.Collided = true
		info.Impulse = momentum
	case CollisionStick:
		if err := a.validateMass(); err != nil {
			return info, err
		}
		if err := b.validateMass(); err != nil {
			return info, err
		}
		info.Collided = true
		info.Impulse = momentum
		final := momentum.Div(a.Mass + b.Mass)
		a.Velocity = final
		b.Velocity = final
	default:
		info.Impulse = vmath.Vector3{}
	}
	return info, nil
}

// Collide resolves a stick collision between b and other.
func (b *Body) Collide(other *Body) (CollisionInfo, error) {
	return Resolve(b, other, CollisionStick)
}
