package physics

import (
	"errors"
	"testing"

	"rigid-kernel/internal/vmath"
)

func movingPair(m1, m2 float64, v1, v2 vmath.Vector3) (*Body, *Body) {
	a := NewBody("a", m1, 1)
	a.Velocity = v1
	b := NewBody("b", m2, 1)
	b.Velocity = v2
	return a, b
}

func TestResolveStickEqualMass(t *testing.T) {
	v1, v2 := vmath.Vec3(4, 0, -2), vmath.Vec3(-2, 6, 0)
	a, b := movingPair(3, 3, v1, v2)
	info, err := Resolve(a, b, CollisionStick)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := v1.Add(v2).Scale(0.5)
	if !a.Velocity.ApproxEqual(want, 1e-12) || !b.Velocity.ApproxEqual(want, 1e-12) {
		t.Errorf("velocities = %v, %v; want %v", a.Velocity, b.Velocity, want)
	}
	if !info.Collided {
		t.Error("Collided = false")
	}
	if !info.Impulse.ApproxEqual(vmath.Vec3(6, 18, -6), 1e-12) {
		t.Errorf("Impulse = %v", info.Impulse)
	}
	if info.Object1 != a || info.Object2 != b {
		t.Error("CollisionInfo does not reference the input bodies")
	}
}

func TestResolveStickConservesMomentum(t *testing.T) {
	a, b := movingPair(1, 4, vmath.Vec3(10, 0, 0), vmath.Vec3(0, 0, 0))
	before := a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass))
	if _, err := Resolve(a, b, CollisionStick); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	after := a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass))
	if !after.ApproxEqual(before, 1e-12) {
		t.Errorf("momentum %v -> %v", before, after)
	}
	if !a.Velocity.ApproxEqual(vmath.Vec3(2, 0, 0), 1e-12) {
		t.Errorf("shared velocity = %v, want (2, 0, 0)", a.Velocity)
	}
}

func TestResolvePlaceholderModes(t *testing.T) {
	for _, mode := range []CollisionMode{CollisionBounce, CollisionSlide} {
		t.Run(mode.String(), func(t *testing.T) {
			v1, v2 := vmath.Vec3(1, 0, 0), vmath.Vec3(0, -1, 0)
			a, b := movingPair(2, 5, v1, v2)
			info, err := Resolve(a, b, mode)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if !mode.Placeholder() {
				t.Error("Placeholder() = false")
			}
			if a.Velocity != v1 || b.Velocity != v2 {
				t.Errorf("velocities changed: %v, %v", a.Velocity, b.Velocity)
			}
			if info.Impulse != vmath.Vec3(2, -5, 0) {
				t.Errorf("Impulse = %v, want total momentum", info.Impulse)
			}
		})
	}
}

func TestResolveNone(t *testing.T) {
	for _, mode := range []CollisionMode{CollisionNone, CollisionMode(42)} {
		a, b := movingPair(1, 1, vmath.BasisI, vmath.BasisJ)
		info, err := Resolve(a, b, mode)
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		if !info.Impulse.IsZero() || info.Collided {
			t.Errorf("%v: info = %v", mode, info)
		}
		if a.Velocity != vmath.BasisI || b.Velocity != vmath.BasisJ {
			t.Errorf("%v: velocities changed", mode)
		}
	}
}

func TestResolveInvalid(t *testing.T) {
	a, b := movingPair(0, 1, vmath.BasisI, vmath.BasisJ)
	if _, err := Resolve(a, b, CollisionStick); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("zero mass stick: err = %v", err)
	}
	if a.Velocity != vmath.BasisI || b.Velocity != vmath.BasisJ {
		t.Error("velocities changed on error")
	}
	if _, err := Resolve(nil, b, CollisionStick); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("nil body: err = %v", err)
	}
}

func TestBodyCollideSticks(t *testing.T) {
	a, b := movingPair(1, 1, vmath.Vec3(2, 0, 0), vmath.Vec3(0, 0, 0))
	if _, err := a.Collide(b); err != nil {
		t.Fatalf("Collide: %v", err)
	}
	if a.Velocity != b.Velocity || a.Velocity != vmath.Vec3(1, 0, 0) {
		t.Errorf("velocities = %v, %v", a.Velocity, b.Velocity)
	}
}

func TestParseCollisionMode(t *testing.T) {
	for _, m := range []CollisionMode{CollisionNone, CollisionBounce, CollisionSlide, CollisionStick} {
		got, err := ParseCollisionMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseCollisionMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseCollisionMode("explode"); err == nil {
		t.Error("unknown mode accepted")
	}
}
