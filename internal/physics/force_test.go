package physics

import (
	"math"
	"testing"

	"rigid-kernel/internal/vmath"
)

func TestNewForceDefaults(t *testing.T) {
	f := NewForce(vmath.Vec3(1, 2, 2))
	if !math.IsInf(f.TimeRemaining, 1) {
		t.Errorf("TimeRemaining = %v, want +Inf", f.TimeRemaining)
	}
	if !f.PointApplied.IsZero() {
		t.Errorf("PointApplied = %v, want origin", f.PointApplied)
	}
	if f.Magnitude() != 3 {
		t.Errorf("Magnitude = %v, want 3", f.Magnitude())
	}
	if !f.Torque().IsZero() {
		t.Errorf("Torque at origin = %v, want zero", f.Torque())
	}
}

func TestForceTorque(t *testing.T) {
	f := NewForceAt(vmath.Vec3(0, 10, 0), vmath.Vec3(2, 0, 0), math.Inf(1))
	if got := f.Torque(); !got.ApproxEqual(vmath.Vec3(0, 0, 20), 1e-12) {
		t.Fatalf("Torque = %v, want (0, 0, 20)", got)
	}
}

func TestForceExpired(t *testing.T) {
	tests := []struct {
		name string
		f    Force
		want bool
	}{
		{"indefinite", NewForce(vmath.BasisI), false},
		{"time left", NewTimedForce(vmath.BasisI, 0.5), false},
		{"exactly zero time", NewTimedForce(vmath.BasisI, 0), true},
		{"negative time", NewTimedForce(vmath.BasisI, -1), true},
		{"zero vector", NewForce(vmath.Vector3{}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Expired(); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForceArithmeticAndOrdering(t *testing.T) {
	a := NewTimedForce(vmath.Vec3(3, 0, 0), 2)
	b := NewForce(vmath.Vec3(0, 4, 0))

	sum := a.Add(b)
	if sum.Vector != vmath.Vec3(3, 4, 0) || sum.TimeRemaining != 2 {
		t.Errorf("Add = %+v", sum)
	}
	if diff := a.Sub(b); diff.Vector != vmath.Vec3(3, -4, 0) {
		t.Errorf("Sub = %v", diff.Vector)
	}
	if s := a.Scale(2); s.Vector != vmath.Vec3(6, 0, 0) {
		t.Errorf("Scale = %v", s.Vector)
	}
	if d := a.Div(3); d.Vector != vmath.Vec3(1, 0, 0) {
		t.Errorf("Div = %v", d.Vector)
	}

	if !b.MagnitudeGreaterThan(a) || a.MagnitudeGreaterThan(b) {
		t.Error("MagnitudeGreaterThan should order 4 over 3")
	}
	if !a.MagnitudeLessThan(b) {
		t.Error("MagnitudeLessThan(3, 4) = false")
	}
	// direction is irrelevant, only magnitude is compared
	if !a.MagnitudeEqual(NewForce(vmath.Vec3(0, 0, -3))) {
		t.Error("forces of equal magnitude compare unequal")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare is not consistent with magnitude")
	}
}
