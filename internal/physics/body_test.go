package physics

import (
	"math"
	"strings"
	"testing"

	"rigid-kernel/internal/vmath"
)

func TestNewBody(t *testing.T) {
	b := NewBody("probe", 2, 3)
	if !b.Position.IsZero() || !b.Velocity.IsZero() || !b.Acceleration.IsZero() {
		t.Errorf("new body is not at rest at the origin: %+v", b)
	}
	if b.Rotation != vmath.Identity() {
		t.Errorf("Rotation = %v, want identity", b.Rotation)
	}
	if b.Shape3D != PointMass3D || b.Shape2D != PointMass2D {
		t.Errorf("shapes = %v, %v", b.Shape3D, b.Shape2D)
	}
	if b.Time != 0 || len(b.ActiveForces) != 0 {
		t.Errorf("time %v, forces %v", b.Time, b.ActiveForces)
	}
	if b.Charge != 1 {
		t.Errorf("Charge = %v, want 1", b.Charge)
	}
}

func TestApplyForceVariants(t *testing.T) {
	b := NewBody("probe", 1, 1)
	b.ApplyForce(vmath.BasisI)
	b.ApplyForceFor(vmath.BasisJ, 2)
	b.ApplyForceAt(vmath.BasisK, vmath.BasisI, math.Inf(1))
	if len(b.ActiveForces) != 3 {
		t.Fatalf("forces = %d", len(b.ActiveForces))
	}
	if !math.IsInf(b.ActiveForces[0].TimeRemaining, 1) || b.ActiveForces[1].TimeRemaining != 2 {
		t.Errorf("lifetimes = %v, %v", b.ActiveForces[0].TimeRemaining, b.ActiveForces[1].TimeRemaining)
	}
	if b.ActiveForces[2].PointApplied != vmath.BasisI {
		t.Errorf("PointApplied = %v", b.ActiveForces[2].PointApplied)
	}
	b.ClearForces()
	if len(b.ActiveForces) != 0 {
		t.Errorf("ClearForces left %d", len(b.ActiveForces))
	}
}

func TestSnapshotDoesNotPrune(t *testing.T) {
	b := NewBody("probe", 1, 1)
	b.ApplyForce(vmath.Vec3(2, 0, 0))
	b.ApplyForceFor(vmath.Vec3(5, 0, 0), 0)
	s := b.Snapshot()
	if s.ActiveForces != 1 || s.NetForce != vmath.Vec3(2, 0, 0) {
		t.Errorf("snapshot = %d forces, net %v", s.ActiveForces, s.NetForce)
	}
	if len(b.ActiveForces) != 2 {
		t.Errorf("snapshot pruned the body: %d forces left", len(b.ActiveForces))
	}
	if s.Shape3D != "point_mass" {
		t.Errorf("Shape3D = %q", s.Shape3D)
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := NewBody("probe", 1, 1)
	b.Charge = 1.5
	b.Shape3D = Cube
	b.ApplyForceFor(vmath.BasisI, 3)
	c, err := b.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if c.Snapshot() != b.Snapshot() {
		t.Fatalf("clone differs:\n%+v\n%+v", c.Snapshot(), b.Snapshot())
	}
	c.ActiveForces[0].Vector = vmath.BasisJ
	if b.ActiveForces[0].Vector != vmath.BasisI {
		t.Fatal("clone shares force storage")
	}
}

func TestBodyString(t *testing.T) {
	b := NewBody("probe", 4, 1)
	if s := b.String(); !strings.HasPrefix(s, "probe: at position") || !strings.Contains(s, "mass 4") {
		t.Errorf("String() = %q", s)
	}
}

func TestParseShapes(t *testing.T) {
	if s, err := ParseShape3D("Cube"); err != nil || s != RectangularPrism || s.Vertices() != 8 {
		t.Errorf("ParseShape3D(Cube) = %v, %v", s, err)
	}
	if s, err := ParseShape3D(""); err != nil || s != PointMass3D {
		t.Errorf("ParseShape3D(\"\") = %v, %v", s, err)
	}
	if s, err := ParseShape2D("square"); err != nil || s != Quadrilateral {
		t.Errorf("ParseShape2D(square) = %v, %v", s, err)
	}
	if _, err := ParseShape2D("blob"); err == nil {
		t.Error("unknown 2d shape accepted")
	}
	if _, err := ParseShape3D("torus"); err == nil {
		t.Error("unknown 3d shape accepted")
	}
}
