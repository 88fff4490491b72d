package scenario

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"rigid-kernel/internal/physics"
	"rigid-kernel/internal/vmath"
)

const dropTest = `
name: drop test
bodies:
  - name: ball
    mass: 2
    moment_of_inertia: 0.4
    position: {x: 0, y: 10, z: 0}
    velocity: {x: 1}
    shape3d: sphere
    shape2d: circle
    charge: -1.5
    rotation:
      axis: {z: 1}
      angle: 1.5707963267948966
    forces:
      - vector: {y: -19.6}
      - vector: {x: 4}
        point: {y: 1}
        duration: 0.5
  - name: wall
    mass: 100
    moment_of_inertia: 50
    shape3d: cube
script:
  - step -n 10
  - print
`

func TestParseAndBuild(t *testing.T) {
	s, err := Parse([]byte(dropTest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name != "drop test" || len(s.Bodies) != 2 || len(s.Script) != 2 {
		t.Fatalf("scenario = %+v", s)
	}
	ball, err := s.Bodies[0].Body()
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	if ball.Position != vmath.Vec3(0, 10, 0) || ball.Velocity != vmath.Vec3(1, 0, 0) {
		t.Errorf("kinematics = %v, %v", ball.Position, ball.Velocity)
	}
	if ball.Shape3D != physics.Sphere || ball.Shape2D != physics.Circle || ball.Charge != -1.5 {
		t.Errorf("metadata = %v %v %v", ball.Shape3D, ball.Shape2D, ball.Charge)
	}
	if got := ball.Rotation.Rotate(vmath.BasisI); !got.ApproxEqual(vmath.BasisJ, 1e-9) {
		t.Errorf("rotation maps i to %v", got)
	}
	if len(ball.ActiveForces) != 2 {
		t.Fatalf("forces = %v", ball.ActiveForces)
	}
	if !math.IsInf(ball.ActiveForces[0].TimeRemaining, 1) {
		t.Errorf("omitted duration should be indefinite, got %v", ball.ActiveForces[0].TimeRemaining)
	}
	if f := ball.ActiveForces[1]; f.TimeRemaining != 0.5 || f.PointApplied != vmath.BasisJ {
		t.Errorf("timed force = %+v", f)
	}
}

func TestPopulate(t *testing.T) {
	s, err := Parse([]byte(dropTest))
	if err != nil {
		t.Fatal(err)
	}
	w, err := physics.NewWorld(physics.WorldConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Populate(w); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	wall, err := w.Body("wall")
	if err != nil {
		t.Fatal(err)
	}
	if wall.Shape3D != physics.Cube || wall.Mass != 100 {
		t.Errorf("wall = %+v", wall)
	}
}

func TestPopulateAddsNothingOnError(t *testing.T) {
	s, err := Parse([]byte("bodies:\n  - name: ok\n    mass: 1\n    moment_of_inertia: 1\n  - name: ghost\n    mass: 0\n    moment_of_inertia: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	w, err := physics.NewWorld(physics.WorldConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Populate(w); !errors.Is(err, physics.ErrInvalidBody) {
		t.Fatalf("Populate err = %v", err)
	}
	if w.Len() != 0 {
		t.Errorf("world has %d bodies after failed populate", w.Len())
	}
}

func TestChargeDefaultsUnlessGiven(t *testing.T) {
	s, err := Parse([]byte("bodies:\n  - name: plain\n    mass: 1\n    moment_of_inertia: 1\n  - name: neutral\n    mass: 1\n    moment_of_inertia: 1\n    charge: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{1, 0} {
		b, err := s.Bodies[i].Body()
		if err != nil {
			t.Fatal(err)
		}
		if b.Charge != want {
			t.Errorf("%s: Charge = %v, want %v", b.Name, b.Charge, want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unnamed":   "bodies:\n  - mass: 1\n",
		"duplicate": "bodies:\n  - name: a\n    mass: 1\n  - name: a\n    mass: 2\n",
		"bad yaml":  "bodies: [",
	}
	for name, doc := range tests {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}

func TestBodyRejectsInvalid(t *testing.T) {
	if _, err := (BodyDef{Name: "ghost", Mass: 0, MomentOfInertia: 1}).Body(); !errors.Is(err, physics.ErrInvalidBody) {
		t.Errorf("zero mass: err = %v", err)
	}
	if _, err := (BodyDef{Name: "blob", Mass: 1, MomentOfInertia: 1, Shape3D: "torus"}).Body(); err == nil {
		t.Error("unknown shape accepted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drop.yaml")
	if err := os.WriteFile(path, []byte(dropTest), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil || len(s.Bodies) != 2 {
		t.Fatalf("Load = %v, %v", s, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}
