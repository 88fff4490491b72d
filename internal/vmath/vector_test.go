package vmath

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestVector3Magnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want float64
	}{
		{"zero", Vector3{}, 0},
		{"unit x", BasisI, 1},
		{"3-4-0", Vec3(3, 4, 0), 5},
		{"negative", Vec3(-1, -2, -2), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Magnitude(); math.Abs(got-tt.want) > eps {
				t.Errorf("Magnitude() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVector3MagnitudeFollowsMutation(t *testing.T) {
	v := Vec3(1, 2, 3)
	for i, val := range []float64{-4, 0.5, 12} {
		if err := v.SetComponent(i, val); err != nil {
			t.Fatalf("SetComponent(%d): %v", i, err)
		}
		want := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		got := v.Magnitude()
		if got < 0 || math.Abs(got-want) > eps {
			t.Fatalf("after setting %d: Magnitude() = %v, want %v", i, got, want)
		}
	}
}

func TestVector3Component(t *testing.T) {
	v := Vec3(7, 8, 9)
	for i, want := range []float64{7, 8, 9} {
		got, err := v.Component(i)
		if err != nil || got != want {
			t.Errorf("Component(%d) = %v, %v; want %v", i, got, err, want)
		}
	}
	for _, i := range []int{-1, 3, 100} {
		if _, err := v.Component(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Component(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
		if err := v.SetComponent(i, 1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetComponent(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	if v != Vec3(7, 8, 9) {
		t.Errorf("failed SetComponent modified vector: %v", v)
	}
}

func TestVector3Algebra(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(-3, 0, 5)
	if got := a.Add(b); got != Vec3(-2, 2, 8) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != Vec3(4, 2, -2) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != Vec3(2, 4, 6) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Div(2); got != Vec3(0.5, 1, 1.5) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Neg(); got != Vec3(-1, -2, -3) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
	if got := BasisI.Cross(BasisJ); !got.ApproxEqual(BasisK, eps) {
		t.Errorf("i x j = %v, want k", got)
	}
	if got := BasisJ.Cross(BasisI); !got.ApproxEqual(BasisK.Neg(), eps) {
		t.Errorf("j x i = %v, want -k", got)
	}
	if got := a.Cross(b); !got.ApproxEqual(Vec3(10, -14, 6), eps) {
		t.Errorf("Cross = %v, want (10, -14, 6)", got)
	}
}

func TestVector3Normalize(t *testing.T) {
	n := Vec3(29183284.2374234, 2738223.232732, -2372).Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-9 {
		t.Fatalf("unit vector magnitude = %v", n.Magnitude())
	}
	if z := (Vector3{}).Normalize(); !z.IsZero() {
		t.Fatalf("zero vector normalized to %v", z)
	}
}
