package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for comparing scalar floats with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector(1, 2) = %v; want (1, 2)", v)
	}
}

func TestNewVectorPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"east", 1, 0, Vector2D{1, 0}},
		{"north", 1, math.Pi / 2, Vector2D{0, 1}},
		{"west", 2, math.Pi, Vector2D{-2, 0}},
		{"zero radius", 0, 1.3, Vector2D{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVectorPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}
}

func TestAddSubMul(t *testing.T) {
	a := Vector2D{1, 2}
	b := Vector2D{3, -4}

	if got := a.Add(b); !got.Eq(Vector2D{4, -2}) {
		t.Errorf("Add = %v; want (4, -2)", got)
	}
	if got := a.Sub(b); !got.Eq(Vector2D{-2, 6}) {
		t.Errorf("Sub = %v; want (-2, 6)", got)
	}
	if got := a.Mul(2.5); !got.Eq(Vector2D{2.5, 5}) {
		t.Errorf("Mul = %v; want (2.5, 5)", got)
	}
}

func TestDiv(t *testing.T) {
	v := Vector2D{4, -2}
	got, err := v.Div(2)
	if err != nil {
		t.Fatalf("Div(2) returned error: %v", err)
	}
	if !got.Eq(Vector2D{2, -1}) {
		t.Errorf("Div(2) = %v; want (2, -1)", got)
	}

	inf, err := v.Div(0)
	if err == nil {
		t.Error("Div(0) expected error, got nil")
	}
	if !math.IsInf(inf.X, 1) || !math.IsInf(inf.Y, 1) {
		t.Errorf("Div(0) = %v; want (+Inf, +Inf)", inf)
	}
}

func TestDot(t *testing.T) {
	a := Vector2D{1, 2}
	b := Vector2D{3, 4}
	if got := a.Dot(b); !floatEquals(got, 11) {
		t.Errorf("Dot = %v; want 11", got)
	}
}

func TestLenAndLenSqr(t *testing.T) {
	v := Vector2D{3, 4}
	if got := v.Len(); !floatEquals(got, 5) {
		t.Errorf("Len = %v; want 5", got)
	}
	if got := v.LenSqr(); !floatEquals(got, 25) {
		t.Errorf("LenSqr = %v; want 25", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vector2D{3, 4}
	n := v.Normalize()
	if !floatEquals(n.Len(), 1) {
		t.Errorf("Normalize length = %v; want 1", n.Len())
	}
	if !n.Eq(Vector2D{0.6, 0.8}) {
		t.Errorf("Normalize = %v; want (0.6, 0.8)", n)
	}

	// Zero vector must stay zero, not become NaN.
	z := Vector2D{}.Normalize()
	if !z.Eq(Vector2D{}) {
		t.Errorf("Normalize of zero vector = %v; want (0, 0)", z)
	}
}

func TestDistanceTo(t *testing.T) {
	a := Vector2D{0, 0}
	b := Vector2D{3, 4}
	if got := a.DistanceTo(b); !floatEquals(got, 5) {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
	if got := a.DistanceSquaredTo(b); !floatEquals(got, 25) {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestAngle(t *testing.T) {
	if got := (Vector2D{1, 0}).Angle(); !floatEquals(got, 0) {
		t.Errorf("Angle of (1,0) = %v; want 0", got)
	}
	if got := (Vector2D{0, 1}).Angle(); !floatEquals(got, math.Pi/2) {
		t.Errorf("Angle of (0,1) = %v; want Pi/2", got)
	}
}

func TestEq(t *testing.T) {
	a := Vector2D{1, 1}
	b := Vector2D{1 + Epsilon/2, 1 - Epsilon/2}
	c := Vector2D{1.1, 1}
	if !a.Eq(b) {
		t.Error("expected vectors within epsilon to be equal")
	}
	if a.Eq(c) {
		t.Error("expected clearly different vectors to be unequal")
	}
}

func TestString(t *testing.T) {
	v := Vector2D{1.234, -5.678}
	if got := v.String(); got != "(1.23, -5.68)" {
		t.Errorf("String = %q; want %q", got, "(1.23, -5.68)")
	}
}
