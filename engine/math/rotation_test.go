package math

import (
	m "math"
	"testing"
)

const tolerance float32 = 1e-4

func TestRotateIdentity(t *testing.T) {
	points := []Vec3{
		NewVec3(1, 2, 3),
		NewVec3(-4, 0.5, 9),
		NewVec3Zero(),
	}
	pivots := []Vec3{
		NewVec3Zero(),
		NewVec3(1, 1, 1),
		NewVec3(-10, 3, 7),
	}
	for _, p := range points {
		for _, pivot := range pivots {
			if got := Rotate(p, NewQuatIdentity(), pivot); !got.Compare(p, tolerance) {
				t.Errorf("Rotate(%v, identity, %v) = %v", p, pivot, got)
			}
			if got := RotateEuler(p, NewVec3Zero(), pivot); !got.Compare(p, tolerance) {
				t.Errorf("RotateEuler(%v, 0, %v) = %v", p, pivot, got)
			}
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	p := NewVec3(1, -2, 0.5)
	pivot := NewVec3(0.25, 3, -1)
	for _, angles := range []Vec3{
		NewVec3(0.3, -1.1, 0.7),
		NewVec3(K_HALF_PI, 0, 0),
		NewVec3(2, 2, 2),
		NewVec3(-3, 0.1, 1.5),
	} {
		q := NewQuatFromEuler(angles)
		back := Rotate(Rotate(p, q, pivot), q.Inverse(), pivot)
		if !back.Compare(p, tolerance) {
			t.Errorf("round trip for %v = %v, want %v", angles, back, p)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI, true)
	got := Rotate(NewVec3(1, 0, 0), q, NewVec3Zero())
	if want := NewVec3(0, 0, -1); !got.Compare(want, tolerance) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// About a pivot the offset rotates, not the point itself.
	got = Rotate(NewVec3(2, 0, 0), q, NewVec3(1, 0, 0))
	if want := NewVec3(1, 0, -1); !got.Compare(want, tolerance) {
		t.Fatalf("pivoted: got %v, want %v", got, want)
	}
}

func TestRotateEulerMatrixLayout(t *testing.T) {
	// The combined matrix is the transpose of Rz*Ry*Rx, so a positive roll
	// turns +X towards -Y.
	got := RotateEuler(NewVec3(1, 0, 0), NewVec3(0, 0, K_HALF_PI), NewVec3Zero())
	if want := NewVec3(0, -1, 0); !got.Compare(want, tolerance) {
		t.Fatalf("got %v, want %v", got, want)
	}

	mt := NewMat3Euler(NewVec3(0.3, -1.1, 0.7))
	cy, sy := kcos(-1.1), ksin(-1.1)
	cz, sz := kcos(0.7), ksin(0.7)
	if got, want := mt.At(0, 0), cy*cz; kabs(got-want) > tolerance {
		t.Errorf("m[0][0] = %v, want %v", got, want)
	}
	if got, want := mt.At(0, 1), cy*sz; kabs(got-want) > tolerance {
		t.Errorf("m[0][1] = %v, want %v", got, want)
	}
	if got, want := mt.At(0, 2), -sy; kabs(got-want) > tolerance {
		t.Errorf("m[0][2] = %v, want %v", got, want)
	}
}

func TestQuatFromEulerMatchesMatrix(t *testing.T) {
	points := []Vec3{NewVec3(1, 2, -0.5), NewVec3(-1, -1, -1), NewVec3(0, 3, 0)}
	for _, angles := range []Vec3{
		NewVec3(0.3, -1.1, 0.7),
		NewVec3(1, 1, 1),
		NewVec3(0, 0, K_PI),
		NewVec3(-2.5, 0.4, -0.9),
	} {
		q := NewQuatFromEuler(angles)
		for _, p := range points {
			want := RotateEuler(p, angles, NewVec3Zero())
			got := Rotate(p, q, NewVec3Zero())
			if !got.Compare(want, tolerance) {
				t.Errorf("angles %v point %v: quaternion %v, matrix %v", angles, p, got, want)
			}
		}
	}
}

func TestRotatePreservesLength(t *testing.T) {
	q := NewQuatFromEuler(NewVec3(0.9, 0.2, -1.7))
	p := NewVec3(3, -4, 12)
	if got := Rotate(p, q, NewVec3Zero()).Length(); kabs(got-13) > 1e-3 {
		t.Fatalf("length = %v, want 13", got)
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := NewQuatIdentity()
	b := NewQuatFromAxisAngle(NewVec3Up(), 1.2, true)
	if got := a.Slerp(b, 0); !got.Compare(a, tolerance) {
		t.Errorf("slerp(0) = %v", got)
	}
	if got := a.Slerp(b, 1); !got.Compare(b, tolerance) {
		t.Errorf("slerp(1) = %v", got)
	}
	half := a.Slerp(b, 0.5)
	want := NewQuatFromAxisAngle(NewVec3Up(), 0.6, true)
	if !half.Compare(want, tolerance) {
		t.Errorf("slerp(0.5) = %v, want %v", half, want)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp int = %d", got)
	}
	if got := Clamp(float32(-2.5), -1, 1); got != -1 {
		t.Errorf("Clamp float = %v", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp in range = %v", got)
	}
}

func TestDegRad(t *testing.T) {
	if got := DegToRad(180); kabs(got-K_PI) > tolerance {
		t.Errorf("DegToRad(180) = %v", got)
	}
	if got := RadToDeg(float32(m.Pi / 2)); kabs(got-90) > 1e-3 {
		t.Errorf("RadToDeg(pi/2) = %v", got)
	}
}
