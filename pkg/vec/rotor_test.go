package vec

import (
	"math"
	"testing"
)

// arbitraryRotors mirrors the construction pkg/sceneio's rotationDoc.toRotor
// uses for scene-file input: a raw scalar+bivector literal, normalized.
func arbitraryRotors() []Rotor {
	return []Rotor{
		Rotor{Scalar: 1, XY: 0, XZ: 0, YZ: 0}.Normalize(),
		Rotor{Scalar: 0.5, XY: 0.2, XZ: -0.1, YZ: 0.3}.Normalize(),
		Rotor{Scalar: 0.1, XY: 0.9, XZ: 0.2, YZ: -0.4}.Normalize(),
		Rotor{Scalar: -0.3, XY: 0.4, XZ: 0.6, YZ: 0.1}.Normalize(),
	}
}

func TestRotor_InverseRoundTrip(t *testing.T) {
	v := New(1.5, -2.25, 0.75)

	for _, r := range arbitraryRotors() {
		m := r.ToMat3()
		inv := m.Transpose()

		rotated := m.MulVec3(v)
		back := inv.MulVec3(rotated)

		if back.Sub(v).Length() > 1e-9 {
			t.Errorf("rotor=%v: R^-1(R(v)) = %v, want %v", r, back, v)
		}
	}
}

func TestRotor_NormalizeOfZeroIsIdentity(t *testing.T) {
	r := Rotor{}.Normalize()
	if r != IdentityRotor() {
		t.Errorf("Normalize(zero rotor) = %v, want identity", r)
	}
}

func TestMat3_IsNearIdentity(t *testing.T) {
	if !IdentityRotor().ToMat3().IsNearIdentity() {
		t.Error("identity rotor's matrix should report near-identity")
	}
	for _, r := range arbitraryRotors()[1:] {
		if r.ToMat3().IsNearIdentity() {
			t.Errorf("rotor=%v is a non-trivial rotation, should not report near-identity", r)
		}
	}
}

func TestRotor_ToMat3PreservesVectorLength(t *testing.T) {
	v := New(5, -1, 2)
	for _, r := range arbitraryRotors() {
		m := r.ToMat3()
		if math.Abs(m.MulVec3(v).Length()-v.Length()) > 1e-9 {
			t.Errorf("rotor=%v changed vector length: got %v, want %v", r, m.MulVec3(v).Length(), v.Length())
		}
	}
}
