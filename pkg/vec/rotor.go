package vec

import "math"

// Mat3 is a row-major 3x3 matrix, used as the materialized form of a Rotor
// for the ray-transform hot path.
type Mat3 struct {
	M [3][3]float64
}

// MulVec3 applies the matrix to a vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Transpose returns the transpose of the matrix. A rotation matrix's
// transpose is its inverse, which is how RenderObject avoids a runtime
// matrix inversion on construction.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.M[j][i] = m.M[i][j]
		}
	}
	return t
}

// Trace returns the sum of the diagonal elements.
func (m Mat3) Trace() float64 {
	return m.M[0][0] + m.M[1][1] + m.M[2][2]
}

// IsNearIdentity reports whether the rotation this matrix represents is
// close enough to the identity to skip on the hot path. It uses the cheap
// trace test cos(theta) = (trace-1)/2 rather than decomposing an angle.
func (m Mat3) IsNearIdentity() bool {
	cosTheta := (m.Trace() - 1) / 2
	return cosTheta > 0.999
}

// Rotor is a 3D rotation expressed as an even multivector: a scalar part
// plus an XY/XZ/YZ bivector part. This is the representation a scene file
// stores (see pkg/sceneio); RenderObject only ever uses its materialized
// Mat3 form on the hot path.
type Rotor struct {
	Scalar     float64
	XY, XZ, YZ float64
}

// IdentityRotor returns the rotor representing no rotation.
func IdentityRotor() Rotor {
	return Rotor{Scalar: 1}
}

// Normalize returns a unit rotor (unit magnitude over its four components).
func (r Rotor) Normalize() Rotor {
	n := math.Sqrt(r.Scalar*r.Scalar + r.XY*r.XY + r.XZ*r.XZ + r.YZ*r.YZ)
	if n == 0 {
		return IdentityRotor()
	}
	return Rotor{r.Scalar / n, r.XY / n, r.XZ / n, r.YZ / n}
}

// ToMat3 materializes the rotor as a 3x3 rotation matrix. Each bivector
// component rotates within its own plane: XY about the Z axis, XZ about
// the Y axis, YZ about the X axis.
func (r Rotor) ToMat3() Mat3 {
	s, xy, xz, yz := r.Scalar, r.XY, r.XZ, r.YZ
	return Mat3{M: [3][3]float64{
		{s*s - xy*xy - xz*xz + yz*yz, 2 * (yz*xz + s*xy), 2 * (yz*xy - s*xz)},
		{2 * (yz*xz - s*xy), s*s - xy*xy + xz*xz - yz*yz, 2 * (xz*xy + s*yz)},
		{2 * (yz*xy + s*xz), 2 * (xz*xy - s*yz), s*s + xy*xy - xz*xz - yz*yz},
	}}
}
