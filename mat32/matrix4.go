// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat32

import "fmt"

// Matrix4 is a 4x4 homogeneous transform matrix, stored in column-major
// order as expected by WGSL uniform layout, so its byte representation
// can be uploaded directly. Element (row r, column c) is at index c*4+r.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// SetAt sets the element at the given row and column.
func (m *Matrix4) SetAt(row, col int, v float32) {
	m[col*4+row] = v
}

// Row returns the given row as a [Vector4].
func (m Matrix4) Row(row int) Vector4 {
	return Vec4(m[row], m[4+row], m[8+row], m[12+row])
}

// SetRow sets the given row from a [Vector4], for assembling
// rotation sub-blocks row by row.
func (m *Matrix4) SetRow(row int, v Vector4) {
	m[row] = v.X
	m[4+row] = v.Y
	m[8+row] = v.Z
	m[12+row] = v.W
}

// Mul returns this matrix times the other given matrix (m * other).
// Composition order matters: the other transform is applied first.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * other[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulVector4 returns this matrix times the given vector.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vec4(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12]*v.W,
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13]*v.W,
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14]*v.W,
		m[3]*v.X+m[7]*v.Y+m[11]*v.Z+m[15]*v.W,
	)
}

// Translation returns a translation matrix for the given X and Y deltas:
// the identity with the fourth column X and Y rows set. Multiplying an
// existing transform by it applies the deltas in that transform's
// local frame.
func Translation(dx, dy float32) Matrix4 {
	return TranslationXYZ(dx, dy, 0)
}

// TranslationXYZ returns a translation matrix for the given deltas.
func TranslationXYZ(dx, dy, dz float32) Matrix4 {
	m := Identity4()
	m[12] = dx
	m[13] = dy
	m[14] = dz
	return m
}

// Scale returns a uniform diagonal scale matrix for the given factor.
func Scale(s float32) Matrix4 {
	return ScaleXYZ(s, s, s)
}

// ScaleXYZ returns a per-axis diagonal scale matrix.
func ScaleXYZ(x, y, z float32) Matrix4 {
	m := Identity4()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// RotationX returns a rotation matrix about the X axis by the
// given angle in radians.
func RotationX(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	m := Identity4()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

// RotationY returns a rotation matrix about the Y axis by the
// given angle in radians.
func RotationY(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	m := Identity4()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// RotationZ returns a rotation matrix about the Z axis by the
// given angle in radians.
func RotationZ(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	m := Identity4()
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	return m
}

// RotationXY returns the combined rotation about X by dx then about Y
// by dy, with the Y rotation applied in the already-rotated frame
// (intrinsic X-then-Y). The order is not commutative. Used for camera
// orbit from a 2D pointer delta. RotationXY(0, 0) is the identity.
func RotationXY(dx, dy float32) Matrix4 {
	return RotationX(dx).Mul(RotationY(dy))
}

// LookAt returns a right-handed view matrix for a camera at eye looking
// at target, with the given approximate up direction. The rotation rows
// are (right, trueUp, forward) composed with a translation by -eye.
// Degenerate inputs (eye == target, or up parallel to the view
// direction) contribute identity rotation instead of dividing by zero.
func LookAt(eye, target, up Vector3) Matrix4 {
	rot := Identity4()
	fwd := target.Sub(eye)
	if fwd.Length() > 0 {
		fwd = fwd.Normal()
		right := up.Cross(fwd)
		if right.Length() > 0 {
			right = right.Normal()
			trueUp := fwd.Cross(right)
			rot.SetRow(0, Vector4FromVector3(right, 0))
			rot.SetRow(1, Vector4FromVector3(trueUp, 0))
			rot.SetRow(2, Vector4FromVector3(fwd, 0))
		}
	}
	ne := eye.Negate()
	return rot.Mul(TranslationXYZ(ne.X, ne.Y, ne.Z))
}

// Inverse returns the inverse of this matrix, or an error if the
// matrix is singular (determinant 0).
func (m Matrix4) Inverse() (Matrix4, error) {
	n11, n12, n13, n14 := m[0], m[4], m[8], m[12]
	n21, n22, n23, n24 := m[1], m[5], m[9], m[13]
	n31, n32, n33, n34 := m[2], m[6], m[10], m[14]
	n41, n42, n43, n44 := m[3], m[7], m[11], m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if det == 0 {
		return Identity4(), fmt.Errorf("mat32.Matrix4 Inverse: matrix is singular")
	}
	idet := 1 / det

	var out Matrix4
	out[0] = t11 * idet
	out[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * idet
	out[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * idet
	out[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * idet
	out[4] = t12 * idet
	out[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * idet
	out[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * idet
	out[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * idet
	out[8] = t13 * idet
	out[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * idet
	out[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * idet
	out[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * idet
	out[12] = t14 * idet
	out[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * idet
	out[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * idet
	out[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * idet
	return out, nil
}
