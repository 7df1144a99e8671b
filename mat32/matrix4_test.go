// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-5

func assertMatrix(t *testing.T, want, got Matrix4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance, "element %d", i)
	}
}

func TestIdentity(t *testing.T) {
	id := Identity4()
	assert.Equal(t, float32(1), id.At(0, 0))
	assert.Equal(t, float32(0), id.At(0, 3))
	assertMatrix(t, id, id.Mul(Identity4()))

	v := Vec4(2, -3, 5, 1)
	assert.Equal(t, v, id.MulVector4(v))
}

func TestRotationXY(t *testing.T) {
	assertMatrix(t, Identity4(), RotationXY(0, 0))

	// intrinsic X-then-Y equals RotationX * RotationY, not the reverse
	dx, dy := float32(0.3), float32(-0.7)
	assertMatrix(t, RotationX(dx).Mul(RotationY(dy)), RotationXY(dx, dy))

	rev := RotationY(dy).Mul(RotationX(dx))
	diff := RotationXY(dx, dy)
	same := true
	for i := range diff {
		if Abs(diff[i]-rev[i]) > tolerance {
			same = false
		}
	}
	assert.False(t, same, "composition order must matter")
}

func TestRotationMapsAxes(t *testing.T) {
	// quarter turn about Z maps +X to +Y
	rz := RotationZ(Pi / 2)
	v := rz.MulVector4(Vec4(1, 0, 0, 1))
	assert.InDelta(t, 0, v.X, tolerance)
	assert.InDelta(t, 1, v.Y, tolerance)

	// quarter turn about X maps +Y to +Z
	rx := RotationX(Pi / 2)
	v = rx.MulVector4(Vec4(0, 1, 0, 1))
	assert.InDelta(t, 0, v.Y, tolerance)
	assert.InDelta(t, 1, v.Z, tolerance)
}

func TestTranslation(t *testing.T) {
	tr := Translation(3, -2)
	assert.Equal(t, float32(3), tr[12])
	assert.Equal(t, float32(-2), tr[13])
	v := tr.MulVector4(Vec4(1, 1, 1, 1))
	assert.Equal(t, Vec4(4, -1, 1, 1), v)

	// deltas compose in the transform's local frame
	rz := RotationZ(Pi / 2)
	moved := rz.Mul(Translation(1, 0)).MulVector4(Vec4(0, 0, 0, 1))
	assert.InDelta(t, 0, moved.X, tolerance)
	assert.InDelta(t, 1, moved.Y, tolerance)
}

func TestScale(t *testing.T) {
	s := Scale(2)
	assert.Equal(t, Vec4(2, 4, 6, 1), s.MulVector4(Vec4(1, 2, 3, 1)))
	sx := ScaleXYZ(2, 3, 4)
	assert.Equal(t, Vec4(2, 3, 4, 1), sx.MulVector4(Vec4(1, 1, 1, 1)))
}

func TestLookAt(t *testing.T) {
	eye := Vec3(0, 0, 2)
	view := LookAt(eye, Vec3(0, 0, 0), Vec3(0, 1, 0))

	// the eye maps to the view-space origin
	at := view.MulVector4(Vector4FromVector3(eye, 1))
	assert.InDelta(t, 0, at.X, tolerance)
	assert.InDelta(t, 0, at.Y, tolerance)
	assert.InDelta(t, 0, at.Z, tolerance)

	// the target lands on the forward axis at the eye distance
	tg := view.MulVector4(Vec4(0, 0, 0, 1))
	assert.InDelta(t, 0, tg.X, tolerance)
	assert.InDelta(t, 0, tg.Y, tolerance)
	assert.InDelta(t, 2, Abs(tg.Z), tolerance)
}

func TestLookAtDegenerate(t *testing.T) {
	// eye == target: rotation falls back to identity, translation remains
	view := LookAt(Vec3(1, 2, 3), Vec3(1, 2, 3), Vec3(0, 1, 0))
	assertMatrix(t, TranslationXYZ(-1, -2, -3), view)

	// up parallel to the view direction: same fallback
	view = LookAt(Vec3(0, 0, 0), Vec3(0, 1, 0), Vec3(0, 1, 0))
	assertMatrix(t, Identity4(), view)
}

func TestInverse(t *testing.T) {
	m := RotationXY(0.4, 1.1).Mul(TranslationXYZ(2, -3, 5)).Mul(Scale(1.5))
	inv, err := m.Inverse()
	assert.NoError(t, err)
	assertMatrix(t, Identity4(), m.Mul(inv))
	assertMatrix(t, Identity4(), inv.Mul(m))

	var zero Matrix4
	_, err = zero.Inverse()
	assert.Error(t, err)
}

func TestRowAccess(t *testing.T) {
	var m Matrix4
	m.SetRow(2, Vec4(1, 2, 3, 4))
	assert.Equal(t, Vec4(1, 2, 3, 4), m.Row(2))
	assert.Equal(t, float32(2), m.At(2, 1))
}
