// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/wgscene/wgscene/mat32"
)

const tolerance = 1e-5

func TestAxisGeometry(t *testing.T) {
	ax := NewAxis(mat32.Vec3(0, 0, 0), 2)
	assert.Equal(t, 6, len(ax.Positions))
	assert.Equal(t, 6, len(ax.Colors))
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, ax.Indexes)
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, ax.Topology())

	// tips land on the axes at the given length
	assert.Equal(t, mat32.Vec4(2, 0, 0, 1), ax.Positions[1])
	assert.Equal(t, mat32.Vec4(0, 2, 0, 1), ax.Positions[3])
	assert.Equal(t, mat32.Vec4(0, 0, 2, 1), ax.Positions[5])

	// X red, Y green, Z blue
	assert.Equal(t, mat32.Vec4(1, 0, 0, 1), ax.Colors[0])
	assert.Equal(t, mat32.Vec4(0, 1, 0, 1), ax.Colors[2])
	assert.Equal(t, mat32.Vec4(0, 0, 1, 1), ax.Colors[4])

	assert.Equal(t, mat32.Identity4(), ax.Transform())
}

func TestAxisOrigin(t *testing.T) {
	ax := NewAxis(mat32.Vec3(1, 1, 1), 0.5)
	assert.Equal(t, mat32.Vec4(1, 1, 1, 1), ax.Positions[0])
	assert.Equal(t, mat32.Vec4(1.5, 1, 1, 1), ax.Positions[1])
}

func TestCircleGeometry(t *testing.T) {
	ci, err := NewCircle(4, 1, mat32.Vec4(0.2, 0.4, 0.8, 1))
	assert.NoError(t, err)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, ci.Topology())

	// exactly 4 index triples, all referencing valid vertices
	assert.Equal(t, 12, len(ci.Indexes))
	for _, ix := range ci.Indexes {
		assert.Less(t, int(ix), len(ci.Positions))
	}

	// ring vertices lie on the unit circle to float32 precision
	for i := 0; i < 4; i++ {
		p := ci.Positions[i]
		assert.InDelta(t, 1, p.X*p.X+p.Y*p.Y, tolerance, "ring vertex %d", i)
		assert.Equal(t, float32(1), p.W)
	}

	// center vertex is appended after the ring
	assert.Equal(t, 5, len(ci.Positions))
	c := ci.Positions[4]
	assert.Equal(t, mat32.Vec4(0, 0, 0, 1), c)
}

func TestCircleAccumulatedRotation(t *testing.T) {
	// many divisions: drift stays within float32 tolerance for this scale
	ci, err := NewCircle(300, 2.5, mat32.Vec4(1, 1, 1, 1))
	assert.NoError(t, err)
	assert.Equal(t, 900, len(ci.Indexes))
	for i := 0; i < 300; i++ {
		p := ci.Positions[i]
		assert.InDelta(t, 6.25, p.X*p.X+p.Y*p.Y, 1e-3)
	}
}

func TestCircleBadConfig(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		_, err := NewCircle(n, 1, mat32.Vec4(1, 1, 1, 1))
		assert.True(t, errors.Is(err, ErrBadConfig), "divisions %d", n)
	}
}

func TestVertexBytesInterleaved(t *testing.T) {
	ax := NewAxis(mat32.Vec3(0, 0, 0), 1)
	vb := ax.VertexBytes()
	assert.Equal(t, 6*vertexStride, len(vb))

	// second vertex: position (1,0,0,1) then color red
	want := wgpu.ToBytes([]float32{1, 0, 0, 1, 1, 0, 0, 1})
	assert.Equal(t, want, vb[vertexStride:2*vertexStride])
}

func TestVertexLayout(t *testing.T) {
	ax := NewAxis(mat32.Vec3(0, 0, 0), 1)
	vl := ax.VertexLayout(3)
	assert.Equal(t, uint64(vertexStride), vl.ArrayStride)
	assert.Equal(t, 2, len(vl.Attributes))
	assert.Equal(t, wgpu.VertexFormatFloat32x4, vl.Attributes[0].Format)
	assert.Equal(t, uint64(0), vl.Attributes[0].Offset)
	assert.Equal(t, uint32(3), vl.Attributes[0].ShaderLocation)
	assert.Equal(t, uint64(16), vl.Attributes[1].Offset)
	assert.Equal(t, uint32(4), vl.Attributes[1].ShaderLocation)
}

func TestBindGroupLayoutEntry(t *testing.T) {
	lt := NewLighting()
	le := lt.BindGroupLayoutEntry(2)
	assert.Equal(t, uint32(2), le.Binding)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, le.Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, le.Buffer.Type)
}

func TestSetGeometryMismatch(t *testing.T) {
	ax := NewAxis(mat32.Vec3(0, 0, 0), 1)
	err := ax.SetGeometry(
		[]mat32.Vector4{{X: 1, W: 1}},
		[]mat32.Vector4{},
		[]uint32{0},
	)
	assert.True(t, errors.Is(err, ErrBadConfig))
}

func TestLightingDefaults(t *testing.T) {
	lt := NewLighting()
	assert.Equal(t, mat32.Vec4(2, 2, 2, 1), lt.Position())
	assert.Equal(t, mat32.Vec4(1, 1, 1, 1), lt.SpecularColor())
	assert.Equal(t, float32(0.2), lt.AmbientIntensity())
	assert.Equal(t, float32(0.8), lt.DiffuseIntensity())
	assert.Equal(t, float32(0.5), lt.SpecularIntensity())
	assert.Equal(t, float32(32), lt.Shininess())
	assert.Nil(t, lt.VertexBytes())
}

func TestLightingAccessorsRouteThroughMirror(t *testing.T) {
	lt := NewLighting()
	writes := 0
	lt.Uniforms.OnWrite = func(data []byte) error {
		writes++
		return nil
	}
	assert.NoError(t, lt.SetShininess(64))
	assert.NoError(t, lt.SetPosition(mat32.Vec4(0, 5, 0, 1)))
	assert.Equal(t, 2, writes)
	assert.Equal(t, float32(64), lt.Shininess())
	assert.Equal(t, mat32.Vec4(0, 5, 0, 1), lt.Position())
}

func TestCameraDefaults(t *testing.T) {
	eye := mat32.Vec3(0, 0, 2)
	cm := NewCamera(eye, mat32.Vec3(0, 0, 0), mat32.Vec3(0, 1, 0))
	assert.Equal(t, float32(1), cm.Scale())

	want := mat32.LookAt(eye, mat32.Vec3(0, 0, 0), mat32.Vec3(0, 1, 0))
	assert.Equal(t, want, cm.Transform())
}

func TestCameraApplyTransform(t *testing.T) {
	cm := NewCamera(mat32.Vec3(0, 0, 2), mat32.Vec3(0, 0, 0), mat32.Vec3(0, 1, 0))
	assert.NoError(t, cm.ResetTransform())

	delta := mat32.RotationXY(0.1, 0.2)
	assert.NoError(t, cm.ApplyTransform(delta))
	assert.Equal(t, delta, cm.Transform())

	// delta composes on the right: applied in the camera's local frame
	tr := mat32.Translation(1, 0)
	assert.NoError(t, cm.ApplyTransform(tr))
	assert.Equal(t, delta.Mul(tr), cm.Transform())

	assert.NoError(t, cm.AddScale(0.5))
	assert.Equal(t, float32(1.5), cm.Scale())
}
