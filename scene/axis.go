// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/wgscene/wgscene/mat32"
	"github.com/wgscene/wgscene/uniform"
)

// Axis renders the three coordinate axes as line segments from a common
// origin: X red, Y green, Z blue.
type Axis struct {
	Object
}

// NewAxis returns a new [Axis] with segments of the given length
// starting at origin. GPU handles remain unset until Prepare.
func NewAxis(origin mat32.Vector3, length float32) *Axis {
	ax := &Axis{}
	ax.initObject("axis", uniform.NewSchema("Axis",
		uniform.Field{Name: "Transform", Type: uniform.Float32Matrix4},
	), wgpu.PrimitiveTopologyLineList)

	o := mat32.Vector4FromVector3(origin, 1)
	red := mat32.Vec4(1, 0, 0, 1)
	green := mat32.Vec4(0, 1, 0, 1)
	blue := mat32.Vec4(0, 0, 1, 1)

	ax.Positions = []mat32.Vector4{
		o, o.Add(mat32.Vec4(length, 0, 0, 0)),
		o, o.Add(mat32.Vec4(0, length, 0, 0)),
		o, o.Add(mat32.Vec4(0, 0, length, 0)),
	}
	ax.Colors = []mat32.Vector4{red, red, green, green, blue, blue}
	ax.Indexes = []uint32{0, 1, 2, 3, 4, 5}

	// uniform errors are impossible here: the field is declared above
	ax.Uniforms.SetMatrix4("Transform", mat32.Identity4())
	return ax
}

// Transform returns the current model transform.
func (ax *Axis) Transform() mat32.Matrix4 {
	return get(ax.Uniforms.Matrix4("Transform"))
}

// SetTransform sets the model transform, re-uploading the uniform
// buffer if the axis has been prepared.
func (ax *Axis) SetTransform(m mat32.Matrix4) error {
	return ax.Uniforms.SetMatrix4("Transform", m)
}
