// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/wgscene/wgscene/mat32"
	"github.com/wgscene/wgscene/uniform"
)

// Circle renders a filled disc in the XY plane as a triangle fan around
// a center vertex.
type Circle struct {
	Object

	// Divisions is the number of fan triangles.
	Divisions int

	// Radius of the disc.
	Radius float32
}

// NewCircle returns a new [Circle] with the given number of divisions,
// radius, and uniform vertex color. Fewer than 3 divisions is degenerate
// geometry and fails with [ErrBadConfig]. The ring vertices are produced
// by repeatedly rotating a seed vector by 2*Pi/divisions; the small
// accumulated drift is acceptable for the few hundred divisions used in
// practice. The center vertex is appended after the ring.
func NewCircle(divisions int, radius float32, color mat32.Vector4) (*Circle, error) {
	if divisions < 3 {
		return nil, fmt.Errorf("scene.NewCircle: %w: divisions must be >= 3, got %d", ErrBadConfig, divisions)
	}
	ci := &Circle{Divisions: divisions, Radius: radius}
	ci.initObject("circle", uniform.NewSchema("Circle",
		uniform.Field{Name: "Transform", Type: uniform.Float32Matrix4},
	), wgpu.PrimitiveTopologyTriangleList)

	step := mat32.RotationZ(2 * mat32.Pi / float32(divisions))
	seed := mat32.Vec4(radius, 0, 0, 1)

	n := uint32(divisions)
	ci.Positions = make([]mat32.Vector4, 0, divisions+1)
	ci.Colors = make([]mat32.Vector4, 0, divisions+1)
	ci.Indexes = make([]uint32, 0, divisions*3)
	for i := uint32(0); i < n; i++ {
		ci.Positions = append(ci.Positions, seed)
		ci.Colors = append(ci.Colors, color)
		ci.Indexes = append(ci.Indexes, i, (i+1)%n, n)
		seed = step.MulVector4(seed)
	}
	ci.Positions = append(ci.Positions, mat32.Vec4(0, 0, 0, 1)) // center
	ci.Colors = append(ci.Colors, color)

	ci.Uniforms.SetMatrix4("Transform", mat32.Identity4())
	return ci, nil
}

// Transform returns the current model transform.
func (ci *Circle) Transform() mat32.Matrix4 {
	return get(ci.Uniforms.Matrix4("Transform"))
}

// SetTransform sets the model transform, re-uploading the uniform
// buffer if the circle has been prepared.
func (ci *Circle) SetTransform(m mat32.Matrix4) error {
	return ci.Uniforms.SetMatrix4("Transform", m)
}
