// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/wgscene/wgscene/mat32"
	"github.com/wgscene/wgscene/uniform"
)

// Camera is a uniform-only renderable holding the view transform and a
// zoom scale. The interaction controller animates it through the same
// mirror-and-re-upload path as every other uniform mutation.
type Camera struct {
	Object
}

// NewCamera returns a new [Camera] with its transform initialized to the
// right-handed look-at view for the given eye, target, and up vectors,
// and scale 1. GPU handles remain unset until Prepare.
func NewCamera(eye, target, up mat32.Vector3) *Camera {
	cm := &Camera{}
	cm.initObject("camera", uniform.NewSchema("Camera",
		uniform.Field{Name: "Transform", Type: uniform.Float32Matrix4},
		uniform.Field{Name: "Scale", Type: uniform.Float32},
	), wgpu.PrimitiveTopologyTriangleList)

	cm.Uniforms.SetMatrix4("Transform", mat32.LookAt(eye, target, up))
	cm.Uniforms.SetFloat32("Scale", 1)
	return cm
}

// Transform returns the current view transform.
func (cm *Camera) Transform() mat32.Matrix4 {
	return get(cm.Uniforms.Matrix4("Transform"))
}

// SetTransform sets the view transform, re-uploading the uniform buffer
// if the camera has been prepared.
func (cm *Camera) SetTransform(m mat32.Matrix4) error {
	return cm.Uniforms.SetMatrix4("Transform", m)
}

// ApplyTransform multiplies the current transform by delta on the right,
// applying it in the camera's current local frame.
func (cm *Camera) ApplyTransform(delta mat32.Matrix4) error {
	return cm.SetTransform(cm.Transform().Mul(delta))
}

// ResetTransform sets the view transform back to the identity.
func (cm *Camera) ResetTransform() error {
	return cm.SetTransform(mat32.Identity4())
}

// Scale returns the zoom scale.
func (cm *Camera) Scale() float32 {
	return get(cm.Uniforms.Float32("Scale"))
}

// SetScale sets the zoom scale.
func (cm *Camera) SetScale(s float32) error {
	return cm.Uniforms.SetFloat32("Scale", s)
}

// AddScale accumulates the given delta onto the zoom scale.
// There is no clamping: scroll zoom is unbounded.
func (cm *Camera) AddScale(d float32) error {
	return cm.SetScale(cm.Scale() + d)
}
