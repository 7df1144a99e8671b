// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/wgscene/wgscene/mat32"
	"github.com/wgscene/wgscene/uniform"
)

// Lighting is a uniform-only renderable holding the parameters of a
// single light source for Phong-style shading: position, specular color,
// the three intensity scalars, and shininess. Every field mutation
// re-writes the mirror and re-uploads the GPU buffer.
type Lighting struct {
	Object
}

// NewLighting returns a new [Lighting] with default parameters: a white
// light above and behind the viewer, moderate intensities, and a
// shininess of 32. GPU handles remain unset until Prepare.
func NewLighting() *Lighting {
	lt := &Lighting{}
	lt.initObject("lighting", uniform.NewSchema("Lighting",
		uniform.Field{Name: "Position", Type: uniform.Float32Vector4},
		uniform.Field{Name: "SpecularColor", Type: uniform.Float32Vector4},
		uniform.Field{Name: "AmbientIntensity", Type: uniform.Float32},
		uniform.Field{Name: "DiffuseIntensity", Type: uniform.Float32},
		uniform.Field{Name: "SpecularIntensity", Type: uniform.Float32},
		uniform.Field{Name: "Shininess", Type: uniform.Float32},
	), wgpu.PrimitiveTopologyTriangleList)

	lt.Uniforms.SetVector4("Position", mat32.Vec4(2, 2, 2, 1))
	lt.Uniforms.SetVector4("SpecularColor", mat32.Vec4(1, 1, 1, 1))
	lt.Uniforms.SetFloat32("AmbientIntensity", 0.2)
	lt.Uniforms.SetFloat32("DiffuseIntensity", 0.8)
	lt.Uniforms.SetFloat32("SpecularIntensity", 0.5)
	lt.Uniforms.SetFloat32("Shininess", 32)
	return lt
}

// Position returns the light position in world space.
func (lt *Lighting) Position() mat32.Vector4 {
	return get(lt.Uniforms.Vector4("Position"))
}

// SetPosition sets the light position.
func (lt *Lighting) SetPosition(p mat32.Vector4) error {
	return lt.Uniforms.SetVector4("Position", p)
}

// SpecularColor returns the specular highlight color.
func (lt *Lighting) SpecularColor() mat32.Vector4 {
	return get(lt.Uniforms.Vector4("SpecularColor"))
}

// SetSpecularColor sets the specular highlight color.
func (lt *Lighting) SetSpecularColor(c mat32.Vector4) error {
	return lt.Uniforms.SetVector4("SpecularColor", c)
}

// AmbientIntensity returns the ambient light intensity.
func (lt *Lighting) AmbientIntensity() float32 {
	return get(lt.Uniforms.Float32("AmbientIntensity"))
}

// SetAmbientIntensity sets the ambient light intensity.
func (lt *Lighting) SetAmbientIntensity(v float32) error {
	return lt.Uniforms.SetFloat32("AmbientIntensity", v)
}

// DiffuseIntensity returns the diffuse light intensity.
func (lt *Lighting) DiffuseIntensity() float32 {
	return get(lt.Uniforms.Float32("DiffuseIntensity"))
}

// SetDiffuseIntensity sets the diffuse light intensity.
func (lt *Lighting) SetDiffuseIntensity(v float32) error {
	return lt.Uniforms.SetFloat32("DiffuseIntensity", v)
}

// SpecularIntensity returns the specular light intensity.
func (lt *Lighting) SpecularIntensity() float32 {
	return get(lt.Uniforms.Float32("SpecularIntensity"))
}

// SetSpecularIntensity sets the specular light intensity.
func (lt *Lighting) SetSpecularIntensity(v float32) error {
	return lt.Uniforms.SetFloat32("SpecularIntensity", v)
}

// Shininess returns the specular shininess exponent.
func (lt *Lighting) Shininess() float32 {
	return get(lt.Uniforms.Float32("Shininess"))
}

// SetShininess sets the specular shininess exponent.
func (lt *Lighting) SetShininess(v float32) error {
	return lt.Uniforms.SetFloat32("Shininess", v)
}

// get unwraps a mirror accessor on a field that is declared at
// construction, where an error indicates a programming bug.
func get[T any](v T, err error) T {
	if err != nil {
		slog.Error("scene uniform access", "err", err)
	}
	return v
}
