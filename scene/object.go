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

// vertexStride is the interleaved vertex size in bytes:
// position 4 x float32 at offset 0, color 4 x float32 at offset 16.
const vertexStride = 32

// Renderable is a drawable object owning geometry, a uniform mirror,
// and GPU buffer handles. The concrete primitives (Axis, Circle,
// Lighting, Camera) all embed [Object], which implements this.
type Renderable interface {
	// UniformMirror returns the CPU-side uniform buffer mirror.
	UniformMirror() *uniform.Mirror

	// VertexBytes returns the interleaved position+color vertex data.
	// Nil for uniform-only objects such as Lighting and Camera.
	VertexBytes() []byte

	// IndexBytes returns the index data (uint32 little-endian).
	IndexBytes() []byte

	// Topology returns the primitive topology the indexes describe.
	Topology() wgpu.PrimitiveTopology

	// VertexLayout returns the vertex buffer layout, with shader
	// locations starting at the given offset so multiple primitives
	// can compose in one pipeline.
	VertexLayout(locationOffset uint32) wgpu.VertexBufferLayout

	// BindGroupLayoutEntry declares the uniform resource at the given
	// binding slot, visible to the vertex and fragment stages.
	BindGroupLayoutEntry(binding uint32) wgpu.BindGroupLayoutEntry

	// BindGroupEntry binds the uniform buffer at the given slot.
	// Prepare must have been called first.
	BindGroupEntry(binding uint32) wgpu.BindGroupEntry

	// Prepare allocates GPU buffers from current CPU data and installs
	// the synchronous re-upload hook on the uniform mirror.
	Prepare(dev *Device) error

	// Release frees all GPU buffers owned by the object.
	Release()
}

// Object is the base for all renderable primitives: parallel position and
// color slices, an index list, a uniform mirror, and the three GPU buffer
// mirrors. After Prepare, every uniform mutation synchronously re-uploads
// the uniform buffer, so CPU and GPU state never observably diverge.
type Object struct {
	// Name labels the object's GPU buffers.
	Name string

	// Positions are the vertex positions in homogeneous coordinates.
	Positions []mat32.Vector4

	// Colors are the per-vertex colors, parallel to Positions.
	Colors []mat32.Vector4

	// Indexes are triples (triangle-list) or pairs (line-list)
	// into Positions, depending on the topology.
	Indexes []uint32

	// Uniforms is the uniform mirror, owned exclusively by this object.
	Uniforms *uniform.Mirror

	topology wgpu.PrimitiveTopology

	vertexBuffer  Buffer
	indexBuffer   Buffer
	uniformBuffer Buffer

	device *Device
}

// initObject sets up buffer names, usages and the uniform mirror.
func (ob *Object) initObject(name string, sc *uniform.Schema, topo wgpu.PrimitiveTopology) {
	ob.Name = name
	ob.topology = topo
	ob.Uniforms = uniform.NewMirror(sc)
	ob.vertexBuffer.Name = name + "-vertex"
	ob.vertexBuffer.Usage = wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst
	ob.indexBuffer.Name = name + "-index"
	ob.indexBuffer.Usage = wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst
	ob.uniformBuffer.Name = name + "-uniform"
	ob.uniformBuffer.Usage = wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc
}

// UniformMirror returns the uniform mirror.
func (ob *Object) UniformMirror() *uniform.Mirror {
	return ob.Uniforms
}

// Topology returns the primitive topology.
func (ob *Object) Topology() wgpu.PrimitiveTopology {
	return ob.topology
}

// NumIndexes returns the number of index elements.
func (ob *Object) NumIndexes() int {
	return len(ob.Indexes)
}

// VertexBytes returns the interleaved position+color vertex data,
// or nil if the object has no geometry.
func (ob *Object) VertexBytes() []byte {
	n := len(ob.Positions)
	if n == 0 {
		return nil
	}
	vd := make([]float32, 0, n*8)
	for i := range ob.Positions {
		p, c := ob.Positions[i], ob.Colors[i]
		vd = append(vd, p.X, p.Y, p.Z, p.W, c.X, c.Y, c.Z, c.W)
	}
	return wgpu.ToBytes(vd)
}

// IndexBytes returns the index data as bytes.
func (ob *Object) IndexBytes() []byte {
	if len(ob.Indexes) == 0 {
		return nil
	}
	return wgpu.ToBytes(ob.Indexes)
}

// VertexLayout returns the interleaved vertex buffer layout. Position is
// 4 x float32 at offset 0 and color 4 x float32 at offset 16, at shader
// locations locationOffset and locationOffset+1.
func (ob *Object) VertexLayout(locationOffset uint32) wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         uniform.Float32Vector4.VertexFormat(),
				Offset:         0,
				ShaderLocation: locationOffset,
			},
			{
				Format:         uniform.Float32Vector4.VertexFormat(),
				Offset:         16,
				ShaderLocation: locationOffset + 1,
			},
		},
	}
}

// BindGroupLayoutEntry declares the uniform buffer at the given binding
// slot, visible to both vertex and fragment stages.
func (ob *Object) BindGroupLayoutEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		Buffer: wgpu.BufferBindingLayout{
			Type:             wgpu.BufferBindingTypeUniform,
			HasDynamicOffset: false,
			MinBindingSize:   0,
		},
	}
}

// BindGroupEntry binds the uniform buffer at the given slot.
func (ob *Object) BindGroupEntry(binding uint32) wgpu.BindGroupEntry {
	return wgpu.BindGroupEntry{
		Binding: binding,
		Buffer:  ob.uniformBuffer.Handle(),
		Offset:  0,
		Size:    wgpu.WholeSize,
	}
}

// Prepare allocates GPU buffers from the current CPU data and installs
// the uniform mirror's re-upload hook. Repeated calls are safe: buffers
// of unchanged size are reused, and a size change releases and recreates
// the handle rather than leaking it.
func (ob *Object) Prepare(dev *Device) error {
	if len(ob.Colors) != len(ob.Positions) {
		return fmt.Errorf("scene.Object %s: %w: %d positions vs %d colors",
			ob.Name, ErrBadConfig, len(ob.Positions), len(ob.Colors))
	}
	ob.device = dev
	if err := ob.uploadGeometry(); err != nil {
		return err
	}
	if err := ob.uniformBuffer.SetFromBytes(dev, ob.Uniforms.Whole()); err != nil {
		return err
	}
	ob.Uniforms.OnWrite = func(data []byte) error {
		return ob.uniformBuffer.SetFromBytes(ob.device, data)
	}
	return nil
}

// uploadGeometry pushes current vertex and index data to the GPU,
// recreating buffers whose size changed.
func (ob *Object) uploadGeometry() error {
	if ob.device == nil || len(ob.Positions) == 0 {
		return nil
	}
	if err := ob.vertexBuffer.SetFromBytes(ob.device, ob.VertexBytes()); err != nil {
		return err
	}
	return ob.indexBuffer.SetFromBytes(ob.device, ob.IndexBytes())
}

// SetGeometry replaces the positions, colors and indexes, re-uploading
// to the GPU if the object has been prepared. Slice lengths of positions
// and colors must match.
func (ob *Object) SetGeometry(positions, colors []mat32.Vector4, indexes []uint32) error {
	if len(colors) != len(positions) {
		return fmt.Errorf("scene.Object %s: %w: %d positions vs %d colors",
			ob.Name, ErrBadConfig, len(positions), len(colors))
	}
	ob.Positions = positions
	ob.Colors = colors
	ob.Indexes = indexes
	return ob.uploadGeometry()
}

// VertexBuffer returns the GPU vertex buffer mirror.
func (ob *Object) VertexBuffer() *Buffer {
	return &ob.vertexBuffer
}

// IndexBuffer returns the GPU index buffer mirror.
func (ob *Object) IndexBuffer() *Buffer {
	return &ob.indexBuffer
}

// UniformBuffer returns the GPU uniform buffer mirror.
func (ob *Object) UniformBuffer() *Buffer {
	return &ob.uniformBuffer
}

// Release frees all GPU buffers owned by this object.
func (ob *Object) Release() {
	ob.vertexBuffer.Release()
	ob.indexBuffer.Release()
	ob.uniformBuffer.Release()
	ob.Uniforms.OnWrite = nil
	ob.device = nil
}
