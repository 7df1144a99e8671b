// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import "github.com/cogentcore/webgpu/wgpu"

// Types is the list of supported uniform and vertex data types, which can
// be stored properly aligned in device memory and used by shader code.
// Note that Float32Vector3 is only usable for vertex data: in a uniform
// struct it triggers the 16 byte alignment constraint and is best avoided.
type Types int32

const (
	UndefinedType Types = iota

	Int32
	Uint32

	Float32
	Float32Vector2
	Float32Vector3
	Float32Vector4

	Float32Matrix4
)

// Bytes returns number of bytes for this type.
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

// AlignBytes returns the byte alignment of this type within a uniform
// struct, per the WGSL std140-style rules: scalars align at 4,
// 2-vectors at 8, and 3/4-vectors and matrices at 16.
func (tp Types) AlignBytes() int {
	return TypeAligns[tp]
}

// VertexFormat returns the WebGPU VertexFormat for this type.
func (tp Types) VertexFormat() wgpu.VertexFormat {
	return TypeToVertexFormat[tp]
}

func (tp Types) String() string {
	return TypeNames[tp]
}

// TypeSizes gives the data type sizes in bytes.
var TypeSizes = map[Types]int{
	Int32:  4,
	Uint32: 4,

	Float32:        4,
	Float32Vector2: 8,
	Float32Vector3: 12,
	Float32Vector4: 16,

	Float32Matrix4: 64,
}

// TypeAligns gives the uniform struct alignment requirement in bytes.
var TypeAligns = map[Types]int{
	Int32:  4,
	Uint32: 4,

	Float32:        4,
	Float32Vector2: 8,
	Float32Vector3: 16,
	Float32Vector4: 16,

	Float32Matrix4: 16,
}

// TypeToVertexFormat maps Types to the WebGPU VertexFormat used when the
// type appears as a vertex attribute.
var TypeToVertexFormat = map[Types]wgpu.VertexFormat{
	UndefinedType:  wgpu.VertexFormatUndefined,
	Int32:          wgpu.VertexFormatSint32,
	Uint32:         wgpu.VertexFormatUint32,
	Float32:        wgpu.VertexFormatFloat32,
	Float32Vector2: wgpu.VertexFormatFloat32x2,
	Float32Vector3: wgpu.VertexFormatFloat32x3,
	Float32Vector4: wgpu.VertexFormatFloat32x4,
}

var TypeNames = map[Types]string{
	UndefinedType:  "Undefined",
	Int32:          "Int32",
	Uint32:         "Uint32",
	Float32:        "Float32",
	Float32Vector2: "Float32Vector2",
	Float32Vector3: "Float32Vector3",
	Float32Vector4: "Float32Vector4",
	Float32Matrix4: "Float32Matrix4",
}
