// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/wgscene/wgscene/mat32"
)

// Mirror is a byte-exact CPU shadow of a GPU uniform buffer, written
// field-by-offset according to its Schema. Single writer assumed: all
// mutations must come from the event-processing thread, so no partial
// write is ever observable.
type Mirror struct {
	// Schema declares the field layout. Shared and read-only after
	// construction.
	Schema *Schema

	// OnWrite, if set, is called with the full backing buffer after
	// every successful mutation. The owning object installs its GPU
	// re-upload here, making synchronization a push, not a dirty flag
	// checked later. An error aborts the triggering setter.
	OnWrite func(data []byte) error

	data []byte
}

// NewMirror returns a new zeroed [Mirror] for the given schema.
func NewMirror(sc *Schema) *Mirror {
	return &Mirror{Schema: sc, data: make([]byte, sc.Size())}
}

// Size returns the total byte size of the mirror buffer.
func (mr *Mirror) Size() int {
	return len(mr.data)
}

// Whole returns a copy of the entire backing buffer.
func (mr *Mirror) Whole() []byte {
	out := make([]byte, len(mr.data))
	copy(out, mr.data)
	return out
}

// SetWhole replaces the entire backing buffer. The length of from must
// equal Size exactly, else an error wrapping [ErrSizeMismatch].
func (mr *Mirror) SetWhole(from []byte) error {
	if len(from) != len(mr.data) {
		return fmt.Errorf("uniform.Mirror %s SetWhole: %w: size passed %d != size expected %d",
			mr.Schema.Name, ErrSizeMismatch, len(from), len(mr.data))
	}
	copy(mr.data, from)
	return mr.notify()
}

// Field returns a copy of the named field's bytes.
func (mr *Mirror) Field(name string) ([]byte, error) {
	f, err := mr.Schema.field(name)
	if err != nil {
		return nil, err
	}
	sz := f.Type.Bytes()
	out := make([]byte, sz)
	copy(out, mr.data[f.offset:f.offset+sz])
	return out, nil
}

// SetField writes raw bytes to the named field. Exactly the field's
// declared size is written at its offset; adjacent fields are untouched.
// Unknown names wrap [ErrUnknownField], wrong lengths [ErrSizeMismatch].
func (mr *Mirror) SetField(name string, from []byte) error {
	f, err := mr.Schema.field(name)
	if err != nil {
		return err
	}
	sz := f.Type.Bytes()
	if len(from) != sz {
		return fmt.Errorf("uniform.Mirror %s SetField %s: %w: size passed %d != size expected %d",
			mr.Schema.Name, name, ErrSizeMismatch, len(from), sz)
	}
	copy(mr.data[f.offset:f.offset+sz], from)
	return mr.notify()
}

// checkSize verifies that a typed accessor matches the declared field
// size, so a typed write can never spill into an adjacent field.
func (mr *Mirror) checkSize(f fieldLayout, want int) error {
	if f.Type.Bytes() != want {
		return fmt.Errorf("uniform.Mirror %s field %s: %w: field is %s (%d bytes), accessor wants %d",
			mr.Schema.Name, f.Name, ErrSizeMismatch, f.Type, f.Type.Bytes(), want)
	}
	return nil
}

// Float32 returns the named field decoded as a float32.
func (mr *Mirror) Float32(name string) (float32, error) {
	f, err := mr.Schema.field(name)
	if err != nil {
		return 0, err
	}
	if err := mr.checkSize(f, 4); err != nil {
		return 0, err
	}
	return getFloat32(mr.data, f.offset), nil
}

// SetFloat32 sets the named field from a float32.
func (mr *Mirror) SetFloat32(name string, v float32) error {
	f, err := mr.Schema.field(name)
	if err != nil {
		return err
	}
	if err := mr.checkSize(f, 4); err != nil {
		return err
	}
	putFloat32(mr.data, f.offset, v)
	return mr.notify()
}

// Vector4 returns the named field decoded as a [mat32.Vector4].
func (mr *Mirror) Vector4(name string) (mat32.Vector4, error) {
	f, err := mr.Schema.field(name)
	if err != nil {
		return mat32.Vector4{}, err
	}
	if err := mr.checkSize(f, 16); err != nil {
		return mat32.Vector4{}, err
	}
	o := f.offset
	return mat32.Vec4(
		getFloat32(mr.data, o),
		getFloat32(mr.data, o+4),
		getFloat32(mr.data, o+8),
		getFloat32(mr.data, o+12),
	), nil
}

// SetVector4 sets the named field from a [mat32.Vector4].
func (mr *Mirror) SetVector4(name string, v mat32.Vector4) error {
	f, err := mr.Schema.field(name)
	if err != nil {
		return err
	}
	if err := mr.checkSize(f, 16); err != nil {
		return err
	}
	o := f.offset
	putFloat32(mr.data, o, v.X)
	putFloat32(mr.data, o+4, v.Y)
	putFloat32(mr.data, o+8, v.Z)
	putFloat32(mr.data, o+12, v.W)
	return mr.notify()
}

// Matrix4 returns the named field decoded as a [mat32.Matrix4].
// The byte layout is column-major float32, matching WGSL mat4x4<f32>.
func (mr *Mirror) Matrix4(name string) (mat32.Matrix4, error) {
	f, err := mr.Schema.field(name)
	if err != nil {
		return mat32.Matrix4{}, err
	}
	if err := mr.checkSize(f, 64); err != nil {
		return mat32.Matrix4{}, err
	}
	var m mat32.Matrix4
	for i := range m {
		m[i] = getFloat32(mr.data, f.offset+i*4)
	}
	return m, nil
}

// SetMatrix4 sets the named field from a [mat32.Matrix4].
func (mr *Mirror) SetMatrix4(name string, m mat32.Matrix4) error {
	f, err := mr.Schema.field(name)
	if err != nil {
		return err
	}
	if err := mr.checkSize(f, 64); err != nil {
		return err
	}
	for i := range m {
		putFloat32(mr.data, f.offset+i*4, m[i])
	}
	return mr.notify()
}

// notify pushes the full buffer to the OnWrite hook, if installed.
func (mr *Mirror) notify() error {
	if mr.OnWrite == nil {
		return nil
	}
	return mr.OnWrite(mr.data)
}

func putFloat32(b []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
}

func getFloat32(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}
