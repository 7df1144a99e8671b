// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wgscene/wgscene/mat32"
)

func lightingSchema() *Schema {
	return NewSchema("Lighting",
		Field{"Position", Float32Vector4},
		Field{"SpecularColor", Float32Vector4},
		Field{"AmbientIntensity", Float32},
		Field{"DiffuseIntensity", Float32},
		Field{"SpecularIntensity", Float32},
		Field{"Shininess", Float32},
	)
}

func TestSchemaLayout(t *testing.T) {
	sc := lightingSchema()
	assert.Equal(t, 48, sc.Size())

	off, err := sc.Offset("Position")
	assert.NoError(t, err)
	assert.Equal(t, 0, off)

	off, err = sc.Offset("SpecularColor")
	assert.NoError(t, err)
	assert.Equal(t, 16, off)

	off, err = sc.Offset("Shininess")
	assert.NoError(t, err)
	assert.Equal(t, 44, off)

	_, err = sc.Offset("Specular")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestSchemaAlignment(t *testing.T) {
	// a scalar before a vector forces padding up to the 16 byte boundary
	sc := NewSchema("Padded",
		Field{"Scale", Float32},
		Field{"Color", Float32Vector4},
	)
	off, err := sc.Offset("Color")
	assert.NoError(t, err)
	assert.Equal(t, 16, off)
	assert.Equal(t, 32, sc.Size())

	// total size is padded to 16 even when fields end unaligned
	sc = NewSchema("Tail",
		Field{"Transform", Float32Matrix4},
		Field{"Scale", Float32},
	)
	assert.Equal(t, 80, sc.Size())
}

func TestFieldRoundTrip(t *testing.T) {
	mr := NewMirror(lightingSchema())

	pos := mat32.Vec4(1, 2, 3, 1)
	assert.NoError(t, mr.SetVector4("Position", pos))
	got, err := mr.Vector4("Position")
	assert.NoError(t, err)
	assert.Equal(t, pos, got)

	assert.NoError(t, mr.SetFloat32("Shininess", 32))
	sh, err := mr.Float32("Shininess")
	assert.NoError(t, err)
	assert.Equal(t, float32(32), sh)

	// neighboring fields are untouched by a field write
	assert.NoError(t, mr.SetFloat32("DiffuseIntensity", 0.5))
	got, err = mr.Vector4("Position")
	assert.NoError(t, err)
	assert.Equal(t, pos, got)
	amb, err := mr.Float32("AmbientIntensity")
	assert.NoError(t, err)
	assert.Equal(t, float32(0), amb)
}

func TestMatrixRoundTrip(t *testing.T) {
	sc := NewSchema("Camera",
		Field{"Transform", Float32Matrix4},
		Field{"Scale", Float32},
	)
	mr := NewMirror(sc)

	m := mat32.RotationXY(0.5, -1.2).Mul(mat32.Translation(3, 4))
	assert.NoError(t, mr.SetMatrix4("Transform", m))
	got, err := mr.Matrix4("Transform")
	assert.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestWholeRoundTrip(t *testing.T) {
	sc := lightingSchema()
	mr := NewMirror(sc)

	b := make([]byte, sc.Size())
	for i := range b {
		b[i] = byte(i)
	}
	assert.NoError(t, mr.SetWhole(b))
	assert.Equal(t, b, mr.Whole())

	// wrong length fails with no partial write
	err := mr.SetWhole(b[:sc.Size()-1])
	assert.True(t, errors.Is(err, ErrSizeMismatch))
	assert.Equal(t, b, mr.Whole())
}

func TestSetFieldRaw(t *testing.T) {
	mr := NewMirror(lightingSchema())

	raw := []byte{1, 2, 3, 4}
	assert.NoError(t, mr.SetField("Shininess", raw))
	got, err := mr.Field("Shininess")
	assert.NoError(t, err)
	assert.Equal(t, raw, got)

	err = mr.SetField("Shininess", []byte{1, 2})
	assert.True(t, errors.Is(err, ErrSizeMismatch))

	err = mr.SetField("Nope", raw)
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestTypedAccessorSizeCheck(t *testing.T) {
	mr := NewMirror(lightingSchema())
	err := mr.SetFloat32("Position", 1)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
	err = mr.SetVector4("Shininess", mat32.Vec4(1, 2, 3, 4))
	assert.True(t, errors.Is(err, ErrSizeMismatch))
}

func TestOnWritePush(t *testing.T) {
	mr := NewMirror(lightingSchema())
	writes := 0
	var last []byte
	mr.OnWrite = func(data []byte) error {
		writes++
		last = append(last[:0], data...)
		return nil
	}

	assert.NoError(t, mr.SetFloat32("Shininess", 8))
	assert.NoError(t, mr.SetVector4("Position", mat32.Vec4(1, 0, 0, 1)))
	assert.NoError(t, mr.SetWhole(make([]byte, mr.Size())))
	assert.Equal(t, 3, writes)
	assert.Equal(t, mr.Whole(), last)

	// hook errors abort the setter
	mr.OnWrite = func(data []byte) error {
		return errors.New("upload failed")
	}
	assert.Error(t, mr.SetFloat32("Shininess", 9))
}
