// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uniform implements the CPU-side mirror of a GPU uniform buffer:
// a fixed-layout byte buffer whose field offsets are computed once from a
// declared schema, with field-level and whole-buffer reads and writes.
// Every mutation notifies the owning object through the OnWrite hook, so
// CPU data and the GPU buffer never observably diverge after a setter
// returns.
package uniform

import (
	"errors"
	"fmt"
)

// Errors returned by schema and mirror operations. They are wrapped with
// context, so test with [errors.Is].
var (
	// ErrUnknownField is returned when a field name is not in the schema.
	ErrUnknownField = errors.New("unknown uniform field")

	// ErrSizeMismatch is returned when a write's byte length disagrees
	// with the declared field or schema size.
	ErrSizeMismatch = errors.New("uniform size mismatch")
)

// Field declares one member of a uniform struct: a name and a data type.
// Offsets are computed by the Schema, not declared.
type Field struct {
	Name string
	Type Types
}

// fieldLayout is a Field with its computed byte offset.
type fieldLayout struct {
	Field
	offset int
}

// Schema is the ordered field list of a uniform struct, with byte offsets
// computed per WGSL alignment rules at construction. Offsets are stable
// for the lifetime of any Mirror using the schema.
type Schema struct {
	// Name is used to label GPU buffers and error messages.
	Name string

	fields []fieldLayout
	index  map[string]int
	size   int
}

// NewSchema returns a new [Schema] with the given name and ordered fields.
// Each field offset is aligned to the field type's alignment requirement,
// and the total size is padded to a 16 byte boundary as required for
// uniform buffer bindings.
func NewSchema(name string, fields ...Field) *Schema {
	sc := &Schema{Name: name, index: make(map[string]int, len(fields))}
	off := 0
	for _, f := range fields {
		off = MemSizeAlign(off, f.Type.AlignBytes())
		sc.index[f.Name] = len(sc.fields)
		sc.fields = append(sc.fields, fieldLayout{Field: f, offset: off})
		off += f.Type.Bytes()
	}
	sc.size = MemSizeAlign(off, 16)
	return sc
}

// MemSizeAlign returns the size aligned according to align byte increments
// e.g., if align = 16 and size = 12, it returns 16.
func MemSizeAlign(size, align int) int {
	if size%align == 0 {
		return size
	}
	nb := size / align
	return (nb + 1) * align
}

// Size returns the total byte size of the struct, including padding.
func (sc *Schema) Size() int {
	return sc.size
}

// NumFields returns the number of declared fields.
func (sc *Schema) NumFields() int {
	return len(sc.fields)
}

// Offset returns the byte offset of the named field,
// or an error wrapping [ErrUnknownField].
func (sc *Schema) Offset(name string) (int, error) {
	f, err := sc.field(name)
	if err != nil {
		return 0, err
	}
	return f.offset, nil
}

// FieldType returns the type of the named field,
// or an error wrapping [ErrUnknownField].
func (sc *Schema) FieldType(name string) (Types, error) {
	f, err := sc.field(name)
	if err != nil {
		return UndefinedType, err
	}
	return f.Type, nil
}

func (sc *Schema) field(name string) (fieldLayout, error) {
	i, ok := sc.index[name]
	if !ok {
		return fieldLayout{}, fmt.Errorf("uniform.Schema %s: %w: %q", sc.Name, ErrUnknownField, name)
	}
	return sc.fields[i], nil
}

func (sc *Schema) String() string {
	s := fmt.Sprintf("%s (%d bytes)\n", sc.Name, sc.size)
	for _, f := range sc.fields {
		s += fmt.Sprintf("%4d:\t%s\t%s\n", f.offset, f.Name, f.Type)
	}
	return s
}
