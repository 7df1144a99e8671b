// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat32 is a float32 based vector and matrix math package for the
// wgscene rendering layer. It provides only the types needed for uniform
// data: 2, 3 and 4 component vectors and a column-major 4x4 matrix with the
// transform constructors used by the camera and interaction code.
package mat32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are thin wrappers around chewxy/math32, which has
// optimized float32 implementations.

// Mathematical constants.
const (
	Pi = math.Pi
)

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}
