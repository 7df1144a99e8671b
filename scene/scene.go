// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene implements the renderable object model: primitives (axis,
// circle, lighting source, camera) that each own CPU-side geometry and
// uniform data, GPU-side buffer mirrors, and accessors that keep the two
// in sync on every mutation.
//
// All GPU buffer writes are assumed to occur on one event-processing
// thread; objects are not internally locked.
package scene

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

// Debug enables additional logging of GPU buffer operations.
var Debug = false

// ErrBadConfig is returned for invalid construction parameters,
// such as a circle with fewer than 3 divisions or mismatched
// position / color slice lengths.
var ErrBadConfig = errors.New("invalid configuration")

// Device holds the WebGPU device and its queue, the narrow handle pair
// every GPU buffer operation goes through.
type Device struct {
	Device *wgpu.Device
	Queue  *wgpu.Queue
}

// NewDevice returns a new [Device] for the given WebGPU device,
// using its default queue.
func NewDevice(dev *wgpu.Device) *Device {
	return &Device{Device: dev, Queue: dev.GetQueue()}
}
