// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log"

	"github.com/cogentcore/webgpu/wgpu"
)

// Buffer is a lazily created GPU buffer mirroring a CPU byte slice.
// The WebGPU buffer is created on the first SetFromBytes call; later
// calls of the same size reuse it with a queue write, and a size change
// releases and recreates it. The handle is exclusively owned: no two
// objects share a Buffer.
type Buffer struct {
	// Name labels the GPU buffer for debugging.
	Name string

	// Usage are the WebGPU usage flags the buffer is created with.
	// Must include CopyDst for updates, and CopySrc if ReadTo is used.
	Usage wgpu.BufferUsage

	// AllocSize is the current GPU allocation in bytes.
	AllocSize int

	device *Device
	buffer *wgpu.Buffer
}

// Valid reports whether the GPU buffer currently exists.
func (bf *Buffer) Valid() bool {
	return bf.buffer != nil
}

// Handle returns the underlying WebGPU buffer, or nil before the
// first SetFromBytes.
func (bf *Buffer) Handle() *wgpu.Buffer {
	return bf.buffer
}

// SetFromBytes copies the given bytes into GPU buffer memory, making
// the buffer if it has not yet been constructed or if its size changed.
// Errors from the WebGPU binding are returned as-is, never masked.
func (bf *Buffer) SetFromBytes(dev *Device, from []byte) error {
	nb := len(from)
	if bf.buffer == nil || bf.AllocSize != nb {
		bf.Release()
		buf, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    bf.Name,
			Contents: from,
			Usage:    bf.Usage,
		})
		if err != nil {
			if Debug {
				log.Println(err)
			}
			return err
		}
		bf.buffer = buf
		bf.AllocSize = nb
		bf.device = dev
		return nil
	}
	if err := dev.Queue.WriteBuffer(bf.buffer, 0, from); err != nil {
		if Debug {
			log.Println(err)
		}
		return err
	}
	return nil
}

// ReadTo copies the GPU buffer contents back into dest, which must be
// at least AllocSize long. The buffer must have been created with
// CopySrc usage. This blocks until the copy completes, which is how
// all GPU calls behave at this layer.
func (bf *Buffer) ReadTo(dest []byte) error {
	if bf.buffer == nil {
		return fmt.Errorf("scene.Buffer ReadTo: buffer is nil for: %s", bf.Name)
	}
	dev := bf.device
	sz := uint64(bf.AllocSize)
	staging, err := dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: bf.Name + "-read",
		Size:  sz,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		return err
	}
	defer staging.Release()

	enc, err := dev.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	enc.CopyBufferToBuffer(bf.buffer, 0, staging, 0, sz)
	cmd, err := enc.Finish(nil)
	if err != nil {
		return err
	}
	dev.Queue.Submit(cmd)
	cmd.Release()
	enc.Release()

	staging.MapAsync(wgpu.MapModeRead, 0, sz, func(stat wgpu.BufferMapAsyncStatus) {
		if stat != wgpu.BufferMapAsyncStatusSuccess {
			err = fmt.Errorf("scene.Buffer ReadTo %s: map status is %s", bf.Name, stat.String())
			return
		}
		bm := staging.GetMappedRange(0, uint(sz))
		copy(dest, bm)
		staging.Unmap()
	})
	dev.Device.Poll(true, nil)
	return err
}

// Release frees the GPU buffer. Safe to call on an unallocated Buffer.
func (bf *Buffer) Release() {
	if bf.buffer != nil {
		bf.buffer.Release()
		bf.buffer = nil
	}
	bf.AllocSize = 0
}
