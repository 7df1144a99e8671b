// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package interact

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform
// builds. Other platforms need to feed OnButton / OnScroll / OnCursorMove
// from their own event sources.

// Connect registers the controller's handlers as the window's mouse
// button, scroll, and cursor position callbacks.
// IMPORTANT: glfw callbacks fire on the main thread; the controller
// assumes exactly that single event-processing thread.
func (ct *Controller) Connect(win *glfw.Window) {
	win.SetMouseButtonCallback(ct.mouseButtonEvent)
	win.SetScrollCallback(ct.scrollEvent)
	win.SetCursorPosCallback(ct.cursorPosEvent)
}

func (ct *Controller) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	var b Button
	switch button {
	case glfw.MouseButtonLeft:
		b = ButtonLeft
	case glfw.MouseButtonRight:
		b = ButtonRight
	case glfw.MouseButtonMiddle:
		b = ButtonMiddle
	default:
		return
	}
	ct.OnButton(b, action != glfw.Release)
}

func (ct *Controller) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	ct.OnScroll(float32(yoff))
}

func (ct *Controller) cursorPosEvent(gw *glfw.Window, x, y float64) {
	ct.OnCursorMove(float32(x), float32(y))
}
