// Copyright (c) 2025, WGScene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interact maps mouse button, scroll, and cursor events onto
// camera transform updates. The Controller is an explicit object created
// once per session and handed to the event registration layer; there is
// no package-level mouse state.
package interact

import (
	"log/slog"

	"github.com/wgscene/wgscene/mat32"
	"github.com/wgscene/wgscene/scene"
)

// Button identifies a mouse button.
type Button int32

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Controller holds the mouse interaction state for one session: the three
// independent button flags, the last pointer position, per-axis speed,
// and the camera it drives. All events must arrive on the single
// event-processing thread; handlers run to completion before the next
// event is dispatched.
type Controller struct {
	// Camera receives the transform updates.
	Camera *scene.Camera

	// Canvas is the canvas size in the cursor coordinate space,
	// bounding which cursor moves are processed.
	Canvas mat32.Vector2

	// Speed scales pointer deltas per axis.
	Speed mat32.Vector2

	// Left, Right, Middle are the button-down flags. They are
	// independent at the data level; cursor handling treats them in
	// strict priority order left > right > middle.
	Left, Right, Middle bool

	// Prev is the last processed pointer position.
	Prev mat32.Vector2
}

// NewController returns a new [Controller] driving the given camera,
// with the given canvas size and per-axis speed.
func NewController(cam *scene.Camera, canvas, speed mat32.Vector2) *Controller {
	return &Controller{Camera: cam, Canvas: canvas, Speed: speed}
}

// OnButton records a button press or release. A Middle press resets the
// camera transform to identity immediately: the side effect fires on the
// press, not while held.
func (ct *Controller) OnButton(b Button, pressed bool) {
	switch b {
	case ButtonLeft:
		ct.Left = pressed
	case ButtonRight:
		ct.Right = pressed
	case ButtonMiddle:
		ct.Middle = pressed
		if pressed {
			logErr(ct.Camera.ResetTransform())
		}
	}
}

// OnScroll accumulates scroll offset into the camera zoom scale, scaled
// by the larger speed component. The accumulation is unbounded.
func (ct *Controller) OnScroll(yoff float32) {
	logErr(ct.Camera.AddScale(yoff * ct.Speed.Max()))
}

// OnCursorMove processes a pointer move. Positions at or beyond the
// canvas bounds are a complete no-op: Prev is not updated either. Only
// the upper bounds are checked; negative coordinates pass through.
// Exactly one branch fires, in priority order: left drag orbits the
// camera, right drag translates it, held middle re-resets the transform,
// and with no button down the position is only tracked.
func (ct *Controller) OnCursorMove(x, y float32) {
	if !(x < ct.Canvas.X && y < ct.Canvas.Y) {
		return
	}
	pos := mat32.Vec2(x, y)
	switch {
	case ct.Left:
		delta := ct.Prev.Sub(pos).Mul(ct.Speed)
		logErr(ct.Camera.ApplyTransform(mat32.RotationXY(delta.X, delta.Y)))
		ct.Prev = pos
	case ct.Right:
		delta := ct.Prev.Sub(pos).Mul(ct.Speed)
		logErr(ct.Camera.ApplyTransform(mat32.Translation(delta.X, delta.Y)))
		ct.Prev = pos
	case ct.Middle:
		logErr(ct.Camera.ResetTransform())
	default:
		ct.Prev = pos
	}
}

// logErr logs camera update failures. Event callbacks never propagate
// errors: a failed upload aborts only the triggering update.
func logErr(err error) {
	if err != nil {
		slog.Error("interact: camera update failed", "err", err)
	}
}
