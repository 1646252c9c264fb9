package geometry

import "github.com/reeltune/reeltune/internal/model"

// Reanchor maps a rectangle from oldFrame to newFrame so that its position
// and size relative to the frame stay invariant:
//
//	relX = (r.X - old.X) / old.W    →    new.X + relX * new.W
//
// and analogously for y, width and height. A degenerate old frame (minimized
// widget) skips the update and returns r unchanged; the caller defers to the
// next valid frame computation. This must run before repaint on every resize
// and content-type switch, otherwise elements visually jump.
func Reanchor(oldFrame, newFrame, r model.Rect) model.Rect {
	if oldFrame.IsDegenerate() || newFrame.IsDegenerate() {
		return r
	}

	relX := (r.X - oldFrame.X) / oldFrame.W
	relY := (r.Y - oldFrame.Y) / oldFrame.H
	relW := r.W / oldFrame.W
	relH := r.H / oldFrame.H

	return model.Rect{
		X: newFrame.X + relX*newFrame.W,
		Y: newFrame.Y + relY*newFrame.H,
		W: relW * newFrame.W,
		H: relH * newFrame.H,
	}
}
