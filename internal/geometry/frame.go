package geometry

import "github.com/reeltune/reeltune/internal/model"

// FitFrame computes the content frame for a canvas widget of size w×h and a
// target aspect ratio (width/height): the largest rectangle with that ratio
// that fits fully inside the widget, centered with the remainder split evenly
// on both sides. Pure and idempotent; a degenerate widget or ratio yields a
// zero rectangle.
func FitFrame(w, h, aspect float32) model.Rect {
	if w <= 0 || h <= 0 || aspect <= 0 {
		return model.Rect{}
	}

	frameW := w
	frameH := frameW / aspect
	if frameH > h {
		frameH = h
		frameW = frameH * aspect
	}

	return model.Rect{
		X: (w - frameW) / 2,
		Y: (h - frameH) / 2,
		W: frameW,
		H: frameH,
	}
}
