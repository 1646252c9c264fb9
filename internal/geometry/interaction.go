package geometry

import (
	"math"

	"github.com/reeltune/reeltune/internal/model"
)

// interactionState tracks the pointer interaction state machine:
// Idle → Dragging | Resizing → Idle.
type interactionState int

const (
	stateIdle interactionState = iota
	stateDragging
	stateResizing
)

// interaction is the in-flight pointer drag or resize.
type interaction struct {
	state   interactionState
	element string
	handle  Handle

	// anchorDX/DY is the pointer offset from the element origin when a move
	// started, so the element does not snap its corner to the cursor.
	anchorDX, anchorDY float32

	// startRect is the element rect at pointer-down; resizes are computed
	// against it rather than accumulating per-event deltas.
	startRect model.Rect
}

// PointerDown starts a drag or resize at the given canvas coordinate and
// returns the hit. An element hit becomes the selection; a miss clears it.
func (c *Controller) PointerDown(x, y float32) Hit {
	st := c.activeState()
	if st == nil {
		return Hit{Kind: InteractionNone}
	}

	hit := st.HitTest(x, y, c.selected)
	switch hit.Kind {
	case InteractionMove:
		c.selected = hit.Element
		e, _ := st.Element(hit.Element)
		c.drag = interaction{
			state:    stateDragging,
			element:  hit.Element,
			anchorDX: x - e.Rect.X,
			anchorDY: y - e.Rect.Y,
		}
	case InteractionResize:
		c.selected = hit.Element
		e, _ := st.Element(hit.Element)
		c.drag = interaction{
			state:     stateResizing,
			element:   hit.Element,
			handle:    hit.Handle,
			startRect: e.Rect,
		}
	default:
		c.selected = ""
		c.drag = interaction{}
	}

	c.notify()
	return hit
}

// PointerMove updates the active drag or resize with a new pointer position.
// Outside an interaction it is a no-op.
func (c *Controller) PointerMove(x, y float32) {
	st := c.activeState()
	if st == nil || c.drag.state == stateIdle {
		return
	}

	e, ok := st.Element(c.drag.element)
	if !ok {
		c.drag = interaction{}
		return
	}

	switch c.drag.state {
	case stateDragging:
		r := e.Rect
		r.X = x - c.drag.anchorDX
		r.Y = y - c.drag.anchorDY
		if e.Constrained {
			r = clampToFrame(r, c.frame)
		}
		e.Rect = r
	case stateResizing:
		r := resizeRect(c.drag.startRect, x, y, c.drag.handle)
		ratio := lockedRatio(e)
		if ratio > 0 {
			r = applyAspectRatio(r, c.drag.startRect, c.drag.handle, ratio)
			r = enforceMinSizeRatio(r, ratio)
		} else {
			r = enforceMinSize(r)
		}
		if e.Constrained {
			if ratio > 0 {
				r = clampAspectToFrame(r, c.frame, ratio)
			} else {
				r = clampToFrame(r, c.frame)
			}
		}
		e.Rect = r
	}

	c.notify()
}

// PointerUp commits the current interaction and returns to Idle. The final
// rect is already persisted in the active state; releasing outside the
// canvas still commits the last valid rect (no rollback semantics).
func (c *Controller) PointerUp() {
	c.drag = interaction{}
}

// Dragging reports whether a move or resize interaction is in flight.
func (c *Controller) Dragging() bool {
	return c.drag.state != stateIdle
}

// resizeRect recomputes the dragged edges of start from the pointer
// position. Edges opposite the handle stay fixed; each moving edge stops
// MinElementSize short of its opposite edge.
func resizeRect(start model.Rect, x, y float32, h Handle) model.Rect {
	r := start

	if h.hasWest() {
		left := x
		if left > start.Right()-MinElementSize {
			left = start.Right() - MinElementSize
		}
		r.X = left
		r.W = start.Right() - left
	}
	if h.hasEast() {
		w := x - start.X
		if w < MinElementSize {
			w = MinElementSize
		}
		r.W = w
	}
	if h.hasNorth() {
		top := y
		if top > start.Bottom()-MinElementSize {
			top = start.Bottom() - MinElementSize
		}
		r.Y = top
		r.H = start.Bottom() - top
	}
	if h.hasSouth() {
		hh := y - start.Y
		if hh < MinElementSize {
			hh = MinElementSize
		}
		r.H = hh
	}

	return r
}

// applyAspectRatio reshapes a resize result so width/height == ratio. The
// handle's primary axis drives: E/W handles drive width and derive height
// around the start rect's vertical center, N/S drive height and derive width
// around the horizontal center, and corner handles drive whichever axis saw
// the larger relative delta, keeping the opposite corner fixed.
func applyAspectRatio(r, start model.Rect, h Handle, ratio float32) model.Rect {
	switch {
	case h == HandleE || h == HandleW:
		r.H = r.W / ratio
		r.Y = start.CenterY() - r.H/2
	case h == HandleN || h == HandleS:
		r.W = r.H * ratio
		r.X = start.CenterX() - r.W/2
	case h.isCorner():
		dw := relativeDelta(r.W, start.W)
		dh := relativeDelta(r.H, start.H)
		if dw >= dh {
			r.H = r.W / ratio
		} else {
			r.W = r.H * ratio
		}
		// Re-pin the corner opposite the handle.
		if h.hasWest() {
			r.X = start.Right() - r.W
		} else {
			r.X = start.X
		}
		if h.hasNorth() {
			r.Y = start.Bottom() - r.H
		} else {
			r.Y = start.Y
		}
	}
	return r
}

func relativeDelta(now, was float32) float32 {
	if was == 0 {
		return 0
	}
	return abs32(now-was) / was
}

// lockedRatio returns the element's enforced aspect ratio, or 0 when free.
func lockedRatio(e *model.Element) float32 {
	if e.UsePluginAspectRatio && e.PluginAspectRatio > 0 {
		return e.PluginAspectRatio
	}
	return 0
}

// enforceMinSize clamps both dimensions to the minimum floor.
func enforceMinSize(r model.Rect) model.Rect {
	if r.W < MinElementSize {
		r.W = MinElementSize
	}
	if r.H < MinElementSize {
		r.H = MinElementSize
	}
	return r
}

// enforceMinSizeRatio floors both dimensions without breaking width/height
// == ratio: the smaller dimension is raised to the floor and the other
// derived from it, keeping the origin in place.
func enforceMinSizeRatio(r model.Rect, ratio float32) model.Rect {
	if ratio <= 0 {
		return enforceMinSize(r)
	}
	h := r.H
	if h < MinElementSize {
		h = MinElementSize
	}
	if h*ratio < MinElementSize {
		h = MinElementSize / ratio
	}
	r.W = h * ratio
	r.H = h
	return r
}

// aspectRect reshapes r to the given width/height ratio preserving its
// center point and, as closely as the minimum size floor allows, its area.
func aspectRect(r model.Rect, ratio float32) model.Rect {
	if ratio <= 0 {
		return r
	}
	area := float64(r.W) * float64(r.H)
	w := float32(math.Sqrt(area * float64(ratio)))
	h := float32(math.Sqrt(area / float64(ratio)))
	out := model.Rect{
		X: r.CenterX() - w/2,
		Y: r.CenterY() - h/2,
		W: w,
		H: h,
	}
	return enforceMinSize(out)
}
