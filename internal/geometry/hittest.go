package geometry

import "github.com/reeltune/reeltune/internal/model"

// Geometry interaction constants
const (
	// HandleTolerance is the pixel distance from a selected element's border
	// within which a pointer hit counts as a resize handle.
	HandleTolerance float32 = 8

	// MinElementSize is the floor for element width and height, preventing
	// degenerate rectangles during aggressive resize drags.
	MinElementSize float32 = 10
)

// Handle identifies one of the eight resize directions.
type Handle string

const (
	HandleNone Handle = ""
	HandleN    Handle = "n"
	HandleS    Handle = "s"
	HandleE    Handle = "e"
	HandleW    Handle = "w"
	HandleNE   Handle = "ne"
	HandleNW   Handle = "nw"
	HandleSE   Handle = "se"
	HandleSW   Handle = "sw"
)

// InteractionKind classifies what a pointer hit initiates.
type InteractionKind int

const (
	InteractionNone InteractionKind = iota
	InteractionMove
	InteractionResize
)

// Hit is the result of mapping a pointer coordinate to an element.
type Hit struct {
	Element string
	Kind    InteractionKind
	Handle  Handle
}

// HitTest maps a pointer coordinate to an element for selection, drag or
// resize initiation. Elements are tested top to bottom in z-order; the first
// rect containing the point wins regardless of its enabled or visible state,
// so a disabled element can always be clicked to re-enable it. A hit near the
// selected element's border yields a resize handle instead of a move.
func (s *ContentState) HitTest(x, y float32, selected string) Hit {
	if selected != "" {
		if e, ok := s.elements[selected]; ok {
			if h := handleAt(e.Rect, x, y); h != HandleNone {
				return Hit{Element: selected, Kind: InteractionResize, Handle: h}
			}
		}
	}

	for i := len(s.order) - 1; i >= 0; i-- {
		e := s.elements[s.order[i]]
		if e.Rect.Contains(x, y) {
			return Hit{Element: e.Name, Kind: InteractionMove}
		}
	}

	return Hit{Kind: InteractionNone}
}

// handleAt returns the resize handle at (x, y) for rect, or HandleNone when
// the point is not within tolerance of the rect's border.
func handleAt(r model.Rect, x, y float32) Handle {
	if x < r.X-HandleTolerance || x > r.Right()+HandleTolerance ||
		y < r.Y-HandleTolerance || y > r.Bottom()+HandleTolerance {
		return HandleNone
	}

	nearLeft := abs32(x-r.X) <= HandleTolerance
	nearRight := abs32(x-r.Right()) <= HandleTolerance
	nearTop := abs32(y-r.Y) <= HandleTolerance
	nearBottom := abs32(y-r.Bottom()) <= HandleTolerance

	switch {
	case nearTop && nearLeft:
		return HandleNW
	case nearTop && nearRight:
		return HandleNE
	case nearBottom && nearLeft:
		return HandleSW
	case nearBottom && nearRight:
		return HandleSE
	case nearTop:
		return HandleN
	case nearBottom:
		return HandleS
	case nearLeft:
		return HandleW
	case nearRight:
		return HandleE
	}
	return HandleNone
}

// hasNorth reports whether the handle moves the top edge.
func (h Handle) hasNorth() bool {
	return h == HandleN || h == HandleNE || h == HandleNW
}

// hasSouth reports whether the handle moves the bottom edge.
func (h Handle) hasSouth() bool {
	return h == HandleS || h == HandleSE || h == HandleSW
}

// hasEast reports whether the handle moves the right edge.
func (h Handle) hasEast() bool {
	return h == HandleE || h == HandleNE || h == HandleSE
}

// hasWest reports whether the handle moves the left edge.
func (h Handle) hasWest() bool {
	return h == HandleW || h == HandleNW || h == HandleSW
}

// isCorner reports whether the handle moves two edges at once.
func (h Handle) isCorner() bool {
	return h == HandleNE || h == HandleNW || h == HandleSE || h == HandleSW
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
