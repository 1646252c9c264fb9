package geometry

import (
	"github.com/reeltune/reeltune/internal/model"
)

// ContentState holds the independent element layout for one content type.
// Switching the active content type persists the outgoing state and restores
// the incoming state verbatim; states never leak rects between each other.
type ContentState struct {
	contentType model.ContentType
	elements    map[string]*model.Element
	order       []string // z-order, last entry topmost

	// lastFrame is the content frame the elements were last anchored to.
	// Re-anchoring is lazy: an inactive state catches up against whatever
	// frame is current the next time it is displayed.
	lastFrame model.Rect
}

// newContentState builds a state populated with the content type's default
// elements, laid out proportionally inside frame.
func newContentState(ct model.ContentType, frame model.Rect) *ContentState {
	s := &ContentState{
		contentType: ct,
		elements:    make(map[string]*model.Element),
		lastFrame:   frame,
	}
	for _, e := range defaultElements(ct, frame) {
		s.add(e)
	}
	return s
}

// ContentType returns the content type this state belongs to.
func (s *ContentState) ContentType() model.ContentType {
	return s.contentType
}

// Element returns the named element, or false when it does not exist.
func (s *ContentState) Element(name string) (*model.Element, bool) {
	e, ok := s.elements[name]
	return e, ok
}

// Elements returns the elements in z-order, bottom first.
func (s *ContentState) Elements() []*model.Element {
	out := make([]*model.Element, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.elements[name])
	}
	return out
}

// LastFrame returns the frame the state was last anchored to.
func (s *ContentState) LastFrame() model.Rect {
	return s.lastFrame
}

func (s *ContentState) add(e *model.Element) {
	if _, exists := s.elements[e.Name]; !exists {
		s.order = append(s.order, e.Name)
	}
	s.elements[e.Name] = e
}

// reanchorTo re-anchors every element from the state's last frame to frame,
// preserving proportional placement, then stamps frame as the new baseline.
// A degenerate last frame skips the element update but still records frame,
// so a state created while the widget was minimized lays out on the next
// valid frame.
func (s *ContentState) reanchorTo(frame model.Rect) {
	if frame.IsDegenerate() || frame == s.lastFrame {
		return
	}
	if !s.lastFrame.IsDegenerate() {
		for _, e := range s.elements {
			e.Rect = Reanchor(s.lastFrame, frame, e.Rect)
		}
	}
	s.lastFrame = frame
}

// clampConstrained clamps every constrained element into frame.
func (s *ContentState) clampConstrained(frame model.Rect) {
	if frame.IsDegenerate() {
		return
	}
	for _, e := range s.elements {
		if e.Constrained {
			e.Rect = clampToFrame(e.Rect, frame)
		}
	}
}

// clampToFrame moves and, when necessary, shrinks r so it lies fully inside
// frame. Each axis is clamped independently; a move that would escape on one
// axis is still applied on the other.
func clampToFrame(r, frame model.Rect) model.Rect {
	if r.W > frame.W {
		r.W = frame.W
	}
	if r.H > frame.H {
		r.H = frame.H
	}
	if r.X < frame.X {
		r.X = frame.X
	}
	if r.Y < frame.Y {
		r.Y = frame.Y
	}
	if r.Right() > frame.Right() {
		r.X = frame.Right() - r.W
	}
	if r.Bottom() > frame.Bottom() {
		r.Y = frame.Bottom() - r.H
	}
	return r
}

// clampAspectToFrame fits r fully inside frame without breaking its
// width/height ratio: an overflowing rect shrinks both dimensions to the
// largest ratio-correct size that fits, then moves inside.
func clampAspectToFrame(r, frame model.Rect, ratio float32) model.Rect {
	if ratio <= 0 || frame.IsDegenerate() {
		return clampToFrame(r, frame)
	}
	if r.W > frame.W {
		r.W = frame.W
		r.H = r.W / ratio
	}
	if r.H > frame.H {
		r.H = frame.H
		r.W = r.H * ratio
	}
	if r.X < frame.X {
		r.X = frame.X
	}
	if r.Y < frame.Y {
		r.Y = frame.Y
	}
	if r.Right() > frame.Right() {
		r.X = frame.Right() - r.W
	}
	if r.Bottom() > frame.Bottom() {
		r.Y = frame.Bottom() - r.H
	}
	return r
}
