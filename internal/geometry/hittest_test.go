package geometry

import (
	"testing"

	"github.com/reeltune/reeltune/internal/model"
)

// reelController builds a controller with a 450×800 widget, which fits the
// reel frame exactly at (0, 0, 450, 800). Default element rects:
// background (0,0,450,800), pip (22.5,40,112.5,112.5),
// title (45,64,360,80), subtitle (45,640,360,64).
func reelController(t *testing.T) *Controller {
	t.Helper()
	c := NewController()
	c.Resize(450, 800)
	if c.Frame().IsDegenerate() {
		t.Fatal("Expected a valid frame after resize")
	}
	return c
}

func TestHitTestTopmostWins(t *testing.T) {
	c := reelController(t)
	st := c.State(model.ContentReel)

	// (100, 100) lies inside both pip and title; title is above pip.
	hit := st.HitTest(100, 100, "")
	if hit.Kind != InteractionMove || hit.Element != ElementTitle {
		t.Errorf("Expected move hit on title, got %+v", hit)
	}

	// (60, 50) lies inside pip but above title's top edge.
	hit = st.HitTest(60, 50, "")
	if hit.Kind != InteractionMove || hit.Element != ElementPiP {
		t.Errorf("Expected move hit on pip, got %+v", hit)
	}

	// Anywhere else in the frame falls through to the background.
	hit = st.HitTest(300, 400, "")
	if hit.Kind != InteractionMove || hit.Element != ElementBackground {
		t.Errorf("Expected move hit on background, got %+v", hit)
	}
}

func TestHitTestIgnoresEnabledAndVisible(t *testing.T) {
	c := reelController(t)
	c.SetElementEnabled(ElementPiP, false)
	c.SetElementVisible(ElementPiP, false)

	hit := c.State(model.ContentReel).HitTest(60, 50, "")
	if hit.Element != ElementPiP {
		t.Errorf("Disabled and hidden element must stay clickable, got %+v", hit)
	}
}

func TestHitTestMiss(t *testing.T) {
	c := reelController(t)
	st := c.State(model.ContentReel)

	hit := st.HitTest(-50, -50, "")
	if hit.Kind != InteractionNone {
		t.Errorf("Expected no hit outside all elements, got %+v", hit)
	}
}

func TestHitTestHandles(t *testing.T) {
	c := reelController(t)
	st := c.State(model.ContentReel)

	// pip rect: left 22.5, top 40, right 135, bottom 152.5.
	tests := []struct {
		name   string
		x, y   float32
		handle Handle
	}{
		{"north", 80, 40, HandleN},
		{"south", 80, 152.5, HandleS},
		{"east", 135, 100, HandleE},
		{"west", 22.5, 100, HandleW},
		{"north-east", 135, 40, HandleNE},
		{"north-west", 22.5, 40, HandleNW},
		{"south-east", 135, 152.5, HandleSE},
		{"south-west", 22.5, 152.5, HandleSW},
	}

	for _, tt := range tests {
		hit := st.HitTest(tt.x, tt.y, ElementPiP)
		if hit.Kind != InteractionResize || hit.Handle != tt.handle {
			t.Errorf("%s: expected resize handle %q, got %+v", tt.name, tt.handle, hit)
		}
		if hit.Element != ElementPiP {
			t.Errorf("%s: expected handle on pip, got %s", tt.name, hit.Element)
		}
	}
}

func TestHitTestHandleTolerance(t *testing.T) {
	c := reelController(t)
	st := c.State(model.ContentReel)

	// Just inside tolerance of pip's east edge (135).
	hit := st.HitTest(135+HandleTolerance, 100, ElementPiP)
	if hit.Kind != InteractionResize || hit.Handle != HandleE {
		t.Errorf("Expected east handle within tolerance, got %+v", hit)
	}

	// Just outside tolerance the point misses the handle and falls through
	// to containment testing; (144, 100) lies inside the title rect.
	hit = st.HitTest(135+HandleTolerance+1, 100, ElementPiP)
	if hit.Kind != InteractionMove || hit.Element != ElementTitle {
		t.Errorf("Expected move on title outside tolerance, got %+v", hit)
	}
}

func TestHitTestHandlesOnlyForSelected(t *testing.T) {
	c := reelController(t)
	st := c.State(model.ContentReel)

	// Without a selection the east edge of pip is a plain move hit.
	hit := st.HitTest(135, 100, "")
	if hit.Kind != InteractionMove {
		t.Errorf("Expected move hit without selection, got %+v", hit)
	}

	// With a different element selected, pip's edge is no handle either.
	hit = st.HitTest(135, 100, ElementSubtitle)
	if hit.Kind != InteractionMove {
		t.Errorf("Expected move hit with other selection, got %+v", hit)
	}
}
