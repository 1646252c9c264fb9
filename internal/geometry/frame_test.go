package geometry

import (
	"testing"

	"github.com/reeltune/reeltune/internal/model"
)

func approx(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestFitFrameHeightLimited(t *testing.T) {
	// Portrait 9:16 content in a wide widget is limited by height.
	f := FitFrame(1000, 800, 9.0/16.0)

	if !approx(f.H, 800, 0.001) {
		t.Errorf("Expected frame height 800, got %f", f.H)
	}
	if !approx(f.W, 450, 0.001) {
		t.Errorf("Expected frame width 450, got %f", f.W)
	}
	if !approx(f.X, 275, 0.001) {
		t.Errorf("Expected centered X 275, got %f", f.X)
	}
	if !approx(f.Y, 0, 0.001) {
		t.Errorf("Expected Y 0, got %f", f.Y)
	}
}

func TestFitFrameWidthLimited(t *testing.T) {
	// Landscape 16:9 content in a tall widget is limited by width.
	f := FitFrame(800, 1000, 16.0/9.0)

	if !approx(f.W, 800, 0.001) {
		t.Errorf("Expected frame width 800, got %f", f.W)
	}
	if !approx(f.H, 450, 0.001) {
		t.Errorf("Expected frame height 450, got %f", f.H)
	}
	if !approx(f.Y, 275, 0.001) {
		t.Errorf("Expected centered Y 275, got %f", f.Y)
	}
}

func TestFitFrameExactFit(t *testing.T) {
	f := FitFrame(450, 800, 0.5625)
	want := model.Rect{X: 0, Y: 0, W: 450, H: 800}
	if f != want {
		t.Errorf("Expected exact fit %+v, got %+v", want, f)
	}
}

func TestFitFrameDegenerate(t *testing.T) {
	zero := model.Rect{}
	if f := FitFrame(0, 800, 1); f != zero {
		t.Errorf("Expected zero rect for zero width, got %+v", f)
	}
	if f := FitFrame(800, -1, 1); f != zero {
		t.Errorf("Expected zero rect for negative height, got %+v", f)
	}
	if f := FitFrame(800, 600, 0); f != zero {
		t.Errorf("Expected zero rect for zero aspect, got %+v", f)
	}
}

func TestFitFrameIdempotent(t *testing.T) {
	a := FitFrame(1234, 567, 1.75)
	b := FitFrame(1234, 567, 1.75)
	if a != b {
		t.Errorf("FitFrame is not deterministic: %+v vs %+v", a, b)
	}
}
