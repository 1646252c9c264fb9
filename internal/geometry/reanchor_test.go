package geometry

import (
	"testing"

	"github.com/reeltune/reeltune/internal/model"
)

func TestReanchorDoubledFrame(t *testing.T) {
	oldFrame := model.NewRect(0, 0, 400, 600)
	newFrame := model.NewRect(0, 0, 800, 1200)

	got := Reanchor(oldFrame, newFrame, model.NewRect(40, 60, 320, 40))
	want := model.NewRect(80, 120, 640, 80)

	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestReanchorOffsetFrames(t *testing.T) {
	oldFrame := model.NewRect(100, 0, 400, 600)
	newFrame := model.NewRect(0, 50, 200, 300)

	// At 10% across and 50% down in the old frame, half its width.
	got := Reanchor(oldFrame, newFrame, model.NewRect(140, 300, 200, 60))

	if !approx(got.X, 20, 0.001) {
		t.Errorf("Expected X 20, got %f", got.X)
	}
	if !approx(got.Y, 200, 0.001) {
		t.Errorf("Expected Y 200, got %f", got.Y)
	}
	if !approx(got.W, 100, 0.001) {
		t.Errorf("Expected W 100, got %f", got.W)
	}
	if !approx(got.H, 30, 0.001) {
		t.Errorf("Expected H 30, got %f", got.H)
	}
}

func TestReanchorRelativeInvariance(t *testing.T) {
	frames := []model.Rect{
		model.NewRect(0, 0, 450, 800),
		model.NewRect(120, 0, 337.5, 600),
		model.NewRect(0, 40, 900, 1600),
		model.NewRect(33, 7, 211, 375),
	}
	r := model.NewRect(45, 64, 360, 80)
	prev := frames[0]

	relX := (r.X - prev.X) / prev.W
	relY := (r.Y - prev.Y) / prev.H
	relW := r.W / prev.W
	relH := r.H / prev.H

	for _, f := range frames[1:] {
		r = Reanchor(prev, f, r)
		prev = f

		// Relative placement must survive each hop within 1%.
		if !approx((r.X-f.X)/f.W, relX, 0.01) {
			t.Errorf("Relative X drifted at frame %+v: got %f, want %f", f, (r.X-f.X)/f.W, relX)
		}
		if !approx((r.Y-f.Y)/f.H, relY, 0.01) {
			t.Errorf("Relative Y drifted at frame %+v: got %f, want %f", f, (r.Y-f.Y)/f.H, relY)
		}
		if !approx(r.W/f.W, relW, 0.01) {
			t.Errorf("Relative W drifted at frame %+v: got %f, want %f", f, r.W/f.W, relW)
		}
		if !approx(r.H/f.H, relH, 0.01) {
			t.Errorf("Relative H drifted at frame %+v: got %f, want %f", f, r.H/f.H, relH)
		}
	}
}

func TestReanchorDegenerateFrames(t *testing.T) {
	r := model.NewRect(10, 20, 30, 40)

	if got := Reanchor(model.Rect{}, model.NewRect(0, 0, 100, 100), r); got != r {
		t.Errorf("Degenerate old frame should leave rect unchanged, got %+v", got)
	}
	if got := Reanchor(model.NewRect(0, 0, 100, 100), model.Rect{}, r); got != r {
		t.Errorf("Degenerate new frame should leave rect unchanged, got %+v", got)
	}
}
