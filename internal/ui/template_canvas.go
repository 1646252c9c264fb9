package ui

import (
	"image"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/reeltune/reeltune/internal/geometry"
	"github.com/reeltune/reeltune/internal/model"
)

// Canvas drawing colors
var (
	canvasBackdropColor = color.NRGBA{R: 16, G: 16, B: 18, A: 255}
	frameBorderColor    = color.NRGBA{R: 120, G: 120, B: 128, A: 255}
	cornerGuideColor    = color.NRGBA{R: 170, G: 170, B: 178, A: 255}
	selectionColor      = color.NRGBA{R: 94, G: 132, B: 241, A: 255}
	handleFillColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	offMarkerColor      = color.NRGBA{R: 244, G: 96, B: 96, A: 255}
	pipFillColor        = color.NRGBA{R: 52, G: 52, B: 58, A: 255}
	pipStrokeColor      = color.NRGBA{R: 140, G: 140, B: 148, A: 255}
)

// TemplateCanvas is the interactive editing surface. It owns no geometry of
// its own: every pointer event is forwarded to the geometry controller and
// every repaint reads the controller's state back.
type TemplateCanvas struct {
	widget.BaseWidget

	controller *geometry.Controller

	// Reference image shown inside the media window. Decoding happens off
	// the UI thread; refMu guards the decoded result.
	refMu    sync.Mutex
	refImage image.Image
	refPath  string

	cursor desktop.Cursor
}

// NewTemplateCanvas creates the canvas bound to a geometry controller
func NewTemplateCanvas(controller *geometry.Controller) *TemplateCanvas {
	tc := &TemplateCanvas{
		controller: controller,
		cursor:     desktop.DefaultCursor,
	}
	tc.ExtendBaseWidget(tc)
	return tc
}

// Controller returns the canvas's geometry controller
func (tc *TemplateCanvas) Controller() *geometry.Controller {
	return tc.controller
}

// SetReferenceImage loads an image file to preview inside the media window.
// Decoding runs in the background; the canvas repaints when it finishes.
// An empty path clears the preview.
func (tc *TemplateCanvas) SetReferenceImage(path string) {
	tc.refMu.Lock()
	tc.refPath = path
	tc.refImage = nil
	tc.refMu.Unlock()

	if path == "" {
		tc.Refresh()
		return
	}

	go func() {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("Failed to open reference image %s: %v", path, err)
			return
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			log.Printf("Failed to decode reference image %s: %v", path, err)
			return
		}

		tc.refMu.Lock()
		// A newer SetReferenceImage call wins.
		if tc.refPath == path {
			tc.refImage = img
		}
		tc.refMu.Unlock()

		fyne.Do(tc.Refresh)
	}()
}

func (tc *TemplateCanvas) referenceImage() image.Image {
	tc.refMu.Lock()
	defer tc.refMu.Unlock()
	return tc.refImage
}

// MouseDown forwards a press to the controller, updating selection and
// starting a drag or resize.
func (tc *TemplateCanvas) MouseDown(ev *desktop.MouseEvent) {
	tc.controller.PointerDown(ev.Position.X, ev.Position.Y)
}

// MouseUp commits the in-flight interaction
func (tc *TemplateCanvas) MouseUp(ev *desktop.MouseEvent) {
	tc.controller.PointerUp()
}

// Dragged forwards pointer movement during a drag or resize
func (tc *TemplateCanvas) Dragged(ev *fyne.DragEvent) {
	tc.controller.PointerMove(ev.Position.X, ev.Position.Y)
}

// DragEnd commits the in-flight interaction
func (tc *TemplateCanvas) DragEnd() {
	tc.controller.PointerUp()
}

// MouseIn implements desktop.Hoverable
func (tc *TemplateCanvas) MouseIn(ev *desktop.MouseEvent) {
	tc.updateCursor(ev.Position.X, ev.Position.Y)
}

// MouseMoved tracks the hover position to pick a resize or move cursor
func (tc *TemplateCanvas) MouseMoved(ev *desktop.MouseEvent) {
	tc.updateCursor(ev.Position.X, ev.Position.Y)
}

// MouseOut implements desktop.Hoverable
func (tc *TemplateCanvas) MouseOut() {
	tc.cursor = desktop.DefaultCursor
}

// Cursor implements desktop.Cursorable
func (tc *TemplateCanvas) Cursor() desktop.Cursor {
	return tc.cursor
}

func (tc *TemplateCanvas) updateCursor(x, y float32) {
	st := tc.controller.State(tc.controller.ActiveType())
	if st == nil {
		tc.cursor = desktop.DefaultCursor
		return
	}

	hit := st.HitTest(x, y, tc.controller.Selected())
	switch hit.Kind {
	case geometry.InteractionResize:
		switch hit.Handle {
		case geometry.HandleN, geometry.HandleS:
			tc.cursor = desktop.VResizeCursor
		case geometry.HandleE, geometry.HandleW:
			tc.cursor = desktop.HResizeCursor
		default:
			tc.cursor = desktop.CrosshairCursor
		}
	case geometry.InteractionMove:
		tc.cursor = desktop.PointerCursor
	default:
		tc.cursor = desktop.DefaultCursor
	}
}

// MinSize keeps the canvas usable even in a cramped window
func (tc *TemplateCanvas) MinSize() fyne.Size {
	return fyne.NewSize(CanvasMinWidth, CanvasMinHeight)
}

// CreateRenderer creates the widget renderer
func (tc *TemplateCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &templateCanvasRenderer{tc: tc}
}

// templateCanvasRenderer redraws the whole scene from controller state.
// Object counts change with selection and element flags, so the object list
// is rebuilt rather than patched.
type templateCanvasRenderer struct {
	tc      *TemplateCanvas
	objects []fyne.CanvasObject
}

func (r *templateCanvasRenderer) Layout(size fyne.Size) {
	r.tc.controller.Resize(size.Width, size.Height)
	r.rebuild(size)
}

func (r *templateCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CanvasMinWidth, CanvasMinHeight)
}

func (r *templateCanvasRenderer) Refresh() {
	r.rebuild(r.tc.Size())
}

func (r *templateCanvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *templateCanvasRenderer) Destroy() {}

func (r *templateCanvasRenderer) rebuild(size fyne.Size) {
	c := r.tc.controller
	frame := c.Frame()

	objs := make([]fyne.CanvasObject, 0, 32)

	backdrop := canvas.NewRectangle(canvasBackdropColor)
	backdrop.Move(fyne.NewPos(0, 0))
	backdrop.Resize(size)
	objs = append(objs, backdrop)

	if frame.IsDegenerate() {
		r.objects = objs
		return
	}

	for _, e := range c.ActiveElements() {
		objs = append(objs, r.elementObjects(e)...)
	}

	objs = append(objs, r.frameObjects(frame)...)

	if selected := c.Selected(); selected != "" {
		if st := c.State(c.ActiveType()); st != nil {
			if e, ok := st.Element(selected); ok {
				objs = append(objs, r.selectionObjects(e.Rect)...)
			}
		}
	}

	r.objects = objs
}

// frameObjects draws the content frame border and its corner guides on top
// of the elements, so croppings stay visible.
func (r *templateCanvasRenderer) frameObjects(frame model.Rect) []fyne.CanvasObject {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = frameBorderColor
	border.StrokeWidth = FrameStrokeWidth
	moveRect(border, frame)

	objs := []fyne.CanvasObject{border}

	// L-shaped guide pair at each frame corner.
	corners := []struct {
		x, y, dx, dy float32
	}{
		{frame.X, frame.Y, 1, 1},
		{frame.Right(), frame.Y, -1, 1},
		{frame.X, frame.Bottom(), 1, -1},
		{frame.Right(), frame.Bottom(), -1, -1},
	}
	for _, corner := range corners {
		h := canvas.NewLine(cornerGuideColor)
		h.StrokeWidth = 2
		h.Position1 = fyne.NewPos(corner.x, corner.y)
		h.Position2 = fyne.NewPos(corner.x+corner.dx*CornerGuideLength, corner.y)

		v := canvas.NewLine(cornerGuideColor)
		v.StrokeWidth = 2
		v.Position1 = fyne.NewPos(corner.x, corner.y)
		v.Position2 = fyne.NewPos(corner.x, corner.y+corner.dy*CornerGuideLength)

		objs = append(objs, h, v)
	}
	return objs
}

func (r *templateCanvasRenderer) elementObjects(e *model.Element) []fyne.CanvasObject {
	// Invisible elements are excluded from rendering but stay selectable;
	// the selection overlay still draws for them.
	if !e.Visible {
		return nil
	}

	var objs []fyne.CanvasObject
	switch e.Type {
	case model.ElementBackground:
		fill := canvas.NewRectangle(elementColor(e, color.NRGBA{R: 30, G: 30, B: 30, A: 255}))
		moveRect(fill, e.Rect)
		objs = append(objs, fill)

	case model.ElementPiP:
		objs = append(objs, r.pipObjects(e)...)

	case model.ElementText:
		txt := canvas.NewText(e.Content, elementColor(e, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
		txt.TextSize = float32(e.FontSize)
		txt.TextStyle = fyne.TextStyle{Bold: e.Style == model.StyleBold}
		txt.Alignment = fyne.TextAlignCenter
		moveRect(txt, e.Rect)
		objs = append(objs, txt)
	}

	if !e.Enabled {
		objs = append(objs, r.offMarker(e.Rect))
	}
	return objs
}

func (r *templateCanvasRenderer) pipObjects(e *model.Element) []fyne.CanvasObject {
	var objs []fyne.CanvasObject

	if e.Shape == model.ShapeEllipse {
		circle := canvas.NewCircle(dimmed(pipFillColor, e.Enabled))
		circle.StrokeColor = dimmed(pipStrokeColor, e.Enabled)
		circle.StrokeWidth = ElementStrokeWidth
		moveRect(circle, e.Rect)
		objs = append(objs, circle)
	} else {
		rect := canvas.NewRectangle(dimmed(pipFillColor, e.Enabled))
		rect.StrokeColor = dimmed(pipStrokeColor, e.Enabled)
		rect.StrokeWidth = ElementStrokeWidth
		rect.CornerRadius = float32(e.CornerRadius)
		moveRect(rect, e.Rect)
		objs = append(objs, rect)
	}

	if img := r.tc.referenceImage(); img != nil {
		preview := canvas.NewImageFromImage(img)
		preview.FillMode = canvas.ImageFillContain
		if !e.Enabled {
			preview.Translucency = 0.6
		}
		moveRect(preview, e.Rect)
		objs = append(objs, preview)
	}

	return objs
}

func (r *templateCanvasRenderer) offMarker(rect model.Rect) fyne.CanvasObject {
	marker := canvas.NewText(OffMarkerText, offMarkerColor)
	marker.TextSize = OffMarkerTextSize
	marker.TextStyle = fyne.TextStyle{Bold: true}
	marker.Move(fyne.NewPos(rect.X+3, rect.Y+2))
	return marker
}

// selectionObjects draws the selection border and its eight resize handles
func (r *templateCanvasRenderer) selectionObjects(rect model.Rect) []fyne.CanvasObject {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = selectionColor
	border.StrokeWidth = SelectionStrokeWidth
	moveRect(border, rect)

	objs := []fyne.CanvasObject{border}

	midX := rect.X + rect.W/2
	midY := rect.Y + rect.H/2
	points := [][2]float32{
		{rect.X, rect.Y}, {midX, rect.Y}, {rect.Right(), rect.Y},
		{rect.X, midY}, {rect.Right(), midY},
		{rect.X, rect.Bottom()}, {midX, rect.Bottom()}, {rect.Right(), rect.Bottom()},
	}
	for _, pt := range points {
		handle := canvas.NewRectangle(handleFillColor)
		handle.StrokeColor = selectionColor
		handle.StrokeWidth = 1
		handle.Move(fyne.NewPos(pt[0]-SelectionHandleSize/2, pt[1]-SelectionHandleSize/2))
		handle.Resize(fyne.NewSize(SelectionHandleSize, SelectionHandleSize))
		objs = append(objs, handle)
	}
	return objs
}

func moveRect(obj fyne.CanvasObject, r model.Rect) {
	obj.Move(fyne.NewPos(r.X, r.Y))
	obj.Resize(fyne.NewSize(r.W, r.H))
}

// elementColor resolves an element's hex color with dimming for disabled
func elementColor(e *model.Element, fallback color.NRGBA) color.NRGBA {
	c := parseHexColor(e.Color, fallback)
	return dimmed(c, e.Enabled)
}

func dimmed(c color.NRGBA, enabled bool) color.NRGBA {
	if !enabled {
		c.A = DisabledElementAlpha
	}
	return c
}

// parseHexColor parses "#rrggbb" (case-insensitive, leading # optional)
func parseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
