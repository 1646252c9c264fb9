package model

// ElementType classifies a template element.
type ElementType string

const (
	// ElementBackground fills the whole content frame behind other elements
	ElementBackground ElementType = "background"

	// ElementPiP is a picture-in-picture media window, optionally locked to
	// a plugin's aspect ratio
	ElementPiP ElementType = "pip"

	// ElementText is a text overlay (title, subtitle)
	ElementText ElementType = "text"
)

// PiPShape selects the outline of a media window.
type PiPShape string

const (
	ShapeRectangle PiPShape = "rectangle"
	ShapeEllipse   PiPShape = "ellipse"
)

// TextStyle selects the rendering style of a text element.
type TextStyle string

const (
	StyleNormal TextStyle = "normal"
	StyleBold   TextStyle = "bold"
)

// Element is a named positionable, resizable region on the template canvas.
//
// Visible excludes an element from rendering only; it stays selectable and
// mutable. Enabled=false dims the element and marks it "OFF" but never
// removes interactivity. The two flags are orthogonal by construction:
// hit-testing consults neither, rendering consults both.
type Element struct {
	Name        string
	Type        ElementType
	Rect        Rect
	Visible     bool
	Enabled     bool
	Constrained bool // rect must stay fully inside the content frame

	// Text element fields
	Content  string
	FontSize int
	Color    string // hex, e.g. "#ffffff"
	Style    TextStyle

	// PiP element fields
	Shape                PiPShape
	CornerRadius         int
	PluginAspectRatio    float32 // width/height from a plugin descriptor, 0 if unset
	UsePluginAspectRatio bool
	PluginPath           string // source .adsp file, informational
}

// Clone returns an independent copy of the element.
func (e *Element) Clone() *Element {
	clone := *e
	return &clone
}
