package geometry

import (
	"fmt"
	"log"

	"github.com/reeltune/reeltune/internal/model"
	"github.com/reeltune/reeltune/internal/plugin"
)

// Controller owns the per-content-type canvas states and applies every
// geometry mutation. One controller exists per canvas; rendering and
// interaction code receive it by reference, there is no ambient state.
type Controller struct {
	active model.ContentType
	states map[model.ContentType]*ContentState

	widgetW, widgetH float32
	frame            model.Rect

	selected string
	drag     interaction

	// switching short-circuits recursive entry while a content-type switch
	// saves the outgoing and loads the incoming state. Re-entrancy
	// protection on the single UI thread, not a lock.
	switching bool

	onChange func() // repaint callback
}

// NewController creates a controller with reel as the active content type.
// States are created lazily, once a usable frame exists.
func NewController() *Controller {
	return &Controller{
		active: model.ContentReel,
		states: make(map[model.ContentType]*ContentState),
	}
}

// SetOnChange sets the callback invoked after any geometry mutation.
func (c *Controller) SetOnChange(fn func()) {
	c.onChange = fn
}

// ActiveType returns the active content type.
func (c *Controller) ActiveType() model.ContentType {
	return c.active
}

// Frame returns the current content frame.
func (c *Controller) Frame() model.Rect {
	return c.frame
}

// Selected returns the name of the selected element, or "".
func (c *Controller) Selected() string {
	return c.selected
}

// Select sets the selection without starting an interaction. Selecting an
// element that does not exist clears the selection.
func (c *Controller) Select(name string) {
	if name != "" {
		if st := c.activeState(); st == nil {
			name = ""
		} else if _, ok := st.Element(name); !ok {
			name = ""
		}
	}
	c.selected = name
	c.notify()
}

// Resize recomputes the content frame for a new widget size and re-anchors
// the active state's elements before the next repaint. Other content types
// catch up lazily when they next become active. Degenerate widget sizes are
// ignored until the next valid frame computation.
func (c *Controller) Resize(w, h float32) {
	c.widgetW, c.widgetH = w, h

	frame := FitFrame(w, h, c.active.AspectRatio())
	if frame.IsDegenerate() {
		return
	}
	if frame == c.frame && c.states[c.active] != nil {
		return
	}

	c.frame = frame
	if st := c.ensureActiveState(); st != nil {
		st.reanchorTo(frame)
	}
	c.notify()
}

// SetContentType switches the active content type. Saving the outgoing state
// and loading the incoming one is a single atomic logical operation: the
// in-progress flag blocks recursive entry during the swap, so no event
// observes a half-updated state. The flag is cleared before the completion
// callback, which must fire so observers repaint the incoming state.
func (c *Controller) SetContentType(ct model.ContentType) {
	if c.switching || ct == c.active {
		return
	}
	c.switching = true

	// The outgoing state's elements are mutated in place, so it already
	// holds its latest rects and lastFrame baseline.
	c.active = ct
	c.selected = ""
	c.drag = interaction{}

	c.frame = FitFrame(c.widgetW, c.widgetH, ct.AspectRatio())
	if st := c.ensureActiveState(); st != nil {
		st.reanchorTo(c.frame)
	}

	c.switching = false
	c.notify()
}

// State returns the state for a content type, or nil when it has not been
// materialized yet.
func (c *Controller) State(ct model.ContentType) *ContentState {
	return c.states[ct]
}

// ActiveElements returns the active state's elements in z-order, bottom
// first. Nil before the first valid frame.
func (c *Controller) ActiveElements() []*model.Element {
	st := c.activeState()
	if st == nil {
		return nil
	}
	return st.Elements()
}

// ResetDefaults restores every element of the active content type to its
// built-in defaults for the current frame. Other content types are
// unaffected. Idempotent: applying twice yields the same result.
func (c *Controller) ResetDefaults() {
	if c.frame.IsDegenerate() {
		return
	}
	c.states[c.active] = newContentState(c.active, c.frame)
	c.selected = ""
	c.drag = interaction{}
	c.notify()
}

// SetConstrained toggles clamp-to-frame placement for an element. Enabling
// clamps the rect into the frame immediately.
func (c *Controller) SetConstrained(name string, constrained bool) {
	e := c.mutableElement(name, "SetConstrained")
	if e == nil {
		return
	}
	e.Constrained = constrained
	if constrained && !c.frame.IsDegenerate() {
		if ratio := lockedRatio(e); ratio > 0 {
			e.Rect = clampAspectToFrame(e.Rect, c.frame, ratio)
		} else {
			e.Rect = clampToFrame(e.Rect, c.frame)
		}
	}
	c.notify()
}

// SetElementEnabled toggles an element's enabled flag. Disabled elements
// render dimmed with an "OFF" marker but stay fully interactive.
func (c *Controller) SetElementEnabled(name string, enabled bool) {
	e := c.mutableElement(name, "SetElementEnabled")
	if e == nil {
		return
	}
	e.Enabled = enabled
	c.notify()
}

// SetElementVisible toggles an element's visibility. Invisible elements are
// excluded from rendering but remain selectable and mutable.
func (c *Controller) SetElementVisible(name string, visible bool) {
	e := c.mutableElement(name, "SetElementVisible")
	if e == nil {
		return
	}
	e.Visible = visible
	c.notify()
}

// SetTextContent updates a text element's content.
func (c *Controller) SetTextContent(name, content string) {
	e := c.mutableElement(name, "SetTextContent")
	if e == nil || e.Type != model.ElementText {
		return
	}
	e.Content = content
	c.notify()
}

// SetTextFontSize updates a text element's font size, clamped to 6–120.
func (c *Controller) SetTextFontSize(name string, size int) {
	e := c.mutableElement(name, "SetTextFontSize")
	if e == nil || e.Type != model.ElementText {
		return
	}
	if size < 6 {
		size = 6
	}
	if size > 120 {
		size = 120
	}
	e.FontSize = size
	c.notify()
}

// SetTextStyle updates a text element's style.
func (c *Controller) SetTextStyle(name string, style model.TextStyle) {
	e := c.mutableElement(name, "SetTextStyle")
	if e == nil || e.Type != model.ElementText {
		return
	}
	e.Style = style
	c.notify()
}

// SetElementColor updates an element's color (hex string).
func (c *Controller) SetElementColor(name, hex string) {
	e := c.mutableElement(name, "SetElementColor")
	if e == nil {
		return
	}
	e.Color = hex
	c.notify()
}

// SetPiPCornerRadius updates a media window's corner radius, clamped 0–50.
func (c *Controller) SetPiPCornerRadius(name string, radius int) {
	e := c.mutableElement(name, "SetPiPCornerRadius")
	if e == nil || e.Type != model.ElementPiP {
		return
	}
	if radius < 0 {
		radius = 0
	}
	if radius > 50 {
		radius = 50
	}
	e.CornerRadius = radius
	c.notify()
}

// SetPiPShape updates a media window's outline shape.
func (c *Controller) SetPiPShape(name string, shape model.PiPShape) {
	e := c.mutableElement(name, "SetPiPShape")
	if e == nil || e.Type != model.ElementPiP {
		return
	}
	e.Shape = shape
	c.notify()
}

// LoadPluginAspectRatio parses a plugin descriptor file and stores its
// aspect ratio on a media window element. The ratio is not enforced until
// TogglePluginAspectRatio enables it. A parse failure or missing pluginSize
// leaves the element untouched and returns a descriptive error.
func (c *Controller) LoadPluginAspectRatio(name, descriptorPath string) error {
	st := c.activeState()
	if st == nil {
		return fmt.Errorf("canvas has no layout yet")
	}
	e, ok := st.Element(name)
	if !ok {
		return fmt.Errorf("element not found: %s", name)
	}
	if e.Type != model.ElementPiP {
		return fmt.Errorf("element %s is not a media window", name)
	}

	desc, err := plugin.ParseFile(descriptorPath)
	if err != nil {
		return fmt.Errorf("failed to parse plugin descriptor: %w", err)
	}
	ratio, err := desc.AspectRatio()
	if err != nil {
		return fmt.Errorf("descriptor %s: %w", descriptorPath, err)
	}

	e.PluginAspectRatio = ratio
	e.PluginPath = descriptorPath
	c.notify()
	return nil
}

// TogglePluginAspectRatio enables or disables plugin aspect-ratio
// enforcement on a media window. Enabling immediately reshapes the current
// rect to the stored ratio, preserving its center point and area; resizes
// maintain the ratio from then on. Disabling restores free-form resizing.
func (c *Controller) TogglePluginAspectRatio(name string, enabled bool) {
	e := c.mutableElement(name, "TogglePluginAspectRatio")
	if e == nil || e.Type != model.ElementPiP {
		return
	}
	e.UsePluginAspectRatio = enabled
	if enabled && e.PluginAspectRatio > 0 {
		e.Rect = aspectRect(e.Rect, e.PluginAspectRatio)
		if e.Constrained && !c.frame.IsDegenerate() {
			e.Rect = clampAspectToFrame(e.Rect, c.frame, e.PluginAspectRatio)
		}
	}
	c.notify()
}

// activeState returns the state for the active content type, creating it if
// a usable frame exists.
func (c *Controller) activeState() *ContentState {
	return c.ensureActiveState()
}

func (c *Controller) ensureActiveState() *ContentState {
	if st, ok := c.states[c.active]; ok {
		return st
	}
	if c.frame.IsDegenerate() {
		return nil
	}
	st := newContentState(c.active, c.frame)
	c.states[c.active] = st
	return st
}

// mutableElement resolves an element of the active state for mutation.
// A missing element is a no-op with a logged warning, never fatal.
func (c *Controller) mutableElement(name, op string) *model.Element {
	st := c.activeState()
	if st == nil {
		log.Printf("Warning: %s before canvas layout, ignoring", op)
		return nil
	}
	e, ok := st.Element(name)
	if !ok {
		log.Printf("Warning: %s on unknown element %q for %s, ignoring", op, name, c.active)
		return nil
	}
	return e
}

func (c *Controller) notify() {
	if c.switching {
		return
	}
	if c.onChange != nil {
		c.onChange()
	}
}
