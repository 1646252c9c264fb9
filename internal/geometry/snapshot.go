package geometry

import (
	"github.com/reeltune/reeltune/internal/model"
)

// ElementSnapshot is the persisted form of one element: the absolute pixel
// rect at the last-known frame, the two flags, and the type-specific fields.
// Relative placement is not persisted; it is re-derived by re-anchoring the
// first time the content type is displayed after load.
type ElementSnapshot struct {
	Rect       [4]float32     `json:"rect"`
	Visible    bool           `json:"visible"`
	Enabled    bool           `json:"enabled"`
	TypeFields map[string]any `json:"type_fields"`
}

// StateSnapshot is the persisted form of one content type's template.
type StateSnapshot struct {
	ContentType model.ContentType          `json:"content_type"`
	Frame       [4]float32                 `json:"frame"`
	Order       []string                   `json:"order"`
	Elements    map[string]ElementSnapshot `json:"elements"`
}

// Snapshot returns a read-only deep copy of a content type's state, or false
// when the state has not been materialized. The snapshot feeds both project
// persistence and the application-level AI export document; the engine
// itself never writes files.
func (c *Controller) Snapshot(ct model.ContentType) (*StateSnapshot, bool) {
	st, ok := c.states[ct]
	if !ok {
		return nil, false
	}

	snap := &StateSnapshot{
		ContentType: ct,
		Frame:       st.lastFrame.Array(),
		Order:       append([]string(nil), st.order...),
		Elements:    make(map[string]ElementSnapshot, len(st.elements)),
	}
	for name, e := range st.elements {
		snap.Elements[name] = snapshotElement(e)
	}
	return snap, true
}

// SnapshotAll snapshots every materialized content state.
func (c *Controller) SnapshotAll() map[model.ContentType]*StateSnapshot {
	out := make(map[model.ContentType]*StateSnapshot, len(c.states))
	for ct := range c.states {
		if snap, ok := c.Snapshot(ct); ok {
			out[ct] = snap
		}
	}
	return out
}

// Restore loads a serialized state for its content type, replacing any
// existing state. The snapshot's frame becomes the re-anchoring baseline, so
// the elements regain their proportional placement on next display. When the
// restored type is active and a current frame exists, re-anchoring happens
// immediately.
func (c *Controller) Restore(snap *StateSnapshot) {
	if snap == nil {
		return
	}

	st := &ContentState{
		contentType: snap.ContentType,
		elements:    make(map[string]*model.Element, len(snap.Elements)),
		lastFrame:   model.RectFromArray(snap.Frame),
	}
	for _, name := range snap.Order {
		es, ok := snap.Elements[name]
		if !ok {
			continue
		}
		st.add(restoreElement(name, es))
	}
	// Elements missing from the order list still restore, on top.
	for name, es := range snap.Elements {
		if _, ok := st.elements[name]; !ok {
			st.add(restoreElement(name, es))
		}
	}

	c.states[snap.ContentType] = st
	if snap.ContentType == c.active && !c.frame.IsDegenerate() {
		st.reanchorTo(c.frame)
	}
	c.notify()
}

func snapshotElement(e *model.Element) ElementSnapshot {
	fields := map[string]any{
		"element_type": string(e.Type),
		"constrained":  e.Constrained,
		"color":        e.Color,
	}
	switch e.Type {
	case model.ElementText:
		fields["content"] = e.Content
		fields["font_size"] = e.FontSize
		fields["style"] = string(e.Style)
	case model.ElementPiP:
		fields["shape"] = string(e.Shape)
		fields["corner_radius"] = e.CornerRadius
		fields["plugin_aspect_ratio"] = e.PluginAspectRatio
		fields["use_plugin_aspect_ratio"] = e.UsePluginAspectRatio
		fields["plugin_path"] = e.PluginPath
	}
	return ElementSnapshot{
		Rect:       e.Rect.Array(),
		Visible:    e.Visible,
		Enabled:    e.Enabled,
		TypeFields: fields,
	}
}

func restoreElement(name string, es ElementSnapshot) *model.Element {
	f := es.TypeFields
	e := &model.Element{
		Name:        name,
		Type:        model.ElementType(fieldString(f, "element_type")),
		Rect:        model.RectFromArray(es.Rect),
		Visible:     es.Visible,
		Enabled:     es.Enabled,
		Constrained: fieldBool(f, "constrained"),
		Color:       fieldString(f, "color"),
	}
	switch e.Type {
	case model.ElementText:
		e.Content = fieldString(f, "content")
		e.FontSize = int(fieldFloat(f, "font_size"))
		e.Style = model.TextStyle(fieldString(f, "style"))
	case model.ElementPiP:
		e.Shape = model.PiPShape(fieldString(f, "shape"))
		e.CornerRadius = int(fieldFloat(f, "corner_radius"))
		e.PluginAspectRatio = float32(fieldFloat(f, "plugin_aspect_ratio"))
		e.UsePluginAspectRatio = fieldBool(f, "use_plugin_aspect_ratio")
		e.PluginPath = fieldString(f, "plugin_path")
	}
	return e
}

// Field accessors tolerate both in-memory snapshots and snapshots decoded
// from JSON, where numbers arrive as float64.

func fieldString(f map[string]any, key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

func fieldBool(f map[string]any, key string) bool {
	if v, ok := f[key].(bool); ok {
		return v
	}
	return false
}

func fieldFloat(f map[string]any, key string) float64 {
	switch v := f[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}
