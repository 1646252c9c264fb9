package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/reeltune/reeltune/internal/geometry"
	"github.com/reeltune/reeltune/internal/model"
)

// PropertiesPanel edits the selected canvas element. It rebuilds its control
// set when the selection changes; value edits go straight to the controller.
type PropertiesPanel struct {
	controller   *geometry.Controller
	localization *Localization

	container *fyne.Container

	// onLoadPluginRatio is invoked when the user asks to load a plugin
	// descriptor for the selected media window. The root owns file dialogs.
	onLoadPluginRatio func(elementName string)

	lastSelected string
	lastType     model.ElementType
}

// NewPropertiesPanel creates the panel bound to a geometry controller
func NewPropertiesPanel(controller *geometry.Controller, localization *Localization) *PropertiesPanel {
	p := &PropertiesPanel{
		controller:   controller,
		localization: localization,
		container:    container.NewVBox(),
	}
	p.rebuild()
	return p
}

// SetOnLoadPluginRatio sets the callback for the "load descriptor" button
func (p *PropertiesPanel) SetOnLoadPluginRatio(fn func(elementName string)) {
	p.onLoadPluginRatio = fn
}

// Container returns the panel's root container
func (p *PropertiesPanel) Container() *fyne.Container {
	return p.container
}

// Refresh rebuilds the controls when the selection changed. Rebuilding on
// every geometry change would steal focus from entries mid-edit, so value
// changes alone leave the control set in place.
func (p *PropertiesPanel) Refresh() {
	selected := p.controller.Selected()
	elementType := model.ElementType("")
	if e := p.selectedElement(); e != nil {
		elementType = e.Type
	}

	if selected == p.lastSelected && elementType == p.lastType {
		return
	}
	p.rebuild()
}

// ForceRefresh rebuilds the controls unconditionally, e.g. after a language
// change or a project load.
func (p *PropertiesPanel) ForceRefresh() {
	p.rebuild()
}

func (p *PropertiesPanel) selectedElement() *model.Element {
	selected := p.controller.Selected()
	if selected == "" {
		return nil
	}
	st := p.controller.State(p.controller.ActiveType())
	if st == nil {
		return nil
	}
	e, ok := st.Element(selected)
	if !ok {
		return nil
	}
	return e
}

func (p *PropertiesPanel) rebuild() {
	e := p.selectedElement()
	p.lastSelected = p.controller.Selected()
	if e != nil {
		p.lastType = e.Type
	} else {
		p.lastType = ""
	}

	p.container.RemoveAll()

	title := widget.NewLabelWithStyle(p.localization.GetText(KeyProperties),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.container.Add(title)

	if e == nil {
		p.container.Add(widget.NewLabel(p.localization.GetText(KeyNoSelection)))
		p.container.Refresh()
		return
	}

	p.container.Add(widget.NewLabel(e.Name))
	p.container.Add(widget.NewSeparator())

	p.container.Add(p.flagChecks(e))
	p.container.Add(p.colorRow(e))

	switch e.Type {
	case model.ElementText:
		p.addTextControls(e)
	case model.ElementPiP:
		p.addPiPControls(e)
	}

	p.container.Refresh()
}

func (p *PropertiesPanel) flagChecks(e *model.Element) fyne.CanvasObject {
	name := e.Name

	visible := widget.NewCheck(p.localization.GetText(KeyVisible), func(checked bool) {
		p.controller.SetElementVisible(name, checked)
	})
	visible.SetChecked(e.Visible)

	enabled := widget.NewCheck(p.localization.GetText(KeyEnabled), func(checked bool) {
		p.controller.SetElementEnabled(name, checked)
	})
	enabled.SetChecked(e.Enabled)

	constrained := widget.NewCheck(p.localization.GetText(KeyConstrained), func(checked bool) {
		p.controller.SetConstrained(name, checked)
	})
	constrained.SetChecked(e.Constrained)

	return container.NewVBox(visible, enabled, constrained)
}

func (p *PropertiesPanel) colorRow(e *model.Element) fyne.CanvasObject {
	name := e.Name

	entry := widget.NewEntry()
	entry.SetText(e.Color)
	entry.SetPlaceHolder("#ffffff")
	entry.OnSubmitted = func(text string) {
		p.controller.SetElementColor(name, text)
	}

	return container.NewBorder(nil, nil, widget.NewLabel("Color"), nil, entry)
}

func (p *PropertiesPanel) addTextControls(e *model.Element) {
	name := e.Name

	content := widget.NewEntry()
	content.SetText(e.Content)
	content.OnSubmitted = func(text string) {
		p.controller.SetTextContent(name, text)
	}
	p.container.Add(container.NewBorder(nil, nil,
		widget.NewLabel(p.localization.GetText(KeyPostTitle)), nil, content))

	fontSize := widget.NewEntry()
	fontSize.SetText(strconv.Itoa(e.FontSize))
	fontSize.OnSubmitted = func(text string) {
		if size, err := strconv.Atoi(text); err == nil {
			p.controller.SetTextFontSize(name, size)
		}
	}
	p.container.Add(container.NewBorder(nil, nil, widget.NewLabel("Font size"), nil, fontSize))

	style := widget.NewSelect([]string{string(model.StyleNormal), string(model.StyleBold)},
		func(selected string) {
			p.controller.SetTextStyle(name, model.TextStyle(selected))
		})
	style.SetSelected(string(e.Style))
	p.container.Add(style)
}

func (p *PropertiesPanel) addPiPControls(e *model.Element) {
	name := e.Name

	shape := widget.NewSelect([]string{string(model.ShapeRectangle), string(model.ShapeEllipse)},
		func(selected string) {
			p.controller.SetPiPShape(name, model.PiPShape(selected))
		})
	shape.SetSelected(string(e.Shape))
	p.container.Add(shape)

	radius := widget.NewEntry()
	radius.SetText(strconv.Itoa(e.CornerRadius))
	radius.OnSubmitted = func(text string) {
		if r, err := strconv.Atoi(text); err == nil {
			p.controller.SetPiPCornerRadius(name, r)
		}
	}
	p.container.Add(container.NewBorder(nil, nil, widget.NewLabel("Corner radius"), nil, radius))

	usePluginRatio := widget.NewCheck(p.localization.GetText(KeyUsePluginRatio), func(checked bool) {
		p.controller.TogglePluginAspectRatio(name, checked)
	})
	usePluginRatio.SetChecked(e.UsePluginAspectRatio)
	p.container.Add(usePluginRatio)

	loadButton := widget.NewButton(p.localization.GetText(KeyLoadPluginRatio), func() {
		if p.onLoadPluginRatio != nil {
			p.onLoadPluginRatio(name)
		}
	})
	p.container.Add(loadButton)

	if e.PluginPath == "" {
		p.container.Add(widget.NewLabel(p.localization.GetText(KeyNoPluginYet)))
	}
}
