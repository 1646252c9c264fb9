package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/reeltune/reeltune/internal/config"
	"github.com/reeltune/reeltune/internal/geometry"
	"github.com/reeltune/reeltune/internal/model"
	"github.com/reeltune/reeltune/internal/project"
)

// RootUI is the main application window: template canvas in the center,
// properties panel and schedule on the right, content-type selector on top.
type RootUI struct {
	window fyne.Window
	app    fyne.App

	settings     *config.Settings
	localization *Localization

	controller *geometry.Controller
	canvas     *TemplateCanvas
	panel      *PropertiesPanel
	schedule   *ScheduleView

	project *project.Project

	typeSelect *widget.Select
	statusBar  *widget.Label
}

// NewRootUI creates the main application UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	controller := geometry.NewController()

	r := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		controller:   controller,
		canvas:       NewTemplateCanvas(controller),
		panel:        NewPropertiesPanel(controller, localization),
		schedule:     NewScheduleView(window, localization),
		project:      project.New("Untitled"),
	}

	controller.SetOnChange(func() {
		r.canvas.Refresh()
		r.panel.Refresh()
		r.updateStatusBar()
	})
	r.panel.SetOnLoadPluginRatio(r.onLoadPluginDescriptor)
	r.schedule.SetOnChanged(r.markProjectModified)
	r.schedule.SetSchedule(r.project.Schedule)

	r.createUI()
	r.updateWindowTitle()
	go r.autosaveLoop()

	return r
}

func (r *RootUI) createUI() {
	r.window.SetMainMenu(r.buildMainMenu())

	typeNames := make([]string, 0, len(model.AllContentTypes()))
	for _, ct := range model.AllContentTypes() {
		typeNames = append(typeNames, ct.String())
	}
	r.typeSelect = widget.NewSelect(typeNames, func(selected string) {
		r.controller.SetContentType(model.ParseContentType(selected))
	})
	r.typeSelect.SetSelected(r.settings.GetDefaultContentType().String())

	toolbar := container.NewHBox(
		widget.NewButton(IconFolder+" "+r.localization.GetText(KeyOpenProject), r.onOpenProject),
		widget.NewButton(IconSave+" "+r.localization.GetText(KeySaveProject), r.onSaveProject),
		widget.NewButton(IconPlugin+" "+r.localization.GetText(KeyImportPlugin), r.onImportPlugin),
		widget.NewButton(IconExport+" "+r.localization.GetText(KeyExportAI), r.onExportAI),
		widget.NewSeparator(),
		widget.NewLabel(r.localization.GetText(KeyContentType)),
		r.typeSelect,
		widget.NewSeparator(),
		widget.NewButton(IconReset+" "+r.localization.GetText(KeyResetLayout), r.onResetLayout),
	)

	r.statusBar = widget.NewLabel("")
	r.updateStatusBar()

	sidebar := container.NewVSplit(
		container.NewVScroll(r.panel.Container()),
		r.schedule.Container(),
	)
	sidebar.SetOffset(0.55)

	split := container.NewHSplit(r.canvas, sidebar)
	split.SetOffset(0.72)

	r.window.SetContent(container.NewBorder(toolbar, r.statusBar, nil, nil, split))
}

// updateStatusBar shows the active format and current selection
func (r *RootUI) updateStatusBar() {
	if r.statusBar == nil {
		return
	}
	dims := r.controller.ActiveType().Dimensions()
	text := fmt.Sprintf("%s%s%dx%d", dims.Name, MiddleDotSeparator, dims.Width, dims.Height)
	if selected := r.controller.Selected(); selected != "" {
		text += MiddleDotSeparator + selected
	}
	r.statusBar.SetText(text)
}

func (r *RootUI) buildMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu(r.localization.GetText(KeyFile),
		fyne.NewMenuItem(r.localization.GetText(KeyNewProject), r.onNewProject),
		fyne.NewMenuItem(r.localization.GetText(KeyOpenProject), r.onOpenProject),
		fyne.NewMenuItem(r.localization.GetText(KeySaveProject), r.onSaveProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(r.localization.GetText(KeyImportPlugin), r.onImportPlugin),
		fyne.NewMenuItem(r.localization.GetText(KeyImportSession), r.onImportSession),
		fyne.NewMenuItem(r.localization.GetText(KeyAddAsset), r.onAddAsset),
		fyne.NewMenuItem(r.localization.GetText(KeyExportAI), r.onExportAI),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(r.localization.GetText(KeySettings), r.onShowSettings),
	)

	current := r.localization.GetCurrentLanguage()
	var langItems []*fyne.MenuItem
	for code, name := range r.localization.GetAvailableLanguages() {
		code := code
		item := fyne.NewMenuItem(name, func() {
			r.onLanguageChange(code)
		})
		item.Checked = code == current
		langItems = append(langItems, item)
	}
	languageMenu := fyne.NewMenu(r.localization.GetText(KeyLanguage), langItems...)

	return fyne.NewMainMenu(fileMenu, languageMenu)
}

func (r *RootUI) updateWindowTitle() {
	title := fmt.Sprintf("%s - %s", r.localization.GetText(KeyAppTitle), r.project.Metadata.Name)
	if r.project.Modified() {
		title += " *"
	}
	r.window.SetTitle(title)
}

func (r *RootUI) markProjectModified() {
	r.project.MarkModified()
	r.updateWindowTitle()
}

// onNewProject replaces the current project with an empty one
func (r *RootUI) onNewProject() {
	r.project = project.New("Untitled")
	r.schedule.SetSchedule(r.project.Schedule)
	r.controller.ResetDefaults()
	r.canvas.SetReferenceImage("")
	r.updateWindowTitle()
	log.Printf("Created new project")
}

func (r *RootUI) onOpenProject() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		r.openProject(path)
	}, r.window)
}

func (r *RootUI) openProject(path string) {
	p, err := project.Load(path)
	if err != nil {
		log.Printf("Failed to load project %s: %v", path, err)
		r.showToast(r.localization.GetText(KeyErrorLoading), err.Error())
		return
	}

	r.project = p
	p.ApplyTemplates(r.controller)
	r.schedule.SetSchedule(p.Schedule)
	r.panel.ForceRefresh()
	r.canvas.Refresh()

	r.settings.SetLastProject(path)
	r.settings.AddRecentProject(path)
	r.updateWindowTitle()

	log.Printf("Loaded project %s", path)
	r.showToast(r.localization.GetText(KeyProjectLoaded), p.Metadata.Name)
}

func (r *RootUI) onSaveProject() {
	if path := r.project.Path(); path != "" {
		r.saveProject(path)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		r.saveProject(path)
	}, r.window)
	d.SetFileName(r.project.Metadata.Name + project.ProjectExt)
	d.Show()
}

func (r *RootUI) saveProject(path string) {
	r.project.CaptureTemplates(r.controller)
	if err := r.project.Save(path); err != nil {
		log.Printf("Failed to save project: %v", err)
		r.showToast(r.localization.GetText(KeyErrorSaving), err.Error())
		return
	}

	r.settings.SetLastProject(r.project.Path())
	r.settings.AddRecentProject(r.project.Path())
	r.updateWindowTitle()

	log.Printf("Saved project to %s", r.project.Path())
	r.showToast(r.localization.GetText(KeyProjectSaved), r.project.Path())
}

// onImportPlugin imports a plugin descriptor into the project and binds its
// aspect ratio to the media window.
func (r *RootUI) onImportPlugin() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		desc, err := r.project.Plugins.Import(path)
		if err != nil {
			log.Printf("Failed to import plugin %s: %v", path, err)
			r.showToast(r.localization.GetText(KeyErrorImporting), err.Error())
			return
		}
		r.project.Metadata.PluginName = desc.Name
		r.markProjectModified()

		if err := r.controller.LoadPluginAspectRatio(geometry.ElementPiP, path); err != nil {
			log.Printf("Plugin imported but aspect ratio not applied: %v", err)
		}

		log.Printf("Imported plugin %s from %s", desc.Name, path)
		r.showToast(r.localization.GetText(KeyPluginImported), desc.DisplayTitle())
	}, r.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".adsp"}))
	d.Show()
}

// onLoadPluginDescriptor loads a descriptor's aspect ratio onto one element,
// without importing the plugin into the project.
func (r *RootUI) onLoadPluginDescriptor(elementName string) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := r.controller.LoadPluginAspectRatio(elementName, path); err != nil {
			log.Printf("Failed to load descriptor %s: %v", path, err)
			r.showToast(r.localization.GetText(KeyErrorImporting), err.Error())
			return
		}
		r.panel.ForceRefresh()
	}, r.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".adsp"}))
	d.Show()
}

// onImportSession registers an XplainPack session folder with the project
func (r *RootUI) onImportSession() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		pack, err := r.project.ImportSession(uri.Path())
		if err != nil {
			log.Printf("Failed to import session %s: %v", uri.Path(), err)
			r.showToast(r.localization.GetText(KeyErrorImporting), err.Error())
			return
		}
		r.updateWindowTitle()
		r.showToast(r.localization.GetText(KeyImportSession), pack.Name)
	}, r.window)
}

// assetsDir resolves where imported asset copies live: next to the project
// file once it is saved, under the projects directory before that.
func (r *RootUI) assetsDir() string {
	if path := r.project.Path(); path != "" {
		return filepath.Join(filepath.Dir(path), "assets")
	}
	return filepath.Join(r.settings.GetProjectsDirectory(), "assets")
}

// onAddAsset copies a media file into the project's assets directory and
// registers it. Image assets become the canvas reference preview.
func (r *RootUI) onAddAsset() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		asset, err := r.project.ImportAsset(path, r.assetsDir())
		if err != nil {
			log.Printf("Failed to add asset %s: %v", path, err)
			r.showToast(r.localization.GetText(KeyErrorLoading), err.Error())
			return
		}
		r.updateWindowTitle()

		if asset.Kind == project.AssetImage {
			r.canvas.SetReferenceImage(asset.Path)
		}
		log.Printf("Added asset %s (%s)", asset.Name, asset.Kind)
	}, r.window)
}

func (r *RootUI) onExportAI() {
	pluginName := r.project.Metadata.PluginName
	if pluginName == "" {
		r.showToast(r.localization.GetText(KeyExportAI),
			r.localization.GetText(KeyNoPluginYet))
		return
	}

	// Export reflects what is on screen, not the last save.
	r.project.CaptureTemplates(r.controller)

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := project.ExportAIDocument(r.project, pluginName, path); err != nil {
			log.Printf("Failed to export: %v", err)
			r.showToast(r.localization.GetText(KeyErrorSaving), err.Error())
			return
		}
		log.Printf("Wrote AI export to %s", path)
		r.showToast(r.localization.GetText(KeyExportDone), path)
	}, r.window)
	d.SetFileName(pluginName + "-content.json")
	d.Show()
}

func (r *RootUI) onResetLayout() {
	dialog.ShowConfirm(
		r.localization.GetText(KeyResetConfirmTitle),
		r.localization.GetText(KeyResetConfirmText),
		func(confirmed bool) {
			if confirmed {
				r.controller.ResetDefaults()
			}
		},
		r.window,
	)
}

func (r *RootUI) onShowSettings() {
	NewSettingsDialog(r.window, r.settings, r.localization, func() {
		r.localization.SetLanguage(r.settings.GetLanguage())
		r.refreshUITexts()
	}).Show()
}

func (r *RootUI) onLanguageChange(code string) {
	r.settings.SetLanguage(code)
	r.localization.SetLanguage(code)
	log.Printf("Language changed to %s", code)
	r.refreshUITexts()
}

// refreshUITexts rebuilds the text-bearing chrome after a language change
func (r *RootUI) refreshUITexts() {
	r.window.SetMainMenu(r.buildMainMenu())
	r.panel.ForceRefresh()
	r.schedule.Refresh()
	r.updateWindowTitle()
}

// showToast shows a transient notification popup in the top-right corner
func (r *RootUI) showToast(title, message string) {
	titleLabel := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord

	popup := widget.NewPopUp(container.NewVBox(titleLabel, messageLabel), r.window.Canvas())
	popup.Resize(fyne.NewSize(ToastWidth, ToastHeight))

	canvasSize := r.window.Canvas().Size()
	popup.Move(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	popup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(popup.Hide)
	}()
}

// autosaveLoop periodically saves the project when autosave is enabled and
// the project has a file path.
func (r *RootUI) autosaveLoop() {
	for {
		minutes := r.settings.GetAutosaveMinutes()
		if minutes <= 0 {
			time.Sleep(time.Minute)
			continue
		}
		time.Sleep(time.Duration(minutes) * time.Minute)

		if r.settings.GetAutosaveMinutes() <= 0 {
			continue
		}
		fyne.Do(func() {
			if r.project.Modified() && r.project.Path() != "" {
				log.Printf("Autosaving project")
				r.saveProject(r.project.Path())
			}
		})
	}
}
