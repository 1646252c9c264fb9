package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/reeltune/reeltune/internal/config"
	"github.com/reeltune/reeltune/internal/model"
)

// SettingsDialog manages the application settings window
type SettingsDialog struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	// onSettingsChanged is called after settings are saved
	onSettingsChanged func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSettingsChanged func()) *SettingsDialog {
	return &SettingsDialog{
		window:            window,
		settings:          settings,
		localization:      localization,
		onSettingsChanged: onSettingsChanged,
	}
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	dirEntry := widget.NewEntry()
	dirEntry.SetText(sd.settings.GetProjectsDirectory())

	browseButton := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			dirEntry.SetText(uri.Path())
		}, sd.window)
	})
	dirRow := container.NewBorder(nil, nil, nil, browseButton, dirEntry)

	autosaveEntry := widget.NewEntry()
	autosaveEntry.SetText(strconv.Itoa(sd.settings.GetAutosaveMinutes()))

	typeNames := make([]string, 0, len(model.AllContentTypes()))
	for _, ct := range model.AllContentTypes() {
		typeNames = append(typeNames, ct.String())
	}
	typeSelect := widget.NewSelect(typeNames, nil)
	typeSelect.SetSelected(sd.settings.GetDefaultContentType().String())

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyProjectsDirectory)),
		dirRow,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyAutosaveMinutes)),
		autosaveEntry,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyDefaultContentType)),
		typeSelect,
	)

	d := dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			sd.save(dirEntry.Text, autosaveEntry.Text, typeSelect.Selected)
		},
		sd.window,
	)
	d.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	d.Show()
}

func (sd *SettingsDialog) save(dir, autosave, contentType string) {
	if dir != "" {
		sd.settings.SetProjectsDirectory(dir)
	}

	minutes, err := strconv.Atoi(autosave)
	if err != nil {
		log.Printf("Invalid autosave interval %q, keeping previous value", autosave)
	} else {
		sd.settings.SetAutosaveMinutes(minutes)
	}

	sd.settings.SetDefaultContentType(model.ParseContentType(contentType))

	log.Printf("Settings saved: dir=%s autosave=%d type=%s",
		sd.settings.GetProjectsDirectory(), sd.settings.GetAutosaveMinutes(),
		sd.settings.GetDefaultContentType())

	if sd.onSettingsChanged != nil {
		sd.onSettingsChanged()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
