package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/reeltune/reeltune/internal/config"
	"github.com/reeltune/reeltune/internal/platform"
	"github.com/reeltune/reeltune/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.reeltune.reeltune"
	AppName = "ReelTune"

	WindowWidth  = 1280
	WindowHeight = 820
)

func main() {
	// Log version information
	fmt.Printf("ReelTune v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Ensure the projects directory exists before the UI needs it
	settings := config.NewSettings(myApp)
	projectsDir := settings.GetProjectsDirectory()
	if err := platform.CreateDirectoryIfNotExists(projectsDir); err != nil {
		fmt.Printf("failed to ensure projects dir: %v\n", err)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp)

	// Show and run
	myWindow.ShowAndRun()
}
