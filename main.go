package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/vladelaina/catime-notes/internal/config"
	"github.com/vladelaina/catime-notes/internal/export"
	"github.com/vladelaina/catime-notes/internal/platform"
	"github.com/vladelaina/catime-notes/internal/ui"
	"github.com/vladelaina/catime-notes/internal/update"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.vladelaina.catime-notes"
	AppName = "Catime Notes"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("Catime Notes v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	// Apply compact theme sized to the notes font
	myApp.Settings().SetTheme(ui.NewCompactThemeWithTextSize(settings.GetFontSize()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	}

	// Initialize services
	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		fmt.Printf("failed to ensure export dir: %v\n", err)
	}

	updateSvc := update.NewService(version, nil)
	exportSvc := export.NewService(exportDir, ui.ProfileFromSettings(settings))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, updateSvc, exportSvc)
	rootUI.StartupCheck()

	// Show and run
	myWindow.ShowAndRun()
}
