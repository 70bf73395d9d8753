package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/vladelaina/catime-notes/internal/config"
	"github.com/vladelaina/catime-notes/internal/ui"
)

// Viewer window defaults
const (
	ViewerAppID  = "com.vladelaina.catime-notes.viewer"
	ViewerWidth  = 520
	ViewerHeight = 640
)

func newViewCmd(opts *rootOptions) *cobra.Command {
	var fontSize float32

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Show notes in a scrollable window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fontSize < config.MinFontSize || fontSize > config.MaxFontSize {
				return fmt.Errorf("font size must be between %d and %d, got %v", config.MinFontSize, config.MaxFontSize, fontSize)
			}
			input := inputArg(args)
			src, err := readInput(cmd, input)
			if err != nil {
				return err
			}
			if _, err := opts.parseNotes(src); err != nil {
				return err
			}

			viewerApp := app.NewWithID(ViewerAppID)
			viewerApp.Settings().SetTheme(ui.NewCompactTheme())
			settings := config.NewSettings(viewerApp)

			window := viewerApp.NewWindow(viewerTitle(input))
			window.Resize(fyne.NewSize(ViewerWidth, ViewerHeight))

			panel := ui.NewNotesPanel()
			panel.SetFontSize(fontSize)
			panel.SetWheelStep(settings.GetWheelLines(), float32(settings.GetLineStep()))
			if err := panel.SetNotes(src); err != nil {
				return err
			}

			window.SetContent(panel)
			window.ShowAndRun()
			return nil
		},
	}

	cmd.Flags().Float32Var(&fontSize, "font-size", config.DefaultFontSize, "base font size")
	return cmd
}

// viewerTitle returns the window title for input
func viewerTitle(input string) string {
	if input == "" || input == "-" {
		return "Release Notes"
	}
	name := filepath.Base(input)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
