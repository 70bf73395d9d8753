package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/vladelaina/catime-notes/internal/config"
)

func TestSettingsDialogApply(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := test.NewWindow(widget.NewLabel(""))
	settings := config.NewSettings(app)

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.loadCurrentSettings()

	if sd.fontSizeEntry.Text != "13" {
		t.Errorf("Expected font size entry '13', got '%s'", sd.fontSizeEntry.Text)
	}

	sd.fontSizeEntry.SetText("99")
	sd.wheelLinesEntry.SetText("5")
	sd.lineStepEntry.SetText("not a number")
	sd.startupCheck.SetChecked(false)
	sd.channelSelect.SetSelected(string(config.ChannelPrerelease))
	sd.languageSelect.SetSelected("ru")

	sd.onSave(true)

	if !saved {
		t.Error("Expected save callback to run")
	}
	if got := settings.GetFontSize(); got != config.MaxFontSize {
		t.Errorf("Expected font size clamped to %d, got %v", config.MaxFontSize, got)
	}
	if got := settings.GetWheelLines(); got != 5 {
		t.Errorf("Expected wheel lines 5, got %d", got)
	}
	if got := settings.GetLineStep(); got != config.DefaultLineStep {
		t.Errorf("Expected invalid line step to be ignored, got %d", got)
	}
	if settings.GetCheckOnStartup() {
		t.Error("Expected startup check to be disabled")
	}
	if settings.GetUpdateChannel() != config.ChannelPrerelease {
		t.Errorf("Expected prerelease channel, got %s", settings.GetUpdateChannel())
	}
	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", settings.GetLanguage())
	}
}

func TestSettingsDialogCancel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := test.NewWindow(widget.NewLabel(""))
	settings := config.NewSettings(app)

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.loadCurrentSettings()
	sd.wheelLinesEntry.SetText("7")
	sd.onSave(false)

	if saved {
		t.Error("Expected cancel not to run the save callback")
	}
	if settings.GetWheelLines() != config.DefaultWheelLines {
		t.Errorf("Expected wheel lines unchanged, got %d", settings.GetWheelLines())
	}
}
