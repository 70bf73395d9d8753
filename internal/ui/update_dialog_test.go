package ui

import (
	"errors"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/vladelaina/catime-notes/internal/config"
	"github.com/vladelaina/catime-notes/internal/model"
)

func newTestCheck() *model.UpdateCheck {
	return &model.UpdateCheck{
		CurrentVersion: "1.2.0",
		Status:         model.CheckStatusUpdateAvailable,
		Latest: &model.Release{
			Version:     "1.3.0",
			DownloadURL: "https://example.com/catime-1.3.0.exe",
			PageURL:     "https://example.com/releases/v1.3.0",
			Notes:       "## What's new\n- **Faster** timers",
		},
	}
}

func TestUpdateDialogNotes(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ud := NewUpdateDialog(test.NewWindow(widget.NewLabel("")), config.NewSettings(app), NewLocalization(), newTestCheck())

	doc := ud.Notes().Document()
	if doc == nil {
		t.Fatal("Expected release notes to be parsed")
	}
	if !strings.Contains(doc.String(), "Faster timers") {
		t.Errorf("Expected notes text, got %q", doc.String())
	}
}

func TestUpdateDialogEmptyNotes(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	check := newTestCheck()
	check.Latest.Notes = "  "
	ud := NewUpdateDialog(test.NewWindow(widget.NewLabel("")), config.NewSettings(app), NewLocalization(), check)

	if got := ud.Notes().Document().String(); got != model.NoReleaseNotes {
		t.Errorf("Expected placeholder notes, got %q", got)
	}
}

func TestUpdateDialogUpdateNow(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ud := NewUpdateDialog(test.NewWindow(widget.NewLabel("")), config.NewSettings(app), NewLocalization(), newTestCheck())

	var opened string
	quit := false
	ud.openURL = func(url string) error {
		opened = url
		return nil
	}
	ud.quit = func() { quit = true }

	ud.onUpdateNow()
	if opened != "https://example.com/catime-1.3.0.exe" {
		t.Errorf("Expected download URL to open, got %q", opened)
	}
	if !quit {
		t.Error("Expected application to quit after opening the update")
	}
}

func TestUpdateDialogUpdateNowFails(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ud := NewUpdateDialog(test.NewWindow(widget.NewLabel("")), config.NewSettings(app), NewLocalization(), newTestCheck())

	quit := false
	ud.openURL = func(string) error { return errors.New("no browser") }
	ud.quit = func() { quit = true }

	ud.onUpdateNow()
	if quit {
		t.Error("Expected application to keep running when the link fails")
	}
}

func TestUpdateDialogSkip(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := config.NewSettings(app)
	ud := NewUpdateDialog(test.NewWindow(widget.NewLabel("")), settings, NewLocalization(), newTestCheck())

	ud.onSkip()
	if got := settings.GetSkippedVersion(); got != "1.3.0" {
		t.Errorf("Expected skipped version 1.3.0, got %q", got)
	}
}
