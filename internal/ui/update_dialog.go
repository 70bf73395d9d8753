package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/vladelaina/catime-notes/internal/config"
	"github.com/vladelaina/catime-notes/internal/model"
	"github.com/vladelaina/catime-notes/internal/platform"
)

// UpdateDialog offers a newer release together with its notes
type UpdateDialog struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	check        *model.UpdateCheck
	dialog       *dialog.CustomDialog

	notes *NotesPanel

	// openURL opens the download page; quit ends the application afterwards
	openURL func(string) error
	quit    func()
}

// NewUpdateDialog creates the dialog for a check that found an update
func NewUpdateDialog(window fyne.Window, settings *config.Settings, localization *Localization, check *model.UpdateCheck) *UpdateDialog {
	ud := &UpdateDialog{
		window:       window,
		settings:     settings,
		localization: localization,
		check:        check,
		openURL:      platform.OpenURL,
		quit: func() {
			if app := fyne.CurrentApp(); app != nil {
				app.Quit()
			}
		},
	}
	ud.createUI()
	return ud
}

// Show displays the dialog
func (ud *UpdateDialog) Show() {
	ud.dialog.Show()
}

// Hide closes the dialog
func (ud *UpdateDialog) Hide() {
	ud.dialog.Hide()
}

// Notes returns the panel showing the release notes
func (ud *UpdateDialog) Notes() *NotesPanel {
	return ud.notes
}

// createUI creates the dialog UI
func (ud *UpdateDialog) createUI() {
	l := ud.localization

	current := widget.NewLabel(fmt.Sprintf("%s %s", l.GetText(KeyCurrentVersion), ud.check.CurrentVersion))
	latest := widget.NewLabel(fmt.Sprintf("%s %s", l.GetText(KeyNewVersion), ud.check.LatestVersion()))
	latest.TextStyle = fyne.TextStyle{Bold: true}

	ud.notes = NewNotesPanel()
	ud.notes.SetFontSize(ud.settings.GetFontSize())
	ud.notes.SetWheelStep(ud.settings.GetWheelLines(), float32(ud.settings.GetLineStep()))
	ud.notes.SetLinkErrorHandler(func(url string, err error) {
		dialog.ShowError(fmt.Errorf("%s: %w", l.GetText(KeyErrorOpeningLink), err), ud.window)
	})
	if err := ud.notes.SetNotes(ud.check.Latest.NotesOrDefault()); err != nil {
		log.Printf("Warning: release notes not shown: %v", err)
	}

	updateBtn := widget.NewButton(l.GetText(KeyUpdateNow), ud.onUpdateNow)
	updateBtn.Importance = widget.HighImportance
	laterBtn := widget.NewButton(l.GetText(KeyLater), ud.onLater)
	skipBtn := widget.NewButton(l.GetText(KeySkipVersion), ud.onSkip)
	skipBtn.Importance = widget.LowImportance

	header := container.NewVBox(current, latest)
	buttons := container.NewHBox(skipBtn, layout.NewSpacer(), laterBtn, updateBtn)
	content := container.NewBorder(header, buttons, nil, nil, ud.notes)

	ud.dialog = dialog.NewCustomWithoutButtons(l.GetText(KeyUpdateAvailable), content, ud.window)
	ud.dialog.Resize(fyne.NewSize(UpdateDialogWidth, UpdateDialogHeight))
}

// onUpdateNow opens the download target and quits
func (ud *UpdateDialog) onUpdateNow() {
	target := ud.check.Latest.GetDownloadTarget()
	if err := ud.openURL(target); err != nil {
		log.Printf("Error opening update %s: %v", target, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ud.localization.GetText(KeyErrorOpeningLink), err), ud.window)
		return
	}
	ud.dialog.Hide()
	ud.quit()
}

// onLater closes the dialog
func (ud *UpdateDialog) onLater() {
	ud.dialog.Hide()
}

// onSkip remembers the offered version so it is not offered again
func (ud *UpdateDialog) onSkip() {
	ud.settings.SetSkippedVersion(ud.check.LatestVersion())
	ud.dialog.Hide()
}

// ShowNoUpdateDialog tells the user the running version is current
func ShowNoUpdateDialog(window fyne.Window, localization *Localization, currentVersion string) {
	message := fmt.Sprintf("%s\n%s %s",
		localization.GetText(KeyNoUpdateMessage),
		localization.GetText(KeyCurrentVersion),
		currentVersion,
	)
	dialog.ShowInformation(localization.GetText(KeyNoUpdateTitle), message, window)
}
