package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vladelaina/catime-notes/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	fontSizeEntry   *widget.Entry
	wheelLinesEntry *widget.Entry
	lineStepEntry   *widget.Entry
	startupCheck    *widget.Check
	channelSelect   *widget.Select
	exportDirEntry  *widget.Entry
	languageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.fontSizeEntry = widget.NewEntry()
	sd.fontSizeEntry.SetPlaceHolder(rangeHint(config.MinFontSize, config.MaxFontSize))

	sd.wheelLinesEntry = widget.NewEntry()
	sd.wheelLinesEntry.SetPlaceHolder(rangeHint(config.MinWheelLines, config.MaxWheelLines))

	sd.lineStepEntry = widget.NewEntry()
	sd.lineStepEntry.SetPlaceHolder(rangeHint(config.MinLineStep, config.MaxLineStep))

	sd.startupCheck = widget.NewCheck(l.GetText(KeyCheckOnStartup), nil)

	channelOptions := []string{}
	for _, channel := range sd.settings.GetUpdateChannelOptions() {
		channelOptions = append(channelOptions, string(channel))
	}
	sd.channelSelect = widget.NewSelect(channelOptions, nil)

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyNotesFontSize)+":"),
		sd.fontSizeEntry,

		widget.NewLabel(l.GetText(KeyWheelLines)+":"),
		sd.wheelLinesEntry,

		widget.NewLabel(l.GetText(KeyLineStep)+":"),
		sd.lineStepEntry,

		widget.NewSeparator(),
		sd.startupCheck,
		widget.NewLabel(l.GetText(KeyUpdateChannel)+":"),
		sd.channelSelect,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// rangeHint formats an inclusive range placeholder
func rangeHint(lo, hi int) string {
	return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.fontSizeEntry.SetText(strconv.FormatFloat(float64(sd.settings.GetFontSize()), 'f', -1, 32))
	sd.wheelLinesEntry.SetText(strconv.Itoa(sd.settings.GetWheelLines()))
	sd.lineStepEntry.SetText(strconv.Itoa(sd.settings.GetLineStep()))
	sd.startupCheck.SetChecked(sd.settings.GetCheckOnStartup())
	sd.channelSelect.SetSelected(string(sd.settings.GetUpdateChannel()))
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the entered values; unparsable numbers are ignored
func (sd *SettingsDialog) apply() {
	if size, err := strconv.ParseFloat(sd.fontSizeEntry.Text, 32); err == nil {
		sd.settings.SetFontSize(float32(size))
	}
	if lines, err := strconv.Atoi(sd.wheelLinesEntry.Text); err == nil {
		sd.settings.SetWheelLines(lines)
	}
	if step, err := strconv.Atoi(sd.lineStepEntry.Text); err == nil {
		sd.settings.SetLineStep(step)
	}

	sd.settings.SetCheckOnStartup(sd.startupCheck.Checked)

	if sd.channelSelect.Selected != "" {
		sd.settings.SetUpdateChannel(config.UpdateChannel(sd.channelSelect.Selected))
	}
	if sd.exportDirEntry.Text != "" {
		sd.settings.SetExportDirectory(sd.exportDirEntry.Text)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
