package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/vladelaina/catime-notes/internal/config"
	"github.com/vladelaina/catime-notes/internal/export"
	"github.com/vladelaina/catime-notes/internal/model"
	"github.com/vladelaina/catime-notes/internal/platform"
	"github.com/vladelaina/catime-notes/internal/update"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	updateSvc update.Checker
	exportSvc export.Exporter

	notes      *NotesPanel
	openBtn    *widget.Button
	checkBtn   *widget.Button
	exportBtn  *widget.Button
	exportList *widget.List

	// Currently displayed notes
	currentTitle string
	currentNotes string

	// Export tasks in start order
	tasks      []*model.ExportTask
	tasksMutex sync.RWMutex

	// manualCheck is set while a user-started check runs
	manualCheck bool
	checkMutex  sync.Mutex

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, updateSvc update.Checker, exportSvc export.Exporter) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		updateSvc:    updateSvc,
		exportSvc:    exportSvc,
		currentTitle: localization.GetText(KeyAppTitle),
		currentNotes: localization.GetText(KeyWelcomeNotes),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.updateSvc.SetUpdateCallback(ui.onCheckUpdate)
	ui.exportSvc.SetUpdateCallback(ui.onExportUpdate)
	ui.applySettings()

	ui.setupUI()
	return ui
}

// Notes returns the main notes panel
func (ui *RootUI) Notes() *NotesPanel {
	return ui.notes
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.openBtn = widget.NewButton(IconOpen+" "+ui.localization.GetText(KeyOpenNotes), ui.onOpenNotes)
	ui.checkBtn = widget.NewButton(IconUpdate+" "+ui.localization.GetText(KeyCheckForUpdates), func() {
		ui.CheckForUpdates(true)
	})
	ui.exportBtn = widget.NewButton(IconExport+" "+ui.localization.GetText(KeyExport), ui.onExportClick)
	ui.exportBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := []fyne.CanvasObject{settingsBtn}
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = append([]fyne.CanvasObject{logoImage}, left...)
	}
	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(left...),
		ui.exportBtn,
		container.NewHBox(ui.openBtn, ui.checkBtn),
	)

	// Notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	ui.notes = NewNotesPanel()
	ui.notes.SetFontSize(ui.settings.GetFontSize())
	ui.notes.SetWheelStep(ui.settings.GetWheelLines(), float32(ui.settings.GetLineStep()))
	ui.notes.SetLinkErrorHandler(func(url string, err error) {
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningLink)+": "+err.Error(), false)
	})
	if err := ui.notes.SetNotes(ui.currentNotes); err != nil {
		log.Printf("Warning: welcome notes not shown: %v", err)
	}

	ui.exportList = widget.NewList(
		func() int {
			ui.tasksMutex.RLock()
			defer ui.tasksMutex.RUnlock()
			return len(ui.tasks)
		},
		func() fyne.CanvasObject { return ui.createExportItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateExportItem(id, obj) },
	)

	split := container.NewVSplit(ui.notes, ui.exportList)
	split.Offset = 0.78

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.notificationContainer), // top
		nil,   // bottom
		nil,   // left
		nil,   // right
		split, // center
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeyOpenNotes), ui.onOpenNotes),
		fyne.NewMenuItem(l.GetText(KeyExport), ui.onExportClick),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings),
	)

	helpMenu := fyne.NewMenu(l.GetText(KeyHelp),
		fyne.NewMenuItem(l.GetText(KeyCheckForUpdates), func() { ui.CheckForUpdates(true) }),
	)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu, helpMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.openBtn.SetText(IconOpen + " " + ui.localization.GetText(KeyOpenNotes))
	ui.checkBtn.SetText(IconUpdate + " " + ui.localization.GetText(KeyCheckForUpdates))
	ui.exportBtn.SetText(IconExport + " " + ui.localization.GetText(KeyExport))
	ui.exportList.Refresh()
}

// applySettings pushes settings into the services
func (ui *RootUI) applySettings() {
	ui.updateSvc.SetIncludePrerelease(ui.settings.GetUpdateChannel() == config.ChannelPrerelease)
	ui.exportSvc.SetOutputDirectory(ui.settings.GetExportDirectory())
	ui.exportSvc.SetProfile(ProfileFromSettings(ui.settings))
}

// ProfileFromSettings returns the export profile for the configured font size
func ProfileFromSettings(settings *config.Settings) config.Profile {
	profile := config.DefaultProfile()
	profile.FontSize = settings.GetFontSize()
	return profile
}

// LoadNotes shows text in the main panel under title
func (ui *RootUI) LoadNotes(title, text string) {
	ui.currentTitle = title
	ui.currentNotes = text
	if err := ui.notes.SetNotes(text); err != nil {
		ui.showNotification(err.Error(), false)
		return
	}
	ui.window.SetTitle(fmt.Sprintf("%s - %s", ui.localization.GetText(KeyAppTitle), title))
}

// onOpenNotes lets the user pick a markdown file to display
func (ui *RootUI) onOpenNotes() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			log.Printf("Error reading %s: %v", reader.URI(), err)
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
			return
		}
		name := reader.URI().Name()
		ui.LoadNotes(strings.TrimSuffix(name, filepath.Ext(name)), string(data))
	}, ui.window)
	open.SetFilter(storage.NewExtensionFileFilter(NotesFileExtensions))
	open.Show()
}

// StartupCheck runs a silent update check shortly after launch when enabled
func (ui *RootUI) StartupCheck() {
	if !ui.settings.GetCheckOnStartup() {
		return
	}
	go func() {
		time.Sleep(StartupCheckDelay)
		ui.CheckForUpdates(false)
	}()
}

// CheckForUpdates starts an update check. A manual check also reports
// "no update" and errors; a silent one only reports a new, unskipped version.
func (ui *RootUI) CheckForUpdates(manual bool) {
	ui.checkMutex.Lock()
	ui.manualCheck = manual
	ui.checkMutex.Unlock()

	if manual {
		ui.showNotification(ui.localization.GetText(KeyCheckingForUpdates), true)
	}
	ui.updateSvc.CheckAsync(context.Background())
}

// onCheckUpdate handles check updates from the update service
func (ui *RootUI) onCheckUpdate(check *model.UpdateCheck) {
	if !check.Status.IsFinished() {
		return
	}

	ui.checkMutex.Lock()
	manual := ui.manualCheck
	ui.manualCheck = false
	ui.checkMutex.Unlock()

	ui.settings.SetLastCheck(check.CheckedAt)

	fyne.Do(func() {
		ui.hideNotification()
		ui.presentCheck(check, manual)
	})
}

// presentCheck shows the result of a finished check
func (ui *RootUI) presentCheck(check *model.UpdateCheck, manual bool) {
	switch check.Status {
	case model.CheckStatusError:
		log.Printf("Update check %s failed: %s", check.ID, check.LastError)
		if manual {
			dialog.ShowError(fmt.Errorf("%s: %s", ui.localization.GetText(KeyUpdateCheckFailed), check.LastError), ui.window)
		}
	case model.CheckStatusUpdateAvailable:
		ui.LoadNotes("v"+check.LatestVersion(), check.Latest.NotesOrDefault())
		if !manual && ui.settings.GetSkippedVersion() == check.LatestVersion() {
			log.Printf("Skipping update to %s as requested", check.LatestVersion())
			return
		}
		NewUpdateDialog(ui.window, ui.settings, ui.localization, check).Show()
	case model.CheckStatusUpToDate:
		if check.Latest != nil {
			ui.LoadNotes("v"+check.LatestVersion(), check.Latest.NotesOrDefault())
		}
		if manual {
			ShowNoUpdateDialog(ui.window, ui.localization, check.CurrentVersion)
		}
	}
}

// onExportClick exports the notes currently shown
func (ui *RootUI) onExportClick() {
	task, err := ui.exportSvc.StartExport(ui.currentTitle, ui.currentNotes, "")
	if err != nil {
		log.Printf("Error starting export: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.tasksMutex.Lock()
	ui.tasks = append(ui.tasks, task)
	ui.tasksMutex.Unlock()

	ui.exportList.Refresh()
	ui.showNotification(ui.localization.GetText(KeyExportStarted), false)
}

// createExportItem creates a new export row for the list
func (ui *RootUI) createExportItem() fyne.CanvasObject {
	row := NewExportRow(nil, ui.localization)
	row.SetCallbacks(ui.onStopTask, ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
	return row
}

// updateExportItem binds a list row to a task
func (ui *RootUI) updateExportItem(id widget.ListItemID, item fyne.CanvasObject) {
	ui.tasksMutex.RLock()
	if id >= len(ui.tasks) {
		ui.tasksMutex.RUnlock()
		return
	}
	// Rows read the task while the service may update it
	snapshot := *ui.tasks[id]
	ui.tasksMutex.RUnlock()

	if row, ok := item.(*ExportRow); ok {
		row.UpdateTask(&snapshot)
	}
}

// onExportUpdate handles task updates from the export service
func (ui *RootUI) onExportUpdate(task *model.ExportTask) {
	completed := false

	ui.tasksMutex.Lock()
	for i, existing := range ui.tasks {
		if existing.ID == task.ID {
			ui.tasks[i] = task
			completed = task.Status == model.TaskStatusCompleted
			break
		}
	}
	ui.tasksMutex.Unlock()

	fyne.Do(func() {
		ui.exportList.Refresh()
		if completed {
			ui.sendCompletionNotification(task)
		}
	})
}

// onStopTask stops a running export
func (ui *RootUI) onStopTask(taskID string) {
	if err := ui.exportSvc.StopExport(taskID); err != nil {
		log.Printf("Error stopping task %s: %v", taskID, err)
		ui.showNotification(ui.localization.GetText(KeyErrorStoppingTask)+": "+err.Error(), false)
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onOpenFile handles opening an exported image with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onCopyPath handles copying file path to clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	fyne.CurrentApp().Clipboard().SetContent(filePath)
	ui.showNotification(ui.localization.GetText(KeyPathCopied), false)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies changed settings to the panel and the services
func (ui *RootUI) onSettingsSaved() {
	ui.applySettings()
	ui.notes.SetFontSize(ui.settings.GetFontSize())
	ui.notes.SetWheelStep(ui.settings.GetWheelLines(), float32(ui.settings.GetLineStep()))

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// sendCompletionNotification sends a system notification for a finished export
func (ui *RootUI) sendCompletionNotification(task *model.ExportTask) {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyExportCompleted),
		Content: task.GetDisplayName(),
	})
	ui.showToastNotification(task)
}

// showToastNotification shows an in-app toast with actions for the exported file
func (ui *RootUI) showToastNotification(task *model.ExportTask) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyExportCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(task.GetDisplayName() + MiddleDotSeparator + task.GetSizeString())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
		ui.onRevealFile(task.OutputPath)
	})
	revealBtn.Importance = widget.HighImportance
	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		ui.onOpenFile(task.OutputPath)
	})

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(revealBtn, openBtn),
	)
	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}
