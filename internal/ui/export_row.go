package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vladelaina/catime-notes/internal/model"
)

// Progress calculation constants
const (
	MaxProgressPercent = 100
	MinProgressPercent = 1
)

// ExportRow represents a compact export task row widget
type ExportRow struct {
	widget.BaseWidget

	task         *model.ExportTask
	localization *Localization

	// UI components
	titleLabel    *widget.Label
	statusLabel   *widget.Label
	progressLabel *widget.Label
	sizeLabel     *widget.Label

	// Action buttons
	stopBtn   *widget.Button
	revealBtn *widget.Button
	openBtn   *widget.Button
	copyBtn   *widget.Button

	// Callbacks
	onStop     func(taskID string)
	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewExportRow creates a new export row widget
func NewExportRow(task *model.ExportTask, localization *Localization) *ExportRow {
	if task == nil {
		task = &model.ExportTask{ID: "placeholder", Status: model.TaskStatusPending}
	}

	er := &ExportRow{
		task:         task,
		localization: localization,
	}
	er.ExtendBaseWidget(er)
	er.createUI()
	er.updateFromTask()
	return er
}

// SetCallbacks sets the action callbacks
func (er *ExportRow) SetCallbacks(
	onStop func(taskID string),
	onReveal func(filePath string),
	onOpen func(filePath string),
	onCopyPath func(filePath string),
) {
	er.onStop = onStop
	er.onReveal = onReveal
	er.onOpen = onOpen
	er.onCopyPath = onCopyPath
}

// UpdateTask updates the row with new task data
func (er *ExportRow) UpdateTask(task *model.ExportTask) {
	if task == nil {
		log.Printf("Warning: UpdateTask called with nil task for existing task %s", er.task.ID)
		return
	}
	er.task = task
	er.updateFromTask()
	er.Refresh()
}

// createUI creates the UI components
func (er *ExportRow) createUI() {
	er.titleLabel = widget.NewLabel("")
	er.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	er.titleLabel.Truncation = fyne.TextTruncateEllipsis

	er.statusLabel = widget.NewLabel("")
	er.statusLabel.Alignment = fyne.TextAlignTrailing
	er.progressLabel = widget.NewLabel("")
	er.progressLabel.Alignment = fyne.TextAlignTrailing
	er.sizeLabel = widget.NewLabel("")
	er.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	er.stopBtn = widget.NewButton(IconStop+" "+er.localization.GetText(KeyStop), func() {
		if er.onStop != nil {
			er.onStop(er.task.ID)
		}
	})
	er.revealBtn = widget.NewButton(IconFolder+" "+er.localization.GetText(KeyReveal), func() {
		if er.onReveal != nil && er.hasOutput() {
			er.onReveal(er.task.OutputPath)
		}
	})
	er.openBtn = widget.NewButton(IconFile+" "+er.localization.GetText(KeyOpen), func() {
		if er.onOpen != nil && er.hasOutput() {
			er.onOpen(er.task.OutputPath)
		}
	})
	er.copyBtn = widget.NewButton(IconCopy+" "+er.localization.GetText(KeyCopyPath), func() {
		if er.onCopyPath != nil && er.hasOutput() {
			er.onCopyPath(er.task.OutputPath)
		}
	})
}

// hasOutput reports whether the exported file exists
func (er *ExportRow) hasOutput() bool {
	return er.task.Status == model.TaskStatusCompleted && er.task.OutputPath != ""
}

// effectivePercent returns the percent shown for the task
func effectivePercent(task *model.ExportTask) int {
	percent := task.Percent
	if task.Status == model.TaskStatusCompleted {
		return MaxProgressPercent
	}
	if percent <= 0 && task.Progress > 0 {
		percent = max(int(task.Progress*MaxProgressPercent), MinProgressPercent)
	}
	return min(max(percent, 0), MaxProgressPercent)
}

// updateFromTask updates UI components based on task state
func (er *ExportRow) updateFromTask() {
	er.titleLabel.SetText(er.task.GetDisplayName())

	switch er.task.Status {
	case model.TaskStatusError:
		er.statusLabel.Importance = widget.DangerImportance
		er.statusLabel.SetText(IconError + " " + er.task.Status.String())
	case model.TaskStatusCompleted:
		er.statusLabel.Importance = widget.SuccessImportance
		er.statusLabel.SetText(er.task.Status.String())
	case model.TaskStatusRendering, model.TaskStatusStarting:
		er.statusLabel.Importance = widget.HighImportance
		er.statusLabel.SetText(IconRender + " " + er.task.Status.String())
	case model.TaskStatusPending:
		er.statusLabel.Importance = widget.MediumImportance
		er.statusLabel.SetText(IconPending + " " + er.task.Status.String())
	case model.TaskStatusStopped, model.TaskStatusStopping:
		er.statusLabel.Importance = widget.MediumImportance
		er.statusLabel.SetText(IconStop + " " + er.task.Status.String())
	default:
		er.statusLabel.Importance = widget.MediumImportance
		er.statusLabel.SetText(er.task.Status.String())
	}

	if er.task.Status == model.TaskStatusCompleted {
		er.progressLabel.SetText("")
	} else {
		er.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, effectivePercent(er.task)))
	}

	sizeText := er.task.GetSizeString()
	if er.task.Status == model.TaskStatusError && er.task.LastError != "" {
		sizeText = er.task.LastError
	}
	er.sizeLabel.SetText(sizeText)

	er.updateButtons()
}

// updateButtons updates button states based on task status
func (er *ExportRow) updateButtons() {
	if er.task.Status.IsActive() || er.task.Status == model.TaskStatusPending {
		er.stopBtn.Enable()
	} else {
		er.stopBtn.Disable()
	}

	if er.hasOutput() {
		er.revealBtn.Enable()
		er.openBtn.Enable()
		er.copyBtn.Enable()
	} else {
		er.revealBtn.Disable()
		er.openBtn.Disable()
		er.copyBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (er *ExportRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewVBox(
		fixedWidth(StatusLabelWidth, er.statusLabel),
		container.NewHBox(
			fixedWidth(SizeLabelWidth, er.sizeLabel),
			fixedWidth(PercentLabelWidth, er.progressLabel),
		),
	)
	actions := container.NewHBox(er.stopBtn, er.revealBtn, er.openBtn, er.copyBtn)
	rightCluster := container.NewBorder(nil, nil, nil, actions, info)
	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, rightCluster, er.titleLabel),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}
