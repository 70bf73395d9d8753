package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconOpen     = "📂"
	IconExport   = "🖼"
	IconUpdate   = "⟳"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconStop     = "⏹"
	IconClose    = "×"
	IconError    = "❌"
	IconRender   = "▶"
	IconPending  = "⏳"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	StatusLabelWidth  float32 = 96
	SizeLabelWidth    float32 = 90
	PercentLabelWidth float32 = 48

	NotesPanelMinWidth  float32 = 240
	NotesPanelMinHeight float32 = 160

	// Notes text keeps this much space from the panel edges
	NotesPadding float32 = 5

	UpdateDialogWidth  float32 = 520
	UpdateDialogHeight float32 = 420
	SettingsDialogW    float32 = 460
	SettingsDialogH    float32 = 380
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Delays
const (
	StartupCheckDelay = 2 * time.Second
)

// Files the open dialog accepts
var NotesFileExtensions = []string{".md", ".markdown", ".txt"}
