package config

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/vladelaina/catime-notes/internal/platform"
)

// UpdateChannel selects which releases the update check considers
type UpdateChannel string

const (
	ChannelStable     UpdateChannel = "stable"
	ChannelPrerelease UpdateChannel = "prerelease"
)

// Settings keys for Fyne preferences
const (
	KeyFontSize       = "notes_font_size"
	KeyWheelLines     = "wheel_lines_per_notch"
	KeyLineStep       = "wheel_line_step"
	KeyCheckOnStartup = "check_updates_on_startup"
	KeyUpdateChannel  = "update_channel"
	KeySkippedVersion = "skipped_version"
	KeyLastCheck      = "last_update_check"
	KeyExportDir      = "export_directory"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultFontSize       = 13
	DefaultWheelLines     = 3
	DefaultLineStep       = 20
	DefaultCheckOnStartup = true
	DefaultUpdateChannel  = ChannelStable
	DefaultLanguage       = "system"
)

// Limits for clamped values
const (
	MinFontSize   = 8
	MaxFontSize   = 32
	MinWheelLines = 1
	MaxWheelLines = 10
	MinLineStep   = 5
	MaxLineStep   = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFontSize returns the base font size of the notes panel
func (s *Settings) GetFontSize() float32 {
	value := s.app.Preferences().Float(KeyFontSize)
	if value <= 0 {
		s.SetFontSize(DefaultFontSize)
		return DefaultFontSize
	}
	return float32(value)
}

// SetFontSize sets the base font size of the notes panel
func (s *Settings) SetFontSize(size float32) {
	s.app.Preferences().SetFloat(KeyFontSize, float64(clamp(size, MinFontSize, MaxFontSize)))
}

// GetWheelLines returns how many lines one wheel notch scrolls
func (s *Settings) GetWheelLines() int {
	value := s.app.Preferences().Int(KeyWheelLines)
	if value <= 0 {
		s.SetWheelLines(DefaultWheelLines)
		return DefaultWheelLines
	}
	return value
}

// SetWheelLines sets how many lines one wheel notch scrolls
func (s *Settings) SetWheelLines(lines int) {
	s.app.Preferences().SetInt(KeyWheelLines, clamp(lines, MinWheelLines, MaxWheelLines))
}

// GetLineStep returns the height in pixels of one scrolled line
func (s *Settings) GetLineStep() int {
	value := s.app.Preferences().Int(KeyLineStep)
	if value <= 0 {
		s.SetLineStep(DefaultLineStep)
		return DefaultLineStep
	}
	return value
}

// SetLineStep sets the height in pixels of one scrolled line
func (s *Settings) SetLineStep(step int) {
	s.app.Preferences().SetInt(KeyLineStep, clamp(step, MinLineStep, MaxLineStep))
}

// GetCheckOnStartup returns whether to check for updates at launch
func (s *Settings) GetCheckOnStartup() bool {
	return s.app.Preferences().BoolWithFallback(KeyCheckOnStartup, DefaultCheckOnStartup)
}

// SetCheckOnStartup sets whether to check for updates at launch
func (s *Settings) SetCheckOnStartup(check bool) {
	s.app.Preferences().SetBool(KeyCheckOnStartup, check)
}

// GetUpdateChannel returns the configured update channel
func (s *Settings) GetUpdateChannel() UpdateChannel {
	channel := s.app.Preferences().String(KeyUpdateChannel)
	if channel == "" {
		s.SetUpdateChannel(DefaultUpdateChannel)
		return DefaultUpdateChannel
	}
	return UpdateChannel(channel)
}

// SetUpdateChannel sets the update channel
func (s *Settings) SetUpdateChannel(channel UpdateChannel) {
	s.app.Preferences().SetString(KeyUpdateChannel, string(channel))
}

// GetUpdateChannelOptions returns available update channels
func (s *Settings) GetUpdateChannelOptions() []UpdateChannel {
	return []UpdateChannel{ChannelStable, ChannelPrerelease}
}

// GetSkippedVersion returns the version the user chose to skip
func (s *Settings) GetSkippedVersion() string {
	return s.app.Preferences().String(KeySkippedVersion)
}

// SetSkippedVersion records a version the user does not want to be offered
func (s *Settings) SetSkippedVersion(version string) {
	s.app.Preferences().SetString(KeySkippedVersion, version)
}

// GetLastCheck returns the time of the last update check, zero if never
func (s *Settings) GetLastCheck() time.Time {
	value := s.app.Preferences().String(KeyLastCheck)
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SetLastCheck records the time of the last update check
func (s *Settings) SetLastCheck(t time.Time) {
	s.app.Preferences().SetString(KeyLastCheck, t.UTC().Format(time.RFC3339))
}

// GetExportDirectory returns the directory exported note images are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "简体中文",
		"ru":     "Русский",
	}
}

func clamp[T int | float32](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
