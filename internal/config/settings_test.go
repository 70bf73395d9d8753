package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestFontSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if size := settings.GetFontSize(); size != DefaultFontSize {
		t.Errorf("Expected default font size %d, got %v", DefaultFontSize, size)
	}

	settings.SetFontSize(16)
	if size := settings.GetFontSize(); size != 16 {
		t.Errorf("Expected font size 16, got %v", size)
	}

	// Test boundary values
	settings.SetFontSize(2)
	if settings.GetFontSize() != MinFontSize {
		t.Errorf("Font size should be clamped to minimum %d", MinFontSize)
	}
	settings.SetFontSize(100)
	if settings.GetFontSize() != MaxFontSize {
		t.Errorf("Font size should be clamped to maximum %d", MaxFontSize)
	}
}

func TestWheelSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lines := settings.GetWheelLines(); lines != DefaultWheelLines {
		t.Errorf("Expected default wheel lines %d, got %d", DefaultWheelLines, lines)
	}
	if step := settings.GetLineStep(); step != DefaultLineStep {
		t.Errorf("Expected default line step %d, got %d", DefaultLineStep, step)
	}

	settings.SetWheelLines(0) // Should be clamped to 1
	if settings.GetWheelLines() != MinWheelLines {
		t.Error("Wheel lines should be clamped to minimum 1")
	}
	settings.SetWheelLines(50) // Should be clamped to 10
	if settings.GetWheelLines() != MaxWheelLines {
		t.Error("Wheel lines should be clamped to maximum 10")
	}

	settings.SetLineStep(1000)
	if settings.GetLineStep() != MaxLineStep {
		t.Errorf("Line step should be clamped to maximum %d", MaxLineStep)
	}
}

func TestCheckOnStartup(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetCheckOnStartup() {
		t.Error("Expected update check on startup by default")
	}
	settings.SetCheckOnStartup(false)
	if settings.GetCheckOnStartup() {
		t.Error("Expected update check on startup to be disabled")
	}
}

func TestUpdateChannel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if channel := settings.GetUpdateChannel(); channel != DefaultUpdateChannel {
		t.Errorf("Expected default channel %s, got %s", DefaultUpdateChannel, channel)
	}
	settings.SetUpdateChannel(ChannelPrerelease)
	if channel := settings.GetUpdateChannel(); channel != ChannelPrerelease {
		t.Errorf("Expected channel %s, got %s", ChannelPrerelease, channel)
	}

	options := settings.GetUpdateChannelOptions()
	if len(options) != 2 || options[0] != ChannelStable {
		t.Errorf("Unexpected channel options: %v", options)
	}
}

func TestSkippedVersionAndLastCheck(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetSkippedVersion() != "" {
		t.Error("Expected no skipped version by default")
	}
	settings.SetSkippedVersion("1.3.0")
	if settings.GetSkippedVersion() != "1.3.0" {
		t.Errorf("Expected skipped version 1.3.0, got %s", settings.GetSkippedVersion())
	}

	if !settings.GetLastCheck().IsZero() {
		t.Error("Expected zero last check time by default")
	}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	settings.SetLastCheck(now)
	if !settings.GetLastCheck().Equal(now) {
		t.Errorf("Expected last check %v, got %v", now, settings.GetLastCheck())
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dir := settings.GetExportDirectory(); dir == "" {
		t.Error("Export directory should not be empty")
	}

	customDir := "/custom/exports"
	settings.SetExportDirectory(customDir)
	if dir := settings.GetExportDirectory(); dir != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("zh")
	if retrievedLang := settings.GetLanguage(); retrievedLang != "zh" {
		t.Errorf("Expected language 'zh', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "zh", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
