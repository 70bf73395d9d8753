package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfileIsValid(t *testing.T) {
	if err := DefaultProfile().Validate(); err != nil {
		t.Errorf("Default profile should be valid, got %v", err)
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := "width: 640\nfont_size: 15\ncolors:\n  link: \"#112233\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile returned error: %v", err)
	}
	if profile.Width != 640 || profile.FontSize != 15 {
		t.Errorf("Expected width 640 and font size 15, got %d and %v", profile.Width, profile.FontSize)
	}
	if profile.Colors.Link != "#112233" {
		t.Errorf("Expected link color #112233, got %s", profile.Colors.Link)
	}
	if profile.Colors.Code != DefaultProfile().Colors.Code {
		t.Errorf("Expected unset code color to keep default, got %s", profile.Colors.Code)
	}
}

func TestLoadProfile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "width: [1,2"},
		{"zero width", "width: 0"},
		{"bad color", "colors:\n  text: blue"},
		{"font too large", "font_size: 99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profile.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write profile: %v", err)
			}
			if _, err := LoadProfile(path); err == nil {
				t.Error("Expected error for invalid profile")
			}
		})
	}
}

func TestProfileSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	profile := DefaultProfile()
	profile.Width = 300

	if err := profile.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile returned error: %v", err)
	}
	if loaded != profile {
		t.Errorf("Expected %+v, got %+v", profile, loaded)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.NRGBA
		wantErr  bool
	}{
		{"#0064c8", color.NRGBA{R: 0, G: 100, B: 200, A: 255}, false},
		{"c80000", color.NRGBA{R: 200, A: 255}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseColor(%s) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestProfileEngineOptions(t *testing.T) {
	profile := DefaultProfile()
	profile.Colors.Link = "#112233"
	profile.ListIndent = 30

	opts := profile.EngineOptions()
	if opts.LinkColor != (color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 255}) {
		t.Errorf("Expected link color #112233, got %v", opts.LinkColor)
	}
	if opts.ListIndent != 30 {
		t.Errorf("Expected list indent 30, got %v", opts.ListIndent)
	}
	if profile.BaseFont().Size != DefaultFontSize {
		t.Errorf("Expected base font size %d, got %v", DefaultFontSize, profile.BaseFont().Size)
	}
}
