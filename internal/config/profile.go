package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vladelaina/catime-notes/internal/render"
)

// DefaultImageWidth is the logical width of exported images
const DefaultImageWidth = 480

// Profile describes how notes are rendered outside the desktop window
// (command line output and exported images)
type Profile struct {
	Width      int     `yaml:"width"`
	FontSize   float32 `yaml:"font_size"`
	Padding    float32 `yaml:"padding"`
	Scale      float32 `yaml:"scale"`
	WrapMargin float32 `yaml:"wrap_margin"`
	ListIndent float32 `yaml:"list_indent"`
	Colors     Colors  `yaml:"colors"`
}

// Colors holds "#rrggbb" color strings
type Colors struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Link       string `yaml:"link"`
	Code       string `yaml:"code"`
}

// DefaultProfile returns the built-in render profile
func DefaultProfile() Profile {
	return Profile{
		Width:      DefaultImageWidth,
		FontSize:   DefaultFontSize,
		Padding:    5,
		Scale:      1,
		WrapMargin: 10,
		ListIndent: 20,
		Colors: Colors{
			Background: "#ffffff",
			Text:       "#000000",
			Link:       "#0064c8",
			Code:       "#c80000",
		},
	}
}

// LoadProfile reads a YAML profile; missing fields keep their defaults
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return profile, err
	}
	return profile, nil
}

// Save writes the profile as YAML
func (p Profile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks ranges and color syntax
func (p Profile) Validate() error {
	var errs []error
	if p.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", p.Width))
	}
	if p.FontSize < MinFontSize || p.FontSize > MaxFontSize {
		errs = append(errs, fmt.Errorf("font_size must be between %d and %d, got %v", MinFontSize, MaxFontSize, p.FontSize))
	}
	if p.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %v", p.Scale))
	}
	for name, value := range map[string]string{
		"background": p.Colors.Background,
		"text":       p.Colors.Text,
		"link":       p.Colors.Link,
		"code":       p.Colors.Code,
	} {
		if _, err := ParseColor(value); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// ParseColor parses "#rrggbb" or "rrggbb"
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustColor parses a color already checked by Validate, falling back to black
func MustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return c
}

// BaseFont returns the regular font the profile renders with
func (p Profile) BaseFont() render.FontSpec {
	return render.FontSpec{Size: p.FontSize}
}

// EngineOptions converts the profile into layout options
func (p Profile) EngineOptions() render.Options {
	return render.Options{
		TextColor:  MustColor(p.Colors.Text),
		LinkColor:  MustColor(p.Colors.Link),
		CodeColor:  MustColor(p.Colors.Code),
		WrapMargin: p.WrapMargin,
		ListIndent: p.ListIndent,
	}
}
