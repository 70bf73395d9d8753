package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/vladelaina/catime-notes/internal/render"
	"github.com/vladelaina/catime-notes/internal/scroll"
)

func TestCompactThemeSizes(t *testing.T) {
	tests := []struct {
		name     string
		size     float32
		expected float32
	}{
		{name: "default", size: 0, expected: DefaultThemeTextSize},
		{name: "negative", size: -4, expected: DefaultThemeTextSize},
		{name: "custom", size: 20, expected: 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th := NewCompactThemeWithTextSize(tc.size)
			if got := th.Size(theme.SizeNameText); got != tc.expected {
				t.Errorf("Expected text size %v, got %v", tc.expected, got)
			}
			heading := tc.expected * render.DefaultHeadingScales[0]
			if got := th.Size(theme.SizeNameHeadingText); got != heading {
				t.Errorf("Expected heading size %v, got %v", heading, got)
			}
		})
	}
}

func TestCompactThemeColors(t *testing.T) {
	th := NewCompactTheme()

	if th.Color(theme.ColorNameHyperlink, theme.VariantLight) != render.DefaultLinkColor {
		t.Error("Expected hyperlink color to match rendered links")
	}
	if th.Color(theme.ColorNameScrollBar, theme.VariantLight) != scroll.ThumbColor {
		t.Error("Expected scrollbar color to match the notes thumb")
	}
	if th.Size(theme.SizeNameScrollBar) != scroll.ScrollbarWidth {
		t.Errorf("Expected scrollbar width %v, got %v", scroll.ScrollbarWidth, th.Size(theme.SizeNameScrollBar))
	}
}
