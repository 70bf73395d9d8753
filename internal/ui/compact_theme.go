package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/vladelaina/catime-notes/internal/render"
	"github.com/vladelaina/catime-notes/internal/scroll"
)

// DefaultThemeTextSize is the body text size when no notes font size is set
const DefaultThemeTextSize float32 = 13

// CompactTheme is a dense theme whose text sizes follow the notes font size
// and whose accent colors match the rendered notes
type CompactTheme struct {
	textSize float32
}

// NewCompactTheme creates a compact theme with the default text size
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{textSize: DefaultThemeTextSize}
}

// NewCompactThemeWithTextSize creates a compact theme for a notes font size
func NewCompactThemeWithTextSize(size float32) fyne.Theme {
	if size <= 0 {
		size = DefaultThemeTextSize
	}
	return &CompactTheme{textSize: size}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameHyperlink, theme.ColorNameFocus:
		return render.DefaultLinkColor
	case theme.ColorNameScrollBar:
		return scroll.ThumbColor
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return render.DefaultCodeColor
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 24, G: 24, B: 24, A: 255}
		}
		return color.NRGBA{R: 246, G: 246, B: 246, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 235, G: 235, B: 235, A: 255}
		}
		return render.DefaultTextColor
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns compact paddings; headings use the same scales as rendered notes
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return scroll.ScrollbarWidth
	case theme.SizeNameScrollBarSmall:
		return scroll.ScrollbarMargin
	case theme.SizeNameSeparatorThickness, theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return scroll.ThumbRadius
	case theme.SizeNameText:
		return t.textSize
	case theme.SizeNameHeadingText:
		return t.textSize * render.DefaultHeadingScales[0]
	case theme.SizeNameSubHeadingText:
		return t.textSize * render.DefaultHeadingScales[2]
	case theme.SizeNameCaptionText:
		return t.textSize * 0.8
	}
	return theme.DefaultTheme().Size(name)
}
