package render

import "image/color"

// FontSpec describes the font requested for a run of text
type FontSpec struct {
	Size      float32
	Bold      bool
	Italic    bool
	Monospace bool
}

// Font is a transient font object acquired for a render pass
type Font interface {
	Release()
}

// Surface is the drawing target consumed by the engine. Implementations draw
// with a transparent background.
type Surface interface {
	// BaseFont returns the font used for plain text
	BaseFont() FontSpec
	// AcquireFont builds a font object for spec. The caller releases it.
	AcquireFont(spec FontSpec) (Font, error)
	// UseFont makes f the active font
	UseFont(f Font)
	// UseBaseFont restores the plain text font
	UseBaseFont()
	// LineHeight returns the line height of the active font
	LineHeight() float32
	// Advance returns the advance width of r in the active font, and false
	// when the font has no glyph for it
	Advance(r rune) (float32, bool)
	// SetColor sets the color for subsequent glyphs
	SetColor(c color.Color)
	// DrawRune draws r with its top-left corner at (x, y)
	DrawRune(r rune, x, y float32)
}
