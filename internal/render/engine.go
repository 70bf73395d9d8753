package render

import (
	"image/color"
	"log"
	"unicode"

	"github.com/vladelaina/catime-notes/internal/markdown"
)

// Layout constants
const (
	// DefaultWrapMargin is kept free at the right edge before a line wraps
	DefaultWrapMargin = 10
	// DefaultListIndent is the indent per list nesting level
	DefaultListIndent = 20
)

// Default colors used when Options leaves them unset
var (
	DefaultTextColor color.Color = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	DefaultLinkColor color.Color = color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	DefaultCodeColor color.Color = color.NRGBA{R: 200, G: 0, B: 0, A: 255}
)

// DefaultHeadingScales holds the font size multiplier for heading levels 1-4
var DefaultHeadingScales = [markdown.MaxHeadingLevel]float32{1.6, 1.4, 1.2, 1.1}

// Options configures an Engine. Zero values fall back to the defaults.
type Options struct {
	TextColor     color.Color
	LinkColor     color.Color
	CodeColor     color.Color
	WrapMargin    float32
	ListIndent    float32
	HeadingScales [markdown.MaxHeadingLevel]float32
}

// Engine lays out and paints documents
type Engine struct {
	opts Options
}

// NewEngine creates an engine, filling unset options with defaults
func NewEngine(opts Options) *Engine {
	if opts.TextColor == nil {
		opts.TextColor = DefaultTextColor
	}
	if opts.LinkColor == nil {
		opts.LinkColor = DefaultLinkColor
	}
	if opts.CodeColor == nil {
		opts.CodeColor = DefaultCodeColor
	}
	if opts.WrapMargin <= 0 {
		opts.WrapMargin = DefaultWrapMargin
	}
	if opts.ListIndent <= 0 {
		opts.ListIndent = DefaultListIndent
	}
	for i, scale := range opts.HeadingScales {
		if scale <= 0 {
			opts.HeadingScales[i] = DefaultHeadingScales[i]
		}
	}
	return &Engine{opts: opts}
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.opts
}

// Measure returns the height the document occupies inside bounds, measured
// from bounds.Top. Nothing is drawn and link rectangles are left untouched.
func (e *Engine) Measure(s Surface, doc *markdown.Document, bounds markdown.Rect) float32 {
	w := &walk{engine: e, surface: s, doc: doc, bounds: bounds}
	w.run()
	return w.y + w.lineHeight - bounds.Top
}

// Paint draws the document inside bounds and records every link's rectangle
// in doc.Links. It returns the same height as Measure.
func (e *Engine) Paint(s Surface, doc *markdown.Document, bounds markdown.Rect) float32 {
	w := &walk{engine: e, surface: s, doc: doc, bounds: bounds, paint: true}
	w.run()
	return w.y + w.lineHeight - bounds.Top
}

// walk is the state of one layout pass
type walk struct {
	engine  *Engine
	surface Surface
	doc     *markdown.Document
	bounds  markdown.Rect
	paint   bool

	x, y       float32
	lineHeight float32

	font       Font
	fontFailed bool

	lastLevel int
	lastStyle markdown.StyleType
	lastItem  int
}

func (w *walk) run() {
	w.surface.UseBaseFont()
	defer w.releaseFont()

	w.x, w.y = w.bounds.Left, w.bounds.Top
	w.lineHeight = w.surface.LineHeight()
	w.resetTracking()
	if w.doc == nil {
		return
	}

	opts := w.engine.opts
	for i, r := range w.doc.Text {
		linkIdx, inLink := w.doc.LinkAt(i)
		if w.paint && inLink && w.doc.Links[linkIdx].Start == i {
			w.doc.Links[linkIdx].Rect = markdown.Rect{Left: w.x, Top: w.y, Right: w.x, Bottom: w.y + w.lineHeight}
		}

		if r == '\n' {
			w.newline()
			w.releaseFont()
			w.resetTracking()
			w.lineHeight = w.surface.LineHeight()
			continue
		}
		if unicode.IsControl(r) {
			continue
		}

		level := 0
		if idx, ok := w.doc.HeadingAt(i); ok {
			level = w.doc.Headings[idx].Level
		}
		style := markdown.StyleNone
		if idx, ok := w.doc.StyleAt(i); ok {
			style = w.doc.Styles[idx].Type
		}
		if idx, ok := w.doc.ListItemAt(i); ok && idx != w.lastItem {
			item := w.doc.ListItems[idx]
			if i == item.Start {
				w.x += opts.ListIndent * float32(1+item.IndentLevel)
			}
			w.lastItem = idx
		}

		if level != w.lastLevel || style != w.lastStyle {
			w.switchFont(level, style)
			w.lastLevel, w.lastStyle = level, style
		}

		advance, ok := w.surface.Advance(r)
		if !ok {
			continue
		}

		if w.paint {
			switch {
			case inLink:
				w.surface.SetColor(opts.LinkColor)
			case style == markdown.StyleCode:
				w.surface.SetColor(opts.CodeColor)
			default:
				w.surface.SetColor(opts.TextColor)
			}
			if inLink {
				w.growLinkRect(&w.doc.Links[linkIdx].Rect, advance)
			}
			w.surface.DrawRune(r, w.x, w.y)
		}

		w.x += advance
		if w.x > w.bounds.Right-opts.WrapMargin {
			w.newline()
		}
	}
}

func (w *walk) resetTracking() {
	w.lastLevel = 0
	w.lastStyle = markdown.StyleNone
	w.lastItem = -1
}

func (w *walk) newline() {
	w.x = w.bounds.Left
	w.y += w.lineHeight
}

// growLinkRect extends rect to cover the glyph at the cursor
func (w *walk) growLinkRect(rect *markdown.Rect, advance float32) {
	rect.Left = min(rect.Left, w.x)
	rect.Top = min(rect.Top, w.y)
	rect.Right = max(rect.Right, w.x+advance)
	rect.Bottom = max(rect.Bottom, w.y+w.lineHeight)
}

// switchFont activates the font for a (heading level, style) pair. When the
// surface cannot build it the previous font stays active.
func (w *walk) switchFont(level int, style markdown.StyleType) {
	if level == 0 && style == markdown.StyleNone {
		w.releaseFont()
		w.lineHeight = w.surface.LineHeight()
		return
	}

	spec := w.surface.BaseFont()
	if level > 0 {
		spec.Size *= w.engine.opts.HeadingScales[level-1]
		spec.Bold = true
	}
	if style.IsBold() {
		spec.Bold = true
	}
	if style.IsItalic() {
		spec.Italic = true
	}
	if style == markdown.StyleCode {
		spec.Monospace = true
	}

	f, err := w.surface.AcquireFont(spec)
	if err != nil {
		if !w.fontFailed {
			log.Printf("Warning: failed to create font %+v: %v", spec, err)
			w.fontFailed = true
		}
		return
	}

	previous := w.font
	w.surface.UseFont(f)
	w.font = f
	if previous != nil {
		previous.Release()
	}
	w.lineHeight = w.surface.LineHeight()
}

// releaseFont drops the transient font and restores the base font
func (w *walk) releaseFont() {
	if w.font == nil {
		return
	}
	w.surface.UseBaseFont()
	w.font.Release()
	w.font = nil
}
