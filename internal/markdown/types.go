package markdown

import "fmt"

// StyleType identifies the inline style applied to a range of text
type StyleType int

const (
	StyleNone StyleType = iota
	StyleItalic
	StyleBold
	StyleBoldItalic
	StyleCode
)

// String returns a readable name of the style
func (s StyleType) String() string {
	switch s {
	case StyleItalic:
		return "italic"
	case StyleBold:
		return "bold"
	case StyleBoldItalic:
		return "bold-italic"
	case StyleCode:
		return "code"
	default:
		return "none"
	}
}

// IsBold reports whether the style renders with bold weight
func (s StyleType) IsBold() bool {
	return s == StyleBold || s == StyleBoldItalic
}

// IsItalic reports whether the style renders slanted
func (s StyleType) IsItalic() bool {
	return s == StyleItalic || s == StyleBoldItalic
}

// emphasisStyle maps a marker run length to its style
func emphasisStyle(run int) StyleType {
	switch run {
	case 1:
		return StyleItalic
	case 2:
		return StyleBold
	default:
		return StyleBoldItalic
	}
}

// Rect is a rectangle in panel coordinates. Left/Top are inclusive,
// Right/Bottom exclusive.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Width returns the horizontal extent
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns the vertical extent
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Link is a [text](url) annotation. Rect is only meaningful after a paint pass.
type Link struct {
	Text  string
	URL   string
	Title string
	Start int
	End   int
	Rect  Rect
}

// Heading is a line opened by one to four '#' characters
type Heading struct {
	Level int
	Start int
	End   int
}

// Style is an emphasis or code span
type Style struct {
	Type  StyleType
	Start int
	End   int
}

// ListItem is a bullet line; IndentLevel is leading spaces / 4
type ListItem struct {
	IndentLevel int
	Start       int
	End         int
}

// Span returns the [start, end) range of the record
func (l Link) Span() (int, int) { return l.Start, l.End }

// Span returns the [start, end) range of the record
func (h Heading) Span() (int, int) { return h.Start, h.End }

// Span returns the [start, end) range of the record
func (s Style) Span() (int, int) { return s.Start, s.End }

// Span returns the [start, end) range of the record
func (li ListItem) Span() (int, int) { return li.Start, li.End }

// Document is the result of a parse: the display buffer and its annotations.
// A Document is replaced as a whole, never patched.
type Document struct {
	Text      []rune
	Links     []Link
	Headings  []Heading
	Styles    []Style
	ListItems []ListItem
}

// String returns the display buffer as a string
func (d *Document) String() string {
	if d == nil {
		return ""
	}
	return string(d.Text)
}

// Len returns the display buffer length in runes
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Text)
}

// Summary returns a short description used in debug logging
func (d *Document) Summary() string {
	if d == nil {
		return "empty document"
	}
	return fmt.Sprintf("%d runes, %d links, %d headings, %d styles, %d list items",
		len(d.Text), len(d.Links), len(d.Headings), len(d.Styles), len(d.ListItems))
}
