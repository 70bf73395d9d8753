package surface

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vladelaina/catime-notes/internal/render"
)

// cell is one terminal column. Wide runes leave a continuation cell with r == 0.
type cell struct {
	r      rune
	bold   bool
	italic bool
	fg     color.Color
}

type cellFont struct {
	spec render.FontSpec
}

// Release is a no-op; terminal fonts are attributes, not resources
func (cellFont) Release() {}

// Cells lays text out on a character grid: one layout unit is one column
// horizontally and one row vertically.
type Cells struct {
	rows   [][]cell
	active render.FontSpec
	fg     color.Color
}

// NewCells creates an empty grid
func NewCells() *Cells {
	return &Cells{}
}

// BaseFont returns a unit-sized font
func (c *Cells) BaseFont() render.FontSpec {
	return render.FontSpec{Size: 1}
}

// AcquireFont returns the attributes for spec
func (c *Cells) AcquireFont(spec render.FontSpec) (render.Font, error) {
	return cellFont{spec: spec}, nil
}

// UseFont activates the attributes of f
func (c *Cells) UseFont(f render.Font) {
	if cf, ok := f.(cellFont); ok {
		c.active = cf.spec
	}
}

// UseBaseFont clears bold and italic
func (c *Cells) UseBaseFont() {
	c.active = c.BaseFont()
}

// LineHeight is always one row
func (c *Cells) LineHeight() float32 {
	return 1
}

// Advance returns the column width of r; zero-width runes are unsupported
func (c *Cells) Advance(r rune) (float32, bool) {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return 0, false
	}
	return float32(w), true
}

// SetColor sets the foreground color of following cells
func (c *Cells) SetColor(fg color.Color) {
	c.fg = fg
}

// DrawRune places r at column x, row y
func (c *Cells) DrawRune(r rune, x, y float32) {
	row, col := int(y), int(x)
	if row < 0 || col < 0 {
		return
	}
	for len(c.rows) <= row {
		c.rows = append(c.rows, nil)
	}
	width := runewidth.RuneWidth(r)
	line := c.rows[row]
	for len(line) < col+width {
		line = append(line, cell{r: ' '})
	}
	line[col] = cell{r: r, bold: c.active.Bold, italic: c.active.Italic, fg: c.fg}
	for i := 1; i < width; i++ {
		line[col+i] = cell{}
	}
	c.rows[row] = line
}

// Lines returns the grid rows as plain strings with trailing spaces removed
func (c *Cells) Lines() []string {
	lines := make([]string, len(c.rows))
	for i, row := range c.rows {
		var b strings.Builder
		for _, cl := range row {
			if cl.r != 0 {
				b.WriteRune(cl.r)
			}
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// String returns the grid as plain text
func (c *Cells) String() string {
	return strings.Join(c.Lines(), "\n")
}

// ANSI returns the grid with SGR escape sequences for weight, slant and color
func (c *Cells) ANSI() string {
	var b strings.Builder
	for i, row := range c.rows {
		if i > 0 {
			b.WriteString("\n")
		}
		var current cell
		styled := false
		for _, cl := range row {
			if cl.r == 0 {
				continue
			}
			if !sameAttributes(cl, current) {
				if styled {
					b.WriteString("\x1b[0m")
					styled = false
				}
				if seq := sgr(cl); seq != "" {
					b.WriteString(seq)
					styled = true
				}
				current = cl
			}
			b.WriteRune(cl.r)
		}
		if styled {
			b.WriteString("\x1b[0m")
		}
	}
	return b.String()
}

func sameAttributes(a, b cell) bool {
	return a.bold == b.bold && a.italic == b.italic && colorKey(a.fg) == colorKey(b.fg)
}

func colorKey(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("%d;%d;%d", r>>8, g>>8, b>>8)
}

func sgr(cl cell) string {
	var codes []string
	if cl.bold {
		codes = append(codes, "1")
	}
	if cl.italic {
		codes = append(codes, "3")
	}
	if key := colorKey(cl.fg); key != "" && key != "0;0;0" {
		codes = append(codes, "38;2;"+key)
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}
