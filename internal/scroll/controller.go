package scroll

import (
	"image/color"

	"github.com/vladelaina/catime-notes/internal/markdown"
)

// Scrollbar geometry and input defaults
const (
	ScrollbarWidth  = 8
	ScrollbarMargin = 2
	MinThumbHeight  = 30
	ThumbRadius     = 4

	DefaultLinesPerNotch = 3
	DefaultLineStep      = 20
)

// Thumb colors for the idle, hovered and dragged states
var (
	ThumbColor      color.Color = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	ThumbHoverColor color.Color = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	ThumbDragColor  color.Color = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

// State is the scroll state of one panel
type State struct {
	ScrollPos          float32
	ContentHeight      float32
	ViewportHeight     float32
	ThumbDragging      bool
	DragStartY         float32
	DragStartScrollPos float32
	ThumbHovered       bool
}

// HitTester maps a point in content coordinates to a link URL
type HitTester func(x, y float32) (string, bool)

// Config configures a Controller
type Config struct {
	LinesPerNotch int
	LineStep      float32
	HitTest       HitTester
}

// Controller owns the scroll state of a panel and turns pointer input into
// scroll changes or link activations. It is not safe for concurrent use; the
// host calls it from its event loop.
type Controller struct {
	state    State
	viewport markdown.Rect

	linesPerNotch int
	lineStep      float32
	hitTest       HitTester

	onInvalidate func()
	onLink       func(url string)
}

// NewController creates a controller with defaults for unset fields
func NewController(cfg Config) *Controller {
	c := &Controller{hitTest: cfg.HitTest}
	c.SetWheelStep(cfg.LinesPerNotch, cfg.LineStep)
	return c
}

// SetWheelStep changes how far one wheel notch scrolls
func (c *Controller) SetWheelStep(linesPerNotch int, lineStep float32) {
	if linesPerNotch <= 0 {
		linesPerNotch = DefaultLinesPerNotch
	}
	if lineStep <= 0 {
		lineStep = DefaultLineStep
	}
	c.linesPerNotch = linesPerNotch
	c.lineStep = lineStep
}

// SetHitTester sets the link lookup used for clicks and hover
func (c *Controller) SetHitTester(h HitTester) {
	c.hitTest = h
}

// SetInvalidateCallback sets the function called when the panel needs a redraw
func (c *Controller) SetInvalidateCallback(callback func()) {
	c.onInvalidate = callback
}

// SetLinkCallback sets the function receiving activated link URLs
func (c *Controller) SetLinkCallback(callback func(url string)) {
	c.onLink = callback
}

// State returns a copy of the scroll state
func (c *Controller) State() State {
	return c.state
}

// ScrollPos returns the current scroll offset
func (c *Controller) ScrollPos() float32 {
	return c.state.ScrollPos
}

// MaxScroll returns the largest valid scroll offset
func (c *Controller) MaxScroll() float32 {
	return max(0, c.state.ContentHeight-c.state.ViewportHeight)
}

// SetViewport sets the panel rectangle; its height is the viewport height
func (c *Controller) SetViewport(r markdown.Rect) {
	c.viewport = r
	c.state.ViewportHeight = max(0, r.Height())
	c.clamp()
}

// SetContentHeight records the measured content height
func (c *Controller) SetContentHeight(h float32) {
	c.state.ContentHeight = max(0, h)
	c.clamp()
}

// Reset returns to the top of new content
func (c *Controller) Reset(contentHeight float32) {
	c.state.ScrollPos = 0
	c.state.ThumbDragging = false
	c.SetContentHeight(contentHeight)
}

// ScrollTo sets the scroll offset, clamped to the valid range
func (c *Controller) ScrollTo(pos float32) {
	previous := c.state.ScrollPos
	c.state.ScrollPos = pos
	c.clamp()
	if c.state.ScrollPos != previous {
		c.invalidate()
	}
}

// ScrollBy moves the scroll offset by delta
func (c *Controller) ScrollBy(delta float32) {
	c.ScrollTo(c.state.ScrollPos + delta)
}

// Scrollable reports whether the content overflows the viewport
func (c *Controller) Scrollable() bool {
	return c.state.ViewportHeight > 0 && c.state.ContentHeight > c.state.ViewportHeight
}

// ThumbRect returns the scrollbar thumb rectangle, or false when no scrollbar
// is shown
func (c *Controller) ThumbRect() (markdown.Rect, bool) {
	if !c.Scrollable() {
		return markdown.Rect{}, false
	}
	track := c.viewport.Height()
	thumbHeight := c.thumbHeight(track)
	thumbTop := c.viewport.Top
	if maxScroll := c.MaxScroll(); maxScroll > 0 {
		thumbTop += c.state.ScrollPos / maxScroll * (track - thumbHeight)
	}
	return markdown.Rect{
		Left:   c.viewport.Right - ScrollbarWidth - ScrollbarMargin,
		Top:    thumbTop,
		Right:  c.viewport.Right - ScrollbarMargin,
		Bottom: thumbTop + thumbHeight,
	}, true
}

func (c *Controller) thumbHeight(track float32) float32 {
	h := c.state.ViewportHeight / c.state.ContentHeight * track
	return min(track, max(MinThumbHeight, h))
}

// ThumbColor returns the thumb color for the current state
func (c *Controller) ThumbColor() color.Color {
	switch {
	case c.state.ThumbDragging:
		return ThumbDragColor
	case c.state.ThumbHovered:
		return ThumbHoverColor
	default:
		return ThumbColor
	}
}

// inScrollbarColumn reports whether x lies in the scrollbar strip
func (c *Controller) inScrollbarColumn(x float32) bool {
	return x >= c.viewport.Right-ScrollbarWidth-ScrollbarMargin
}

// PointerDown handles a primary button press at panel coordinates (x, y).
// It returns true when the press was consumed.
func (c *Controller) PointerDown(x, y float32) bool {
	if thumb, ok := c.ThumbRect(); ok {
		if thumb.Contains(x, y) {
			c.state.ThumbDragging = true
			c.state.DragStartY = y
			c.state.DragStartScrollPos = c.state.ScrollPos
			c.invalidate()
			return true
		}
		if c.inScrollbarColumn(x) {
			page := c.state.ViewportHeight
			if y < thumb.Top {
				c.ScrollBy(-page)
			} else if y >= thumb.Bottom {
				c.ScrollBy(page)
			}
			return true
		}
	}

	url, ok := c.LinkAt(x, y)
	if !ok {
		return false
	}
	if c.onLink != nil {
		c.onLink(url)
	}
	return true
}

// LinkAt returns the URL of the link under the panel point, if any
func (c *Controller) LinkAt(x, y float32) (string, bool) {
	if c.hitTest == nil {
		return "", false
	}
	if c.Scrollable() && c.inScrollbarColumn(x) {
		return "", false
	}
	return c.hitTest(x, y+c.state.ScrollPos)
}

// PointerMove handles pointer motion. While dragging it moves the content,
// otherwise it tracks thumb hover.
func (c *Controller) PointerMove(x, y float32) {
	if c.state.ThumbDragging {
		track := c.viewport.Height()
		free := track - c.thumbHeight(track)
		if free <= 0 {
			return
		}
		delta := (y - c.state.DragStartY) / free * c.MaxScroll()
		c.ScrollTo(c.state.DragStartScrollPos + delta)
		return
	}

	hovered := false
	if thumb, ok := c.ThumbRect(); ok {
		hovered = thumb.Contains(x, y)
	}
	if hovered != c.state.ThumbHovered {
		c.state.ThumbHovered = hovered
		c.invalidate()
	}
}

// PointerUp ends a thumb drag
func (c *Controller) PointerUp() {
	if !c.state.ThumbDragging {
		return
	}
	c.state.ThumbDragging = false
	c.invalidate()
}

// Wheel scrolls by whole notches. Positive notches scroll towards the top.
func (c *Controller) Wheel(notches float32) {
	if notches == 0 {
		return
	}
	amount := float32(c.linesPerNotch) * c.lineStep
	if notches > 0 {
		c.ScrollBy(-amount)
	} else {
		c.ScrollBy(amount)
	}
}

// PointerLeave clears the hover state
func (c *Controller) PointerLeave() {
	if !c.state.ThumbHovered {
		return
	}
	c.state.ThumbHovered = false
	c.invalidate()
}

func (c *Controller) clamp() {
	c.state.ScrollPos = min(max(c.state.ScrollPos, 0), c.MaxScroll())
}

func (c *Controller) invalidate() {
	if c.onInvalidate != nil {
		c.onInvalidate()
	}
}
