package ui

import (
	"image"
	"image/color"
	"log"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/vladelaina/catime-notes/internal/markdown"
	"github.com/vladelaina/catime-notes/internal/platform"
	"github.com/vladelaina/catime-notes/internal/render"
	"github.com/vladelaina/catime-notes/internal/scroll"
	"github.com/vladelaina/catime-notes/internal/surface"
)

// NotesBackground is the paper color behind rendered notes
var NotesBackground color.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// NotesPanel displays a markdown document with its own scrollbar and
// clickable links
type NotesPanel struct {
	widget.BaseWidget

	// docMutex guards doc; its link rectangles are rewritten on every paint
	docMutex sync.Mutex
	doc      *markdown.Document
	engine   *render.Engine
	base     render.FontSpec

	controller *scroll.Controller
	gestures   *GestureHandler
	hoverLink  bool

	onLink      func(url string)
	onLinkError func(url string, err error)
}

// NewNotesPanel creates an empty notes panel
func NewNotesPanel() *NotesPanel {
	p := &NotesPanel{
		engine: render.NewEngine(render.Options{}),
		base:   render.FontSpec{Size: 13},
	}
	p.controller = scroll.NewController(scroll.Config{HitTest: p.linkAt})
	p.controller.SetInvalidateCallback(p.Refresh)
	p.controller.SetLinkCallback(p.activateLink)
	p.gestures = NewGestureHandler(p.onGesture)
	p.ExtendBaseWidget(p)
	return p
}

// SetNotes parses text and shows it from the top. On a parse error the
// panel is left empty.
func (p *NotesPanel) SetNotes(text string) error {
	doc, err := markdown.Parse(text)
	if err != nil {
		log.Printf("Error: failed to parse notes: %v", err)
	}

	p.docMutex.Lock()
	p.doc = doc
	p.docMutex.Unlock()

	p.controller.Reset(0)
	p.layoutContent(p.Size())
	p.Refresh()
	return err
}

// Document returns the displayed document, or nil
func (p *NotesPanel) Document() *markdown.Document {
	p.docMutex.Lock()
	defer p.docMutex.Unlock()
	return p.doc
}

// Controller returns the scroll controller of the panel
func (p *NotesPanel) Controller() *scroll.Controller {
	return p.controller
}

// SetFontSize changes the base font size and re-lays out the notes
func (p *NotesPanel) SetFontSize(size float32) {
	if size <= 0 {
		return
	}
	p.docMutex.Lock()
	p.base.Size = size
	p.docMutex.Unlock()

	p.layoutContent(p.Size())
	p.Refresh()
}

// SetWheelStep configures wheel scrolling
func (p *NotesPanel) SetWheelStep(linesPerNotch int, lineStep float32) {
	p.controller.SetWheelStep(linesPerNotch, lineStep)
}

// SetLinkHandler replaces the function that opens activated links
func (p *NotesPanel) SetLinkHandler(handler func(url string)) {
	p.onLink = handler
}

// SetLinkErrorHandler sets the function told about links that failed to open
func (p *NotesPanel) SetLinkErrorHandler(handler func(url string, err error)) {
	p.onLinkError = handler
}

// activateLink opens url with the configured handler or the system browser
func (p *NotesPanel) activateLink(url string) {
	if p.onLink != nil {
		p.onLink(url)
		return
	}
	if err := platform.OpenURL(url); err != nil {
		log.Printf("Error opening link %s: %v", url, err)
		if p.onLinkError != nil {
			p.onLinkError(url, err)
		}
	}
}

// linkAt resolves a point in content coordinates to a link URL
func (p *NotesPanel) linkAt(x, y float32) (string, bool) {
	p.docMutex.Lock()
	defer p.docMutex.Unlock()
	link, ok := p.doc.LinkAtPoint(x, y)
	if !ok {
		return "", false
	}
	return link.URL, true
}

// contentBounds is the text area for a panel width, in content coordinates
func contentBounds(width float32) markdown.Rect {
	return markdown.Rect{
		Left:   NotesPadding,
		Top:    NotesPadding,
		Right:  width - NotesPadding - scroll.ScrollbarWidth - scroll.ScrollbarMargin,
		Bottom: math.MaxFloat32,
	}
}

// layoutContent lays the document out for size, recording link rectangles
// and the content height
func (p *NotesPanel) layoutContent(size fyne.Size) {
	p.controller.SetViewport(markdown.Rect{Right: size.Width, Bottom: size.Height})
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	p.docMutex.Lock()
	var height float32
	if p.doc != nil {
		measure, err := surface.NewImage(nil, p.base, 1)
		if err != nil {
			log.Printf("Error: failed to create measuring surface: %v", err)
		} else {
			height = p.engine.Paint(measure, p.doc, contentBounds(size.Width)) + 2*NotesPadding
			measure.Close()
		}
	}
	p.docMutex.Unlock()

	p.controller.SetContentHeight(height)
}

// generate paints the visible part of the notes at pixel size w×h
func (p *NotesPanel) generate(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	size := p.Size()
	if w <= 0 || h <= 0 || size.Width <= 0 {
		return img
	}

	p.docMutex.Lock()
	defer p.docMutex.Unlock()

	s, err := surface.NewImage(img, p.base, float32(w)/size.Width)
	if err != nil {
		log.Printf("Error: failed to create notes surface: %v", err)
		return img
	}
	defer s.Close()

	s.Fill(NotesBackground)
	if p.doc != nil {
		s.SetOrigin(0, -p.controller.ScrollPos())
		p.engine.Paint(s, p.doc, contentBounds(size.Width))
	}
	return img
}

// MouseDown handles primary clicks on the thumb, the track and links
func (p *NotesPanel) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	p.controller.PointerDown(ev.Position.X, ev.Position.Y)
}

// MouseUp ends a thumb drag
func (p *NotesPanel) MouseUp(ev *desktop.MouseEvent) {
	p.controller.PointerUp()
}

// MouseIn starts hover tracking
func (p *NotesPanel) MouseIn(ev *desktop.MouseEvent) {
	p.MouseMoved(ev)
}

// MouseMoved updates thumb hover, link hover and an active drag
func (p *NotesPanel) MouseMoved(ev *desktop.MouseEvent) {
	p.controller.PointerMove(ev.Position.X, ev.Position.Y)
	_, p.hoverLink = p.controller.LinkAt(ev.Position.X, ev.Position.Y)
}

// MouseOut clears hover state
func (p *NotesPanel) MouseOut() {
	p.hoverLink = false
	p.controller.PointerLeave()
}

// Cursor shows a hand over links
func (p *NotesPanel) Cursor() desktop.Cursor {
	if p.hoverLink {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// Scrolled handles the mouse wheel; each event counts as one notch
func (p *NotesPanel) Scrolled(ev *fyne.ScrollEvent) {
	p.controller.Wheel(ev.Scrolled.DY)
}

// Dragged moves the thumb while it is held
func (p *NotesPanel) Dragged(ev *fyne.DragEvent) {
	if p.controller.State().ThumbDragging {
		p.controller.PointerMove(ev.Position.X, ev.Position.Y)
	}
}

// DragEnd ends a thumb drag
func (p *NotesPanel) DragEnd() {
	p.controller.PointerUp()
}

// TouchDown handles touch down events
func (p *NotesPanel) TouchDown(ev *mobile.TouchEvent) {
	p.gestures.TouchDown(ev)
}

// TouchUp handles touch up events
func (p *NotesPanel) TouchUp(ev *mobile.TouchEvent) {
	p.gestures.TouchUp(ev)
}

// TouchCancel handles touch cancel events
func (p *NotesPanel) TouchCancel(ev *mobile.TouchEvent) {
	p.gestures.TouchCancel(ev)
}

// onGesture maps touch gestures to clicks, paging and link copying
func (p *NotesPanel) onGesture(gesture GestureType, pos fyne.Position) {
	page := p.controller.State().ViewportHeight
	switch gesture {
	case GestureTap:
		p.controller.PointerDown(pos.X, pos.Y)
		p.controller.PointerUp()
	case GestureSwipeUp:
		p.controller.ScrollBy(page)
	case GestureSwipeDown:
		p.controller.ScrollBy(-page)
	case GestureLongPress:
		if url, ok := p.controller.LinkAt(pos.X, pos.Y); ok {
			if app := fyne.CurrentApp(); app != nil {
				app.Clipboard().SetContent(url)
			}
		}
	}
}

// CreateRenderer creates the widget renderer
func (p *NotesPanel) CreateRenderer() fyne.WidgetRenderer {
	thumb := canvas.NewRectangle(scroll.ThumbColor)
	thumb.CornerRadius = scroll.ThumbRadius
	thumb.Hide()

	r := &notesPanelRenderer{
		panel:  p,
		raster: canvas.NewRaster(p.generate),
		thumb:  thumb,
	}
	return r
}

// notesPanelRenderer renders the notes raster and the scrollbar thumb
type notesPanelRenderer struct {
	panel  *NotesPanel
	raster *canvas.Raster
	thumb  *canvas.Rectangle
}

// Layout re-wraps the notes for the new size
func (r *notesPanelRenderer) Layout(size fyne.Size) {
	r.panel.layoutContent(size)
	r.raster.Move(fyne.NewPos(0, 0))
	r.raster.Resize(size)
	r.updateThumb()
}

// MinSize returns the minimum size
func (r *notesPanelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(NotesPanelMinWidth, NotesPanelMinHeight)
}

// Refresh repaints the notes and moves the thumb
func (r *notesPanelRenderer) Refresh() {
	r.updateThumb()
	r.raster.Refresh()
}

// Objects returns the canvas objects
func (r *notesPanelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster, r.thumb}
}

// Destroy cleans up the renderer
func (r *notesPanelRenderer) Destroy() {}

// updateThumb places the thumb from the controller geometry
func (r *notesPanelRenderer) updateThumb() {
	rect, ok := r.panel.controller.ThumbRect()
	if !ok {
		r.thumb.Hide()
		return
	}
	r.thumb.FillColor = r.panel.controller.ThumbColor()
	r.thumb.Move(fyne.NewPos(rect.Left, rect.Top))
	r.thumb.Resize(fyne.NewSize(rect.Width(), rect.Height()))
	r.thumb.Show()
	r.thumb.Refresh()
}
