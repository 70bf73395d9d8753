package scroll

import (
	"testing"

	"github.com/vladelaina/catime-notes/internal/markdown"
)

func newTestController(content float32) *Controller {
	c := NewController(Config{})
	c.SetViewport(markdown.Rect{Left: 0, Top: 0, Right: 300, Bottom: 200})
	c.SetContentHeight(content)
	return c
}

func TestThumbRect_SuppressedWhenContentFits(t *testing.T) {
	c := newTestController(150)

	if _, ok := c.ThumbRect(); ok {
		t.Error("Expected no thumb when content fits the viewport")
	}
	if c.PointerDown(295, 10) {
		t.Error("Expected press in scrollbar column to be ignored without a scrollbar")
	}
}

func TestThumbRect_Geometry(t *testing.T) {
	c := newTestController(800)

	thumb, ok := c.ThumbRect()
	if !ok {
		t.Fatal("Expected a thumb")
	}
	if thumb.Left != 290 || thumb.Right != 298 {
		t.Errorf("Expected thumb x range [290,298), got [%v,%v)", thumb.Left, thumb.Right)
	}
	if thumb.Top != 0 || thumb.Height() != 50 {
		t.Errorf("Expected thumb at top with height 50, got top=%v height=%v", thumb.Top, thumb.Height())
	}

	c.ScrollTo(c.MaxScroll())
	thumb, _ = c.ThumbRect()
	if thumb.Bottom != 200 {
		t.Errorf("Expected thumb at bottom of track, got bottom=%v", thumb.Bottom)
	}
}

func TestThumbRect_MinimumHeight(t *testing.T) {
	c := newTestController(100000)

	thumb, ok := c.ThumbRect()
	if !ok {
		t.Fatal("Expected a thumb")
	}
	if thumb.Height() != MinThumbHeight {
		t.Errorf("Expected minimum thumb height %d, got %v", MinThumbHeight, thumb.Height())
	}
}

func TestScrollClamping(t *testing.T) {
	c := newTestController(500)
	maxScroll := c.MaxScroll()
	if maxScroll != 300 {
		t.Fatalf("Expected max scroll 300, got %v", maxScroll)
	}

	steps := []func(){
		func() { c.Wheel(-1) },
		func() { c.Wheel(-1) },
		func() { c.Wheel(-10) },
		func() { c.ScrollBy(1000) },
		func() { c.Wheel(1) },
		func() { c.ScrollBy(-5000) },
		func() { c.PointerDown(294, 10); c.PointerMove(294, 400); c.PointerUp() },
		func() { c.PointerDown(294, 190); c.PointerMove(294, -400); c.PointerUp() },
		func() { c.SetContentHeight(250) },
		func() { c.SetContentHeight(100) },
	}

	for i, step := range steps {
		step()
		pos := c.ScrollPos()
		if pos < 0 || pos > c.MaxScroll() {
			t.Errorf("Step %d: scroll position %v outside [0,%v]", i, pos, c.MaxScroll())
		}
	}
}

func TestWheel(t *testing.T) {
	c := newTestController(1000)

	c.Wheel(-1)
	if c.ScrollPos() != 60 {
		t.Errorf("Expected scroll 60 after one notch down, got %v", c.ScrollPos())
	}
	c.Wheel(1)
	if c.ScrollPos() != 0 {
		t.Errorf("Expected scroll 0 after one notch up, got %v", c.ScrollPos())
	}

	c.SetWheelStep(1, 10)
	c.Wheel(-1)
	if c.ScrollPos() != 10 {
		t.Errorf("Expected scroll 10 with custom step, got %v", c.ScrollPos())
	}
}

func TestThumbDrag(t *testing.T) {
	c := newTestController(800)
	redraws := 0
	c.SetInvalidateCallback(func() { redraws++ })

	if !c.PointerDown(294, 10) {
		t.Fatal("Expected press on thumb to be consumed")
	}
	if !c.State().ThumbDragging {
		t.Fatal("Expected dragging state")
	}

	// track 200, thumb 50: 150px of travel maps to 600px of content
	c.PointerMove(294, 85)
	if c.ScrollPos() != 300 {
		t.Errorf("Expected scroll 300 after dragging half the track, got %v", c.ScrollPos())
	}

	c.PointerUp()
	if c.State().ThumbDragging {
		t.Error("Expected drag to end on release")
	}
	if redraws == 0 {
		t.Error("Expected redraw requests during drag")
	}
}

func TestTrackClickPages(t *testing.T) {
	c := newTestController(800)

	c.PointerDown(294, 150)
	if c.ScrollPos() != 200 {
		t.Errorf("Expected one page down, got %v", c.ScrollPos())
	}

	thumb, _ := c.ThumbRect()
	c.PointerDown(294, thumb.Top-1)
	if c.ScrollPos() != 0 {
		t.Errorf("Expected one page up, got %v", c.ScrollPos())
	}
	if c.State().ThumbDragging {
		t.Error("Expected track click not to start a drag")
	}
}

func TestHoverInvalidatesOnlyOnTransition(t *testing.T) {
	c := newTestController(800)
	redraws := 0
	c.SetInvalidateCallback(func() { redraws++ })

	c.PointerMove(100, 10)
	c.PointerMove(120, 20)
	if redraws != 0 {
		t.Errorf("Expected no redraws away from thumb, got %d", redraws)
	}

	c.PointerMove(294, 10)
	c.PointerMove(295, 12)
	if redraws != 1 || !c.State().ThumbHovered {
		t.Errorf("Expected one redraw entering thumb, got %d (hovered=%v)", redraws, c.State().ThumbHovered)
	}
	if c.ThumbColor() != ThumbHoverColor {
		t.Error("Expected hover color")
	}

	c.PointerLeave()
	c.PointerLeave()
	if redraws != 2 || c.State().ThumbHovered {
		t.Errorf("Expected one redraw on leave, got %d", redraws)
	}
}

func TestLinkActivation(t *testing.T) {
	c := newTestController(800)
	var hits []float32
	c.SetHitTester(func(x, y float32) (string, bool) {
		hits = append(hits, y)
		if y >= 100 && y < 120 {
			return "https://example.com", true
		}
		return "", false
	})
	var opened string
	c.SetLinkCallback(func(url string) { opened = url })

	if c.PointerDown(50, 110) != true || opened != "https://example.com" {
		t.Errorf("Expected link activation, got %q", opened)
	}

	opened = ""
	c.ScrollTo(100)
	if c.PointerDown(50, 110) {
		t.Error("Expected no link after scrolling it away")
	}
	if c.PointerDown(50, 5) != true || opened != "https://example.com" {
		t.Errorf("Expected scrolled click to map into content, got %q", opened)
	}
	if hits[len(hits)-1] != 105 {
		t.Errorf("Expected hit test at content y=105, got %v", hits[len(hits)-1])
	}
}
