package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/vladelaina/catime-notes/internal/markdown"
	"github.com/vladelaina/catime-notes/internal/render"
)

func TestImage_Metrics(t *testing.T) {
	s, err := NewImage(nil, render.FontSpec{Size: 13}, 1)
	if err != nil {
		t.Fatalf("NewImage returned error: %v", err)
	}
	defer s.Close()

	if h := s.LineHeight(); h < 13 {
		t.Errorf("Expected line height of at least 13, got %v", h)
	}
	if w, ok := s.Advance('a'); !ok || w <= 0 {
		t.Errorf("Expected positive advance for 'a', got %v,%v", w, ok)
	}
	if _, ok := s.Advance('\U0001F600'); ok {
		t.Error("Expected emoji to be unsupported by the Go fonts")
	}
}

func TestImage_InvalidSize(t *testing.T) {
	if _, err := NewImage(nil, render.FontSpec{}, 1); err == nil {
		t.Error("Expected error for zero font size")
	}
}

func TestImage_FontLifecycle(t *testing.T) {
	s, err := NewImage(nil, render.FontSpec{Size: 13}, 1)
	if err != nil {
		t.Fatalf("NewImage returned error: %v", err)
	}
	defer s.Close()

	base := s.LineHeight()
	f, err := s.AcquireFont(render.FontSpec{Size: 26, Bold: true})
	if err != nil {
		t.Fatalf("AcquireFont returned error: %v", err)
	}
	s.UseFont(f)
	if s.LineHeight() <= base {
		t.Errorf("Expected larger line height for larger font, got %v <= %v", s.LineHeight(), base)
	}
	s.UseBaseFont()
	f.Release()
	if s.LineHeight() != base {
		t.Errorf("Expected base line height restored, got %v", s.LineHeight())
	}
}

func TestImage_ScaleKeepsLayout(t *testing.T) {
	doc, err := markdown.Parse("# Notes\nSome **bold** text with a [link](https://example.com) that wraps around")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	engine := render.NewEngine(render.Options{})
	bounds := markdown.Rect{Left: 5, Top: 5, Right: 200}

	one, err := NewImage(nil, render.FontSpec{Size: 13}, 1)
	if err != nil {
		t.Fatalf("NewImage returned error: %v", err)
	}
	defer one.Close()
	engine.Paint(one, doc, bounds)
	rect := doc.Links[0].Rect

	two, err := NewImage(image.NewRGBA(image.Rect(0, 0, 400, 400)), render.FontSpec{Size: 13}, 2)
	if err != nil {
		t.Fatalf("NewImage returned error: %v", err)
	}
	defer two.Close()
	engine.Paint(two, doc, bounds)

	if doc.Links[0].Rect != rect {
		t.Errorf("Expected same link rect at scale 2, got %+v vs %+v", doc.Links[0].Rect, rect)
	}
}

func TestImage_DrawsPixels(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 120, 40))
	s, err := NewImage(dst, render.FontSpec{Size: 13}, 1)
	if err != nil {
		t.Fatalf("NewImage returned error: %v", err)
	}
	defer s.Close()
	s.Fill(color.White)

	doc, err := markdown.Parse("Hello")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	render.NewEngine(render.Options{}).Paint(s, doc, markdown.Rect{Left: 2, Top: 2, Right: 120})

	painted := false
	for y := 0; y < 40 && !painted; y++ {
		for x := 0; x < 120; x++ {
			if r, _, _, _ := dst.At(x, y).RGBA(); r < 0x8000 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("Expected dark glyph pixels on white background")
	}
}
