package surface

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vladelaina/catime-notes/internal/render"
)

// faceFont is a render.Font backed by opentype faces. metrics is built at the
// logical size and drives layout; glyphs are drawn with the scaled face so the
// layout is identical at every scale.
type faceFont struct {
	metrics font.Face
	glyphs  font.Face
	ascent  fixed.Int26_6
}

// Release closes the faces
func (f *faceFont) Release() {
	if f.glyphs != f.metrics {
		f.glyphs.Close()
	}
	f.metrics.Close()
}

// Image draws onto a draw.Image. With a nil destination it only measures.
type Image struct {
	dst     draw.Image
	fonts   *FontSet
	base    render.FontSpec
	scale   float32
	originX float32
	originY float32

	baseFace *faceFont
	active   *faceFont
	src      *image.Uniform
}

// NewImage creates an image surface. scale converts layout units to pixels.
func NewImage(dst draw.Image, base render.FontSpec, scale float32) (*Image, error) {
	fonts, err := DefaultFonts()
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = 1
	}
	if base.Size <= 0 {
		return nil, fmt.Errorf("invalid base font size: %v", base.Size)
	}

	s := &Image{
		dst:   dst,
		fonts: fonts,
		base:  base,
		scale: scale,
		src:   image.NewUniform(color.Black),
	}
	face, err := s.newFaceFont(base)
	if err != nil {
		return nil, err
	}
	s.baseFace = face
	s.active = face
	return s, nil
}

// Close releases the base font
func (s *Image) Close() {
	if s.baseFace != nil {
		s.baseFace.Release()
		s.baseFace = nil
	}
}

// SetOrigin translates every glyph drawn afterwards by (x, y) layout units
func (s *Image) SetOrigin(x, y float32) {
	s.originX, s.originY = x, y
}

// Fill paints the whole destination with c
func (s *Image) Fill(c color.Color) {
	if s.dst == nil {
		return
	}
	draw.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Image) newFaceFont(spec render.FontSpec) (*faceFont, error) {
	ft := s.fonts.pick(spec)
	metrics, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(spec.Size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}

	f := &faceFont{metrics: metrics, glyphs: metrics}
	if s.scale != 1 {
		glyphs, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    float64(spec.Size * s.scale),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			metrics.Close()
			return nil, fmt.Errorf("failed to create scaled face: %w", err)
		}
		f.glyphs = glyphs
	}
	f.ascent = f.glyphs.Metrics().Ascent
	return f, nil
}

// BaseFont returns the plain text font spec
func (s *Image) BaseFont() render.FontSpec {
	return s.base
}

// AcquireFont creates faces for spec
func (s *Image) AcquireFont(spec render.FontSpec) (render.Font, error) {
	if spec.Size <= 0 {
		return nil, fmt.Errorf("invalid font size: %v", spec.Size)
	}
	return s.newFaceFont(spec)
}

// UseFont activates a font returned by AcquireFont
func (s *Image) UseFont(f render.Font) {
	if ff, ok := f.(*faceFont); ok {
		s.active = ff
	}
}

// UseBaseFont restores the plain text font
func (s *Image) UseBaseFont() {
	s.active = s.baseFace
}

// LineHeight returns the active font's line height in layout units
func (s *Image) LineHeight() float32 {
	return fromFixed(s.active.metrics.Metrics().Height)
}

// Advance returns the advance width of r, false when the font lacks it
func (s *Image) Advance(r rune) (float32, bool) {
	adv, ok := s.active.metrics.GlyphAdvance(r)
	if !ok {
		return 0, false
	}
	return fromFixed(adv), true
}

// SetColor sets the glyph color
func (s *Image) SetColor(c color.Color) {
	s.src = image.NewUniform(c)
}

// DrawRune draws r with its top-left corner at (x, y)
func (s *Image) DrawRune(r rune, x, y float32) {
	if s.dst == nil {
		return
	}
	dot := fixed.Point26_6{
		X: toFixed((x + s.originX) * s.scale),
		Y: toFixed((y+s.originY)*s.scale) + s.active.ascent,
	}
	dr, mask, maskp, _, ok := s.active.glyphs.Glyph(dot, r)
	if !ok {
		return
	}
	if !dr.Overlaps(s.dst.Bounds()) {
		return
	}
	draw.DrawMask(s.dst, dr, s.src, image.Point{}, mask, maskp, draw.Over)
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
