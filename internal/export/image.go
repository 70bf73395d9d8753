package export

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/vladelaina/catime-notes/internal/config"
	"github.com/vladelaina/catime-notes/internal/markdown"
	"github.com/vladelaina/catime-notes/internal/render"
	"github.com/vladelaina/catime-notes/internal/surface"
)

// Progress reports how far a render has come, from 0 to 1
type Progress func(fraction float64)

// Render phases and their progress marks
const (
	progressParsed   = 0.1
	progressMeasured = 0.3
	progressPainted  = 0.8
)

// RenderImage lays out notes with the profile and paints them onto a new
// image. The context is checked between phases.
func RenderImage(ctx context.Context, notes string, profile config.Profile, progress Progress) (*image.NRGBA, error) {
	if progress == nil {
		progress = func(float64) {}
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	doc, err := markdown.Parse(notes)
	if err != nil {
		return nil, err
	}
	progress(progressParsed)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	engine := render.NewEngine(profile.EngineOptions())
	bounds := markdown.Rect{
		Left:   profile.Padding,
		Top:    profile.Padding,
		Right:  float32(profile.Width) - profile.Padding,
		Bottom: math.MaxFloat32,
	}

	measure, err := surface.NewImage(nil, profile.BaseFont(), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create measuring surface: %w", err)
	}
	height := engine.Measure(measure, doc, bounds)
	measure.Close()
	progress(progressMeasured)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logicalHeight := height + 2*profile.Padding
	img := image.NewNRGBA(image.Rect(0, 0,
		int(math.Ceil(float64(float32(profile.Width)*profile.Scale))),
		int(math.Ceil(float64(logicalHeight*profile.Scale))),
	))

	paint, err := surface.NewImage(img, profile.BaseFont(), profile.Scale)
	if err != nil {
		return nil, fmt.Errorf("failed to create image surface: %w", err)
	}
	defer paint.Close()

	paint.Fill(config.MustColor(profile.Colors.Background))
	engine.Paint(paint, doc, bounds)
	progress(progressPainted)

	return img, ctx.Err()
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return bw.Flush()
}

// WritePNG writes img to path, removing the file if encoding fails
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
