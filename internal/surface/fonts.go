package surface

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vladelaina/catime-notes/internal/render"
)

// FontSet holds the parsed font families used by Image
type FontSet struct {
	regular        *opentype.Font
	bold           *opentype.Font
	italic         *opentype.Font
	boldItalic     *opentype.Font
	mono           *opentype.Font
	monoBold       *opentype.Font
	monoItalic     *opentype.Font
	monoBoldItalic *opentype.Font
}

var (
	defaultFontsOnce sync.Once
	defaultFonts     *FontSet
	defaultFontsErr  error
)

// DefaultFonts returns the Go font families, parsed once per process
func DefaultFonts() (*FontSet, error) {
	defaultFontsOnce.Do(func() {
		defaultFonts, defaultFontsErr = loadGoFonts()
	})
	return defaultFonts, defaultFontsErr
}

type fontSource struct {
	name string
	ttf  []byte
	dst  **opentype.Font
}

func loadGoFonts() (*FontSet, error) {
	set := &FontSet{}
	sources := []fontSource{
		{"regular", goregular.TTF, &set.regular},
		{"bold", gobold.TTF, &set.bold},
		{"italic", goitalic.TTF, &set.italic},
		{"bold italic", gobolditalic.TTF, &set.boldItalic},
		{"mono", gomono.TTF, &set.mono},
		{"mono bold", gomonobold.TTF, &set.monoBold},
		{"mono italic", gomonoitalic.TTF, &set.monoItalic},
		{"mono bold italic", gomonobolditalic.TTF, &set.monoBoldItalic},
	}

	for _, src := range sources {
		f, err := opentype.Parse(src.ttf)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s font: %w", src.name, err)
		}
		*src.dst = f
	}
	return set, nil
}

// pick returns the family matching the requested weight, slant and pitch
func (fs *FontSet) pick(spec render.FontSpec) *opentype.Font {
	switch {
	case spec.Monospace && spec.Bold && spec.Italic:
		return fs.monoBoldItalic
	case spec.Monospace && spec.Bold:
		return fs.monoBold
	case spec.Monospace && spec.Italic:
		return fs.monoItalic
	case spec.Monospace:
		return fs.mono
	case spec.Bold && spec.Italic:
		return fs.boldItalic
	case spec.Bold:
		return fs.bold
	case spec.Italic:
		return fs.italic
	default:
		return fs.regular
	}
}
