package bidual

import (
	"fmt"
	"image/color"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"
)

// fonts holds the Latin Modern Roman family used for every label.
type fonts struct {
	family *canvas.FontFamily
}

func loadFonts() (*fonts, error) {
	family := canvas.NewFontFamily("Latin Modern Roman")
	for _, f := range []struct {
		b     []byte
		style canvas.FontStyle
	}{
		{lmroman10regular.TTF, canvas.FontRegular},
		{lmroman10italic.TTF, canvas.FontItalic},
		{lmroman10bold.TTF, canvas.FontBold},
		{lmroman10bolditalic.TTF, canvas.FontBold | canvas.FontItalic},
	} {
		if err := family.LoadFont(f.b, 0, f.style); err != nil {
			return nil, fmt.Errorf("load Latin Modern Roman: %w", err)
		}
	}
	return &fonts{family}, nil
}

// face returns the face for size in points. Subscript faces are scaled and lowered by canvas from the font's own
// subscript metrics.
func (fs *fonts) face(size float64, col color.Color, bold, italic bool, variant canvas.FontVariant) *canvas.FontFace {
	style := canvas.FontRegular
	if bold {
		style |= canvas.FontBold
	}
	if italic {
		style |= canvas.FontItalic
	}
	return fs.family.Face(size, col, style, variant)
}
