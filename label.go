package bidual

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/tdewolff/canvas"
)

// Label is a line of text anchored at Pos, centered horizontally. VAlign is either canvas.Middle or canvas.Bottom.
// Markup follows parseMarkup, so $J_X(X)$ sets J_X(X) with an italic J, a subscript X and upright parentheses.
type Label struct {
	Markup string
	Pos    canvas.Point
	Size   float64 // in pt
	Color  color.RGBA
	Bold   bool
	Italic bool
	VAlign canvas.TextAlign

	spans []span
	text  *canvas.Text
	path  *canvas.Path
	box   canvas.Rect // in mm relative to Pos
	scale float64
}

// Text returns the label without markup delimiters.
func (l *Label) Text() string {
	return plainText(l.spans)
}

// Bounds returns the label's extent in diagram units.
func (l *Label) Bounds() canvas.Rect {
	return canvas.Rect{
		X0: l.Pos.X + l.box.X0/l.scale,
		Y0: l.Pos.Y + l.box.Y0/l.scale,
		X1: l.Pos.X + l.box.X1/l.scale,
		Y1: l.Pos.Y + l.box.Y1/l.scale,
	}
}

func (l *Label) typeset(fs *fonts, scale float64, tex bool) error {
	spans, err := parseMarkup(l.Markup)
	if err != nil {
		return err
	}
	l.spans = spans
	l.scale = scale
	if tex {
		return l.typesetTeX()
	}

	rt := canvas.NewRichText(fs.face(l.Size, l.Color, l.Bold, l.Italic, canvas.FontNormal))
	for _, sp := range spans {
		variant := canvas.FontNormal
		if sp.Sub {
			variant = canvas.FontSubscript
		}
		rt.WriteFace(fs.face(l.Size, l.Color, l.Bold, l.Italic || sp.Italic, variant), sp.Text)
	}
	l.text = rt.ToText(0.0, 0.0, canvas.Center, l.VAlign, nil)
	l.box = l.text.Bounds()
	return nil
}

// typesetTeX renders the markup with the TeX engine of canvas. Its output is set at 10pt.
func (l *Label) typesetTeX() error {
	formula := texFormula(l.Markup, l.Bold, l.Italic)
	p, err := canvas.ParseLaTeX(formula)
	if err != nil {
		return fmt.Errorf("typeset %q: %w", l.Markup, err)
	}
	k := l.Size / 10.0
	p = p.Transform(canvas.Identity.Scale(k, k))

	b := p.Bounds()
	dx := -(b.X0 + b.X1) / 2.0
	dy := -(b.Y0 + b.Y1) / 2.0
	if l.VAlign == canvas.Bottom {
		dy = -b.Y0
	}
	l.path = p.Translate(dx, dy)
	l.box = b.Translate(dx, dy)
	return nil
}

var texEscaper = strings.NewReplacer("#", `\#`, "%", `\%`, "&", `\&`, "_", `\_`, "{", `\{`, "}", `\}`)

// texFormula converts label markup into a plain TeX math formula. Math segments pass through unchanged and text
// segments are set in an \hbox so that they keep their spaces and upright shapes.
func texFormula(markup string, bold, italic bool) string {
	font := `\rm `
	if bold {
		font = `\bf `
	} else if italic {
		font = `\it `
	}

	sb := strings.Builder{}
	for i, segment := range strings.Split(markup, "$") {
		if i%2 == 1 {
			sb.WriteString(segment)
		} else if segment != "" {
			sb.WriteString(`\hbox{` + font + texEscaper.Replace(segment) + `}`)
		}
	}
	return sb.String()
}

func (l *Label) draw(ctx *canvas.Context, v view) {
	at := v.at(l.Pos)
	if l.path != nil {
		ctx.SetFillColor(l.Color)
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(at.X, at.Y, l.path)
		return
	}
	ctx.DrawText(at.X, at.Y, l.text)
}
