package bidual

import (
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/test"
)

func TestTeXFormula(t *testing.T) {
	var tts = []struct {
		markup       string
		bold, italic bool
		formula      string
	}{
		{"$X''$", true, false, `X''`},
		{"$J_X(X)$", true, false, `J_X(X)`},
		{"Primal Spaces", true, true, `\hbox{\bf Primal Spaces}`},
		{"Primal Spaces", false, true, `\hbox{\it Primal Spaces}`},
		{"map $T$ here", false, false, `\hbox{\rm map }T\hbox{\rm  here}`},
		{"50% & x_1 {y}", false, false, `\hbox{\rm 50\% \& x\_1 \{y\}}`},
		{"", false, false, ``},
	}
	for _, tt := range tts {
		t.Run(tt.markup, func(t *testing.T) {
			test.String(t, texFormula(tt.markup, tt.bold, tt.italic), tt.formula)
		})
	}
}

func TestLabelTeX(t *testing.T) {
	metric, err := NewFigure(nil)
	test.Error(t, err)
	tex, err := NewFigure(&Options{TeX: true})
	test.Error(t, err)

	caption := func(f *Figure, markup string) *Label {
		return f.AddLabel(&Label{Markup: markup, Pos: pt(1.7, 6.2), Size: 14.0, Color: PrimalCaption, Bold: true, Italic: true, VAlign: canvas.Bottom})
	}
	spaced := caption(tex, "Primal Spaces")
	unspaced := caption(tex, "PrimalSpaces")
	reference := caption(metric, "Primal Spaces")
	test.Error(t, tex.Err())
	test.Error(t, metric.Err())

	// the TeX caption keeps its interword space and has about the width of the font-metric caption
	space := 14.0 * mmPerPt / 4.0 / tex.Scale()
	test.That(t, unspaced.Bounds().W()+space < spaced.Bounds().W(), "space dropped:", spaced.Bounds().W(), unspaced.Bounds().W())
	ratio := spaced.Bounds().W() / reference.Bounds().W()
	test.That(t, 0.8 < ratio && ratio < 1.25, "TeX caption width differs from font-metric width by ratio", ratio)
	test.Float(t, spaced.Bounds().Y0, 6.2)

	formula := tex.AddLabel(&Label{Markup: "$J_X(X)$", Pos: pt(6.2, 5.0), Size: 20.0, VAlign: canvas.Middle})
	test.Error(t, tex.Err())
	r := formula.Bounds()
	test.That(t, r.X0 < 6.2 && 6.2 < r.X1 && r.Y0 < 5.0 && 5.0 < r.Y1, "math label must be centered on its anchor")
}
