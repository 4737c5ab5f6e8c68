package bidual

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/svg"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
)

// Canvas draws the figure onto a new canvas that is cropped to the content plus the margin and has an opaque white
// background. Labels are drawn after all shapes so that no shape covers text.
func (f *Figure) Canvas() *canvas.Canvas {
	b := f.Bounds()
	s, m := f.opts.Scale, f.opts.Margin
	v := view{
		origin: pt(b.X0-m/s, b.Y0-m/s),
		scale:  s,
	}
	width := (b.X1-b.X0)*s + 2.0*m
	height := (b.Y1-b.Y0)*s + 2.0*m

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(width, height))

	labels := []Element{}
	for _, e := range f.elements {
		if _, ok := e.(*Label); ok {
			labels = append(labels, e)
			continue
		}
		e.draw(ctx, v)
	}
	for _, e := range labels {
		e.draw(ctx, v)
	}
	return c
}

// Write writes the figure to filename, choosing the format by its extension (.pdf, .svg, .png, .tex, ...).
// The parent directory must exist. Figures with a recording error are not written.
func (f *Figure) Write(filename string) error {
	if f.err != nil {
		return f.err
	}
	c := f.Canvas()
	if f.opts.Minify && strings.ToLower(filepath.Ext(filename)) == ".svg" {
		return c.WriteFile(filename, minifiedSVG)
	}
	return renderers.Write(filename, c)
}

// minifiedSVG is a canvas.Writer that passes the SVG output through the SVG minifier.
func minifiedSVG(w io.Writer, c *canvas.Canvas) error {
	buf := &bytes.Buffer{}
	r := svg.New(buf, c.W, c.H, nil)
	c.RenderTo(r)
	if err := r.Close(); err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	return m.Minify("image/svg+xml", w, buf)
}
