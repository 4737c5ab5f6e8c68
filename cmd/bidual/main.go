package main

import (
	"log"

	"github.com/dualspace/bidual"
	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
)

type Draw struct {
	Output string  `short:"o" default:"figures/dual_of_dual.pdf" desc:"Output file, its extension selects the format"`
	Scale  float64 `default:"26" desc:"Millimeters per diagram unit"`
	Margin float64 `default:"2" desc:"Margin around the content in millimeters"`
	TeX    bool    `desc:"Typeset labels with the TeX engine"`
	Minify bool    `desc:"Minify SVG output"`
	Open   bool    `desc:"Open the output file when done"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Draw the bidual embedding diagram")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	opts := &bidual.Options{
		Scale:  cmd.Scale,
		Margin: cmd.Margin,
		TeX:    cmd.TeX,
		Minify: cmd.Minify,
	}
	if err := bidual.Render(cmd.Output, opts); err != nil {
		return err
	}
	log.Printf("Figure saved to %s", cmd.Output)

	if cmd.Open {
		return browser.OpenFile(cmd.Output)
	}
	return nil
}
