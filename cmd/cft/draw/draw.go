// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the layout of a tree in a cft project.
package draw

import (
	"fmt"

	"github.com/js-arias/cft/layout"
	"github.com/js-arias/cft/project"
	"github.com/js-arias/command"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `draw [--tree <name>] [--nocolor] [--nonames]
	[--width <value>] [--height <value>]
	[-o|--output <file>] <project-file>`,
	Short: "draw the layout of a tree",
	Long: `
Command draw reads a tree from a cft project, calculates the layout of the
tree, and draws it into an image file. The horizontal axis is the distance
from the root, and the vertical axis is the layout position of the nodes, as
exported by the command 'cft export'.

The argument of the command is the name of the project file.

By default, the first tree of the project will be drawn. Use the flag --tree
to define a different tree.

By default, branches are colored by the distance of the node from the root
using the iridescent color scheme of Paul Tol. Use the flag --nocolor to draw
the branches in black. By default, terminal names are drawn; use the flag
--nonames to draw the tree without names.

By default, the image will be 6 inches wide, and its height will be a
quarter of inch per terminal (with a minimum of 4 inches). Use the flags
--width and --height to define a different size (in inches).

By default, the output file will be "tree.png". Use the flag -o, or
--output, to define a different name. The extension of the file defines the
image format; valid formats are ".png", ".svg", ".pdf", ".eps", ".jpg", and
".tif".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var noColor bool
var noNames bool
var width float64
var height float64
var treeName string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&noColor, "nocolor", false, "")
	c.Flags().BoolVar(&noNames, "nonames", false, "")
	c.Flags().Float64Var(&width, "width", 6, "")
	c.Flags().Float64Var(&height, "height", 0, "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&output, "output", "tree.png", "")
	c.Flags().StringVar(&output, "o", "tree.png", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	s, err := p.Settings()
	if err != nil {
		return err
	}
	t, err := p.Tree(treeName)
	if err != nil {
		return err
	}

	lt := layout.New(t, s.Layout())
	plt, err := newPlot(lt)
	if err != nil {
		return err
	}

	h := height
	if h <= 0 {
		h = float64(t.NumTerms()) / 4
		if h < 4 {
			h = 4
		}
	}
	if err := plt.Save(vg.Length(width)*vg.Inch, vg.Length(h)*vg.Inch, output); err != nil {
		return fmt.Errorf("while writing %q: %v", output, err)
	}
	return nil
}

func newPlot(lt *layout.Tree) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "distance from root"
	p.HideY()

	tp := &treePlot{
		lt:    lt,
		style: plotter.DefaultLineStyle,
		color: gradient(lt.MaxX()),
	}
	if noColor {
		tp.color = nil
	}
	p.Add(tp)

	if noNames {
		return p, nil
	}
	labels, err := termLabels(lt)
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	return p, nil
}
