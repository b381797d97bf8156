// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"image/color"
	"math"

	"github.com/js-arias/blind"
	"github.com/js-arias/cft/layout"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A treePlot is a plot of the layout of a tree.
type treePlot struct {
	lt    *layout.Tree
	style draw.LineStyle

	// color of a branch
	// given the distance from the root.
	// If nil, the color of the style is used.
	color func(x float64) color.Color
}

// DataRange implements the plot.DataRanger interface.
func (tp *treePlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	return 0, tp.lt.MaxX(), 0, float64(tp.lt.Root().NumTerms()) + 1
}

// Plot implements the plot.Plotter interface.
func (tp *treePlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, n := range tp.lt.Root().Preorder() {
		if n.IsTerm() {
			continue
		}
		ln := tp.lt.Node(n)

		// vertical line
		top := -math.MaxFloat64
		bot := math.MaxFloat64
		for _, d := range n.Children {
			y := tp.lt.Node(d).Y
			top = math.Max(top, y)
			bot = math.Min(bot, y)
		}
		c.StrokeLine2(tp.lineStyle(ln.X), trX(ln.X), trY(bot), trX(ln.X), trY(top))

		// horizontal lines
		for _, d := range n.Children {
			dn := tp.lt.Node(d)
			c.StrokeLine2(tp.lineStyle(dn.X), trX(ln.X), trY(dn.Y), trX(dn.X), trY(dn.Y))
		}
	}
}

func (tp *treePlot) lineStyle(x float64) draw.LineStyle {
	sty := tp.style
	if tp.color != nil {
		sty.Color = tp.color(x)
	}
	return sty
}

// gradient returns a color function
// scaled by the maximum distance from the root.
func gradient(max float64) func(x float64) color.Color {
	return func(x float64) color.Color {
		v := 0.0
		if max > 0 {
			v = x / max
		}
		return blind.Sequential(blind.Iridescent, v)
	}
}

func termLabels(lt *layout.Tree) (*plotter.Labels, error) {
	terms := lt.Root().Terms()
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, len(terms)),
		Labels: make([]string, 0, len(terms)),
	}
	for _, n := range terms {
		ln := lt.Node(n)
		xyl.XYs = append(xyl.XYs, plotter.XY{X: ln.X, Y: ln.Y})
		xyl.Labels = append(xyl.Labels, n.Name)
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	labels.Offset = vg.Point{X: vg.Points(4), Y: -vg.Points(3)}
	return labels, nil
}
