// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/js-arias/cft/layout"
	"github.com/js-arias/cft/tree"
	"gonum.org/v1/plot/vg"
)

func newLayout() *layout.Tree {
	src := &tree.Node{
		Name: "R",
		Children: []*tree.Node{
			{Name: "B", Length: 2.0},
			{
				Length: 1.0,
				Children: []*tree.Node{
					{Name: "C", Length: 0.5},
					{Name: "D", Length: 0.5},
				},
			},
		},
	}
	return layout.New(src, layout.DefaultParam())
}

func TestDataRange(t *testing.T) {
	tp := &treePlot{lt: newLayout()}
	xMin, xMax, yMin, yMax := tp.DataRange()
	if xMin != 0 || xMax != 2 || yMin != 0 || yMax != 4 {
		t.Errorf("data range: got [%.2f, %.2f] x [%.2f, %.2f], want [0, 2] x [0, 4]", xMin, xMax, yMin, yMax)
	}
}

func TestGradient(t *testing.T) {
	g := gradient(0)
	if g(0) == nil {
		t.Errorf("gradient: undefined color on zero-length tree")
	}

	g = gradient(2)
	r0, g0, b0, _ := g(0).RGBA()
	r2, g2, b2, _ := g(2).RGBA()
	if r0 == r2 && g0 == g2 && b0 == b2 {
		t.Errorf("gradient: root and farthest node with the same color")
	}
}

func TestSave(t *testing.T) {
	p, err := newPlot(newLayout())
	if err != nil {
		t.Fatalf("unable to create plot: %v", err)
	}

	name := filepath.Join(t.TempDir(), "tree.svg")
	if err := p.Save(4*vg.Inch, 4*vg.Inch, name); err != nil {
		t.Fatalf("unable to save plot: %v", err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if fi.Size() == 0 {
		t.Errorf("output file: empty file")
	}
}
