// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout implements the layout of a phylogenetic tree
// for a tree viewer.
//
// Each node of the tree is annotated with
// a clade index,
// a horizontal coordinate
// (the distance from the root),
// a vertical coordinate,
// and a time value.
package layout

import (
	"math"

	"github.com/js-arias/cft/tree"
	"gonum.org/v1/gonum/stat"
)

// Default values for the time transformation.
const (
	DefaultOffset = 2000
	DefaultScale  = 100
)

// Param is a collection of parameters
// for the layout of a tree.
type Param struct {
	// Offset is the time value of the root.
	Offset float64

	// Scale is the number of time units
	// per branch length unit.
	Scale float64
}

// DefaultParam returns the default layout parameters.
func DefaultParam() Param {
	return Param{
		Offset: DefaultOffset,
		Scale:  DefaultScale,
	}
}

// Time returns the time value
// for a given distance from the root.
func (p Param) Time(x float64) int {
	return int(math.Floor(p.Offset + x*p.Scale))
}

// A Node stores the layout values
// of a node.
type Node struct {
	// Clade is the index of the node,
	// in preorder.
	// The root is 0.
	Clade int

	// X is the distance from the root.
	X float64

	// Y is the vertical coordinate.
	// Terminals have integer values
	// between 1 and the number of terminals.
	Y float64

	// T is the time value.
	T int
}

// A Tree is a phylogenetic tree with layout values.
type Tree struct {
	root  *tree.Node
	nodes map[*tree.Node]*Node
}

// New creates a new tree with layout values
// by copying the indicated source tree.
// The source tree is not modified.
func New(t *tree.Node, p Param) *Tree {
	root := t.Clone()
	lt := &Tree{
		root:  root,
		nodes: make(map[*tree.Node]*Node),
	}

	parents := tree.Parents(root)
	clade := 0
	y := root.NumTerms()
	for _, n := range root.Preorder() {
		ln := &Node{
			Clade: clade,
		}
		clade++
		if anc, ok := parents[n]; ok {
			ln.X = lt.nodes[anc].X + n.Length
		}
		ln.T = p.Time(ln.X)

		// terminals are numbered
		// in reverse order of their visit
		if n.IsTerm() {
			ln.Y = float64(y)
			y--
		}
		lt.nodes[n] = ln
	}

	for _, n := range root.NonTerms() {
		ys := make([]float64, 0, len(n.Children))
		for _, c := range n.Children {
			ys = append(ys, lt.nodes[c].Y)
		}
		lt.nodes[n].Y = stat.Mean(ys, nil)
	}

	return lt
}

// Root returns the root of the tree.
// The returned tree is a copy of the source tree,
// and it should not be modified.
func (t *Tree) Root() *tree.Node {
	return t.root
}

// Node returns the layout values of a node.
// It returns nil if the node is not part of the tree.
func (t *Tree) Node(n *tree.Node) *Node {
	return t.nodes[n]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// MaxX returns the largest distance from the root
// in the tree.
func (t *Tree) MaxX() float64 {
	var max float64
	for _, n := range t.nodes {
		if n.X > max {
			max = n.X
		}
	}
	return max
}
