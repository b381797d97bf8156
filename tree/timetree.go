// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "github.com/js-arias/timetree"

// MillionYears is the unit of the branch lengths
// of trees imported from time-calibrated trees.
const MillionYears = 1_000_000

// FromTimeTree returns a new tree
// from a time-calibrated tree.
// Branch lengths are the age differences
// between a node and its parent,
// in million years.
func FromTimeTree(t *timetree.Tree) *Node {
	return copyTimeNode(t, t.Root())
}

func copyTimeNode(t *timetree.Tree, id int) *Node {
	n := &Node{
		Name: t.Taxon(id),
	}
	if p := t.Parent(id); p >= 0 {
		n.Length = float64(t.Age(p)-t.Age(id)) / MillionYears
	}
	for _, c := range t.Children(id) {
		n.Children = append(n.Children, copyTimeNode(t, c))
	}
	return n
}
