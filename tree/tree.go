// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements rooted phylogenetic trees
// with branch lengths.
//
// A tree is represented by its root node.
// Nodes do not store a reference to its parent;
// use Parents to build a parent index.
package tree

// A Node is a node (a clade) of a phylogenetic tree.
type Node struct {
	// Name of the node.
	// It is required for terminals,
	// and optional for internal nodes.
	Name string

	// Length of the branch
	// that connects the node with its parent.
	// It is ignored in the root.
	Length float64

	// Children of the node,
	// in the order they were defined.
	Children []*Node
}

// IsTerm returns true if the node is a terminal
// (i.e., a leaf).
func (n *Node) IsTerm() bool {
	return len(n.Children) == 0
}

// Clone returns a deep copy of the tree
// rooted at the node.
func (n *Node) Clone() *Node {
	c := &Node{
		Name:   n.Name,
		Length: n.Length,
	}
	if len(n.Children) == 0 {
		return c
	}
	c.Children = make([]*Node, 0, len(n.Children))
	for _, d := range n.Children {
		c.Children = append(c.Children, d.Clone())
	}
	return c
}

// Len returns the number of nodes in the tree
// rooted at the node.
func (n *Node) Len() int {
	sz := 1
	for _, d := range n.Children {
		sz += d.Len()
	}
	return sz
}

// NumTerms returns the number of terminals
// in the tree rooted at the node.
func (n *Node) NumTerms() int {
	if n.IsTerm() {
		return 1
	}
	sz := 0
	for _, d := range n.Children {
		sz += d.NumTerms()
	}
	return sz
}

// Preorder returns the nodes of the tree
// in preorder:
// a node is visited before its descendants,
// and children are visited from left to right.
func (n *Node) Preorder() []*Node {
	var ls []*Node
	stack := []*Node{n}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ls = append(ls, v)

		// push in reverse so the leftmost child is visited first
		for i := len(v.Children) - 1; i >= 0; i-- {
			stack = append(stack, v.Children[i])
		}
	}
	return ls
}

// Postorder returns the nodes of the tree
// in postorder:
// all descendants of a node are visited
// before the node.
func (n *Node) Postorder() []*Node {
	var ls []*Node
	return n.postorder(ls)
}

func (n *Node) postorder(ls []*Node) []*Node {
	for _, d := range n.Children {
		ls = d.postorder(ls)
	}
	return append(ls, n)
}

// Level returns the nodes of the tree
// in level order
// (i.e., a breadth-first traversal).
func (n *Node) Level() []*Node {
	ls := []*Node{n}
	for i := 0; i < len(ls); i++ {
		ls = append(ls, ls[i].Children...)
	}
	return ls
}

// Terms returns the terminals of the tree
// in preorder.
func (n *Node) Terms() []*Node {
	var ls []*Node
	for _, v := range n.Preorder() {
		if v.IsTerm() {
			ls = append(ls, v)
		}
	}
	return ls
}

// NonTerms returns the internal nodes of the tree
// in postorder.
func (n *Node) NonTerms() []*Node {
	var ls []*Node
	for _, v := range n.Postorder() {
		if !v.IsTerm() {
			ls = append(ls, v)
		}
	}
	return ls
}

// Parents returns a map from each non-root node
// to its direct parent.
// The root is not in the map.
func Parents(root *Node) map[*Node]*Node {
	parents := make(map[*Node]*Node)
	for _, n := range root.Level() {
		for _, c := range n.Children {
			parents[c] = n
		}
	}
	return parents
}
