// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTree is returned by Validate
// when a tree is not a valid rooted tree.
var ErrInvalidTree = errors.New("invalid tree")

// Validate checks that the tree rooted at the node
// is a valid rooted tree:
// no node is reachable by two paths
// (i.e., there are no cycles,
// and no node is shared between branches),
// all branch lengths are finite and non-negative,
// and all terminals have a name.
//
// The returned error wraps ErrInvalidTree.
func (n *Node) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: empty tree", ErrInvalidTree)
	}

	seen := make(map[*Node]bool)
	stack := []*Node{n}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[v] {
			return fmt.Errorf("%w: node %q reached more than once", ErrInvalidTree, v.Name)
		}
		seen[v] = true

		if v != n {
			if math.IsNaN(v.Length) || math.IsInf(v.Length, 0) {
				return fmt.Errorf("%w: node %q: undefined branch length", ErrInvalidTree, v.Name)
			}
			if v.Length < 0 {
				return fmt.Errorf("%w: node %q: negative branch length %g", ErrInvalidTree, v.Name, v.Length)
			}
		}
		if v.IsTerm() && v.Name == "" {
			return fmt.Errorf("%w: terminal without name", ErrInvalidTree)
		}

		for _, c := range v.Children {
			if c == nil {
				return fmt.Errorf("%w: node %q: empty child", ErrInvalidTree, v.Name)
			}
			stack = append(stack, c)
		}
	}
	return nil
}
