// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/cft/tree"
	"github.com/js-arias/timetree"
)

func TestFromTimeTree(t *testing.T) {
	c, err := timetree.Newick(strings.NewReader("((A:1,B:1):2,C:3);"), "dinos", 0)
	if err != nil {
		t.Fatalf("unable to read time tree: %v", err)
	}
	ls := c.Names()
	if len(ls) != 1 {
		t.Fatalf("time tree: got %d trees, want 1", len(ls))
	}

	r := tree.FromTimeTree(c.Tree(ls[0]))
	if err := r.Validate(); err != nil {
		t.Fatalf("invalid tree: %v", err)
	}
	if n := r.Len(); n != 5 {
		t.Errorf("nodes: got %d, want %d", n, 5)
	}
	if n := r.NumTerms(); n != 3 {
		t.Errorf("terminals: got %d, want %d", n, 3)
	}

	var lens []float64
	for _, n := range r.Preorder() {
		if n == r {
			continue
		}
		lens = append(lens, n.Length)
	}
	slices.Sort(lens)
	want := []float64{1, 1, 2, 3}
	if len(lens) != len(want) {
		t.Fatalf("branch lengths: got %v, want %v", lens, want)
	}
	for i, l := range lens {
		if math.Abs(l-want[i]) > 1e-6 {
			t.Errorf("branch lengths: got %v, want %v", lens, want)
			break
		}
	}
}
