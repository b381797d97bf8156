// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layoutcmd implements a command to print
// the layout values of a tree in a cft project.
package layoutcmd

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/cft/layout"
	"github.com/js-arias/cft/project"
	"github.com/js-arias/cft/tree"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "layout [--tree <name>] <project-file>",
	Short: "print the layout values of a tree",
	Long: `
Command layout reads a tree from a cft project, and prints the layout values
of each node in the standard output.

The argument of the command is the name of the project file.

By default, the first tree of the project will be used. Use the flag --tree
to define a different tree.

The output is a tab-delimited table with the following columns:

	- clade   the index of the node (in preorder)
	- parent  the index of the parent node (-1 for the root)
	- name    the name of the node
	- length  the length of the branch to the parent
	- x       the distance from the root
	- y       the vertical position of the node
	- time    the time value of the node
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
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
	if err := writeLayout(c.Stdout(), lt); err != nil {
		return err
	}
	return nil
}

func writeLayout(w io.Writer, lt *layout.Tree) error {
	bw := bufio.NewWriter(w)
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	header := []string{"clade", "parent", "name", "length", "x", "y", "time"}
	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	root := lt.Root()
	parents := tree.Parents(root)
	for _, n := range root.Preorder() {
		ln := lt.Node(n)
		anc := -1
		if pn, ok := parents[n]; ok {
			anc = lt.Node(pn).Clade
		}
		row := []string{
			strconv.Itoa(ln.Clade),
			strconv.Itoa(anc),
			n.Name,
			strconv.FormatFloat(n.Length, 'f', 6, 64),
			strconv.FormatFloat(ln.X, 'f', 6, 64),
			strconv.FormatFloat(ln.Y, 'f', 6, 64),
			strconv.Itoa(ln.T),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
