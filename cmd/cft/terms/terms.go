// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals of a tree in a cft project.
package terms

import (
	"fmt"

	"github.com/js-arias/cft/project"
	"github.com/js-arias/command"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--tree <name>] [--seqs] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads a tree from a cft project and prints the name of the
terminals in the standard output.

The argument of the command is the name of the project file.

By default, the terminals of the first tree of the project will be printed.
Use the flag --tree to define a different tree.

If the flag --seqs is set, each terminal will be followed by a tab and the
length of its sequence, or a dash if the terminal does not have a sequence
in the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var withSeqs bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().BoolVar(&withSeqs, "seqs", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	t, err := p.Tree(treeName)
	if err != nil {
		return err
	}

	terms := make(map[string]bool)
	for _, n := range t.Terms() {
		terms[n.Name] = true
	}
	termList := make([]string, 0, len(terms))
	for tax := range terms {
		termList = append(termList, tax)
	}
	slices.Sort(termList)

	if !withSeqs {
		for _, term := range termList {
			fmt.Fprintf(c.Stdout(), "%s\n", term)
		}
		return nil
	}

	if p.Path(project.Sequences) == "" {
		msg := fmt.Sprintf("sequences not defined in project %q", args[0])
		return c.UsageError(msg)
	}
	seqs, err := p.Sequences()
	if err != nil {
		return err
	}
	for _, term := range termList {
		r, ok := seqs.Record(term)
		if !ok {
			fmt.Fprintf(c.Stdout(), "%s\t-\n", term)
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\t%d\n", term, len(r.Seq))
	}
	return nil
}
