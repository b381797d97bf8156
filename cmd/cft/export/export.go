// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// a tree and its sequences
// as JSON files for the auspice tree viewer.
package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/js-arias/cft/auspice"
	"github.com/js-arias/cft/fasta"
	"github.com/js-arias/cft/layout"
	"github.com/js-arias/cft/logging"
	"github.com/js-arias/cft/meta"
	"github.com/js-arias/cft/project"
	"github.com/js-arias/cft/tree"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `export [--tree <name>] [--novalidate] [--indent]
	[-v|--verbose] [-o|--output <out-prefix>]
	<project-file>`,
	Short: "export a tree as auspice JSON files",
	Long: `
Command export reads a tree from a cft project, calculates the layout of the
tree, and writes the tree and its sequences as JSON files for the auspice
tree viewer. See 'cft help tree-json' for a description of the output.

The argument of the command is the name of the project file.

By default, the first tree of the project will be exported. Use the flag
--tree to define a different tree. For newick trees, the name is the
position of the tree in the file (starting at 1), for time-calibrated trees,
it is the name of the tree.

By default, the tree is checked before the export: it must have valid
branch lengths (non-negative numbers), and all terminals must have a name.
Use the flag --novalidate to skip the check.

The values used for the time of the nodes, as well as the geographic
attributes, are read from the settings file of the project. See
'cft help settings'.

By default, the tree will be written in the file "tree.json", and the
sequences (if the project has a sequence file) in the file "seqs.json". Use
the flag -o, or --output, to define a prefix for the output files. By
default the JSON output is compact; use the flag --indent to produce an
indented output.

Use the flag -v, or --verbose, to report the progress of the command.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var noValidate bool
var indent bool
var verbose bool
var treeName string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&noValidate, "novalidate", false, "")
	c.Flags().BoolVar(&indent, "indent", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	logger := logging.New(c.Stderr(), verbose)

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	s, err := p.Settings()
	if err != nil {
		return err
	}

	pr := logging.Start(logger)
	t, err := p.Tree(treeName)
	if err != nil {
		return err
	}
	if !noValidate {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("on project %q: %v", args[0], err)
		}
	}
	pr.Done("read tree", "nodes", t.Len(), "terminals", t.NumTerms())

	pr = logging.Start(logger)
	lt := layout.New(t, s.Layout())
	pr.Done("tree layout", "max-x", lt.MaxX())

	var md *meta.Table
	if s.Attr.Metadata {
		if p.Path(project.Metadata) == "" {
			logger.Warn("metadata attributes requested, but metadata not defined", "project", args[0])
		} else {
			md, err = p.Metadata()
			if err != nil {
				return err
			}
		}
	}

	tf := outName("tree.json")
	if err := writeJSON(tf, auspice.Tree(lt, s, md)); err != nil {
		return err
	}
	logger.Info("tree written", "file", tf)

	if p.Path(project.Sequences) == "" {
		return nil
	}
	seqs, err := p.Sequences()
	if err != nil {
		return err
	}
	warnMissing(logger, t.Terms(), seqs)

	sf := outName("seqs.json")
	if err := writeJSON(sf, auspice.Sequences(seqs)); err != nil {
		return err
	}
	logger.Info("sequences written", "file", sf, "sequences", seqs.Len())
	return nil
}

func warnMissing(logger *log.Logger, terms []*tree.Node, seqs *fasta.Collection) {
	for _, n := range terms {
		if _, ok := seqs.Record(n.Name); !ok {
			logger.Warn("terminal without sequence", "terminal", n.Name)
		}
	}
}

func outName(name string) string {
	if outPrefix == "" {
		return name
	}
	return fmt.Sprintf("%s-%s", outPrefix, name)
}

func writeJSON(name string, v any) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := auspice.Write(bw, v, indent); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
