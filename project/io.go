// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"
	"strconv"

	"github.com/js-arias/cft/fasta"
	"github.com/js-arias/cft/meta"
	"github.com/js-arias/cft/settings"
	"github.com/js-arias/cft/tree"
	"github.com/js-arias/timetree"
)

// Metadata reads a sequence metadata file
// as defined in a project.
func (p *Project) Metadata() (*meta.Table, error) {
	name := p.Path(Metadata)
	if name == "" {
		return nil, fmt.Errorf("sequence metadata not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := meta.Read(f, meta.Comma(name))
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// Newick reads the newick trees
// as defined in a project.
func (p *Project) Newick() ([]*tree.Node, error) {
	name := p.Path(Newick)
	if name == "" {
		return nil, fmt.Errorf("newick trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := tree.ReadNewick(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %w", name, err)
	}
	return ts, nil
}

// Sequences reads a sequence file
// as defined in a project.
func (p *Project) Sequences() (*fasta.Collection, error) {
	name := p.Path(Sequences)
	if name == "" {
		return nil, fmt.Errorf("sequences not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := fasta.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %w", name, err)
	}
	return c, nil
}

// Settings reads the export settings
// as defined in a project.
// If no settings file is defined,
// it returns the default settings.
func (p *Project) Settings() (settings.Settings, error) {
	name := p.Path(Settings)
	if name == "" {
		return settings.Default(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return settings.Settings{}, err
	}
	defer f.Close()

	s, err := settings.Read(f)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

// TimeTrees reads a time-calibrated tree collection file
// as defined in a project.
func (p *Project) TimeTrees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

// Tree returns a tree
// as defined in a project.
//
// If the project has a newick file,
// the tree will be read from that file,
// and the name of the tree is its position
// in the file
// (starting from 1).
// Otherwise,
// the tree will be read from the time-calibrated trees
// and branch lengths will be in million years.
// If name is empty,
// the first tree will be returned.
func (p *Project) Tree(name string) (*tree.Node, error) {
	if p.Path(Newick) != "" {
		ts, err := p.Newick()
		if err != nil {
			return nil, err
		}
		if name == "" {
			return ts[0], nil
		}
		i, err := strconv.Atoi(name)
		if err != nil || i < 1 || i > len(ts) {
			return nil, fmt.Errorf("tree %q not found in file %q", name, p.Path(Newick))
		}
		return ts[i-1], nil
	}

	if p.Path(Trees) == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}
	c, err := p.TimeTrees()
	if err != nil {
		return nil, err
	}
	if name == "" {
		ls := c.Names()
		if len(ls) == 0 {
			return nil, fmt.Errorf("file %q: without trees", p.Path(Trees))
		}
		name = ls[0]
	}
	t := c.Tree(name)
	if t == nil {
		return nil, fmt.Errorf("tree %q not found in file %q", name, p.Path(Trees))
	}
	return tree.FromTimeTree(t), nil
}
