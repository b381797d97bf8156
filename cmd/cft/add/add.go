// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add data files
// to a cft project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/cft/project"
	"github.com/js-arias/cft/settings"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `add [--newick <file>] [--trees <file>]
	[--seqs <file>] [--meta <file>] [--settings <file>]
	<project-file>`,
	Short: "add data files to a cft project",
	Long: `
Command add reads one or more data files and adds them to a cft project.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

The files are indicated with the following flags:

	--newick    a file with one or more trees in newick format.
	--trees     a file with time-calibrated trees in PhyGeo
	            tab-delimited format.
	--seqs      a file with sequences in FASTA format.
	--meta      a file with sequence metadata.
	--settings  a TOML file with the export settings. If the file does
	            not exist, a new file with the default settings will be
	            created.

Each file is read before it is added to the project, so invalid files will
be rejected. If a file of the same kind was already defined in the project,
it will be replaced.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var newickFile string
var treesFile string
var seqsFile string
var metaFile string
var settingsFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&newickFile, "newick", "", "")
	c.Flags().StringVar(&treesFile, "trees", "", "")
	c.Flags().StringVar(&seqsFile, "seqs", "", "")
	c.Flags().StringVar(&metaFile, "meta", "", "")
	c.Flags().StringVar(&settingsFile, "settings", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	files := []struct {
		set  project.Dataset
		path string
	}{
		{project.Newick, newickFile},
		{project.Trees, treesFile},
		{project.Sequences, seqsFile},
		{project.Metadata, metaFile},
		{project.Settings, settingsFile},
	}

	// a temporary project
	// to check the files before
	// they are added
	tmp := project.New()
	tmp.SetName(pFile)
	newSettings := false
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if f.set == project.Settings && !exists(f.path) {
			newSettings = true
		} else {
			tmp.Add(f.set, f.path)
			if err := check(tmp, f.set); err != nil {
				return err
			}
		}
		if prev := p.Add(f.set, f.path); prev != "" && prev != f.path {
			fmt.Fprintf(c.Stderr(), "%s: replacing %q\n", f.set, prev)
		}
	}

	if newSettings {
		if err := createSettings(settingsFile); err != nil {
			return err
		}
	}
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func check(p *project.Project, set project.Dataset) error {
	var err error
	switch set {
	case project.Newick:
		_, err = p.Newick()
	case project.Trees:
		_, err = p.TimeTrees()
	case project.Sequences:
		_, err = p.Sequences()
	case project.Metadata:
		_, err = p.Metadata()
	case project.Settings:
		_, err = p.Settings()
	}
	return err
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// createSettings writes a settings file
// with the default values.
func createSettings(name string) (err error) {
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

	if err := settings.Default().Write(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
