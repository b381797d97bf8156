// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package add_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/js-arias/cft/cmd/cft/add"
	"github.com/js-arias/cft/project"
	"github.com/js-arias/cft/settings"
)

func writeFile(t testing.TB, name, data string) string {
	t.Helper()

	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write %q: %v", name, err)
	}
	return name
}

func execute(args ...string) error {
	add.Command.SetStderr(io.Discard)
	return add.Command.Execute(args)
}

func TestAdd(t *testing.T) {
	dir := t.TempDir()
	tf := writeFile(t, filepath.Join(dir, "family.tre"), "((C:0.5,D:0.5)A:1,B:2)R;\n")
	sf := writeFile(t, filepath.Join(dir, "family.fa"), ">C\nACGT\n>D\nACGA\n")
	st := filepath.Join(dir, "settings.toml")
	pf := filepath.Join(dir, "project.tab")

	if err := execute("--newick", tf, "--seqs", sf, "--settings", st, pf); err != nil {
		t.Fatalf("add: %v", err)
	}

	p, err := project.Read(pf)
	if err != nil {
		t.Fatalf("unable to read project: %v", err)
	}
	want := map[project.Dataset]string{
		project.Newick:    tf,
		project.Sequences: sf,
		project.Settings:  st,
	}
	for set, path := range want {
		if got := p.Path(set); got != path {
			t.Errorf("dataset %s: got %q, want %q", set, got, path)
		}
	}

	s, err := p.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !reflect.DeepEqual(s, settings.Default()) {
		t.Errorf("settings: got %+v, want default", s)
	}

	// replace a dataset
	nf := writeFile(t, filepath.Join(dir, "other.tre"), "(X:1,Y:1);\n")
	if err := execute("--newick", nf, pf); err != nil {
		t.Fatalf("add: %v", err)
	}
	p, err = project.Read(pf)
	if err != nil {
		t.Fatalf("unable to read project: %v", err)
	}
	if got := p.Path(project.Newick); got != nf {
		t.Errorf("dataset %s: got %q, want %q", project.Newick, got, nf)
	}
	if got := p.Path(project.Sequences); got != sf {
		t.Errorf("dataset %s: got %q, want %q", project.Sequences, got, sf)
	}
}

func TestAddInvalid(t *testing.T) {
	tests := map[string][]string{
		"newick":   {"--newick", "((A:1,B:1);\n"},
		"fasta":    {"--seqs", "ACGT\n>A\nACGT\n"},
		"metadata": {"--meta", "sequence,region\na\"b,x\n"},
		"settings": {"--settings", "[time]\noffst = 10\n"},
	}

	for name, test := range tests {
		dir := t.TempDir()
		f := writeFile(t, filepath.Join(dir, "data.txt"), test[1])
		st := filepath.Join(dir, "settings.toml")
		pf := filepath.Join(dir, "project.tab")

		args := []string{test[0], f}
		if test[0] != "--settings" {
			args = append(args, "--settings", st)
		}
		args = append(args, pf)
		if err := execute(args...); err == nil {
			t.Errorf("%s: expecting error", name)
		}

		if _, err := os.Stat(pf); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: project: got %v, want a missing file", name, err)
		}
		if _, err := os.Stat(st); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: settings: got %v, want a missing file", name, err)
		}
	}
}
