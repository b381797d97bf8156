// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/js-arias/cft/project"
	"github.com/js-arias/cft/settings"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Newick, "family.tre"},
		{project.Sequences, "family.fa"},
		{project.Metadata, "family-meta.csv"},
		{project.Settings, "settings.toml"},
		{project.Trees, "trees.tab"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project.tab")
	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.Trees, ""); prev != "trees.tab" {
		t.Errorf("remove: got previous path %q, want %q", prev, "trees.tab")
	}
	if path := np.Path(project.Trees); path != "" {
		t.Errorf("remove: got path %q, want empty", path)
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

func writeFile(t testing.TB, name, data string) {
	t.Helper()

	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write %q: %v", name, err)
	}
}

func TestDatasets(t *testing.T) {
	dir := t.TempDir()
	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))

	s, err := p.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !reflect.DeepEqual(s, settings.Default()) {
		t.Errorf("settings: got %+v, want default", s)
	}
	if _, err := p.Tree(""); err == nil {
		t.Errorf("tree: expecting error on project without trees")
	}

	tf := filepath.Join(dir, "family.tre")
	writeFile(t, tf, "((C:0.5,D:0.5)A:1,B:2)R;\n(X:1,Y:1);\n")
	p.Add(project.Newick, tf)

	sf := filepath.Join(dir, "family.fa")
	writeFile(t, sf, ">C\nACGT\n>D\nACGA\n>B\nTCGA\n")
	p.Add(project.Sequences, sf)

	mf := filepath.Join(dir, "family-meta.tsv")
	writeFile(t, mf, "sequence\tregion\nC\tasia\n")
	p.Add(project.Metadata, mf)

	r, err := p.Tree("")
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if r.Name != "R" || r.NumTerms() != 3 {
		t.Errorf("tree: got %s, want first tree", r)
	}
	r, err = p.Tree("2")
	if err != nil {
		t.Fatalf("tree 2: %v", err)
	}
	if r.NumTerms() != 2 {
		t.Errorf("tree 2: got %s, want second tree", r)
	}
	if _, err := p.Tree("3"); err == nil {
		t.Errorf("tree 3: expecting error")
	}

	c, err := p.Sequences()
	if err != nil {
		t.Fatalf("sequences: %v", err)
	}
	if ids := c.IDs(); !reflect.DeepEqual(ids, []string{"C", "D", "B"}) {
		t.Errorf("sequences: got %v", ids)
	}

	md, err := p.Metadata()
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if v := md.Value("C", "region"); v != "asia" {
		t.Errorf("metadata: got %q, want %q", v, "asia")
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"bare quote":      "dataset\tpath\nnew\"ick\tt.tre\n",
		"unknown dataset": "dataset\tpath\nranges\tranges.tab\n",
		"no path":         "dataset\nnewick\n",
		"bad count":       "dataset\tpath\nnewick\n",
	}
	dir := t.TempDir()
	for name, data := range tests {
		f := filepath.Join(dir, name+".tab")
		writeFile(t, f, data)
		if _, err := project.Read(f); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
