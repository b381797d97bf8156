// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package fasta_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/cft/fasta"
)

func TestRead(t *testing.T) {
	in := `>naive inferred naive sequence
CAGGTGCAGCTG
GTGCAG

>seq-1
CAGGTG CAGCTA
>seq-2
>seq-3	sampled w16
ACGT
`
	c, err := fasta.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}

	ids := []string{"naive", "seq-1", "seq-2", "seq-3"}
	if got := c.IDs(); !reflect.DeepEqual(got, ids) {
		t.Errorf("ids: got %v, want %v", got, ids)
	}
	if c.Len() != len(ids) {
		t.Errorf("len: got %d, want %d", c.Len(), len(ids))
	}

	want := []fasta.Record{
		{ID: "naive", Desc: "inferred naive sequence", Seq: "CAGGTGCAGCTGGTGCAG"},
		{ID: "seq-1", Seq: "CAGGTGCAGCTA"},
		{ID: "seq-2"},
		{ID: "seq-3", Desc: "sampled w16", Seq: "ACGT"},
	}
	for _, w := range want {
		r, ok := c.Record(w.ID)
		if !ok {
			t.Errorf("record %q: not found", w.ID)
			continue
		}
		if r != w {
			t.Errorf("record %q: got %+v, want %+v", w.ID, r, w)
		}
		if s := c.Seq(w.ID); s != w.Seq {
			t.Errorf("record %q: got sequence %q, want %q", w.ID, s, w.Seq)
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"no header":  "ACGT\n>a\nACGT\n",
		"repeated":   ">a\nACGT\n>a\nACGT\n",
		"without id": ">\nACGT\n",
	}
	for name, in := range tests {
		_, err := fasta.Read(strings.NewReader(in))
		if !errors.Is(err, fasta.ErrFasta) {
			t.Errorf("%s: got error %v, want %v", name, err, fasta.ErrFasta)
		}
	}
}
