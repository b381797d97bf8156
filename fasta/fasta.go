// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package fasta implements a collection
// of sequences read from a FASTA file.
package fasta

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ErrFasta is returned when a FASTA file is malformed.
var ErrFasta = errors.New("invalid fasta data")

// A Record is a sequence record.
type Record struct {
	// ID is the identifier of the sequence,
	// the first word of the record header.
	ID string

	// Desc is the rest of the header.
	Desc string

	// Seq is the sequence.
	Seq string
}

// A Collection is an ordered collection
// of sequence records.
type Collection struct {
	ids  []string
	recs map[string]Record
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{
		recs: make(map[string]Record),
	}
}

// Add adds a record to the collection.
func (c *Collection) Add(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("%w: record without identifier", ErrFasta)
	}
	if _, dup := c.recs[r.ID]; dup {
		return fmt.Errorf("%w: repeated identifier %q", ErrFasta, r.ID)
	}
	c.ids = append(c.ids, r.ID)
	c.recs[r.ID] = r
	return nil
}

// IDs returns the identifiers of the sequences
// in the order they were added.
func (c *Collection) IDs() []string {
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Len returns the number of records in the collection.
func (c *Collection) Len() int {
	return len(c.ids)
}

// Record returns the record with the given identifier.
func (c *Collection) Record(id string) (Record, bool) {
	r, ok := c.recs[id]
	return r, ok
}

// Seq returns the sequence with the given identifier.
func (c *Collection) Seq(id string) string {
	return c.recs[id].Seq
}

// Read reads a collection of sequences
// in FASTA format.
//
// Each record starts with a header line
// that begins with a '>' character,
// followed by the sequence identifier.
// The identifier ends at the first space or tab,
// and the rest of the header is the description.
// The sequence can span several lines.
//
// Here is an example file:
//
//	>naive inferred naive sequence
//	CAGGTGCAGCTGGTGCAG
//	TCTGGGGCT
//	>seq-1
//	CAGGTGCAGCTGGTGCAGTCTGGGGCA
func Read(r io.Reader) (*Collection, error) {
	c := New()

	template := linear.NewSeq("", nil, alphabet.DNAgapped)
	sc := seqio.NewScanner(biofasta.NewReader(r, template))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected sequence type %T", ErrFasta, sc.Seq())
		}
		rec := Record{
			ID:   strings.TrimSpace(s.Name()),
			Desc: strings.TrimSpace(s.Description()),
			Seq:  string(alphabet.LettersToBytes(s.Seq)),
		}
		if err := c.Add(rec); err != nil {
			return nil, fmt.Errorf("on record %d: %w", c.Len()+1, err)
		}
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFasta, err)
	}

	return c, nil
}
