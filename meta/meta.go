// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package meta implements a table
// of sequence metadata.
package meta

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
)

// Key is the field used as identifier
// of the sequence in a metadata table.
const Key = "sequence"

// A Table is a table of metadata values
// associated with sequence identifiers.
type Table struct {
	fields []string
	rows   map[string]map[string]string
}

// New creates an empty table.
func New() *Table {
	return &Table{
		rows: make(map[string]map[string]string),
	}
}

// Comma returns the field delimiter
// expected for a file name:
// a tab for files with ".tab" or ".tsv" extension,
// and a comma for any other file.
func Comma(name string) rune {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tab", ".tsv":
		return '\t'
	}
	return ','
}

// Read reads a metadata table
// using the indicated field delimiter.
//
// The table must have a header,
// with a "sequence" field
// used as the identifier of each row.
// Field names are case insensitive.
// Lines starting with '#' are ignored.
//
// Here is an example file:
//
//	sequence,timepoint,region,country,city
//	seq-1,w16,africa,nigeria,lagos
//	seq-2,w22,africa,kenya,nairobi
func Read(r io.Reader, comma rune) (*Table, error) {
	tab := csv.NewReader(r)
	tab.Comma = comma
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	t := New()
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
		t.fields = append(t.fields, h)
	}
	if _, ok := fields[Key]; !ok {
		return nil, fmt.Errorf("expecting field %q", Key)
	}

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", errLine(err), err)
		}
		ln, _ := tab.FieldPos(0)

		id := strings.TrimSpace(row[fields[Key]])
		if id == "" {
			continue
		}
		if _, dup := t.rows[id]; dup {
			return nil, fmt.Errorf("on row %d: repeated sequence %q", ln, id)
		}

		vals := make(map[string]string, len(t.fields))
		for i, f := range t.fields {
			vals[f] = strings.TrimSpace(row[i])
		}
		t.rows[id] = vals
	}

	return t, nil
}

// errLine returns the line of a CSV parsing error.
func errLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}

// Fields returns the fields defined in the table,
// in the order of the table header.
func (t *Table) Fields() []string {
	return slices.Clone(t.fields)
}

// IDs returns the sorted list of sequence identifiers
// in the table.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Row returns the values of a sequence.
func (t *Table) Row(id string) (map[string]string, bool) {
	r, ok := t.rows[id]
	return r, ok
}

// Value returns the value of a field
// for a given sequence.
func (t *Table) Value(id, field string) string {
	r, ok := t.rows[id]
	if !ok {
		return ""
	}
	return r[strings.ToLower(field)]
}
