// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package auspice implements the JSON representation
// of a phylogenetic tree,
// and its sequences,
// used by the auspice tree viewer.
package auspice

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/js-arias/cft/fasta"
	"github.com/js-arias/cft/layout"
	"github.com/js-arias/cft/meta"
	"github.com/js-arias/cft/settings"
	"github.com/js-arias/cft/tree"
)

// A Node is the JSON representation
// of a node of a tree.
type Node struct {
	// Strain and Clade are both the name of the node.
	// They are null if the node is unnamed.
	Strain *string `json:"strain"`
	Clade  *string `json:"clade"`

	XValue float64 `json:"xvalue"`
	YValue float64 `json:"yvalue"`
	TValue int     `json:"tvalue"`

	Children []*Node `json:"children,omitempty"`

	// Mutations are not implemented,
	// so they are always empty.
	Muts   []string `json:"muts"`
	AAMuts []string `json:"aa_muts"`

	Attr Attr `json:"attr"`
}

// Attr are the node attributes.
type Attr struct {
	Region  string  `json:"region"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	NumDate int     `json:"num_date"`
	Date    string  `json:"date"`
	Div     float64 `json:"div"`
}

// Tree returns the JSON representation
// of a tree with layout values.
//
// If metadata is defined,
// and the settings allow it,
// the geographic attributes of a node
// are taken from the metadata row
// with the node name.
func Tree(lt *layout.Tree, s settings.Settings, md *meta.Table) *Node {
	return newNode(lt, lt.Root(), s, md)
}

func newNode(lt *layout.Tree, n *tree.Node, s settings.Settings, md *meta.Table) *Node {
	ln := lt.Node(n)
	an := &Node{
		Strain: name(n),
		Clade:  name(n),
		XValue: ln.X,
		YValue: ln.Y,
		TValue: ln.T,
		Muts:   []string{},
		AAMuts: []string{},
		Attr: Attr{
			Region:  s.Attr.Region,
			Country: s.Attr.Country,
			City:    s.Attr.City,
			NumDate: ln.T,
			Date:    strconv.Itoa(ln.T) + s.Time.DateSuffix,
			Div:     ln.X,
		},
	}
	if s.Attr.Metadata && md != nil {
		an.Attr.fromMeta(md, n.Name)
	}

	for _, c := range n.Children {
		an.Children = append(an.Children, newNode(lt, c, s, md))
	}
	return an
}

func name(n *tree.Node) *string {
	if n.Name == "" {
		return nil
	}
	nm := n.Name
	return &nm
}

func (a *Attr) fromMeta(md *meta.Table, id string) {
	row, ok := md.Row(id)
	if !ok {
		return
	}
	if v := row["region"]; v != "" {
		a.Region = v
	}
	if v := row["country"]; v != "" {
		a.Country = v
	}
	if v := row["city"]; v != "" {
		a.City = v
	}
}

// Read reads a tree
// from its JSON representation.
func Read(r io.Reader) (*Node, error) {
	var n Node
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// A Sequence is the JSON representation
// of a sequence.
type Sequence struct {
	Nuc string `json:"nuc"`
}

// Sequences returns the JSON representation
// of a collection of sequences.
func Sequences(c *fasta.Collection) map[string]Sequence {
	seqs := make(map[string]Sequence, c.Len())
	for _, id := range c.IDs() {
		seqs[id] = Sequence{Nuc: c.Seq(id)}
	}
	return seqs
}

// Write writes a value as JSON.
// If indent is true,
// the output will be indented.
func Write(w io.Writer, v any, indent bool) error {
	e := json.NewEncoder(w)
	e.SetEscapeHTML(false)
	if indent {
		e.SetIndent("", "  ")
	}
	return e.Encode(v)
}
