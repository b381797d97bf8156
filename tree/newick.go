// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNewick is returned when a newick tree is malformed.
var ErrNewick = errors.New("invalid newick tree")

// ReadNewick reads one or more trees
// in newick (parenthetical) format.
//
// Each tree must end with a semicolon.
// Node labels can be quoted with single quotes,
// in which case two consecutive quotes are read as a quote.
// In unquoted labels,
// underscores are read as blanks.
// Branch lengths are given after a colon.
// Comments,
// enclosed in square brackets,
// are ignored.
//
// Here is an example file:
//
//	((Carnotaurus_sastrei:74,Ceratosaurus_nasicornis:0):65,'Eoraptor lunensis':5)root;
func ReadNewick(r io.Reader) ([]*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := &newickParser{data: data}
	var ts []*Node
	for {
		if err := p.skip(); err != nil {
			return nil, err
		}
		if p.eof() {
			break
		}

		t, err := p.node()
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", len(ts)+1, err)
		}
		if err := p.skip(); err != nil {
			return nil, err
		}
		if p.peek() != ';' {
			return nil, fmt.Errorf("tree %d: %w", len(ts)+1, p.errorf("expecting ';'"))
		}
		p.pos++
		ts = append(ts, t)
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("%w: no trees found", ErrNewick)
	}
	return ts, nil
}

type newickParser struct {
	data []byte
	pos  int
}

func (p *newickParser) eof() bool {
	return p.pos >= len(p.data)
}

func (p *newickParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.data[p.pos]
}

func (p *newickParser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: at byte %d: %s", ErrNewick, p.pos, msg)
}

// skip skips blanks and comments.
func (p *newickParser) skip() error {
	for !p.eof() {
		switch c := p.peek(); {
		case c == ' ', c == '\t', c == '\n', c == '\r':
			p.pos++
		case c == '[':
			end := bytes.IndexByte(p.data[p.pos:], ']')
			if end < 0 {
				return p.errorf("unclosed comment")
			}
			p.pos += end + 1
		default:
			return nil
		}
	}
	return nil
}

func (p *newickParser) node() (*Node, error) {
	n := &Node{}
	if err := p.skip(); err != nil {
		return nil, err
	}

	if p.peek() == '(' {
		p.pos++
		for {
			c, err := p.node()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, c)

			if err := p.skip(); err != nil {
				return nil, err
			}
			if p.peek() == ',' {
				p.pos++
				continue
			}
			if p.peek() != ')' {
				return nil, p.errorf("expecting ',' or ')'")
			}
			p.pos++
			break
		}
	}

	name, err := p.label()
	if err != nil {
		return nil, err
	}
	n.Name = name

	if err := p.skip(); err != nil {
		return nil, err
	}
	if p.peek() == ':' {
		p.pos++
		l, err := p.length()
		if err != nil {
			return nil, err
		}
		n.Length = l
	}
	return n, nil
}

const newickDelim = "():;,[ \t\n\r"

func (p *newickParser) label() (string, error) {
	if err := p.skip(); err != nil {
		return "", err
	}

	if p.peek() == '\'' {
		p.pos++
		var b strings.Builder
		for {
			if p.eof() {
				return "", p.errorf("unclosed quoted label")
			}
			c := p.data[p.pos]
			p.pos++
			if c != '\'' {
				b.WriteByte(c)
				continue
			}
			if p.peek() == '\'' {
				b.WriteByte('\'')
				p.pos++
				continue
			}
			return b.String(), nil
		}
	}

	start := p.pos
	for !p.eof() && strings.IndexByte(newickDelim, p.peek()) < 0 {
		if p.peek() == '\'' {
			return "", p.errorf("unexpected quote")
		}
		p.pos++
	}
	return strings.ReplaceAll(string(p.data[start:p.pos]), "_", " "), nil
}

func (p *newickParser) length() (float64, error) {
	if err := p.skip(); err != nil {
		return 0, err
	}

	start := p.pos
	for !p.eof() && strings.IndexByte("+-.0123456789eE", p.peek()) >= 0 {
		p.pos++
	}
	v := string(p.data[start:p.pos])
	if v == "" {
		return 0, p.errorf("expecting branch length")
	}
	l, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, p.errorf("branch length %q: %v", v, err)
	}
	return l, nil
}

// Newick writes the tree rooted at the node
// in newick format.
func (n *Node) Newick(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n.writeNewick(bw, true)
	bw.WriteString(";\n")
	return bw.Flush()
}

// String returns the tree in newick format.
func (n *Node) String() string {
	var b strings.Builder
	n.writeNewick(&b, true)
	b.WriteByte(';')
	return b.String()
}

type newickWriter interface {
	WriteByte(c byte) error
	WriteString(s string) (int, error)
}

func (n *Node) writeNewick(w newickWriter, isRoot bool) {
	if len(n.Children) > 0 {
		w.WriteByte('(')
		for i, d := range n.Children {
			if i > 0 {
				w.WriteByte(',')
			}
			d.writeNewick(w, false)
		}
		w.WriteByte(')')
	}
	w.WriteString(quoteLabel(n.Name))
	if isRoot && n.Length == 0 {
		return
	}
	w.WriteByte(':')
	w.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
}

func quoteLabel(name string) string {
	if !strings.ContainsAny(name, "():;,[]'_\t\n\r") {
		return strings.ReplaceAll(name, " ", "_")
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
