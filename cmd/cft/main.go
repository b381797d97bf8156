// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Cft is a tool to prepare phylogenetic trees
// of clonal families for the auspice tree viewer.
package main

import (
	"github.com/js-arias/cft/cmd/cft/add"
	"github.com/js-arias/cft/cmd/cft/draw"
	"github.com/js-arias/cft/cmd/cft/export"
	"github.com/js-arias/cft/cmd/cft/layoutcmd"
	"github.com/js-arias/cft/cmd/cft/terms"
	"github.com/js-arias/command"
)

var app = &command.Command{
	Usage: "cft <command> [<argument>...]",
	Short: "a tool to export phylogenetic trees for tree viewers",
}

func init() {
	app.Add(add.Command)
	app.Add(draw.Command)
	app.Add(export.Command)
	app.Add(layoutcmd.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}
