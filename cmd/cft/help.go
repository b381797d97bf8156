// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(projectsGuide)
	app.Add(settingsGuide)
	app.Add(treeJSONGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Cft requires several files to export a tree. To reduce the burden of keeping
track of many files, a single project file is used to hold the reference of
all files required in the analysis. This guide explains the structure of the
file, but most of the time, the best and most secure way to edit this file is
by using the command 'cft add'.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# cft project files
	dataset	path
	newick	family.tre
	seqmeta	family-meta.csv
	seqs	family.fa
	settings	settings.toml

The valid file types are:

- Newick trees. Defined by the dataset keyword "newick". This file contains
  one or more trees in parenthetical format, with branch lengths. Trees are
  identified by its position in the file, starting at 1.
- Time-calibrated trees. Defined by the dataset keyword "trees". This file
  contains one or more trees in the tab-delimited format used by PhyGeo.
  Branch lengths are calculated from node ages, in million years. If a
  newick file is defined, this file will be ignored.
- Sequences. Defined by the dataset keyword "seqs". This file contains the
  sequences of the tree nodes in FASTA format.
- Sequence metadata. Defined by the dataset keyword "seqmeta". This file is
  a table with a header, and a "sequence" column with the sequence
  identifiers. By default the table is comma-delimited; if the file has the
  extension ".tab" or ".tsv" it is read as a tab-delimited file.
- Export settings. Defined by the dataset keyword "settings". See
  'cft help settings'.
	`,
}

var settingsGuide = &command.Command{
	Usage: "settings",
	Short: "about the export settings file",
	Long: `
The values used to export a tree can be changed with a settings file. The
settings file is a TOML file with the following sections:

	- time  the transformation of distances from the root into time
	        values. The time of a node is the integer part of
	        offset + distance * scale. The date of a node is the time
	        value followed by the date-suffix.
	- attr  the geographic attributes of the nodes. If metadata is true,
	        and the project has a sequence metadata file, the values of
	        the "region", "country", and "city" columns of the sequence
	        with the name of the node will be used.

Here is an example file, with the default values:

	[time]
	offset = 2000.0
	scale = 100.0
	date-suffix = "-02-13"

	[attr]
	region = "africa"
	country = "nigeria"
	city = "lagos"
	metadata = false

Any undefined value will keep its default.

The recommended way to create a settings file is with the command
'cft add --settings <file>', that will create a file with the default
values, if the file does not exist.
	`,
}

var treeJSONGuide = &command.Command{
	Usage: "tree-json",
	Short: "about the exported tree JSON",
	Long: `
The command 'cft export' writes a tree as a nested JSON object. Each node is
an object with the following fields:

	- strain    the name of the node (null for unnamed nodes)
	- clade     the name of the node (null for unnamed nodes)
	- xvalue    the distance from the root
	- yvalue    the vertical position of the node. Terminals are numbered
	            from the number of terminals down to 1, in the order they
	            are found in preorder. Internal nodes take the mean of
	            their children.
	- tvalue    the time value of the node
	- children  the descendants of the node (absent in terminals)
	- muts      nucleotide mutations (always empty)
	- aa_muts   amino acid mutations (always empty)
	- attr      an object with the node attributes: "region", "country",
	            "city", "num_date" (the time value), "date" (the time
	            value with a date suffix), and "div" (the distance from
	            the root).

The sequences are written as an object in which each key is a sequence
identifier, and the value an object with the field "nuc" with the sequence.
	`,
}
