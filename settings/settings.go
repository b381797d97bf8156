// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package settings implements reading and writing
// of the settings used to export a tree.
//
// Settings are stored in a TOML file.
// Here is an example file
// (with the default values):
//
//	[time]
//	offset = 2000.0
//	scale = 100.0
//	date-suffix = "-02-13"
//
//	[attr]
//	region = "africa"
//	country = "nigeria"
//	city = "lagos"
//	metadata = false
//
// Any undefined value will keep its default.
package settings

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/js-arias/cft/layout"
)

// Time contains the parameters
// used to transform distances from the root
// into time values.
type Time struct {
	// Time value of the root.
	Offset float64 `toml:"offset"`

	// Time units per branch length unit.
	Scale float64 `toml:"scale"`

	// Suffix added to the time value
	// to build a date.
	DateSuffix string `toml:"date-suffix"`
}

// Attr contains the values used
// for the geographic attributes of the nodes.
type Attr struct {
	Region  string `toml:"region"`
	Country string `toml:"country"`
	City    string `toml:"city"`

	// If set, geographic attributes are read
	// from the sequence metadata
	// when available.
	Metadata bool `toml:"metadata"`
}

// Settings is the set of parameters
// used to export a tree.
type Settings struct {
	Time Time `toml:"time"`
	Attr Attr `toml:"attr"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Time: Time{
			Offset:     layout.DefaultOffset,
			Scale:      layout.DefaultScale,
			DateSuffix: "-02-13",
		},
		Attr: Attr{
			Region:  "africa",
			Country: "nigeria",
			City:    "lagos",
		},
	}
}

// Read reads settings from a TOML file.
// Values not defined in the file
// keep their default values.
func Read(r io.Reader) (Settings, error) {
	s := Default()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Settings{}, err
	}
	if un := md.Undecoded(); len(un) > 0 {
		return Settings{}, fmt.Errorf("unknown key %q", un[0].String())
	}
	return s, nil
}

// Write writes the settings into a TOML file.
func (s Settings) Write(w io.Writer) error {
	fmt.Fprintf(w, "# tree export settings\n")
	return toml.NewEncoder(w).Encode(s)
}

// Layout returns the layout parameters.
func (s Settings) Layout() layout.Param {
	return layout.Param{
		Offset: s.Time.Offset,
		Scale:  s.Time.Scale,
	}
}
