// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package settings_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/cft/layout"
	"github.com/js-arias/cft/settings"
)

func TestDefault(t *testing.T) {
	s := settings.Default()
	if p := s.Layout(); p != layout.DefaultParam() {
		t.Errorf("layout: got %+v, want %+v", p, layout.DefaultParam())
	}

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatalf("unable to write settings: %v", err)
	}
	t.Logf("output:\n%s\n", buf.String())

	ns, err := settings.Read(&buf)
	if err != nil {
		t.Fatalf("unable to read settings: %v", err)
	}
	if diff := cmp.Diff(s, ns); diff != "" {
		t.Errorf("read: mismatch (-want +got):\n%s", diff)
	}
}

func TestRead(t *testing.T) {
	in := `
[time]
scale = 10.0

[attr]
city = "ibadan"
metadata = true
`
	s, err := settings.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read settings: %v", err)
	}

	want := settings.Default()
	want.Time.Scale = 10
	want.Attr.City = "ibadan"
	want.Attr.Metadata = true
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("read: mismatch (-want +got):\n%s", diff)
	}
}

func TestReadUnknown(t *testing.T) {
	in := `
[attr]
continent = "africa"
`
	if _, err := settings.Read(strings.NewReader(in)); err == nil {
		t.Errorf("expecting error for unknown key")
	}
}
