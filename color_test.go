// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/rendezvous"
)

var allColors = []rendezvous.Color{rendezvous.Blue, rendezvous.Red, rendezvous.Yellow, rendezvous.Invalid}

func TestComplementTable(t *testing.T) {
	tests := []struct {
		a, b, want rendezvous.Color
	}{
		{rendezvous.Blue, rendezvous.Blue, rendezvous.Blue},
		{rendezvous.Blue, rendezvous.Red, rendezvous.Yellow},
		{rendezvous.Blue, rendezvous.Yellow, rendezvous.Red},
		{rendezvous.Red, rendezvous.Red, rendezvous.Red},
		{rendezvous.Red, rendezvous.Yellow, rendezvous.Blue},
		{rendezvous.Yellow, rendezvous.Yellow, rendezvous.Yellow},
		{rendezvous.Invalid, rendezvous.Blue, rendezvous.Invalid},
		{rendezvous.Yellow, rendezvous.Invalid, rendezvous.Invalid},
	}
	for _, tt := range tests {
		if got := tt.a.Complement(tt.b); got != tt.want {
			t.Fatalf("%v + %v got %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestComplementSymmetric(t *testing.T) {
	for _, a := range allColors {
		for _, b := range allColors {
			if a.Complement(b) != b.Complement(a) {
				t.Fatalf("%v + %v = %v but %v + %v = %v", a, b, a.Complement(b), b, a, b.Complement(a))
			}
		}
	}
}

func TestComplementClosed(t *testing.T) {
	for _, a := range allColors {
		for _, b := range allColors {
			got := a.Complement(b)
			if got != rendezvous.Invalid && !got.Valid() {
				t.Fatalf("%v + %v = %d outside the palette", a, b, got)
			}
		}
	}
	if got := rendezvous.Color(200).Complement(rendezvous.Blue); got != rendezvous.Invalid {
		t.Fatalf("out of range got %v, want Invalid", got)
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range rendezvous.Colors() {
		got, err := rendezvous.ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.String(), err)
		}
		if got != c {
			t.Fatalf("ParseColor(%q) got %v, want %v", c.String(), got, c)
		}
	}
	if _, err := rendezvous.ParseColor("green"); !errors.Is(err, rendezvous.ErrUnknownColor) {
		t.Fatalf("ParseColor(green) err %v, want ErrUnknownColor", err)
	}
	if _, err := rendezvous.ParseColor("Invalid"); !errors.Is(err, rendezvous.ErrUnknownColor) {
		t.Fatalf("ParseColor(Invalid) err %v, want ErrUnknownColor", err)
	}
}

func TestColorText(t *testing.T) {
	text, err := rendezvous.Yellow.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "yellow" {
		t.Fatalf("MarshalText got %q, want %q", text, "yellow")
	}
	var c rendezvous.Color
	if err := c.UnmarshalText([]byte("red")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != rendezvous.Red {
		t.Fatalf("UnmarshalText got %v, want red", c)
	}
	if _, err := rendezvous.Color(9).MarshalText(); err == nil {
		t.Fatal("expected error for out of range color")
	}
	if s := rendezvous.Color(9).String(); s != "Color(9)" {
		t.Fatalf("String got %q", s)
	}
}
