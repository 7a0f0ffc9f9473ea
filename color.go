// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"errors"
	"fmt"
)

// Color is the payload a creature carries between meetings.
// The set is closed: every combination of two colors is again a Color.
type Color uint8

const (
	Blue Color = iota
	Red
	Yellow
	// Invalid is absorbing: combining it with any color yields Invalid.
	Invalid
)

// numColors is the size of the complement table, Invalid included.
const numColors = int(Invalid) + 1

// ErrUnknownColor is returned by ParseColor for names outside the palette.
var ErrUnknownColor = errors.New("rendezvous: unknown color")

var colorNames = [numColors]string{
	Blue:    "blue",
	Red:     "red",
	Yellow:  "yellow",
	Invalid: "Invalid",
}

// complement is symmetric: complement[a][b] == complement[b][a].
var complement = [numColors][numColors]Color{
	Blue:    {Blue: Blue, Red: Yellow, Yellow: Red, Invalid: Invalid},
	Red:     {Blue: Yellow, Red: Red, Yellow: Blue, Invalid: Invalid},
	Yellow:  {Blue: Red, Red: Blue, Yellow: Yellow, Invalid: Invalid},
	Invalid: {Blue: Invalid, Red: Invalid, Yellow: Invalid, Invalid: Invalid},
}

// Colors returns the three valid colors in table order.
func Colors() []Color {
	return []Color{Blue, Red, Yellow}
}

// Complement returns the color both creatures take after meeting.
// Equal colors are preserved; two distinct colors give the third one.
// Out-of-range values are treated as Invalid.
func (c Color) Complement(other Color) Color {
	if !c.inRange() || !other.inRange() {
		return Invalid
	}
	return complement[c][other]
}

// Valid reports whether c is one of Blue, Red or Yellow.
func (c Color) Valid() bool {
	return c < Invalid
}

func (c Color) inRange() bool {
	return int(c) < numColors
}

func (c Color) String() string {
	if !c.inRange() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// MarshalText encodes c by name.
func (c Color) MarshalText() ([]byte, error) {
	if !c.inRange() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText decodes a color name accepted by ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor returns the valid color named s.
func ParseColor(s string) (Color, error) {
	for _, c := range Colors() {
		if colorNames[c] == s {
			return c, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
