// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report renders session results as text or JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"code.hybscloud.com/rendezvous"
	"github.com/sugawarayuuta/sonnet"
)

var digits = [...]string{" zero", " one", " two", " three", " four", " five", " six", " seven", " eight", " nine"}

// SpellNumber spells n digit by digit, each word preceded by a space:
// 1200 is " one two zero zero".
func SpellNumber(n uint64) string {
	if n == 0 {
		return digits[0]
	}
	var words []string
	for ; n > 0; n /= 10 {
		words = append(words, digits[n%10])
	}
	var b strings.Builder
	for i := len(words) - 1; i >= 0; i-- {
		b.WriteString(words[i])
	}
	return b.String()
}

// WriteComplements prints the merge table, one "a + b -> c" line per pair.
func WriteComplements(w io.Writer) error {
	colors := rendezvous.Colors()
	for _, a := range colors {
		for _, b := range colors {
			if _, err := fmt.Fprintf(w, "%v + %v -> %v\n", a, b, a.Complement(b)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteText prints the initial colors of r, one line per creature with its
// meeting count and spelled self-meeting count, and the spelled total.
func WriteText(w io.Writer, r rendezvous.Result) error {
	var b strings.Builder
	for _, c := range r.Creatures {
		fmt.Fprintf(&b, " %v", c.Initial)
	}
	b.WriteByte('\n')
	for _, c := range r.Creatures {
		fmt.Fprintf(&b, "%d%s\n", c.Meetings, SpellNumber(c.SameMeetings))
	}
	fmt.Fprintf(&b, "%s\n\n", SpellNumber(r.Total()))
	_, err := io.WriteString(w, b.String())
	return err
}

// Creature is the JSON form of rendezvous.CreatureResult.
type Creature struct {
	ID           uint32 `json:"id"`
	Initial      string `json:"initial"`
	Final        string `json:"final"`
	Meetings     uint64 `json:"meetings"`
	SameMeetings uint64 `json:"sameMeetings"`
}

// Game is the JSON form of one session result.
type Game struct {
	Name      string            `json:"name"`
	Serial    uint32            `json:"serial"`
	Budget    uint64            `json:"budget"`
	Total     uint64            `json:"total"`
	Creatures []Creature        `json:"creatures"`
	Pairs     map[string]uint64 `json:"pairs,omitempty"`
	Affinity  string            `json:"affinityError,omitempty"`
}

// NewGame converts r into its JSON form.
func NewGame(name string, r rendezvous.Result) Game {
	g := Game{
		Name:      name,
		Serial:    r.Serial,
		Budget:    r.Budget,
		Total:     r.Total(),
		Creatures: make([]Creature, len(r.Creatures)),
	}
	for i, c := range r.Creatures {
		g.Creatures[i] = Creature{
			ID:           c.ID,
			Initial:      c.Initial.String(),
			Final:        c.Final.String(),
			Meetings:     c.Meetings,
			SameMeetings: c.SameMeetings,
		}
	}
	if r.Histogram != nil {
		g.Pairs = make(map[string]uint64)
		colors := rendezvous.Colors()
		for i, a := range colors {
			for _, b := range colors[i:] {
				if n := r.Histogram.Count(a, b); n > 0 {
					g.Pairs[a.String()+"+"+b.String()] = n
				}
			}
		}
	}
	if r.AffinityErr != nil {
		g.Affinity = r.AffinityErr.Error()
	}
	return g
}

// WriteJSON encodes games as one JSON document followed by a newline.
func WriteJSON(w io.Writer, games []Game) error {
	data, err := sonnet.Marshal(games)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
