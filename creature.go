// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"sync"

	"code.hybscloud.com/kont"
)

// Creature is one worker of a session.
//
// Its mutable state is guarded by its own mutex. The mutex is taken by the
// creature when it parks as the waiter and by the partner that matches it,
// so wake-ups never touch other creatures.
type Creature struct {
	mu   sync.Mutex
	cond sync.Cond

	id      uint32
	initial Color

	color        Color
	meetings     uint64
	sameMeetings uint64
	met          bool
}

// NewCreature returns an unregistered creature carrying c.
func NewCreature(c Color) *Creature {
	cr := &Creature{initial: c, color: c}
	cr.cond.L = &cr.mu
	return cr
}

// ID returns the id assigned by MeetingPlace.Register, or 0 before it.
func (c *Creature) ID() uint32 {
	return c.id
}

// Initial returns the color the creature was created with.
func (c *Creature) Initial() Color {
	return c.initial
}

// Color returns the current color.
func (c *Creature) Color() Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

// Meetings returns how many meetings the creature took part in.
func (c *Creature) Meetings() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.meetings
}

// SameMeetings returns how many times the creature met itself.
// Any non-zero value is a protocol defect.
func (c *Creature) SameMeetings() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sameMeetings
}

// Run drives the pairing protocol against place until the budget is spent.
// It blocks while the creature is the recorded waiter and returns the number
// of meetings the creature took part in.
func (c *Creature) Run(place *MeetingPlace) int {
	h := placeHandler{place: place, c: c}
	return kont.HandleExpr(Protocol(), h)
}

// waitUntilMet parks until a partner has merged with c.
// The flag is checked under the lock that sets it; a partner may finish
// before the creature gets here.
func (c *Creature) waitUntilMet() {
	c.mu.Lock()
	for !c.met {
		c.cond.Wait()
	}
	c.met = false
	c.mu.Unlock()
}
