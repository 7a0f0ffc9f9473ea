// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"code.hybscloud.com/atomix"
)

// Outcome is the result of one rendezvous attempt.
type Outcome uint8

const (
	// Done means the budget is spent; no merge happened.
	Done Outcome = iota
	// Matched means the caller found a waiter and merged with it.
	Matched
	// Waited means the caller parked as the waiter and was merged by a partner.
	Waited
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Matched:
		return "matched"
	case Waited:
		return "waited"
	}
	return "unknown"
}

// MeetingPlace pairs creatures until its budget is spent.
//
// The matching decision is a single CAS on a packed word holding the
// remaining budget and the id of the waiting creature. Only the merge and
// the wake-up of the waiter take a lock, and that lock belongs to the two
// creatures involved.
type MeetingPlace struct {
	state  atomix.Uint64
	layout layout

	// creatures is indexed by id. It is written by Register only,
	// before the place is sealed.
	creatures []*Creature
	// sealed is set by the first Rendezvous, or by Session.Run.
	sealed atomix.Uint32

	journal *journal
}

// NewMeetingPlace returns a place for up to n creatures and budget meetings.
func NewMeetingPlace(n int, budget uint64) (*MeetingPlace, error) {
	switch {
	case n < 2:
		return nil, ErrTooFewCreatures
	case n > MaxCreatures:
		return nil, ErrTooManyCreatures
	}
	l := newLayout(n)
	if budget > l.maxBudget() {
		return nil, ErrBudgetOverflow
	}
	p := &MeetingPlace{
		layout:    l,
		creatures: make([]*Creature, 1, n+1),
	}
	p.state.Store(l.pack(budget, 0))
	return p, nil
}

// Register assigns c the next id and records it.
// Register is not safe for concurrent use and must complete before the
// first Rendezvous; registering once the place has started panics.
func (p *MeetingPlace) Register(c *Creature) uint32 {
	switch {
	case p.sealed.Load() != 0:
		violate("register", "place already started")
	case c.id != 0:
		violate("register", "creature %d registered twice", c.id)
	case len(p.creatures) == cap(p.creatures):
		violate("register", "capacity %d exceeded", cap(p.creatures)-1)
	}
	c.id = uint32(len(p.creatures))
	p.creatures = append(p.creatures, c)
	return c.id
}

// seal freezes the creature table.
func (p *MeetingPlace) seal() {
	if p.sealed.Load() == 0 {
		p.sealed.Store(1)
	}
}

// Remaining returns the budget left.
func (p *MeetingPlace) Remaining() uint64 {
	return p.layout.budget(p.state.Load())
}

// Waiting returns the id of the parked creature, 0 if none.
func (p *MeetingPlace) Waiting() uint32 {
	return p.layout.waiter(p.state.Load())
}

// Rendezvous performs one pairing attempt for c.
//
// With budget left and nobody waiting, c becomes the waiter and parks until
// a partner merges with it. With a waiter recorded, c claims one unit of
// budget, clears the waiter and merges with it. With no budget left it
// returns Done immediately.
//
// Rendezvous seals the place, and panics with a *ProtocolError if c is not
// registered on p.
func (p *MeetingPlace) Rendezvous(c *Creature) Outcome {
	p.seal()
	if c.id == 0 || int(c.id) >= len(p.creatures) || p.creatures[c.id] != c {
		violate("rendezvous", "creature %d is not registered on this place", c.id)
	}
	for {
		s := p.state.Load()
		budget, waiting := p.layout.budget(s), p.layout.waiter(s)
		switch {
		case budget == 0:
			if waiting != 0 {
				violate("rendezvous", "creature %d waiting with no budget left", waiting)
			}
			return Done
		case waiting == 0:
			if p.state.CompareAndSwap(s, p.layout.pack(budget, c.id)) {
				c.waitUntilMet()
				return Waited
			}
		default:
			if p.state.CompareAndSwap(s, p.layout.pack(budget-1, 0)) {
				m := p.merge(c, p.lookup(waiting))
				if p.journal != nil {
					p.journal.record(m)
				}
				return Matched
			}
		}
	}
}

func (p *MeetingPlace) lookup(id uint32) *Creature {
	if id == 0 || int(id) >= len(p.creatures) {
		violate("rendezvous", "waiter id %d is not registered", id)
	}
	return p.creatures[id]
}

// merge applies one meeting between matcher a and waiter b and wakes b.
// b's lock is taken first; a is running and cannot be anyone's waiter, so
// its lock is uncontended.
func (p *MeetingPlace) merge(a, b *Creature) Meeting {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a == b {
		// Both sides of the meeting are the same creature, already locked.
		a.sameMeetings += 2
		return Meeting{Matcher: a.id, Waiter: b.id, Before: [2]Color{a.color, a.color}, After: a.color}
	}

	a.mu.Lock()
	m := Meeting{Matcher: a.id, Waiter: b.id, Before: [2]Color{a.color, b.color}}
	m.After = a.color.Complement(b.color)
	a.color, b.color = m.After, m.After
	a.meetings++
	b.meetings++
	a.mu.Unlock()

	b.met = true
	b.cond.Signal()
	return m
}
