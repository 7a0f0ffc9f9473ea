// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"code.hybscloud.com/atomix"
)

// Serial is a monotonically increasing session identifier.
type Serial = uint32

var serials atomix.Uint32

// Pinner is called on the locked OS thread of every creature before it
// starts meeting. It is an optimization hook only; a failing Pinner does not
// stop the session.
type Pinner func() error

// Option configures a Session.
type Option func(*Session)

// WithAffinity runs each creature on a locked OS thread and calls pin on it.
// A nil pin leaves scheduling to the runtime.
func WithAffinity(pin Pinner) Option {
	return func(s *Session) {
		s.pin = pin
	}
}

// WithJournal records every meeting on per-creature lock-free rings of the
// given capacity and reports a color Histogram in the Result.
func WithJournal(capacity int) Option {
	return func(s *Session) {
		s.journalCapacity = capacity
		s.journaled = true
	}
}

// Session is a fixed group of creatures sharing one MeetingPlace and one
// budget. A Session runs exactly once.
type Session struct {
	serial    Serial
	budget    uint64
	place     *MeetingPlace
	creatures []*Creature

	pin             Pinner
	journaled       bool
	journalCapacity int

	ran bool
}

// NewSession creates a session of len(colors) creatures, one per initial
// color, and registers them on a new meeting place holding budget meetings.
func NewSession(budget uint64, colors []Color, opts ...Option) (*Session, error) {
	place, err := NewMeetingPlace(len(colors), budget)
	if err != nil {
		return nil, err
	}
	s := &Session{
		serial:    serials.Add(1),
		budget:    budget,
		place:     place,
		creatures: make([]*Creature, len(colors)),
	}
	for _, opt := range opts {
		opt(s)
	}
	for i, c := range colors {
		s.creatures[i] = NewCreature(c)
		place.Register(s.creatures[i])
	}
	if s.journaled {
		place.journal = newJournal(len(colors), s.journalCapacity)
	}
	return s, nil
}

// Serial returns the serial number assigned to this session.
func (s *Session) Serial() Serial {
	return s.serial
}

// Budget returns the configured number of meetings.
func (s *Session) Budget() uint64 {
	return s.budget
}

// Creatures returns the creatures in registration order.
func (s *Session) Creatures() []*Creature {
	return s.creatures
}

// Run starts one goroutine per creature, waits for all of them to finish and
// returns the aggregated result.
//
// Run panics with a *ProtocolError if the result breaks the meeting
// accounting, and if the session has already run.
func (s *Session) Run() Result {
	if s.ran {
		panic("rendezvous: session already run")
	}
	s.ran = true
	s.place.seal()

	j := s.place.journal
	if j != nil {
		go j.collect()
	}

	pinErrs := make([]error, len(s.creatures))
	var wg sync.WaitGroup
	for i, c := range s.creatures {
		wg.Go(func() {
			if s.pin != nil {
				// Left locked: a pinned thread exits with its goroutine
				// instead of returning to the scheduler with a narrowed mask.
				runtime.LockOSThread()
				pinErrs[i] = s.pin()
			}
			c.Run(s.place)
		})
	}
	wg.Wait()

	r := Result{
		Serial:      s.serial,
		Budget:      s.budget,
		Creatures:   make([]CreatureResult, len(s.creatures)),
		AffinityErr: errors.Join(pinErrs...),
	}
	for i, c := range s.creatures {
		r.Creatures[i] = CreatureResult{
			ID:           c.ID(),
			Initial:      c.Initial(),
			Final:        c.Color(),
			Meetings:     c.Meetings(),
			SameMeetings: c.SameMeetings(),
		}
	}
	if j != nil {
		j.close()
		h := j.hist
		r.Histogram = &h
		r.unrecorded = j.invalid
	}
	if err := r.Verify(); err != nil {
		panic(err)
	}
	if w := s.place.Waiting(); w != 0 || s.place.Remaining() != 0 {
		violate("run", "place left with budget %d and waiter %d", s.place.Remaining(), w)
	}
	return r
}

// CreatureResult is the final state of one creature.
type CreatureResult struct {
	ID           uint32
	Initial      Color
	Final        Color
	Meetings     uint64
	SameMeetings uint64
}

// Result is the outcome of a session run.
type Result struct {
	Serial    Serial
	Budget    uint64
	Creatures []CreatureResult

	// Histogram is set when the session was created WithJournal.
	Histogram *Histogram

	// AffinityErr joins the errors of a failing Pinner, if any.
	AffinityErr error

	unrecorded uint64
}

// Total returns the sum of meetings over all creatures. Every meeting counts
// twice, once per participant.
func (r Result) Total() uint64 {
	var n uint64
	for _, c := range r.Creatures {
		n += c.Meetings
	}
	return n
}

// SameTotal returns the sum of self-meetings over all creatures.
func (r Result) SameTotal() uint64 {
	var n uint64
	for _, c := range r.Creatures {
		n += c.SameMeetings
	}
	return n
}

// Verify checks the meeting accounting of r and returns a *ProtocolError
// describing the first violation.
func (r Result) Verify() error {
	if n := r.SameTotal(); n != 0 {
		return &ProtocolError{Op: "verify", Detail: fmt.Sprintf("creatures met themselves %d times", n)}
	}
	if n := r.Total(); n != 2*r.Budget {
		return &ProtocolError{Op: "verify", Detail: fmt.Sprintf("counted %d meetings, want %d", n, 2*r.Budget)}
	}
	if r.Histogram != nil {
		if n := r.Histogram.Total() + r.unrecorded; n != r.Budget {
			return &ProtocolError{Op: "verify", Detail: fmt.Sprintf("journal recorded %d meetings, want %d", n, r.Budget)}
		}
	}
	return nil
}
