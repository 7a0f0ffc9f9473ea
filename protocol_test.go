// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/rendezvous"
)

func TestProtocolInspectOperation(t *testing.T) {
	_, susp := kont.StepExpr(rendezvous.Protocol())
	if susp == nil {
		t.Fatal("expected suspension for Meet")
	}
	if _, ok := susp.Op().(rendezvous.Meet); !ok {
		t.Fatalf("expected Meet, got %T", susp.Op())
	}
	susp.Discard()
}

func TestProtocolStepping(t *testing.T) {
	// Resume with two meetings and then Done.
	result, susp := kont.StepExpr(rendezvous.Protocol())
	for _, o := range []rendezvous.Outcome{rendezvous.Matched, rendezvous.Waited, rendezvous.Done} {
		if susp == nil {
			t.Fatalf("protocol finished early with %d", result)
		}
		result, susp = susp.Resume(o)
	}
	if susp != nil {
		t.Fatal("expected completion after Done")
	}
	if result != 2 {
		t.Fatalf("protocol got %d, want 2", result)
	}
}

func TestProtocolSteppingManyRounds(t *testing.T) {
	const rounds = 100000
	result, susp := kont.StepExpr(rendezvous.Protocol())
	for i := 0; i < rounds; i++ {
		if susp == nil {
			t.Fatalf("protocol finished early at round %d with %d", i, result)
		}
		result, susp = susp.Resume(rendezvous.Matched)
	}
	result, susp = susp.Resume(rendezvous.Done)
	if susp != nil {
		t.Fatal("expected completion after Done")
	}
	if result != rounds {
		t.Fatalf("protocol got %d, want %d", result, rounds)
	}
}

func TestCreatureRunUnregisteredPanics(t *testing.T) {
	place, err := rendezvous.NewMeetingPlace(2, 1)
	if err != nil {
		t.Fatalf("NewMeetingPlace: %v", err)
	}
	place.Register(rendezvous.NewCreature(rendezvous.Blue))
	defer func() {
		var pe *rendezvous.ProtocolError
		r := recover()
		if err, ok := r.(error); !ok || !errors.As(err, &pe) || pe.Op != "rendezvous" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	rendezvous.NewCreature(rendezvous.Red).Run(place)
}

func TestCreatureRunCountsMeetings(t *testing.T) {
	place, err := rendezvous.NewMeetingPlace(4, 1000)
	if err != nil {
		t.Fatalf("NewMeetingPlace: %v", err)
	}
	cs := make([]*rendezvous.Creature, 4)
	for i := range cs {
		cs[i] = rendezvous.NewCreature(rendezvous.Colors()[i%3])
		place.Register(cs[i])
	}
	runs := make([]int, len(cs))
	var wg sync.WaitGroup
	for i, c := range cs {
		wg.Go(func() { runs[i] = c.Run(place) })
	}
	wg.Wait()

	var total uint64
	for i, c := range cs {
		if uint64(runs[i]) != c.Meetings() {
			t.Fatalf("creature %d ran %d meetings, counted %d", c.ID(), runs[i], c.Meetings())
		}
		total += c.Meetings()
	}
	if total != 2000 {
		t.Fatalf("total got %d, want 2000", total)
	}
	if place.Remaining() != 0 || place.Waiting() != 0 {
		t.Fatalf("place left with budget %d and waiter %d", place.Remaining(), place.Waiting())
	}
}
