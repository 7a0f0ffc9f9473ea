// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous_test

import (
	"testing"
	"time"

	"code.hybscloud.com/rendezvous"
)

func TestJournalHistogram(t *testing.T) {
	skipRace(t)
	r := runWithin(t, newSession(t, 10000, tenColors, rendezvous.WithJournal(0)), 30*time.Second)
	if r.Histogram == nil {
		t.Fatal("expected histogram")
	}
	if got := r.Histogram.Total(); got != 10000 {
		t.Fatalf("histogram total got %d, want 10000", got)
	}
	var pairs uint64
	colors := rendezvous.Colors()
	for i, a := range colors {
		for _, b := range colors[i:] {
			pairs += r.Histogram.Count(a, b)
		}
	}
	if pairs != 10000 {
		t.Fatalf("pair counts sum to %d, want 10000", pairs)
	}
}

func TestJournalBackpressure(t *testing.T) {
	skipRace(t)
	// Capacity 2 forces matchers onto the backoff path.
	r := runWithin(t, newSession(t, 5000, threeColors, rendezvous.WithJournal(2)), 30*time.Second)
	if got := r.Histogram.Total(); got != 5000 {
		t.Fatalf("histogram total got %d, want 5000", got)
	}
}

func TestJournalIdenticalSeeds(t *testing.T) {
	skipRace(t)
	colors := []rendezvous.Color{rendezvous.Red, rendezvous.Red, rendezvous.Red, rendezvous.Red}
	r := runWithin(t, newSession(t, 400, colors, rendezvous.WithJournal(8)), 30*time.Second)
	if got := r.Histogram.Count(rendezvous.Red, rendezvous.Red); got != 400 {
		t.Fatalf("red/red got %d, want 400", got)
	}
	if got := r.Histogram.Count(rendezvous.Red, rendezvous.Blue); got != 0 {
		t.Fatalf("red/blue got %d, want 0", got)
	}
}

func TestWithoutJournalNoHistogram(t *testing.T) {
	r := runWithin(t, newSession(t, 10, threeColors), 10*time.Second)
	if r.Histogram != nil {
		t.Fatal("histogram set without journal")
	}
}
