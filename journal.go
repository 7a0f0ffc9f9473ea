// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// DefaultJournalCapacity is the per-creature ring capacity used by
// WithJournal when capacity is not positive.
const DefaultJournalCapacity = 64

// Meeting describes one merge as seen by the matcher.
type Meeting struct {
	Matcher uint32
	Waiter  uint32
	Before  [2]Color // matcher's and waiter's colors before the merge
	After   Color
}

// Histogram counts meetings by the pair of colors that met,
// indexed [matcher][waiter].
type Histogram [numColors][numColors]uint64

// Total returns the number of meetings counted.
func (h *Histogram) Total() uint64 {
	var n uint64
	for i := range h {
		for j := range h[i] {
			n += h[i][j]
		}
	}
	return n
}

// Count returns how many meetings the unordered pair {a, b} had.
func (h *Histogram) Count(a, b Color) uint64 {
	if !a.inRange() || !b.inRange() {
		return 0
	}
	if a == b {
		return h[a][b]
	}
	return h[a][b] + h[b][a]
}

// journal collects meetings off the hot path.
//
// Every creature owns one bounded SPSC ring: the creature is its only
// producer, the collector goroutine its only consumer. A full ring backs the
// producer off at the iox.ErrWouldBlock boundary.
type journal struct {
	rings []lfq.SPSC[Meeting]
	stop  atomix.Uint32
	done  chan struct{}

	hist    Histogram
	invalid uint64
}

// newJournal allocates rings for creature ids 1..n.
func newJournal(n, capacity int) *journal {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	j := &journal{
		rings: make([]lfq.SPSC[Meeting], n+1),
		done:  make(chan struct{}),
	}
	for i := range j.rings {
		j.rings[i].Init(capacity)
	}
	return j
}

// record pushes m onto the matcher's ring, waiting with adaptive backoff
// while the collector catches up.
func (j *journal) record(m Meeting) {
	q := &j.rings[m.Matcher]
	var bo iox.Backoff
	for {
		err := q.Enqueue(&m)
		if err == nil {
			return
		}
		if !iox.IsWouldBlock(err) {
			violate("journal", "enqueue meeting: %v", err)
		}
		bo.Wait()
	}
}

// collect drains all rings until close is called and the rings are empty.
func (j *journal) collect() {
	defer close(j.done)
	var bo iox.Backoff
	for {
		// stop is read before draining: once it is set no producer is
		// left, so an empty pass after it is final.
		stopping := j.stop.Load() != 0
		if j.drain() > 0 {
			bo.Reset()
			continue
		}
		if stopping {
			return
		}
		bo.Wait()
	}
}

func (j *journal) drain() int {
	n := 0
	for i := range j.rings {
		q := &j.rings[i]
		for {
			m, err := q.Dequeue()
			if err != nil {
				break
			}
			j.add(m)
			n++
		}
	}
	return n
}

func (j *journal) add(m Meeting) {
	a, b := m.Before[0], m.Before[1]
	if !a.inRange() || !b.inRange() {
		j.invalid++
		return
	}
	j.hist[a][b]++
}

// close tells the collector that every producer has returned and waits for
// the final drain.
func (j *journal) close() {
	j.stop.Store(1)
	<-j.done
}
