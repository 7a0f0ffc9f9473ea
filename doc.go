// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rendezvous provides a pairwise meeting place: a fixed group of
// creatures repeatedly pair up, exchange their colors exactly once per
// meeting, and stop when a shared budget of meetings is spent.
//
// # Architecture
//
//   - Matching: one [code.hybscloud.com/atomix.Uint64] packs the remaining budget and the id of the waiting creature. Every pairing decision is a single CAS on it, with no lock.
//   - Parking: the waiter blocks on its own mutex and condition variable. Only the partner that matches it takes that lock, merges both colors and wakes it.
//   - Protocol: each creature runs [Protocol], a [code.hybscloud.com/kont] loop performing the [Meet] effect until the budget is spent.
//   - Journal: optionally ([WithJournal]) every meeting is pushed onto a per-creature bounded SPSC ring from [code.hybscloud.com/lfq], drained by one collector into a [Histogram].
//
// # Merge rule
//
// Two equal colors stay the same, two distinct colors both become the third
// one, and [Invalid] absorbs everything. See [Color.Complement].
//
// # Invariants
//
// Every meeting consumes exactly one unit of budget and increments two
// meeting counters, so a finished [Session] always reports a [Result.Total]
// of twice its budget. A creature can never be matched with itself.
// Violations panic with a [*ProtocolError].
//
// # Example
//
//	s, err := rendezvous.NewSession(600, []rendezvous.Color{rendezvous.Blue, rendezvous.Red, rendezvous.Yellow})
//	if err != nil {
//		return err
//	}
//	r := s.Run()
//	fmt.Println(r.Total()) // 1200
package rendezvous
