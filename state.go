// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import "math/bits"

// MaxCreatures bounds the number of creatures sharing one meeting place.
// Ids must fit in the low bits of the packed state word.
const MaxCreatures = 1<<16 - 1

// layout describes how the meeting place state word is packed:
//
//	budget << shift | waiter
//
// waiter is the id of the parked creature, 0 when nobody waits.
type layout struct {
	shift uint
	mask  uint64
}

// newLayout sizes the waiter field so that ids 1..n fit.
func newLayout(n int) layout {
	shift := uint(bits.Len(uint(n)))
	return layout{shift: shift, mask: 1<<shift - 1}
}

// maxBudget is the largest budget representable above the waiter field.
func (l layout) maxBudget() uint64 {
	return ^uint64(0) >> l.shift
}

func (l layout) pack(budget uint64, waiter uint32) uint64 {
	return budget<<l.shift | uint64(waiter)
}

func (l layout) budget(s uint64) uint64 {
	return s >> l.shift
}

func (l layout) waiter(s uint64) uint32 {
	return uint32(s & l.mask)
}
