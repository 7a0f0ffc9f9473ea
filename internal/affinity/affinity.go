// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package affinity groups the CPUs available to the process into slots and
// pins creature threads to them.
//
// Slot 0 means "no pinning". Slot k > 0 maps onto one group of PerSlot
// CPUs, wrapping around when there are fewer groups than slots. Pinning is
// only attempted when at least MinCPUs are available.
package affinity

const (
	// PerSlot is the number of CPUs in one slot.
	PerSlot = 2
	// MinCPUs is the smallest CPU count for which pinning is worth it.
	MinCPUs = 4
)

// groups returns the number of distinct slots for count CPUs.
func groups(count int) int {
	if count > PerSlot {
		return count / PerSlot
	}
	return 1
}
