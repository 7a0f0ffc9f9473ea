// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package affinity

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// cpuSetBits is the number of CPUs a unix.CPUSet can describe.
const cpuSetBits = int(unsafe.Sizeof(unix.CPUSet{})) * 8

// Set is the process CPU mask split into slots of PerSlot CPUs.
type Set struct {
	count  int
	groups []unix.CPUSet
}

// Load reads the CPUs the calling process may run on.
func Load() (*Set, error) {
	var avail unix.CPUSet
	if err := unix.SchedGetaffinity(0, &avail); err != nil {
		return nil, fmt.Errorf("sched_getaffinity: %w", err)
	}
	s := &Set{}
	for cpu := range cpuSetBits {
		if !avail.IsSet(cpu) {
			continue
		}
		g := s.count / PerSlot
		if g == len(s.groups) {
			s.groups = append(s.groups, unix.CPUSet{})
		}
		s.groups[g].Set(cpu)
		s.count++
	}
	return s, nil
}

// Count returns the number of usable CPUs.
func (s *Set) Count() int {
	return s.count
}

// Pinner returns a function pinning the calling OS thread to slot, or nil
// when slot is 0 or there are too few CPUs to bother.
// The caller must have locked the goroutine to its thread.
func (s *Set) Pinner(slot int) func() error {
	if slot <= 0 || s.count < MinCPUs {
		return nil
	}
	set := s.groups[slot%groups(s.count)]
	return func() error {
		// pid 0 is the calling thread.
		if err := unix.SchedSetaffinity(0, &set); err != nil {
			return fmt.Errorf("sched_setaffinity slot %d: %w", slot, err)
		}
		return nil
	}
}
