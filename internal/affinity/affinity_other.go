// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package affinity

import "runtime"

// Set reports the CPU count only; thread pinning is not supported here.
type Set struct {
	count int
}

// Load returns a Set sized by runtime.NumCPU.
func Load() (*Set, error) {
	return &Set{count: runtime.NumCPU()}, nil
}

// Count returns the number of usable CPUs.
func (s *Set) Count() int {
	return s.count
}

// Pinner always returns nil.
func (s *Set) Pinner(int) func() error {
	return nil
}
