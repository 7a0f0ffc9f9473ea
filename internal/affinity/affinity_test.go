// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package affinity

import (
	"runtime"
	"testing"
)

func TestGroups(t *testing.T) {
	tests := []struct{ count, want int }{
		{1, 1}, {2, 1}, {3, 1}, {4, 2}, {8, 4}, {9, 4},
	}
	for _, tt := range tests {
		if got := groups(tt.count); got != tt.want {
			t.Fatalf("groups(%d) got %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Count() < 1 {
		t.Fatalf("count got %d, want at least 1", s.Count())
	}
	if s.Pinner(0) != nil {
		t.Fatal("slot 0 must not pin")
	}
}

func TestPinnerOnLockedThread(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pin := s.Pinner(1)
	if pin == nil {
		t.Skipf("no pinning with %d CPUs", s.Count())
	}
	done := make(chan error, 1)
	go func() {
		// Never unlocked: the pinned thread exits with the goroutine.
		runtime.LockOSThread()
		done <- pin()
	}()
	if err := <-done; err != nil {
		// Containers may forbid changing the mask.
		t.Logf("pin: %v", err)
	}
}
