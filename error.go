// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"errors"
	"fmt"
)

// Construction errors returned by NewSession.
var (
	ErrTooFewCreatures  = errors.New("rendezvous: at least two creatures are required")
	ErrTooManyCreatures = errors.New("rendezvous: too many creatures")
	ErrBudgetOverflow   = errors.New("rendezvous: budget does not fit the state word")
)

// ProtocolError reports a broken rendezvous invariant.
// It is never returned: it is the panic value raised by the meeting place
// and by Session.Run, since a run that violated the protocol has no
// meaningful result.
type ProtocolError struct {
	Op     string
	Detail string
}

func (e *ProtocolError) Error() string {
	return "rendezvous: " + e.Op + ": " + e.Detail
}

// violate panics with a ProtocolError.
func violate(op, format string, args ...any) {
	panic(&ProtocolError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
