// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"code.hybscloud.com/kont"
)

// Meet is the effect operation for one rendezvous attempt.
// Perform(Meet{}) resumes with the Outcome of the attempt.
type Meet struct {
	kont.Phantom[Outcome]
}

// outcomes are pre-boxed Resumed values, so dispatching Meet never
// allocates when boxing the Outcome into kont.Resumed.
var outcomes = [...]kont.Resumed{
	Done:    Done,
	Matched: Matched,
	Waited:  Waited,
}

// placeHandler implements kont.Handler for Meet on behalf of one creature.
// Value type: passed to the evaluator on the stack.
type placeHandler struct {
	place *MeetingPlace
	c     *Creature
}

// Dispatch implements kont.Handler. Meet blocks while the creature is the
// recorded waiter.
func (h placeHandler) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if _, ok := op.(Meet); !ok {
		panic("rendezvous: unhandled effect in placeHandler")
	}
	return outcomes[h.place.Rendezvous(h.c)], true
}
