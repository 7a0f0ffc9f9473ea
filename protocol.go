// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"code.hybscloud.com/kont"
)

// exprMeet is the pre-boxed Meet operation.
var exprMeet kont.Erased = Meet{}

func identityResume(v kont.Erased) kont.Erased { return v }

// Protocol is the pairing protocol of a single creature: attempt a
// rendezvous, repeat until the attempt reports Done. It evaluates to the
// number of attempts that ended in a meeting.
//
// There is no backoff here; contention is resolved by the meeting place.
func Protocol() kont.Expr[int] {
	return attempt(0)
}

// attempt suspends on one Meet with met meetings counted so far. The
// continuation is a single unwind frame, so each round costs one effect
// frame and one unwind frame and no closures.
func attempt(met int) kont.Expr[int] {
	uf := kont.AcquireUnwindFrame()
	uf.Data1 = met
	uf.Unwind = afterMeet
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprMeet
	ef.Resume = identityResume
	ef.Next = uf
	return kont.ExprSuspend[int](ef)
}

// afterMeet ends the protocol on Done and schedules the next attempt
// otherwise. The next attempt is returned as a frame for the evaluator to
// run, so the stack stays flat however many meetings there are.
func afterMeet(data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	met := data.(int)
	if current.(Outcome) == Done {
		return kont.Erased(met), kont.ReturnFrame{}
	}
	next := attempt(met + 1)
	return kont.Erased(next.Value), next.Frame
}
