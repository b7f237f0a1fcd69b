// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tyenum

import (
	"reflect"
	"runtime"
)

// Arm is a per-entry transformation taking the payload by value.
// Build with [On]; used by [MatchMove] and [MatchRef].
type Arm[Out any] struct {
	payload reflect.Type
	call    func(p any) Out
}

// MutArm is a per-entry transformation taking a pointer into the container's
// storage. Build with [OnMut]; used by [MatchMut].
type MutArm[Out any] struct {
	payload reflect.Type
	call    func(p any) Out
}

func (a Arm[Out]) payloadType() reflect.Type    { return a.payload }
func (a MutArm[Out]) payloadType() reflect.Type { return a.payload }

// On builds an arm for the entry whose payload type is V.
func On[V, Out any](f func(V) Out) Arm[Out] {
	return Arm[Out]{
		payload: reflect.TypeFor[V](),
		call:    func(p any) Out { return f(*p.(*V)) },
	}
}

// OnMut builds a mutating arm for the entry whose payload type is V.
func OnMut[V, Out any](f func(*V) Out) MutArm[Out] {
	return MutArm[Out]{
		payload: reflect.TypeFor[V](),
		call:    func(p any) Out { return f(p.(*V)) },
	}
}

// pick validates arms against the schema and returns the arm of the
// active entry.
//
// Arms are positional: arms[i] must take the payload type of entry i, and
// every entry must have an arm. The active entry is the only one whose
// marker equals the container's, so exactly one arm is selected.
func pick[A interface{ payloadType() reflect.Type }](c *cell, op string, arms []A) A {
	s := c.schema
	if len(arms) != len(s.cases) {
		fail(newError(KindExhaustive, s, "%s takes %d arms, got %d", op, len(s.cases), len(arms)))
	}
	for i, a := range arms {
		if t := a.payloadType(); t != s.cases[i].payload {
			fail(newError(KindExhaustive, s, "%s arm %d takes %v, entry %q holds %s",
				op, i, t, s.cases[i].binding, s.cases[i].payload))
		}
	}
	return arms[c.index]
}

// MatchMove discharges e, moving its payload into the arm of the active
// entry, and returns that arm's result. One arm per schema entry must be
// given, in declaration order.
//
// The payload's cleanup does not run: ownership passes to the arm.
// Any later use of e other than [Enum.Drop] and the accessors panics.
func MatchMove[K, Out any](e *Enum[K], arms ...Arm[Out]) Out {
	const op = "MatchMove"
	c := e.c
	c.live(op)
	a := pick(c, op, arms)
	c.unborrowed(op)
	if !c.state.CompareAndSwap(stateLive, stateMoved) {
		fail(newError(KindDischarged, c.schema, "%s on a discharged container", op))
	}
	e.cleanup.Stop()
	p := c.payload
	c.payload = nil
	return a.call(p)
}

// MatchRef passes a copy of e's payload to the arm of the active entry and
// returns that arm's result. e keeps its payload unchanged.
func MatchRef[K, Out any](e *Enum[K], arms ...Arm[Out]) Out {
	const op = "MatchRef"
	c := e.c
	c.live(op)
	a := pick(c, op, arms)
	c.share(op)
	defer c.unshare()
	defer runtime.KeepAlive(e)
	return a.call(c.payload)
}

// MatchMut passes a pointer to e's payload to the arm of the active entry
// and returns that arm's result. Changes made through the pointer are seen
// by later matches. The pointer must not be retained past the arm.
func MatchMut[K, Out any](e *Enum[K], arms ...MutArm[Out]) Out {
	const op = "MatchMut"
	c := e.c
	c.live(op)
	a := pick(c, op, arms)
	c.lock(op)
	defer c.unlock()
	defer runtime.KeepAlive(e)
	return a.call(c.payload)
}
