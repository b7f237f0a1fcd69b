// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tyenum

import (
	"reflect"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
)

// Lifecycle states of a cell. Moved and dropped are terminal.
const (
	stateLive uint32 = iota
	stateMoved
	stateDropped
)

// cell owns the active payload of one container.
// It never references its Enum, so the collector can reclaim the Enum
// and hand the cell to reclaim.
type cell struct {
	schema  *Schema
	index   int
	state   atomic.Uint32
	borrows atomic.Int32 // n > 0 shared borrows, -1 mutable borrow
	payload any          // *V of the active entry
}

// Enum is a container holding exactly one payload: the one declared for
// marker K in its schema. K is a phantom type parameter and is never stored.
//
// An Enum is single-owner. It is discharged exactly once, either by
// [MatchMove], which transfers the payload out, or by [Enum.Drop], which
// releases it. A live Enum that becomes unreachable is dropped by the
// collector.
type Enum[K any] struct {
	c       *cell
	cleanup runtime.Cleanup
}

// New builds a container for marker K holding v.
//
// New panics with a [KindMismatch] error when s declares no entry binding
// K to payload type V. Use [TryNew] for a recoverable check, or [Of] to
// check the binding at compile time.
func New[K, V any](s *Schema, v V) *Enum[K] {
	e, err := construct[K](s, v)
	if err != nil {
		s.logger().Error("construction mismatch", zap.Error(err))
		fail(err)
	}
	return e
}

// TryNew is like [New] but returns a [KindMismatch] error instead of
// panicking.
func TryNew[K, V any](s *Schema, v V) (*Enum[K], error) {
	e, err := construct[K](s, v)
	if err != nil {
		s.logger().Debug("construction rejected", zap.Error(err))
		return nil, err
	}
	return e, nil
}

// Of builds a container for a marker that names its payload type through
// [Key]. The compiler rejects a value whose type is not the one K names.
func Of[K Key[K, V], V any](s *Schema, v V) *Enum[K] {
	return New[K](s, v)
}

func construct[K, V any](s *Schema, v V) (*Enum[K], *Error) {
	marker, payload := reflect.TypeFor[K](), reflect.TypeFor[V]()
	i, ok := s.resolve(marker, payload)
	if !ok {
		return nil, mismatch(s, marker, payload)
	}
	p := new(V)
	*p = v
	c := &cell{schema: s, index: i, payload: p}
	e := &Enum[K]{c: c}
	e.cleanup = runtime.AddCleanup(e, reclaim, c)
	return e, nil
}

// reclaim drops the payload of a container the collector found unreachable.
func reclaim(c *cell) {
	if !c.state.CompareAndSwap(stateLive, stateDropped) {
		return
	}
	c.schema.logger().Debug("container reclaimed without Drop",
		zap.String("schema", c.schema.name),
		zap.String("binding", c.schema.cases[c.index].binding))
	c.release()
}

// release runs the active entry's cleanup on the stored payload.
func (c *cell) release() {
	p := c.payload
	c.payload = nil
	c.schema.cases[c.index].drop(p)
}

// live panics unless the cell still owns its payload.
func (c *cell) live(op string) {
	if c.state.Load() != stateLive {
		fail(newError(KindDischarged, c.schema, "%s on a discharged container", op))
	}
}

// share acquires a shared borrow.
func (c *cell) share(op string) {
	for {
		n := c.borrows.Load()
		if n < 0 {
			fail(newError(KindBorrow, c.schema, "%s while mutably borrowed", op))
		}
		if c.borrows.CompareAndSwap(n, n+1) {
			return
		}
	}
}

func (c *cell) unshare() { c.borrows.Add(-1) }

// lock acquires the mutable borrow.
func (c *cell) lock(op string) {
	if !c.borrows.CompareAndSwap(0, -1) {
		fail(newError(KindBorrow, c.schema, "%s while borrowed", op))
	}
}

func (c *cell) unlock() { c.borrows.Store(0) }

// unborrowed panics while any borrow is outstanding.
func (c *cell) unborrowed(op string) {
	if c.borrows.Load() != 0 {
		fail(newError(KindBorrow, c.schema, "%s while borrowed", op))
	}
}

// Drop releases the payload exactly once. Later calls, and calls after
// [MatchMove], do nothing, as does Drop on a nil container, so the result
// of a failed [TryNew] may be dropped unconditionally. Drop panics with a [KindBorrow] error when called
// from inside a match arm of the same container.
func (e *Enum[K]) Drop() {
	if e == nil {
		return
	}
	c := e.c
	c.unborrowed("Drop")
	if !c.state.CompareAndSwap(stateLive, stateDropped) {
		return
	}
	e.cleanup.Stop()
	c.release()
}

// Live reports whether the container still owns its payload.
func (e *Enum[K]) Live() bool {
	return e.c.state.Load() == stateLive
}

// Binding returns the binding name of the active entry.
func (e *Enum[K]) Binding() string {
	return e.c.schema.cases[e.c.index].binding
}

// Schema returns the schema the container was built from.
func (e *Enum[K]) Schema() *Schema {
	return e.c.schema
}
