// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tyenum provides marker-keyed variant containers in Go.
//
// A [Schema] declares a closed set of entries, each binding a marker type to
// a payload type. An [Enum] parameterized by marker K holds exactly one
// payload: the one its schema declares for K. Generic code that is itself
// parameterized by a marker can carry such a value without knowing its
// concrete shape, and recover the shape through positional match arms.
//
// # Schema Declaration
//
//   - [Entry]: Declare a (marker, binding, payload) entry
//   - [EntryFunc]: Declare an entry with an explicit payload cleanup
//   - [Define], [DefineWith]: Build and validate a schema
//   - [WithLogger]: Attach a structured logger to a schema
//
// Schemas can also be generated from a declarative file by the tyenumgen
// command, which emits the schema variable and match helpers whose
// parameters carry the binding names.
//
// # Construction
//
//   - [New]: Build a container; panics on an undeclared marker/payload pair
//   - [TryNew]: Like New, returning a [KindMismatch] error instead
//   - [Of]: Build a container for a marker embedding [Tag], checked at compile time
//   - [With]: Build a container dropped when a scope ends
//
// # Matching
//
// Every match takes one arm per schema entry, in declaration order. Exactly
// one arm runs: the arm of the entry whose marker is K.
//
//   - [MatchMove]: Move the payload out, discharging the container
//   - [MatchRef]: Inspect a copy of the payload
//   - [MatchMut]: Mutate the payload in place
//   - [On], [OnMut]: Build arms
//
// # Destruction
//
// A container releases its payload exactly once. [Enum.Drop] releases it
// explicitly; a live container that becomes unreachable is released by the
// collector. Payloads that implement [Dropper], or whose pointer type does,
// have Drop called on release. [MatchMove] transfers ownership, so nothing is
// released afterwards.
//
// # Contract Violations
//
// Misuse is a programmer error and panics with an [*Error]: an undeclared
// marker/payload pair, arms that do not cover the schema, conflicting
// access from inside an arm, or use after discharge. Borrow rules: any
// number of MatchRef calls, or a single MatchMut, may be in progress on a
// container; MatchMove and Drop require none.
//
// # Example
//
//	type Small struct{ tyenum.Tag[int32] }
//	type Large struct{ tyenum.Tag[int64] }
//
//	var Number = tyenum.Define("Number",
//		tyenum.Entry[Small, int32]("small"),
//		tyenum.Entry[Large, int64]("large"),
//	)
//
//	func double[M any](n *tyenum.Enum[M]) int64 {
//		return tyenum.MatchMove(n,
//			tyenum.On(func(v int32) int64 { return int64(v) * 2 }),
//			tyenum.On(func(v int64) int64 { return v * 2 }),
//		)
//	}
//
//	r := double(tyenum.Of[Large](Number, int64(21)))
//	// r == 42
package tyenum
