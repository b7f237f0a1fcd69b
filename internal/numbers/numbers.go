// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package numbers carries an integer whose width is chosen by a marker type.
package numbers

import "code.hybscloud.com/tyenum"

//go:generate go run code.hybscloud.com/tyenum/cmd/tyenumgen -p numbers -o number_tyenum.go number.tyenum

// Marker1 selects a 32-bit payload.
type Marker1 struct{ tyenum.Tag[int32] }

// Marker2 selects a 64-bit payload.
type Marker2 struct{ tyenum.Tag[int64] }

// Negate returns the negated payload, widened to int64.
func Negate[M any](n *tyenum.Enum[M]) int64 {
	return NumberMatchRef(n,
		func(a int32) int64 { return -int64(a) },
		func(b int64) int64 { return -b },
	)
}

// Bump adds 12 to a 32-bit payload or 13 to a 64-bit one.
func Bump[M any](n *tyenum.Enum[M]) {
	NumberMatchMut(n,
		func(a *int32) struct{} { *a += 12; return struct{}{} },
		func(b *int64) struct{} { *b += 13; return struct{}{} },
	)
}

// Take consumes n, returning its payload truncated to int32.
func Take[M any](n *tyenum.Enum[M]) int32 {
	return NumberMatchMove(n,
		func(a int32) int32 { return a },
		func(b int64) int32 { return int32(b) },
	)
}

// DoOp bumps n, then returns its negation minus the consumed payload.
func DoOp[M any](n *tyenum.Enum[M]) int32 {
	Bump(n)
	neg := int32(Negate(n))
	return neg - Take(n)
}
