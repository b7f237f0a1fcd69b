// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tyenum

// Key is the F-bounded constraint for markers that name their payload type.
// The self-referencing constraint lets [Of] reject a marker/payload pair at
// compile time instead of at construction.
//
// Example:
//
//	type Small struct{ tyenum.Tag[int32] }
//	// Small satisfies Key[Small, int32] via promoted Payload() int32
type Key[K Key[K, V], V any] interface {
	Payload() V // phantom type marker for the payload
}

// Tag is an embeddable zero-size type binding a marker to payload type V.
type Tag[V any] struct{}

// Payload implements the phantom type marker for [Key].
func (Tag[V]) Payload() V { panic("phantom") }
