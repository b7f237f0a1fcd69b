// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tyenum

// Scoped lifetime for containers.
// Go has no destructors; With pins destruction to a lexical scope.

// With builds a container for marker K holding v, passes it to use, and
// drops it when use returns or panics. This follows the bracket pattern:
// acquire → use → release, where release is guaranteed to run.
//
// If use consumed the container with [MatchMove], the release step does
// nothing. use must not retain the container.
func With[K, V, Out any](s *Schema, v V, use func(*Enum[K]) Out) Out {
	e := New[K](s, v)
	defer e.Drop()
	return use(e)
}
