// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tyenum

import (
	"reflect"
	"slices"

	"go.uber.org/zap"
)

// Dropper is implemented by payloads that release resources when the
// container owning them is destroyed.
type Dropper interface {
	Drop()
}

// Case is one schema entry: a marker type bound to a binding name and a
// payload type. Construct with [Entry] or [EntryFunc].
type Case struct {
	tag     reflect.Type
	payload reflect.Type
	binding string
	drop    func(p any) // p is *V
}

// Tag returns the marker type of the entry.
func (c Case) Tag() reflect.Type { return c.tag }

// Payload returns the payload type of the entry.
func (c Case) Payload() reflect.Type { return c.payload }

// Binding returns the binding name of the entry.
func (c Case) Binding() string { return c.binding }

// Entry declares that marker K selects a payload of type V named binding.
// The payload is released by calling Drop when V implements [Dropper], or
// otherwise when *V does. Pointer and interface payloads are released
// through the value they hold.
func Entry[K, V any](binding string) Case {
	return Case{
		tag:     reflect.TypeFor[K](),
		payload: reflect.TypeFor[V](),
		binding: binding,
		drop:    dropPayload[V],
	}
}

// EntryFunc is like [Entry] but releases the payload with drop.
func EntryFunc[K, V any](binding string, drop func(*V)) Case {
	c := Entry[K, V](binding)
	if drop != nil {
		c.drop = func(p any) { drop(p.(*V)) }
	}
	return c
}

// dropPayload is the default cleanup for entries of payload type V.
// Named generic function produces a static funcval per instantiation.
func dropPayload[V any](p any) {
	if d, ok := any(*p.(*V)).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := p.(Dropper); ok {
		d.Drop()
	}
}

// Option configures a [Schema].
type Option func(*Schema)

// WithLogger sets the logger used by the schema and its containers.
func WithLogger(l *zap.Logger) Option {
	return func(s *Schema) { s.log = l }
}

// Schema is the declared, closed set of entries a container may hold.
// A Schema is immutable after [Define] and safe to share.
type Schema struct {
	name  string
	cases []Case
	byTag map[reflect.Type]int
	log   *zap.Logger
}

// Define builds a schema from cases in declaration order.
//
// Define panics with a [KindSchema] error when cases is empty, when two
// entries share a marker or a binding name, or when a Case was not built with
// [Entry] or [EntryFunc]. These are author-time mistakes.
func Define(name string, cases ...Case) *Schema {
	return DefineWith(name, nil, cases...)
}

// DefineWith is like [Define] with options applied before validation.
func DefineWith(name string, opts []Option, cases ...Case) *Schema {
	s := &Schema{
		name:  name,
		cases: slices.Clone(cases),
		byTag: make(map[reflect.Type]int, len(cases)),
	}
	for _, o := range opts {
		o(s)
	}
	if len(s.cases) == 0 {
		fail(newError(KindSchema, s, "no entries"))
	}
	bindings := make(map[string]int, len(s.cases))
	for i, c := range s.cases {
		if c.tag == nil {
			fail(newError(KindSchema, s, "entry %d was not declared with Entry", i))
		}
		if c.binding == "" {
			fail(newError(KindSchema, s, "entry %d has an empty binding", i))
		}
		if j, dup := bindings[c.binding]; dup {
			fail(newError(KindSchema, s, "binding %q declared by entries %d and %d", c.binding, j, i))
		}
		if j, dup := s.byTag[c.tag]; dup {
			fail(newError(KindSchema, s, "marker %s declared by entries %d and %d", c.tag, j, i))
		}
		bindings[c.binding] = i
		s.byTag[c.tag] = i
	}
	s.logger().Debug("schema defined",
		zap.String("schema", s.name),
		zap.Int("entries", len(s.cases)))
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of entries.
func (s *Schema) Len() int { return len(s.cases) }

// Cases returns a copy of the entries in declaration order.
func (s *Schema) Cases() []Case { return slices.Clone(s.cases) }

// IndexOf returns the position of the entry whose marker is tag.
func (s *Schema) IndexOf(tag reflect.Type) (int, bool) {
	i, ok := s.byTag[tag]
	return i, ok
}

// resolve returns the entry matching both marker and payload.
func (s *Schema) resolve(marker, payload reflect.Type) (int, bool) {
	i, ok := s.byTag[marker]
	if !ok || s.cases[i].payload != payload {
		return -1, false
	}
	return i, true
}

func (s *Schema) logger() *zap.Logger {
	if s.log != nil {
		return s.log
	}
	return Logger()
}
