// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tyenum

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind categorizes a contract violation.
type Kind string

const (
	KindMismatch   Kind = "mismatch"   // marker/payload pair not declared
	KindExhaustive Kind = "exhaustive" // match arms do not cover the schema
	KindBorrow     Kind = "borrow"     // conflicting access while borrowed
	KindDischarged Kind = "discharged" // use after move or drop
	KindSchema     Kind = "schema"     // malformed schema declaration
)

// Error describes a violated container contract.
//
// Contract violations are programmer errors: every operation except [TryNew]
// panics with an *Error. TryNew returns it instead, giving callers a
// recoverable path for construction mismatches.
type Error struct {
	Kind    Kind
	Schema  string
	Marker  string
	Payload string
	Detail  string
}

// Sentinels for errors.Is. An *Error matches a sentinel of the same Kind.
var (
	ErrMismatch   = &Error{Kind: KindMismatch}
	ErrExhaustive = &Error{Kind: KindExhaustive}
	ErrBorrow     = &Error{Kind: KindBorrow}
	ErrDischarged = &Error{Kind: KindDischarged}
	ErrSchema     = &Error{Kind: KindSchema}
)

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("tyenum: ")
	b.WriteString(string(e.Kind))
	if e.Schema != "" {
		b.WriteString(" in ")
		b.WriteString(e.Schema)
	}
	if e.Marker != "" || e.Payload != "" {
		b.WriteString(" (")
		if e.Marker != "" {
			b.WriteString("marker ")
			b.WriteString(e.Marker)
		}
		if e.Payload != "" {
			if e.Marker != "" {
				b.WriteString(", ")
			}
			b.WriteString("payload ")
			b.WriteString(e.Payload)
		}
		b.WriteByte(')')
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func newError(kind Kind, s *Schema, format string, args ...any) *Error {
	e := &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
	if s != nil {
		e.Schema = s.name
	}
	return e
}

// mismatch reports why the marker/payload pair resolves to no entry of s.
func mismatch(s *Schema, marker, payload reflect.Type) *Error {
	e := &Error{
		Kind:    KindMismatch,
		Schema:  s.name,
		Marker:  marker.String(),
		Payload: payload.String(),
	}
	if i, ok := s.byTag[marker]; ok {
		c := s.cases[i]
		e.Detail = fmt.Sprintf("marker binds %s as %q", c.payload, c.binding)
	} else {
		e.Detail = "marker is not declared"
	}
	return e
}

// fail panics with err.
// Extracted as a noinline function so that callers remain inlineable.
//
//go:noinline
func fail(err *Error) {
	panic(err)
}
