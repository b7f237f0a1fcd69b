// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gen parses declarative enum schemas and emits Go source that
// declares them with package tyenum.
//
// A schema file holds one or more declarations:
//
//	Number {
//		Marker1 { a: int32 },
//		Marker2 { b: int64 }
//	}
//
// Each entry names a marker type, a binding, and a payload type. Payload
// types are Go type expressions; markers are Go type names.
package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"text/scanner"
)

// Decl is one enum declaration.
type Decl struct {
	Name    string
	Entries []Entry
	Pos     scanner.Position
}

// Entry is one (marker, binding, payload) triple.
type Entry struct {
	Tag     string
	Binding string
	Type    string
	Pos     scanner.Position
}

// reserved names are used by generated code and cannot be bindings.
var reserved = map[string]bool{"e": true, "K": true, "Out": true, "tyenum": true}

// typeParams are the type parameters of the generated match helpers. A
// payload type naming one would resolve to the parameter, not the package
// type.
var typeParams = map[string]bool{"K": true, "Out": true}

// SyntaxError reports a malformed schema file.
type SyntaxError struct {
	Pos scanner.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

type schemaParser struct {
	s   scanner.Scanner
	tok rune
	err *SyntaxError
}

// Parse reads the declarations in src. filename is used in positions.
func Parse(filename, src string) ([]Decl, error) {
	var p schemaParser
	p.s.Init(strings.NewReader(src))
	p.s.Filename = filename
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanComments | scanner.SkipComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.fail(s.Position, msg)
	}
	p.next()

	var decls []Decl
	names := make(map[string]bool)
	for p.tok != scanner.EOF && p.err == nil {
		d := p.decl()
		if p.err != nil {
			break
		}
		if names[d.Name] {
			p.fail(d.Pos, fmt.Sprintf("enum %s declared twice", d.Name))
			break
		}
		names[d.Name] = true
		decls = append(decls, d)
	}
	if p.err != nil {
		return nil, p.err
	}
	if len(decls) == 0 {
		return nil, &SyntaxError{Pos: p.s.Pos(), Msg: "no enum declarations"}
	}
	return decls, nil
}

func (p *schemaParser) next() {
	p.tok = p.s.Scan()
}

func (p *schemaParser) fail(pos scanner.Position, msg string) {
	if p.err == nil {
		p.err = &SyntaxError{Pos: pos, Msg: msg}
	}
}

func (p *schemaParser) expect(tok rune) {
	if p.tok != tok {
		p.fail(p.s.Position, fmt.Sprintf("expected %s, found %s", scanner.TokenString(tok), p.found()))
		return
	}
	p.next()
}

func (p *schemaParser) found() string {
	if p.tok == scanner.EOF {
		return "EOF"
	}
	return fmt.Sprintf("%q", p.s.TokenText())
}

func (p *schemaParser) ident() (string, scanner.Position) {
	pos := p.s.Position
	if p.tok != scanner.Ident {
		p.fail(pos, fmt.Sprintf("expected identifier, found %s", p.found()))
		return "", pos
	}
	name := p.s.TokenText()
	p.next()
	return name, pos
}

// decl parses Name { entry, entry, ... }.
func (p *schemaParser) decl() Decl {
	var d Decl
	d.Name, d.Pos = p.ident()
	if d.Name != "" && !token.IsExported(d.Name) {
		p.fail(d.Pos, fmt.Sprintf("enum name %s is not exported", d.Name))
	}
	p.expect('{')
	tags := make(map[string]bool)
	bindings := make(map[string]bool)
	for p.err == nil && p.tok != '}' {
		en := p.entry()
		if p.err != nil {
			break
		}
		if tags[en.Tag] {
			p.fail(en.Pos, fmt.Sprintf("marker %s declared twice in %s", en.Tag, d.Name))
		}
		if bindings[en.Binding] {
			p.fail(en.Pos, fmt.Sprintf("binding %s declared twice in %s", en.Binding, d.Name))
		}
		tags[en.Tag], bindings[en.Binding] = true, true
		d.Entries = append(d.Entries, en)
		if p.tok != ',' {
			break
		}
		p.next()
	}
	if p.err == nil && len(d.Entries) == 0 {
		p.fail(d.Pos, fmt.Sprintf("enum %s has no entries", d.Name))
	}
	p.expect('}')
	return d
}

// entry parses Tag { binding: Type }.
func (p *schemaParser) entry() Entry {
	var en Entry
	en.Tag, en.Pos = p.ident()
	p.expect('{')
	var pos scanner.Position
	en.Binding, pos = p.ident()
	switch {
	case p.err != nil:
	case !token.IsIdentifier(en.Binding) || en.Binding == "_" || reserved[en.Binding]:
		p.fail(pos, fmt.Sprintf("binding %s is not usable as a parameter name", en.Binding))
	}
	p.expect(':')
	en.Type = p.typeExpr()
	p.expect('}')
	return en
}

// typeExpr collects tokens up to the closing brace of the entry and checks
// they form a Go type expression.
func (p *schemaParser) typeExpr() string {
	pos := p.s.Position
	var b strings.Builder
	depth := 0
	prevWord := false
	for p.err == nil && p.tok != scanner.EOF {
		switch p.tok {
		case '[', '(', '{':
			depth++
		case ']', ')':
			depth--
		case '}':
			if depth == 0 {
				return p.checkType(pos, b.String())
			}
			depth--
		}
		word := p.tok == scanner.Ident || p.tok == scanner.Int
		if word && prevWord {
			b.WriteByte(' ')
		}
		b.WriteString(p.s.TokenText())
		prevWord = word
		p.next()
	}
	p.fail(pos, "unterminated payload type")
	return ""
}

func (p *schemaParser) checkType(pos scanner.Position, typ string) string {
	if typ == "" {
		p.fail(pos, "missing payload type")
		return ""
	}
	x, err := parser.ParseExpr(typ)
	if err != nil {
		p.fail(pos, fmt.Sprintf("invalid payload type %s: %v", typ, err))
		return typ
	}
	if name := typeParamRef(x); name != "" {
		p.fail(pos, fmt.Sprintf("payload type %s refers to %s, a type parameter of the generated helpers", typ, name))
	}
	return typ
}

// typeParamRef returns the first identifier in x that names a helper type
// parameter. Field names and qualified identifiers are not references.
func typeParamRef(x ast.Expr) string {
	var found string
	var visit func(n ast.Node) bool
	visit = func(n ast.Node) bool {
		if found != "" {
			return false
		}
		switch n := n.(type) {
		case *ast.Ident:
			if typeParams[n.Name] {
				found = n.Name
			}
		case *ast.SelectorExpr:
			ast.Inspect(n.X, visit)
			return false
		case *ast.Field:
			ast.Inspect(n.Type, visit)
			return false
		}
		return true
	}
	ast.Inspect(x, visit)
	return found
}
