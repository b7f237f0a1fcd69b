// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
)

// ImportPath is the import path of package tyenum in generated code.
const ImportPath = "code.hybscloud.com/tyenum"

// Generate returns formatted Go source for package pkg declaring every decl:
// a schema variable named after the enum, and MatchMove, MatchRef and
// MatchMut helpers whose parameters are the entries' bindings.
//
// source is recorded in the header comment when non-empty.
func Generate(pkg, source string, decls []Decl) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	var b bytes.Buffer
	b.WriteString("// Code generated by tyenumgen. DO NOT EDIT.\n")
	if source != "" {
		fmt.Fprintf(&b, "// source: %s\n", source)
	}
	fmt.Fprintf(&b, "\npackage %s\n\nimport %q\n", pkg, ImportPath)
	for _, d := range decls {
		emitDecl(&b, d)
	}
	out, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

func emitDecl(b *bytes.Buffer, d Decl) {
	fmt.Fprintf(b, "\n// %s is the schema of the %s enum.\n", d.Name, d.Name)
	fmt.Fprintf(b, "var %s = tyenum.Define(%q,\n", d.Name, d.Name)
	for _, en := range d.Entries {
		fmt.Fprintf(b, "\ttyenum.Entry[%s, %s](%q),\n", en.Tag, en.Type, en.Binding)
	}
	b.WriteString(")\n")

	emitMatch(b, d, "MatchMove", "consumes e, moving its payload into the arm of the active entry.",
		"func(%s) Out", "On")
	emitMatch(b, d, "MatchRef", "passes a copy of e's payload to the arm of the active entry.",
		"func(%s) Out", "On")
	emitMatch(b, d, "MatchMut", "passes a pointer to e's payload to the arm of the active entry.",
		"func(*%s) Out", "OnMut")
}

// emitMatch writes a helper forwarding one function per entry to tyenum.<op>.
func emitMatch(b *bytes.Buffer, d Decl, op, doc, param, ctor string) {
	params := make([]string, len(d.Entries))
	args := make([]string, len(d.Entries))
	for i, en := range d.Entries {
		params[i] = en.Binding + " " + fmt.Sprintf(param, en.Type)
		args[i] = fmt.Sprintf("tyenum.%s(%s)", ctor, en.Binding)
	}
	fmt.Fprintf(b, "\n// %s%s %s\n", d.Name, op, doc)
	fmt.Fprintf(b, "func %s%s[K, Out any](e *tyenum.Enum[K], %s) Out {\n", d.Name, op, strings.Join(params, ", "))
	fmt.Fprintf(b, "\treturn tyenum.%s(e, %s)\n}\n", op, strings.Join(args, ", "))
}
