// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tyenum/internal/gen"
)

const schemaSrc = `// numbers
Number {
	Marker1 { a: int32 },
	Marker2 { b: int64 },
}

Blob {
	Raw { data: []byte },
	Named { ref: map[string]*pkg.Thing },
	Unit { u: struct{} },
	Fn { f: func(int) string }
}
`

func TestParse(t *testing.T) {
	decls, err := gen.Parse("schema.tyenum", schemaSrc)
	require.NoError(t, err)
	require.Len(t, decls, 2)

	number := decls[0]
	assert.Equal(t, "Number", number.Name)
	assert.Equal(t, 2, number.Pos.Line)
	require.Len(t, number.Entries, 2)
	assert.Equal(t, gen.Entry{Tag: "Marker1", Binding: "a", Type: "int32", Pos: number.Entries[0].Pos}, number.Entries[0])
	assert.Equal(t, gen.Entry{Tag: "Marker2", Binding: "b", Type: "int64", Pos: number.Entries[1].Pos}, number.Entries[1])
	assert.Equal(t, 4, number.Entries[1].Pos.Line)

	blob := decls[1]
	var types []string
	for _, en := range blob.Entries {
		types = append(types, en.Type)
	}
	assert.Equal(t, []string{"[]byte", "map[string]*pkg.Thing", "struct{}", "func(int)string"}, types)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		line int
	}{
		{"empty", "// nothing\n", "no enum declarations", 0},
		{"missing colon", "Number {\n\tM { a int32 }\n}", `expected ":", found "int32"`, 2},
		{"no entries", "Number {}", "enum Number has no entries", 1},
		{"unexported", "number { M { a: int } }", "enum name number is not exported", 1},
		{"duplicate marker", "Number {\n\tM { a: int },\n\tM { b: int }\n}", "marker M declared twice in Number", 3},
		{"duplicate binding", "Number {\n\tM { a: int },\n\tN { a: int }\n}", "binding a declared twice in Number", 3},
		{"reserved binding", "Number { M { e: int } }", "binding e is not usable as a parameter name", 1},
		{"blank binding", "Number { M { _: int } }", "binding _ is not usable as a parameter name", 1},
		{"missing type", "Number { M { a: } }", "missing payload type", 1},
		{"invalid type", "Number { M { a: [int } }", "invalid payload type", 1},
		{"unterminated", "Number { M { a: int", "unterminated payload type", 1},
		{"duplicate enum", "A { M { a: int } }\nA { M { a: int } }", "enum A declared twice", 2},
		{"payload Out", "Number {\n\tM { a: Out },\n\tN { b: int }\n}", "payload type Out refers to Out", 2},
		{"payload K", "Number {\n\tM { a: int },\n\tN { b: []K }\n}", "payload type []K refers to K", 3},
		{"nested K", "Number { M { a: map[string]func(K) Out } }", "refers to K", 1},
		{"embedded Out", "Number { M { a: struct{ Out } } }", "refers to Out", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Parse("schema.tyenum", tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var se *gen.SyntaxError
			require.ErrorAs(t, err, &se)
			if tt.line > 0 {
				assert.Equal(t, tt.line, se.Pos.Line)
				assert.Equal(t, "schema.tyenum", se.Pos.Filename)
			}
		})
	}
}

func TestParseTypeParamNamesOutsideReferences(t *testing.T) {
	src := "Shape {\n\tA { a: struct{ K int } },\n\tB { b: pkg.K },\n\tC { c: func(Out string) (K int) },\n\tD { d: interface{ K() } }\n}"
	decls, err := gen.Parse("schema.tyenum", src)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	require.Len(t, decls[0].Entries, 4)
	assert.Equal(t, "pkg.K", decls[0].Entries[1].Type)
}

func TestGenerate(t *testing.T) {
	decls, err := gen.Parse("number.tyenum", "Number {\n\tMarker1 { a: int32 },\n\tMarker2 { b: int64 }\n}\n")
	require.NoError(t, err)

	out, err := gen.Generate("numbers", "number.tyenum", decls)
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "// Code generated by tyenumgen. DO NOT EDIT.\n// source: number.tyenum\n")
	assert.Contains(t, src, "package numbers\n")
	assert.Contains(t, src, `import "code.hybscloud.com/tyenum"`)
	assert.Contains(t, src, "var Number = tyenum.Define(\"Number\",\n"+
		"\ttyenum.Entry[Marker1, int32](\"a\"),\n"+
		"\ttyenum.Entry[Marker2, int64](\"b\"),\n)\n")
	assert.Contains(t, src,
		"func NumberMatchMove[K, Out any](e *tyenum.Enum[K], a func(int32) Out, b func(int64) Out) Out {\n"+
			"\treturn tyenum.MatchMove(e, tyenum.On(a), tyenum.On(b))\n}\n")
	assert.Contains(t, src,
		"func NumberMatchRef[K, Out any](e *tyenum.Enum[K], a func(int32) Out, b func(int64) Out) Out {\n"+
			"\treturn tyenum.MatchRef(e, tyenum.On(a), tyenum.On(b))\n}\n")
	assert.Contains(t, src,
		"func NumberMatchMut[K, Out any](e *tyenum.Enum[K], a func(*int32) Out, b func(*int64) Out) Out {\n"+
			"\treturn tyenum.MatchMut(e, tyenum.OnMut(a), tyenum.OnMut(b))\n}\n")
}

func TestGenerateParses(t *testing.T) {
	decls, err := gen.Parse("schema.tyenum", schemaSrc)
	require.NoError(t, err)

	out, err := gen.Generate("shapes", "", decls)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "// source:")

	f, err := parser.ParseFile(token.NewFileSet(), "shapes.go", out, parser.AllErrors)
	require.NoError(t, err)
	assert.Equal(t, "shapes", f.Name.Name)

	var names []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			names = append(names, d.Name.Name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					for _, n := range vs.Names {
						names = append(names, n.Name)
					}
				}
			}
		}
	}
	assert.ElementsMatch(t, []string{
		"Number", "NumberMatchMove", "NumberMatchRef", "NumberMatchMut",
		"Blob", "BlobMatchMove", "BlobMatchRef", "BlobMatchMut",
	}, names)
}

func TestGenerateRejectsPackage(t *testing.T) {
	_, err := gen.Generate("not a package", "", nil)
	require.Error(t, err)
}
