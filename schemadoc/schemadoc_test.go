package schemadoc_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	typemirror "github.com/typemirror/typemirror"
	"github.com/typemirror/typemirror/schema"
	"github.com/typemirror/typemirror/schemadoc"
	"github.com/typemirror/typemirror/tsast"
)

const userDoc = `{
  "types": [
    {
      "name": "User",
      "schema": {
        "kind": "object",
        "properties": [
          {"name": "id", "schema": {"kind": "string", "description": "stable identifier"}},
          {"name": "age", "schema": {"kind": "optional", "inner": {"kind": "number"}}}
        ]
      }
    },
    {
      "name": "Users",
      "schema": {"kind": "array", "element": {"$ref": "User"}}
    }
  ]
}`

func TestLoad_SharedRefResolvesToNamedReference(t *testing.T) {
	roots, diag, err := schemadoc.Load([]byte(userDoc))
	require.NoError(t, err)
	assert.False(t, diag.HasWarnings(), "warnings: %v", diag.Warnings())
	require.Len(t, roots, 2)

	spew.Dump(roots)

	res, err := typemirror.ResolveMany(roots, typemirror.Options{})
	require.NoError(t, err)
	require.Len(t, res.Aliases, 2)

	user, ok := res.Aliases[0].Type.(tsast.TypeLiteral)
	require.True(t, ok, "User should inline its body, got %#v", res.Aliases[0].Type)
	require.Len(t, user.Members, 2)
	assert.Equal(t, "stable identifier", user.Members[0].Doc)
	assert.True(t, user.Members[1].Optional)

	assert.Equal(t, tsast.Array{Elem: tsast.Ref{Name: "User"}}, res.Aliases[1].Type)
}

func TestLoad_ObjectFormPreservesKeyOrder(t *testing.T) {
	doc := `{
  "types": {
    "Zebra": {"kind": "string"},
    "Apple": {"kind": "array", "element": {"$ref": "Zebra"}}
  }
}`
	roots, diag, err := schemadoc.Load([]byte(doc))
	require.NoError(t, err)
	assert.False(t, diag.HasWarnings(), "warnings: %v", diag.Warnings())
	require.Len(t, roots, 2)
	assert.Equal(t, "Zebra", roots[0].Name)
	assert.Equal(t, "Apple", roots[1].Name)

	res, err := typemirror.ResolveMany(roots, typemirror.Options{})
	require.NoError(t, err)
	assert.Equal(t, tsast.Array{Elem: tsast.Ref{Name: "Zebra"}}, res.Aliases[1].Type)
}

func TestLoad_CyclicDocument(t *testing.T) {
	doc := `{
  "types": [
    {
      "name": "Node",
      "schema": {
        "kind": "object",
        "properties": [
          {"name": "value", "schema": {"kind": "string"}},
          {"name": "next", "schema": {"kind": "optional", "inner": {"$ref": "Node"}}}
        ]
      }
    }
  ]
}`
	roots, _, err := schemadoc.Load([]byte(doc))
	require.NoError(t, err)

	res, err := typemirror.ResolveMany(roots, typemirror.Options{})
	require.NoError(t, err)

	lit, ok := res.Aliases[0].Type.(tsast.TypeLiteral)
	require.True(t, ok)
	want := tsast.Union{Members: []tsast.Type{tsast.Ref{Name: "Node"}, tsast.KwUndefined}}
	assert.Equal(t, want, lit.Members[1].Type)
}

func TestLoad_KindCoverage(t *testing.T) {
	doc := `{
  "types": [
    {"name": "Id", "schema": {"kind": "union", "options": [
      {"kind": "string"}, {"kind": "literal", "literal": 7}
    ]}},
    {"name": "Pair", "schema": {"kind": "tuple", "items": [{"kind": "string"}, {"kind": "boolean"}]}},
    {"name": "Lookup", "schema": {"kind": "record", "key": {"kind": "string"}, "value": {"kind": "number"}}},
    {"name": "Score", "schema": {"kind": "map", "key": {"kind": "string"}, "value": {"kind": "number"}}},
    {"name": "Tags", "schema": {"kind": "set", "value": {"kind": "string"}}},
    {"name": "Handler", "schema": {"kind": "function", "params": [{"kind": "string"}], "returns": {"kind": "void"}}},
    {"name": "Level", "schema": {"kind": "enum", "values": ["low", "high"]}}
  ]
}`
	roots, diag, err := schemadoc.Load([]byte(doc))
	require.NoError(t, err)
	assert.False(t, diag.HasWarnings(), "warnings: %v", diag.Warnings())

	res, err := typemirror.ResolveMany(roots, typemirror.Options{})
	require.NoError(t, err)
	require.Len(t, res.Aliases, 7)

	assert.Equal(t,
		tsast.Union{Members: []tsast.Type{tsast.KwString, tsast.NumberLit{Value: 7}}},
		res.Aliases[0].Type)
	assert.Equal(t,
		tsast.Tuple{Elems: []tsast.Type{tsast.KwString, tsast.KwBoolean}},
		res.Aliases[1].Type)
	assert.Equal(t,
		tsast.TypeLiteral{Index: &tsast.IndexSig{Value: tsast.KwNumber}},
		res.Aliases[2].Type)
	assert.Equal(t,
		tsast.Ref{Name: "Map", Args: []tsast.Type{tsast.KwString, tsast.KwNumber}},
		res.Aliases[3].Type)
	assert.Equal(t,
		tsast.Ref{Name: "Set", Args: []tsast.Type{tsast.KwString}},
		res.Aliases[4].Type)

	fn, ok := res.Aliases[5].Type.(tsast.Func)
	require.True(t, ok)
	require.Len(t, fn.Params, 1)
	require.NotNil(t, fn.Rest)

	assert.Equal(t,
		tsast.Union{Members: []tsast.Type{tsast.StringLit{Value: "low"}, tsast.StringLit{Value: "high"}}},
		res.Aliases[6].Type)
}

func TestLoad_Warnings(t *testing.T) {
	doc := `{
  "types": [
    {"name": "Weird", "schema": {"kind": "wormhole"}},
    {"name": "Dangling", "schema": {"kind": "array", "element": {"$ref": "Missing"}}},
    {"name": "AliasOnly", "schema": {"$ref": "Weird"}},
    {"name": "Weird", "schema": {"kind": "string"}}
  ]
}`
	roots, diag, err := schemadoc.Load([]byte(doc))
	require.NoError(t, err)
	assert.True(t, diag.HasWarnings())
	assert.Len(t, diag.Warnings(), 4)

	// permissive fallbacks keep the document usable
	require.Len(t, roots, 3)
	assert.Equal(t, schema.KindAny, roots[0].Schema.Kind())

	res, err := typemirror.ResolveMany(roots, typemirror.Options{})
	require.NoError(t, err)
	assert.Equal(t, tsast.Array{Elem: tsast.KwAny}, res.Aliases[1].Type)
}

func TestLoad_Errors(t *testing.T) {
	_, _, err := schemadoc.Load([]byte(`{"types": []}`))
	require.Error(t, err)

	_, _, err = schemadoc.Load([]byte(`{"types": [{"schema": {"kind": "string"}}]}`))
	require.Error(t, err)

	_, _, err = schemadoc.Load([]byte(`not json`))
	require.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	doc := `
types:
  - name: Config
    schema:
      kind: object
      properties:
        - name: retries
          schema:
            kind: default
            inner:
              kind: optional
              inner:
                kind: number
            default: 3
        - name: mode
          schema:
            kind: enum
            values: [fast, safe]
`
	roots, diag, err := schemadoc.LoadYAML([]byte(doc))
	require.NoError(t, err)
	assert.False(t, diag.HasWarnings(), "warnings: %v", diag.Warnings())

	res, err := typemirror.ResolveMany(roots, typemirror.Options{})
	require.NoError(t, err)

	lit, ok := res.Aliases[0].Type.(tsast.TypeLiteral)
	require.True(t, ok)
	require.Len(t, lit.Members, 2)
	// default strips the undefined that the inner optional contributed
	assert.Equal(t, tsast.KwNumber, lit.Members[0].Type)
	assert.True(t, lit.Members[0].Optional)
}

func TestLoad_NativeEnumDocument(t *testing.T) {
	doc := `{
  "types": [
    {"name": "Shirt", "schema": {"kind": "object", "properties": [
      {"name": "size", "schema": {"kind": "nativeEnum", "members": [
        {"name": "Small", "value": "S"},
        {"name": "Large", "value": 2}
      ]}}
    ]}}
  ]
}`
	roots, _, err := schemadoc.Load([]byte(doc))
	require.NoError(t, err)

	// Anonymous conversion has no identifier in effect, so the hookless
	// native enum degrades to unknown.
	anon, err := typemirror.Convert(roots[0].Schema, typemirror.Options{})
	require.NoError(t, err)
	lit := anon.Type.(tsast.TypeLiteral)
	assert.Equal(t, tsast.KwUnknown, lit.Members[0].Type)

	// With an override installed on the loaded instance it materializes
	// under the override's name.
	obj := roots[0].Schema.(*schema.ObjectNode)
	ne := obj.Fields[0].Schema.(*schema.NativeEnumNode)
	ne.SetOverride(func(string) any { return "Size" })

	res, err := typemirror.ResolveMany(roots, typemirror.Options{})
	require.NoError(t, err)
	require.Len(t, res.Enums, 1)
	assert.Equal(t, "Size", res.Enums[0].Name)
	require.Len(t, res.Enums[0].Members, 2)
	assert.Equal(t, float64(2), res.Enums[0].Members[1].Value)
}
