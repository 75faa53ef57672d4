package schema_test

import (
	"testing"

	"github.com/typemirror/typemirror/schema"
)

func TestAcceptsUndefined(t *testing.T) {
	cases := []struct {
		name string
		in   schema.Node
		want bool
	}{
		{"optional", schema.Optional(schema.String()), true},
		{"default", schema.Default(schema.String(), "x"), true},
		{"undefined", schema.Undef(), true},
		{"any", schema.Any(), true},
		{"unknown", schema.Unknown(), true},
		{"void", schema.Void(), true},
		{"union with optional", schema.Union(schema.String(), schema.Optional(schema.Number())), true},
		{"effects over optional", schema.Effects(schema.Optional(schema.String())), true},
		{"string", schema.String(), false},
		{"nullable", schema.Nullable(schema.String()), false},
		{"union without optional", schema.Union(schema.String(), schema.Number()), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := schema.AcceptsUndefined(tc.in); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestChildren_CoverCombinators(t *testing.T) {
	leaf := schema.String()
	cases := []struct {
		name string
		in   schema.Node
		want int
	}{
		{"object", schema.Object(schema.Field{Name: "a", Schema: leaf}, schema.Field{Name: "b", Schema: leaf}), 2},
		{"array", schema.Array(leaf), 1},
		{"union", schema.Union(leaf, leaf, leaf), 3},
		{"discriminated union", schema.DiscriminatedUnion("k", schema.Variant{Tag: "a", Schema: leaf}), 1},
		{"effects", schema.Effects(leaf), 1},
		{"optional", schema.Optional(leaf), 1},
		{"nullable", schema.Nullable(leaf), 1},
		{"tuple", schema.Tuple(leaf, leaf), 2},
		{"record", schema.Record(leaf, leaf), 2},
		{"map", schema.MapOf(leaf, leaf), 2},
		{"set", schema.SetOf(leaf), 1},
		{"intersection", schema.Intersection(leaf, leaf), 2},
		{"promise", schema.Promise(leaf), 1},
		{"function", schema.Function([]schema.Node{leaf, leaf}, leaf), 3},
		{"default", schema.Default(leaf, "x"), 1},
		{"lazy", schema.Lazy(func() schema.Node { return leaf }), 1},
		{"primitive", leaf, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(schema.Children(tc.in)); got != tc.want {
				t.Fatalf("got %d children, want %d", got, tc.want)
			}
		})
	}
}

func TestLazyResolveIsMemoized(t *testing.T) {
	calls := 0
	l := schema.Lazy(func() schema.Node {
		calls++
		return schema.String()
	})
	first := l.Resolve()
	second := l.Resolve()
	if calls != 1 {
		t.Fatalf("thunk ran %d times", calls)
	}
	if first != second {
		t.Fatalf("resolve must return a stable instance")
	}
}

func TestLazyNilThunkResolvesToNothing(t *testing.T) {
	l := schema.Lazy(nil)
	if l.Resolve() != nil {
		t.Fatalf("nil thunk must resolve to nil")
	}
	kids := schema.Children(l)
	if len(kids) != 1 || kids[0] != nil {
		t.Fatalf("children: %#v", kids)
	}
}

func TestCloneWithoutOverride(t *testing.T) {
	inner := schema.String()
	obj := schema.Object(schema.Field{Name: "a", Schema: inner})
	obj.SetOverride(func(string) any { return "X" })

	c := schema.CloneWithoutOverride(obj)
	if c == schema.Node(obj) {
		t.Fatalf("clone must be a new instance")
	}
	if c.Override() != nil {
		t.Fatalf("clone must not carry the override")
	}
	if obj.Override() == nil {
		t.Fatalf("original keeps its override")
	}
	co, ok := c.(*schema.ObjectNode)
	if !ok {
		t.Fatalf("clone changed concrete type: %T", c)
	}
	if len(co.Fields) != 1 || co.Fields[0].Schema != schema.Node(inner) {
		t.Fatalf("clone must share children with the original")
	}
}

func TestDescribe(t *testing.T) {
	s := schema.Describe(schema.String(), "a name")
	if s.Description() != "a name" {
		t.Fatalf("description: %q", s.Description())
	}
}
