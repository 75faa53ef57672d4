package schemadoc

import (
	"fmt"

	"github.com/typemirror/typemirror"
	"github.com/typemirror/typemirror/schema"
)

// build materializes the document in two passes: first a shell node per
// named type (so $ref can point at the instance before its payload exists,
// which is what makes cyclic documents loadable), then the payloads.
func build(doc document) ([]typemirror.Root, Diag, error) {
	d := &simpleDiag{}
	b := &builder{shells: map[string]schema.Node{}, diag: d}
	owner := map[string]int{}

	for i, nt := range doc.Types {
		if nt.Name == "" {
			return nil, d, fmt.Errorf("schemadoc: type at index %d has no name", i)
		}
		if _, dup := owner[nt.Name]; dup {
			d.warnf("type %q declared more than once; keeping the first declaration", nt.Name)
			continue
		}
		owner[nt.Name] = i
		if nt.Schema == nil {
			d.warnf("type %q has no schema; treating as any", nt.Name)
			b.shells[nt.Name] = schema.Any()
			continue
		}
		if nt.Schema.Ref != "" {
			d.warnf("type %q is a bare $ref; aliasing another named type is not supported, treating as any", nt.Name)
			b.shells[nt.Name] = schema.Any()
			continue
		}
		b.shells[nt.Name] = b.shell(nt.Schema.Kind)
	}

	roots := make([]typemirror.Root, 0, len(doc.Types))
	for i, nt := range doc.Types {
		if owner[nt.Name] != i {
			continue
		}
		n := b.shells[nt.Name]
		if nt.Schema != nil && nt.Schema.Ref == "" {
			b.fill(n, nt.Schema)
		}
		roots = append(roots, typemirror.Root{Name: nt.Name, Schema: n})
	}
	return roots, d, nil
}

type builder struct {
	shells map[string]schema.Node
	diag   *simpleDiag
}

// shell allocates an empty node of the named kind. Unknown kinds degrade to
// any, mirroring the converter's permissive policy.
func (b *builder) shell(kind string) schema.Node {
	k, ok := schema.KindFromName(kind)
	if !ok {
		b.diag.warnf("unknown schema kind %q; treating as any", kind)
		return schema.Any()
	}
	switch k {
	case schema.KindString:
		return schema.String()
	case schema.KindNumber:
		return schema.Number()
	case schema.KindBigInt:
		return schema.BigInt()
	case schema.KindBoolean:
		return schema.Bool()
	case schema.KindDate:
		return schema.Date()
	case schema.KindUndefined:
		return schema.Undef()
	case schema.KindNull:
		return schema.Null()
	case schema.KindVoid:
		return schema.Void()
	case schema.KindAny:
		return schema.Any()
	case schema.KindUnknown:
		return schema.Unknown()
	case schema.KindNever:
		return schema.Never()
	case schema.KindLiteral:
		return schema.Literal(nil)
	case schema.KindObject:
		return schema.Object()
	case schema.KindArray:
		return schema.Array(nil)
	case schema.KindEnum:
		return schema.Enum()
	case schema.KindUnion:
		return schema.Union()
	case schema.KindDiscriminatedUnion:
		return schema.DiscriminatedUnion("")
	case schema.KindEffects:
		return schema.Effects(nil)
	case schema.KindNativeEnum:
		return schema.NativeEnum()
	case schema.KindOptional:
		return schema.Optional(nil)
	case schema.KindNullable:
		return schema.Nullable(nil)
	case schema.KindTuple:
		return schema.Tuple()
	case schema.KindRecord:
		return schema.Record(nil, nil)
	case schema.KindMap:
		return schema.MapOf(nil, nil)
	case schema.KindSet:
		return schema.SetOf(nil)
	case schema.KindIntersection:
		return schema.Intersection(nil, nil)
	case schema.KindPromise:
		return schema.Promise(nil)
	case schema.KindFunction:
		return schema.Function(nil, nil)
	case schema.KindDefault:
		return schema.Default(nil, nil)
	case schema.KindLazy:
		// A document has no thunks to defer; nothing meaningful to load.
		b.diag.warnf("lazy kind is not representable in documents; treating as any")
		return schema.Any()
	default:
		b.diag.warnf("unhandled schema kind %q; treating as any", kind)
		return schema.Any()
	}
}

// node resolves a raw schema to a node: a $ref yields the shared named
// instance, anything else allocates and fills an anonymous node.
func (b *builder) node(r *rawSchema) schema.Node {
	if r == nil {
		return schema.Any()
	}
	if r.Ref != "" {
		n, ok := b.shells[r.Ref]
		if !ok {
			b.diag.warnf("$ref to undeclared type %q; treating as any", r.Ref)
			return schema.Any()
		}
		return n
	}
	n := b.shell(r.Kind)
	b.fill(n, r)
	return n
}

func (b *builder) fill(n schema.Node, r *rawSchema) {
	if r.Description != "" {
		schema.Describe(n, r.Description)
	}
	switch t := n.(type) {
	case *schema.LiteralNode:
		t.Value = r.Literal
	case *schema.ObjectNode:
		for _, f := range r.Properties {
			t.Fields = append(t.Fields, schema.Field{Name: f.Name, Schema: b.node(f.Schema)})
		}
	case *schema.ArrayNode:
		t.Elem = b.node(r.Element)
	case *schema.EnumNode:
		t.Values = append(t.Values, r.Values...)
	case *schema.UnionNode:
		for _, o := range r.Options {
			t.Options = append(t.Options, b.node(o))
		}
	case *schema.DiscriminatedUnionNode:
		t.Discriminator = r.Discriminator
		for _, v := range r.Variants {
			t.Variants = append(t.Variants, schema.Variant{Tag: v.Tag, Schema: b.node(v.Schema)})
		}
	case *schema.EffectsNode:
		t.Inner = b.node(r.Inner)
	case *schema.NativeEnumNode:
		for _, m := range r.Members {
			t.Members = append(t.Members, schema.EnumMember{Name: m.Name, Value: m.Value})
		}
	case *schema.OptionalNode:
		t.Inner = b.node(r.Inner)
	case *schema.NullableNode:
		t.Inner = b.node(r.Inner)
	case *schema.TupleNode:
		for _, it := range r.Items {
			t.Items = append(t.Items, b.node(it))
		}
	case *schema.RecordNode:
		t.Key = b.node(r.Key)
		t.Value = b.node(r.Value)
	case *schema.MapNode:
		t.Key = b.node(r.Key)
		t.Value = b.node(r.Value)
	case *schema.SetNode:
		t.Value = b.node(r.Value)
	case *schema.IntersectionNode:
		t.Left = b.node(r.Left)
		t.Right = b.node(r.Right)
	case *schema.PromiseNode:
		t.Inner = b.node(r.Inner)
	case *schema.FunctionNode:
		for _, p := range r.Params {
			t.Params = append(t.Params, b.node(p))
		}
		t.Return = b.node(r.Returns)
	case *schema.DefaultNode:
		t.Inner = b.node(r.Inner)
		t.Value = r.Default
	}
}
