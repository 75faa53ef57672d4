package typemirror

import (
	"fmt"
	"strconv"

	"github.com/typemirror/typemirror/schema"
	"github.com/typemirror/typemirror/tsast"
)

// mapNode converts one schema node. path is a JSON-Pointer-ish location in
// the schema tree, used only for error reporting.
func mapNode(n schema.Node, ident, path string, store *EnumStore, opt Options) (tsast.Type, error) {
	if n == nil {
		return tsast.KwAny, nil
	}
	// The override short-circuits kind dispatch for every kind except
	// native-enum, which still needs its member materialization below.
	if hook := n.Override(); hook != nil && n.Kind() != schema.KindNativeEnum {
		return overrideResult(hook(ident)), nil
	}

	switch t := n.(type) {
	case *schema.StringNode:
		return tsast.KwString, nil
	case *schema.NumberNode:
		return tsast.KwNumber, nil
	case *schema.BigIntNode:
		return tsast.KwBigInt, nil
	case *schema.BoolNode:
		return tsast.KwBoolean, nil
	case *schema.DateNode:
		return tsast.Ref{Name: "Date"}, nil
	case *schema.UndefinedNode:
		return tsast.KwUndefined, nil
	case *schema.NullNode:
		return tsast.KwNull, nil
	case *schema.VoidNode:
		// Widened deliberately: environments treat an omitted return value
		// as undefined.
		return tsast.Union{Members: []tsast.Type{tsast.KwVoid, tsast.KwUndefined}}, nil
	case *schema.AnyNode:
		return tsast.KwAny, nil
	case *schema.UnknownNode:
		return tsast.KwUnknown, nil
	case *schema.NeverNode:
		return tsast.KwNever, nil

	case *schema.LiteralNode:
		return literalType(t.Value), nil

	case *schema.ObjectNode:
		members := make([]tsast.Member, 0, len(t.Fields))
		for _, f := range t.Fields {
			mt, err := mapNode(f.Schema, ident, path+"/"+f.Name, store, opt)
			if err != nil {
				return nil, err
			}
			members = append(members, tsast.Member{
				Name:     f.Name,
				Optional: f.Schema != nil && (f.Schema.Kind() == schema.KindOptional || schema.AcceptsUndefined(f.Schema)),
				Doc:      docOf(f.Schema),
				Type:     mt,
			})
		}
		return tsast.TypeLiteral{Members: members}, nil

	case *schema.ArrayNode:
		et, err := mapNode(t.Elem, ident, path+"/items", store, opt)
		if err != nil {
			return nil, err
		}
		return tsast.Array{Elem: et}, nil

	case *schema.EnumNode:
		opts := make([]tsast.Type, 0, len(t.Values))
		for _, v := range t.Values {
			opts = append(opts, tsast.StringLit{Value: v})
		}
		return tsast.Union{Members: opts}, nil

	case *schema.UnionNode:
		return mapUnion(t.Options, ident, path, store, opt)

	case *schema.DiscriminatedUnionNode:
		flat := make([]schema.Node, 0, len(t.Variants))
		for _, v := range t.Variants {
			flat = append(flat, v.Schema)
		}
		return mapUnion(flat, ident, path, store, opt)

	case *schema.EffectsNode:
		// Refinements and transforms have no static footprint.
		return mapNode(t.Inner, ident, path, store, opt)

	case *schema.NativeEnumNode:
		return mapNativeEnum(t, ident, path, store, opt)

	case *schema.OptionalNode:
		it, err := mapNode(t.Inner, ident, path, store, opt)
		if err != nil {
			return nil, err
		}
		return tsast.Union{Members: []tsast.Type{it, tsast.KwUndefined}}, nil

	case *schema.NullableNode:
		it, err := mapNode(t.Inner, ident, path, store, opt)
		if err != nil {
			return nil, err
		}
		return tsast.Union{Members: []tsast.Type{it, tsast.KwNull}}, nil

	case *schema.TupleNode:
		elems := make([]tsast.Type, 0, len(t.Items))
		for i, it := range t.Items {
			et, err := mapNode(it, ident, path+"/"+strconv.Itoa(i), store, opt)
			if err != nil {
				return nil, err
			}
			elems = append(elems, et)
		}
		return tsast.Tuple{Elems: elems}, nil

	case *schema.RecordNode:
		// The key schema is not reflected; record keys render as a string
		// index signature.
		vt, err := mapNode(t.Value, ident, path+"/value", store, opt)
		if err != nil {
			return nil, err
		}
		return tsast.TypeLiteral{Index: &tsast.IndexSig{Value: vt}}, nil

	case *schema.MapNode:
		kt, err := mapNode(t.Key, ident, path+"/key", store, opt)
		if err != nil {
			return nil, err
		}
		vt, err := mapNode(t.Value, ident, path+"/value", store, opt)
		if err != nil {
			return nil, err
		}
		return tsast.Ref{Name: "Map", Args: []tsast.Type{kt, vt}}, nil

	case *schema.SetNode:
		vt, err := mapNode(t.Value, ident, path+"/value", store, opt)
		if err != nil {
			return nil, err
		}
		return tsast.Ref{Name: "Set", Args: []tsast.Type{vt}}, nil

	case *schema.IntersectionNode:
		lt, err := mapNode(t.Left, ident, path+"/left", store, opt)
		if err != nil {
			return nil, err
		}
		rt, err := mapNode(t.Right, ident, path+"/right", store, opt)
		if err != nil {
			return nil, err
		}
		return tsast.Intersection{Members: []tsast.Type{lt, rt}}, nil

	case *schema.PromiseNode:
		it, err := mapNode(t.Inner, ident, path, store, opt)
		if err != nil {
			return nil, err
		}
		return tsast.Ref{Name: "Promise", Args: []tsast.Type{it}}, nil

	case *schema.FunctionNode:
		params := make([]tsast.Param, 0, len(t.Params))
		for i, ps := range t.Params {
			pt, err := mapNode(ps, ident, path+"/"+strconv.Itoa(i), store, opt)
			if err != nil {
				return nil, err
			}
			params = append(params, tsast.Param{Name: "args_" + strconv.Itoa(i), Type: pt})
		}
		rt, err := mapNode(t.Return, ident, path+"/returns", store, opt)
		if err != nil {
			return nil, err
		}
		// Extra arguments beyond the declared arity stay callable.
		rest := tsast.Param{
			Name: "args_" + strconv.Itoa(len(t.Params)),
			Type: tsast.Array{Elem: tsast.KwUnknown},
		}
		return tsast.Func{Params: params, Rest: &rest, Return: rt}, nil

	case *schema.DefaultNode:
		it, err := mapNode(t.Inner, ident, path, store, opt)
		if err != nil {
			return nil, err
		}
		// The default guarantees presence, so the optionality the inner
		// schema contributed is stripped from the emitted type.
		return stripUndefined(it), nil

	case *schema.LazyNode:
		// The referent's depth is unbounded, so without an override the
		// lazy schema renders as a reference the caller must declare.
		if ident != "" {
			return tsast.Ref{Name: ident}, nil
		}
		return tsast.KwAny, nil

	default:
		if opt.StrictKinds {
			return nil, Issues{Issue{
				Path:    pathOrRoot(path),
				Code:    CodeUnknownKind,
				Message: fmt.Sprintf("no mapping for schema kind %d", n.Kind()),
				Hint:    "unset StrictKinds to fall back to any",
			}}
		}
		return tsast.KwAny, nil
	}
}

func mapUnion(options []schema.Node, ident, path string, store *EnumStore, opt Options) (tsast.Type, error) {
	members := make([]tsast.Type, 0, len(options))
	for i, o := range options {
		ot, err := mapNode(o, ident, path+"/"+strconv.Itoa(i), store, opt)
		if err != nil {
			return nil, err
		}
		members = append(members, ot)
	}
	return tsast.Union{Members: members}, nil
}

func mapNativeEnum(n *schema.NativeEnumNode, ident, path string, store *EnumStore, opt Options) (tsast.Type, error) {
	hook := n.Override()
	var res any
	switch {
	case hook != nil:
		res = hook(ident)
	case ident != "":
		res = ident
	default:
		// Neither an override nor an identifier in effect; there is no
		// name to declare or reference the enum by.
		return tsast.KwUnknown, nil
	}
	id, ok := res.(string)
	if opt.SkipNativeEnumResolution {
		if ok {
			return tsast.Ref{Name: id}, nil
		}
		return overrideResult(res), nil
	}
	if !ok {
		return nil, Issues{Issue{
			Path:    pathOrRoot(path),
			Code:    CodeNativeEnumOverride,
			Message: "native-enum override must return an identifier when enum resolution is enabled",
			Hint:    "return a name string from the override, or set SkipNativeEnumResolution",
		}}
	}
	decl := tsast.EnumDecl{Name: id, Members: make([]tsast.EnumMember, 0, len(n.Members))}
	for _, m := range n.Members {
		decl.Members = append(decl.Members, tsast.EnumMember{Name: m.Name, Value: m.Value})
	}
	store.add(decl)
	return tsast.Ref{Name: id}, nil
}

// overrideResult interprets an override's return value: an identifier
// becomes a reference, a type node is used directly, anything else degrades
// to the permissive type.
func overrideResult(v any) tsast.Type {
	switch r := v.(type) {
	case string:
		return tsast.Ref{Name: r}
	case tsast.Type:
		return r
	default:
		return tsast.KwAny
	}
}

// stripUndefined removes undefined members from a union's top level,
// rebuilding rather than mutating. A union emptied entirely collapses to
// never; a single survivor is unwrapped.
func stripUndefined(t tsast.Type) tsast.Type {
	u, ok := t.(tsast.Union)
	if !ok {
		return t
	}
	kept := make([]tsast.Type, 0, len(u.Members))
	for _, m := range u.Members {
		if kw, isKw := m.(tsast.Keyword); isKw && kw == tsast.KwUndefined {
			continue
		}
		kept = append(kept, m)
	}
	switch len(kept) {
	case 0:
		return tsast.KwNever
	case 1:
		return kept[0]
	default:
		return tsast.Union{Members: kept}
	}
}

// literalType picks the literal node matching the host value's runtime
// type. Anything that is neither numeric nor boolean renders as a string
// literal.
func literalType(v any) tsast.Type {
	switch n := v.(type) {
	case bool:
		return tsast.BoolLit{Value: n}
	case int:
		return tsast.NumberLit{Value: float64(n)}
	case int32:
		return tsast.NumberLit{Value: float64(n)}
	case int64:
		return tsast.NumberLit{Value: float64(n)}
	case float32:
		return tsast.NumberLit{Value: float64(n)}
	case float64:
		return tsast.NumberLit{Value: n}
	default:
		return tsast.StringLit{Value: fmt.Sprint(v)}
	}
}

func docOf(n schema.Node) string {
	if n == nil {
		return ""
	}
	return n.Description()
}

func pathOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
