package schema

// Children returns the direct child schemas of n in a stable order. Wrapper
// kinds (optional, nullable, default, effects, promise, lazy) contribute
// their unwrapped inner schema; function kinds contribute parameters then
// the return schema. Kinds without children (and third-party nodes) return
// nil.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *ObjectNode:
		out := make([]Node, 0, len(t.Fields))
		for _, f := range t.Fields {
			out = append(out, f.Schema)
		}
		return out
	case *ArrayNode:
		return []Node{t.Elem}
	case *UnionNode:
		return append([]Node(nil), t.Options...)
	case *DiscriminatedUnionNode:
		out := make([]Node, 0, len(t.Variants))
		for _, v := range t.Variants {
			out = append(out, v.Schema)
		}
		return out
	case *EffectsNode:
		return []Node{t.Inner}
	case *OptionalNode:
		return []Node{t.Inner}
	case *NullableNode:
		return []Node{t.Inner}
	case *TupleNode:
		return append([]Node(nil), t.Items...)
	case *RecordNode:
		return []Node{t.Key, t.Value}
	case *MapNode:
		return []Node{t.Key, t.Value}
	case *SetNode:
		return []Node{t.Value}
	case *IntersectionNode:
		return []Node{t.Left, t.Right}
	case *PromiseNode:
		return []Node{t.Inner}
	case *FunctionNode:
		out := append([]Node(nil), t.Params...)
		return append(out, t.Return)
	case *DefaultNode:
		return []Node{t.Inner}
	case *LazyNode:
		return []Node{t.Resolve()}
	default:
		return nil
	}
}

// AcceptsUndefined reports whether a value of undefined would validate
// against n. Object conversion uses this to decide property optionality.
func AcceptsUndefined(n Node) bool {
	if n == nil {
		return false
	}
	switch t := n.(type) {
	case *OptionalNode, *DefaultNode, *UndefinedNode, *AnyNode, *UnknownNode, *VoidNode:
		return true
	case *UnionNode:
		for _, o := range t.Options {
			if AcceptsUndefined(o) {
				return true
			}
		}
		return false
	case *EffectsNode:
		return AcceptsUndefined(t.Inner)
	default:
		return false
	}
}

// CloneWithoutOverride returns a shallow copy of n with no override
// installed. Children are shared with the original, so overrides installed
// on nested instances remain visible through the clone. Third-party nodes
// are returned unchanged.
func CloneWithoutOverride(n Node) Node {
	var c Node
	switch t := n.(type) {
	case *StringNode:
		c = dup(t)
	case *NumberNode:
		c = dup(t)
	case *BigIntNode:
		c = dup(t)
	case *BoolNode:
		c = dup(t)
	case *DateNode:
		c = dup(t)
	case *UndefinedNode:
		c = dup(t)
	case *NullNode:
		c = dup(t)
	case *VoidNode:
		c = dup(t)
	case *AnyNode:
		c = dup(t)
	case *UnknownNode:
		c = dup(t)
	case *NeverNode:
		c = dup(t)
	case *LiteralNode:
		c = dup(t)
	case *ObjectNode:
		c = dup(t)
	case *ArrayNode:
		c = dup(t)
	case *EnumNode:
		c = dup(t)
	case *UnionNode:
		c = dup(t)
	case *DiscriminatedUnionNode:
		c = dup(t)
	case *EffectsNode:
		c = dup(t)
	case *NativeEnumNode:
		c = dup(t)
	case *OptionalNode:
		c = dup(t)
	case *NullableNode:
		c = dup(t)
	case *TupleNode:
		c = dup(t)
	case *RecordNode:
		c = dup(t)
	case *MapNode:
		c = dup(t)
	case *SetNode:
		c = dup(t)
	case *IntersectionNode:
		c = dup(t)
	case *PromiseNode:
		c = dup(t)
	case *FunctionNode:
		c = dup(t)
	case *DefaultNode:
		c = dup(t)
	case *LazyNode:
		c = dup(t)
	default:
		return n
	}
	c.SetOverride(nil)
	return c
}

func dup[T any](p *T) *T {
	c := *p
	return &c
}
