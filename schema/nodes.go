package schema

// Primitive nodes. Each constructor returns a fresh instance so that
// annotations and overrides stay per-call-site.

type StringNode struct{ annot }

func (*StringNode) Kind() Kind { return KindString }

// String returns a string schema.
func String() *StringNode { return &StringNode{} }

type NumberNode struct{ annot }

func (*NumberNode) Kind() Kind { return KindNumber }

// Number returns a number schema.
func Number() *NumberNode { return &NumberNode{} }

type BigIntNode struct{ annot }

func (*BigIntNode) Kind() Kind { return KindBigInt }

// BigInt returns a bigint schema.
func BigInt() *BigIntNode { return &BigIntNode{} }

type BoolNode struct{ annot }

func (*BoolNode) Kind() Kind { return KindBoolean }

// Bool returns a boolean schema.
func Bool() *BoolNode { return &BoolNode{} }

type DateNode struct{ annot }

func (*DateNode) Kind() Kind { return KindDate }

// Date returns a date schema.
func Date() *DateNode { return &DateNode{} }

type UndefinedNode struct{ annot }

func (*UndefinedNode) Kind() Kind { return KindUndefined }

// Undef returns an undefined schema.
func Undef() *UndefinedNode { return &UndefinedNode{} }

type NullNode struct{ annot }

func (*NullNode) Kind() Kind { return KindNull }

// Null returns a null schema.
func Null() *NullNode { return &NullNode{} }

type VoidNode struct{ annot }

func (*VoidNode) Kind() Kind { return KindVoid }

// Void returns a void schema.
func Void() *VoidNode { return &VoidNode{} }

type AnyNode struct{ annot }

func (*AnyNode) Kind() Kind { return KindAny }

// Any returns an any schema.
func Any() *AnyNode { return &AnyNode{} }

type UnknownNode struct{ annot }

func (*UnknownNode) Kind() Kind { return KindUnknown }

// Unknown returns an unknown schema.
func Unknown() *UnknownNode { return &UnknownNode{} }

type NeverNode struct{ annot }

func (*NeverNode) Kind() Kind { return KindNever }

// Never returns a never schema.
func Never() *NeverNode { return &NeverNode{} }

// LiteralNode matches exactly one scalar value.
type LiteralNode struct {
	annot
	Value any
}

func (*LiteralNode) Kind() Kind { return KindLiteral }

// Literal returns a literal schema for the given scalar value.
func Literal(v any) *LiteralNode { return &LiteralNode{Value: v} }

// Field is one named object property. Order of fields is definition order
// and is preserved through conversion.
type Field struct {
	Name   string
	Schema Node
}

// ObjectNode describes an object shape with ordered properties.
type ObjectNode struct {
	annot
	Fields []Field
}

func (*ObjectNode) Kind() Kind { return KindObject }

// Object returns an object schema over the given ordered fields.
func Object(fields ...Field) *ObjectNode { return &ObjectNode{Fields: fields} }

type ArrayNode struct {
	annot
	Elem Node
}

func (*ArrayNode) Kind() Kind { return KindArray }

// Array returns an array schema over elem.
func Array(elem Node) *ArrayNode { return &ArrayNode{Elem: elem} }

// EnumNode is a closed set of string values.
type EnumNode struct {
	annot
	Values []string
}

func (*EnumNode) Kind() Kind { return KindEnum }

// Enum returns a string-enum schema over the given values, order preserved.
func Enum(values ...string) *EnumNode { return &EnumNode{Values: values} }

type UnionNode struct {
	annot
	Options []Node
}

func (*UnionNode) Kind() Kind { return KindUnion }

// Union returns a union schema over the given options, order preserved.
func Union(options ...Node) *UnionNode { return &UnionNode{Options: options} }

// Variant is one tagged member of a discriminated union.
type Variant struct {
	Tag    string
	Schema Node
}

// DiscriminatedUnionNode selects a variant by a discriminator property.
type DiscriminatedUnionNode struct {
	annot
	Discriminator string
	Variants      []Variant
}

func (*DiscriminatedUnionNode) Kind() Kind { return KindDiscriminatedUnion }

// DiscriminatedUnion returns a discriminated-union schema. The variant order
// is preserved when the union is flattened during conversion.
func DiscriminatedUnion(discriminator string, variants ...Variant) *DiscriminatedUnionNode {
	return &DiscriminatedUnionNode{Discriminator: discriminator, Variants: variants}
}

// EffectsNode wraps an inner schema with a runtime refinement or transform.
// Effects have no static-type footprint; conversion sees through them.
type EffectsNode struct {
	annot
	Inner Node
}

func (*EffectsNode) Kind() Kind { return KindEffects }

// Effects wraps inner in an effects schema.
func Effects(inner Node) *EffectsNode { return &EffectsNode{Inner: inner} }

// EnumMember is one member of a native enum. Value is a string or a number.
type EnumMember struct {
	Name  string
	Value any
}

// NativeEnumNode mirrors a host-language enum declaration.
type NativeEnumNode struct {
	annot
	Members []EnumMember
}

func (*NativeEnumNode) Kind() Kind { return KindNativeEnum }

// NativeEnum returns a native-enum schema over the given ordered members.
func NativeEnum(members ...EnumMember) *NativeEnumNode {
	return &NativeEnumNode{Members: members}
}

type OptionalNode struct {
	annot
	Inner Node
}

func (*OptionalNode) Kind() Kind { return KindOptional }

// Optional widens inner to also accept undefined.
func Optional(inner Node) *OptionalNode { return &OptionalNode{Inner: inner} }

type NullableNode struct {
	annot
	Inner Node
}

func (*NullableNode) Kind() Kind { return KindNullable }

// Nullable widens inner to also accept null.
func Nullable(inner Node) *NullableNode { return &NullableNode{Inner: inner} }

type TupleNode struct {
	annot
	Items []Node
}

func (*TupleNode) Kind() Kind { return KindTuple }

// Tuple returns a fixed-length tuple schema over the given items.
func Tuple(items ...Node) *TupleNode { return &TupleNode{Items: items} }

// RecordNode maps arbitrary keys of the key schema to values of the value
// schema.
type RecordNode struct {
	annot
	Key   Node
	Value Node
}

func (*RecordNode) Kind() Kind { return KindRecord }

// Record returns a record schema.
func Record(key, value Node) *RecordNode { return &RecordNode{Key: key, Value: value} }

type MapNode struct {
	annot
	Key   Node
	Value Node
}

func (*MapNode) Kind() Kind { return KindMap }

// MapOf returns a map schema.
func MapOf(key, value Node) *MapNode { return &MapNode{Key: key, Value: value} }

type SetNode struct {
	annot
	Value Node
}

func (*SetNode) Kind() Kind { return KindSet }

// SetOf returns a set schema.
func SetOf(value Node) *SetNode { return &SetNode{Value: value} }

type IntersectionNode struct {
	annot
	Left  Node
	Right Node
}

func (*IntersectionNode) Kind() Kind { return KindIntersection }

// Intersection returns an intersection schema of left and right.
func Intersection(left, right Node) *IntersectionNode {
	return &IntersectionNode{Left: left, Right: right}
}

type PromiseNode struct {
	annot
	Inner Node
}

func (*PromiseNode) Kind() Kind { return KindPromise }

// Promise wraps inner in a promise schema.
func Promise(inner Node) *PromiseNode { return &PromiseNode{Inner: inner} }

// FunctionNode declares parameter schemas and a return schema. Callers may
// pass additional arguments beyond the declared arity; conversion reflects
// that with a variadic rest parameter.
type FunctionNode struct {
	annot
	Params []Node
	Return Node
}

func (*FunctionNode) Kind() Kind { return KindFunction }

// Function returns a function schema.
func Function(params []Node, ret Node) *FunctionNode {
	return &FunctionNode{Params: params, Return: ret}
}

// DefaultNode substitutes Value when the input is absent, which guarantees
// presence at the type level even when Inner itself is optional.
type DefaultNode struct {
	annot
	Inner Node
	Value any
}

func (*DefaultNode) Kind() Kind { return KindDefault }

// Default wraps inner with a default value.
func Default(inner Node, value any) *DefaultNode {
	return &DefaultNode{Inner: inner, Value: value}
}

// LazyNode defers schema construction, enabling self-reference. The thunk
// is evaluated at most once; repeated resolution yields the same instance so
// identity-based traversal stays stable.
type LazyNode struct {
	annot
	thunk    func() Node
	resolved Node
	done     bool
}

func (*LazyNode) Kind() Kind { return KindLazy }

// Lazy returns a lazy schema around thunk.
func Lazy(thunk func() Node) *LazyNode { return &LazyNode{thunk: thunk} }

// Resolve evaluates the thunk (once) and returns the referenced schema. A
// nil thunk resolves to nil.
func (l *LazyNode) Resolve() Node {
	if !l.done {
		if l.thunk != nil {
			l.resolved = l.thunk()
		}
		l.done = true
	}
	return l.resolved
}
