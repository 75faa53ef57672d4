package schema

// Package schema defines the runtime validation schema tree consumed by the
// converter. Nodes are composable: primitives at the leaves, combinators
// (object, union, tuple, ...) above them. The converter reads this tree; it
// never creates or mutates nodes apart from the override-hook slot.

// Kind identifies a Node variant.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBigInt
	KindBoolean
	KindDate
	KindUndefined
	KindNull
	KindVoid
	KindAny
	KindUnknown
	KindNever
	KindLiteral
	KindObject
	KindArray
	KindEnum
	KindUnion
	KindDiscriminatedUnion
	KindEffects
	KindNativeEnum
	KindOptional
	KindNullable
	KindTuple
	KindRecord
	KindMap
	KindSet
	KindIntersection
	KindPromise
	KindFunction
	KindDefault
	KindLazy
)

var kindNames = map[Kind]string{
	KindString:             "string",
	KindNumber:             "number",
	KindBigInt:             "bigint",
	KindBoolean:            "boolean",
	KindDate:               "date",
	KindUndefined:          "undefined",
	KindNull:               "null",
	KindVoid:               "void",
	KindAny:                "any",
	KindUnknown:            "unknown",
	KindNever:              "never",
	KindLiteral:            "literal",
	KindObject:             "object",
	KindArray:              "array",
	KindEnum:               "enum",
	KindUnion:              "union",
	KindDiscriminatedUnion: "discriminatedUnion",
	KindEffects:            "effects",
	KindNativeEnum:         "nativeEnum",
	KindOptional:           "optional",
	KindNullable:           "nullable",
	KindTuple:              "tuple",
	KindRecord:             "record",
	KindMap:                "map",
	KindSet:                "set",
	KindIntersection:       "intersection",
	KindPromise:            "promise",
	KindFunction:           "function",
	KindDefault:            "default",
	KindLazy:               "lazy",
}

// String returns the wire name of the kind ("" for kinds this package does
// not know about).
func (k Kind) String() string { return kindNames[k] }

// KindFromName resolves a wire name back to its Kind. The second result is
// false for unknown names.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Override is the per-instance escape hatch consulted by the converter
// before kind-based dispatch. It receives the identifier in effect for the
// current conversion and returns either a tsast.Type or an identifier
// string; any other value falls back to the permissive type.
type Override func(identifier string) any

// Node is one schema tree node. Concrete nodes in this package are pointer
// types so that map-by-identity (the converter's sharing/cycle detection)
// behaves as expected. Third-party Node implementations are allowed; the
// converter treats kinds it does not recognize permissively.
type Node interface {
	Kind() Kind
	// Description returns the human description attached to this node, or "".
	Description() string
	// Override returns the conversion override installed on this instance,
	// or nil.
	Override() Override
	// SetOverride installs (or clears, with nil) the conversion override.
	SetOverride(Override)
}

// annot carries the per-instance annotations shared by every node.
type annot struct {
	desc     string
	override Override
}

func (a *annot) Description() string { return a.desc }

func (a *annot) Override() Override { return a.override }

func (a *annot) SetOverride(fn Override) { a.override = fn }

func (a *annot) setDescription(s string) { a.desc = s }

type describable interface{ setDescription(string) }

// Describe attaches a description to a node and returns the node unchanged
// otherwise. The converter copies property descriptions onto the emitted
// member as a doc comment.
func Describe[N Node](n N, text string) N {
	if d, ok := any(n).(describable); ok {
		d.setDescription(text)
	}
	return n
}
