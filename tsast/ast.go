package tsast

// Package tsast models the subset of the TypeScript type grammar that the
// converter emits, together with a plain-text printer. Nodes are value
// types; structural equality via reflect.DeepEqual is part of the intended
// usage in tests.

// Type is a TypeScript type expression.
type Type interface{ isType() }

// Keyword is a keyword type (string, number, ...). The null keyword is
// included here even though TypeScript models it as a literal type; it
// prints identically.
type Keyword string

const (
	KwString    Keyword = "string"
	KwNumber    Keyword = "number"
	KwBigInt    Keyword = "bigint"
	KwBoolean   Keyword = "boolean"
	KwUndefined Keyword = "undefined"
	KwNull      Keyword = "null"
	KwVoid      Keyword = "void"
	KwAny       Keyword = "any"
	KwUnknown   Keyword = "unknown"
	KwNever     Keyword = "never"
)

func (Keyword) isType() {}

// StringLit is a string literal type, e.g. "active".
type StringLit struct{ Value string }

func (StringLit) isType() {}

// NumberLit is a numeric literal type, e.g. 42.
type NumberLit struct{ Value float64 }

func (NumberLit) isType() {}

// BoolLit is the literal type true or false.
type BoolLit struct{ Value bool }

func (BoolLit) isType() {}

// Member is one named property of a type literal.
type Member struct {
	Name     string
	Optional bool
	Doc      string
	Type     Type
}

// IndexSig is a string-keyed index signature member.
type IndexSig struct{ Value Type }

// TypeLiteral is an inline object type with ordered members and an optional
// index signature.
type TypeLiteral struct {
	Members []Member
	Index   *IndexSig
}

func (TypeLiteral) isType() {}

// Array is T[].
type Array struct{ Elem Type }

func (Array) isType() {}

// Tuple is [T0, T1, ...].
type Tuple struct{ Elems []Type }

func (Tuple) isType() {}

// Union is A | B | ....
type Union struct{ Members []Type }

func (Union) isType() {}

// Intersection is A & B & ....
type Intersection struct{ Members []Type }

func (Intersection) isType() {}

// Ref is a reference to a named type, optionally with generic arguments.
type Ref struct {
	Name string
	Args []Type
}

func (Ref) isType() {}

// Param is one function parameter.
type Param struct {
	Name string
	Type Type
}

// Func is a function type with positional parameters, an optional rest
// parameter, and a return type.
type Func struct {
	Params []Param
	Rest   *Param
	Return Type
}

func (Func) isType() {}

// TypeAliasDecl is `type Name = T`.
type TypeAliasDecl struct {
	Name string
	Type Type
}

// EnumMember is one member of an enum declaration. Numeric values print as
// numeric initializers, everything else as string initializers.
type EnumMember struct {
	Name  string
	Value any
}

// EnumDecl is an `enum Name { ... }` declaration.
type EnumDecl struct {
	Name    string
	Members []EnumMember
}
