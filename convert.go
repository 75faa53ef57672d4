package typemirror

import (
	"github.com/typemirror/typemirror/schema"
	"github.com/typemirror/typemirror/tsast"
)

// Options configures one conversion call. The zero value is the default
// configuration.
type Options struct {
	// SkipNativeEnumResolution leaves native enums as bare references to the
	// identifier supplied by their override, shifting responsibility for
	// declaring that enum onto the caller. By default native enums are
	// materialized into the enum store.
	SkipNativeEnumResolution bool
	// StrictKinds turns the permissive any fallback for unrecognized schema
	// kinds into a coded error.
	StrictKinds bool
}

// EnumStore accumulates the enum declarations discovered during one
// conversion, in append order across the depth-first traversal. Entries are
// not deduplicated: a native enum reached from two call sites within one
// conversion is appended twice.
type EnumStore []tsast.EnumDecl

func (s *EnumStore) add(d tsast.EnumDecl) { *s = append(*s, d) }

// Result is the outcome of a single-root conversion.
type Result struct {
	Type  tsast.Type
	Enums EnumStore
}

// Convert maps one schema to a TypeScript type expression. The input graph
// is never mutated.
func Convert(n schema.Node, opt Options) (Result, error) {
	return ConvertNamed(n, "", opt)
}

// ConvertNamed is Convert with an identifier in effect for the conversion.
// The identifier is consumed by lazy schemas without an override (which emit
// a reference to it, leaving the declaration to the caller) and by
// native-enum materialization.
func ConvertNamed(n schema.Node, identifier string, opt Options) (Result, error) {
	store := EnumStore{}
	t, err := mapNode(n, identifier, "", &store, opt)
	if err != nil {
		return Result{}, err
	}
	return Result{Type: t, Enums: store}, nil
}
