package typemirror

import (
	"github.com/typemirror/typemirror/schema"
	"github.com/typemirror/typemirror/tsast"
)

// Root is one named top-level schema handed to ResolveMany. Roots are a
// slice rather than a map so that the output alias order follows the input.
type Root struct {
	Name   string
	Schema schema.Node
}

// Resolved is the outcome of a multi-root resolution: one alias per root in
// input order, plus the enum declarations of all roots merged in visitation
// order.
type Resolved struct {
	Aliases []tsast.TypeAliasDecl
	Enums   EnumStore
}

// ResolveMany converts a set of named root schemas together. Every schema
// instance that carries a root name is pre-marked with an override returning
// that name, so any later visit to the instance, from any root at any
// depth, emits a named reference instead of re-expanding its body. This is
// what lets two roots share one declaration, and what lets cyclic graphs
// that pass through a named instance terminate.
//
// The override marks are installed on the caller's schema instances and are
// not removed afterwards; treat instances passed here as single-use for
// override purposes, or clone them first.
func ResolveMany(roots []Root, opt Options) (Resolved, error) {
	identFor := make(map[schema.Node]string, len(roots))
	schemaFor := make(map[string]schema.Node, len(roots))
	for _, r := range roots {
		if r.Schema == nil {
			continue
		}
		if _, dup := schemaFor[r.Name]; dup {
			continue
		}
		schemaFor[r.Name] = r.Schema
		if _, taken := identFor[r.Schema]; !taken {
			identFor[r.Schema] = r.Name
		}
	}

	seen := make(map[schema.Node]bool)
	var mark func(n schema.Node)
	mark = func(n schema.Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		if id, ok := identFor[n]; ok {
			n.SetOverride(func(string) any { return id })
		}
		for _, c := range schema.Children(n) {
			mark(c)
		}
	}
	for _, r := range roots {
		mark(r.Schema)
	}

	out := Resolved{Aliases: make([]tsast.TypeAliasDecl, 0, len(roots))}
	for _, r := range roots {
		if r.Schema == nil || schemaFor[r.Name] != r.Schema {
			// nil schema or a duplicate name; only the first binding of a
			// name produces an alias.
			continue
		}
		// A root must not reference itself in its own declaration head, so
		// it converts through a clone with the override stripped.
		res, err := ConvertNamed(schema.CloneWithoutOverride(r.Schema), r.Name, opt)
		if err != nil {
			return Resolved{}, err
		}
		out.Aliases = append(out.Aliases, tsast.TypeAliasDecl{Name: r.Name, Type: res.Type})
		out.Enums = append(out.Enums, res.Enums...)
	}
	return out, nil
}
