package typemirror

// Package typemirror projects runtime validation schemas (package schema)
// into TypeScript type expressions (package tsast), so that tooling which
// already defines validation rules can derive matching static types.
//
// It provides:
//
// - Convert/ConvertNamed: one schema in, one type expression plus the enum
//   declarations discovered along the way
// - ResolveMany: many named root schemas in, one type alias per root, with
//   schema instances shared between roots (including cycles) emitted as
//   named references instead of re-inlined bodies
// - A per-instance override hook (schema.Override) as the escape hatch for
//   custom rendering of any schema instance
//
// Design policy:
// - Keep the conversion API in the root package; the schema tree lives in
//   schema/, the emitted AST and its printer in tsast/, declarative schema
//   documents in schemadoc/, and the CLI under cmd/typemirror.
// - The converter reads the schema tree; it never builds schema nodes and
//   mutates nothing except the override-hook slot during ResolveMany.
// - Prefer producing a permissive type over failing: unknown kinds degrade
//   to any unless Options.StrictKinds is set.
//
// Typical usage:
//
//	s := schema.Object(
//		schema.Field{Name: "id", Schema: schema.String()},
//		schema.Field{Name: "age", Schema: schema.Optional(schema.Number())},
//	)
//	res, err := typemirror.Convert(s, typemirror.Options{})
//	src := tsast.Print(res.Type)
