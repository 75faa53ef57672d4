package tsast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a type expression as TypeScript source. Type literals with
// named members span multiple lines; everything else stays on one line.
func Print(t Type) string {
	p := printer{}
	p.typ(t)
	return p.b.String()
}

// PrintAlias renders `export type Name = T;`.
func PrintAlias(d TypeAliasDecl) string {
	p := printer{}
	p.b.WriteString("export type ")
	p.b.WriteString(d.Name)
	p.b.WriteString(" = ")
	p.typ(d.Type)
	p.b.WriteString(";")
	return p.b.String()
}

// PrintEnum renders `export enum Name { ... }`, members one per line.
func PrintEnum(d EnumDecl) string {
	var b strings.Builder
	b.WriteString("export enum ")
	b.WriteString(d.Name)
	b.WriteString(" {\n")
	for _, m := range d.Members {
		b.WriteString("  ")
		b.WriteString(m.Name)
		b.WriteString(" = ")
		b.WriteString(enumValue(m.Value))
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String()
}

// PrintFile renders a complete declaration file: enum declarations first,
// then type aliases, separated by blank lines, with a trailing newline.
func PrintFile(enums []EnumDecl, aliases []TypeAliasDecl) string {
	parts := make([]string, 0, len(enums)+len(aliases))
	for _, e := range enums {
		parts = append(parts, PrintEnum(e))
	}
	for _, a := range aliases {
		parts = append(parts, PrintAlias(a))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

type printer struct {
	b      strings.Builder
	indent int
}

func (p *printer) nl() {
	p.b.WriteString("\n")
	p.b.WriteString(strings.Repeat("  ", p.indent))
}

func (p *printer) typ(t Type) {
	switch v := t.(type) {
	case Keyword:
		p.b.WriteString(string(v))
	case StringLit:
		p.b.WriteString(strconv.Quote(v.Value))
	case NumberLit:
		p.b.WriteString(formatNumber(v.Value))
	case BoolLit:
		p.b.WriteString(strconv.FormatBool(v.Value))
	case Array:
		p.child(v.Elem)
		p.b.WriteString("[]")
	case Tuple:
		p.b.WriteString("[")
		for i, e := range v.Elems {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.typ(e)
		}
		p.b.WriteString("]")
	case Union:
		if len(v.Members) == 0 {
			p.b.WriteString(string(KwNever))
			return
		}
		for i, m := range v.Members {
			if i > 0 {
				p.b.WriteString(" | ")
			}
			p.child(m)
		}
	case Intersection:
		for i, m := range v.Members {
			if i > 0 {
				p.b.WriteString(" & ")
			}
			p.child(m)
		}
	case Ref:
		p.b.WriteString(v.Name)
		if len(v.Args) > 0 {
			p.b.WriteString("<")
			for i, a := range v.Args {
				if i > 0 {
					p.b.WriteString(", ")
				}
				p.typ(a)
			}
			p.b.WriteString(">")
		}
	case Func:
		p.b.WriteString("(")
		for i, prm := range v.Params {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.b.WriteString(prm.Name)
			p.b.WriteString(": ")
			p.typ(prm.Type)
		}
		if v.Rest != nil {
			if len(v.Params) > 0 {
				p.b.WriteString(", ")
			}
			p.b.WriteString("...")
			p.b.WriteString(v.Rest.Name)
			p.b.WriteString(": ")
			p.typ(v.Rest.Type)
		}
		p.b.WriteString(") => ")
		p.typ(v.Return)
	case TypeLiteral:
		p.typeLiteral(v)
	default:
		p.b.WriteString(string(KwAny))
	}
}

func (p *printer) typeLiteral(v TypeLiteral) {
	if len(v.Members) == 0 && v.Index == nil {
		p.b.WriteString("{}")
		return
	}
	if len(v.Members) == 0 {
		p.b.WriteString("{ [key: string]: ")
		p.typ(v.Index.Value)
		p.b.WriteString(" }")
		return
	}
	p.b.WriteString("{")
	p.indent++
	for _, m := range v.Members {
		p.nl()
		if m.Doc != "" {
			p.b.WriteString("/** ")
			p.b.WriteString(m.Doc)
			p.b.WriteString(" */")
			p.nl()
		}
		p.b.WriteString(m.Name)
		if m.Optional {
			p.b.WriteString("?")
		}
		p.b.WriteString(": ")
		p.typ(m.Type)
		p.b.WriteString(";")
	}
	if v.Index != nil {
		p.nl()
		p.b.WriteString("[key: string]: ")
		p.typ(v.Index.Value)
		p.b.WriteString(";")
	}
	p.indent--
	p.nl()
	p.b.WriteString("}")
}

// child prints t, parenthesized when the surrounding operator binds tighter
// than t does (function types and mixed union/intersection nesting).
func (p *printer) child(t Type) {
	switch v := t.(type) {
	case Func:
		p.b.WriteString("(")
		p.typ(v)
		p.b.WriteString(")")
	case Union:
		if len(v.Members) > 1 {
			p.b.WriteString("(")
			p.typ(v)
			p.b.WriteString(")")
			return
		}
		p.typ(v)
	case Intersection:
		if len(v.Members) > 1 {
			p.b.WriteString("(")
			p.typ(v)
			p.b.WriteString(")")
			return
		}
		p.typ(v)
	default:
		p.typ(t)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func enumValue(v any) string {
	switch n := v.(type) {
	case string:
		return strconv.Quote(n)
	case float64:
		return formatNumber(n)
	case float32:
		return formatNumber(float64(n))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(n)
	default:
		return strconv.Quote(stringify(v))
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if st, ok := v.(interface{ String() string }); ok {
		return st.String()
	}
	return ""
}
