package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/typemirror/typemirror"
	"github.com/typemirror/typemirror/schemadoc"
	"github.com/typemirror/typemirror/tsast"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "generate":
		generateCmd(os.Args[2:])
	case "print":
		printCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "typemirror CLI\n\nUsage:\n  typemirror generate -i schema.(json|yaml) [-o out.d.ts] [-no-enum-resolve] [-strict]\n  typemirror print -i schema.(json|yaml) -type Name\n\nNotes:\n  - Emits TypeScript type aliases (and enum declarations) for the named types in the document.")
}

func generateCmd(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var in, out string
	var noEnumResolve, strict bool
	fs.StringVar(&in, "i", "", "input schema document (.json, .yaml, .yml)")
	fs.StringVar(&out, "o", "", "output filename (stdout when omitted)")
	fs.BoolVar(&noEnumResolve, "no-enum-resolve", false, "reference native enums by identifier without declaring them")
	fs.BoolVar(&strict, "strict", false, "fail on unrecognized schema kinds instead of emitting any")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	resolved := load(in, typemirror.Options{
		SkipNativeEnumResolution: noEnumResolve,
		StrictKinds:              strict,
	})
	src := tsast.PrintFile(resolved.Enums, resolved.Aliases)

	if out == "" {
		fmt.Print(src)
		return
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
	}
	if err := os.WriteFile(out, []byte(src), 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func printCmd(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	var in, typeName string
	fs.StringVar(&in, "i", "", "input schema document (.json, .yaml, .yml)")
	fs.StringVar(&typeName, "type", "", "named type to print")
	_ = fs.Parse(args)
	if in == "" || typeName == "" {
		fs.Usage()
		os.Exit(2)
	}

	resolved := load(in, typemirror.Options{})
	for _, a := range resolved.Aliases {
		if a.Name == typeName {
			fmt.Println(tsast.PrintAlias(a))
			return
		}
	}
	fatalf("type %q not found in %s", typeName, in)
}

func load(path string, opt typemirror.Options) typemirror.Resolved {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading input: %v", err)
	}

	var roots []typemirror.Root
	var diag schemadoc.Diag
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		roots, diag, err = schemadoc.LoadYAML(data)
	default:
		roots, diag, err = schemadoc.Load(data)
	}
	if err != nil {
		fatalf("loading %s: %v", path, err)
	}
	for _, w := range diag.Warnings() {
		warnf("%s: %s", path, w)
	}

	resolved, err := typemirror.ResolveMany(roots, opt)
	if err != nil {
		fatalf("resolving %s: %v", path, err)
	}
	return resolved
}

func warnf(format string, args ...any) {
	msg := fmt.Sprintf("warning: "+format, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = color.YellowString("%s", msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = color.RedString("%s", msg)
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
