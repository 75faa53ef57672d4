package typemirror

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeNativeEnumOverride reports a native-enum override whose result is
	// not an identifier while enum resolution is enabled. This is a caller
	// programming error: the override contract requires an identifier so
	// the materialized enum declaration can be named.
	CodeNativeEnumOverride = "native_enum_override"
	// CodeUnknownKind reports a schema kind the mapper has no case for.
	// Only surfaced under Options.StrictKinds; the default policy converts
	// unknown kinds to the permissive any type.
	CodeUnknownKind = "unknown_kind"
)

// Issue represents a single conversion problem.
type Issue struct {
	Path    string // JSON Pointer into the schema tree (for example: /user/roles).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
}

// Issues is a collection of conversion errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_kind at /user/roles
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
