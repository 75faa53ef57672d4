// Package schemadoc loads declarative schema documents (JSON or YAML) into
// named schema roots for conversion. A document names its types; a
// {"$ref": "Name"} inside any type resolves to the same node instance as the
// named type, so shared and cyclic shapes survive loading and resolve to
// named references.
package schemadoc

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/typemirror/typemirror"
)

// Diag carries non-fatal warnings produced during loading.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }

type document struct {
	Types []namedType
}

// UnmarshalJSON accepts both forms of the types section: an object keyed by
// type name, or a list of {name, schema} entries. Object keys are read in
// document order through the token stream, so both forms yield deterministic
// root order.
func (d *document) UnmarshalJSON(data []byte) error {
	var outer struct {
		Types json.RawMessage `json:"types"`
	}
	if err := json.Unmarshal(data, &outer); err != nil {
		return err
	}
	raw := bytes.TrimSpace(outer.Types)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] != '{' {
		return json.Unmarshal(raw, &d.Types)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var s *rawSchema
		if err := dec.Decode(&s); err != nil {
			return err
		}
		d.Types = append(d.Types, namedType{Name: name, Schema: s})
	}
	_, err := dec.Token()
	return err
}

type namedType struct {
	Name   string     `json:"name"`
	Schema *rawSchema `json:"schema"`
}

type rawField struct {
	Name   string     `json:"name"`
	Schema *rawSchema `json:"schema"`
}

type rawVariant struct {
	Tag    string     `json:"tag"`
	Schema *rawSchema `json:"schema"`
}

type rawMember struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// rawSchema is the union of every kind's wire payload. Exactly one shape is
// meaningful per kind; stray fields are ignored.
type rawSchema struct {
	Ref           string       `json:"$ref,omitempty"`
	Kind          string       `json:"kind,omitempty"`
	Description   string       `json:"description,omitempty"`
	Literal       any          `json:"literal,omitempty"`
	Properties    []rawField   `json:"properties,omitempty"`
	Element       *rawSchema   `json:"element,omitempty"`
	Values        []string     `json:"values,omitempty"`
	Options       []*rawSchema `json:"options,omitempty"`
	Discriminator string       `json:"discriminator,omitempty"`
	Variants      []rawVariant `json:"variants,omitempty"`
	Members       []rawMember  `json:"members,omitempty"`
	Inner         *rawSchema   `json:"inner,omitempty"`
	Items         []*rawSchema `json:"items,omitempty"`
	Key           *rawSchema   `json:"key,omitempty"`
	Value         *rawSchema   `json:"value,omitempty"`
	Left          *rawSchema   `json:"left,omitempty"`
	Right         *rawSchema   `json:"right,omitempty"`
	Params        []*rawSchema `json:"params,omitempty"`
	Returns       *rawSchema   `json:"returns,omitempty"`
	Default       any          `json:"default,omitempty"`
}

// Load parses a JSON schema document into named roots, in document order.
func Load(data []byte) ([]typemirror.Root, Diag, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &simpleDiag{}, err
	}
	if len(doc.Types) == 0 {
		return nil, &simpleDiag{}, errors.New("schemadoc: document declares no types")
	}
	return build(doc)
}

// LoadYAML parses a YAML schema document. The document is normalized to
// string-keyed maps and re-decoded through the JSON path so both formats
// share one shape. Object-form types load in name-sorted order after the
// map round-trip; use the list form when order matters.
func LoadYAML(data []byte) ([]typemirror.Root, Diag, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &simpleDiag{}, err
	}
	jb, err := json.Marshal(normalizeYAML(node))
	if err != nil {
		return nil, &simpleDiag{}, err
	}
	return Load(jb)
}

// normalizeYAML rewrites any-keyed maps into string-keyed ones so the value
// round-trips through JSON.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalizeYAML(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalizeYAML(vv)
		}
		return out
	default:
		return v
	}
}
