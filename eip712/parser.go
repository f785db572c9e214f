// Package eip712 parses EIP-712 encodeType strings, the concatenated
// struct type definitions hashed into a structured-data type hash. See
// https://eips.ethereum.org/EIPS/eip-712#definition-of-encodetype.
package eip712

import (
	"fmt"
	"strings"

	"github.com/boolw/go-abi/typespec"
)

// PropDef is one field of a component type: a type and a name, of the
// form "type name", e.g. "uint256 foo" or "(MyStruct[23],bool) bar".
type PropDef struct {
	Type typespec.TypeSpecifier
	Name string
}

// ParsePropDef splits a field string at its last space into type and
// name, so tuple and array types without embedded spaces parse whole.
func ParsePropDef(s string) (PropDef, error) {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return PropDef{}, fmt.Errorf("invalid property definition %q", s)
	}
	ty, err := typespec.Parse(strings.TrimSpace(s[:i]))
	if err != nil {
		return PropDef{}, err
	}
	return PropDef{Type: ty, Name: strings.TrimSpace(s[i+1:])}, nil
}

// String re-renders the property as "type name".
func (p PropDef) String() string { return p.Type.Span + " " + p.Name }

// ComponentType is one named struct definition in an encodeType string.
// Span records the exact prefix of the input the definition was parsed
// from, so a caller can advance past it.
type ComponentType struct {
	Span     string
	TypeName string
	Props    []PropDef
}

// ParseComponentType parses the leading "Name(type name,...)" definition
// of the input. Property substrings are delimited by commas at nesting
// depth 1; the scan ends at the parenthesis that closes the definition.
func ParseComponentType(s string) (ComponentType, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return ComponentType{}, fmt.Errorf("invalid type string %q", s)
	}
	name, body := s[:open], s[open+1:]

	segs, rest, n, terminated := typespec.SplitDepth(body, ',', 1)
	if terminated {
		segs = append(segs, rest)
	}
	props := make([]PropDef, 0, len(segs))
	for _, seg := range segs {
		p, err := ParsePropDef(seg)
		if err != nil {
			return ComponentType{}, err
		}
		props = append(props, p)
	}
	return ComponentType{
		Span:     s[:open+1+n],
		TypeName: name,
		Props:    props,
	}, nil
}

// String re-renders the canonical definition text.
func (c *ComponentType) String() string {
	var b strings.Builder
	b.WriteString(c.TypeName)
	b.WriteByte('(')
	for i := range c.Props {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.Props[i].String())
	}
	b.WriteByte(')')
	return b.String()
}

// EncodeType is the ordered list of component types of an encodeType
// string. The first entry is the primary type by EIP-712 convention, and
// each referenced struct type has exactly one definition in the sequence.
type EncodeType struct {
	Types []ComponentType
}

// ParseEncodeType parses component definitions from the front of the
// input until the remainder no longer parses. A remainder that is not a
// valid definition ends the sequence; it is deliberately not an error, so
// partial or trailing-garbage input yields the definitions seen so far.
func ParseEncodeType(s string) EncodeType {
	var e EncodeType
	for s != "" {
		t, err := ParseComponentType(s)
		if err != nil {
			break
		}
		e.Types = append(e.Types, t)
		s = s[len(t.Span):]
	}
	return e
}

// Primary returns the primary (first) component type, or nil when the
// sequence is empty.
func (e *EncodeType) Primary() *ComponentType {
	if len(e.Types) == 0 {
		return nil
	}
	return &e.Types[0]
}

// String re-renders the concatenated canonical form.
func (e *EncodeType) String() string {
	var b strings.Builder
	for i := range e.Types {
		b.WriteString(e.Types[i].String())
	}
	return b.String()
}
