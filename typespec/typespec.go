// Package typespec parses single Solidity type tokens such as "uint256",
// "(bool,address)[2][]" or "MyStruct[3]" into a structured form while
// preserving the exact input substring each piece was parsed from.
package typespec

import (
	"fmt"
	"strconv"
	"strings"
)

// DynamicSize marks a dynamic array dimension ("[]").
const DynamicSize = -1

// TypeSpecifier is a parsed type token: a stem followed by zero or more
// trailing array dimensions. Span holds the exact substring the specifier
// was parsed from.
type TypeSpecifier struct {
	Span  string
	Stem  TypeStem
	Sizes []int
}

// Suffix returns the array dimension suffix text of the specifier
// ("(bool,address)[2][]" -> "[2][]", "uint256" -> "").
func (t *TypeSpecifier) Suffix() string {
	return t.Span[len(t.Stem.Span()):]
}

// TypeStem is the base of a type specifier: exactly one of Root or Tuple is
// set.
type TypeStem struct {
	Root  *RootType
	Tuple *TupleSpecifier
}

// Span returns the substring the stem was parsed from.
func (s *TypeStem) Span() string {
	if s.Tuple != nil {
		return s.Tuple.Span
	}
	return s.Root.Span
}

// RootType is an elementary or previously defined type name.
type RootType struct {
	Span string
}

// TupleSpecifier is a parenthesized list of type specifiers, each
// independently parsed. An optional leading "tuple" keyword is accepted.
type TupleSpecifier struct {
	Span  string
	Types []TypeSpecifier
}

// Parse parses a single type token. The whole input must be consumed.
func Parse(s string) (TypeSpecifier, error) {
	if s == "" {
		return TypeSpecifier{}, fmt.Errorf("empty type string")
	}

	var stem TypeStem
	var rest string

	open := 0
	if strings.HasPrefix(s, "tuple(") {
		open = len("tuple")
	}
	if s[open] == '(' {
		end := matchParen(s, open)
		if end < 0 {
			return TypeSpecifier{}, fmt.Errorf("type %q: unbalanced parentheses", s)
		}
		tuple, err := parseTuple(s[:end+1], s[open+1:end])
		if err != nil {
			return TypeSpecifier{}, err
		}
		stem = TypeStem{Tuple: tuple}
		rest = s[end+1:]
	} else {
		root := s
		if i := strings.IndexByte(s, '['); i >= 0 {
			root, rest = s[:i], s[i:]
		}
		if !validRoot(root) {
			return TypeSpecifier{}, fmt.Errorf("invalid type name %q", root)
		}
		stem = TypeStem{Root: &RootType{Span: root}}
	}

	sizes, err := parseSizes(s, rest)
	if err != nil {
		return TypeSpecifier{}, err
	}
	return TypeSpecifier{Span: s, Stem: stem, Sizes: sizes}, nil
}

func parseTuple(span, inner string) (*TupleSpecifier, error) {
	tuple := &TupleSpecifier{Span: span}
	if strings.TrimSpace(inner) == "" {
		return tuple, nil
	}
	segs, rest, _, terminated := SplitDepth(inner, ',', 0)
	if terminated {
		return nil, fmt.Errorf("tuple %q: unbalanced parentheses", span)
	}
	for _, seg := range append(segs, rest) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, fmt.Errorf("tuple %q: empty element", span)
		}
		t, err := Parse(seg)
		if err != nil {
			return nil, err
		}
		tuple.Types = append(tuple.Types, t)
	}
	return tuple, nil
}

func parseSizes(whole, rest string) ([]int, error) {
	var sizes []int
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("type %q: unexpected %q after type", whole, rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("type %q: unclosed array dimension", whole)
		}
		dim := rest[1:end]
		if dim == "" {
			sizes = append(sizes, DynamicSize)
		} else {
			n, err := strconv.Atoi(dim)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("type %q: invalid array size %q", whole, dim)
			}
			sizes = append(sizes, n)
		}
		rest = rest[end+1:]
	}
	return sizes, nil
}

// matchParen returns the index of the ')' closing the '(' at open, or -1.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func validRoot(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
