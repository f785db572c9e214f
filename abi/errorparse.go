package abi

import (
	"fmt"
	"strings"

	"github.com/boolw/go-abi/typespec"
)

// ParseError parses a human-written error signature of the form
// "Name(type name,type name,...)" into an Error. Parameters are separated
// by commas outside any nested tuple; the single space between a
// parameter's type and its name is the only whitespace allowed.
func ParseError(s string) (*Error, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return nil, fmt.Errorf("error signature %q: no opening parenthesis", s)
	}
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("error signature %q: no closing parenthesis", s)
	}
	params, err := parseErrorParams(s[open+1 : len(s)-1])
	if err != nil {
		return nil, err
	}
	return &Error{Name: s[:open], Inputs: params}, nil
}

func parseErrorParams(s string) ([]Param, error) {
	segs, rest, _, terminated := typespec.SplitDepth(s, ',', 0)
	if terminated {
		return nil, fmt.Errorf("parameters %q: unexpected ')'", s)
	}
	if rest != "" {
		segs = append(segs, rest)
	}
	params := make([]Param, 0, len(segs))
	for _, seg := range segs {
		p, err := parseErrorParam(strings.TrimSpace(seg))
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

// parseErrorParam splits one "type name" pair at its first space. Tuple
// types are decomposed into their component specifiers and re-parsed one
// by one.
func parseErrorParam(s string) (Param, error) {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return Param{}, fmt.Errorf("parameter %q: expected \"type name\"", s)
	}
	tyStr, name := s[:i], s[i+1:]
	if strings.IndexByte(name, ' ') >= 0 {
		return Param{}, fmt.Errorf("parameter %q: unexpected whitespace", s)
	}

	spec, err := typespec.Parse(tyStr)
	if err != nil {
		return Param{}, fmt.Errorf("parameter %q: %v", s, err)
	}

	p := Param{Name: name}
	if tuple := spec.Stem.Tuple; tuple != nil {
		p.Type = "tuple" + spec.Suffix()
		p.Components = make([]Param, 0, len(tuple.Types))
		for _, inner := range tuple.Types {
			// the trailing space synthesizes an empty name for the
			// anonymous tuple field
			c, err := parseErrorParam(inner.Span + " ")
			if err != nil {
				return Param{}, err
			}
			p.Components = append(p.Components, c)
		}
	} else {
		p.Type = tyStr
	}
	return p, nil
}
