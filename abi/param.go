package abi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Param is a single input or output of a constructor, function or error.
// Tuple parameters carry their fields in Components; any array dimensions
// of a tuple type stay on Type ("tuple[2]"), never on the components.
type Param struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	InternalType string  `json:"internalType,omitempty"`
	Components   []Param `json:"components,omitempty"`
}

// EventParam is an event input. Indexed inputs are placed in the log's
// topics by the encoding layer; the flag does not affect the event
// signature. Only top-level event inputs can be indexed, so nested
// components are plain Params.
type EventParam struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Indexed      bool    `json:"indexed"`
	InternalType string  `json:"internalType,omitempty"`
	Components   []Param `json:"components,omitempty"`
}

// UnmarshalJSON decodes the parameter and rejects names that are not valid
// identifiers.
func (p *Param) UnmarshalJSON(b []byte) error {
	type raw Param
	var v raw
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if err := checkIdent(v.Name); err != nil {
		return err
	}
	*p = Param(v)
	return nil
}

// UnmarshalJSON decodes the event parameter and rejects names that are not
// valid identifiers.
func (p *EventParam) UnmarshalJSON(b []byte) error {
	type raw EventParam
	var v raw
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if err := checkIdent(v.Name); err != nil {
		return err
	}
	*p = EventParam(v)
	return nil
}

// TypeString returns the canonical spelling of the parameter's type, with
// tuple types expanded to their parenthesized component lists. This is the
// form used in signatures.
func (p *Param) TypeString() string {
	var b strings.Builder
	p.writeType(&b)
	return b.String()
}

func (p *Param) writeType(b *strings.Builder) {
	suffix, ok := tupleSuffix(p.Type)
	if !ok {
		b.WriteString(p.Type)
		return
	}
	b.WriteByte('(')
	for i := range p.Components {
		if i > 0 {
			b.WriteByte(',')
		}
		p.Components[i].writeType(b)
	}
	b.WriteByte(')')
	b.WriteString(suffix)
}

// TypeString returns the canonical spelling of the parameter's type.
func (p *EventParam) TypeString() string {
	var b strings.Builder
	p.writeType(&b)
	return b.String()
}

func (p *EventParam) writeType(b *strings.Builder) {
	suffix, ok := tupleSuffix(p.Type)
	if !ok {
		b.WriteString(p.Type)
		return
	}
	b.WriteByte('(')
	for i := range p.Components {
		if i > 0 {
			b.WriteByte(',')
		}
		p.Components[i].writeType(b)
	}
	b.WriteByte(')')
	b.WriteString(suffix)
}

// tupleSuffix reports whether ty spells a tuple type and returns its array
// dimension suffix ("tuple[2]" -> "[2]", "tuple" -> "").
func tupleSuffix(ty string) (string, bool) {
	if !strings.HasPrefix(ty, "tuple") {
		return "", false
	}
	rest := ty[len("tuple"):]
	if rest == "" || rest[0] == '[' {
		return rest, true
	}
	return "", false
}

// checkIdent rejects non-empty names that are not valid identifiers. Empty
// names are allowed: unnamed outputs are ubiquitous in ABI documents.
func checkIdent(name string) error {
	if name != "" && !isIdent(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}

// isIdent reports whether s is a valid name token: ASCII letters, digits
// and underscores, not starting with a digit.
func isIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
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
