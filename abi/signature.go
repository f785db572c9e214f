package abi

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Selector is the 4-byte dispatch identifier of a function or error.
type Selector [4]byte

// Hex returns the selector as 0x-prefixed hex.
func (s Selector) Hex() string { return "0x" + hex.EncodeToString(s[:]) }

// Hash is a 32-byte keccak-256 digest. An event's hash becomes its topic 0
// unless the event is anonymous.
type Hash [32]byte

// Hex returns the hash as 0x-prefixed hex.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func keccak256(s string) Hash {
	d := sha3.NewLegacyKeccak256()
	d.Write([]byte(s))
	var h Hash
	d.Sum(h[:0])
	return h
}

func selector(sig string) Selector {
	h := keccak256(sig)
	var s Selector
	copy(s[:], h[:4])
	return s
}

func writeParams(b *strings.Builder, params []Param) {
	b.WriteByte('(')
	for i := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		params[i].writeType(b)
	}
	b.WriteByte(')')
}

func signature(name string, inputs []Param) string {
	var b strings.Builder
	b.WriteString(name)
	writeParams(&b, inputs)
	return b.String()
}

// Signature returns the function's canonical signature,
// "name(type,type,...)" with tuples expanded. This is the selector hash
// preimage.
func (f *Function) Signature() string { return signature(f.Name, f.Inputs) }

// SignatureFull returns the signature followed by the parenthesized output
// types.
func (f *Function) SignatureFull() string {
	var b strings.Builder
	b.WriteString(f.Name)
	writeParams(&b, f.Inputs)
	writeParams(&b, f.Outputs)
	return b.String()
}

// Selector returns the first 4 bytes of keccak256(f.Signature()).
func (f *Function) Selector() Selector { return selector(f.Signature()) }

// Signature returns the error's canonical signature, the selector hash
// preimage.
func (e *Error) Signature() string { return signature(e.Name, e.Inputs) }

// Selector returns the first 4 bytes of keccak256(e.Signature()).
func (e *Error) Selector() Selector { return selector(e.Signature()) }

// Signature returns the event's canonical signature over all inputs,
// indexed or not, in declaration order.
func (e *Event) Signature() string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteByte('(')
	for i := range e.Inputs {
		if i > 0 {
			b.WriteByte(',')
		}
		e.Inputs[i].writeType(&b)
	}
	b.WriteByte(')')
	return b.String()
}

// Selector returns keccak256(e.Signature()), the event's topic 0 for
// non-anonymous events.
func (e *Event) Selector() Hash { return keccak256(e.Signature()) }
