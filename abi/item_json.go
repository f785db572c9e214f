package abi

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/fastjson"
)

// Wire forms of the six item kinds. Field order here fixes the serialized
// field order, which must be stable for byte-identical round trips.

type constructorJSON struct {
	Type            string          `json:"type"`
	Inputs          []Param         `json:"inputs"`
	StateMutability StateMutability `json:"stateMutability"`
}

type fallbackJSON struct {
	Type            string          `json:"type"`
	StateMutability StateMutability `json:"stateMutability"`
}

type receiveJSON struct {
	Type            string          `json:"type"`
	StateMutability StateMutability `json:"stateMutability"`
}

type functionJSON struct {
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	Inputs          []Param         `json:"inputs"`
	Outputs         []Param         `json:"outputs"`
	StateMutability StateMutability `json:"stateMutability"`
}

type eventJSON struct {
	Type      string       `json:"type"`
	Name      string       `json:"name"`
	Inputs    []EventParam `json:"inputs"`
	Anonymous bool         `json:"anonymous"`
}

type errorJSON struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	Inputs []Param `json:"inputs"`
}

func params(ps []Param) []Param {
	if ps == nil {
		return []Param{}
	}
	return ps
}

func eventParams(ps []EventParam) []EventParam {
	if ps == nil {
		return []EventParam{}
	}
	return ps
}

func (c Constructor) MarshalJSON() ([]byte, error) {
	return json.Marshal(constructorJSON{
		Type:            string(KindConstructor),
		Inputs:          params(c.Inputs),
		StateMutability: c.StateMutability.orDefault(),
	})
}

func (f Fallback) MarshalJSON() ([]byte, error) {
	return json.Marshal(fallbackJSON{
		Type:            string(KindFallback),
		StateMutability: f.StateMutability.orDefault(),
	})
}

func (r Receive) MarshalJSON() ([]byte, error) {
	return json.Marshal(receiveJSON{
		Type:            string(KindReceive),
		StateMutability: r.StateMutability.orDefault(),
	})
}

func (f Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(functionJSON{
		Type:            string(KindFunction),
		Name:            f.Name,
		Inputs:          params(f.Inputs),
		Outputs:         params(f.Outputs),
		StateMutability: f.StateMutability.orDefault(),
	})
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		Type:      string(KindEvent),
		Name:      e.Name,
		Inputs:    eventParams(e.Inputs),
		Anonymous: e.Anonymous,
	})
}

func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{
		Type:   string(KindError),
		Name:   e.Name,
		Inputs: params(e.Inputs),
	})
}

// MarshalJSON writes the wrapped item in its self-tagging wire form.
func (it Item) MarshalJSON() ([]byte, error) {
	switch it.kind {
	case KindConstructor:
		return json.Marshal(*it.constructor)
	case KindFallback:
		return json.Marshal(*it.fallback)
	case KindReceive:
		return json.Marshal(*it.receive)
	case KindFunction:
		return json.Marshal(*it.function)
	case KindEvent:
		return json.Marshal(*it.event)
	case KindError:
		return json.Marshal(*it.err)
	}
	return nil, fmt.Errorf("cannot marshal zero abi item")
}

// itemTag extracts the "type" discriminant without decoding the whole
// object.
func itemTag(b []byte) (Kind, error) {
	tag := fastjson.GetString(b, "type")
	if tag == "" {
		return "", fmt.Errorf("abi item missing \"type\" tag")
	}
	return Kind(tag), nil
}

func checkMutability(s StateMutability) (StateMutability, error) {
	s = s.orDefault()
	if !s.valid() {
		return "", fmt.Errorf("invalid state mutability %q", s)
	}
	return s, nil
}

func buildConstructor(v constructorJSON) (Item, error) {
	sm, err := checkMutability(v.StateMutability)
	if err != nil {
		return Item{}, err
	}
	c := &Constructor{Inputs: v.Inputs, StateMutability: sm}
	return Item{kind: KindConstructor, owned: true, constructor: c}, nil
}

func buildFallback(v fallbackJSON) (Item, error) {
	sm, err := checkMutability(v.StateMutability)
	if err != nil {
		return Item{}, err
	}
	return Item{kind: KindFallback, owned: true, fallback: &Fallback{StateMutability: sm}}, nil
}

func buildReceive(v receiveJSON) (Item, error) {
	sm, err := checkMutability(v.StateMutability)
	if err != nil {
		return Item{}, err
	}
	return Item{kind: KindReceive, owned: true, receive: &Receive{StateMutability: sm}}, nil
}

func buildFunction(v functionJSON) (Item, error) {
	if err := checkIdent(v.Name); err != nil {
		return Item{}, err
	}
	sm, err := checkMutability(v.StateMutability)
	if err != nil {
		return Item{}, err
	}
	f := &Function{Name: v.Name, Inputs: v.Inputs, Outputs: v.Outputs, StateMutability: sm}
	return Item{kind: KindFunction, owned: true, function: f}, nil
}

func buildEvent(v eventJSON) (Item, error) {
	if err := checkIdent(v.Name); err != nil {
		return Item{}, err
	}
	e := &Event{Name: v.Name, Inputs: v.Inputs, Anonymous: v.Anonymous}
	return Item{kind: KindEvent, owned: true, event: e}, nil
}

func buildError(v errorJSON) (Item, error) {
	if err := checkIdent(v.Name); err != nil {
		return Item{}, err
	}
	return Item{kind: KindError, owned: true, err: &Error{Name: v.Name, Inputs: v.Inputs}}, nil
}

func decodeItem(b []byte) (Item, error) {
	kind, err := itemTag(b)
	if err != nil {
		return Item{}, err
	}
	switch kind {
	case KindConstructor:
		var v constructorJSON
		if err := json.Unmarshal(b, &v); err != nil {
			return Item{}, err
		}
		return buildConstructor(v)
	case KindFallback:
		var v fallbackJSON
		if err := json.Unmarshal(b, &v); err != nil {
			return Item{}, err
		}
		return buildFallback(v)
	case KindReceive:
		var v receiveJSON
		if err := json.Unmarshal(b, &v); err != nil {
			return Item{}, err
		}
		return buildReceive(v)
	case KindFunction:
		var v functionJSON
		if err := json.Unmarshal(b, &v); err != nil {
			return Item{}, err
		}
		return buildFunction(v)
	case KindEvent:
		var v eventJSON
		if err := json.Unmarshal(b, &v); err != nil {
			return Item{}, err
		}
		return buildEvent(v)
	case KindError:
		var v errorJSON
		if err := json.Unmarshal(b, &v); err != nil {
			return Item{}, err
		}
		return buildError(v)
	}
	return Item{}, fmt.Errorf("unknown abi item type %q", kind)
}

// UnmarshalJSON decodes any of the six item kinds by its "type" tag.
func (it *Item) UnmarshalJSON(b []byte) error {
	v, err := decodeItem(b)
	if err != nil {
		return err
	}
	*it = v
	return nil
}

// kindMismatch reports reading an item of one kind out of JSON tagged as
// another.
func kindMismatch(want, got Kind) error {
	return fmt.Errorf("abi item kind mismatch: expected %q, got %q", want, got)
}

// UnmarshalJSON decodes a constructor, rejecting JSON tagged as a
// different kind.
func (c *Constructor) UnmarshalJSON(b []byte) error {
	it, err := decodeItem(b)
	if err != nil {
		return err
	}
	v, ok := it.Constructor()
	if !ok {
		return kindMismatch(KindConstructor, it.kind)
	}
	*c = *v
	return nil
}

// UnmarshalJSON decodes a fallback handler, rejecting JSON tagged as a
// different kind.
func (f *Fallback) UnmarshalJSON(b []byte) error {
	it, err := decodeItem(b)
	if err != nil {
		return err
	}
	v, ok := it.Fallback()
	if !ok {
		return kindMismatch(KindFallback, it.kind)
	}
	*f = *v
	return nil
}

// UnmarshalJSON decodes a receive handler, rejecting JSON tagged as a
// different kind.
func (r *Receive) UnmarshalJSON(b []byte) error {
	it, err := decodeItem(b)
	if err != nil {
		return err
	}
	v, ok := it.Receive()
	if !ok {
		return kindMismatch(KindReceive, it.kind)
	}
	*r = *v
	return nil
}

// UnmarshalJSON decodes a function, rejecting JSON tagged as a different
// kind.
func (f *Function) UnmarshalJSON(b []byte) error {
	it, err := decodeItem(b)
	if err != nil {
		return err
	}
	v, ok := it.Function()
	if !ok {
		return kindMismatch(KindFunction, it.kind)
	}
	*f = *v
	return nil
}

// UnmarshalJSON decodes an event, rejecting JSON tagged as a different
// kind.
func (e *Event) UnmarshalJSON(b []byte) error {
	it, err := decodeItem(b)
	if err != nil {
		return err
	}
	v, ok := it.Event()
	if !ok {
		return kindMismatch(KindEvent, it.kind)
	}
	*e = *v
	return nil
}

// UnmarshalJSON decodes an error item, rejecting JSON tagged as a
// different kind.
func (e *Error) UnmarshalJSON(b []byte) error {
	it, err := decodeItem(b)
	if err != nil {
		return err
	}
	v, ok := it.Error()
	if !ok {
		return kindMismatch(KindError, it.kind)
	}
	*e = *v
	return nil
}
