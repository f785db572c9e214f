// Package abi models JSON contract ABI items (constructors, functions,
// events, errors, fallback and receive handlers) and derives their
// canonical signatures and keccak-256 selectors.
package abi

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ABI is the parsed interface description of a contract.
type ABI struct {
	Constructor *Constructor
	Fallback    *Fallback
	Receive     *Receive
	Functions   map[string]*Function
	Events      map[string]*Event
	Errors      map[string]*Error
}

// NewABI parses a JSON ABI document, an array of items. Functions, events
// and errors are keyed by name; for overloaded names the last declaration
// wins.
func NewABI(s string) (*ABI, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}
	a := &ABI{
		Functions: map[string]*Function{},
		Events:    map[string]*Event{},
		Errors:    map[string]*Error{},
	}
	for _, r := range raw {
		var it Item
		if err := json.Unmarshal(r, &it); err != nil {
			return nil, err
		}
		a.add(it)
	}
	return a, nil
}

func (a *ABI) add(it Item) {
	switch it.kind {
	case KindConstructor:
		a.Constructor = it.constructor
	case KindFallback:
		a.Fallback = it.fallback
	case KindReceive:
		a.Receive = it.receive
	case KindFunction:
		a.Functions[it.function.Name] = it.function
	case KindEvent:
		a.Events[it.event.Name] = it.event
	case KindError:
		a.Errors[it.err.Name] = it.err
	}
}

// Items returns every item of the ABI as a borrowed Item list, constructor
// first, then fallback, receive, functions, events and errors.
func (a *ABI) Items() []Item {
	var items []Item
	if a.Constructor != nil {
		items = append(items, ConstructorItem(a.Constructor))
	}
	if a.Fallback != nil {
		items = append(items, FallbackItem(a.Fallback))
	}
	if a.Receive != nil {
		items = append(items, ReceiveItem(a.Receive))
	}
	for _, f := range a.Functions {
		items = append(items, FunctionItem(f))
	}
	for _, e := range a.Events {
		items = append(items, EventItem(e))
	}
	for _, e := range a.Errors {
		items = append(items, ErrorItem(e))
	}
	return items
}

// ItemFromValue decodes an ABI item out of an already-parsed JSON value,
// a map as produced by a generic JSON decode of a larger document that
// embeds ABI fragments.
func ItemFromValue(v interface{}) (Item, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return Item{}, fmt.Errorf("abi item: expected object, got %T", v)
	}
	tag, _ := m["type"].(string)
	if tag == "" {
		return Item{}, fmt.Errorf("abi item missing \"type\" tag")
	}

	decode := func(out interface{}) error {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName: "json",
			Result:  out,
		})
		if err != nil {
			return err
		}
		return dec.Decode(m)
	}

	var it Item
	var err error
	switch Kind(tag) {
	case KindConstructor:
		var w constructorJSON
		if err = decode(&w); err == nil {
			it, err = buildConstructor(w)
		}
	case KindFallback:
		var w fallbackJSON
		if err = decode(&w); err == nil {
			it, err = buildFallback(w)
		}
	case KindReceive:
		var w receiveJSON
		if err = decode(&w); err == nil {
			it, err = buildReceive(w)
		}
	case KindFunction:
		var w functionJSON
		if err = decode(&w); err == nil {
			it, err = buildFunction(w)
		}
	case KindEvent:
		var w eventJSON
		if err = decode(&w); err == nil {
			it, err = buildEvent(w)
		}
	case KindError:
		var w errorJSON
		if err = decode(&w); err == nil {
			it, err = buildError(w)
		}
	default:
		return Item{}, fmt.Errorf("unknown abi item type %q", tag)
	}
	if err != nil {
		return Item{}, err
	}

	// mapstructure bypasses the UnmarshalJSON identifier checks on params
	if ps, ok := it.Inputs(); ok {
		if err := checkParams(ps); err != nil {
			return Item{}, err
		}
	}
	if ps, ok := it.EventInputs(); ok {
		if err := checkEventParams(ps); err != nil {
			return Item{}, err
		}
	}
	if ps, ok := it.Outputs(); ok {
		if err := checkParams(ps); err != nil {
			return Item{}, err
		}
	}
	return it, nil
}

func checkParams(ps []Param) error {
	for i := range ps {
		if err := checkIdent(ps[i].Name); err != nil {
			return err
		}
		if err := checkParams(ps[i].Components); err != nil {
			return err
		}
	}
	return nil
}

func checkEventParams(ps []EventParam) error {
	for i := range ps {
		if err := checkIdent(ps[i].Name); err != nil {
			return err
		}
		if err := checkParams(ps[i].Components); err != nil {
			return err
		}
	}
	return nil
}
