package abi

// Kind discriminates the six JSON ABI item kinds. Its value is the wire
// tag carried in the "type" field.
type Kind string

const (
	KindConstructor Kind = "constructor"
	KindFallback    Kind = "fallback"
	KindReceive     Kind = "receive"
	KindFunction    Kind = "function"
	KindEvent       Kind = "event"
	KindError       Kind = "error"
)

// StateMutability describes how a function interacts with chain state.
type StateMutability string

const (
	Pure       StateMutability = "pure"
	View       StateMutability = "view"
	NonPayable StateMutability = "nonpayable"
	Payable    StateMutability = "payable"
)

func (s StateMutability) valid() bool {
	switch s {
	case Pure, View, NonPayable, Payable:
		return true
	}
	return false
}

// orDefault maps the historical absent value to nonpayable.
func (s StateMutability) orDefault() StateMutability {
	if s == "" {
		return NonPayable
	}
	return s
}

// Constructor is a contract constructor. It is anonymous and has no
// outputs.
type Constructor struct {
	Inputs          []Param
	StateMutability StateMutability
}

// Fallback is the contract's fallback handler.
type Fallback struct {
	StateMutability StateMutability
}

// Receive is the contract's plain-value receive handler.
type Receive struct {
	StateMutability StateMutability
}

// Function is a named contract function.
type Function struct {
	Name            string
	Inputs          []Param
	Outputs         []Param
	StateMutability StateMutability
}

// Event is a named log event. Anonymous events do not have their selector
// placed in topic 0.
type Event struct {
	Name      string
	Inputs    []EventParam
	Anonymous bool
}

// Error is a named revert error.
type Error struct {
	Name   string
	Inputs []Param
}

// Item is a tagged union over the six item kinds. The zero Item is
// invalid.
//
// An Item built with one of the *Item constructors borrows the value it
// wraps. Mutating accessors promote the borrow to a private owned copy
// before handing out a mutable reference, so readers of the original value
// never observe the change.
type Item struct {
	kind  Kind
	owned bool

	constructor *Constructor
	fallback    *Fallback
	receive     *Receive
	function    *Function
	event       *Event
	err         *Error
}

// ConstructorItem wraps a constructor in a borrowed Item.
func ConstructorItem(c *Constructor) Item {
	return Item{kind: KindConstructor, constructor: c}
}

// FallbackItem wraps a fallback in a borrowed Item.
func FallbackItem(f *Fallback) Item { return Item{kind: KindFallback, fallback: f} }

// ReceiveItem wraps a receive handler in a borrowed Item.
func ReceiveItem(r *Receive) Item { return Item{kind: KindReceive, receive: r} }

// FunctionItem wraps a function in a borrowed Item.
func FunctionItem(f *Function) Item { return Item{kind: KindFunction, function: f} }

// EventItem wraps an event in a borrowed Item.
func EventItem(e *Event) Item { return Item{kind: KindEvent, event: e} }

// ErrorItem wraps an error in a borrowed Item.
func ErrorItem(e *Error) Item { return Item{kind: KindError, err: e} }

// Kind returns the item's kind tag.
func (it *Item) Kind() Kind { return it.kind }

// promote replaces a borrowed value with an owned deep copy.
func (it *Item) promote() {
	if it.owned {
		return
	}
	switch it.kind {
	case KindConstructor:
		it.constructor = it.constructor.Clone()
	case KindFallback:
		it.fallback = it.fallback.Clone()
	case KindReceive:
		it.receive = it.receive.Clone()
	case KindFunction:
		it.function = it.function.Clone()
	case KindEvent:
		it.event = it.event.Clone()
	case KindError:
		it.err = it.err.Clone()
	}
	it.owned = true
}

// Name returns the item's name. Only functions, events and errors are
// named.
func (it *Item) Name() (string, bool) {
	switch it.kind {
	case KindFunction:
		return it.function.Name, true
	case KindEvent:
		return it.event.Name, true
	case KindError:
		return it.err.Name, true
	}
	return "", false
}

// NameMut returns a mutable reference to the item's name, promoting a
// borrowed item to an owned copy first. It is nil for unnamed kinds.
func (it *Item) NameMut() *string {
	switch it.kind {
	case KindFunction:
		it.promote()
		return &it.function.Name
	case KindEvent:
		it.promote()
		return &it.event.Name
	case KindError:
		it.promote()
		return &it.err.Name
	}
	return nil
}

// StateMutability returns the item's state mutability. Events and errors
// have none.
func (it *Item) StateMutability() (StateMutability, bool) {
	switch it.kind {
	case KindConstructor:
		return it.constructor.StateMutability, true
	case KindFallback:
		return it.fallback.StateMutability, true
	case KindReceive:
		return it.receive.StateMutability, true
	case KindFunction:
		return it.function.StateMutability, true
	}
	return "", false
}

// StateMutabilityMut returns a mutable reference to the item's state
// mutability, promoting first, or nil for events and errors.
func (it *Item) StateMutabilityMut() *StateMutability {
	switch it.kind {
	case KindConstructor:
		it.promote()
		return &it.constructor.StateMutability
	case KindFallback:
		it.promote()
		return &it.fallback.StateMutability
	case KindReceive:
		it.promote()
		return &it.receive.StateMutability
	case KindFunction:
		it.promote()
		return &it.function.StateMutability
	}
	return nil
}

// Inputs returns the item's inputs. Use EventInputs for events; fallback
// and receive handlers take none.
func (it *Item) Inputs() ([]Param, bool) {
	switch it.kind {
	case KindConstructor:
		return it.constructor.Inputs, true
	case KindFunction:
		return it.function.Inputs, true
	case KindError:
		return it.err.Inputs, true
	}
	return nil, false
}

// InputsMut returns a mutable reference to the item's inputs, promoting
// first. Use EventInputsMut for events.
func (it *Item) InputsMut() *[]Param {
	switch it.kind {
	case KindConstructor:
		it.promote()
		return &it.constructor.Inputs
	case KindFunction:
		it.promote()
		return &it.function.Inputs
	case KindError:
		it.promote()
		return &it.err.Inputs
	}
	return nil
}

// EventInputs returns an event's inputs. Use Inputs for other kinds.
func (it *Item) EventInputs() ([]EventParam, bool) {
	if it.kind == KindEvent {
		return it.event.Inputs, true
	}
	return nil, false
}

// EventInputsMut returns a mutable reference to an event's inputs,
// promoting first.
func (it *Item) EventInputsMut() *[]EventParam {
	if it.kind == KindEvent {
		it.promote()
		return &it.event.Inputs
	}
	return nil
}

// Outputs returns a function's outputs. No other kind has outputs.
func (it *Item) Outputs() ([]Param, bool) {
	if it.kind == KindFunction {
		return it.function.Outputs, true
	}
	return nil, false
}

// OutputsMut returns a mutable reference to a function's outputs,
// promoting first.
func (it *Item) OutputsMut() *[]Param {
	if it.kind == KindFunction {
		it.promote()
		return &it.function.Outputs
	}
	return nil
}

// Constructor returns the wrapped constructor, if that is the item's kind.
func (it *Item) Constructor() (*Constructor, bool) {
	return it.constructor, it.kind == KindConstructor
}

// Fallback returns the wrapped fallback handler.
func (it *Item) Fallback() (*Fallback, bool) { return it.fallback, it.kind == KindFallback }

// Receive returns the wrapped receive handler.
func (it *Item) Receive() (*Receive, bool) { return it.receive, it.kind == KindReceive }

// Function returns the wrapped function.
func (it *Item) Function() (*Function, bool) { return it.function, it.kind == KindFunction }

// Event returns the wrapped event.
func (it *Item) Event() (*Event, bool) { return it.event, it.kind == KindEvent }

// Error returns the wrapped error.
func (it *Item) Error() (*Error, bool) { return it.err, it.kind == KindError }
