package abi

func cloneParams(ps []Param) []Param {
	if ps == nil {
		return nil
	}
	out := make([]Param, len(ps))
	for k, v := range ps {
		out[k] = v
		out[k].Components = cloneParams(v.Components)
	}
	return out
}

func cloneEventParams(ps []EventParam) []EventParam {
	if ps == nil {
		return nil
	}
	out := make([]EventParam, len(ps))
	for k, v := range ps {
		out[k] = v
		out[k].Components = cloneParams(v.Components)
	}
	return out
}

func (c *Constructor) Clone() *Constructor {
	if c == nil {
		return nil
	}
	item := new(Constructor)
	item.Inputs = cloneParams(c.Inputs)
	item.StateMutability = c.StateMutability
	return item
}

func (f *Fallback) Clone() *Fallback {
	if f == nil {
		return nil
	}
	item := new(Fallback)
	item.StateMutability = f.StateMutability
	return item
}

func (r *Receive) Clone() *Receive {
	if r == nil {
		return nil
	}
	item := new(Receive)
	item.StateMutability = r.StateMutability
	return item
}

func (f *Function) Clone() *Function {
	if f == nil {
		return nil
	}
	item := new(Function)
	item.Name = f.Name
	item.Inputs = cloneParams(f.Inputs)
	item.Outputs = cloneParams(f.Outputs)
	item.StateMutability = f.StateMutability
	return item
}

func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	item := new(Event)
	item.Name = e.Name
	item.Anonymous = e.Anonymous
	item.Inputs = cloneEventParams(e.Inputs)
	return item
}

func (e *Error) Clone() *Error {
	if e == nil {
		return nil
	}
	item := new(Error)
	item.Name = e.Name
	item.Inputs = cloneParams(e.Inputs)
	return item
}

// Clone returns an owned deep copy of the item, regardless of whether it
// was borrowed.
func (it Item) Clone() Item {
	out := it
	out.owned = false
	out.promote()
	return out
}
