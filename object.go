package selfcore

import "unsafe"

// Value is anything that can be a slot's value, a message's receiver or
// argument, or the result of evaluation: integers, floats, strings,
// objects, methods, vectors, and mutators.
type Value interface {
	isSelfValue()
}

// Object is a handle to a slot-bearing record. nil, true, false, the
// lobby, trait objects, and plain cloned objects are all *Object; a
// Method is an Object with an attached code list (see method.go), and a
// block is a plain Object built with NewBlockObject (see block.go).
//
// Slot order is preserved because it is observable in printing and in
// method-activation slot indexing (spec 3.3); lookup itself does not
// depend on it.
type Object struct {
	slots []*Slot
	index map[string]int
}

// NewObject creates an object with no slots.
func NewObject() *Object {
	return &Object{}
}

func (*Object) isSelfValue() {}

// UniqueID returns an identity key for o, suitable for use as a map or
// set key during a cycle-safe slot walk. Two live objects never share a
// UniqueID, and a given object's UniqueID never changes.
func (o *Object) UniqueID() uintptr {
	return uintptr(unsafe.Pointer(o))
}

// Slots returns the object's slots in declaration order. The returned
// slice must not be modified.
func (o *Object) Slots() []*Slot {
	return o.slots
}

// Own returns the slot directly on o named name, without consulting
// parents.
func (o *Object) Own(name string) (*Slot, bool) {
	if o.index == nil {
		return nil, false
	}
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.slots[i], true
}

// AddSlot appends a new slot to o. If a slot with this name already
// exists, its record is replaced in place, preserving its position.
func (o *Object) AddSlot(s *Slot) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[s.Name]; ok {
		o.slots[i] = s
		return
	}
	o.index[s.Name] = len(o.slots)
	o.slots = append(o.slots, s)
}

// AddParentConstant is shorthand for adding a parent-flagged constant
// slot, the common shape for a "parent" link.
func (o *Object) AddParentConstant(name string, value Value) {
	o.AddSlot(&Slot{Name: name, Kind: Constant, Parent: true, Value: value})
}

// AddConstant adds a plain (non-parent) constant slot.
func (o *Object) AddConstant(name string, value Value) {
	o.AddSlot(&Slot{Name: name, Kind: Constant, Value: value})
}

// AddArgument adds an argument slot. Argument slots have no companion
// mutator; only the evaluator assigns them, during method activation.
func (o *Object) AddArgument(name string, value Value) {
	o.AddSlot(&Slot{Name: name, Kind: Argument, Value: value})
}

// AddParentArgument adds a parent-flagged argument slot: the shape spec
// 3.4 requires of slot 0 on every method ("self" on a regular method,
// "(parent)" on a block method), so that unqualified names inside the
// method's body resolve through the receiver it was found on.
func (o *Object) AddParentArgument(name string, value Value) {
	o.AddSlot(&Slot{Name: name, Kind: Argument, Parent: true, Value: value})
}

// AddData adds a data slot together with its companion mutator slot
// name+":", maintaining the mutator invariant (spec 3.2). Callers
// parsing an initializer-less data slot must pass the VM's nil value
// explicitly; Object has no notion of nil on its own.
func (o *Object) AddData(name string, value Value) {
	o.AddDataSlot(name, value, false)
}

// AddDataSlot is AddData generalized to the parent flag: the parent
// flag is orthogonal to slot kind (spec 3.2), so a mutable "parent"
// link declared with "<-" is legitimate and still gets its mutator.
func (o *Object) AddDataSlot(name string, value Value, parent bool) {
	o.AddSlot(&Slot{Name: name, Kind: Data, Parent: parent, Value: value})
	o.AddSlot(&Slot{Name: name + ":", Kind: Constant, Value: Mutator{DataName: name}})
}

// SetOwn assigns the value of an existing own slot named name, leaving
// its kind and parent flag unchanged. It panics if the slot does not
// exist directly on o; callers that are not sure a slot exists should
// use Own first.
func (o *Object) SetOwn(name string, value Value) {
	s, ok := o.Own(name)
	if !ok {
		panic("selfcore: SetOwn on missing slot " + name)
	}
	s.Value = value
}

// Clone produces a new object with independent data/argument slots and
// shared constant slots, per the cloning rule in spec 3.3.
func (o *Object) Clone() *Object {
	c := &Object{
		slots: make([]*Slot, len(o.slots)),
		index: make(map[string]int, len(o.index)),
	}
	for i, s := range o.slots {
		c.slots[i] = s.clone()
		c.index[s.Name] = i
	}
	return c
}
