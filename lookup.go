package selfcore

import "github.com/zephyrtronium/contains"

// slotMatch pairs a found slot with the object that owns it.
type slotMatch struct {
	owner *Object
	slot  *Slot
}

// objectOf returns the *Object backing a value that carries slots
// directly (a plain object, a method, or a block, all of which are
// *Object under the hood), or nil for values whose slots live on a
// trait object instead (spec 4.1).
func objectOf(v Value) *Object {
	switch t := v.(type) {
	case *Object:
		return t
	case *Method:
		return &t.Object
	}
	return nil
}

// receiverObject returns the object lookup should start scanning: the
// value's own slots if it carries any directly, otherwise its trait
// object (traitsNumber, traitsString, or traitsVector).
func (vm *VM) receiverObject(v Value) *Object {
	if o := objectOf(v); o != nil {
		return o
	}
	return vm.traitsFor(v)
}

// findSlot performs the cycle-safe depth-first slot lookup of spec 4.1:
// check the receiver's own slots first; if absent, walk parent-flagged
// slots, stopping a branch as soon as it finds an owner, and treating a
// slot name reachable through two or more distinct branches as
// ambiguous. Cycles are broken with a per-call visited set keyed by
// object identity.
func (vm *VM) findSlot(recv Value, name string) (*Slot, *Object, error) {
	obj := vm.receiverObject(recv)
	if obj == nil {
		return nil, nil, &UnknownMessageSend{Selector: name}
	}
	if s, ok := obj.Own(name); ok {
		return s, obj, nil
	}
	visited := contains.Set{}
	visited.Add(obj.UniqueID())
	var matches []slotMatch
	vm.searchParents(obj, name, &visited, &matches)
	switch len(matches) {
	case 0:
		return nil, nil, &UnknownMessageSend{Selector: name}
	case 1:
		return matches[0].slot, matches[0].owner, nil
	default:
		return nil, nil, &AmbiguousMessageSend{Selector: name}
	}
}

// searchParents walks obj's parent-flagged slots looking for name,
// recording one match per branch that finds it and never descending
// past a match or past a previously visited object.
func (vm *VM) searchParents(obj *Object, name string, visited *contains.Set, matches *[]slotMatch) {
	for _, s := range obj.Slots() {
		if !s.Parent {
			continue
		}
		parent := vm.receiverObject(s.Value)
		if parent == nil {
			continue
		}
		if !visited.Add(parent.UniqueID()) {
			continue
		}
		if slot, ok := parent.Own(name); ok {
			*matches = append(*matches, slotMatch{owner: parent, slot: slot})
			continue
		}
		vm.searchParents(parent, name, visited, matches)
	}
}
