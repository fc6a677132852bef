package selfcore

import "strings"

// Eval interprets a single code node in the context of act, the current
// activation. act is either a *Method (a method or block activation, or
// the synthetic top-level method Execute runs) or the lobby object (for
// slot initializers evaluated at parse time); it serves both as the
// implicit receiver for a receiver-less message send and as the search
// root for locating the target of a non-local return (spec 4.2).
func (vm *VM) Eval(n *Node, act Value) (Value, error) {
	switch n.Kind {
	case LitNode:
		return n.Lit, nil

	case MthNode:
		return vm.evalInline(n.Method, act)

	case BlkNode:
		block := n.Block.Clone()
		block.SetOwn(blockLexicalParentSlot, act)
		return block, nil

	case MsgNode:
		return vm.evalMessage(n, act)

	case RetNode:
		v, err := vm.Eval(n.Ret, act)
		if err != nil {
			return nil, err
		}
		target, err := vm.nonLocalReturnTarget(act)
		if err != nil {
			return nil, err
		}
		return nil, &nonLocalReturn{target: target, value: v}
	}
	panic("selfcore: unhandled node kind")
}

// evalInline runs a method's code list without cloning it or rebinding
// its slot 0, the "Mth" rule of spec 4.2: a parenthesized grouping with
// no slots realizes its value by running in place, in the activation
// that is already current.
func (vm *VM) evalInline(m *Method, act Value) (Value, error) {
	var result Value = vm.Nil
	for _, stmt := range m.Code {
		v, err := vm.Eval(stmt, act)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalMessage evaluates the receiver (or takes act as an implicit
// receiver) and arguments left to right, then performs the send.
func (vm *VM) evalMessage(n *Node, act Value) (Value, error) {
	explicit := n.Receiver != nil
	var recv Value
	if explicit {
		v, err := vm.Eval(n.Receiver, act)
		if err != nil {
			return nil, err
		}
		recv = v
	} else {
		recv = act
	}
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := vm.Eval(a, act)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return vm.send(recv, act, n.Selector, args, explicit)
}

// send performs selector(args...) against recv, implementing spec 4.2
// steps 3-4: primitive dispatch for a "_"-prefixed selector, otherwise
// slot lookup with the mutator/method/data branches it describes.
// explicit is used only to compute a method activation's self argument
// when a Method is found; act is not consulted, since for an implicit
// send recv already is the current activation.
func (vm *VM) send(recv, act Value, selector string, args []Value, explicit bool) (Value, error) {
	if strings.HasPrefix(selector, "_") {
		fn, ok := vm.primitives[selector]
		if !ok {
			return nil, &UnknownPrimitive{Name: selector}
		}
		return fn(vm, recv, args)
	}

	slot, _, err := vm.findSlot(recv, selector)
	if err != nil {
		return nil, err
	}

	switch v := slot.Value.(type) {
	case Mutator:
		if len(args) != 1 {
			return nil, &PrimitiveArgumentError{Name: selector, Msg: "mutator requires exactly one argument"}
		}
		dslot, _, err := vm.findSlot(recv, v.DataName)
		if err != nil {
			return nil, &MutatorWithoutDataSlot{DataName: v.DataName}
		}
		dslot.Value = args[0]
		return args[0], nil

	case *Method:
		var self Value
		if explicit {
			self = recv
		} else {
			sslot, _, err := vm.findSlot(recv, selfSlotName)
			if err != nil {
				return nil, err
			}
			self = sslot.Value
		}
		activationArgs := make([]Value, 0, len(args)+1)
		activationArgs = append(activationArgs, self)
		activationArgs = append(activationArgs, args...)
		return vm.activateMethod(v, activationArgs)

	default:
		return slot.Value, nil
	}
}

// activateMethod performs spec 4.2.1's method activation: clone the
// method, assign arguments into slots 0..K, and for a block method
// rebind slot 0 from the recv block's captured lexical parent before
// running the clone's code.
func (vm *VM) activateMethod(m *Method, args []Value) (Value, error) {
	clone := m.Clone()
	slots := clone.Slots()
	for i := 0; i < len(args) && i < len(slots); i++ {
		slots[i].Value = args[i]
	}
	if m.IsBlock {
		if block, ok := args[0].(*Object); ok {
			slots[0].Value = lexicalParentOf(block)
		}
	}
	return vm.runActivation(clone)
}

// runActivation executes a method clone's code list, catching a
// non-local return targeted at this exact activation (spec 4.2.1 step
// 5) and letting any other return past.
func (vm *VM) runActivation(act *Method) (Value, error) {
	var result Value = vm.Nil
	for _, stmt := range act.Code {
		v, err := vm.Eval(stmt, act)
		if err != nil {
			if nlr, ok := err.(*nonLocalReturn); ok && nlr.target == act {
				return nlr.value, nil
			}
			return nil, err
		}
		result = v
	}
	return result, nil
}

// nonLocalReturnTarget walks act's slot 0 chain to find the nearest
// enclosing regular method, per spec 4.2.2: a block activation's slot 0
// holds the activation that was current when the block was built, which
// is itself either a regular method (the search stops) or another block
// activation (the search continues).
func (vm *VM) nonLocalReturnTarget(act Value) (*Method, error) {
	for {
		m, ok := act.(*Method)
		if !ok {
			return nil, &NonLocalReturnOutsideMethod{}
		}
		if !m.IsBlock {
			return m, nil
		}
		s, ok := m.Own(parentSlotName)
		if !ok {
			return nil, &NonLocalReturnOutsideMethod{}
		}
		act = s.Value
	}
}
