package selfcore

// primitiveFunc implements a single "_"-prefixed primitive selector
// (spec 4.4): it receives the evaluated receiver and arguments and
// returns a result or an error.
type primitiveFunc func(vm *VM, recv Value, args []Value) (Value, error)

// registerPrimitives builds the fixed primitive table. The set is
// closed: the evaluator consults this table for any selector beginning
// with "_" and returns UnknownPrimitive for anything not listed here.
func registerPrimitives() map[string]primitiveFunc {
	return map[string]primitiveFunc{
		"_NumAdd:":     primNumAdd,
		"_NumSub:":     primNumSub,
		"_NumMul:":     primNumMul,
		"_NumDiv:":     primNumDiv,
		"_NumMod:":     primNumMod,
		"_NumLt:":      primNumLt,
		"_NumToString": primNumToString,

		"_Equal:": primEqual,

		"_StringSize":    primStringSize,
		"_StringAt:":     primStringAt,
		"_StringConcat:": primStringConcat,
		"_StringFrom:To:": primStringFromTo,

		"_VectorClone:":  primVectorClone,
		"_VectorSize":    primVectorSize,
		"_VectorAdd:":    primVectorAdd,
		"_VectorAt:":     primVectorAt,
		"_VectorAt:Put:": primVectorAtPut,
		"_VectorFrom:To:": primVectorFromTo,

		"_Clone":             primClone,
		"_AddSlotsIfAbsent:": primAddSlotsIfAbsent,
	}
}

func numArgError(name string) error {
	return &PrimitiveArgumentError{Name: name, Msg: "receiver and argument must both be numbers"}
}

func primNumAdd(vm *VM, recv Value, args []Value) (Value, error) {
	a, aok := AsFloat(recv)
	b, bok := AsFloat(args[0])
	if !aok || !bok {
		return nil, numArgError("_NumAdd:")
	}
	if numericIsInt(recv, args[0]) {
		return NewInteger(recv.(Integer).Value + args[0].(Integer).Value), nil
	}
	return NewFloat(a + b), nil
}

func primNumSub(vm *VM, recv Value, args []Value) (Value, error) {
	a, aok := AsFloat(recv)
	b, bok := AsFloat(args[0])
	if !aok || !bok {
		return nil, numArgError("_NumSub:")
	}
	if numericIsInt(recv, args[0]) {
		return NewInteger(recv.(Integer).Value - args[0].(Integer).Value), nil
	}
	return NewFloat(a - b), nil
}

func primNumMul(vm *VM, recv Value, args []Value) (Value, error) {
	a, aok := AsFloat(recv)
	b, bok := AsFloat(args[0])
	if !aok || !bok {
		return nil, numArgError("_NumMul:")
	}
	if numericIsInt(recv, args[0]) {
		return NewInteger(recv.(Integer).Value * args[0].(Integer).Value), nil
	}
	return NewFloat(a * b), nil
}

func primNumDiv(vm *VM, recv Value, args []Value) (Value, error) {
	a, aok := AsFloat(recv)
	b, bok := AsFloat(args[0])
	if !aok || !bok {
		return nil, numArgError("_NumDiv:")
	}
	if b == 0 {
		return nil, &PrimitiveArgumentError{Name: "_NumDiv:", Msg: "division by zero"}
	}
	// Division always widens to Float, matching ordinary Self practice of
	// keeping / exact and leaving truncating division to a separate
	// selector the bootstrap layer can build on top of this primitive.
	return NewFloat(a / b), nil
}

func primNumMod(vm *VM, recv Value, args []Value) (Value, error) {
	a, aok := recv.(Integer)
	b, bok := args[0].(Integer)
	if !aok || !bok {
		return nil, &PrimitiveArgumentError{Name: "_NumMod:", Msg: "receiver and argument must both be integers"}
	}
	if b.Value == 0 {
		return nil, &PrimitiveArgumentError{Name: "_NumMod:", Msg: "division by zero"}
	}
	return NewInteger(a.Value % b.Value), nil
}

func primNumLt(vm *VM, recv Value, args []Value) (Value, error) {
	a, aok := AsFloat(recv)
	b, bok := AsFloat(args[0])
	if !aok || !bok {
		return nil, numArgError("_NumLt:")
	}
	return vm.Bool(a < b), nil
}

func primNumToString(vm *VM, recv Value, args []Value) (Value, error) {
	switch n := recv.(type) {
	case Integer:
		return NewString(formatInt(n.Value)), nil
	case Float:
		return NewString(formatFloat(n.Value)), nil
	}
	return nil, &PrimitiveArgumentError{Name: "_NumToString", Msg: "receiver must be a number"}
}

// primEqual implements identity/value equality (spec 4.4): numbers and
// strings compare by value, everything else by identity.
func primEqual(vm *VM, recv Value, args []Value) (Value, error) {
	return vm.Bool(valuesEqual(recv, args[0])), nil
}

func valuesEqual(a, b Value) bool {
	switch x := a.(type) {
	case Integer:
		if y, ok := b.(Integer); ok {
			return x.Value == y.Value
		}
		if y, ok := b.(Float); ok {
			return float64(x.Value) == y.Value
		}
		return false
	case Float:
		if y, ok := AsFloat(b); ok {
			return x.Value == y
		}
		return false
	case String:
		y, ok := b.(String)
		return ok && x.Value == y.Value
	case *Object:
		y, ok := b.(*Object)
		return ok && x == y
	case *Method:
		y, ok := b.(*Method)
		return ok && x == y
	case *Vector:
		y, ok := b.(*Vector)
		return ok && x == y
	}
	return a == b
}

func primStringSize(vm *VM, recv Value, args []Value) (Value, error) {
	s, ok := recv.(String)
	if !ok {
		return nil, &PrimitiveArgumentError{Name: "_StringSize", Msg: "receiver must be a string"}
	}
	return NewInteger(int64(len([]rune(s.Value)))), nil
}

func primStringAt(vm *VM, recv Value, args []Value) (Value, error) {
	s, ok := recv.(String)
	i, iok := args[0].(Integer)
	if !ok || !iok {
		return nil, &PrimitiveArgumentError{Name: "_StringAt:", Msg: "receiver must be a string, argument an integer"}
	}
	r := []rune(s.Value)
	if i.Value < 0 || i.Value >= int64(len(r)) {
		return nil, &PrimitiveArgumentError{Name: "_StringAt:", Msg: "index out of range"}
	}
	return NewString(string(r[i.Value])), nil
}

func primStringConcat(vm *VM, recv Value, args []Value) (Value, error) {
	a, aok := recv.(String)
	b, bok := args[0].(String)
	if !aok || !bok {
		return nil, &PrimitiveArgumentError{Name: "_StringConcat:", Msg: "receiver and argument must both be strings"}
	}
	return NewString(a.Value + b.Value), nil
}

func primStringFromTo(vm *VM, recv Value, args []Value) (Value, error) {
	s, ok := recv.(String)
	from, fok := args[0].(Integer)
	to, tok := args[1].(Integer)
	if !ok || !fok || !tok {
		return nil, &PrimitiveArgumentError{Name: "_StringFrom:To:", Msg: "receiver must be a string, bounds integers"}
	}
	r := []rune(s.Value)
	if from.Value < 0 || to.Value > int64(len(r)) || from.Value > to.Value {
		return nil, &PrimitiveArgumentError{Name: "_StringFrom:To:", Msg: "index out of range"}
	}
	return NewString(string(r[from.Value:to.Value])), nil
}

// primVectorClone builds a fresh vector of n nil-filled elements. The
// bootstrap sends it to traitsVector itself (spec 6.4's "clone"/"clone:"
// are how this language constructs a vector at all, there being no
// vector literal syntax), and it ignores recv's own type rather than
// requiring a *Vector receiver, so clone sent to an existing vector also
// yields a fresh vector, not a copy.
func primVectorClone(vm *VM, recv Value, args []Value) (Value, error) {
	n, ok := args[0].(Integer)
	if !ok {
		return nil, &PrimitiveArgumentError{Name: "_VectorClone:", Msg: "argument must be an integer"}
	}
	if n.Value < 0 {
		return nil, &PrimitiveArgumentError{Name: "_VectorClone:", Msg: "size must be non-negative"}
	}
	elems := make([]Value, n.Value)
	for i := range elems {
		elems[i] = vm.Nil
	}
	return &Vector{Elements: elems}, nil
}

func primVectorSize(vm *VM, recv Value, args []Value) (Value, error) {
	v, ok := recv.(*Vector)
	if !ok {
		return nil, &PrimitiveArgumentError{Name: "_VectorSize", Msg: "receiver must be a vector"}
	}
	return NewInteger(int64(len(v.Elements))), nil
}

func primVectorAdd(vm *VM, recv Value, args []Value) (Value, error) {
	v, ok := recv.(*Vector)
	if !ok {
		return nil, &PrimitiveArgumentError{Name: "_VectorAdd:", Msg: "receiver must be a vector"}
	}
	v.Elements = append(v.Elements, args[0])
	return v, nil
}

func primVectorAt(vm *VM, recv Value, args []Value) (Value, error) {
	v, ok := recv.(*Vector)
	i, iok := args[0].(Integer)
	if !ok || !iok {
		return nil, &PrimitiveArgumentError{Name: "_VectorAt:", Msg: "receiver must be a vector, argument an integer"}
	}
	if i.Value < 0 || i.Value >= int64(len(v.Elements)) {
		return nil, &PrimitiveArgumentError{Name: "_VectorAt:", Msg: "index out of range"}
	}
	return v.Elements[i.Value], nil
}

func primVectorAtPut(vm *VM, recv Value, args []Value) (Value, error) {
	v, ok := recv.(*Vector)
	i, iok := args[0].(Integer)
	if !ok || !iok {
		return nil, &PrimitiveArgumentError{Name: "_VectorAt:Put:", Msg: "receiver must be a vector, first argument an integer"}
	}
	if i.Value < 0 || i.Value >= int64(len(v.Elements)) {
		return nil, &PrimitiveArgumentError{Name: "_VectorAt:Put:", Msg: "index out of range"}
	}
	v.Elements[i.Value] = args[1]
	return args[1], nil
}

func primVectorFromTo(vm *VM, recv Value, args []Value) (Value, error) {
	v, ok := recv.(*Vector)
	from, fok := args[0].(Integer)
	to, tok := args[1].(Integer)
	if !ok || !fok || !tok {
		return nil, &PrimitiveArgumentError{Name: "_VectorFrom:To:", Msg: "receiver must be a vector, bounds integers"}
	}
	if from.Value < 0 || to.Value > int64(len(v.Elements)) || from.Value > to.Value {
		return nil, &PrimitiveArgumentError{Name: "_VectorFrom:To:", Msg: "index out of range"}
	}
	elems := make([]Value, to.Value-from.Value)
	copy(elems, v.Elements[from.Value:to.Value])
	return &Vector{Elements: elems}, nil
}

// primClone implements the universal clone primitive (spec 3.3, 4.4):
// every value kind clones the way its own Clone method does.
func primClone(vm *VM, recv Value, args []Value) (Value, error) {
	switch v := recv.(type) {
	case *Object:
		return v.Clone(), nil
	case *Method:
		return v.Clone(), nil
	case *Vector:
		return v.Clone(), nil
	default:
		// Numbers and strings are immutable values, not handles; cloning
		// one is the identity operation.
		return recv, nil
	}
}

// primAddSlotsIfAbsent adds each slot from the argument object to recv
// that recv does not already have directly, used by the bootstrap layer
// to compose trait objects (spec 4.4).
func primAddSlotsIfAbsent(vm *VM, recv Value, args []Value) (Value, error) {
	dst, ok := recv.(*Object)
	src, sok := args[0].(*Object)
	if !ok || !sok {
		return nil, &PrimitiveArgumentError{Name: "_AddSlotsIfAbsent:", Msg: "receiver and argument must both be objects"}
	}
	for _, s := range src.Slots() {
		if _, exists := dst.Own(s.Name); !exists {
			dst.AddSlot(&Slot{Name: s.Name, Kind: s.Kind, Parent: s.Parent, Value: s.Value})
		}
	}
	return dst, nil
}
