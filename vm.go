package selfcore

// VM is one interpreter instance. Each VM has its own nil/true/false
// singletons and its own trait objects, so two VMs never share state
// (spec 3.7).
type VM struct {
	Lobby *Object

	Nil   *Object
	True  *Object
	False *Object

	TraitsNumber *Object
	TraitsString *Object
	TraitsVector *Object
	TraitsBlock  *Object

	primitives map[string]primitiveFunc
}

// NewVM creates and initializes a VM: it builds the singletons and trait
// objects, registers the fixed primitive table (spec 4.4), and then runs
// the embedded bootstrap source (spec 6.4) to populate the traits with
// the library behavior that is written in the language itself rather
// than as a Go primitive.
func NewVM() *VM {
	vm := &VM{
		Lobby: NewObject(),

		Nil:   NewObject(),
		True:  NewObject(),
		False: NewObject(),

		TraitsNumber: NewObject(),
		TraitsString: NewObject(),
		TraitsVector: NewObject(),
		TraitsBlock:  NewObject(),
	}
	vm.Lobby.AddConstant(selfSlotName, vm.Lobby)
	vm.Lobby.AddConstant("lobby", vm.Lobby)
	vm.Lobby.AddConstant("nil", vm.Nil)
	vm.Lobby.AddConstant("true", vm.True)
	vm.Lobby.AddConstant("false", vm.False)
	vm.Lobby.AddConstant("traitsNumber", vm.TraitsNumber)
	vm.Lobby.AddConstant("traitsString", vm.TraitsString)
	vm.Lobby.AddConstant("traitsVector", vm.TraitsVector)
	vm.Lobby.AddConstant("traitsBlock", vm.TraitsBlock)
	// Every object the bootstrap attaches methods to needs a path back to
	// the lobby, or an unqualified reference inside one of those methods
	// (to "true", "nil", another trait, ...) would have nowhere to go:
	// findSlot only ever recurses into parent-flagged slots.
	for _, o := range []*Object{vm.Nil, vm.True, vm.False, vm.TraitsNumber, vm.TraitsString, vm.TraitsVector, vm.TraitsBlock} {
		o.AddParentConstant("lobby", vm.Lobby)
	}
	vm.primitives = registerPrimitives()
	if err := vm.runBootstrap(); err != nil {
		// The bootstrap source is fixed and shipped with the VM; a
		// failure here means the interpreter itself is broken, not
		// anything a caller did.
		panic("selfcore: bootstrap failed: " + err.Error())
	}
	return vm
}

// traitsFor returns the trait object backing lookups on a value that
// does not carry slots of its own (spec 4.1): numbers route to
// TraitsNumber, strings to TraitsString, vectors to TraitsVector.
// Mutators and nil Go values have no trait object.
func (vm *VM) traitsFor(v Value) *Object {
	switch v.(type) {
	case Integer, Float:
		return vm.TraitsNumber
	case String:
		return vm.TraitsString
	case *Vector:
		return vm.TraitsVector
	}
	return nil
}

// Bool converts a Go bool into the VM's true/false singleton, the
// objects on which the bootstrap defines ifTrue:/ifFalse: (spec 3.7 /
// 6.4). No other value responds to those selectors.
func (vm *VM) Bool(b bool) *Object {
	if b {
		return vm.True
	}
	return vm.False
}

// Execute parses source text into the synthetic top-level method spec
// 4.2.3 describes and runs it as a regular activation with the lobby
// bound to self, returning the value of its last statement (spec 6.1).
func (vm *VM) Execute(source string) (Value, error) {
	top, err := Parse(vm, source)
	if err != nil {
		return nil, err
	}
	top.Slots()[0].Value = vm.Lobby
	return vm.runActivation(top)
}

// MustExecute is like Execute but panics on error, for callers such as
// package examples and bootstrap-style setup where a failure indicates
// a programming error rather than a runtime condition.
func (vm *VM) MustExecute(source string) Value {
	v, err := vm.Execute(source)
	if err != nil {
		panic(err)
	}
	return v
}

// Send performs the message send selector(args...) against receiver as
// an explicit send, exposing the evaluator's send mechanics without
// going through the parser (spec 6.1).
func (vm *VM) Send(receiver Value, selector string, args ...Value) (Value, error) {
	return vm.send(receiver, receiver, selector, args, true)
}

// FindSlot exposes the lookup engine directly: it returns the value of
// the named slot reachable from receiver, and whether it was found
// (spec 6.1).
func (vm *VM) FindSlot(receiver Value, name string) (Value, bool) {
	slot, _, err := vm.findSlot(receiver, name)
	if err != nil {
		return nil, false
	}
	return slot.Value, true
}
