package selfcore

import "testing"

func TestNewVMBuildsSingletonsAndTraits(t *testing.T) {
	vm := NewVM()
	for name, o := range map[string]*Object{
		"Lobby": vm.Lobby, "Nil": vm.Nil, "True": vm.True, "False": vm.False,
		"TraitsNumber": vm.TraitsNumber, "TraitsString": vm.TraitsString,
		"TraitsVector": vm.TraitsVector, "TraitsBlock": vm.TraitsBlock,
	} {
		if o == nil {
			t.Errorf("VM.%s is nil", name)
		}
	}
}

func TestEachVMHasIndependentSingletons(t *testing.T) {
	a, b := NewVM(), NewVM()
	if a.Nil == b.Nil || a.True == b.True || a.Lobby == b.Lobby {
		t.Error("two VMs must not share singleton identity")
	}
}

// TestBoundaryScenarios exercises spec 8.3's table end to end.
func TestBoundaryScenarios(t *testing.T) {
	cases := []struct {
		source string
		want   func(vm *VM, v Value) bool
	}{
		{"3 + 4", wantInt(7)},
		{"1 + 2 * 3", wantInt(9)},
		{"(1 + 2) * (3 - 4)", wantInt(-3)},
		{"'abc' from: 1 To: 2", wantString("b")},
		{"true ifTrue: [5] False: [6]", wantInt(5)},
		{"(| x <- 0. m = ([x = 3] whileFalse: [x: x + 1]. x) |) m", wantInt(3)},
		{"(| m = ([^42] value. 1) |) m", wantInt(42)},
		{"(| m = (1 & 2 & 3 & 4) |) m printString", wantString("(1, 2, 3, 4)")},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			vm := NewVM()
			v, err := vm.Execute(c.source)
			if err != nil {
				t.Fatalf("executing %q: %v", c.source, err)
			}
			if !c.want(vm, v) {
				t.Errorf("%q produced %#v", c.source, v)
			}
		})
	}
}

func wantInt(n int64) func(vm *VM, v Value) bool {
	return func(vm *VM, v Value) bool {
		i, ok := v.(Integer)
		return ok && i.Value == n
	}
}

func wantString(s string) func(vm *VM, v Value) bool {
	return func(vm *VM, v Value) bool {
		str, ok := v.(String)
		return ok && str.Value == s
	}
}

func TestBoundaryFactorialAndFibonacciViaSend(t *testing.T) {
	vm := NewVM()
	v, err := vm.Send(NewInteger(6), "factorial")
	if err != nil {
		t.Fatal(err)
	}
	if i, ok := v.(Integer); !ok || i.Value != 720 {
		t.Errorf("6 factorial = %#v, want 720", v)
	}

	v, err = vm.Send(NewInteger(25), "fibonacci")
	if err != nil {
		t.Fatal(err)
	}
	if i, ok := v.(Integer); !ok || i.Value != 75025 {
		t.Errorf("25 fibonacci = %#v, want 75025", v)
	}
}

func TestBoundarySlotsOfParsedObject(t *testing.T) {
	vm := NewVM()
	top, err := Parse(vm, "(| a |)")
	if err != nil {
		t.Fatal(err)
	}
	obj := top.Code[0].Lit.(*Object)
	if len(obj.Slots()) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(obj.Slots()))
	}
	a, ok := obj.Own("a")
	if !ok || a.Kind != Data || a.Value != Value(vm.Nil) {
		t.Errorf("slot a = %+v, want data slot holding nil", a)
	}
	mut, ok := obj.Own("a:")
	if !ok || mut.Kind != Constant {
		t.Errorf("slot a: = %+v, want a constant mutator", mut)
	}
}

// TestLawEmptyMethodAndBlock covers spec 8.2's "empty method/block returns
// nil" law.
func TestLawEmptyMethodAndBlock(t *testing.T) {
	vm := NewVM()
	v, err := vm.Execute("(| m = () |) m")
	if err != nil {
		t.Fatal(err)
	}
	if v != Value(vm.Nil) {
		t.Errorf("empty method result = %#v, want nil", v)
	}
	v, err = vm.Execute("[] value")
	if err != nil {
		t.Fatal(err)
	}
	if v != Value(vm.Nil) {
		t.Errorf("empty block result = %#v, want nil", v)
	}
}

// TestLawComputedConstantMatchesDirectEval covers spec 8.2's second law.
func TestLawComputedConstantMatchesDirectEval(t *testing.T) {
	vm := NewVM()
	direct, err := vm.Execute("3 + 4 * 2")
	if err != nil {
		t.Fatal(err)
	}
	viaSlot, err := vm.Execute("(| x = 3 + 4 * 2 |) x")
	if err != nil {
		t.Fatal(err)
	}
	if direct != viaSlot {
		t.Errorf("direct = %#v, via constant slot = %#v", direct, viaSlot)
	}
}

// TestLawCloneIsIdentityForValues covers spec 8.2's third law.
func TestLawCloneIsIdentityForValues(t *testing.T) {
	vm := NewVM()
	cases := []string{"5 clone = 5", "nil clone = nil", "true clone = true", "'x' clone = 'x'"}
	for _, src := range cases {
		v, err := vm.Execute(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if v != Value(vm.True) {
			t.Errorf("%q = %#v, want true", src, v)
		}
	}
}

// TestAmbiguousMessageSend covers spec 8.1's ambiguous-parent property:
// two sibling parents defining the same slot name yield an error, not a
// value, when looked up from their shared child.
func TestAmbiguousMessageSend(t *testing.T) {
	vm := NewVM()
	p1, p2 := NewObject(), NewObject()
	p1.AddConstant("a", NewInteger(1))
	p2.AddConstant("a", NewInteger(2))
	child := NewObject()
	child.AddParentConstant("p1", p1)
	child.AddParentConstant("p2", p2)

	_, err := vm.Send(child, "a")
	if err == nil {
		t.Fatal("expected AmbiguousMessageSend, got nil error")
	}
	if _, ok := err.(*AmbiguousMessageSend); !ok {
		t.Errorf("got %T, want *AmbiguousMessageSend", err)
	}
}

// TestCycleSafeLookup covers spec 8.1's cycle-safety property: findSlot
// must terminate even when two objects are each other's parent.
func TestCycleSafeLookup(t *testing.T) {
	vm := NewVM()
	a, b := NewObject(), NewObject()
	a.AddParentConstant("b", b)
	b.AddParentConstant("a", a)

	_, err := vm.Send(a, "nonexistent")
	if _, ok := err.(*UnknownMessageSend); !ok {
		t.Errorf("got %T (%v), want *UnknownMessageSend", err, err)
	}
}

// TestLocalSlotShadowsInherited covers spec 8.1's shadowing property.
func TestLocalSlotShadowsInherited(t *testing.T) {
	vm := NewVM()
	parent := NewObject()
	parent.AddConstant("a", NewInteger(1))
	child := NewObject()
	child.AddParentConstant("parent", parent)
	child.AddConstant("a", NewInteger(2))

	v, err := vm.Send(child, "a")
	if err != nil {
		t.Fatal(err)
	}
	if i, ok := v.(Integer); !ok || i.Value != 2 {
		t.Errorf("a = %#v, want 2 (the local slot)", v)
	}
}

func TestUnknownMessageSend(t *testing.T) {
	vm := NewVM()
	_, err := vm.Send(vm.Lobby, "thisSelectorDoesNotExist")
	if _, ok := err.(*UnknownMessageSend); !ok {
		t.Errorf("got %T, want *UnknownMessageSend", err)
	}
}
