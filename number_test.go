package selfcore

import "testing"

func resultInt(t *testing.T, vm *VM, source string) int64 {
	t.Helper()
	v, err := vm.Execute(source)
	if err != nil {
		t.Fatalf("executing %q: %v", source, err)
	}
	n, ok := v.(Integer)
	if !ok {
		t.Fatalf("executing %q: result %v is a %T, not an Integer", source, v, v)
	}
	return n.Value
}

func TestNumberArithmetic(t *testing.T) {
	vm := TestingVM()
	cases := map[string]int64{
		"3 + 4":         7,
		"1 + 2 * 3":     9,
		"(1 + 2) * (3 - 4)": -3,
		"10 % 3":        1,
		"6 factorial":   720,
		"25 fibonacci":  75025,
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			if got := resultInt(t, vm, src); got != want {
				t.Errorf("%q = %d, want %d", src, got, want)
			}
		})
	}
}

func TestNumberDivisionWidensToFloat(t *testing.T) {
	vm := TestingVM()
	v, err := vm.Execute("1 / 2")
	if err != nil {
		t.Fatal(err)
	}
	f, ok := v.(Float)
	if !ok {
		t.Fatalf("1 / 2 produced a %T, not a Float", v)
	}
	if f.Value != 0.5 {
		t.Errorf("1 / 2 = %v, want 0.5", f.Value)
	}
}

func TestNumberComparisons(t *testing.T) {
	vm := TestingVM()
	v, err := vm.Execute("(3 <= 4) & [4 >= 3] & [3 = 3] & [3 < 4]")
	if err != nil {
		t.Fatal(err)
	}
	if v != Value(vm.True) {
		t.Errorf("chained comparisons = %v, want true", v)
	}
}

func TestNumberToDoAccumulates(t *testing.T) {
	vm := TestingVM()
	got := resultInt(t, vm, "(| x <- 0. m = (1 to: 5 Do: [| :e | x: x + e]. x) |) m")
	if got != 15 {
		t.Errorf("sum via to:Do: = %d, want 15", got)
	}
}

func TestNumberToByDoCountsDown(t *testing.T) {
	vm := TestingVM()
	got := resultInt(t, vm, "(| x <- 0. m = (5 to: 1 By: -1 Do: [| :e | x: x + e]. x) |) m")
	if got != 15 {
		t.Errorf("sum via to:By:Do: = %d, want 15", got)
	}
}
