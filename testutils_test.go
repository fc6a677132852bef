package selfcore

import (
	"sync"
	"testing"
)

// testVM is the VM shared by tests that only read from it; tests that
// mutate shared state (traits, the lobby) make their own with NewVM.
var testVM *VM

var testVMInit sync.Once

func TestingVM() *VM {
	testVMInit.Do(func() { testVM = NewVM() })
	return testVM
}

// mustExecute runs source against vm and fails the test on error.
func mustExecute(t *testing.T, vm *VM, source string) Value {
	t.Helper()
	v, err := vm.Execute(source)
	if err != nil {
		t.Fatalf("executing %q: %v", source, err)
	}
	return v
}
