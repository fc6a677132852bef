package selfcore

import "strings"

// Block slot names, fixed by spec 3.5: slot 0 is the parent link to
// traitsBlock, slot 1 is the captured lexical activation, slot 2 is the
// arity-named constant slot holding the block's method.
const (
	blockParentSlot        = "parent"
	blockLexicalParentSlot = "lexicalParent"
)

// NewBlockObject builds the 3-slot block object prototype for a block
// method (spec 3.5). lexicalParent starts nil; it is filled in with the
// enclosing activation each time the owning BlkNode is evaluated (spec
// 4.2, "Blk").
func NewBlockObject(traitsBlock *Object, method *Method) *Object {
	b := NewObject()
	b.AddParentConstant(blockParentSlot, traitsBlock)
	b.AddArgument(blockLexicalParentSlot, nil)
	b.AddConstant(valueSelector(len(method.ArgNames())), method)
	return b
}

// valueSelector returns the arity-named value selector a block exposes
// for n arguments: "value", "value:", "value:With:", "value:With:With:",
// and so on (spec 3.5).
func valueSelector(n int) string {
	if n == 0 {
		return "value"
	}
	return "value:" + strings.Repeat("With:", n-1)
}

// lexicalParentOf returns the activation a block object captured, or nil
// if none was ever bound (a block object that escaped without ever being
// evaluated as a BlkNode).
func lexicalParentOf(block *Object) Value {
	s, ok := block.Own(blockLexicalParentSlot)
	if !ok {
		return nil
	}
	return s.Value
}

// blockMethod returns the *Method stored in a block object's arity-named
// constant slot, the one the value/value:/value:With: family of selectors
// resolve to.
func blockMethod(block *Object) (*Method, bool) {
	for _, s := range block.Slots() {
		if s.Name == blockParentSlot || s.Name == blockLexicalParentSlot {
			continue
		}
		if m, ok := s.Value.(*Method); ok {
			return m, true
		}
	}
	return nil, false
}
