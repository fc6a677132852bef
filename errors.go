package selfcore

import "fmt"

// UnknownMessageSend is returned when slot lookup for a message's
// selector finds nothing reachable from the receiver (spec 4.1, 7).
type UnknownMessageSend struct {
	Selector string
}

func (e *UnknownMessageSend) Error() string {
	return fmt.Sprintf("unknown message send: %s", e.Selector)
}

// AmbiguousMessageSend is returned when slot lookup reaches the same
// selector through two or more distinct parent branches with no
// unambiguous winner (spec 4.1, 7).
type AmbiguousMessageSend struct {
	Selector string
}

func (e *AmbiguousMessageSend) Error() string {
	return fmt.Sprintf("ambiguous message send: %s", e.Selector)
}

// UnknownPrimitive is returned when a "_"-prefixed selector does not
// name one of the primitives in the fixed registry (spec 4.4, 7).
type UnknownPrimitive struct {
	Name string
}

func (e *UnknownPrimitive) Error() string {
	return fmt.Sprintf("unknown primitive: %s", e.Name)
}

// MutatorWithoutDataSlot is returned when a mutator's companion data
// slot cannot be found on the receiver it was invoked against, which
// should not happen if the mutator invariant held at construction time
// but can occur if a clone's slot list has been altered (spec 3.2, 7).
type MutatorWithoutDataSlot struct {
	DataName string
}

func (e *MutatorWithoutDataSlot) Error() string {
	return fmt.Sprintf("mutator without data slot: %s", e.DataName)
}

// PrimitiveArgumentError is returned when a primitive receives a
// receiver or argument of the wrong kind, or the wrong argument count.
type PrimitiveArgumentError struct {
	Name string
	Msg  string
}

func (e *PrimitiveArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Msg)
}

// nonLocalReturn is the internal control-flow signal a RetNode raises
// (spec 4.2.2). It is a normal Go error so that it threads through the
// evaluator's (Value, error) returns without panicking. runActivation
// passes it up through every activation other than its target, and the
// target activation turns it back into an ordinary return value.
type nonLocalReturn struct {
	target *Method
	value  Value
}

func (n *nonLocalReturn) Error() string {
	return "non-local return outside its target activation"
}

// NonLocalReturnOutsideMethod is returned when a non-local return is
// evaluated with no enclosing regular method activation to target, e.g.
// a block built and evaluated inside a slot initializer that runs at
// parse time in the lobby (spec 4.2.2). A top-level program runs as a
// regular method, so its blocks always have a target.
type NonLocalReturnOutsideMethod struct{}

func (e *NonLocalReturnOutsideMethod) Error() string {
	return "non-local return has no enclosing method activation"
}

// SyntaxError is a lexer or parser diagnostic (spec 4.3). Pos is the
// zero-based character offset into the source at which the problem was
// detected.
type SyntaxError struct {
	Msg string
	Pos int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d", e.Msg, e.Pos)
}
