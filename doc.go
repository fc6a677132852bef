/*
Package selfcore implements the core of a Self-like prototype-based
language: a value model of cloneable, slot-bearing objects, a lookup
engine that resolves messages through parent chains, a tree-walking
evaluator, and a parser for the surface syntax.

There are no classes. Every object is built by cloning another object
(usually a prototype) and adding or overriding slots. A slot binds a name
to a constant, a piece of mutable data, or an argument; every data slot
has a paired setter slot, called a mutator, created automatically.

	vm := selfcore.NewVM()
	result := vm.MustExecute(`(| x <- 1. inc = (x: x + 1) |) inc`)
	// result is the integer 2

Methods activate by cloning themselves and running their code against
the clone, which becomes the current activation. Blocks are plain
objects that capture the activation in which they were created, so that
a later `^expr` inside them can return from the method that lexically
contains them rather than from the block itself.

Self Primer

A literal object is written between pipes inside parentheses:

	(| x <- 1. y <- 2 |)

x and y here are data slots, each with an initial value and a paired
mutator slot x: and y: that assigns into it. A slot can instead be a
constant:

	(| sum = (x + y) |)

sum is a constant slot whose value is a method; sending sum to the
object activates that method with the object as self. Slots can also be
marked as parents with a trailing *, in which case they participate in
message lookup for any selector the object itself does not define:

	(| parent* = traitsPoint. x <- 0. y <- 0 |)

Blocks look like literal objects but use square brackets, and their
slot list declares arguments rather than data or constants:

	[|:x| x + 1]

A block captures the activation in which it is written; activating it
later runs its code as if it were still textually inside that
activation, which is what makes a non-local return (^expr) inside a
block return from the enclosing method rather than from the block.

This package is single-threaded: a VM and everything reachable from it
must be used from one goroutine at a time. Separate VMs share no state.
*/
package selfcore

// Version identifies this implementation. It bears no relation to any
// version of the original Self language or its reference implementation.
const Version = "0.1.0"
