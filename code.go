package selfcore

// NodeKind distinguishes the five code node variants of spec 3.6.
type NodeKind int

const (
	// LitNode evaluates to its carried value unchanged.
	LitNode NodeKind = iota
	// MthNode wraps the method a parenthesized literal with a body
	// compiles to: evaluating it runs the method's code inline in the
	// current activation, without cloning it or binding its slots,
	// instead of returning the method as a callable value (spec 4.2,
	// "Mth").
	MthNode
	// BlkNode clones a block prototype object and captures the current
	// activation as its lexical parent (spec 4.2, "Blk").
	BlkNode
	// MsgNode performs a message send (spec 4.2, "Msg").
	MsgNode
	// RetNode evaluates its expression and raises a non-local return
	// targeted at the nearest enclosing regular method (spec 4.2, "Ret").
	RetNode
)

// Node is a code tree node produced by the parser and interpreted by
// the evaluator. Which fields are meaningful depends on Kind:
//
//	LitNode: Lit
//	MthNode: Method
//	BlkNode: Block
//	MsgNode: Receiver (may be nil), Selector, Args
//	RetNode: Ret
type Node struct {
	Kind NodeKind
	Pos  int

	Lit    Value
	Method *Method
	Block  *Object

	Receiver *Node
	Selector string
	Args     []*Node

	Ret *Node
}

// Lit makes a LitNode.
func Lit(v Value) *Node { return &Node{Kind: LitNode, Lit: v} }

// Mth makes a MthNode wrapping m.
func Mth(m *Method) *Node { return &Node{Kind: MthNode, Method: m} }

// Blk makes a BlkNode wrapping the block prototype object proto.
func Blk(proto *Object) *Node { return &Node{Kind: BlkNode, Block: proto} }

// Msg makes a MsgNode. receiver may be nil for an implicit send.
func Msg(receiver *Node, selector string, args ...*Node) *Node {
	return &Node{Kind: MsgNode, Receiver: receiver, Selector: selector, Args: args}
}

// Ret makes a RetNode wrapping expr.
func Ret(expr *Node) *Node { return &Node{Kind: RetNode, Ret: expr} }
