package selfcore

import (
	"strconv"
	"strings"
)

// Parse lexes and parses a complete program (spec 4.3) and wraps it as
// the synthetic top-level method spec 4.2.3 describes: a regular method
// whose self is the lobby. Evaluating it runs every top-level statement
// with the lobby as both implicit receiver and self.
func Parse(vm *VM, source string) (*Method, error) {
	toks, err := newLexer(source).tokens()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, vm: vm}
	stmts, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	m := NewRegularMethod()
	m.Code = stmts
	return m, nil
}

type parser struct {
	toks []token
	pos  int
	vm   *VM
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) at(k tokenKind) bool { return p.toks[p.pos].Kind == k }

func (p *parser) atOpText(text string) bool {
	t := p.peek()
	return t.Kind == tokOp && t.Text == text
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.Kind != tokEOF {
		p.pos++
	}
	return t
}

// parseProgram parses spec 4.3's "program" nonterminal: a dot-separated
// message sequence with no non-local return allowed (that is only legal
// inside a block body).
func (p *parser) parseProgram() ([]*Node, error) {
	var stmts []*Node
	if p.at(tokEOF) {
		return stmts, nil
	}
	for {
		n, err := p.parseMessage()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, n)
		if p.at(tokDot) {
			p.advance()
			if p.at(tokEOF) {
				return stmts, nil
			}
			continue
		}
		break
	}
	if !p.at(tokEOF) {
		return nil, &SyntaxError{Msg: "expected end of program", Pos: p.peek().Pos}
	}
	return stmts, nil
}

// parseBody parses spec 4.3's "body" nonterminal up to closeKind. A
// trailing "^ message" as the very last statement is only legal when
// allowRet is set: spec 4.3 restricts non-local return syntax to block
// bodies, not to object/method bodies or the top-level program.
func (p *parser) parseBody(closeKind tokenKind, allowRet bool) ([]*Node, error) {
	var stmts []*Node
	for {
		if p.at(closeKind) {
			return stmts, nil
		}
		if p.at(tokCaret) {
			if !allowRet {
				return nil, &SyntaxError{Msg: "non-local return is only allowed in a block body", Pos: p.peek().Pos}
			}
			p.advance()
			expr, err := p.parseMessage()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, Ret(expr))
			if p.at(tokDot) {
				p.advance()
			}
			if !p.at(closeKind) {
				return nil, &SyntaxError{Msg: "non-local return must be the last statement of a body", Pos: p.peek().Pos}
			}
			return stmts, nil
		}
		n, err := p.parseMessage()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, n)
		if p.at(tokDot) {
			p.advance()
			continue
		}
		if p.at(closeKind) {
			return stmts, nil
		}
		return nil, &SyntaxError{Msg: "expected '.' or a closing bracket", Pos: p.peek().Pos}
	}
}

// parseMessage parses spec 4.3's "message" nonterminal: a binary
// expression optionally continued by a compound keyword selector. A
// statement can also open directly on a keyword, with no receiver at
// all (spec 9, "Implicit self") — most visibly the bare mutator send
// "name: expr" that spec 3.2's mutator invariant relies on everywhere.
// The lexer already hands back a leading "name:" as one tokKeyword, so
// that case is checked before falling into parseBinary/parsePrimary,
// which have no production for a leading keyword.
func (p *parser) parseMessage() (*Node, error) {
	if p.at(tokKeyword) && isKw1(p.peek().Text) {
		return p.parseKeywordMessage(nil)
	}
	recv, err := p.parseBinary()
	if err != nil {
		return nil, err
	}
	if !p.at(tokKeyword) || !isKw1(p.peek().Text) {
		return recv, nil
	}
	return p.parseKeywordMessage(recv)
}

// parseKeywordMessage parses the compound keyword-selector chain after
// recv (which is nil for an implicit-self send).
func (p *parser) parseKeywordMessage(recv *Node) (*Node, error) {
	var sel strings.Builder
	var args []*Node
	for p.at(tokKeyword) {
		kw := p.peek()
		if len(args) == 0 {
			if !isKw1(kw.Text) {
				break
			}
		} else if !isKw2(kw.Text) {
			break
		}
		p.advance()
		sel.WriteString(kw.Text)
		arg, err := p.parseBinary()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return Msg(recv, sel.String(), args...), nil
}

// parseBinary parses spec 4.3's "binary" nonterminal: a strict
// left-to-right chain with no precedence levels.
func (p *parser) parseBinary() (*Node, error) {
	recv, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.at(tokOp) {
		op := p.advance()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		recv = Msg(recv, op.Text, arg)
	}
	return recv, nil
}

// parseUnary parses spec 4.3's "unary" nonterminal: a primary followed
// by zero or more bare-name unary sends.
func (p *parser) parseUnary() (*Node, error) {
	recv, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.at(tokIdent) {
		name := p.advance()
		recv = Msg(recv, name.Text)
	}
	return recv, nil
}

// parsePrimary parses spec 4.3's "primary" nonterminal. A bare NAME is
// treated as an implicit send (spec 9, "Implicit self"): the grammar's
// listed alternatives (NUMBER, STRING, object, block) have no production
// for a lone identifier, so a name standing where a primary is expected
// is compiled as a zero-argument message with no receiver.
func (p *parser) parsePrimary() (*Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case tokNumber:
		p.advance()
		return Lit(parseNumberLiteral(tok.Text)), nil
	case tokString:
		p.advance()
		return Lit(NewString(tok.Text)), nil
	case tokLParen:
		return p.parseObjectOrMethod(tokRParen, false)
	case tokLBracket:
		return p.parseObjectOrMethod(tokRBracket, true)
	case tokIdent:
		p.advance()
		return Msg(nil, tok.Text), nil
	}
	return nil, &SyntaxError{Msg: "expected an expression", Pos: tok.Pos}
}

func parseNumberLiteral(text string) Value {
	if strings.Contains(text, ".") {
		f, _ := strconv.ParseFloat(text, 64)
		return NewFloat(f)
	}
	n, _ := strconv.ParseInt(text, 10, 64)
	return NewInteger(n)
}

// isKw1 reports whether a keyword token can open a compound selector:
// lowercase-initial per spec 4.3, with an allowance for the leading
// underscore of primitive selectors like "_VectorAt:".
func isKw1(text string) bool {
	r := []rune(text)
	if len(r) == 0 {
		return false
	}
	return r[0] == '_' || (r[0] >= 'a' && r[0] <= 'z')
}

// isKw2 reports whether a keyword token can continue a compound
// selector: uppercase-initial per spec 4.3.
func isKw2(text string) bool {
	r := []rune(text)
	return len(r) > 0 && r[0] >= 'A' && r[0] <= 'Z'
}

// slotKind distinguishes how a parsed slot declaration's value is
// produced, before it is materialized onto an object or method.
type slotKind int

const (
	slotArg slotKind = iota
	slotData
	slotConstant
)

// slotSpec is a parsed, not-yet-materialized slot declaration (spec
// 4.3's "slot" nonterminal).
type slotSpec struct {
	Name         string
	Kind         slotKind
	IsParent     bool
	InlineParams []string // only meaningful for slotConstant
	RHS          *Node
}

// parseSlots parses spec 4.3's "slots" nonterminal: a "|"-delimited,
// "."-separated list. Returns nil, nil if there is no slot list at all.
func (p *parser) parseSlots() ([]*slotSpec, error) {
	if !p.at(tokPipe) {
		return nil, nil
	}
	p.advance()
	var specs []*slotSpec
	for {
		// After a '.', a '|' followed by a name and '=' declares the
		// binary slot "|" (as true and false do in the bootstrap) rather
		// than closing the list.
		if len(specs) > 0 && p.at(tokPipe) && p.pos+2 < len(p.toks) &&
			p.toks[p.pos+1].Kind == tokIdent && p.toks[p.pos+2].Kind == tokOp && p.toks[p.pos+2].Text == "=" {
			p.toks[p.pos].Kind = tokOp
		}
		if p.at(tokPipe) {
			p.advance()
			return specs, nil
		}
		spec, err := p.parseSlot()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
		if p.at(tokDot) {
			p.advance()
			continue
		}
		if p.at(tokPipe) {
			p.advance()
			return specs, nil
		}
		return nil, &SyntaxError{Msg: "expected '.' or closing '|'", Pos: p.peek().Pos}
	}
}

// parseSlot parses one slot declaration, per spec 4.3's slot
// construction rules.
func (p *parser) parseSlot() (*slotSpec, error) {
	isArg := false
	if p.at(tokColon) {
		p.advance()
		isArg = true
	}
	name, params, err := p.parseSlotSelector()
	if err != nil {
		return nil, err
	}
	isParent := false
	if p.atOpText("*") {
		p.advance()
		isParent = true
	}
	spec := &slotSpec{Name: name, IsParent: isParent, InlineParams: params}

	switch {
	case p.atOpText("="):
		if isArg {
			return nil, &SyntaxError{Msg: "argument slot cannot take an initializer", Pos: p.peek().Pos}
		}
		p.advance()
		rhs, err := p.parseMessage()
		if err != nil {
			return nil, err
		}
		spec.Kind = slotConstant
		spec.RHS = rhs
		return spec, nil
	case p.atOpText("<-"):
		if isArg {
			return nil, &SyntaxError{Msg: "argument slot cannot take an initializer", Pos: p.peek().Pos}
		}
		if params != nil {
			return nil, &SyntaxError{Msg: "data slot cannot take inline parameters", Pos: p.peek().Pos}
		}
		p.advance()
		rhs, err := p.parseMessage()
		if err != nil {
			return nil, err
		}
		spec.Kind = slotData
		spec.RHS = rhs
		return spec, nil
	default:
		if isArg {
			spec.Kind = slotArg
			return spec, nil
		}
		spec.Kind = slotData
		return spec, nil
	}
}

// parseSlotSelector parses spec 4.3's "selector" nonterminal, which,
// unlike an ordinary message selector, allows an inline parameter NAME
// after each OP or keyword part. A mix of keyword parts where some
// supply a name and others do not is the "inconsistent inline-parameter
// lists" error spec 4.3 calls out.
func (p *parser) parseSlotSelector() (string, []string, error) {
	tok := p.peek()
	switch tok.Kind {
	case tokIdent:
		p.advance()
		return tok.Text, nil, nil
	case tokOp:
		p.advance()
		var params []string
		if p.at(tokIdent) {
			params = append(params, p.advance().Text)
		}
		return tok.Text, params, nil
	case tokKeyword:
		var sel strings.Builder
		var slots []string
		first := true
		for p.at(tokKeyword) {
			kw := p.peek()
			if first {
				if !isKw1(kw.Text) {
					break
				}
			} else if !isKw2(kw.Text) {
				break
			}
			p.advance()
			sel.WriteString(kw.Text)
			if p.at(tokIdent) {
				slots = append(slots, p.advance().Text)
			} else {
				slots = append(slots, "")
			}
			first = false
		}
		nonEmpty := 0
		for _, s := range slots {
			if s != "" {
				nonEmpty++
			}
		}
		switch {
		case nonEmpty == 0:
			return sel.String(), nil, nil
		case nonEmpty == len(slots):
			return sel.String(), slots, nil
		default:
			return "", nil, &SyntaxError{Msg: "inconsistent inline parameter list for " + sel.String(), Pos: tok.Pos}
		}
	}
	return "", nil, &SyntaxError{Msg: "expected a slot selector", Pos: tok.Pos}
}

// parseObjectOrMethod parses spec 4.3's "object" and "block"
// nonterminals, which share a grammar and differ only in bracket
// character and in what gets synthesized at slot 0.
func (p *parser) parseObjectOrMethod(closeKind tokenKind, isBlock bool) (*Node, error) {
	p.advance() // opening bracket
	specs, err := p.parseSlots()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody(closeKind, isBlock)
	if err != nil {
		return nil, err
	}
	if !p.at(closeKind) {
		return nil, &SyntaxError{Msg: "expected closing bracket", Pos: p.peek().Pos}
	}
	p.advance()

	// Spec 9, "Distinguishing methods from parenthesized expressions":
	// a plain object literal with an empty body is just a materialized
	// object, slots applied directly with no self/(parent) synthesis.
	if !isBlock && len(body) == 0 {
		obj := NewObject()
		for _, spec := range specs {
			if err := p.materializeSlot(obj, spec); err != nil {
				return nil, err
			}
		}
		return Lit(obj), nil
	}

	var m *Method
	if isBlock {
		m = NewBlockMethod()
	} else {
		m = NewRegularMethod()
	}
	var args, locals []*slotSpec
	for _, s := range specs {
		if s.Kind == slotArg {
			args = append(args, s)
		} else {
			locals = append(locals, s)
		}
	}
	for _, s := range args {
		m.AddArgument(s.Name, nil)
	}
	for _, s := range locals {
		if err := p.materializeSlot(&m.Object, s); err != nil {
			return nil, err
		}
	}
	if isBlock && len(body) == 0 {
		body = []*Node{Lit(p.vm.Nil)}
	}
	m.Code = body

	if isBlock {
		block := NewBlockObject(p.vm.TraitsBlock, m)
		return Blk(block), nil
	}
	return Mth(m), nil
}

// materializeSlot applies one parsed slot declaration's construction
// rule onto owner (spec 4.3's "=" / "<-" / absent-initializer rules).
func (p *parser) materializeSlot(owner *Object, spec *slotSpec) error {
	switch spec.Kind {
	case slotArg:
		// An argument slot declared outside a method/block body has
		// nothing to populate it, but it is still a legal declaration
		// (spec 8.4's marker round-trip covers it); keep it inert.
		owner.AddArgument(spec.Name, nil)
		return nil
	case slotData:
		var v Value = p.vm.Nil
		if spec.RHS != nil {
			val, err := p.evalAtParseTime(spec.RHS)
			if err != nil {
				return err
			}
			v = val
		}
		owner.AddDataSlot(spec.Name, v, spec.IsParent)
		return nil
	case slotConstant:
		val, err := p.constantSlotValue(spec)
		if err != nil {
			return err
		}
		if spec.IsParent {
			owner.AddParentConstant(spec.Name, val)
		} else {
			owner.AddConstant(spec.Name, val)
		}
		return nil
	}
	return nil
}

// constantSlotValue implements the "= expr" construction rule (spec
// 4.3): a Lit RHS stores its literal, a Mth RHS stores the inner method,
// anything else is evaluated once at parse time in the lobby. When the
// selector carried inline parameter names, the RHS is coerced into (or
// already is) a method and the names are injected as its argument list.
func (p *parser) constantSlotValue(spec *slotSpec) (Value, error) {
	if len(spec.InlineParams) == 0 {
		switch spec.RHS.Kind {
		case LitNode:
			return spec.RHS.Lit, nil
		case MthNode:
			return spec.RHS.Method, nil
		default:
			return p.evalAtParseTime(spec.RHS)
		}
	}
	var m *Method
	if spec.RHS.Kind == MthNode {
		m = spec.RHS.Method
	} else {
		m = NewRegularMethod()
		m.Code = []*Node{spec.RHS}
	}
	injected := make([]*Slot, len(spec.InlineParams))
	for i, name := range spec.InlineParams {
		injected[i] = &Slot{Name: name, Kind: Argument}
	}
	m.insertArgSlotsAfterSelf(injected)
	return m, nil
}

// evalAtParseTime executes a computed slot initializer in the lobby, as
// spec 4.3 requires for any "=" RHS that is not already a Lit or Mth,
// and for every "<-" RHS.
func (p *parser) evalAtParseTime(n *Node) (Value, error) {
	return p.vm.Eval(n, p.vm.Lobby)
}
