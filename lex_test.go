package selfcore

import "testing"

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "tokEOF"
	case tokNumber:
		return "tokNumber"
	case tokString:
		return "tokString"
	case tokIdent:
		return "tokIdent"
	case tokKeyword:
		return "tokKeyword"
	case tokOp:
		return "tokOp"
	case tokLParen:
		return "tokLParen"
	case tokRParen:
		return "tokRParen"
	case tokLBracket:
		return "tokLBracket"
	case tokRBracket:
		return "tokRBracket"
	case tokPipe:
		return "tokPipe"
	case tokDot:
		return "tokDot"
	case tokCaret:
		return "tokCaret"
	case tokColon:
		return "tokColon"
	}
	panic("invalid tokenKind")
}

// TestLexSingles checks that individual tokens get the expected kind
// and text.
func TestLexSingles(t *testing.T) {
	cases := map[string]struct {
		src  string
		kind tokenKind
		text string
	}{
		"ident":          {"abc", tokIdent, "abc"},
		"ident-digits":   {"a1b2", tokIdent, "a1b2"},
		"keyword":        {"at:", tokKeyword, "at:"},
		"keyword-upper":  {"At:", tokKeyword, "At:"},
		"number":         {"42", tokNumber, "42"},
		"number-frac":    {"3.14", tokNumber, "3.14"},
		"number-negative": {"-7", tokNumber, "-7"},
		"string":         {"'hi'", tokString, "hi"},
		"string-escape":  {`'a\nb'`, tokString, "a\nb"},
		"op":             {"+", tokOp, "+"},
		"op-run":         {"~=", tokOp, "~="},
		"lparen":         {"(", tokLParen, "("},
		"rparen":         {")", tokRParen, ")"},
		"lbracket":       {"[", tokLBracket, "["},
		"rbracket":       {"]", tokRBracket, "]"},
		"pipe":           {"|", tokPipe, "|"},
		"dot":            {".", tokDot, "."},
		"caret":          {"^", tokCaret, "^"},
		"colon":          {":", tokColon, ":"},
		"star":           {"*", tokOp, "*"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			toks, err := newLexer(c.src).tokens()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(toks) != 2 {
				t.Fatalf("expected one token plus EOF, got %d", len(toks))
			}
			if toks[0].Kind != c.kind {
				t.Errorf("kind = %v, want %v", toks[0].Kind, c.kind)
			}
			if toks[0].Text != c.text {
				t.Errorf("text = %q, want %q", toks[0].Text, c.text)
			}
		})
	}
}

// TestLexMinusAttachesOnlyWithoutSpace checks the sign-attachment rule
// that keeps "3 - 4" a subtraction rather than two adjacent literals.
func TestLexMinusAttachesOnlyWithoutSpace(t *testing.T) {
	toks, err := newLexer("3 - 4").tokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tokenKind{tokNumber, tokOp, tokNumber, tokEOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[2].Text != "4" {
		t.Errorf("token 2 text = %q, want %q", toks[2].Text, "4")
	}

	toks, err = newLexer("x: -4").tokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[1].Kind != tokNumber || toks[1].Text != "-4" {
		t.Errorf("tight minus: got kind %v text %q, want tokNumber -4", toks[1].Kind, toks[1].Text)
	}
}

func TestLexSkipsComments(t *testing.T) {
	toks, err := newLexer(`1 "a comment" + 2`).tokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tokenKind{tokNumber, tokOp, tokNumber, tokEOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
}
