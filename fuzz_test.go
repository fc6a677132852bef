package selfcore

import "testing"

// FuzzParse exercises the lexer and parser together: whatever the input,
// Parse must return a value or an error but never panic, grounded on
// funvibe-funxy's dedicated fuzz-target convention for its own parser
// (tests/fuzz/targets/parser_fuzz_test.go).
func FuzzParse(f *testing.F) {
	seeds := []string{
		"3 + 4",
		"1 + 2 * 3",
		"(1 + 2) * (3 - 4)",
		"'abc' from: 1 To: 2",
		"true ifTrue: [5] False: [6]",
		"(| x <- 0. m = ([x = 3] whileFalse: [x: x + 1]. x) |) m",
		"(| m = ([^42] value. 1) |) m",
		"(| m = (1 & 2 & 3 & 4) |) m printString",
		"(| a |)",
		"(| :arg. local <- 1. p* <- 2. const = 3 | arg)",
		"[| :e | e]",
		"self at: 1 Put: 2",
		"",
		"(",
		"[^1. 2]",
		"'unterminated",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	vm := NewVM()
	f.Fuzz(func(t *testing.T, source string) {
		_, _ = Parse(vm, source)
	})
}
