package grammar

import "testing"

func TestSymbol_isWellFormedRuleName(t *testing.T) {
	wellFormed := []symbol{"S", "A0", "B12", "Z999"}
	for _, sym := range wellFormed {
		if !sym.isWellFormedRuleName() {
			t.Errorf("a well-formed rule name was rejected: %v", sym)
		}
	}

	malformed := []symbol{"", "s", "1S", "S1a", "AB", "A_1", "ε"}
	for _, sym := range malformed {
		if sym.isWellFormedRuleName() {
			t.Errorf("a malformed rule name was accepted: %v", sym)
		}
	}
}

func TestSymbol_looksLikeVariable(t *testing.T) {
	variables := []symbol{"S", "A0", "AB", "X_Y", "S0"}
	for _, sym := range variables {
		if !sym.looksLikeVariable() {
			t.Errorf("a variable-shaped symbol was classified as a terminal: %v", sym)
		}
	}

	terminals := []symbol{"a", "Ab", "aB", "0", "_", "+", "ε"}
	for _, sym := range terminals {
		if sym.looksLikeVariable() {
			t.Errorf("a terminal-shaped symbol was classified as a variable: %v", sym)
		}
	}
}

func TestSymbolSet_keepsInsertionOrder(t *testing.T) {
	s := newSymbolSet("B", "A", "C")
	s.add("A")
	s.add("D")

	expected := []symbol{"B", "A", "C", "D"}
	syms := s.slice()
	if len(syms) != len(expected) {
		t.Fatalf("unexpected symbols; want: %v, got: %v", expected, syms)
	}
	for i, sym := range expected {
		if syms[i] != sym {
			t.Errorf("unexpected symbol at %v; want: %v, got: %v", i, sym, syms[i])
		}
	}
	if s.len() != 4 {
		t.Errorf("unexpected length; want: 4, got: %v", s.len())
	}
	if !s.contains("C") || s.contains("E") {
		t.Errorf("membership is broken")
	}
}
