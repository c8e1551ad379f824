package grammar

import (
	"strings"
	"testing"

	"github.com/heliataromi/Chomsky-normal-form/spec"
)

func genGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	ast, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse a grammar source: %v", err)
	}
	b := GrammarBuilder{
		AST: ast,
	}
	gram, err := b.Build()
	if err != nil {
		t.Fatalf("failed to build a grammar: %v", err)
	}
	return gram
}

type testProductionGenerator func(lhs string, rhs ...string) *production

func newTestProductionGenerator(t *testing.T) testProductionGenerator {
	return func(lhs string, rhs ...string) *production {
		t.Helper()

		rhsSyms := make([]symbol, len(rhs))
		for i, text := range rhs {
			rhsSyms[i] = symbol(text)
		}
		prod, err := newProduction(symbol(lhs), rhsSyms)
		if err != nil {
			t.Fatalf("failed to create a production: %v", err)
		}
		return prod
	}
}

func testGrammarHasProduction(t *testing.T, gram *Grammar, expected *production) {
	t.Helper()

	if _, ok := gram.productionSet.findByID(expected.id); !ok {
		t.Fatalf("a production was not found: %v → %v", expected.lhs, expected.rhsText())
	}
}

func testGrammarLacksProduction(t *testing.T, gram *Grammar, unexpected *production) {
	t.Helper()

	if _, ok := gram.productionSet.findByID(unexpected.id); ok {
		t.Fatalf("an unexpected production was found: %v → %v", unexpected.lhs, unexpected.rhsText())
	}
}

// deriveStrings collects every terminal string of at most maxLen symbols
// the grammar derives. It walks leftmost sentential forms breadth-first
// with memoization, pruning forms that already hold more than maxLen
// terminals or grew past maxLen+8 symbols, which is enough slack for the
// small grammars the tests use.
func deriveStrings(t *testing.T, gram *Grammar, maxLen int) map[string]struct{} {
	t.Helper()

	derived := map[string]struct{}{}
	seen := map[string]struct{}{}
	forms := [][]symbol{{gram.startVariable}}
	for len(forms) > 0 {
		form := forms[0]
		forms = forms[1:]

		key := formKey(form)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		varPos := -1
		termCount := 0
		for i, sym := range form {
			if gram.variables.contains(sym) {
				if varPos < 0 {
					varPos = i
				}
				continue
			}
			termCount++
		}
		if termCount > maxLen || len(form) > maxLen+8 {
			continue
		}
		if varPos < 0 {
			var b strings.Builder
			for _, sym := range form {
				b.WriteString(sym.String())
			}
			derived[b.String()] = struct{}{}
			continue
		}

		prods, ok := gram.productionSet.findByLHS(form[varPos])
		if !ok {
			continue
		}
		for _, prod := range prods {
			var next []symbol
			next = append(next, form[:varPos]...)
			if !prod.isEpsilon() {
				next = append(next, prod.rhs...)
			}
			next = append(next, form[varPos+1:]...)
			forms = append(forms, next)
		}
	}
	return derived
}

func formKey(form []symbol) string {
	var b strings.Builder
	for _, sym := range form {
		b.WriteString(sym.String())
		b.WriteByte(0x00)
	}
	return b.String()
}

func testLanguagesEqual(t *testing.T, want, got map[string]struct{}) {
	t.Helper()

	for s := range want {
		if _, ok := got[s]; !ok {
			t.Errorf("a derivable string was lost: %#v", s)
		}
	}
	for s := range got {
		if _, ok := want[s]; !ok {
			t.Errorf("an underivable string was gained: %#v", s)
		}
	}
}
