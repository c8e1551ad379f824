package grammar

import "fmt"

// isolateStartVariable reassigns the start to a fresh variable deriving the
// old one when the current start occurs on any RHS. Afterward no RHS
// mentions the start, so a retained start ε-production needs no
// compensation in the later stages. The first occurrence short-circuits
// the scan; without an occurrence the grammar stays untouched.
func isolateStartVariable(gram *Grammar) error {
	occurs := false
scan:
	for _, lhs := range gram.productionSet.lhsSymbols() {
		prods, ok := gram.productionSet.findByLHS(lhs)
		if !ok {
			continue
		}
		for _, prod := range prods {
			if containsSymbol(prod.rhs, gram.startVariable) {
				occurs = true
				break scan
			}
		}
	}
	if !occurs {
		return nil
	}

	newStart := freshStartVariable(gram)
	prod, err := newProduction(newStart, []symbol{gram.startVariable})
	if err != nil {
		return err
	}
	gram.variables.add(newStart)
	gram.productionSet.append(prod)
	gram.startVariable = newStart

	return nil
}

// freshStartVariable returns the first S-numbered name, counting from S0,
// that no current symbol uses.
func freshStartVariable(gram *Grammar) symbol {
	for num := 0; ; num++ {
		sym := symbol(fmt.Sprintf("S%v", num))
		if !gram.symbolTaken(sym) {
			return sym
		}
	}
}
