package grammar

// convertToProperForm rewrites the grammar so every production is a pair of
// symbols or a single symbol: long productions lose their tails to chain
// variables, then the terminals left inside pairs move into unit-terminal
// variables. The namer is shared by both passes.
func convertToProperForm(gram *Grammar, namer *freshNamer) error {
	err := binarize(gram, namer)
	if err != nil {
		return err
	}
	return isolateTerminals(gram, namer)
}

// binarize splits every production of three or more symbols into the head
// symbol plus a variable deriving the tail. A tail reuses an existing
// variable when that variable's entire rule is exactly the tail; fresh
// tail variables join the worklist because their rules may need splitting
// again.
func binarize(gram *Grammar, namer *freshNamer) error {
	worklist := append([]symbol{}, gram.productionSet.lhsSymbols()...)
	for len(worklist) > 0 {
		lhs := worklist[0]
		worklist = worklist[1:]

		prods, ok := gram.productionSet.findByLHS(lhs)
		if !ok || len(prods) == 0 {
			continue
		}
		snapshot := append([]*production{}, prods...)
		for _, prod := range snapshot {
			if prod.rhsLen < 3 {
				continue
			}
			gram.productionSet.remove(prod)

			tail := prod.rhs[1:]
			tailVar, ok := findSoleRuleVariable(gram, tail, lhs)
			if !ok {
				tailVar = namer.mint()
				tailProd, err := newProduction(tailVar, tail)
				if err != nil {
					return err
				}
				gram.variables.add(tailVar)
				gram.productionSet.append(tailProd)
				worklist = append(worklist, tailVar)
			}
			binProd, err := newProduction(lhs, []symbol{prod.rhs[0], tailVar})
			if err != nil {
				return err
			}
			gram.productionSet.append(binProd)
		}
	}
	return nil
}

// isolateTerminals moves every terminal sitting in a two-symbol production
// into a variable whose only rule is that terminal, reusing such a
// variable when one exists. The minted rules are single-symbol and need no
// further rewriting.
func isolateTerminals(gram *Grammar, namer *freshNamer) error {
	worklist := append([]symbol{}, gram.productionSet.lhsSymbols()...)
	for len(worklist) > 0 {
		lhs := worklist[0]
		worklist = worklist[1:]

		prods, ok := gram.productionSet.findByLHS(lhs)
		if !ok || len(prods) == 0 {
			continue
		}
		snapshot := append([]*production{}, prods...)
		for _, prod := range snapshot {
			if prod.rhsLen != 2 {
				continue
			}

			cur := prod
			for pos := 0; pos < 2; pos++ {
				sym := cur.rhs[pos]
				if !gram.terminals.contains(sym) {
					continue
				}

				termVar, ok := findSoleRuleVariable(gram, []symbol{sym}, lhs)
				if !ok {
					termVar = namer.mint()
					unitProd, err := newProduction(termVar, []symbol{sym})
					if err != nil {
						return err
					}
					gram.variables.add(termVar)
					gram.productionSet.append(unitProd)
				}

				rhs := make([]symbol, 2)
				copy(rhs, cur.rhs)
				rhs[pos] = termVar
				newProd, err := newProduction(lhs, rhs)
				if err != nil {
					return err
				}
				gram.productionSet.replace(cur, newProd)
				cur = newProd
			}
		}
	}
	return nil
}

// findSoleRuleVariable returns a variable whose entire rule is exactly the
// given RHS. The variable being rewritten is excluded: reusing it would tie
// its remaining rule back to itself and grow the language. The start
// variable is excluded too, since reusing it would put it back on a RHS.
func findSoleRuleVariable(gram *Grammar, rhs []symbol, excluded symbol) (symbol, bool) {
	for _, lhs := range gram.productionSet.lhsSymbols() {
		if lhs == excluded || lhs == gram.startVariable {
			continue
		}
		prods, ok := gram.productionSet.findByLHS(lhs)
		if !ok || len(prods) != 1 {
			continue
		}
		if equalRHS(prods[0].rhs, rhs) {
			return lhs, true
		}
	}
	return "", false
}

func equalRHS(a, b []symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i, sym := range a {
		if b[i] != sym {
			return false
		}
	}
	return true
}
