package grammar

// eliminateUnitProductions removes every production whose RHS is a single
// variable. Each variable first receives the non-unit productions of every
// variable reachable from it over the unit graph; afterward all unit
// productions go away in one sweep. Both the graph and the copied
// production lists are the stage-start snapshot, so chains and cycles of
// any length resolve through reachability instead of iteration order, and
// copying never feeds new pairs back into the stage.
func eliminateUnitProductions(gram *Grammar) error {
	unitEdges := map[symbol][]symbol{}
	nonUnits := map[symbol][]*production{}
	for _, lhs := range gram.productionSet.lhsSymbols() {
		prods, ok := gram.productionSet.findByLHS(lhs)
		if !ok {
			continue
		}
		for _, prod := range prods {
			if isUnitProduction(gram, prod) {
				if prod.rhs[0] != lhs {
					unitEdges[lhs] = append(unitEdges[lhs], prod.rhs[0])
				}
				continue
			}
			nonUnits[lhs] = append(nonUnits[lhs], prod)
		}
	}

	for _, lhs := range gram.productionSet.lhsSymbols() {
		if len(unitEdges[lhs]) == 0 {
			continue
		}

		known := map[symbol]struct{}{
			lhs: {},
		}
		var reachable []symbol
		unchecked := append([]symbol{}, unitEdges[lhs]...)
		for len(unchecked) > 0 {
			b := unchecked[0]
			unchecked = unchecked[1:]
			if _, ok := known[b]; ok {
				continue
			}
			known[b] = struct{}{}
			reachable = append(reachable, b)
			unchecked = append(unchecked, unitEdges[b]...)
		}

		for _, b := range reachable {
			for _, prod := range nonUnits[b] {
				newProd, err := newProduction(lhs, prod.rhs)
				if err != nil {
					return err
				}
				gram.productionSet.append(newProd)
			}
		}
	}

	for _, lhs := range gram.productionSet.lhsSymbols() {
		prods, ok := gram.productionSet.findByLHS(lhs)
		if !ok {
			continue
		}
		snapshot := append([]*production{}, prods...)
		for _, prod := range snapshot {
			if isUnitProduction(gram, prod) {
				gram.productionSet.remove(prod)
			}
		}
	}

	return nil
}

// isUnitProduction reports whether the RHS is a single symbol the grammar
// knows as a variable. Membership decides, not the symbol's shape, so a
// declared terminal of variable shape never counts.
func isUnitProduction(gram *Grammar, prod *production) bool {
	return prod.rhsLen == 1 && gram.variables.contains(prod.rhs[0])
}
