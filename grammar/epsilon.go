package grammar

// eliminateEpsilonProductions removes every ε-production except the start
// variable's, compensating each removal by re-deriving, for every
// production holding the removed variable, all keep/drop subsets of its
// occurrences. Variables turning nullable through the rewriting join the
// worklist, so the loop reaches the nullable closure.
func eliminateEpsilonProductions(gram *Grammar) error {
	visited := map[symbol]struct{}{}
	queued := map[symbol]struct{}{}
	var worklist []symbol
	for _, v := range gram.variables.slice() {
		if v == gram.startVariable {
			continue
		}
		if _, ok := gram.findEpsilonProduction(v); ok {
			worklist = append(worklist, v)
			queued[v] = struct{}{}
		}
	}

	for len(worklist) > 0 {
		v := worklist[0]
		worklist = worklist[1:]
		delete(queued, v)
		visited[v] = struct{}{}

		if prod, ok := gram.findEpsilonProduction(v); ok {
			gram.productionSet.remove(prod)
		}

		for _, w := range gram.productionSet.lhsSymbols() {
			prods, ok := gram.productionSet.findByLHS(w)
			if !ok || len(prods) == 0 {
				continue
			}
			affected := false
			for _, prod := range prods {
				if containsSymbol(prod.rhs, v) {
					affected = true
					break
				}
			}
			if !affected {
				continue
			}

			snapshot := append([]*production{}, prods...)
			var rhsList [][]symbol
			for _, prod := range snapshot {
				if !containsSymbol(prod.rhs, v) {
					rhsList = append(rhsList, prod.rhs)
					continue
				}
				rhsList = append(rhsList, expandOccurrences(prod.rhs, v)...)
			}
			for _, prod := range snapshot {
				gram.productionSet.remove(prod)
			}
			for _, rhs := range rhsList {
				prod, err := newProduction(w, rhs)
				if err != nil {
					return err
				}
				gram.productionSet.append(prod)
			}

			eProd, ok := gram.findEpsilonProduction(w)
			if !ok || w == gram.startVariable {
				continue
			}
			if _, ok := visited[w]; ok {
				// w's nullability was compensated when w was processed;
				// a re-derived ε-production would undo the elimination.
				gram.productionSet.remove(eProd)
				continue
			}
			if _, ok := queued[w]; !ok {
				worklist = append(worklist, w)
				queued[w] = struct{}{}
			}
		}
	}

	return nil
}

func (g *Grammar) findEpsilonProduction(lhs symbol) (*production, bool) {
	prods, ok := g.productionSet.findByLHS(lhs)
	if !ok {
		return nil, false
	}
	for _, prod := range prods {
		if prod.isEpsilon() {
			return prod, true
		}
	}
	return nil, false
}
