package grammar

func containsSymbol(rhs []symbol, sym symbol) bool {
	for _, s := range rhs {
		if s == sym {
			return true
		}
	}
	return false
}

// expandOccurrences generates every way of keeping or dropping the
// occurrences of sym in rhs, the all-dropped form first and the unchanged
// form last. A form left without symbols becomes the ε sentinel.
func expandOccurrences(rhs []symbol, sym symbol) [][]symbol {
	var indices []int
	for i, s := range rhs {
		if s == sym {
			indices = append(indices, i)
		}
	}

	results := make([][]symbol, 0, 1<<uint(len(indices)))
	for mask := 0; mask < 1<<uint(len(indices)); mask++ {
		dropped := map[int]struct{}{}
		for i, idx := range indices {
			if mask&(1<<uint(i)) == 0 {
				dropped[idx] = struct{}{}
			}
		}

		rest := make([]symbol, 0, len(rhs))
		for i, s := range rhs {
			if _, ok := dropped[i]; ok {
				continue
			}
			rest = append(rest, s)
		}
		if len(rest) == 0 {
			rest = []symbol{symbolNameEpsilon}
		}
		results = append(results, rest)
	}
	return results
}
