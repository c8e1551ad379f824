package grammar

import (
	"regexp"
	"unicode"
)

// symbolNameEpsilon marks the empty string. It is registered as a terminal
// and appears on a RHS only as the sole symbol of an ε-production.
const symbolNameEpsilon = "ε"

type symbol string

func (s symbol) String() string {
	return string(s)
}

func (s symbol) isEpsilon() bool {
	return s == symbolNameEpsilon
}

// reRuleName is the shape a rule LHS must have: an upper-case letter
// optionally followed by digits.
var reRuleName = regexp.MustCompile(`^[A-Z][0-9]*$`)

func (s symbol) isWellFormedRuleName() bool {
	return reRuleName.MatchString(string(s))
}

// looksLikeVariable reports whether an undeclared symbol joins the variable
// set: it contains an upper-case letter and no lower-case one. Every other
// undeclared symbol, the ε marker included, counts as a terminal.
func (s symbol) looksLikeVariable() bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// symbolSet is an insertion-ordered set. The order is what display and
// the pipeline stages iterate in, so membership updates must keep it stable.
type symbolSet struct {
	syms    []symbol
	sym2Idx map[symbol]int
}

func newSymbolSet(syms ...symbol) *symbolSet {
	s := &symbolSet{
		syms:    []symbol{},
		sym2Idx: map[symbol]int{},
	}
	for _, sym := range syms {
		s.add(sym)
	}
	return s
}

func (s *symbolSet) add(sym symbol) bool {
	if _, ok := s.sym2Idx[sym]; ok {
		return false
	}
	s.sym2Idx[sym] = len(s.syms)
	s.syms = append(s.syms, sym)
	return true
}

func (s *symbolSet) contains(sym symbol) bool {
	_, ok := s.sym2Idx[sym]
	return ok
}

func (s *symbolSet) slice() []symbol {
	return s.syms
}

func (s *symbolSet) len() int {
	return len(s.syms)
}
