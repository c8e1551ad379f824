package grammar

import (
	"fmt"

	"github.com/heliataromi/Chomsky-normal-form/spec"
)

type normalizeConfig struct {
	isReportingEnabled bool
}

type NormalizeOption func(config *normalizeConfig)

func EnableReporting() NormalizeOption {
	return func(config *normalizeConfig) {
		config.isReportingEnabled = true
	}
}

// Normalize converts the grammar to Chomsky normal form in place: start
// isolation, ε elimination, unit elimination, then the proper form. The
// start variable's ε-production survives when the language contains the
// empty string. Normalize asserts the resulting shape and fails instead of
// yielding a non-conforming grammar.
func Normalize(gram *Grammar, opts ...NormalizeOption) (*spec.Report, error) {
	config := &normalizeConfig{}
	for _, opt := range opts {
		opt(config)
	}

	var report *spec.Report
	if config.isReportingEnabled {
		report = &spec.Report{}
	}
	namer := newFreshNamer(gram)

	err := isolateStartVariable(gram)
	if err != nil {
		return nil, err
	}
	recordStage(report, gram, "start isolation")

	err = eliminateEpsilonProductions(gram)
	if err != nil {
		return nil, err
	}
	recordStage(report, gram, "epsilon elimination")

	err = eliminateUnitProductions(gram)
	if err != nil {
		return nil, err
	}
	recordStage(report, gram, "unit elimination")

	err = convertToProperForm(gram, namer)
	if err != nil {
		return nil, err
	}
	recordStage(report, gram, "proper form")

	err = validateProperForm(gram)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// freshNamer mints U-numbered variable names that no current symbol uses.
// The counter never rewinds, so one namer yields distinct names across the
// stages sharing it.
type freshNamer struct {
	gram *Grammar
	num  int
}

func newFreshNamer(gram *Grammar) *freshNamer {
	return &freshNamer{
		gram: gram,
		num:  1,
	}
}

func (n *freshNamer) mint() symbol {
	for {
		sym := symbol(fmt.Sprintf("U%v", n.num))
		n.num++
		if !n.gram.symbolTaken(sym) {
			return sym
		}
	}
}

func recordStage(report *spec.Report, gram *Grammar, name string) {
	if report == nil {
		return
	}
	report.Stages = append(report.Stages, &spec.Stage{
		Name:            name,
		VariableCount:   gram.variables.len(),
		ProductionCount: gram.productionSet.len(),
		Rules:           gram.ruleLines(),
	})
}

// validateProperForm checks the Chomsky normal form shape: every
// production derives either a single terminal, or a pair of variables
// neither of which is the start, with the start's ε-production as the one
// allowed exception.
func validateProperForm(gram *Grammar) error {
	for _, lhs := range gram.productionSet.lhsSymbols() {
		prods, ok := gram.productionSet.findByLHS(lhs)
		if !ok {
			continue
		}
		for _, prod := range prods {
			switch prod.rhsLen {
			case 1:
				sym := prod.rhs[0]
				if sym.isEpsilon() {
					if prod.lhs != gram.startVariable {
						return fmt.Errorf("normalization left an ε-production on a non-start variable; LHS: %v", prod.lhs)
					}
					continue
				}
				if gram.variables.contains(sym) {
					return fmt.Errorf("normalization left a unit production; LHS: %v, RHS: %v", prod.lhs, prod.rhsText())
				}
			case 2:
				for _, sym := range prod.rhs {
					if !gram.variables.contains(sym) {
						return fmt.Errorf("normalization left a terminal in a pair production; LHS: %v, RHS: %v", prod.lhs, prod.rhsText())
					}
					if sym == gram.startVariable {
						return fmt.Errorf("normalization left the start variable on a RHS; LHS: %v, RHS: %v", prod.lhs, prod.rhsText())
					}
				}
			default:
				return fmt.Errorf("normalization left a production of %v symbols; LHS: %v, RHS: %v", prod.rhsLen, prod.lhs, prod.rhsText())
			}
		}
	}
	return nil
}
