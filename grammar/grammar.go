package grammar

import (
	"fmt"
	"strings"

	verr "github.com/heliataromi/Chomsky-normal-form/error"
	"github.com/heliataromi/Chomsky-normal-form/spec"
)

type Grammar struct {
	name          string
	variables     *symbolSet
	terminals     *symbolSet
	productionSet *productionSet
	startVariable symbol
}

// NewGrammar makes an empty grammar carrying the declared symbol sets. The
// declarations may be incomplete; AddRule classifies undeclared symbols as
// it meets them.
func NewGrammar(variables []string, terminals []string, startVariable string) *Grammar {
	g := &Grammar{
		variables:     newSymbolSet(),
		terminals:     newSymbolSet(),
		productionSet: newProductionSet(),
		startVariable: symbol(startVariable),
	}
	for _, v := range variables {
		g.variables.add(symbol(v))
	}
	for _, t := range terminals {
		g.terminals.add(symbol(t))
	}
	return g
}

type GrammarBuilder struct {
	AST *spec.RootNode

	errs verr.SpecErrors
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	var specName string
	var varParams []*spec.ParameterNode
	var termParams []*spec.ParameterNode
	var startName string
	var startPos spec.Position
	startDeclared := false

	dirConsumed := map[string]struct{}{}
	for _, dir := range b.AST.Directives {
		if _, consumed := dirConsumed[dir.Name]; consumed {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDuplicateDir,
				Detail: dir.Name,
				Row:    dir.Pos.Row,
				Col:    dir.Pos.Col,
			})
			continue
		}
		dirConsumed[dir.Name] = struct{}{}

		switch dir.Name {
		case "name":
			if len(dir.Parameters) != 1 || dir.Parameters[0].ID == "" {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'name' takes just one ID parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			specName = dir.Parameters[0].ID
		case "variables":
			if len(dir.Parameters) == 0 {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'variables' takes at least one ID parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			varParams = dir.Parameters
		case "terminals":
			if len(dir.Parameters) == 0 {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'terminals' takes at least one ID parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			termParams = dir.Parameters
		case "start":
			if len(dir.Parameters) != 1 || dir.Parameters[0].ID == "" {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'start' takes just one ID parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			startName = dir.Parameters[0].ID
			startPos = dir.Pos
			startDeclared = true
		default:
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDirInvalidName,
				Detail: dir.Name,
				Row:    dir.Pos.Row,
				Col:    dir.Pos.Col,
			})
		}
	}

	declaredVars := map[string]struct{}{}
	varNames := make([]string, 0, len(varParams))
	for _, param := range varParams {
		declaredVars[param.ID] = struct{}{}
		varNames = append(varNames, param.ID)
	}
	termNames := make([]string, 0, len(termParams))
	for _, param := range termParams {
		if _, ok := declaredVars[param.ID]; ok {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDuplicateName,
				Detail: param.ID,
				Row:    param.Pos.Row,
				Col:    param.Pos.Col,
			})
			continue
		}
		termNames = append(termNames, param.ID)
	}

	if !startDeclared {
		startName = b.AST.Rules[0].LHS
	}

	g := NewGrammar(varNames, termNames, startName)
	g.name = specName

	for _, rule := range b.AST.Rules {
		alts := make([][]string, len(rule.RHS))
		for i, alt := range rule.RHS {
			if len(alt.Elements) == 0 {
				alts[i] = []string{symbolNameEpsilon}
				continue
			}
			seq := make([]string, len(alt.Elements))
			for j, elem := range alt.Elements {
				seq[j] = elem.ID
			}
			alts[i] = seq
		}
		err := g.AddRule(rule.LHS, alts...)
		if err != nil {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  err,
				Detail: rule.LHS,
				Row:    rule.Pos.Row,
				Col:    rule.Pos.Col,
			})
		}
	}

	if prods, ok := g.productionSet.findByLHS(g.startVariable); !ok || len(prods) == 0 {
		specErr := &verr.SpecError{
			Cause:  semErrStartNoRule,
			Detail: startName,
		}
		if startDeclared {
			specErr.Row = startPos.Row
			specErr.Col = startPos.Col
		}
		b.errs = append(b.errs, specErr)
	}

	if len(b.errs) > 0 {
		return nil, b.errs
	}

	return g, nil
}

// AddProduction registers lhs as a variable and appends the production to
// its rule. Appending a production the rule already lists is a no-op. The
// RHS symbols stay unclassified; AddRule is the classifying entry point.
func (g *Grammar) AddProduction(lhs string, rhs []string) error {
	lhsSym := symbol(lhs)
	rhsSyms := make([]symbol, len(rhs))
	for i, sym := range rhs {
		rhsSyms[i] = symbol(sym)
	}
	prod, err := newProduction(lhsSym, rhsSyms)
	if err != nil {
		return err
	}

	g.variables.add(lhsSym)
	g.productionSet.append(prod)

	return nil
}

// AddRule validates the LHS name, classifies the undeclared symbols of
// every alternative, and appends one production per alternative. The
// grammar mutates only when the whole call has validated.
func (g *Grammar) AddRule(lhs string, alternatives ...[]string) error {
	lhsSym := symbol(lhs)
	if !lhsSym.isWellFormedRuleName() {
		return ErrInvalidRuleName
	}

	prods := make([]*production, len(alternatives))
	for i, alt := range alternatives {
		rhsSyms := make([]symbol, len(alt))
		for j, sym := range alt {
			rhsSyms[j] = symbol(sym)
		}
		prod, err := newProduction(lhsSym, rhsSyms)
		if err != nil {
			return err
		}
		prods[i] = prod
	}

	for _, prod := range prods {
		for _, sym := range prod.rhs {
			if g.variables.contains(sym) || g.terminals.contains(sym) {
				continue
			}
			if sym.looksLikeVariable() {
				g.variables.add(sym)
			} else {
				g.terminals.add(sym)
			}
		}
		g.variables.add(prod.lhs)
		g.productionSet.append(prod)
	}

	return nil
}

func (g *Grammar) symbolTaken(sym symbol) bool {
	return g.variables.contains(sym) || g.terminals.contains(sym)
}

// displayOrder lists the LHSs that ever held a production, the current
// start variable first and the rest in the order their first production
// arrived.
func (g *Grammar) displayOrder() []symbol {
	lhsSyms := g.productionSet.lhsSymbols()
	order := make([]symbol, 0, len(lhsSyms))
	if _, ok := g.productionSet.findByLHS(g.startVariable); ok {
		order = append(order, g.startVariable)
	}
	for _, lhs := range lhsSyms {
		if lhs == g.startVariable {
			continue
		}
		order = append(order, lhs)
	}
	return order
}

func (g *Grammar) ruleLines() []string {
	var lines []string
	for _, lhs := range g.displayOrder() {
		prods, ok := g.productionSet.findByLHS(lhs)
		if !ok || len(prods) == 0 {
			continue
		}
		alts := make([]string, len(prods))
		for i, prod := range prods {
			alts[i] = prod.rhsText()
		}
		lines = append(lines, fmt.Sprintf("%v → %v", lhs, strings.Join(alts, "|")))
	}
	return lines
}

func (g *Grammar) String() string {
	return strings.Join(g.ruleLines(), "\n")
}

func (g *Grammar) Describe() *spec.Description {
	d := &spec.Description{
		Name:  g.name,
		Start: g.startVariable.String(),
	}
	for _, v := range g.variables.slice() {
		d.Variables = append(d.Variables, v.String())
	}
	for _, t := range g.terminals.slice() {
		d.Terminals = append(d.Terminals, t.String())
	}
	for _, lhs := range g.displayOrder() {
		prods, ok := g.productionSet.findByLHS(lhs)
		if !ok || len(prods) == 0 {
			continue
		}
		r := &spec.Rule{
			LHS: lhs.String(),
		}
		for _, prod := range prods {
			alt := make([]string, prod.rhsLen)
			for i, sym := range prod.rhs {
				alt[i] = sym.String()
			}
			r.Alternatives = append(r.Alternatives, alt)
		}
		d.Rules = append(d.Rules, r)
	}
	return d
}
