package grammar

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

type productionID [32]byte

func (id productionID) String() string {
	return hex.EncodeToString(id[:])
}

func genProductionID(lhs symbol, rhs []symbol) productionID {
	// Symbols are variable-length texts, so a separator keeps the ID
	// unambiguous. A symbol never contains the null byte.
	seq := []byte(lhs)
	seq = append(seq, 0x00)
	for _, sym := range rhs {
		seq = append(seq, []byte(sym)...)
		seq = append(seq, 0x00)
	}
	return productionID(sha256.Sum256(seq))
}

type production struct {
	id     productionID
	lhs    symbol
	rhs    []symbol
	rhsLen int
}

func newProduction(lhs symbol, rhs []symbol) (*production, error) {
	if lhs == "" {
		return nil, fmt.Errorf("a production needs a LHS; RHS: %v", rhs)
	}
	if len(rhs) == 0 {
		return nil, fmt.Errorf("a RHS must have at least one symbol; denote the empty string by %v; LHS: %v", symbolNameEpsilon, lhs)
	}
	for _, sym := range rhs {
		if sym == "" {
			return nil, fmt.Errorf("a symbol of a RHS must be a non-empty text; LHS: %v, RHS: %v", lhs, rhs)
		}
		if sym.isEpsilon() && len(rhs) > 1 {
			return nil, fmt.Errorf("%v must be the only symbol of a RHS; LHS: %v, RHS: %v", symbolNameEpsilon, lhs, rhs)
		}
	}

	return &production{
		id:     genProductionID(lhs, rhs),
		lhs:    lhs,
		rhs:    rhs,
		rhsLen: len(rhs),
	}, nil
}

func (p *production) equals(q *production) bool {
	return q.id == p.id
}

func (p *production) isEpsilon() bool {
	return p.rhsLen == 1 && p.rhs[0].isEpsilon()
}

func (p *production) rhsText() string {
	var b strings.Builder
	for _, sym := range p.rhs {
		fmt.Fprintf(&b, "%v", sym)
	}
	return b.String()
}

type productionSet struct {
	lhs2Prods map[symbol][]*production
	id2Prod   map[productionID]*production

	// lhsList remembers the order the LHSs first gained a production.
	// An LHS stays listed even when its last production goes away.
	lhsList []symbol
}

func newProductionSet() *productionSet {
	return &productionSet{
		lhs2Prods: map[symbol][]*production{},
		id2Prod:   map[productionID]*production{},
	}
}

func (ps *productionSet) append(prod *production) bool {
	if _, ok := ps.id2Prod[prod.id]; ok {
		return false
	}

	if prods, ok := ps.lhs2Prods[prod.lhs]; ok {
		ps.lhs2Prods[prod.lhs] = append(prods, prod)
	} else {
		ps.lhs2Prods[prod.lhs] = []*production{prod}
		ps.lhsList = append(ps.lhsList, prod.lhs)
	}
	ps.id2Prod[prod.id] = prod

	return true
}

func (ps *productionSet) remove(prod *production) bool {
	if _, ok := ps.id2Prod[prod.id]; !ok {
		return false
	}

	delete(ps.id2Prod, prod.id)
	prods := ps.lhs2Prods[prod.lhs]
	for i, p := range prods {
		if !p.equals(prod) {
			continue
		}
		ps.lhs2Prods[prod.lhs] = append(prods[:i], prods[i+1:]...)
		break
	}

	return true
}

// replace substitutes newProd for oldProd at oldProd's position. When
// newProd already exists under the same LHS, the two collapse and only the
// removal happens.
func (ps *productionSet) replace(oldProd, newProd *production) bool {
	if _, ok := ps.id2Prod[oldProd.id]; !ok {
		return false
	}
	if _, ok := ps.id2Prod[newProd.id]; ok {
		return ps.remove(oldProd)
	}

	prods := ps.lhs2Prods[oldProd.lhs]
	for i, p := range prods {
		if !p.equals(oldProd) {
			continue
		}
		prods[i] = newProd
		break
	}
	delete(ps.id2Prod, oldProd.id)
	ps.id2Prod[newProd.id] = newProd

	return true
}

func (ps *productionSet) findByID(id productionID) (*production, bool) {
	prod, ok := ps.id2Prod[id]
	return prod, ok
}

func (ps *productionSet) findByLHS(lhs symbol) ([]*production, bool) {
	prods, ok := ps.lhs2Prods[lhs]
	return prods, ok
}

func (ps *productionSet) lhsSymbols() []symbol {
	return ps.lhsList
}

func (ps *productionSet) len() int {
	return len(ps.id2Prod)
}
