package spec

import (
	"io"

	verr "github.com/heliataromi/Chomsky-normal-form/error"
)

type RootNode struct {
	Directives []*DirectiveNode
	Rules      []*RuleNode
}

type DirectiveNode struct {
	Name       string
	Parameters []*ParameterNode
	Pos        Position
}

type ParameterNode struct {
	ID  string
	Pos Position
}

type RuleNode struct {
	LHS string
	RHS []*AlternativeNode
	Pos Position
}

// An AlternativeNode with no elements denotes ε. The parser also folds an
// explicit ε marker into the empty form, so both spellings build the same
// node.
type AlternativeNode struct {
	Elements []*ElementNode
}

type ElementNode struct {
	ID  string
	Pos Position
}

func raiseSyntaxError(row, col int, synErr *SyntaxError) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   row,
		Col:   col,
	})
}

func Parse(src io.Reader) (*RootNode, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			retErr = err.(error)
			return
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	var dirs []*DirectiveNode
	for {
		dir := p.parseDirective()
		if dir == nil {
			break
		}
		dirs = append(dirs, dir)
	}

	var rules []*RuleNode
	for {
		rule := p.parseRule()
		if rule == nil {
			break
		}
		rules = append(rules, rule)
	}
	if len(rules) == 0 {
		raiseSyntaxError(0, 0, synErrNoRule)
	}

	return &RootNode{
		Directives: dirs,
		Rules:      rules,
	}
}

func (p *parser) parseDirective() *DirectiveNode {
	if !p.consume(tokenKindDirectiveMarker) {
		return nil
	}
	dirPos := p.lastTok.pos

	if !p.consume(tokenKindSymbol) {
		raiseSyntaxError(dirPos.Row, dirPos.Col, synErrNoDirectiveName)
	}
	name := p.lastTok.text

	var params []*ParameterNode
	for {
		if !p.consume(tokenKindSymbol) {
			break
		}
		params = append(params, &ParameterNode{
			ID:  p.lastTok.text,
			Pos: p.lastTok.pos,
		})
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(dirPos.Row, dirPos.Col, synErrDirNoSemicolon)
	}

	return &DirectiveNode{
		Name:       name,
		Parameters: params,
		Pos:        dirPos,
	}
}

func (p *parser) parseRule() *RuleNode {
	if p.consume(tokenKindEOF) {
		return nil
	}
	if p.consume(tokenKindDirectiveMarker) {
		raiseSyntaxError(p.lastTok.pos.Row, p.lastTok.pos.Col, synErrDirAfterRule)
	}
	if !p.consume(tokenKindSymbol) {
		tok := p.peekedTok
		raiseSyntaxError(tok.pos.Row, tok.pos.Col, synErrNoRuleName)
	}
	lhs := p.lastTok.text
	lhsPos := p.lastTok.pos

	if !p.consume(tokenKindColon) {
		raiseSyntaxError(lhsPos.Row, lhsPos.Col, synErrNoColon)
	}

	alt := p.parseAlternative()
	rhs := []*AlternativeNode{alt}
	for {
		if !p.consume(tokenKindOr) {
			break
		}
		alt := p.parseAlternative()
		rhs = append(rhs, alt)
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(lhsPos.Row, lhsPos.Col, synErrNoSemicolon)
	}

	return &RuleNode{
		LHS: lhs,
		RHS: rhs,
		Pos: lhsPos,
	}
}

func (p *parser) parseAlternative() *AlternativeNode {
	if p.consume(tokenKindEpsilon) {
		ePos := p.lastTok.pos
		if p.consume(tokenKindSymbol) || p.consume(tokenKindEpsilon) {
			raiseSyntaxError(ePos.Row, ePos.Col, synErrEpsilonNotAlone)
		}
		return &AlternativeNode{}
	}

	elems := []*ElementNode{}
	for {
		if !p.consume(tokenKindSymbol) {
			break
		}
		elems = append(elems, &ElementNode{
			ID:  p.lastTok.text,
			Pos: p.lastTok.pos,
		})
	}
	if len(elems) > 0 && p.consume(tokenKindEpsilon) {
		pos := p.lastTok.pos
		raiseSyntaxError(pos.Row, pos.Col, synErrEpsilonNotAlone)
	}

	return &AlternativeNode{
		Elements: elems,
	}
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	var err error
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		tok, err = p.lex.next()
		if err != nil {
			panic(err)
		}
	}
	p.lastTok = tok
	if tok.kind == tokenKindInvalid {
		raiseSyntaxError(tok.pos.Row, tok.pos.Col, synErrInvalidToken)
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}
