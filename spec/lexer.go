package spec

import (
	"fmt"
	"io"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindSymbol          = tokenKind("symbol")
	tokenKindEpsilon         = tokenKind("ε")
	tokenKindColon           = tokenKind(":")
	tokenKindOr              = tokenKind("|")
	tokenKindSemicolon       = tokenKind(";")
	tokenKindDirectiveMarker = tokenKind("#")
	tokenKindEOF             = tokenKind("eof")
	tokenKindInvalid         = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newIDToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindSymbol,
		text: text,
		pos:  pos,
	}
}

func newEOFToken() *token {
	return &token{
		kind: tokenKindEOF,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

// lexSpec describes the tokens of the grammar-definition language. It is
// compiled once at package initialization because the token set is fixed.
var lexSpec = &mlspec.LexSpec{
	Name: "cnf",
	Entries: []*mlspec.LexEntry{
		{
			Kind:    mlspec.LexKindName("white_space"),
			Pattern: mlspec.LexPattern(`[\u{0009}\u{000A}\u{000D}\u{0020}]+`),
		},
		{
			Kind:    mlspec.LexKindName("line_comment"),
			Pattern: mlspec.LexPattern(`//[^\u{000A}]*`),
		},
		{
			Kind:    mlspec.LexKindName("symbol"),
			Pattern: mlspec.LexPattern(`[0-9A-Za-z_]+`),
		},
		{
			Kind:    mlspec.LexKindName("epsilon"),
			Pattern: mlspec.LexPattern(`\u{03B5}`),
		},
		{
			Kind:    mlspec.LexKindName("colon"),
			Pattern: mlspec.LexPattern(`:`),
		},
		{
			Kind:    mlspec.LexKindName("or"),
			Pattern: mlspec.LexPattern(`\|`),
		},
		{
			Kind:    mlspec.LexKindName("semicolon"),
			Pattern: mlspec.LexPattern(`;`),
		},
		{
			Kind:    mlspec.LexKindName("directive_marker"),
			Pattern: mlspec.LexPattern(`#`),
		},
	},
}

var compiledLexSpec *mlspec.CompiledLexSpec

func init() {
	var err error
	compiledLexSpec, err = compileLexSpec(lexSpec)
	if err != nil {
		panic(err)
	}
}

func compileLexSpec(s *mlspec.LexSpec) (*mlspec.CompiledLexSpec, error) {
	compiled, err, cErrs := mlcompiler.Compile(s, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			writeCompileError(&b, cErrs[0])
			for _, cerr := range cErrs[1:] {
				fmt.Fprintf(&b, "\n")
				writeCompileError(&b, cerr)
			}
			return nil, fmt.Errorf("%s", b.String())
		}
		return nil, err
	}
	return compiled, nil
}

func writeCompileError(w io.Writer, cErr *mlcompiler.CompileError) {
	fmt.Fprintf(w, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(w, ": %v", cErr.Detail)
	}
}

type lexer struct {
	d *mldriver.Lexer
}

func newLexer(src io.Reader) (*lexer, error) {
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(compiledLexSpec), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		d: d,
	}, nil
}

func (l *lexer) next() (*token, error) {
	var tok *mldriver.Token
	for {
		var err error
		tok, err = l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.Invalid {
			return newInvalidToken(string(tok.Lexeme), newPosition(tok.Row+1, tok.Col+1)), nil
		}
		if tok.EOF {
			return newEOFToken(), nil
		}
		switch kindName(tok) {
		case "white_space":
			continue
		case "line_comment":
			continue
		}

		break
	}

	switch kindName(tok) {
	case "symbol":
		return newIDToken(string(tok.Lexeme), newPosition(tok.Row+1, tok.Col+1)), nil
	case "epsilon":
		return newSymbolToken(tokenKindEpsilon, newPosition(tok.Row+1, tok.Col+1)), nil
	case "colon":
		return newSymbolToken(tokenKindColon, newPosition(tok.Row+1, tok.Col+1)), nil
	case "or":
		return newSymbolToken(tokenKindOr, newPosition(tok.Row+1, tok.Col+1)), nil
	case "semicolon":
		return newSymbolToken(tokenKindSemicolon, newPosition(tok.Row+1, tok.Col+1)), nil
	case "directive_marker":
		return newSymbolToken(tokenKindDirectiveMarker, newPosition(tok.Row+1, tok.Col+1)), nil
	default:
		return newInvalidToken(string(tok.Lexeme), newPosition(tok.Row+1, tok.Col+1)), nil
	}
}

func kindName(tok *mldriver.Token) string {
	return compiledLexSpec.KindNames[tok.KindID].String()
}
