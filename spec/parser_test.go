package spec

import (
	"strings"
	"testing"

	verr "github.com/heliataromi/Chomsky-normal-form/error"
)

func TestParse(t *testing.T) {
	dir := func(name string, params ...*ParameterNode) *DirectiveNode {
		return &DirectiveNode{
			Name:       name,
			Parameters: params,
		}
	}

	param := func(id string) *ParameterNode {
		return &ParameterNode{
			ID: id,
		}
	}

	rule := func(lhs string, alts ...*AlternativeNode) *RuleNode {
		return &RuleNode{
			LHS: lhs,
			RHS: alts,
		}
	}

	alt := func(ids ...string) *AlternativeNode {
		elems := []*ElementNode{}
		for _, id := range ids {
			elems = append(elems, &ElementNode{
				ID: id,
			})
		}
		return &AlternativeNode{
			Elements: elems,
		}
	}

	tests := []struct {
		caption string
		src     string
		ast     *RootNode
		synErr  *SyntaxError
	}{
		{
			caption: "a rule holds alternatives separated by the vertical bar",
			src:     `S: a S b | a b;`,
			ast: &RootNode{
				Rules: []*RuleNode{
					rule("S", alt("a", "S", "b"), alt("a", "b")),
				},
			},
		},
		{
			caption: "the ε marker and an empty alternative build the same node",
			src: `
S: a | ε;
A: a | ;
`,
			ast: &RootNode{
				Rules: []*RuleNode{
					rule("S", alt("a"), alt()),
					rule("A", alt("a"), alt()),
				},
			},
		},
		{
			caption: "directives precede the rules",
			src: `
#name test;
#variables S A;
#start S;

S: A;
A: a;
`,
			ast: &RootNode{
				Directives: []*DirectiveNode{
					dir("name", param("test")),
					dir("variables", param("S"), param("A")),
					dir("start", param("S")),
				},
				Rules: []*RuleNode{
					rule("S", alt("A")),
					rule("A", alt("a")),
				},
			},
		},
		{
			caption: "a grammar must have at least one rule",
			src:     `#name test;`,
			synErr:  synErrNoRule,
		},
		{
			caption: "a rule needs a colon",
			src:     `S a;`,
			synErr:  synErrNoColon,
		},
		{
			caption: "a rule needs a semicolon",
			src:     `S: a`,
			synErr:  synErrNoSemicolon,
		},
		{
			caption: "a directive needs a name",
			src:     `#;`,
			synErr:  synErrNoDirectiveName,
		},
		{
			caption: "a directive needs a semicolon",
			src: `
#name test

S: a;
`,
			synErr: synErrDirNoSemicolon,
		},
		{
			caption: "a directive must not follow a rule",
			src: `
S: a;
#name test;
`,
			synErr: synErrDirAfterRule,
		},
		{
			caption: "ε must be the only element of an alternative",
			src:     `S: ε a;`,
			synErr:  synErrEpsilonNotAlone,
		},
		{
			caption: "ε must not follow other elements",
			src:     `S: a ε;`,
			synErr:  synErrEpsilonNotAlone,
		},
		{
			caption: "an unknown character is an invalid token",
			src:     `S: a → b;`,
			synErr:  synErrInvalidToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			ast, err := Parse(strings.NewReader(tt.src))
			if tt.synErr != nil {
				specErr, ok := err.(*verr.SpecError)
				if !ok {
					t.Fatalf("unexpected error; want: %v, got: %v", tt.synErr, err)
				}
				if specErr.Cause != tt.synErr {
					t.Fatalf("unexpected error; want: %v, got: %v", tt.synErr, specErr.Cause)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testRootNode(t, ast, tt.ast)
		})
	}
}

func TestParse_positions(t *testing.T) {
	src := `#start S;

S
    : a S b
    | ε
    ;
`
	ast, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ast.Directives) != 1 || len(ast.Rules) != 1 {
		t.Fatalf("unexpected AST shape: %#v", ast)
	}
	if pos := ast.Directives[0].Pos; pos.Row != 1 || pos.Col != 1 {
		t.Errorf("unexpected directive position; want: 1:1, got: %v:%v", pos.Row, pos.Col)
	}
	if pos := ast.Rules[0].Pos; pos.Row != 3 || pos.Col != 1 {
		t.Errorf("unexpected rule position; want: 3:1, got: %v:%v", pos.Row, pos.Col)
	}
	if pos := ast.Rules[0].RHS[0].Elements[1].Pos; pos.Row != 4 || pos.Col != 9 {
		t.Errorf("unexpected element position; want: 4:9, got: %v:%v", pos.Row, pos.Col)
	}
}

func testRootNode(t *testing.T, got, want *RootNode) {
	t.Helper()

	if len(got.Directives) != len(want.Directives) {
		t.Fatalf("unexpected directive count; want: %v, got: %v", len(want.Directives), len(got.Directives))
	}
	for i, dir := range want.Directives {
		testDirectiveNode(t, got.Directives[i], dir)
	}
	if len(got.Rules) != len(want.Rules) {
		t.Fatalf("unexpected rule count; want: %v, got: %v", len(want.Rules), len(got.Rules))
	}
	for i, rule := range want.Rules {
		testRuleNode(t, got.Rules[i], rule)
	}
}

func testDirectiveNode(t *testing.T, got, want *DirectiveNode) {
	t.Helper()

	if got.Name != want.Name {
		t.Fatalf("unexpected directive name; want: %v, got: %v", want.Name, got.Name)
	}
	if len(got.Parameters) != len(want.Parameters) {
		t.Fatalf("unexpected parameter count; want: %v, got: %v", len(want.Parameters), len(got.Parameters))
	}
	for i, param := range want.Parameters {
		if got.Parameters[i].ID != param.ID {
			t.Fatalf("unexpected parameter; want: %v, got: %v", param.ID, got.Parameters[i].ID)
		}
	}
}

func testRuleNode(t *testing.T, got, want *RuleNode) {
	t.Helper()

	if got.LHS != want.LHS {
		t.Fatalf("unexpected LHS; want: %v, got: %v", want.LHS, got.LHS)
	}
	if len(got.RHS) != len(want.RHS) {
		t.Fatalf("unexpected alternative count; want: %v, got: %v", len(want.RHS), len(got.RHS))
	}
	for i, alt := range want.RHS {
		if len(got.RHS[i].Elements) != len(alt.Elements) {
			t.Fatalf("unexpected element count; want: %v, got: %v", len(alt.Elements), len(got.RHS[i].Elements))
		}
		for j, elem := range alt.Elements {
			if got.RHS[i].Elements[j].ID != elem.ID {
				t.Fatalf("unexpected element; want: %v, got: %v", elem.ID, got.RHS[i].Elements[j].ID)
			}
		}
	}
}
