package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	synErrInvalidToken    = newSyntaxError("invalid token")
	synErrNoRule          = newSyntaxError("a grammar must have at least one rule")
	synErrNoRuleName      = newSyntaxError("a rule name is missing")
	synErrNoColon         = newSyntaxError("the colon must precede alternatives")
	synErrNoSemicolon     = newSyntaxError("the semicolon is missing at the last of a rule")
	synErrNoDirectiveName = newSyntaxError("a directive needs a name")
	synErrDirNoSemicolon  = newSyntaxError("the semicolon is missing at the last of a directive")
	synErrDirAfterRule    = newSyntaxError("all directives must precede the first rule")
	synErrEpsilonNotAlone = newSyntaxError("ε must be the only element of an alternative")
)
