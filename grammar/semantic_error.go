package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

// ErrInvalidRuleName is returned when a rule LHS is not an upper-case letter
// optionally followed by digits.
var ErrInvalidRuleName = newSemanticError("invalid rule name")

var (
	semErrStartNoRule     = newSemanticError("the start variable needs at least one rule")
	semErrDuplicateName   = newSemanticError("duplicate names are not allowed between variables and terminals")
	semErrDuplicateDir    = newSemanticError("a directive must not be duplicated")
	semErrDirInvalidName  = newSemanticError("invalid directive name")
	semErrDirInvalidParam = newSemanticError("invalid parameter")
)
