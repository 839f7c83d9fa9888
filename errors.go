package bigcalc

import (
	"math/big"
	"strconv"
)

// User-visible messages for each statement error kind. The interactive
// shell prints these; Error strings carry more detail for Go callers.
const (
	msgInvalidExpression = "Invalid expression"
	msgUnknownVariable   = "Unknown variable"
	msgInvalidIdentifier = "Invalid identifier"
	msgDivisionByZero    = "Division by zero"
)

// StatementError is implemented by every error that processing a single
// statement can produce. Message returns the fixed one-line text shown to
// an interactive user.
type StatementError interface {
	error
	Message() string
}

// ExprError indicates a malformed expression: unbalanced parentheses, a
// disallowed operator sequence, or a postfix reduction with too few
// operands.
type ExprError struct {
	// Expr is the offending expression, in whichever form (infix or
	// postfix) the failure was detected.
	Expr string
	// Reason describes what is wrong with it.
	Reason string
}

func (err *ExprError) Error() string {
	return "invalid expression " + strconv.Quote(err.Expr) + ": " + err.Reason
}

func (err *ExprError) Message() string {
	return msgInvalidExpression
}

// NameError indicates a reference to a variable with no stored value. The
// evaluator also reports a structurally short result stack as a NameError,
// because dropped unknown identifiers are what produce one; in that case
// Name is empty.
type NameError struct {
	// Name is the missing variable name, if known.
	Name string
}

func (err *NameError) Error() string {
	if err.Name == "" {
		return "unknown variable in expression"
	}
	return "unknown variable " + strconv.Quote(err.Name)
}

func (err *NameError) Message() string {
	return msgUnknownVariable
}

// IdentError indicates an assignment with a malformed variable name or a
// malformed right-hand side.
type IdentError struct {
	// Ident is the text that is not a valid identifier.
	Ident string
}

func (err *IdentError) Error() string {
	return "invalid identifier " + strconv.Quote(err.Ident)
}

func (err *IdentError) Message() string {
	return msgInvalidIdentifier
}

// DivisionError indicates a division with a zero divisor.
type DivisionError struct {
	// X is the dividend.
	X *big.Int
}

func (err *DivisionError) Error() string {
	if err.X == nil {
		return "division by zero"
	}
	return "division of " + err.X.String() + " by zero"
}

func (err *DivisionError) Message() string {
	return msgDivisionByZero
}

var (
	_ StatementError = (*ExprError)(nil)
	_ StatementError = (*NameError)(nil)
	_ StatementError = (*IdentError)(nil)
	_ StatementError = (*DivisionError)(nil)
)
