package diag

import (
	"fmt"
)

// Code identifies the diagnostic category; ranges are reserved per phase.
type Code uint16

const (
	// UnknownCode is the fallback for uncategorized diagnostics.
	UnknownCode Code = 0

	// Lexical.
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntactic.
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectAssign     Code = 2003
	SynExpectExpr       Code = 2004
	SynUnclosedParen    Code = 2005
	SynUnclosedBrace    Code = 2006

	// Semantic.
	SemUnresolvedName  Code = 3001
	SemRedeclaredName  Code = 3002
	SemTypeMismatch    Code = 3003
	SemNotCallable     Code = 3004
	SemWrongArgCount   Code = 3005
	SemDivisionByZero  Code = 3006
	SemNotInScopeOfUse Code = 3007
)

// ID returns the stable textual identifier, e.g. "MIR1001".
func (c Code) ID() string {
	return fmt.Sprintf("MIR%04d", uint16(c))
}
