package selectsql

import "errors"

// Every error returned by Parse matches exactly one of these kinds
// with errors.Is, so callers can branch on the kind rather than on
// message text. ErrSyntax wraps the recognizer's position diagnostic;
// the remaining kinds report structural gaps found while building the
// AST from the parse tree.
var (
	ErrSyntax                     = errors.New("syntax error")
	ErrNoQueryFound               = errors.New("no query found")
	ErrTableNotSpecified          = errors.New("table not specified")
	ErrUnexpectedNodeInSelectList = errors.New("unexpected node in select list")
	ErrUnexpectedNodeInSelectItem = errors.New("unexpected node in select item")
	ErrMissingSelectItem          = errors.New("missing select item")
	ErrMissingTableName           = errors.New("missing table name")
	ErrUnexpectedNodeInTable      = errors.New("unexpected node in table")
	ErrNoConditionInWhereClause   = errors.New("no condition found in WHERE clause")
	ErrMissingLeftOperand         = errors.New("missing left operand in condition")
	ErrMissingOperator            = errors.New("missing operator in condition")
	ErrMissingRightOperand        = errors.New("missing right operand in condition")
	ErrInvalidNumber              = errors.New("invalid number")
	ErrUnexpectedNodeInValue      = errors.New("unexpected node in value")
	ErrMissingValueNode           = errors.New("expected inner node for value")
	ErrFunctionNameMissing        = errors.New("function name missing")
)
