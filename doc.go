// Package selectsql parses a constrained subset of SQL SELECT
// statements into a typed abstract syntax tree.
//
// Parse is the single entry point. It accepts one SELECT statement as
// text, recognizes it against the grammar below, and returns a
// *SelectQuery that downstream tooling can inspect, or an error from
// the closed set declared in errors.go.
//
// # Grammar
//
//	select_query   := SELECT select_list FROM table (WHERE condition)?
//	select_list    := select_item (',' select_item)*
//	select_item    := function_call | identifier | '*'
//	function_call  := identifier '(' select_item (',' select_item)* ')'
//	table          := identifier | '(' select_query ')' alias?
//	condition      := operand comparison_op value
//	value          := number | string | boolean
//
// Keywords match case-insensitively; identifier and string content is
// case-sensitive and kept verbatim. Comparison operators are =, >, <,
// >=, <= and !=. Whitespace is tolerated between all tokens.
//
// # Usage
//
//	query, err := selectsql.Parse("SELECT id, name FROM users WHERE age > 18")
//	if err != nil {
//	    // errors.Is(err, selectsql.ErrSyntax), etc.
//	}
//	// Type-switch on query.Columns, query.Table, query.Where.
//
// # Error handling
//
// Parsing is strictly fail-fast: the first problem aborts the call and
// no partial AST is returned. Every failure matches exactly one of the
// Err* kinds with errors.Is; syntax rejections carry the offending
// token and its line/position in the message. The parser does not
// panic on malformed input.
//
// A parse invocation is a pure function of its input; independent
// invocations may run concurrently without coordination. Subquery and
// function-call nesting is bounded only by the call stack.
package selectsql
