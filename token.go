package selectsql

// Token represents a lexical token.
type Token struct {
	// Type categorizes the token.
	Type TokenType
	// Raw is the original bytes for this token.
	Raw []byte
	// Line is the 1-indexed line on which this token appears in the query.
	Line int
	// Pos is the 1-indexed position where this token appears on its line.
	Pos int
}

func (t *Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return string(t.Raw)
}

// TokenType categorizes a lexical token.
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF
	WS

	// Symbols
	STAR      // *
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;
	EQ        // =
	NEQ       // !=
	LT        // <
	LTE       // <=
	GT        // >
	GTE       // >=

	// Keywords (matched case-insensitively)
	SELECT
	FROM
	WHERE
	AS

	// Literals
	NUMBER // 42, -7
	STRING // 'foo'
	TRUE   // true|TRUE
	FALSE  // false|FALSE

	// Identifiers
	IDENT // table_name, column_name, function name
)

var tokenNames = map[TokenType]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	WS:        "WS",
	STAR:      "*",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",
	EQ:        "=",
	NEQ:       "!=",
	LT:        "<",
	LTE:       "<=",
	GT:        ">",
	GTE:       ">=",
	SELECT:    "SELECT",
	FROM:      "FROM",
	WHERE:     "WHERE",
	AS:        "AS",
	NUMBER:    "NUMBER",
	STRING:    "STRING",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IDENT:     "IDENT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
