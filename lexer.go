package selectsql

import (
	"fmt"
	"strings"
)

// Lexer represents a lexical scanner over a single query string.
type Lexer struct {
	input string
	off   int // byte offset of the next unread character
	line  int
	pos   int
}

// NewLexer returns a new instance of Lexer.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		pos:   1,
	}
}

// Scan returns the next token. At the end of the input it returns an
// EOF token, never an error.
func (l *Lexer) Scan() (*Token, error) {
	for _, scan := range []func() (*Token, error){
		l.scanEOF,
		l.scanWS,
		l.scanString,
		l.scanNumber,
		l.scanSymbol,
		l.scanWord,
	} {
		tok, err := scan()
		if err != nil {
			return nil, err
		}
		if tok != nil {
			return tok, nil
		}
	}
	return l.emit(ILLEGAL, 1), nil
}

func (l *Lexer) scanEOF() (*Token, error) {
	if l.off < len(l.input) {
		return nil, nil
	}
	return &Token{Type: EOF, Line: l.line, Pos: l.pos}, nil
}

func (l *Lexer) scanWS() (*Token, error) {
	n := 0
	for isWS(l.peekAt(n)) {
		n++
	}
	if n == 0 {
		return nil, nil
	}
	return l.emit(WS, n), nil
}

// scans a single-quoted string literal. No escape sequences: the
// literal ends at the first closing quote.
func (l *Lexer) scanString() (*Token, error) {
	if l.peekAt(0) != '\'' {
		return nil, nil
	}
	end := strings.IndexByte(l.input[l.off+1:], '\'')
	if end < 0 {
		return nil, fmt.Errorf("mismatched quote at line %d position %d", l.line, l.pos)
	}
	return l.emit(STRING, end+2), nil
}

// scans an integer literal with an optional leading minus sign.
func (l *Lexer) scanNumber() (*Token, error) {
	n := 0
	if l.peekAt(0) == '-' {
		n = 1
	}
	digits := 0
	for isDigit(l.peekAt(n + digits)) {
		digits++
	}
	if digits == 0 {
		return nil, nil
	}
	return l.emit(NUMBER, n+digits), nil
}

func (l *Lexer) scanSymbol() (*Token, error) {
	// multi-byte symbols are matched before their prefixes
	for _, sym := range symbols {
		if strings.HasPrefix(l.input[l.off:], sym.text) {
			return l.emit(sym.tok, len(sym.text)), nil
		}
	}
	return nil, nil
}

// scans an identifier or keyword. Keywords match case-insensitively;
// identifier text is preserved verbatim.
func (l *Lexer) scanWord() (*Token, error) {
	ch := l.peekAt(0)
	if !isLetter(ch) && ch != '_' {
		return nil, nil
	}
	n := 1
	for isIdent(l.peekAt(n)) {
		n++
	}
	word := l.input[l.off : l.off+n]
	if tok, ok := keywords[strings.ToUpper(word)]; ok {
		return l.emit(tok, n), nil
	}
	return l.emit(IDENT, n), nil
}

// emit produces a token for the next n bytes of input and consumes them.
func (l *Lexer) emit(typ TokenType, n int) *Token {
	t := &Token{
		Type: typ,
		Raw:  []byte(l.input[l.off : l.off+n]),
		Line: l.line,
		Pos:  l.pos,
	}
	l.advance(n)
	return t
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.input[l.off] == '\n' {
			l.line++
			l.pos = 1
		} else {
			l.pos++
		}
		l.off++
	}
}

// peekAt returns the byte n positions ahead, or byte(0) past the end.
func (l *Lexer) peekAt(n int) byte {
	if l.off+n >= len(l.input) {
		return 0
	}
	return l.input[l.off+n]
}

func isWS(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdent(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

var (
	symbols = []struct {
		text string
		tok  TokenType
	}{
		{">=", GTE},
		{"<=", LTE},
		{"!=", NEQ},
		{"=", EQ},
		{">", GT},
		{"<", LT},
		{"*", STAR},
		{",", COMMA},
		{"(", LPAREN},
		{")", RPAREN},
		{";", SEMICOLON},
	}

	keywords = map[string]TokenType{
		"SELECT": SELECT,
		"FROM":   FROM,
		"WHERE":  WHERE,
		"AS":     AS,
		"TRUE":   TRUE,
		"FALSE":  FALSE,
	}
)
