package selectsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanAll scans the whole input, dropping whitespace tokens.
func scanAll(t *testing.T, input string) []*Token {
	t.Helper()
	l := NewLexer(input)
	var tokens []*Token
	for {
		tok, err := l.Scan()
		require.NoError(t, err)
		if tok.Type == EOF {
			return tokens
		}
		if tok.Type == WS {
			continue
		}
		tokens = append(tokens, tok)
	}
}

func TestLexerScan(t *testing.T) {
	tokens := scanAll(t, "SELECT name FROM users WHERE age >= 25")

	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{SELECT, IDENT, FROM, IDENT, WHERE, IDENT, GTE, NUMBER}, types)
	assert.Equal(t, "name", string(tokens[1].Raw))
	assert.Equal(t, "25", string(tokens[7].Raw))
}

func TestLexerSymbolOrder(t *testing.T) {
	// >= must lex as GTE, not as GT followed by EQ
	tokens := scanAll(t, "age >= 25")
	require.Len(t, tokens, 3)
	assert.Equal(t, GTE, tokens[1].Type)

	tokens = scanAll(t, "age != 25")
	require.Len(t, tokens, 3)
	assert.Equal(t, NEQ, tokens[1].Type)
}

func TestLexerKeywordsCaseInsensitive(t *testing.T) {
	for _, input := range []string{"select", "SELECT", "SeLeCt"} {
		tokens := scanAll(t, input)
		require.Len(t, tokens, 1)
		assert.Equal(t, SELECT, tokens[0].Type, input)
	}

	tokens := scanAll(t, "tRuE FaLsE")
	require.Len(t, tokens, 2)
	assert.Equal(t, TRUE, tokens[0].Type)
	assert.Equal(t, FALSE, tokens[1].Type)
}

func TestLexerKeywordPrefixIsIdent(t *testing.T) {
	// words that merely start with a keyword are identifiers
	for _, input := range []string{"selector", "fromage", "wheres", "truest"} {
		tokens := scanAll(t, input)
		require.Len(t, tokens, 1)
		assert.Equal(t, IDENT, tokens[0].Type, input)
		assert.Equal(t, input, string(tokens[0].Raw), input)
	}
}

func TestLexerIdentVerbatim(t *testing.T) {
	tokens := scanAll(t, "User_Name _private col2")
	require.Len(t, tokens, 3)
	assert.Equal(t, "User_Name", string(tokens[0].Raw))
	assert.Equal(t, "_private", string(tokens[1].Raw))
	assert.Equal(t, "col2", string(tokens[2].Raw))
}

func TestLexerString(t *testing.T) {
	tokens := scanAll(t, "'admin'")
	require.Len(t, tokens, 1)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "'admin'", string(tokens[0].Raw))
}

func TestLexerMismatchedQuote(t *testing.T) {
	l := NewLexer("'admin")
	_, err := l.Scan()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatched quote")
}

func TestLexerNumber(t *testing.T) {
	tokens := scanAll(t, "100 -42")
	require.Len(t, tokens, 2)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, "-42", string(tokens[1].Raw))
}

func TestLexerPositions(t *testing.T) {
	l := NewLexer("SELECT name\nFROM users")
	var tokens []*Token
	for {
		tok, err := l.Scan()
		require.NoError(t, err)
		if tok.Type == EOF {
			break
		}
		if tok.Type == WS {
			continue
		}
		tokens = append(tokens, tok)
	}
	require.Len(t, tokens, 4)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Pos)
	assert.Equal(t, 1, tokens[1].Line)
	assert.Equal(t, 8, tokens[1].Pos)
	assert.Equal(t, 2, tokens[2].Line)
	assert.Equal(t, 1, tokens[2].Pos)
	assert.Equal(t, 2, tokens[3].Line)
	assert.Equal(t, 6, tokens[3].Pos)
}
