package selectsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// childRules returns the rule tags of a node's children in order.
func childRules(n *Node) []Rule {
	rules := make([]Rule, 0, len(n.Children))
	for _, child := range n.Children {
		rules = append(rules, child.Rule)
	}
	return rules
}

func TestRecognizerTreeShape(t *testing.T) {
	root, err := NewParser("SELECT name, age FROM users").Parse()
	require.NoError(t, err)
	require.Equal(t, RuleSelectQuery, root.Rule)
	assert.Equal(t, []Rule{RuleKeyword, RuleSelectList, RuleKeyword, RuleTable}, childRules(root))

	list := root.Children[1]
	require.Len(t, list.Children, 2)
	for _, item := range list.Children {
		assert.Equal(t, RuleSelectItem, item.Rule)
	}
	require.Len(t, list.Children[0].Children, 1)
	assert.Equal(t, RuleIdentifier, list.Children[0].Children[0].Rule)
	assert.Equal(t, "name", list.Children[0].Children[0].Text)

	table := root.Children[3]
	require.Len(t, table.Children, 1)
	assert.Equal(t, RuleIdentifier, table.Children[0].Rule)
	assert.Equal(t, "users", table.Children[0].Text)
}

func TestRecognizerWhereTree(t *testing.T) {
	root, err := NewParser("SELECT id FROM products WHERE price > 100").Parse()
	require.NoError(t, err)
	require.Len(t, root.Children, 5)

	where := root.Children[4]
	require.Equal(t, RuleWhereClause, where.Rule)
	require.Equal(t, []Rule{RuleKeyword, RuleCondition}, childRules(where))
	assert.Equal(t, "WHERE", where.Children[0].Text)

	cond := where.Children[1]
	require.Equal(t, []Rule{RuleIdentifier, RuleOperator, RuleValue}, childRules(cond))
	assert.Equal(t, "price", cond.Children[0].Text)
	assert.Equal(t, ">", cond.Children[1].Text)

	value := cond.Children[2]
	require.Len(t, value.Children, 1)
	assert.Equal(t, RuleNumber, value.Children[0].Rule)
	assert.Equal(t, "100", value.Children[0].Text)
}

func TestRecognizerFunctionCallTree(t *testing.T) {
	root, err := NewParser("SELECT COUNT(id) FROM orders").Parse()
	require.NoError(t, err)

	item := root.Children[1].Children[0]
	require.Len(t, item.Children, 1)
	call := item.Children[0]
	require.Equal(t, RuleFunctionCall, call.Rule)
	require.Equal(t, []Rule{RuleIdentifier, RuleSelectItem}, childRules(call))
	assert.Equal(t, "COUNT", call.Children[0].Text)
	assert.Equal(t, RuleIdentifier, call.Children[1].Children[0].Rule)
	assert.Equal(t, "id", call.Children[1].Children[0].Text)
}

func TestRecognizerSubqueryAlias(t *testing.T) {
	for _, input := range []string{
		"SELECT name FROM (SELECT name FROM users) AS sub",
		"SELECT name FROM (SELECT name FROM users) sub",
		"SELECT name FROM (SELECT name FROM users)",
	} {
		root, err := NewParser(input).Parse()
		require.NoError(t, err, input)

		table := root.Children[3]
		require.Equal(t, RuleTable, table.Rule, input)
		require.NotEmpty(t, table.Children, input)
		assert.Equal(t, RuleSelectQuery, table.Children[0].Rule, input)
	}
}

func TestRecognizerWhitespaceTolerance(t *testing.T) {
	root, err := NewParser("  \t select\n\tname ,\n age   from\nusers  ").Parse()
	require.NoError(t, err)
	assert.Equal(t, RuleSelectQuery, root.Rule)
	assert.Len(t, root.Children[1].Children, 2)
}

func TestRecognizerTrailingInput(t *testing.T) {
	_, err := NewParser("SELECT name FROM users garbage").Parse()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)

	// a single trailing semicolon is tolerated
	_, err = NewParser("SELECT name FROM users;").Parse()
	assert.NoError(t, err)
}

func TestRecognizerEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := NewParser(input).Parse()
		assert.ErrorIs(t, err, ErrNoQueryFound, "%q", input)
	}
}

func TestRecognizerSyntaxDiagnostic(t *testing.T) {
	_, err := NewParser("SELECT name age FROM users").Parse()
	require.ErrorIs(t, err, ErrSyntax)
	// the diagnostic carries the offending token and its position
	assert.Contains(t, err.Error(), "age")
	assert.Contains(t, err.Error(), "line 1")
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "select_query", RuleSelectQuery.String())
	assert.Equal(t, "where_clause", RuleWhereClause.String())
	assert.Equal(t, "unknown", Rule(999).String())
}
