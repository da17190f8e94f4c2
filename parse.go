package selectsql

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse recognizes one SELECT statement and builds its typed AST.
// On failure the returned error matches exactly one of the Err* kinds
// declared in errors.go. No partial AST is ever returned alongside an
// error.
func Parse(input string) (*SelectQuery, error) {
	root, err := NewParser(input).Parse()
	if err != nil {
		return nil, err
	}
	return buildQuery(root)
}

// buildQuery walks one select_query node. It is called recursively for
// nested subqueries.
func buildQuery(n *Node) (*SelectQuery, error) {
	if n == nil || n.Rule != RuleSelectQuery {
		return nil, ErrNoQueryFound
	}

	var (
		columns []SelectItem
		table   Table
		where   *Condition
	)

	for _, child := range n.Children {
		switch child.Rule {
		case RuleSelectList:
			cols, err := buildSelectList(child)
			if err != nil {
				return nil, err
			}
			columns = cols
		case RuleTable:
			t, err := buildTable(child)
			if err != nil {
				return nil, err
			}
			table = t
		case RuleWhereClause:
			cond, err := buildWhereClause(child)
			if err != nil {
				return nil, err
			}
			where = cond
		default:
			// keyword spans carry no structure
		}
	}

	if table == nil {
		return nil, ErrTableNotSpecified
	}
	return &SelectQuery{Columns: columns, Table: table, Where: where}, nil
}

func buildSelectList(n *Node) ([]SelectItem, error) {
	items := make([]SelectItem, 0, len(n.Children))
	for _, child := range n.Children {
		if child.Rule != RuleSelectItem {
			return nil, ErrUnexpectedNodeInSelectList
		}
		item, err := buildSelectItem(child)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildSelectItem(n *Node) (SelectItem, error) {
	if len(n.Children) == 0 {
		return nil, ErrMissingSelectItem
	}
	inner := n.Children[0]
	switch inner.Rule {
	case RuleIdentifier:
		return Column{Name: inner.Text}, nil
	case RuleStar:
		return Column{Name: "*"}, nil
	case RuleFunctionCall:
		return buildFunction(inner)
	default:
		return nil, ErrUnexpectedNodeInSelectItem
	}
}

func buildFunction(n *Node) (SelectItem, error) {
	if len(n.Children) == 0 || n.Children[0].Rule != RuleIdentifier {
		return nil, ErrFunctionNameMissing
	}
	fn := Function{Name: n.Children[0].Text}
	for _, arg := range n.Children[1:] {
		item, err := buildSelectItem(arg)
		if err != nil {
			return nil, err
		}
		fn.Arguments = append(fn.Arguments, item)
	}
	return fn, nil
}

func buildTable(n *Node) (Table, error) {
	if len(n.Children) == 0 {
		return nil, ErrMissingTableName
	}
	inner := n.Children[0]
	switch inner.Rule {
	case RuleIdentifier:
		return SimpleTable{Name: inner.Text}, nil
	case RuleSelectQuery:
		sub, err := buildQuery(inner)
		if err != nil {
			return nil, err
		}
		return Subquery{Select: sub}, nil
	default:
		return nil, ErrUnexpectedNodeInTable
	}
}

func buildWhereClause(n *Node) (*Condition, error) {
	for _, child := range n.Children {
		switch child.Rule {
		case RuleKeyword:
			// skip the WHERE keyword span
		case RuleCondition:
			return buildCondition(child)
		}
	}
	return nil, ErrNoConditionInWhereClause
}

// buildCondition reads the three positional children: left operand,
// operator, right operand.
func buildCondition(n *Node) (*Condition, error) {
	if len(n.Children) < 1 {
		return nil, ErrMissingLeftOperand
	}
	if len(n.Children) < 2 {
		return nil, ErrMissingOperator
	}
	if len(n.Children) < 3 {
		return nil, ErrMissingRightOperand
	}
	right, err := buildValue(n.Children[2])
	if err != nil {
		return nil, err
	}
	return &Condition{
		Left:     n.Children[0].Text,
		Operator: n.Children[1].Text,
		Right:    right,
	}, nil
}

func buildValue(n *Node) (Value, error) {
	if len(n.Children) == 0 {
		return nil, ErrMissingValueNode
	}
	inner := n.Children[0]
	switch inner.Rule {
	case RuleNumber:
		num, err := strconv.ParseInt(inner.Text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidNumber, "%q", inner.Text)
		}
		return NumberValue(num), nil
	case RuleString:
		// strip exactly the two quote delimiters, no escape handling
		return StringValue(inner.Text[1 : len(inner.Text)-1]), nil
	case RuleBoolean:
		return BooleanValue(strings.EqualFold(inner.Text, "true")), nil
	default:
		return nil, ErrUnexpectedNodeInValue
	}
}
