package selectsql

import (
	"github.com/pkg/errors"
)

// Rule tags a node of the concrete parse tree with the grammar rule
// that produced it.
type Rule int

const (
	RuleSelectQuery Rule = iota
	RuleSelectList
	RuleSelectItem
	RuleFunctionCall
	RuleTable
	RuleWhereClause
	RuleCondition
	RuleValue
	RuleIdentifier
	RuleStar
	RuleNumber
	RuleString
	RuleBoolean
	RuleOperator
	RuleKeyword
)

var ruleNames = map[Rule]string{
	RuleSelectQuery:  "select_query",
	RuleSelectList:   "select_list",
	RuleSelectItem:   "select_item",
	RuleFunctionCall: "function_call",
	RuleTable:        "table",
	RuleWhereClause:  "where_clause",
	RuleCondition:    "condition",
	RuleValue:        "value",
	RuleIdentifier:   "identifier",
	RuleStar:         "star",
	RuleNumber:       "number",
	RuleString:       "string",
	RuleBoolean:      "boolean",
	RuleOperator:     "operator",
	RuleKeyword:      "keyword",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Node is a rule-tagged span of the input. Leaf nodes carry the matched
// text verbatim; interior nodes carry children in source order.
type Node struct {
	Rule     Rule
	Text     string
	Children []*Node
}

// Parser recognizes the select-query grammar over a token stream and
// produces the concrete parse tree.
type Parser struct {
	lex       *Lexer
	scanned   []*Token
	unscanned []*Token
}

// NewParser returns a new Parser over the given query text.
func NewParser(input string) *Parser {
	return &Parser{lex: NewLexer(input)}
}

// Parse recognizes exactly one select query spanning the whole input
// (an optional trailing semicolon is tolerated) and returns its
// concrete parse tree.
func (p *Parser) Parse() (*Node, error) {
	t, err := p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	if t.Type == EOF {
		return nil, ErrNoQueryFound
	}
	p.unscan()

	root, err := p.parseSelectQuery()
	if err != nil {
		return nil, err
	}

	t, err = p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	if t.Type == SEMICOLON {
		t, err = p.scanSkipWS()
		if err != nil {
			return nil, err
		}
	}
	if t.Type != EOF {
		return nil, p.unexpected(t)
	}
	return root, nil
}

// select_query := SELECT select_list FROM table (WHERE condition)?
func (p *Parser) parseSelectQuery() (*Node, error) {
	t, err := p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	if t.Type != SELECT {
		return nil, errors.Wrapf(ErrSyntax, "expected SELECT, got %s at line %d position %d", t, t.Line, t.Pos)
	}
	node := &Node{Rule: RuleSelectQuery, Children: []*Node{keywordNode(t)}}

	list, err := p.parseSelectList()
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, list)

	t, err = p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	if t.Type == EOF || t.Type == SEMICOLON {
		return nil, ErrTableNotSpecified
	}
	if t.Type != FROM {
		return nil, p.unexpected(t)
	}
	node.Children = append(node.Children, keywordNode(t))

	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, table)

	t, err = p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	if t.Type != WHERE {
		p.unscan()
		return node, nil
	}
	p.unscan()
	where, err := p.parseWhereClause()
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, where)
	return node, nil
}

// select_list := select_item (',' select_item)*
func (p *Parser) parseSelectList() (*Node, error) {
	node := &Node{Rule: RuleSelectList}
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, item)

		t, err := p.scanSkipWS()
		if err != nil {
			return nil, err
		}
		if t.Type != COMMA {
			p.unscan()
			return node, nil
		}
	}
}

// select_item := function_call | identifier | '*'
func (p *Parser) parseSelectItem() (*Node, error) {
	t, err := p.scanSkipWS()
	if err != nil {
		return nil, err
	}

	switch t.Type {
	case STAR:
		return &Node{Rule: RuleSelectItem, Children: []*Node{{Rule: RuleStar, Text: "*"}}}, nil
	case IDENT:
		next, err := p.scanSkipWS()
		if err != nil {
			return nil, err
		}
		if next.Type == LPAREN {
			call, err := p.parseFunctionCall(t)
			if err != nil {
				return nil, err
			}
			return &Node{Rule: RuleSelectItem, Children: []*Node{call}}, nil
		}
		p.unscan()
		return &Node{Rule: RuleSelectItem, Children: []*Node{identNode(t)}}, nil
	case FROM, COMMA, RPAREN, EOF, SEMICOLON:
		p.unscan()
		return nil, errors.Wrapf(ErrMissingSelectItem, "at line %d position %d", t.Line, t.Pos)
	default:
		return nil, p.unexpected(t)
	}
}

// function_call := identifier '(' select_item (',' select_item)* ')'
// The opening paren has already been consumed.
func (p *Parser) parseFunctionCall(name *Token) (*Node, error) {
	node := &Node{Rule: RuleFunctionCall, Children: []*Node{identNode(name)}}
	for {
		arg, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, arg)

		t, err := p.scanSkipWS()
		if err != nil {
			return nil, err
		}
		switch t.Type {
		case COMMA:
			continue
		case RPAREN:
			return node, nil
		default:
			return nil, p.unexpected(t)
		}
	}
}

// table := identifier | '(' select_query ')' alias?
func (p *Parser) parseTable() (*Node, error) {
	t, err := p.scanSkipWS()
	if err != nil {
		return nil, err
	}

	switch t.Type {
	case IDENT:
		return &Node{Rule: RuleTable, Children: []*Node{identNode(t)}}, nil
	case LPAREN:
		sub, err := p.parseSelectQuery()
		if err != nil {
			return nil, err
		}
		t, err = p.scanSkipWS()
		if err != nil {
			return nil, err
		}
		if t.Type != RPAREN {
			return nil, p.unexpected(t)
		}
		node := &Node{Rule: RuleTable, Children: []*Node{sub}}
		alias, err := p.parseAlias()
		if err != nil {
			return nil, err
		}
		if alias != nil {
			node.Children = append(node.Children, alias)
		}
		return node, nil
	case EOF, SEMICOLON:
		p.unscan()
		return nil, errors.Wrapf(ErrMissingTableName, "at line %d position %d", t.Line, t.Pos)
	default:
		return nil, p.unexpected(t)
	}
}

// alias := (AS)? identifier
func (p *Parser) parseAlias() (*Node, error) {
	t, err := p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	switch t.Type {
	case AS:
		t, err = p.scanSkipWS()
		if err != nil {
			return nil, err
		}
		if t.Type != IDENT {
			return nil, p.unexpected(t)
		}
		return identNode(t), nil
	case IDENT:
		return identNode(t), nil
	default:
		p.unscan()
		return nil, nil
	}
}

// where_clause := WHERE condition
func (p *Parser) parseWhereClause() (*Node, error) {
	t, err := p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	node := &Node{Rule: RuleWhereClause, Children: []*Node{keywordNode(t)}}

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, cond)
	return node, nil
}

// condition := operand comparison_op value
func (p *Parser) parseCondition() (*Node, error) {
	node := &Node{Rule: RuleCondition}

	t, err := p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	if t.Type == EOF || t.Type == SEMICOLON || t.Type == RPAREN {
		p.unscan()
		return nil, errors.Wrapf(ErrMissingLeftOperand, "at line %d position %d", t.Line, t.Pos)
	}
	if t.Type != IDENT {
		return nil, p.unexpected(t)
	}
	node.Children = append(node.Children, identNode(t))

	t, err = p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	if t.Type == EOF || t.Type == SEMICOLON || t.Type == RPAREN {
		p.unscan()
		return nil, errors.Wrapf(ErrMissingOperator, "at line %d position %d", t.Line, t.Pos)
	}
	switch t.Type {
	case EQ, NEQ, LT, LTE, GT, GTE:
		node.Children = append(node.Children, &Node{Rule: RuleOperator, Text: string(t.Raw)})
	default:
		return nil, p.unexpected(t)
	}

	t, err = p.scanSkipWS()
	if err != nil {
		return nil, err
	}
	switch t.Type {
	case NUMBER:
		node.Children = append(node.Children, valueNode(RuleNumber, t))
	case STRING:
		node.Children = append(node.Children, valueNode(RuleString, t))
	case TRUE, FALSE:
		node.Children = append(node.Children, valueNode(RuleBoolean, t))
	case EOF, SEMICOLON, RPAREN:
		p.unscan()
		return nil, errors.Wrapf(ErrMissingRightOperand, "at line %d position %d", t.Line, t.Pos)
	default:
		return nil, p.unexpected(t)
	}
	return node, nil
}

func (p *Parser) unexpected(t *Token) error {
	return errors.Wrapf(ErrSyntax, "unexpected token %s at line %d position %d", t, t.Line, t.Pos)
}

func identNode(t *Token) *Node {
	return &Node{Rule: RuleIdentifier, Text: string(t.Raw)}
}

func keywordNode(t *Token) *Node {
	return &Node{Rule: RuleKeyword, Text: string(t.Raw)}
}

func valueNode(inner Rule, t *Token) *Node {
	return &Node{Rule: RuleValue, Children: []*Node{{Rule: inner, Text: string(t.Raw)}}}
}

func (p *Parser) scan() (*Token, error) {
	var t *Token
	if len(p.unscanned) > 0 {
		t = p.unscanned[len(p.unscanned)-1]
		p.unscanned = p.unscanned[:len(p.unscanned)-1]
	} else {
		tok, err := p.lex.Scan()
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "%v", err)
		}
		t = tok
	}
	p.scanned = append(p.scanned, t)
	return t, nil
}

func (p *Parser) scanSkipWS() (*Token, error) {
	for {
		t, err := p.scan()
		if err != nil {
			return nil, err
		}
		if t.Type != WS {
			return t, nil
		}
	}
}

func (p *Parser) unscan() {
	if len(p.scanned) == 0 {
		return
	}
	t := p.scanned[len(p.scanned)-1]
	p.scanned = p.scanned[:len(p.scanned)-1]
	p.unscanned = append(p.unscanned, t)
}
