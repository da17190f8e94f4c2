package selectsql

// SelectQuery is the typed result of parsing one SELECT statement.
// It is constructed once per successful Parse call and never mutated
// afterward.
type SelectQuery struct {
	// Columns holds the projected items in source order, never empty.
	Columns []SelectItem `json:"columns"`
	// Table is the FROM target.
	Table Table `json:"table"`
	// Where is present iff a WHERE clause appeared in the source.
	Where *Condition `json:"where,omitempty"`
}

// SelectItem is a single projected column, wildcard, or function call
// in the select list.
type SelectItem interface {
	selectItem()
}

// Column references a column by name. The wildcard is represented as
// the literal column name "*".
type Column struct {
	Name string `json:"column"`
}

func (Column) selectItem() {}

// Function is a function call. Arguments may themselves be function
// calls, to arbitrary nesting depth.
type Function struct {
	Name      string       `json:"function"`
	Arguments []SelectItem `json:"arguments"`
}

func (Function) selectItem() {}

// Table is the FROM target: a named table or a parenthesized subquery.
type Table interface {
	table()
}

// SimpleTable names a table directly.
type SimpleTable struct {
	Name string `json:"table"`
}

func (SimpleTable) table() {}

// Subquery wraps a nested query appearing in place of a table name.
// The inner query is owned exclusively by the enclosing value.
type Subquery struct {
	Select *SelectQuery `json:"subquery"`
}

func (Subquery) table() {}

// Condition is the single left-operator-right comparison carried by a
// WHERE clause.
type Condition struct {
	Left     string `json:"left"`
	Operator string `json:"operator"`
	Right    Value  `json:"right"`
}

// Value is a literal on the right-hand side of a condition.
type Value interface {
	value()
}

// NumberValue is a signed 64-bit integer literal.
type NumberValue int64

func (NumberValue) value() {}

// StringValue is a string literal with its quote delimiters stripped.
// No escape sequences are interpreted.
type StringValue string

func (StringValue) value() {}

// BooleanValue is a boolean literal, matched case-insensitively.
type BooleanValue bool

func (BooleanValue) value() {}
