package ast

type Expr interface {
	Node
	isExpr()
}

func (*BoolLiteral) isExpr()        {}
func (*NumberLiteral) isExpr()      {}
func (*StringLiteral) isExpr()      {}
func (*IdentExpr) isExpr()          {}
func (*ElementaryTypeExpr) isExpr() {}
func (*MemberAccessExpr) isExpr()   {}
func (*FunctionCallExpr) isExpr()   {}
func (*AssignmentExpr) isExpr()     {}

// Literal is the subset of primary expressions that carry a constant value.
type Literal interface {
	Expr
	isLiteral()
}

func (*BoolLiteral) isLiteral()   {}
func (*NumberLiteral) isLiteral() {}
func (*StringLiteral) isLiteral() {}

// BoolLiteral
// Example: "true"
type BoolLiteral struct {
	Pos    Position
	EndPos Position
	Value  bool
}

type NumberBase int

const (
	Decimal NumberBase = iota
	Hex
)

// NumberUnit is an optional denomination suffix.
type NumberUnit string

const (
	UnitNone    NumberUnit = ""
	UnitWei     NumberUnit = "wei"
	UnitSzabo   NumberUnit = "szabo"
	UnitFinney  NumberUnit = "finney"
	UnitEther   NumberUnit = "ether"
	UnitSeconds NumberUnit = "seconds"
	UnitMinutes NumberUnit = "minutes"
	UnitHours   NumberUnit = "hours"
	UnitDays    NumberUnit = "days"
	UnitWeeks   NumberUnit = "weeks"
	UnitYears   NumberUnit = "years"
)

// NumberLiteral keeps its digits as written. Hex digits exclude the 0x prefix.
// Example: "250", "1 ether", "0xFB88dE099e13c3ED21F80a7a1E49f8CAEcF10df6"
type NumberLiteral struct {
	Pos    Position
	EndPos Position
	Base   NumberBase
	Digits string
	Unit   NumberUnit
}

// StringLiteral holds the decoded content.
// Example: "\"hello\\n\""
type StringLiteral struct {
	Pos    Position
	EndPos Position
	Value  string
}

// IdentExpr
// Example: "balance"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// ElementaryTypeExpr is a type name used as a value, typically a conversion callee.
// Example: "address" in "address(0x01)"
type ElementaryTypeExpr struct {
	Pos    Position
	EndPos Position
	Type   *ElementaryTypeName
}

// MemberAccessExpr associates left: "a.b.c" is ((a.b).c). Member is an
// IdentExpr or, for "a.f(x)", a FunctionCallExpr whose callee is the name.
// Example: "GeneralERC20(0x01).transfer(0x02, 250)"
type MemberAccessExpr struct {
	Pos    Position
	EndPos Position
	Base   Expr
	Member Expr
}

// FunctionCallExpr
// Example: "transfer(0x02, 250)", "f({a: 1})"
type FunctionCallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   CallArguments
}

// AssignmentExpr
// Example: "balance += 1"
type AssignmentExpr struct {
	Pos      Position
	EndPos   Position
	Left     Expr
	Operator string
	Right    Expr
}

// CallArguments is either an ExpressionList or a NameValueList.
type CallArguments interface {
	Node
	isCallArguments()
}

func (*ExpressionList) isCallArguments() {}
func (*NameValueList) isCallArguments()  {}

// ExpressionList is never nil for a call; "f()" has an empty Exprs.
type ExpressionList struct {
	Pos    Position
	EndPos Position
	Exprs  []Expr
}

// NameValueList
// Example: "{a: 1, b: true}"
type NameValueList struct {
	Pos     Position
	EndPos  Position
	Entries []*NameValue
}

type NameValue struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}
