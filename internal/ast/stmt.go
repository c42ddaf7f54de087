package ast

type Stmt interface {
	Node
	isStmt()
}

func (*BlockStmt) isStmt()               {}
func (*ExprStmt) isStmt()                {}
func (*VariableDeclarationStmt) isStmt() {}
func (*VariableDefinitionStmt) isStmt()  {}

// BlockStmt is self-terminating.
// Example: "{ a = 1; { } }"
type BlockStmt struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// ExprStmt
// Example: "transfer(0x01, 5);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// VariableDeclaration is "TypeName [storage] identifier".
// Example: "uint256 amount", "string memory name"
type VariableDeclaration struct {
	Pos     Position
	EndPos  Position
	Type    TypeName
	Storage StorageLocation
	Name    Ident
}

// VariableDeclarationStmt declares without initializing.
// Example: "uint256 amount;"
type VariableDeclarationStmt struct {
	Pos    Position
	EndPos Position
	Decl   *VariableDeclaration
}

// VariableDefinitionStmt has one declaration, or several when destructuring a tuple.
// Example: "address to = address(0x01);", "(uint a, bool b) = f();"
type VariableDefinitionStmt struct {
	Pos    Position
	EndPos Position
	Decls  []*VariableDeclaration
	Tuple  bool
	Value  Expr
}
