package ast

type ContractPart interface {
	Node
	isContractPart()
}

func (*Constructor) isContractPart()              {}
func (*StateVariableDeclaration) isContractPart() {}
func (*FunctionDefinition) isContractPart()       {}
func (*UsingForDeclaration) isContractPart()      {}
func (*StructDefinition) isContractPart()         {}
func (*ModifierDefinition) isContractPart()       {}
func (*ModifierInvocation) isContractPart()       {}
func (*EventDefinition) isContractPart()          {}
func (*EnumDefinition) isContractPart()           {}

// Constructor runs once at deployment.
// Example: "constructor() public { address to = address(0x01); }"
type Constructor struct {
	Pos        Position
	EndPos     Position
	Params     []*Parameter
	Visibility Visibility
	Payable    bool
	Body       []Stmt
}

// StateVariableDeclaration always carries an initializer.
// Example: "uint256 supply = 1000;"
type StateVariableDeclaration struct {
	Pos        Position
	EndPos     Position
	Type       TypeName
	Visibility Visibility
	Constant   bool
	Name       Ident
	Value      Expr
}

// FunctionDefinition is anonymous (Name == nil) for the fallback function.
// Body is nil for declaration-only signatures ending in ';'.
// Example: "function transfer(address to, uint256 value) external returns (bool);"
type FunctionDefinition struct {
	Pos        Position
	EndPos     Position
	Name       *Ident
	Params     []*Parameter
	Visibility Visibility
	Mutability StateMutability
	Returns    []*Parameter
	Body       *BlockStmt
}

// Parameter is "TypeName [storageLocation] [identifier]".
// Example: "address to", "uint256", "string memory name"
type Parameter struct {
	Pos     Position
	EndPos  Position
	Type    TypeName
	Storage StorageLocation
	Name    *Ident
}

// The declarations below have AST shapes but no parser yet.

type UsingForDeclaration struct {
	Pos     Position
	EndPos  Position
	Library Ident
	Target  TypeName // nil means "*"
}

type StructDefinition struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Members []*VariableDeclaration
}

type ModifierDefinition struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*Parameter
	Body   *BlockStmt
}

type ModifierInvocation struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   []Expr
}

type EventDefinition struct {
	Pos       Position
	EndPos    Position
	Name      Ident
	Params    []*Parameter
	Anonymous bool
}

type EnumDefinition struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Members []Ident
}
