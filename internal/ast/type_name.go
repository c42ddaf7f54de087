package ast

type TypeName interface {
	Node
	isTypeName()
}

func (*ElementaryTypeName) isTypeName()  {}
func (*UserDefinedTypeName) isTypeName() {}
func (*MappingTypeName) isTypeName()     {}
func (*ArrayTypeName) isTypeName()       {}

// ElementaryKind enumerates the built-in value types.
type ElementaryKind int

const (
	KindAddress ElementaryKind = iota
	KindBool
	KindString
	KindInt
	KindUInt
	KindByte
	KindBytes
	KindFixed
	KindUfixed
)

// ElementaryTypeName is a built-in type. Width is in bits for Int/UInt and
// in bytes for Byte; zero means the keyword was written without a width.
// Example: "uint8", "address payable", "bytes32", "bool"
type ElementaryTypeName struct {
	Pos     Position
	EndPos  Position
	Kind    ElementaryKind
	Width   int
	Payable bool
}

// UserDefinedTypeName is a dotted path with at least one segment.
// Example: "GeneralERC20", "Lib.Point"
type UserDefinedTypeName struct {
	Pos    Position
	EndPos Position
	Path   []Ident
}

// MappingTypeName has an elementary key.
// Example: "mapping(address => uint256)"
type MappingTypeName struct {
	Pos    Position
	EndPos Position
	Key    *ElementaryTypeName
	Value  TypeName
}

// ArrayTypeName has a nil Length for dynamic arrays.
// Example: "uint256[]", "address[2]"
type ArrayTypeName struct {
	Pos    Position
	EndPos Position
	Elem   TypeName
	Length Expr
}
