package ast

// Root is one compilation unit: a pragma followed by contract declarations.
// Example: "pragma solidity ^0.5.6; contract C { ... }"
type Root struct {
	Pos       Position
	EndPos    Position
	Pragma    *PragmaDirective
	Contracts []*Contract
}

// PragmaDirective is carried through but never enforced.
// Example: "pragma solidity ^0.5.6;"
type PragmaDirective struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  string // raw text up to the semicolon, e.g. "^0.5.6"
}

// ContractKind distinguishes the three declaration keywords.
type ContractKind int

const (
	ContractKindContract ContractKind = iota
	ContractKindLibrary
	ContractKindInterface
)

func (k ContractKind) String() string {
	switch k {
	case ContractKindLibrary:
		return "library"
	case ContractKindInterface:
		return "interface"
	default:
		return "contract"
	}
}

// Contract is a contract, library or interface declaration.
// Example: "interface GeneralERC20 { function transfer(address to, uint256 value) external; }"
type Contract struct {
	Pos    Position
	EndPos Position
	Kind   ContractKind
	Name   Ident
	Parts  []ContractPart
}

// Constructor returns the contract's constructor, or nil.
func (c *Contract) Constructor() *Constructor {
	for _, part := range c.Parts {
		if ctor, ok := part.(*Constructor); ok {
			return ctor
		}
	}
	return nil
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like variable names, type names, etc.
// Example: "GeneralERC20", "transfer", "to"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Visibility of a function, constructor or state variable.
type Visibility int

const (
	VisibilityNone Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityInternal
	VisibilityExternal
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityPrivate:
		return "private"
	case VisibilityInternal:
		return "internal"
	case VisibilityExternal:
		return "external"
	default:
		return ""
	}
}

// StateMutability of a function or constructor.
type StateMutability int

const (
	MutabilityNone StateMutability = iota
	MutabilityPure
	MutabilityView
	MutabilityPayable
	MutabilityConstant
)

func (m StateMutability) String() string {
	switch m {
	case MutabilityPure:
		return "pure"
	case MutabilityView:
		return "view"
	case MutabilityPayable:
		return "payable"
	case MutabilityConstant:
		return "constant"
	default:
		return ""
	}
}

// StorageLocation annotates where reference-typed data lives.
type StorageLocation int

const (
	StorageNone StorageLocation = iota
	StorageMemory
	StorageStorage
	StorageCalldata
)

func (s StorageLocation) String() string {
	switch s {
	case StorageMemory:
		return "memory"
	case StorageStorage:
		return "storage"
	case StorageCalldata:
		return "calldata"
	default:
		return ""
	}
}
