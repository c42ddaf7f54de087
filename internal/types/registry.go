package types

import (
	"sort"

	"solidus/internal/ast"
	"solidus/internal/builtins"
)

// DeclaredType is a contract, library or interface name visible in a source unit
type DeclaredType struct {
	Name     string
	Kind     ast.ContractKind
	Contract *ast.Contract
}

// TypeRegistry records the contract-level declarations of one compilation
// unit. The code generator consults it for the interface-handle shortcut.
type TypeRegistry struct {
	declared map[string]*DeclaredType
}

// NewTypeRegistry creates an empty registry
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		declared: make(map[string]*DeclaredType),
	}
}

// NewTypeRegistryFromRoot registers every declaration in root. Later
// declarations of a duplicate name are ignored.
func NewTypeRegistryFromRoot(root *ast.Root) *TypeRegistry {
	tr := NewTypeRegistry()
	if root == nil {
		return tr
	}
	for _, contract := range root.Contracts {
		tr.Register(contract)
	}
	return tr
}

// Register adds a declaration. It reports false if the name is already taken.
func (tr *TypeRegistry) Register(contract *ast.Contract) bool {
	name := contract.Name.Value
	if _, exists := tr.declared[name]; exists {
		return false
	}
	tr.declared[name] = &DeclaredType{
		Name:     name,
		Kind:     contract.Kind,
		Contract: contract,
	}
	return true
}

// AddInterface registers a bare interface name with no declaration behind it
func (tr *TypeRegistry) AddInterface(name string) {
	if _, exists := tr.declared[name]; exists {
		return
	}
	tr.declared[name] = &DeclaredType{Name: name, Kind: ast.ContractKindInterface}
}

// Lookup returns the declaration registered under name
func (tr *TypeRegistry) Lookup(name string) (*DeclaredType, bool) {
	declared, ok := tr.declared[name]
	return declared, ok
}

// IsInterface checks if name was declared with the interface keyword
func (tr *TypeRegistry) IsInterface(name string) bool {
	declared, ok := tr.declared[name]
	return ok && declared.Kind == ast.ContractKindInterface
}

// IsValidType checks if a type name is elementary or declared in this unit
func (tr *TypeRegistry) IsValidType(typeName string) bool {
	if builtins.IsElementaryTypeName(typeName) {
		return true
	}
	_, ok := tr.declared[typeName]
	return ok
}

// Interfaces returns the registered interface names in sorted order
func (tr *TypeRegistry) Interfaces() []string {
	var names []string
	for name, declared := range tr.declared {
		if declared.Kind == ast.ContractKindInterface {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Names returns every registered name in sorted order
func (tr *TypeRegistry) Names() []string {
	names := make([]string, 0, len(tr.declared))
	for name := range tr.declared {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
