package semantic

import (
	"solidus/grammar"
	"solidus/internal/ast"
	"solidus/internal/errors"
	"solidus/internal/types"
)

// TargetVersion is the language version the generated code corresponds to.
var TargetVersion = grammar.Semver{Major: 0, Minor: 5, Patch: 6}

// Analyzer runs the structural checks that must hold before code generation
// and builds the registry of contract-level declarations.
type Analyzer struct {
	errors   []errors.CompilerError
	unit     *SymbolTable // contract, library and interface names
	registry *types.TypeRegistry
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		errors: make([]errors.CompilerError, 0),
	}
}

// Analyze checks root and returns the registry the code generator consults.
// Errors and warnings are available from GetErrors afterwards.
func (a *Analyzer) Analyze(root *ast.Root) *types.TypeRegistry {
	a.errors = make([]errors.CompilerError, 0)
	a.unit = NewSymbolTable(nil)
	a.registry = types.NewTypeRegistry()

	if root == nil {
		return a.registry
	}
	a.analyzePragma(root.Pragma)

	for _, contract := range root.Contracts {
		name := contract.Name.Value
		if existing := a.unit.LookupLocal(name); existing != nil {
			a.addCompilerError(errors.DuplicateContract(name, contract.Name.Pos, existing.Position))
			continue
		}
		a.unit.Define(name, SymbolContract, contract, contract.Name.Pos)
		a.registry.Register(contract)
	}

	for _, contract := range root.Contracts {
		a.analyzeContract(contract)
	}

	return a.registry
}

// GetErrors returns all errors and warnings from the last Analyze
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

// HasErrors reports whether the last Analyze found anything other than warnings
func (a *Analyzer) HasErrors() bool {
	for _, err := range a.errors {
		if err.Level == errors.Error {
			return true
		}
	}
	return false
}

func (a *Analyzer) analyzeContract(contract *ast.Contract) {
	scope := NewSymbolTable(a.unit)
	var constructor *ast.Constructor

	for _, part := range contract.Parts {
		switch node := part.(type) {
		case *ast.Constructor:
			if contract.Kind == ast.ContractKindInterface {
				a.addCompilerError(errors.InterfaceConstructor(contract.Name.Value, node.Pos))
			} else if constructor != nil {
				a.addCompilerError(errors.MultipleConstructors(contract.Name.Value, node.Pos))
			} else {
				constructor = node
			}
			a.declareLocals(a.functionScope(scope, node.Params), node.Body)
			a.analyzeBody(node.Body)

		case *ast.StateVariableDeclaration:
			name := node.Name.Value
			if existing := scope.LookupLocal(name); existing != nil && existing.Kind == SymbolStateVariable {
				a.addCompilerError(errors.DuplicateStateVariable(name, node.Name.Pos, existing.Position))
				continue
			}
			scope.Define(name, SymbolStateVariable, node, node.Name.Pos)

		case *ast.FunctionDefinition:
			if contract.Kind == ast.ContractKindInterface && node.Body != nil {
				a.addCompilerError(errors.InterfaceFunctionBody(contract.Name.Value, functionName(node), functionPos(node)))
			}
			if node.Name != nil && scope.LookupLocal(node.Name.Value) == nil {
				scope.Define(node.Name.Value, SymbolFunction, node, node.Name.Pos)
			}
			fnScope := a.functionScope(scope, node.Params, node.Returns)
			if node.Body != nil {
				a.declareLocals(fnScope, node.Body.Stmts)
				a.analyzeBody(node.Body.Stmts)
			}
		}
	}
}

// functionScope opens the scope of a constructor or function body and
// declares its named parameters in it.
func (a *Analyzer) functionScope(contract *SymbolTable, lists ...[]*ast.Parameter) *SymbolTable {
	scope := NewSymbolTable(contract)
	for _, params := range lists {
		for _, param := range params {
			if param.Name != nil {
				a.declare(scope, param.Name.Value, SymbolParameter, param, param.Name.Pos)
			}
		}
	}
	return scope
}

// declareLocals declares local variables; every block opens a nested scope.
func (a *Analyzer) declareLocals(scope *SymbolTable, stmts []ast.Stmt) {
	for _, stmt := range stmts {
		switch node := stmt.(type) {
		case *ast.BlockStmt:
			a.declareLocals(NewSymbolTable(scope), node.Stmts)
		case *ast.VariableDeclarationStmt:
			a.declare(scope, node.Decl.Name.Value, SymbolVariable, node.Decl, node.Decl.Name.Pos)
		case *ast.VariableDefinitionStmt:
			for _, decl := range node.Decls {
				a.declare(scope, decl.Name.Value, SymbolVariable, decl, decl.Name.Pos)
			}
		}
	}
}

func (a *Analyzer) declare(scope *SymbolTable, name string, kind SymbolKind, node ast.Node, pos ast.Position) {
	if existing := scope.LookupLocal(name); existing != nil {
		a.addCompilerError(errors.DuplicateDeclaration(name, pos, existing.Position))
		return
	}
	scope.Define(name, kind, node, pos)
}

// analyzePragma checks a "pragma solidity" constraint against TargetVersion.
// Other pragmas are carried through unchecked.
func (a *Analyzer) analyzePragma(pragma *ast.PragmaDirective) {
	if pragma == nil || pragma.Name.Value != "solidity" {
		return
	}
	pos := pragma.Name.EndPos
	pos.Column++

	constraint, err := grammar.ParseConstraint(pragma.Value)
	if err != nil {
		a.addCompilerError(errors.InvalidPragma(pragma.Value, err.Error(), pos))
		return
	}
	if !constraint.Admits(TargetVersion) {
		a.addCompilerError(errors.PragmaVersion(constraint.String(), TargetVersion.String(), pos))
	}
}

// analyzeBody warns about definitions whose value has nowhere to go
func (a *Analyzer) analyzeBody(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		ast.Inspect(stmt, func(n ast.Node) bool {
			def, ok := n.(*ast.VariableDefinitionStmt)
			if !ok {
				return true
			}
			for _, decl := range def.Decls {
				a.addCompilerError(errors.ValueNotStored(decl.Name.Value, decl.Name.Pos))
			}
			return false
		})
	}
}

func (a *Analyzer) addCompilerError(err errors.CompilerError) {
	a.errors = append(a.errors, err)
}

func functionName(fn *ast.FunctionDefinition) string {
	if fn.Name == nil {
		return "function"
	}
	return fn.Name.Value
}

func functionPos(fn *ast.FunctionDefinition) ast.Position {
	if fn.Name == nil {
		return fn.Pos
	}
	return fn.Name.Pos
}
