// Package codegen lowers a parsed source unit to EVM creation and runtime
// bytecode.
package codegen

import (
	"encoding/hex"
	stderrors "errors"
	"fmt"

	"solidus/internal/ast"
	"solidus/internal/errors"
	"solidus/internal/evm"
	"solidus/internal/types"
)

// ErrGeneratorUsed is returned by a second Generate on the same Generator.
var ErrGeneratorUsed = stderrors.New("generator already used")

const (
	freeMemoryPointer = 0x40
	memoryBase        = 0x80
)

// Output is everything one generation produces
type Output struct {
	Creation []byte
	Runtime  []byte
	Layout   []StorageSlot
	Methods  []Method
}

// Bytecode returns creation code immediately followed by runtime code
func (o *Output) Bytecode() []byte {
	code := make([]byte, 0, len(o.Creation)+len(o.Runtime))
	code = append(code, o.Creation...)
	return append(code, o.Runtime...)
}

// Hex renders Bytecode as lowercase hex pairs with no separators
func (o *Output) Hex() string {
	return hex.EncodeToString(o.Bytecode())
}

// Generator is a one-shot transformation from a Root to bytecode.
type Generator struct {
	config   Config
	registry *types.TypeRegistry
	builder  *evm.Builder
	used     bool
}

// NewGenerator creates a generator. A nil registry is built from the
// Root passed to Generate.
func NewGenerator(registry *types.TypeRegistry, config Config) *Generator {
	return &Generator{
		config:   config,
		registry: registry,
	}
}

// Generate lowers root. Any construct it cannot lower aborts the whole
// generation with an *Error and no output.
func (g *Generator) Generate(root *ast.Root) (*Output, error) {
	if g.used {
		return nil, ErrGeneratorUsed
	}
	g.used = true

	if g.registry == nil {
		g.registry = types.NewTypeRegistryFromRoot(root)
	}

	g.builder = evm.NewBuilder()
	for _, contract := range root.Contracts {
		if contract.Kind != ast.ContractKindContract {
			continue
		}
		if err := g.generateContract(contract); err != nil {
			return nil, err
		}
	}
	creation, err := g.builder.Build()
	if err != nil {
		return nil, g.assemblyError(root, err)
	}

	g.builder = evm.NewBuilder()
	g.generateRuntime()
	runtime, err := g.builder.Build()
	if err != nil {
		return nil, g.assemblyError(root, err)
	}

	return &Output{
		Creation: creation,
		Runtime:  runtime,
		Layout:   StorageLayout(root),
		Methods:  MethodIdentifiers(root),
	}, nil
}

func (g *Generator) generateContract(contract *ast.Contract) error {
	// free memory pointer
	g.builder.
		AddPush([]byte{memoryBase}).
		AddPush([]byte{freeMemoryPointer}).
		AddOp(evm.MSTORE)

	for _, part := range contract.Parts {
		switch node := part.(type) {
		case *ast.Constructor:
			if !node.Payable {
				g.generateNonPayableGuard()
			}
			for _, stmt := range node.Body {
				if err := g.lowerStmt(stmt); err != nil {
					return err
				}
			}
		case *ast.StateVariableDeclaration, *ast.FunctionDefinition:
			// storage writes and function bodies belong to the runtime dispatcher
		}
	}
	return nil
}

// generateNonPayableGuard reverts when the deployment carries value.
func (g *Generator) generateNonPayableGuard() {
	ok := g.builder.NewJumpTarget()
	g.builder.
		AddOps(evm.CALLVALUE, evm.DUP1, evm.ISZERO).
		AddJumpIf(ok).
		AddPush([]byte{0x00}).
		AddOps(evm.DUP1, evm.REVERT).
		AddJumpDest(ok).
		AddOp(evm.POP)
}

// generateRuntime emits the dispatcher prologue.
// TODO: dispatch on the calldata selector using Output.Methods.
func (g *Generator) generateRuntime() {
	g.builder.
		AddPush([]byte{freeMemoryPointer}).
		AddOp(evm.MLOAD)
}

func (g *Generator) assemblyError(root *ast.Root, err error) error {
	if stderrors.Is(err, evm.ErrUnresolvedJump) {
		return newError(root, errors.UnresolvedJump(root.NodePos()))
	}
	return fmt.Errorf("assemble bytecode: %w", err)
}
