package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solidus/internal/ast"
)

func TestParsePragmaOnly(t *testing.T) {
	root, parseErrors, _ := ParseSource("test.sol", `pragma solidity ^0.5.6;`)
	require.Empty(t, parseErrors, "Should have no parse errors")

	assert.Equal(t, "solidity", root.Pragma.Name.Value)
	assert.Equal(t, "^0.5.6", root.Pragma.Value)
	assert.Empty(t, root.Contracts)
}

func TestParsePragmaKeepsFreeText(t *testing.T) {
	root, parseErrors, _ := ParseSource("test.sol", `pragma solidity >=0.4.22 <0.6.0;`)
	require.Empty(t, parseErrors)
	assert.Equal(t, ">=0.4.22 <0.6.0", root.Pragma.Value)
}

func TestParseEmptyContract(t *testing.T) {
	source := `pragma solidity ^0.5.6;
contract Empty {
}`

	root, parseErrors, _ := ParseSource("test.sol", source)
	require.Empty(t, parseErrors, "Should have no parse errors")
	require.Len(t, root.Contracts, 1)

	contract := root.Contracts[0]
	assert.Equal(t, "Empty", contract.Name.Value)
	assert.Equal(t, ast.ContractKindContract, contract.Kind)
	assert.Empty(t, contract.Parts, "Empty contract should have no parts")
}

func TestParseContractKinds(t *testing.T) {
	source := `pragma solidity ^0.5.6;
library Math {}
interface GeneralERC20 {
    function transfer(address to, uint256 value) external returns (bool);
}
contract Token {}`

	root, parseErrors, _ := ParseSource("test.sol", source)
	require.Empty(t, parseErrors)
	require.Len(t, root.Contracts, 3)

	assert.Equal(t, ast.ContractKindLibrary, root.Contracts[0].Kind)
	assert.Equal(t, ast.ContractKindInterface, root.Contracts[1].Kind)
	assert.Equal(t, ast.ContractKindContract, root.Contracts[2].Kind)

	fn, ok := root.Contracts[1].Parts[0].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "transfer", fn.Name.Value)
	assert.Equal(t, ast.VisibilityExternal, fn.Visibility)
	assert.Nil(t, fn.Body, "Declaration-only function should have no body")
	require.Len(t, fn.Returns, 1)
	assert.Nil(t, fn.Returns[0].Name)
}

func TestParseConstructor(t *testing.T) {
	source := `pragma solidity ^0.5.6;
contract C {
    constructor() public {
        address to = address(0xFB88dE099e13c3ED21F80a7a1E49f8CAEcF10df6);
    }
}`

	root, parseErrors, _ := ParseSource("test.sol", source)
	require.Empty(t, parseErrors)

	ctor := root.Contracts[0].Constructor()
	require.NotNil(t, ctor)
	assert.Equal(t, ast.VisibilityPublic, ctor.Visibility)
	assert.False(t, ctor.Payable)
	assert.Empty(t, ctor.Params)
	require.Len(t, ctor.Body, 1)

	def, ok := ctor.Body[0].(*ast.VariableDefinitionStmt)
	require.True(t, ok)
	require.Len(t, def.Decls, 1)
	assert.Equal(t, "to", def.Decls[0].Name.Value)

	call, ok := def.Value.(*ast.FunctionCallExpr)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.ElementaryTypeExpr)
	require.True(t, ok)
	assert.Equal(t, ast.KindAddress, callee.Type.Kind)

	args := call.Args.(*ast.ExpressionList)
	require.Len(t, args.Exprs, 1)
	num := args.Exprs[0].(*ast.NumberLiteral)
	assert.Equal(t, ast.Hex, num.Base)
	assert.Equal(t, "FB88dE099e13c3ED21F80a7a1E49f8CAEcF10df6", num.Digits)
}

func TestParsePayableConstructor(t *testing.T) {
	part, _, err := ParseContractPart(`constructor(uint256 supply) payable public { }`)
	require.NoError(t, err)

	ctor := part.(*ast.Constructor)
	assert.True(t, ctor.Payable)
	assert.Equal(t, ast.VisibilityPublic, ctor.Visibility)
	require.Len(t, ctor.Params, 1)
	assert.Equal(t, "supply", ctor.Params[0].Name.Value)
}

func TestParseFunctionModifiers(t *testing.T) {
	part, _, err := ParseContractPart(`function balance() view public returns (uint256 amount) { }`)
	require.NoError(t, err)

	fn := part.(*ast.FunctionDefinition)
	assert.Equal(t, ast.MutabilityView, fn.Mutability)
	assert.Equal(t, ast.VisibilityPublic, fn.Visibility)
	require.NotNil(t, fn.Body)
	assert.Empty(t, fn.Body.Stmts)
	assert.Equal(t, "amount", fn.Returns[0].Name.Value)
}

func TestParseFallbackFunction(t *testing.T) {
	part, _, err := ParseContractPart(`function() external payable { }`)
	require.NoError(t, err)

	fn := part.(*ast.FunctionDefinition)
	assert.Nil(t, fn.Name)
	assert.Equal(t, ast.MutabilityPayable, fn.Mutability)
}

func TestParseDuplicateVisibilityFails(t *testing.T) {
	_, _, err := ParseContractPart(`function f() public private { }`)
	assert.Error(t, err)
}

func TestParseStateVariable(t *testing.T) {
	part, rest, err := ParseContractPart(`uint256 public constant supply = 1000 ether; uint x = 1;`)
	require.NoError(t, err)
	assert.Equal(t, " uint x = 1;", rest)

	decl := part.(*ast.StateVariableDeclaration)
	assert.Equal(t, "supply", decl.Name.Value)
	assert.Equal(t, ast.VisibilityPublic, decl.Visibility)
	assert.True(t, decl.Constant)

	num := decl.Value.(*ast.NumberLiteral)
	assert.Equal(t, "1000", num.Digits)
	assert.Equal(t, ast.UnitEther, num.Unit)
}

func TestParseStateVariableRequiresInitializer(t *testing.T) {
	_, _, err := ParseContractPart(`uint256 supply;`)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "'='", perr.Expected)
	assert.Equal(t, 14, perr.Position.Offset)
}

func TestParameterListEdgeCases(t *testing.T) {
	params, _, err := ParseParameterList(`()`)
	require.NoError(t, err)
	assert.NotNil(t, params)
	assert.Empty(t, params)

	params, _, err = ParseParameterList(`(address)`)
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Nil(t, params[0].Name)
	assert.Equal(t, ast.KindAddress, params[0].Type.(*ast.ElementaryTypeName).Kind)

	params, _, err = ParseParameterList(`( address to ,uint256 value )`)
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "to", params[0].Name.Value)
	assert.Equal(t, "value", params[1].Name.Value)
	assert.Equal(t, 256, params[1].Type.(*ast.ElementaryTypeName).Width)
}

func TestParameterStorageLocation(t *testing.T) {
	params, _, err := ParseParameterList(`(string memory name, bytes calldata data, uint[] storage)`)
	require.NoError(t, err)
	require.Len(t, params, 3)

	assert.Equal(t, ast.StorageMemory, params[0].Storage)
	assert.Equal(t, ast.StorageCalldata, params[1].Storage)
	assert.Equal(t, ast.StorageStorage, params[2].Storage)
	assert.Nil(t, params[2].Name)
}

func TestParseTrailingInputFails(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.sol", `pragma solidity ^0.5.6; contract C {} garbage`)
	require.Len(t, parseErrors, 1)

	assert.Equal(t, 38, parseErrors[0].Position.Offset)
	assert.Contains(t, parseErrors[0].Expected, "end of input")
	assert.Equal(t, "'garbage'", parseErrors[0].Found)
}

func TestParseMissingPragma(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.sol", `contract C {}`)
	require.Len(t, parseErrors, 1)
	assert.Equal(t, "'pragma'", parseErrors[0].Expected)
	assert.Equal(t, 0, parseErrors[0].Position.Offset)
}

func TestParseReportsFurthestFailure(t *testing.T) {
	source := `pragma solidity ^0.5.6;
contract C {
    constructor() public {
        address to = ;
    }
}`

	_, parseErrors, _ := ParseSource("test.sol", source)
	require.Len(t, parseErrors, 1)

	perr := parseErrors[0]
	assert.Equal(t, 4, perr.Position.Line)
	assert.Equal(t, 22, perr.Position.Column)
	assert.Contains(t, perr.Expected, "expression")
	assert.Equal(t, "';'", perr.Found)
}

func TestParseUnterminatedContract(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.sol", `pragma solidity ^0.5.6; contract C {`)
	require.Len(t, parseErrors, 1)
	assert.Equal(t, "end of input", parseErrors[0].Found)
}

func TestParseIllegalCharacter(t *testing.T) {
	_, parseErrors, scanErrors := ParseSource("test.sol", `pragma solidity ^0.5.6; contract C { @ }`)
	assert.Len(t, scanErrors, 1)
	require.Len(t, parseErrors, 1)
	assert.Equal(t, "'@'", parseErrors[0].Found)
}

func TestParseRoundTripsThroughPrinter(t *testing.T) {
	source := `pragma solidity ^0.5.6;
interface GeneralERC20 {
  function transfer(address to, uint256 value) external returns (bool);
}
contract C {
  mapping(address => uint256) balances = init();
  constructor() public {
    GeneralERC20(0x01).transfer(0x02, 250);
  }
}
`

	root, parseErrors, _ := ParseSource("test.sol", source)
	require.Empty(t, parseErrors)
	assert.Equal(t, source, root.String())
}
