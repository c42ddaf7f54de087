package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(v string) Ident { return Ident{Value: v} }

func identPtr(v string) *Ident { return &Ident{Value: v} }

func TestContractString(t *testing.T) {
	contract := &Contract{
		Kind: ContractKindInterface,
		Name: ident("GeneralERC20"),
		Parts: []ContractPart{
			&FunctionDefinition{
				Name: identPtr("transfer"),
				Params: []*Parameter{
					{Type: &ElementaryTypeName{Kind: KindAddress}, Name: identPtr("to")},
					{Type: &ElementaryTypeName{Kind: KindUInt, Width: 256}, Name: identPtr("value")},
				},
				Visibility: VisibilityExternal,
			},
		},
	}

	expected := "interface GeneralERC20 {\n  function transfer(address to, uint256 value) external;\n}"
	assert.Equal(t, expected, contract.String())
}

func TestConstructorString(t *testing.T) {
	ctor := &Constructor{
		Visibility: VisibilityPublic,
		Payable:    true,
		Body: []Stmt{
			&ExprStmt{Expr: &IdentExpr{Name: ident("x")}},
		},
	}

	assert.Equal(t, "constructor() public payable {\n  x;\n}", ctor.String())
}

func TestTypeNameString(t *testing.T) {
	tests := []struct {
		name     string
		typ      TypeName
		expected string
	}{
		{"bare uint", &ElementaryTypeName{Kind: KindUInt}, "uint"},
		{"int8", &ElementaryTypeName{Kind: KindInt, Width: 8}, "int8"},
		{"byte", &ElementaryTypeName{Kind: KindByte}, "byte"},
		{"bytes32", &ElementaryTypeName{Kind: KindByte, Width: 32}, "bytes32"},
		{"address payable", &ElementaryTypeName{Kind: KindAddress, Payable: true}, "address payable"},
		{"dotted", &UserDefinedTypeName{Path: []Ident{ident("Lib"), ident("Point")}}, "Lib.Point"},
		{
			"mapping",
			&MappingTypeName{
				Key:   &ElementaryTypeName{Kind: KindAddress},
				Value: &ElementaryTypeName{Kind: KindUInt, Width: 256},
			},
			"mapping(address => uint256)",
		},
		{
			"fixed array of dynamic arrays",
			&ArrayTypeName{
				Elem:   &ArrayTypeName{Elem: &ElementaryTypeName{Kind: KindBool}},
				Length: &NumberLiteral{Base: Decimal, Digits: "2"},
			},
			"bool[][2]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestExpressionString(t *testing.T) {
	call := &MemberAccessExpr{
		Base: &FunctionCallExpr{
			Callee: &IdentExpr{Name: ident("GeneralERC20")},
			Args:   &ExpressionList{Exprs: []Expr{&NumberLiteral{Base: Hex, Digits: "01"}}},
		},
		Member: &FunctionCallExpr{
			Callee: &IdentExpr{Name: ident("transfer")},
			Args: &ExpressionList{Exprs: []Expr{
				&NumberLiteral{Base: Decimal, Digits: "1", Unit: UnitEther},
				&BoolLiteral{Value: true},
			}},
		},
	}
	assert.Equal(t, "GeneralERC20(0x01).transfer(1 ether, true)", call.String())

	named := &FunctionCallExpr{
		Callee: &IdentExpr{Name: ident("f")},
		Args: &NameValueList{Entries: []*NameValue{
			{Name: ident("a"), Value: &StringLiteral{Value: "x\"y"}},
		}},
	}
	assert.Equal(t, `f({a: "x\"y"})`, named.String())

	assign := &AssignmentExpr{Left: &IdentExpr{Name: ident("a")}, Operator: "+=", Right: &NumberLiteral{Digits: "2"}}
	assert.Equal(t, "a += 2", assign.String())
}

func TestVariableDefinitionString(t *testing.T) {
	def := &VariableDefinitionStmt{
		Decls: []*VariableDeclaration{
			{Type: &ElementaryTypeName{Kind: KindUInt}, Name: ident("a")},
			{Type: &ElementaryTypeName{Kind: KindString}, Storage: StorageMemory, Name: ident("b")},
		},
		Tuple: true,
		Value: &FunctionCallExpr{Callee: &IdentExpr{Name: ident("f")}, Args: &ExpressionList{}},
	}

	assert.Equal(t, "(uint a, string memory b) = f();", def.String())
}

func TestInspectVisitsCallArguments(t *testing.T) {
	root := &Root{
		Pragma: &PragmaDirective{Name: ident("solidity"), Value: "^0.5.6"},
		Contracts: []*Contract{{
			Name: ident("C"),
			Parts: []ContractPart{&Constructor{Body: []Stmt{
				&ExprStmt{Expr: &FunctionCallExpr{
					Callee: &IdentExpr{Name: ident("f")},
					Args:   &ExpressionList{Exprs: []Expr{&BoolLiteral{Value: true}}},
				}},
			}}},
		}},
	}

	var types []NodeType
	Inspect(root, func(n Node) bool {
		types = append(types, n.NodeType())
		return true
	})

	assert.Contains(t, types, BOOL_LITERAL)
	assert.Contains(t, types, FUNCTION_CALL_EXPR)
	assert.Equal(t, ROOT, types[0])
}
