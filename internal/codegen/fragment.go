package codegen

import (
	"solidus/internal/ast"
	"solidus/internal/evm"
	"solidus/internal/types"
)

// LowerExpression lowers one expression the way a constructor statement
// would be lowered, without prologue or guard. A nil registry knows no
// interfaces.
func LowerExpression(expr ast.Expr, registry *types.TypeRegistry, config Config) ([]byte, error) {
	if registry == nil {
		registry = types.NewTypeRegistry()
	}
	g := &Generator{
		config:   config,
		registry: registry,
		builder:  evm.NewBuilder(),
		used:     true,
	}
	if err := g.lowerExpr(expr); err != nil {
		return nil, err
	}
	return g.builder.Build()
}
