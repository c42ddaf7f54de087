package codegen

import (
	"solidus/internal/abi"
	"solidus/internal/ast"
	"solidus/internal/errors"
)

// lowerCall handles the three call shapes: an interface handle built from
// an address, a type conversion, and an ABI call by selector.
func (g *Generator) lowerCall(call *ast.FunctionCallExpr) error {
	switch callee := call.Callee.(type) {
	case *ast.IdentExpr:
		name := callee.Name.Value
		args, err := positionalArguments(call, name)
		if err != nil {
			return err
		}
		if lit, ok := addressHandle(args); ok && g.registry.IsInterface(name) {
			return g.emitAddressHandle(lit)
		}
		return g.lowerABICall(name, args)

	case *ast.ElementaryTypeExpr:
		return g.lowerConversion(call, callee.Type)

	default:
		return newError(call.Callee, errors.UnsupportedCallee(call.Callee.String(), call.Callee.NodePos()))
	}
}

// lowerABICall pushes the selector of the inferred signature, then each argument.
func (g *Generator) lowerABICall(name string, args []ast.Expr) error {
	argTypes := make([]string, 0, len(args))
	for _, arg := range args {
		typ, err := g.argumentType(arg)
		if err != nil {
			return err
		}
		argTypes = append(argTypes, typ)
	}

	selector := abi.SelectorOf(abi.Signature(name, argTypes))
	g.builder.AddPushN(abi.SelectorSize, selector.Bytes())

	for _, arg := range args {
		if err := g.encodeArgument(arg); err != nil {
			return err
		}
	}
	return nil
}

// lowerConversion handles "T(x)" for an elementary T.
func (g *Generator) lowerConversion(call *ast.FunctionCallExpr, typ *ast.ElementaryTypeName) error {
	args, err := positionalArguments(call, typ.String())
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return newError(call, errors.UnsupportedConversion(typ.String(), call.NodePos()))
	}
	if lit, ok := addressHandle(args); ok && typ.Kind == ast.KindAddress {
		return g.emitAddressHandle(lit)
	}
	return g.encodeArgument(args[0])
}

func positionalArguments(call *ast.FunctionCallExpr, callee string) ([]ast.Expr, error) {
	switch args := call.Args.(type) {
	case *ast.ExpressionList:
		return args.Exprs, nil
	default:
		return nil, newError(call, errors.NamedArguments(callee, call.NodePos()))
	}
}

// addressHandle reports whether args is a single hex literal
func addressHandle(args []ast.Expr) (*ast.NumberLiteral, bool) {
	if len(args) != 1 {
		return nil, false
	}
	lit, ok := args[0].(*ast.NumberLiteral)
	if !ok || lit.Base != ast.Hex {
		return nil, false
	}
	return lit, true
}
