package codegen

import (
	"solidus/internal/ast"
)

func (g *Generator) lowerStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		for _, inner := range s.Stmts {
			if err := g.lowerStmt(inner); err != nil {
				return err
			}
		}
		return nil

	case *ast.ExprStmt:
		height := g.builder.Height()
		if err := g.lowerExpr(s.Expr); err != nil {
			return err
		}
		if g.config.DrainExpressionStatements {
			g.builder.Drain(height)
		}
		return nil

	case *ast.VariableDefinitionStmt:
		// the value is computed but no slot receives it
		return g.lowerExpr(s.Value)

	case *ast.VariableDeclarationStmt:
		return nil

	default:
		return nil
	}
}

func (g *Generator) lowerExpr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.MemberAccessExpr:
		if err := g.lowerExpr(e.Base); err != nil {
			return err
		}
		return g.lowerExpr(e.Member)

	case *ast.FunctionCallExpr:
		return g.lowerCall(e)

	case *ast.AssignmentExpr, *ast.IdentExpr, *ast.ElementaryTypeExpr,
		*ast.BoolLiteral, *ast.NumberLiteral, *ast.StringLiteral:
		return nil

	default:
		return nil
	}
}
