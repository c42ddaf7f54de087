package ast

// Inspect traverses the tree rooted at node in depth-first order. If f
// returns false the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Root:
		if n.Pragma != nil {
			Inspect(n.Pragma, f)
		}
		for _, c := range n.Contracts {
			Inspect(c, f)
		}
	case *PragmaDirective:
		Inspect(&n.Name, f)
	case *Contract:
		Inspect(&n.Name, f)
		for _, p := range n.Parts {
			Inspect(p, f)
		}
	case *Constructor:
		inspectParams(n.Params, f)
		inspectStmts(n.Body, f)
	case *StateVariableDeclaration:
		Inspect(n.Type, f)
		Inspect(&n.Name, f)
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *FunctionDefinition:
		if n.Name != nil {
			Inspect(n.Name, f)
		}
		inspectParams(n.Params, f)
		inspectParams(n.Returns, f)
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *Parameter:
		Inspect(n.Type, f)
		if n.Name != nil {
			Inspect(n.Name, f)
		}
	case *UsingForDeclaration:
		Inspect(&n.Library, f)
		if n.Target != nil {
			Inspect(n.Target, f)
		}
	case *StructDefinition:
		Inspect(&n.Name, f)
		for _, m := range n.Members {
			Inspect(m, f)
		}
	case *ModifierDefinition:
		Inspect(&n.Name, f)
		inspectParams(n.Params, f)
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *ModifierInvocation:
		Inspect(&n.Name, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *EventDefinition:
		Inspect(&n.Name, f)
		inspectParams(n.Params, f)
	case *EnumDefinition:
		Inspect(&n.Name, f)
		for i := range n.Members {
			Inspect(&n.Members[i], f)
		}
	case *UserDefinedTypeName:
		for i := range n.Path {
			Inspect(&n.Path[i], f)
		}
	case *MappingTypeName:
		Inspect(n.Key, f)
		Inspect(n.Value, f)
	case *ArrayTypeName:
		Inspect(n.Elem, f)
		if n.Length != nil {
			Inspect(n.Length, f)
		}
	case *IdentExpr:
		Inspect(&n.Name, f)
	case *ElementaryTypeExpr:
		Inspect(n.Type, f)
	case *MemberAccessExpr:
		Inspect(n.Base, f)
		Inspect(n.Member, f)
	case *FunctionCallExpr:
		Inspect(n.Callee, f)
		Inspect(n.Args, f)
	case *AssignmentExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *ExpressionList:
		for _, e := range n.Exprs {
			Inspect(e, f)
		}
	case *NameValueList:
		for _, e := range n.Entries {
			Inspect(e, f)
		}
	case *NameValue:
		Inspect(&n.Name, f)
		Inspect(n.Value, f)
	case *BlockStmt:
		inspectStmts(n.Stmts, f)
	case *ExprStmt:
		Inspect(n.Expr, f)
	case *VariableDeclaration:
		Inspect(n.Type, f)
		Inspect(&n.Name, f)
	case *VariableDeclarationStmt:
		Inspect(n.Decl, f)
	case *VariableDefinitionStmt:
		for _, d := range n.Decls {
			Inspect(d, f)
		}
		Inspect(n.Value, f)
	}
}

func inspectParams(params []*Parameter, f func(Node) bool) {
	for _, p := range params {
		Inspect(p, f)
	}
}

func inspectStmts(stmts []Stmt, f func(Node) bool) {
	for _, s := range stmts {
		Inspect(s, f)
	}
}
