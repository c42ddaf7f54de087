package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (r *Root) String() string {
	var b strings.Builder

	if r.Pragma != nil {
		b.WriteString(r.Pragma.String())
		b.WriteString("\n")
	}
	for _, c := range r.Contracts {
		b.WriteString(c.String())
		b.WriteString("\n")
	}

	return b.String()
}

func (p *PragmaDirective) String() string {
	return fmt.Sprintf("pragma %s %s;", p.Name.Value, p.Value)
}

func (c *Contract) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s {\n", c.Kind, c.Name.Value))
	for _, part := range c.Parts {
		b.WriteString("  " + strings.ReplaceAll(part.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (c *Constructor) String() string {
	var b strings.Builder

	b.WriteString("constructor")
	b.WriteString(paramsString(c.Params))
	if c.Visibility != VisibilityNone {
		b.WriteString(" " + c.Visibility.String())
	}
	if c.Payable {
		b.WriteString(" payable")
	}
	b.WriteString(" ")
	b.WriteString(blockString(c.Body))

	return b.String()
}

func (s *StateVariableDeclaration) String() string {
	var b strings.Builder

	b.WriteString(s.Type.String())
	if s.Visibility != VisibilityNone {
		b.WriteString(" " + s.Visibility.String())
	}
	if s.Constant {
		b.WriteString(" constant")
	}
	b.WriteString(" " + s.Name.Value)
	if s.Value != nil {
		b.WriteString(" = " + s.Value.String())
	}
	b.WriteString(";")

	return b.String()
}

func (f *FunctionDefinition) String() string {
	var b strings.Builder

	b.WriteString("function")
	if f.Name != nil {
		b.WriteString(" " + f.Name.Value)
	}
	b.WriteString(paramsString(f.Params))
	if f.Visibility != VisibilityNone {
		b.WriteString(" " + f.Visibility.String())
	}
	if f.Mutability != MutabilityNone {
		b.WriteString(" " + f.Mutability.String())
	}
	if len(f.Returns) > 0 {
		b.WriteString(" returns " + paramsString(f.Returns))
	}
	if f.Body == nil {
		b.WriteString(";")
	} else {
		b.WriteString(" " + f.Body.String())
	}

	return b.String()
}

func (p *Parameter) String() string {
	parts := []string{p.Type.String()}
	if p.Storage != StorageNone {
		parts = append(parts, p.Storage.String())
	}
	if p.Name != nil {
		parts = append(parts, p.Name.Value)
	}
	return strings.Join(parts, " ")
}

func (u *UsingForDeclaration) String() string {
	target := "*"
	if u.Target != nil {
		target = u.Target.String()
	}
	return fmt.Sprintf("using %s for %s;", u.Library.Value, target)
}

func (s *StructDefinition) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("struct %s {", s.Name.Value))
	for _, m := range s.Members {
		b.WriteString(" " + m.String() + ";")
	}
	b.WriteString(" }")
	return b.String()
}

func (m *ModifierDefinition) String() string {
	body := "{}"
	if m.Body != nil {
		body = m.Body.String()
	}
	return fmt.Sprintf("modifier %s%s %s", m.Name.Value, paramsString(m.Params), body)
}

func (m *ModifierInvocation) String() string {
	return fmt.Sprintf("%s(%s)", m.Name.Value, exprsString(m.Args))
}

func (e *EventDefinition) String() string {
	s := fmt.Sprintf("event %s%s", e.Name.Value, paramsString(e.Params))
	if e.Anonymous {
		s += " anonymous"
	}
	return s + ";"
}

func (e *EnumDefinition) String() string {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.Value
	}
	return fmt.Sprintf("enum %s { %s }", e.Name.Value, strings.Join(names, ", "))
}

func (t *ElementaryTypeName) String() string {
	var name string
	switch t.Kind {
	case KindAddress:
		name = "address"
		if t.Payable {
			name += " payable"
		}
	case KindBool:
		name = "bool"
	case KindString:
		name = "string"
	case KindInt:
		name = widthName("int", t.Width)
	case KindUInt:
		name = widthName("uint", t.Width)
	case KindByte:
		if t.Width == 0 {
			name = "byte"
		} else {
			name = "bytes" + strconv.Itoa(t.Width)
		}
	case KindBytes:
		name = "bytes"
	case KindFixed:
		name = "fixed"
	case KindUfixed:
		name = "ufixed"
	}
	return name
}

func widthName(base string, width int) string {
	if width == 0 {
		return base
	}
	return base + strconv.Itoa(width)
}

func (t *UserDefinedTypeName) String() string {
	parts := make([]string, len(t.Path))
	for i, p := range t.Path {
		parts[i] = p.Value
	}
	return strings.Join(parts, ".")
}

func (t *MappingTypeName) String() string {
	return fmt.Sprintf("mapping(%s => %s)", t.Key.String(), t.Value.String())
}

func (t *ArrayTypeName) String() string {
	if t.Length == nil {
		return t.Elem.String() + "[]"
	}
	return fmt.Sprintf("%s[%s]", t.Elem.String(), t.Length.String())
}

func (l *BoolLiteral) String() string {
	return strconv.FormatBool(l.Value)
}

func (l *NumberLiteral) String() string {
	s := l.Digits
	if l.Base == Hex {
		s = "0x" + s
	}
	if l.Unit != UnitNone {
		s += " " + string(l.Unit)
	}
	return s
}

func (l *StringLiteral) String() string {
	return strconv.Quote(l.Value)
}

func (i *IdentExpr) String() string {
	return i.Name.Value
}

func (e *ElementaryTypeExpr) String() string {
	return e.Type.String()
}

func (m *MemberAccessExpr) String() string {
	return m.Base.String() + "." + m.Member.String()
}

func (f *FunctionCallExpr) String() string {
	return fmt.Sprintf("%s(%s)", f.Callee.String(), f.Args.String())
}

func (a *AssignmentExpr) String() string {
	return fmt.Sprintf("%s %s %s", a.Left.String(), a.Operator, a.Right.String())
}

func (l *ExpressionList) String() string {
	return exprsString(l.Exprs)
}

func (l *NameValueList) String() string {
	entries := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = e.String()
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

func (n *NameValue) String() string {
	return fmt.Sprintf("%s: %s", n.Name.Value, n.Value.String())
}

func (b *BlockStmt) String() string {
	return blockString(b.Stmts)
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (v *VariableDeclaration) String() string {
	parts := []string{v.Type.String()}
	if v.Storage != StorageNone {
		parts = append(parts, v.Storage.String())
	}
	parts = append(parts, v.Name.Value)
	return strings.Join(parts, " ")
}

func (v *VariableDeclarationStmt) String() string {
	return v.Decl.String() + ";"
}

func (v *VariableDefinitionStmt) String() string {
	decls := make([]string, len(v.Decls))
	for i, d := range v.Decls {
		decls[i] = d.String()
	}
	lhs := strings.Join(decls, ", ")
	if v.Tuple {
		lhs = "(" + lhs + ")"
	}
	return fmt.Sprintf("%s = %s;", lhs, v.Value.String())
}

func paramsString(params []*Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func exprsString(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func blockString(stmts []Stmt) string {
	if len(stmts) == 0 {
		return "{ }"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range stmts {
		b.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}
