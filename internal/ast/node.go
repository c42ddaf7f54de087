package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (r *Root) NodePos() Position    { return r.Pos }
func (r *Root) NodeEndPos() Position { return r.EndPos }
func (*Root) NodeType() NodeType     { return ROOT }

func (p *PragmaDirective) NodePos() Position    { return p.Pos }
func (p *PragmaDirective) NodeEndPos() Position { return p.EndPos }
func (*PragmaDirective) NodeType() NodeType     { return PRAGMA }

func (c *Contract) NodePos() Position    { return c.Pos }
func (c *Contract) NodeEndPos() Position { return c.EndPos }
func (*Contract) NodeType() NodeType     { return CONTRACT }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (c *Constructor) NodePos() Position    { return c.Pos }
func (c *Constructor) NodeEndPos() Position { return c.EndPos }
func (*Constructor) NodeType() NodeType     { return CONSTRUCTOR }

func (s *StateVariableDeclaration) NodePos() Position    { return s.Pos }
func (s *StateVariableDeclaration) NodeEndPos() Position { return s.EndPos }
func (*StateVariableDeclaration) NodeType() NodeType     { return STATE_VARIABLE }

func (f *FunctionDefinition) NodePos() Position    { return f.Pos }
func (f *FunctionDefinition) NodeEndPos() Position { return f.EndPos }
func (*FunctionDefinition) NodeType() NodeType     { return FUNCTION_DEFINITION }

func (p *Parameter) NodePos() Position    { return p.Pos }
func (p *Parameter) NodeEndPos() Position { return p.EndPos }
func (*Parameter) NodeType() NodeType     { return PARAMETER }

func (u *UsingForDeclaration) NodePos() Position    { return u.Pos }
func (u *UsingForDeclaration) NodeEndPos() Position { return u.EndPos }
func (*UsingForDeclaration) NodeType() NodeType     { return USING_FOR }

func (s *StructDefinition) NodePos() Position    { return s.Pos }
func (s *StructDefinition) NodeEndPos() Position { return s.EndPos }
func (*StructDefinition) NodeType() NodeType     { return STRUCT_DEFINITION }

func (m *ModifierDefinition) NodePos() Position    { return m.Pos }
func (m *ModifierDefinition) NodeEndPos() Position { return m.EndPos }
func (*ModifierDefinition) NodeType() NodeType     { return MODIFIER_DEFINITION }

func (m *ModifierInvocation) NodePos() Position    { return m.Pos }
func (m *ModifierInvocation) NodeEndPos() Position { return m.EndPos }
func (*ModifierInvocation) NodeType() NodeType     { return MODIFIER_INVOCATION }

func (e *EventDefinition) NodePos() Position    { return e.Pos }
func (e *EventDefinition) NodeEndPos() Position { return e.EndPos }
func (*EventDefinition) NodeType() NodeType     { return EVENT_DEFINITION }

func (e *EnumDefinition) NodePos() Position    { return e.Pos }
func (e *EnumDefinition) NodeEndPos() Position { return e.EndPos }
func (*EnumDefinition) NodeType() NodeType     { return ENUM_DEFINITION }

func (t *ElementaryTypeName) NodePos() Position    { return t.Pos }
func (t *ElementaryTypeName) NodeEndPos() Position { return t.EndPos }
func (*ElementaryTypeName) NodeType() NodeType     { return ELEMENTARY_TYPE }

func (t *UserDefinedTypeName) NodePos() Position    { return t.Pos }
func (t *UserDefinedTypeName) NodeEndPos() Position { return t.EndPos }
func (*UserDefinedTypeName) NodeType() NodeType     { return USER_DEFINED_TYPE }

func (t *MappingTypeName) NodePos() Position    { return t.Pos }
func (t *MappingTypeName) NodeEndPos() Position { return t.EndPos }
func (*MappingTypeName) NodeType() NodeType     { return MAPPING_TYPE }

func (t *ArrayTypeName) NodePos() Position    { return t.Pos }
func (t *ArrayTypeName) NodeEndPos() Position { return t.EndPos }
func (*ArrayTypeName) NodeType() NodeType     { return ARRAY_TYPE }

func (l *BoolLiteral) NodePos() Position    { return l.Pos }
func (l *BoolLiteral) NodeEndPos() Position { return l.EndPos }
func (*BoolLiteral) NodeType() NodeType     { return BOOL_LITERAL }

func (l *NumberLiteral) NodePos() Position    { return l.Pos }
func (l *NumberLiteral) NodeEndPos() Position { return l.EndPos }
func (*NumberLiteral) NodeType() NodeType     { return NUMBER_LITERAL }

func (l *StringLiteral) NodePos() Position    { return l.Pos }
func (l *StringLiteral) NodeEndPos() Position { return l.EndPos }
func (*StringLiteral) NodeType() NodeType     { return STRING_LITERAL }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (e *ElementaryTypeExpr) NodePos() Position    { return e.Pos }
func (e *ElementaryTypeExpr) NodeEndPos() Position { return e.EndPos }
func (*ElementaryTypeExpr) NodeType() NodeType     { return ELEMENTARY_TYPE_EXPR }

func (m *MemberAccessExpr) NodePos() Position    { return m.Pos }
func (m *MemberAccessExpr) NodeEndPos() Position { return m.EndPos }
func (*MemberAccessExpr) NodeType() NodeType     { return MEMBER_ACCESS_EXPR }

func (f *FunctionCallExpr) NodePos() Position    { return f.Pos }
func (f *FunctionCallExpr) NodeEndPos() Position { return f.EndPos }
func (*FunctionCallExpr) NodeType() NodeType     { return FUNCTION_CALL_EXPR }

func (a *AssignmentExpr) NodePos() Position    { return a.Pos }
func (a *AssignmentExpr) NodeEndPos() Position { return a.EndPos }
func (*AssignmentExpr) NodeType() NodeType     { return ASSIGNMENT_EXPR }

func (l *ExpressionList) NodePos() Position    { return l.Pos }
func (l *ExpressionList) NodeEndPos() Position { return l.EndPos }
func (*ExpressionList) NodeType() NodeType     { return EXPRESSION_LIST }

func (l *NameValueList) NodePos() Position    { return l.Pos }
func (l *NameValueList) NodeEndPos() Position { return l.EndPos }
func (*NameValueList) NodeType() NodeType     { return NAME_VALUE_LIST }

func (n *NameValue) NodePos() Position    { return n.Pos }
func (n *NameValue) NodeEndPos() Position { return n.EndPos }
func (*NameValue) NodeType() NodeType     { return NAME_VALUE }

func (b *BlockStmt) NodePos() Position    { return b.Pos }
func (b *BlockStmt) NodeEndPos() Position { return b.EndPos }
func (*BlockStmt) NodeType() NodeType     { return BLOCK_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (v *VariableDeclaration) NodePos() Position    { return v.Pos }
func (v *VariableDeclaration) NodeEndPos() Position { return v.EndPos }
func (*VariableDeclaration) NodeType() NodeType     { return VARIABLE_DECLARATION }

func (v *VariableDeclarationStmt) NodePos() Position    { return v.Pos }
func (v *VariableDeclarationStmt) NodeEndPos() Position { return v.EndPos }
func (*VariableDeclarationStmt) NodeType() NodeType     { return VARIABLE_DECLARATION_STMT }

func (v *VariableDefinitionStmt) NodePos() Position    { return v.Pos }
func (v *VariableDefinitionStmt) NodeEndPos() Position { return v.EndPos }
func (*VariableDefinitionStmt) NodeType() NodeType     { return VARIABLE_DEFINITION_STMT }
