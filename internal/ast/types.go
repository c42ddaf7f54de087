package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Declarations
	ROOT
	PRAGMA
	CONTRACT
	IDENT
	CONSTRUCTOR
	STATE_VARIABLE
	FUNCTION_DEFINITION
	PARAMETER
	USING_FOR
	STRUCT_DEFINITION
	MODIFIER_DEFINITION
	MODIFIER_INVOCATION
	EVENT_DEFINITION
	ENUM_DEFINITION

	// Types
	ELEMENTARY_TYPE
	USER_DEFINED_TYPE
	MAPPING_TYPE
	ARRAY_TYPE

	// Expressions
	BOOL_LITERAL
	NUMBER_LITERAL
	STRING_LITERAL
	IDENT_EXPR
	ELEMENTARY_TYPE_EXPR
	MEMBER_ACCESS_EXPR
	FUNCTION_CALL_EXPR
	ASSIGNMENT_EXPR
	EXPRESSION_LIST
	NAME_VALUE_LIST
	NAME_VALUE

	// Statements
	BLOCK_STMT
	EXPR_STMT
	VARIABLE_DECLARATION
	VARIABLE_DECLARATION_STMT
	VARIABLE_DEFINITION_STMT
)

var nodeTypeNames = [...]string{
	ILLEGAL:                   "ILLEGAL",
	ROOT:                      "ROOT",
	PRAGMA:                    "PRAGMA",
	CONTRACT:                  "CONTRACT",
	IDENT:                     "IDENT",
	CONSTRUCTOR:               "CONSTRUCTOR",
	STATE_VARIABLE:            "STATE_VARIABLE",
	FUNCTION_DEFINITION:       "FUNCTION_DEFINITION",
	PARAMETER:                 "PARAMETER",
	USING_FOR:                 "USING_FOR",
	STRUCT_DEFINITION:         "STRUCT_DEFINITION",
	MODIFIER_DEFINITION:       "MODIFIER_DEFINITION",
	MODIFIER_INVOCATION:       "MODIFIER_INVOCATION",
	EVENT_DEFINITION:          "EVENT_DEFINITION",
	ENUM_DEFINITION:           "ENUM_DEFINITION",
	ELEMENTARY_TYPE:           "ELEMENTARY_TYPE",
	USER_DEFINED_TYPE:         "USER_DEFINED_TYPE",
	MAPPING_TYPE:              "MAPPING_TYPE",
	ARRAY_TYPE:                "ARRAY_TYPE",
	BOOL_LITERAL:              "BOOL_LITERAL",
	NUMBER_LITERAL:            "NUMBER_LITERAL",
	STRING_LITERAL:            "STRING_LITERAL",
	IDENT_EXPR:                "IDENT_EXPR",
	ELEMENTARY_TYPE_EXPR:      "ELEMENTARY_TYPE_EXPR",
	MEMBER_ACCESS_EXPR:        "MEMBER_ACCESS_EXPR",
	FUNCTION_CALL_EXPR:        "FUNCTION_CALL_EXPR",
	ASSIGNMENT_EXPR:           "ASSIGNMENT_EXPR",
	EXPRESSION_LIST:           "EXPRESSION_LIST",
	NAME_VALUE_LIST:           "NAME_VALUE_LIST",
	NAME_VALUE:                "NAME_VALUE",
	BLOCK_STMT:                "BLOCK_STMT",
	EXPR_STMT:                 "EXPR_STMT",
	VARIABLE_DECLARATION:      "VARIABLE_DECLARATION",
	VARIABLE_DECLARATION_STMT: "VARIABLE_DECLARATION_STMT",
	VARIABLE_DEFINITION_STMT:  "VARIABLE_DEFINITION_STMT",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "NodeType(?)"
	}
	return nodeTypeNames[t]
}
