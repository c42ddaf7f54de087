package codegen

import (
	"solidus/internal/abi"
	"solidus/internal/ast"
	"solidus/internal/builtins"
)

// StorageSlot places one state variable
type StorageSlot struct {
	Contract string
	Slot     int
	Name     string
	Type     string
}

// Method is one externally callable function and its selector
type Method struct {
	Contract  string
	Signature string
	Selector  abi.Selector
}

// StorageLayout assigns slots to state variables in declaration order,
// one slot each, starting at 0 in every contract. Constants occupy no
// storage.
func StorageLayout(root *ast.Root) []StorageSlot {
	var layout []StorageSlot
	for _, contract := range root.Contracts {
		if contract.Kind != ast.ContractKindContract {
			continue
		}
		slot := 0
		for _, part := range contract.Parts {
			decl, ok := part.(*ast.StateVariableDeclaration)
			if !ok || decl.Constant {
				continue
			}
			layout = append(layout, StorageSlot{
				Contract: contract.Name.Value,
				Slot:     slot,
				Name:     decl.Name.Value,
				Type:     decl.Type.String(),
			})
			slot++
		}
	}
	return layout
}

// MethodIdentifiers lists the selector of every public or external
// function and every public state variable getter, per contract in
// declaration order.
func MethodIdentifiers(root *ast.Root) []Method {
	var methods []Method
	for _, contract := range root.Contracts {
		for _, part := range contract.Parts {
			var signature string
			switch node := part.(type) {
			case *ast.FunctionDefinition:
				if node.Name == nil || !externallyVisible(node.Visibility) {
					continue
				}
				signature = abi.SignatureOf(node)
			case *ast.StateVariableDeclaration:
				if node.Visibility != ast.VisibilityPublic {
					continue
				}
				signature = getterSignature(node)
			default:
				continue
			}
			methods = append(methods, Method{
				Contract:  contract.Name.Value,
				Signature: signature,
				Selector:  abi.SelectorOf(signature),
			})
		}
	}
	return methods
}

// MethodMap keys selectors by signature, as solc --hashes prints them
func MethodMap(methods []Method) map[string]string {
	result := make(map[string]string, len(methods))
	for _, m := range methods {
		result[m.Signature] = m.Selector.Hex()
	}
	return result
}

func externallyVisible(v ast.Visibility) bool {
	return v == ast.VisibilityNone || v == ast.VisibilityPublic || v == ast.VisibilityExternal
}

// getterSignature takes one argument per mapping key and array dimension.
func getterSignature(decl *ast.StateVariableDeclaration) string {
	var args []string
	typ := decl.Type
	for {
		switch t := typ.(type) {
		case *ast.MappingTypeName:
			args = append(args, builtins.CanonicalABIName(t.Key))
			typ = t.Value
			continue
		case *ast.ArrayTypeName:
			args = append(args, "uint256")
			typ = t.Elem
			continue
		}
		break
	}
	return abi.Signature(decl.Name.Value, args)
}
