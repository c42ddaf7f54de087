package codegen

import (
	"encoding/hex"
	"math/big"
	"strings"

	"solidus/internal/ast"
	"solidus/internal/errors"
	"solidus/internal/evm"
)

const (
	addressSize = 20
	wordSize    = 32
)

var unitMultipliers = map[ast.NumberUnit]*big.Int{
	ast.UnitWei:     big.NewInt(1),
	ast.UnitSzabo:   new(big.Int).Exp(big.NewInt(10), big.NewInt(12), nil),
	ast.UnitFinney:  new(big.Int).Exp(big.NewInt(10), big.NewInt(15), nil),
	ast.UnitEther:   new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
	ast.UnitSeconds: big.NewInt(1),
	ast.UnitMinutes: big.NewInt(60),
	ast.UnitHours:   big.NewInt(3600),
	ast.UnitDays:    big.NewInt(86400),
	ast.UnitWeeks:   big.NewInt(604800),
	ast.UnitYears:   big.NewInt(31536000),
}

// maxWord is 2^256 - 1
var maxWord = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// addressMask is twenty 0xff bytes
var addressMask = []byte(strings.Repeat("\xff", addressSize))

// argumentType names the ABI type inferred from an argument's literal form
func (g *Generator) argumentType(arg ast.Expr) (string, error) {
	switch lit := arg.(type) {
	case *ast.NumberLiteral:
		if lit.Base == ast.Hex {
			return "address", nil
		}
		return "uint256", nil
	case *ast.BoolLiteral:
		if g.config.CanonicalBoolSignature {
			return "bool", nil
		}
		return "bool" + lit.String(), nil
	default:
		return "", unsupportedArgument(arg)
	}
}

// encodeArgument appends the push for one positional argument
func (g *Generator) encodeArgument(arg ast.Expr) error {
	switch lit := arg.(type) {
	case *ast.NumberLiteral:
		if lit.Base == ast.Hex {
			data, err := addressBytes(lit)
			if err != nil {
				return err
			}
			g.builder.AddPushN(addressSize, data)
			return nil
		}
		value, err := decimalValue(lit)
		if err != nil {
			return err
		}
		if g.config.PadArguments {
			g.builder.AddPushN(wordSize, value.Bytes())
		} else {
			g.builder.AddPush(value.Bytes())
		}
		return nil
	case *ast.BoolLiteral:
		if lit.Value {
			g.builder.AddPush([]byte{0x01})
		} else {
			g.builder.AddPush([]byte{0x00})
		}
		return nil
	default:
		return unsupportedArgument(arg)
	}
}

// emitAddressHandle pushes a hex literal as an address and masks it to 160 bits
func (g *Generator) emitAddressHandle(lit *ast.NumberLiteral) error {
	data, err := addressBytes(lit)
	if err != nil {
		return err
	}
	g.builder.
		AddPushN(addressSize, data).
		AddPushN(addressSize, addressMask).
		AddOp(evm.AND)
	return nil
}

// addressBytes decodes hex digits, two per byte. An odd count gains a
// leading zero and leading zero bytes are dropped before the width check.
func addressBytes(lit *ast.NumberLiteral) ([]byte, error) {
	if lit.Unit != ast.UnitNone {
		return nil, invalidNumber(lit, "hex literals cannot carry a unit")
	}
	digits := lit.Digits
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	data, err := hex.DecodeString(digits)
	if err != nil {
		return nil, invalidNumber(lit, err.Error())
	}
	for len(data) > 0 && data[0] == 0 {
		data = data[1:]
	}
	if len(data) > addressSize {
		return nil, invalidNumber(lit, "wider than 20 bytes")
	}
	return data, nil
}

// decimalValue evaluates a decimal literal times its unit
func decimalValue(lit *ast.NumberLiteral) (*big.Int, error) {
	value, ok := new(big.Int).SetString(lit.Digits, 10)
	if !ok {
		return nil, invalidNumber(lit, "not a decimal number")
	}
	if multiplier, ok := unitMultipliers[lit.Unit]; ok {
		value.Mul(value, multiplier)
	}
	if value.Cmp(maxWord) > 0 {
		return nil, invalidNumber(lit, "does not fit in 256 bits")
	}
	return value, nil
}

func invalidNumber(lit *ast.NumberLiteral, reason string) error {
	return newError(lit, errors.InvalidNumberLiteral(lit.String(), reason, lit.NodePos()))
}

func unsupportedArgument(arg ast.Expr) error {
	return newError(arg, errors.UnsupportedArgument(arg.String(), arg.NodePos()))
}
