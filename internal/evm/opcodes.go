package evm

import (
	"fmt"
	"strconv"
)

// OpCode is a single EVM instruction byte
type OpCode byte

// 0x0 range - arithmetic ops.
const (
	STOP OpCode = iota
	ADD
	MUL
	SUB
	DIV
	SDIV
	MOD
	SMOD
	ADDMOD
	MULMOD
	EXP
	SIGNEXTEND
)

// 0x10 range - comparison and bitwise ops.
const (
	LT OpCode = iota + 0x10
	GT
	SLT
	SGT
	EQ
	ISZERO
	AND
	OR
	XOR
	NOT
	BYTE
	SHL
	SHR
	SAR
)

const SHA3 OpCode = 0x20

// 0x30 range - closure state.
const (
	ADDRESS OpCode = iota + 0x30
	BALANCE
	ORIGIN
	CALLER
	CALLVALUE
	CALLDATALOAD
	CALLDATASIZE
	CALLDATACOPY
	CODESIZE
	CODECOPY
	GASPRICE
	EXTCODESIZE
	EXTCODECOPY
	RETURNDATASIZE
	RETURNDATACOPY
	EXTCODEHASH
)

// 0x40 range - block operations.
const (
	BLOCKHASH OpCode = iota + 0x40
	COINBASE
	TIMESTAMP
	NUMBER
	DIFFICULTY
	GASLIMIT
	CHAINID
	SELFBALANCE
)

// 0x50 range - storage, memory and flow operations.
const (
	POP OpCode = iota + 0x50
	MLOAD
	MSTORE
	MSTORE8
	SLOAD
	SSTORE
	JUMP
	JUMPI
	PC
	MSIZE
	GAS
	JUMPDEST
)

// 0x60 range - pushes.
const (
	PUSH1 OpCode = iota + 0x60
	PUSH2
	PUSH3
	PUSH4
	PUSH5
	PUSH6
	PUSH7
	PUSH8
	PUSH9
	PUSH10
	PUSH11
	PUSH12
	PUSH13
	PUSH14
	PUSH15
	PUSH16
	PUSH17
	PUSH18
	PUSH19
	PUSH20
	PUSH21
	PUSH22
	PUSH23
	PUSH24
	PUSH25
	PUSH26
	PUSH27
	PUSH28
	PUSH29
	PUSH30
	PUSH31
	PUSH32
)

// 0x80 range - dups.
const (
	DUP1 OpCode = iota + 0x80
	DUP2
	DUP3
	DUP4
	DUP5
	DUP6
	DUP7
	DUP8
	DUP9
	DUP10
	DUP11
	DUP12
	DUP13
	DUP14
	DUP15
	DUP16
)

// 0x90 range - swaps.
const (
	SWAP1 OpCode = iota + 0x90
	SWAP2
	SWAP3
	SWAP4
	SWAP5
	SWAP6
	SWAP7
	SWAP8
	SWAP9
	SWAP10
	SWAP11
	SWAP12
	SWAP13
	SWAP14
	SWAP15
	SWAP16
)

// 0xa0 range - logging.
const (
	LOG0 OpCode = iota + 0xa0
	LOG1
	LOG2
	LOG3
	LOG4
)

// 0xf0 range - closures.
const (
	CREATE       OpCode = 0xf0
	CALL         OpCode = 0xf1
	CALLCODE     OpCode = 0xf2
	RETURN       OpCode = 0xf3
	DELEGATECALL OpCode = 0xf4
	CREATE2      OpCode = 0xf5
	STATICCALL   OpCode = 0xfa
	REVERT       OpCode = 0xfd
	INVALID      OpCode = 0xfe
	SELFDESTRUCT OpCode = 0xff
)

// opInfo is one row of the opcode table
type opInfo struct {
	name   string
	pops   int
	pushes int
}

var opTable [256]*opInfo

var opNames = make(map[string]OpCode)

func define(op OpCode, name string, pops, pushes int) {
	opTable[op] = &opInfo{name: name, pops: pops, pushes: pushes}
	opNames[name] = op
}

func init() {
	define(STOP, "STOP", 0, 0)
	define(ADD, "ADD", 2, 1)
	define(MUL, "MUL", 2, 1)
	define(SUB, "SUB", 2, 1)
	define(DIV, "DIV", 2, 1)
	define(SDIV, "SDIV", 2, 1)
	define(MOD, "MOD", 2, 1)
	define(SMOD, "SMOD", 2, 1)
	define(ADDMOD, "ADDMOD", 3, 1)
	define(MULMOD, "MULMOD", 3, 1)
	define(EXP, "EXP", 2, 1)
	define(SIGNEXTEND, "SIGNEXTEND", 2, 1)

	define(LT, "LT", 2, 1)
	define(GT, "GT", 2, 1)
	define(SLT, "SLT", 2, 1)
	define(SGT, "SGT", 2, 1)
	define(EQ, "EQ", 2, 1)
	define(ISZERO, "ISZERO", 1, 1)
	define(AND, "AND", 2, 1)
	define(OR, "OR", 2, 1)
	define(XOR, "XOR", 2, 1)
	define(NOT, "NOT", 1, 1)
	define(BYTE, "BYTE", 2, 1)
	define(SHL, "SHL", 2, 1)
	define(SHR, "SHR", 2, 1)
	define(SAR, "SAR", 2, 1)

	define(SHA3, "SHA3", 2, 1)

	define(ADDRESS, "ADDRESS", 0, 1)
	define(BALANCE, "BALANCE", 1, 1)
	define(ORIGIN, "ORIGIN", 0, 1)
	define(CALLER, "CALLER", 0, 1)
	define(CALLVALUE, "CALLVALUE", 0, 1)
	define(CALLDATALOAD, "CALLDATALOAD", 1, 1)
	define(CALLDATASIZE, "CALLDATASIZE", 0, 1)
	define(CALLDATACOPY, "CALLDATACOPY", 3, 0)
	define(CODESIZE, "CODESIZE", 0, 1)
	define(CODECOPY, "CODECOPY", 3, 0)
	define(GASPRICE, "GASPRICE", 0, 1)
	define(EXTCODESIZE, "EXTCODESIZE", 1, 1)
	define(EXTCODECOPY, "EXTCODECOPY", 4, 0)
	define(RETURNDATASIZE, "RETURNDATASIZE", 0, 1)
	define(RETURNDATACOPY, "RETURNDATACOPY", 3, 0)
	define(EXTCODEHASH, "EXTCODEHASH", 1, 1)

	define(BLOCKHASH, "BLOCKHASH", 1, 1)
	define(COINBASE, "COINBASE", 0, 1)
	define(TIMESTAMP, "TIMESTAMP", 0, 1)
	define(NUMBER, "NUMBER", 0, 1)
	define(DIFFICULTY, "DIFFICULTY", 0, 1)
	define(GASLIMIT, "GASLIMIT", 0, 1)
	define(CHAINID, "CHAINID", 0, 1)
	define(SELFBALANCE, "SELFBALANCE", 0, 1)

	define(POP, "POP", 1, 0)
	define(MLOAD, "MLOAD", 1, 1)
	define(MSTORE, "MSTORE", 2, 0)
	define(MSTORE8, "MSTORE8", 2, 0)
	define(SLOAD, "SLOAD", 1, 1)
	define(SSTORE, "SSTORE", 2, 0)
	define(JUMP, "JUMP", 1, 0)
	define(JUMPI, "JUMPI", 2, 0)
	define(PC, "PC", 0, 1)
	define(MSIZE, "MSIZE", 0, 1)
	define(GAS, "GAS", 0, 1)
	define(JUMPDEST, "JUMPDEST", 0, 0)

	for i := 0; i < 32; i++ {
		define(PUSH1+OpCode(i), "PUSH"+strconv.Itoa(i+1), 0, 1)
	}
	for i := 0; i < 16; i++ {
		define(DUP1+OpCode(i), "DUP"+strconv.Itoa(i+1), i+1, i+2)
		define(SWAP1+OpCode(i), "SWAP"+strconv.Itoa(i+1), i+2, i+2)
	}
	for i := 0; i < 5; i++ {
		define(LOG0+OpCode(i), "LOG"+strconv.Itoa(i), i+2, 0)
	}

	define(CREATE, "CREATE", 3, 1)
	define(CALL, "CALL", 7, 1)
	define(CALLCODE, "CALLCODE", 7, 1)
	define(RETURN, "RETURN", 2, 0)
	define(DELEGATECALL, "DELEGATECALL", 6, 1)
	define(CREATE2, "CREATE2", 4, 1)
	define(STATICCALL, "STATICCALL", 6, 1)
	define(REVERT, "REVERT", 2, 0)
	define(INVALID, "INVALID", 0, 0)
	define(SELFDESTRUCT, "SELFDESTRUCT", 1, 0)
}

// LookupOpCode resolves a mnemonic such as "PUSH1" or "CALLVALUE"
func LookupOpCode(name string) (OpCode, bool) {
	op, ok := opNames[name]
	return op, ok
}

// Defined reports whether op has an entry in the table
func (op OpCode) Defined() bool {
	return opTable[op] != nil
}

func (op OpCode) String() string {
	if info := opTable[op]; info != nil {
		return info.name
	}
	return fmt.Sprintf("opcode 0x%02x", byte(op))
}

// StackEffect returns how many words op pops and then pushes
func (op OpCode) StackEffect() (pops, pushes int) {
	if info := opTable[op]; info != nil {
		return info.pops, info.pushes
	}
	return 0, 0
}

// IsPush specifies if an opcode is a PUSH opcode
func (op OpCode) IsPush() bool {
	return op >= PUSH1 && op <= PUSH32
}

// PushSize returns the operand width of a PUSH opcode, or 0
func (op OpCode) PushSize() int {
	if !op.IsPush() {
		return 0
	}
	return int(op-PUSH1) + 1
}

// PushN returns the PUSH opcode carrying n operand bytes
func PushN(n int) (OpCode, error) {
	if n < 1 || n > 32 {
		return 0, fmt.Errorf("no PUSH opcode carries %d bytes", n)
	}
	return PUSH1 + OpCode(n-1), nil
}
