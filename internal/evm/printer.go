package evm

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Instruction is one decoded opcode with its push operand, if any
type Instruction struct {
	Offset    int
	Op        OpCode
	Operand   []byte
	Truncated bool // push operand runs past the end of the code
}

func (i Instruction) String() string {
	if !i.Op.IsPush() {
		return i.Op.String()
	}
	s := fmt.Sprintf("%s 0x%s", i.Op, hex.EncodeToString(i.Operand))
	if i.Truncated {
		s += " (truncated)"
	}
	return s
}

// Disassemble decodes code into instructions. Undefined bytes decode as
// single-byte instructions whose String names the raw value.
func Disassemble(code []byte) []Instruction {
	var instructions []Instruction
	for pc := 0; pc < len(code); {
		op := OpCode(code[pc])
		inst := Instruction{Offset: pc, Op: op}
		pc++

		if size := op.PushSize(); size > 0 {
			end := pc + size
			if end > len(code) {
				end = len(code)
				inst.Truncated = true
			}
			inst.Operand = code[pc:end]
			pc = end
		}
		instructions = append(instructions, inst)
	}
	return instructions
}

// Printer renders bytecode as an assembly listing
type Printer struct {
	output strings.Builder
}

// NewPrinter creates a new bytecode printer
func NewPrinter() *Printer {
	return &Printer{}
}

// Print returns the listing of code, one instruction per line
func Print(code []byte) string {
	p := NewPrinter()
	p.printCode(code)
	return p.output.String()
}

// PrintSections returns one listing per named section, in order
func PrintSections(names []string, sections [][]byte) string {
	p := NewPrinter()
	for i, code := range sections {
		if i > 0 {
			p.writeLine("")
		}
		p.writeLine("%s:", names[i])
		p.printCode(code)
	}
	return p.output.String()
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printCode(code []byte) {
	for _, inst := range Disassemble(code) {
		p.writeLine("%04x: %s", inst.Offset, inst)
	}
}
