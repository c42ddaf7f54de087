package evm

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrUnresolvedJump  = errors.New("unresolved jump target")
	ErrJumpOutOfRange  = errors.New("jump target does not fit in two bytes")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrPushTooWide     = errors.New("push operand wider than its opcode")
	ErrUndefinedOpCode = errors.New("undefined opcode")
)

// Builder assembles bytecode. It tracks the stack height implied by the
// opcode table and resolves forward jumps once every target is placed.
type Builder struct {
	program     []byte
	height      int
	jumpCounter int

	// Maps a jump target number to its absolute address.
	jumpAddr map[int]int

	// Maps a jump target number to the PUSH2 operands that must be
	// filled in with its address.
	jumpPlaceholders map[int][]int

	// First error seen while adding instructions; reported by Build.
	err error
}

func NewBuilder() *Builder {
	return &Builder{
		jumpAddr:         make(map[int]int),
		jumpPlaceholders: make(map[int][]int),
	}
}

// Height returns the number of words the emitted code leaves on the stack
func (b *Builder) Height() int {
	return b.height
}

// AddOp adds a non-push opcode to the program.
func (b *Builder) AddOp(op OpCode) *Builder {
	if !op.Defined() {
		b.setErr(fmt.Errorf("%w: 0x%02x", ErrUndefinedOpCode, byte(op)))
		return b
	}
	if op.IsPush() {
		return b.AddPushN(op.PushSize(), nil)
	}
	b.program = append(b.program, byte(op))
	b.track(op)
	return b
}

// AddOps adds each opcode in order.
func (b *Builder) AddOps(ops ...OpCode) *Builder {
	for _, op := range ops {
		b.AddOp(op)
	}
	return b
}

// AddPush adds the narrowest PUSH that carries data unchanged. Empty
// data pushes a single zero byte.
func (b *Builder) AddPush(data []byte) *Builder {
	if len(data) == 0 {
		return b.AddPushN(1, nil)
	}
	return b.AddPushN(len(data), data)
}

// AddPushN adds a PUSHn whose operand is data left-padded with zeros to
// n bytes.
func (b *Builder) AddPushN(n int, data []byte) *Builder {
	op, err := PushN(n)
	if err != nil {
		b.setErr(err)
		return b
	}
	if len(data) > n {
		b.setErr(fmt.Errorf("%w: %d bytes for %s", ErrPushTooWide, len(data), op))
		return b
	}
	b.program = append(b.program, byte(op))
	b.program = append(b.program, make([]byte, n-len(data))...)
	b.program = append(b.program, data...)
	b.track(op)
	return b
}

// Drain pops until the stack is back at height.
func (b *Builder) Drain(height int) *Builder {
	for b.height > height {
		b.AddOp(POP)
	}
	return b
}

// NewJumpTarget allocates a number that can be used as a jump target
// in AddJumpIf. Call SetJumpTarget to associate the number with a
// program location.
func (b *Builder) NewJumpTarget() int {
	b.jumpCounter++
	return b.jumpCounter
}

// AddJumpIf adds PUSH2 <target> JUMPI. The location of the target does not
// need to be known yet, as long as SetJumpTarget is called before Build.
func (b *Builder) AddJumpIf(target int) *Builder {
	b.AddPushN(2, nil)
	b.jumpPlaceholders[target] = append(b.jumpPlaceholders[target], len(b.program)-2)
	return b.AddOp(JUMPI)
}

// SetJumpTarget associates the given jump-target number with the
// current position in the program, such that a jump using this target
// lands on whatever instruction is added next.
func (b *Builder) SetJumpTarget(target int) *Builder {
	b.jumpAddr[target] = len(b.program)
	return b
}

// AddJumpDest places target here and marks it with JUMPDEST.
func (b *Builder) AddJumpDest(target int) *Builder {
	b.SetJumpTarget(target)
	return b.AddOp(JUMPDEST)
}

// Build produces the bytecode of the program. It first resolves any
// jumps in the program by filling in the addresses of their targets.
// A target used in AddJumpIf but never placed produces
// ErrUnresolvedJump.
func (b *Builder) Build() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	for target, placeholders := range b.jumpPlaceholders {
		addr, ok := b.jumpAddr[target]
		if !ok {
			return nil, fmt.Errorf("%w: target %d", ErrUnresolvedJump, target)
		}
		if addr > 0xffff {
			return nil, fmt.Errorf("%w: 0x%x", ErrJumpOutOfRange, addr)
		}
		for _, placeholder := range placeholders {
			binary.BigEndian.PutUint16(b.program[placeholder:placeholder+2], uint16(addr))
		}
	}
	return b.program, nil
}

func (b *Builder) track(op OpCode) {
	pops, pushes := op.StackEffect()
	if b.height < pops {
		b.setErr(fmt.Errorf("%w: %s needs %d words, have %d", ErrStackUnderflow, op, pops, b.height))
		b.height = 0
	} else {
		b.height -= pops
	}
	b.height += pushes
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}
