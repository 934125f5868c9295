package vm

import (
	"encoding/binary"
	"math"
)

// Builder is a fluent bytecode assembler used by tests (and, in the larger
// system, by the expression compiler) to emit well-formed instruction
// buffers without hand-writing byte slices. It is not part of the execution
// engine itself: the Executor never imports it.
type Builder struct {
	code []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{code: make([]byte, 0, 32)}
}

func (b *Builder) emit(op Op) *Builder {
	b.code = append(b.code, byte(op))
	return b
}

func (b *Builder) emitU32(v uint32) *Builder {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.code = append(b.code, buf[:]...)
	return b
}

func (b *Builder) emitByte(v byte) *Builder {
	b.code = append(b.code, v)
	return b
}

// Nop emits NOP.
func (b *Builder) Nop() *Builder { return b.emit(NOP) }

// Add, Sub, Mul, Div, Mod emit the corresponding binary arithmetic opcode.
func (b *Builder) Add() *Builder { return b.emit(ADD) }
func (b *Builder) Sub() *Builder { return b.emit(SUB) }
func (b *Builder) Mul() *Builder { return b.emit(MUL) }
func (b *Builder) Div() *Builder { return b.emit(DIV) }
func (b *Builder) Mod() *Builder { return b.emit(MOD) }

// Neg emits NEG.
func (b *Builder) Neg() *Builder { return b.emit(NEG) }

// PushNumber emits PUSH_n with an inline little-endian f32 operand.
func (b *Builder) PushNumber(f float32) *Builder {
	return b.emit(PUSH_N).emitU32(math.Float32bits(f))
}

// PushString emits PUSH_s with an inline u32 length prefix followed by the
// string's bytes.
func (b *Builder) PushString(s string) *Builder {
	b.emit(PUSH_S).emitU32(uint32(len(s)))
	b.code = append(b.code, s...)
	return b
}

// Pop emits POP with the given splice offset and count.
func (b *Builder) Pop(offset, count byte) *Builder {
	return b.emit(POP).emitByte(offset).emitByte(count)
}

// Peek emits PEEK with the given offset.
func (b *Builder) Peek(offset byte) *Builder {
	return b.emit(PEEK).emitByte(offset)
}

// Cmp emits CMP.
func (b *Builder) Cmp() *Builder { return b.emit(CMP) }

// Jmp emits JMP with an inline absolute address operand.
func (b *Builder) Jmp(addr uint32) *Builder {
	return b.emit(JMP).emitU32(addr)
}

// Jeq, Jnq, Jl, Jle, Jg, Jge emit the matching conditional jump with an
// inline absolute address operand.
func (b *Builder) Jeq(addr uint32) *Builder { return b.emit(JEQ).emitU32(addr) }
func (b *Builder) Jnq(addr uint32) *Builder { return b.emit(JNQ).emitU32(addr) }
func (b *Builder) Jl(addr uint32) *Builder  { return b.emit(JL).emitU32(addr) }
func (b *Builder) Jle(addr uint32) *Builder { return b.emit(JLE).emitU32(addr) }
func (b *Builder) Jg(addr uint32) *Builder  { return b.emit(JG).emitU32(addr) }
func (b *Builder) Jge(addr uint32) *Builder { return b.emit(JGE).emitU32(addr) }

// Jsr emits JSR.
func (b *Builder) Jsr() *Builder { return b.emit(JSR) }

// Ret emits RET.
func (b *Builder) Ret() *Builder { return b.emit(RET) }

// Setg emits SETG.
func (b *Builder) Setg() *Builder { return b.emit(SETG) }

// Getg emits GETG.
func (b *Builder) Getg() *Builder { return b.emit(GETG) }

// Label returns the address (current buffer length) of the next emitted
// instruction, the target to pass to a later PatchJump call, since forward
// references aren't known until the code after them has been laid out.
func (b *Builder) Label() uint32 {
	return uint32(len(b.code))
}

// PatchJump overwrites the 4-byte address operand of the jump instruction
// starting at pc (the byte index of the opcode itself, as returned by a
// Label taken before emitting it) with addr. It panics if pc does not
// point at a jump opcode with room for a 4-byte operand: that is a
// programming error in the caller, not a runtime fault.
func (b *Builder) PatchJump(pc uint32, addr uint32) *Builder {
	i := int(pc)
	if i < 0 || i+5 > len(b.code) {
		panic("vm: PatchJump out of range")
	}
	op := Op(b.code[i])
	if !op.IsConditionalJump() && op != JMP {
		panic("vm: PatchJump target is not a jump instruction")
	}
	binary.LittleEndian.PutUint32(b.code[i+1:i+5], addr)
	return b
}

// Bytes returns the assembled bytecode buffer.
func (b *Builder) Bytes() []byte {
	return b.code
}
