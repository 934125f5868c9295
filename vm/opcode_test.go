package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{NOP, "NOP"},
		{ADD, "ADD"},
		{JSR, "JSR"},
		{SETG, "SETG"},
		{GETG, "GETG"},
		{Op(255), "?unknown?"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestOpInlineOperandSize(t *testing.T) {
	assert.Equal(t, 4, PUSH_N.InlineOperandSize())
	assert.Equal(t, 2, POP.InlineOperandSize())
	assert.Equal(t, 1, PEEK.InlineOperandSize())
	assert.Equal(t, 4, JMP.InlineOperandSize())
	assert.Equal(t, 4, JGE.InlineOperandSize())
	assert.Equal(t, 0, ADD.InlineOperandSize())
	assert.Equal(t, 0, PUSH_S.InlineOperandSize(), "PUSH_S is variable-length, not in the fixed table")
}

func TestOpIsConditionalJump(t *testing.T) {
	for _, op := range []Op{JEQ, JNQ, JL, JLE, JG, JGE} {
		assert.True(t, op.IsConditionalJump(), op.String())
	}
	for _, op := range []Op{JMP, NOP, ADD, RET} {
		assert.False(t, op.IsConditionalJump(), op.String())
	}
}

func TestDisassembleInstructionPushNumber(t *testing.T) {
	code := NewBuilder().PushNumber(2.5).Bytes()
	line, next := DisassembleInstruction(code, 0)
	assert.Contains(t, line, "PUSH_N")
	assert.Contains(t, line, "2.5")
	assert.Equal(t, len(code), next)
}

func TestDisassembleInstructionPushString(t *testing.T) {
	code := NewBuilder().PushString("sin").Bytes()
	line, next := DisassembleInstruction(code, 0)
	assert.Contains(t, line, "PUSH_S")
	assert.Contains(t, line, `"sin"`)
	assert.Equal(t, len(code), next)
}

func TestDisassembleInstructionJump(t *testing.T) {
	code := NewBuilder().Jmp(42).Bytes()
	line, next := DisassembleInstruction(code, 0)
	assert.Contains(t, line, "JMP")
	assert.Contains(t, line, "0042")
	assert.Equal(t, len(code), next)
}

func TestDisassembleMultipleInstructions(t *testing.T) {
	code := NewBuilder().PushNumber(1).PushNumber(2).Add().Ret().Bytes()
	out := Disassemble(code)
	assert.Contains(t, out, "PUSH_N")
	assert.Contains(t, out, "ADD")
	assert.Contains(t, out, "RET")
}

func TestDisassembleInstructionTruncated(t *testing.T) {
	code := []byte{byte(PUSH_N), 1, 2}
	line, next := DisassembleInstruction(code, 0)
	assert.Contains(t, line, "truncated")
	assert.Equal(t, len(code), next)
}
