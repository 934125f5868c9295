package vm

// Flags is the one-byte condition register set by CMP and read by the
// conditional jump opcodes.
type Flags byte

const (
	// FlagEQ is set when the last CMP found equal operands.
	FlagEQ Flags = 0x01
	// FlagBelow is set when the last CMP found left < right.
	FlagBelow Flags = 0x02
	// FlagInvalidOp is set when the last CMP (or other flag-setting op)
	// encountered operands of incompatible types.
	FlagInvalidOp Flags = 0x10
)

// EQ reports whether the equal bit is set.
func (f Flags) EQ() bool { return f&FlagEQ != 0 }

// Below reports whether the below bit is set.
func (f Flags) Below() bool { return f&FlagBelow != 0 }

// InvalidOp reports whether the last flag-setting operation faulted on
// incompatible operand types.
func (f Flags) InvalidOp() bool { return f&FlagInvalidOp != 0 }

// Above is not a stored bit: it holds exactly when the register is zero,
// i.e. neither EQ, BELOW nor INVALID_OP is set.
func (f Flags) Above() bool { return f == 0 }
