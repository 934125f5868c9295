package vm

import "fmt"

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNumber Kind = iota
	KindString
	KindBytecode
	KindNative
)

// Type names reported by Value.TypeName.
const (
	TypeNumber   = "number"
	TypeString   = "string"
	TypeBytecode = "bytecode"
	TypeNative   = "native"
)

// NativeFunc is a host-supplied callable. It receives the VM's operand
// stack so it can pop its arguments and push its results, and returns the
// number of values it produced.
type NativeFunc func(stack *OperandStack) int

// Value is a tagged value manipulated by the executor: a 32-bit float, an
// owned string, an owned bytecode buffer (a scripted subroutine), or a
// host-supplied native function. There is no subclass hierarchy: the Kind
// field is the only thing that distinguishes variants, and every accessor
// is only valid to call once the matching predicate has been checked.
type Value struct {
	kind   Kind
	num    float32
	str    string
	code   []byte
	native NativeFunc
}

// NewNumber returns a numeric Value.
func NewNumber(f float32) Value {
	return Value{kind: KindNumber, num: f}
}

// NewString returns a string Value. The string is copied (Go strings are
// already immutable, so no further defensive copy is needed beyond the
// assignment itself).
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewBytecode returns a Value holding a scripted subroutine's instructions.
// The buffer is owned by the Value; callers must not mutate it afterwards.
func NewBytecode(code []byte) Value {
	return Value{kind: KindBytecode, code: code}
}

// NewNative returns a Value wrapping a host-supplied callable.
func NewNative(fn NativeFunc) Value {
	return Value{kind: KindNative, native: fn}
}

// IsNumeric is true only for the number variant.
func (v Value) IsNumeric() bool { return v.kind == KindNumber }

// IsString is true only for the string variant.
func (v Value) IsString() bool { return v.kind == KindString }

// IsCallable is true for the bytecode and native variants.
func (v Value) IsCallable() bool { return v.kind == KindBytecode || v.kind == KindNative }

// IsNative is true only for the native variant.
func (v Value) IsNative() bool { return v.kind == KindNative }

// IsBytecode is true only for the bytecode variant.
func (v Value) IsBytecode() bool { return v.kind == KindBytecode }

// AsNumber returns the numeric payload. Calling it on a non-number Value is
// undefined; callers must check IsNumeric first (the executor only does so
// at dispatch sites that already checked the predicate).
func (v Value) AsNumber() float32 { return v.num }

// AsString returns the string payload.
func (v Value) AsString() string { return v.str }

// AsBytecode returns the bytecode payload.
func (v Value) AsBytecode() []byte { return v.code }

// AsNative returns the native-function payload.
func (v Value) AsNative() NativeFunc { return v.native }

// Kind reports the value's tag.
func (v Value) Kind() Kind { return v.kind }

// TypeName returns a human-readable type name, for diagnostics only; the
// executor never consults it.
func (v Value) TypeName() string {
	switch v.kind {
	case KindNumber:
		return TypeNumber
	case KindString:
		return TypeString
	case KindBytecode:
		return TypeBytecode
	case KindNative:
		return TypeNative
	default:
		return "unknown"
	}
}

// String renders the value for debugging. It is not used by the
// executor itself, which never serializes a Value.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindString:
		return v.str
	case KindBytecode:
		return fmt.Sprintf("<bytecode %d bytes>", len(v.code))
	case KindNative:
		return "<native>"
	default:
		return "<unknown>"
	}
}

// Equals reports whether two values are the same variant with the same
// payload. Numeric equality follows IEEE-754 (NaN != NaN, +0 == -0).
// String equality compares contents, not identity. Bytecode and native
// values are never equal to anything, including themselves; callers needing
// that comparison must route through CMP, which faults on those kinds.
func (v Value) Equals(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	default:
		return false
	}
}
