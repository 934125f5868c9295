package vm

import "errors"

// Sentinel diagnostic errors. Faults are expressed as an early halt, not as
// a Go error crossing the host API; these are only readable after the fact
// via Executor.LastError, for hosts that want to log why a program halted.
var (
	ErrStackUnderflow = errors.New("vm: stack underflow")
	ErrTypeFault      = errors.New("vm: type fault")
	ErrBytecodeBounds = errors.New("vm: bytecode bounds fault")
	ErrUnknownOpcode  = errors.New("vm: unknown opcode")
	ErrMissingGlobal  = errors.New("vm: missing global")
	ErrNotCallable    = errors.New("vm: value not callable")
)
