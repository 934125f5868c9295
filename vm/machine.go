package vm

import "github.com/dolthub/swiss"

// VM is the embeddable shell: it owns the global name table and the string
// intern table for the lifetime of the instance, and drives an Executor
// through the host entry points Execute and Call. Globals and interned
// strings persist across every Execute/Call invocation; the operand stack
// and call stack (held by the Executor) are likewise never reset between
// calls.
type VM struct {
	exec    *Executor
	globals *swiss.Map[string, Value]
	intern  map[string]string
}

// NewVM returns a VM with empty globals, an empty intern table, and a fresh
// Executor.
func NewVM() *VM {
	v := &VM{
		globals: swiss.NewMap[string, Value](16),
		intern:  make(map[string]string),
	}
	v.exec = NewExecutor(v)
	return v
}

// Get implements globalTable for the Executor.
func (vm *VM) Get(name string) (Value, bool) {
	return vm.globals.Get(name)
}

// Set implements globalTable for the Executor.
func (vm *VM) Set(name string, v Value) {
	vm.globals.Put(name, v)
}

// Intern implements globalTable for the Executor: it returns a single
// shared copy of equal string content, so that repeated literals (e.g. the
// same global name pushed by many PUSH_s sites) don't each allocate their
// own backing array.
func (vm *VM) Intern(s string) string {
	if existing, ok := vm.intern[s]; ok {
		return existing
	}
	vm.intern[s] = s
	return s
}

// SetGlobal overwrites-or-inserts name in the global table. This is a host
// entry point, distinct from the SETG opcode, though both end up calling Set.
func (vm *VM) SetGlobal(name string, v Value) {
	vm.Set(vm.Intern(name), v)
}

// GetGlobal looks up name, reporting false if absent.
func (vm *VM) GetGlobal(name string) (Value, bool) {
	return vm.Get(name)
}

// Push appends a value directly to the operand stack, for host-side argument
// setup before a Call.
func (vm *VM) Push(v Value) {
	vm.exec.Stack.Push(v)
}

// Peek returns a pointer to the element offset from the top of the operand
// stack, or nil if out of range.
func (vm *VM) Peek(offset int) *Value {
	return vm.exec.Stack.Peek(offset)
}

// Pop removes and returns the topmost operand, or (Value{}, false) if empty.
func (vm *VM) Pop() (Value, bool) {
	return vm.exec.Stack.Pop()
}

// StackDepth reports the current operand stack depth.
func (vm *VM) StackDepth() int {
	return vm.exec.Stack.Depth()
}

// LastError reports the sentinel diagnostic for the most recent halt.
func (vm *VM) LastError() error {
	return vm.exec.LastError()
}

// Flags returns the condition register as it stood after the most recent
// halt.
func (vm *VM) Flags() Flags {
	return vm.exec.Flags()
}

// Execute runs bytecode as top-level code: it installs bytecode as the
// active buffer starting at pc 0, runs to halt, then clears the active
// buffer and returns the resulting operand stack depth. The call stack is
// not reset: a program that halts mid-call leaves its frames in place for
// the next Execute/Call to pick up.
func (vm *VM) Execute(bytecode []byte) int32 {
	vm.exec.Load(bytecode)
	depth := vm.exec.Run()
	vm.exec.Clear()
	return int32(depth)
}

// Call looks up name in the global table and invokes it: -1 if absent or not
// callable; for a native global, invokes it directly on the current operand
// stack and returns its reported result count; for a bytecode global,
// delegates to Execute and returns its return value.
func (vm *VM) Call(name string) int32 {
	callee, ok := vm.globals.Get(name)
	if !ok || !callee.IsCallable() {
		return -1
	}
	if callee.IsNative() {
		return int32(callee.AsNative()(vm.exec.Stack))
	}
	return vm.Execute(callee.AsBytecode())
}
