package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfSpace is returned when a program image does not fit in memory.
	ErrOutOfSpace = errors.New("program does not fit in memory")

	// ErrStackOverflow is returned by a CALL beyond the 16-deep call stack.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow is returned by a RET with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// MemoryFault reports a read or write outside the 4 KiB address space.
type MemoryFault struct {
	Addr uint16
}

func (e MemoryFault) Error() string {
	return fmt.Sprintf("memory fault at address %#04x", e.Addr)
}

// UnknownOpcodeError reports an opcode outside the base instruction set.
// The raw opcode value is kept so the driver can log or display it.
type UnknownOpcodeError struct {
	Opcode uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %#04x", e.Opcode)
}
