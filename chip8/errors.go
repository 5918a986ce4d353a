package chip8

import "fmt"

/// UnknownOpcodeError reports an instruction word that matches no
/// handler at any dispatch level. Execution cannot continue past it.
///
type UnknownOpcodeError struct {
	/// Word is the undecodable instruction.
	///
	Word uint16

	/// PC is the address the instruction was fetched from.
	///
	PC uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X at %04X", e.Word, e.PC)
}

/// StackOverflowError reports a CALL nested deeper than StackDepth.
///
type StackOverflowError struct {
	/// PC is the address of the faulting CALL.
	///
	PC uint16
}

func (e StackOverflowError) Error() string {
	return fmt.Sprintf("call stack overflow at %04X", e.PC)
}

/// StackUnderflowError reports a RET with no pending call.
///
type StackUnderflowError struct {
	/// PC is the address of the faulting RET.
	///
	PC uint16
}

func (e StackUnderflowError) Error() string {
	return fmt.Sprintf("call stack underflow at %04X", e.PC)
}

/// MemoryError reports an access outside addressable memory.
///
type MemoryError struct {
	/// Addr is the out-of-range address.
	///
	Addr int

	/// PC is the address of the faulting instruction.
	///
	PC uint16
}

func (e MemoryError) Error() string {
	return fmt.Sprintf("memory address %04X out of range at %04X", e.Addr, e.PC)
}

/// ROMSizeError reports a program image too large for memory.
///
type ROMSizeError struct {
	/// Size of the rejected image in bytes.
	///
	Size int
}

func (e ROMSizeError) Error() string {
	return fmt.Sprintf("program of %d bytes exceeds %d bytes of program memory", e.Size, MemorySize-ProgramBase)
}
