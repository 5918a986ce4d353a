package chip8

import (
	"fmt"
	"os"
)

/// State of the virtual machine execution loop.
///
type State int

const (
	/// Running is the normal fetch/decode/execute state.
	///
	Running State = iota

	/// WaitingForKey is entered by LD VX, K and left only when the
	/// host reports a key release.
	///
	WaitingForKey
)

const (
	/// MemorySize is the total addressable memory.
	///
	MemorySize = 0x1000

	/// ProgramBase is the address programs are loaded at.
	///
	ProgramBase = 0x200

	/// StackDepth is the maximum number of nested subroutine calls.
	///
	StackDepth = 16

	/// FontSpriteSize is the number of bytes per hex glyph sprite.
	///
	FontSpriteSize = 5
)

/// Font sprites for the hex digits 0-F. Each glyph is 5 bytes, one byte
/// per row, the high 4 bits of each byte forming a 4-pixel wide image.
/// The table occupies memory 0x000-0x04F.
///
var fontSprites = [...]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

/// VM is a CHIP-8 virtual machine. It bundles every piece of machine
/// state; the host owns it exclusively and drives it sequentially.
///
type VM struct {
	/// Memory addressable by CHIP-8. The font sprites live at 0x000,
	/// program code at 0x200.
	///
	Memory [MemorySize]byte

	/// Screen is the 64x32 monochrome framebuffer. Only CLS and DRW
	/// touch it from inside the core; the host renderer reads it.
	///
	Screen Display

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// I is the address register.
	///
	I uint16

	/// V are the 16 virtual registers. VF doubles as the flag
	/// register for carries, borrows, shifts, and sprite collisions.
	///
	V [16]byte

	/// DT is the delay timer. The host decrements it once per
	/// rendered frame with Tick, independent of instruction rate.
	///
	DT byte

	/// Keys hold the current state of the 16-key pad.
	///
	Keys [16]bool

	/// Stack holds subroutine return addresses, at most StackDepth
	/// levels deep.
	///
	Stack []uint16

	/// State is Running or WaitingForKey.
	///
	State State

	/// W names the V register that receives the key index when a
	/// pending key wait completes.
	///
	W byte

	/// rom is the pristine program image so Reset can restore the
	/// power-on state.
	///
	rom []byte

	/// history of recently executed instructions, nil unless the
	/// host enabled tracing.
	///
	history *History
}

/// LoadROM creates a new virtual machine with a program loaded at 0x200.
///
func LoadROM(program []byte) (*VM, error) {
	if len(program) > MemorySize-ProgramBase {
		return nil, ROMSizeError{Size: len(program)}
	}

	vm := &VM{
		Stack: make([]uint16, 0, StackDepth),
		rom:   append([]byte(nil), program...),
	}

	vm.Reset()

	return vm, nil
}

/// LoadFile creates a new virtual machine from a ROM file.
///
func LoadFile(file string) (*VM, error) {
	program, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return LoadROM(program)
}

/// Reset the virtual machine back to its power-on state.
///
func (vm *VM) Reset() {
	vm.Memory = [MemorySize]byte{}

	// font sprites at 0x000, program at 0x200
	copy(vm.Memory[:], fontSprites[:])
	copy(vm.Memory[ProgramBase:], vm.rom)

	// clear the framebuffer and key states
	vm.Screen.Clear()
	vm.Keys = [16]bool{}

	// reset registers and timer
	vm.PC = ProgramBase
	vm.I = 0
	vm.V = [16]byte{}
	vm.DT = 0

	// empty the call stack
	vm.Stack = vm.Stack[:0]

	// not waiting for a key
	vm.State = Running
	vm.W = 0
}

/// Tick delivers one delay timer decrement, floored at zero. The host
/// calls it once per rendered frame.
///
func (vm *VM) Tick() {
	if vm.DT > 0 {
		vm.DT--
	}
}

/// PressKey emulates a CHIP-8 key being pressed.
///
func (vm *VM) PressKey(key uint) {
	if key < 16 {
		vm.Keys[key] = true
	}
}

/// ReleaseKey emulates a CHIP-8 key being released. A release completes
/// a pending key wait: the released key index is written to the register
/// recorded by LD VX, K and execution resumes.
///
func (vm *VM) ReleaseKey(key uint) {
	if key < 16 {
		vm.Keys[key] = false

		if vm.State == WaitingForKey {
			vm.V[vm.W] = byte(key)
			vm.State = Running
		}
	}
}

/// SetTrace attaches an execution history ring to the machine. A nil
/// history disables tracing.
///
func (vm *VM) SetTrace(h *History) {
	vm.history = h
}

/// Trace returns the attached execution history, if any.
///
func (vm *VM) Trace() *History {
	return vm.history
}

/// Disassemble the instruction at addr.
///
func (vm *VM) Disassemble(addr uint16) string {
	if int(addr)+1 >= MemorySize {
		return ""
	}

	// fetch the instruction at this location
	word := uint16(vm.Memory[addr])<<8 | uint16(vm.Memory[addr+1])

	// end of program memory?
	if word == 0 {
		return fmt.Sprintf("%04X -", addr)
	}

	return fmt.Sprintf("%04X - %s", addr, Decode(word))
}
