package chip8

import "math/rand"

/// Run executes a bounded batch of instructions. It returns early when
/// the machine enters WaitingForKey or an instruction faults. The host
/// calls it once per clock tick.
///
func (vm *VM) Run(cycles int) error {
	for i := 0; i < cycles; i++ {
		if vm.State == WaitingForKey {
			return nil
		}

		if err := vm.Step(); err != nil {
			return err
		}
	}

	return nil
}

/// Step the virtual machine a single instruction. While waiting for a
/// key nothing is fetched or executed.
///
func (vm *VM) Step() error {
	if vm.State == WaitingForKey {
		return nil
	}

	pc := vm.PC

	// fetch and decode the next instruction
	word, err := vm.fetch()
	if err != nil {
		return err
	}

	op := Decode(word)

	if vm.history != nil {
		vm.history.Record(pc, op)
	}

	return vm.exec(op, pc)
}

/// Fetch the next big-endian instruction word and advance the program
/// counter past it.
///
func (vm *VM) fetch() (uint16, error) {
	if int(vm.PC)+1 >= MemorySize {
		return 0, MemoryError{Addr: int(vm.PC), PC: vm.PC}
	}

	word := uint16(vm.Memory[vm.PC])<<8 | uint16(vm.Memory[vm.PC+1])
	vm.PC += 2

	return word, nil
}

/// Execute a decoded instruction. pc is the address the instruction was
/// fetched from, used in fault diagnostics.
///
func (vm *VM) exec(op Opcode, pc uint16) error {
	switch op.Kind {
	case Cls:
		vm.Screen.Clear()
	case Ret:
		return vm.ret(pc)
	case Jump:
		vm.PC = op.NNN
	case Call:
		return vm.call(op.NNN, pc)
	case SkipEq:
		vm.skipIf(vm.V[op.X] == op.NN)
	case SkipNe:
		vm.skipIf(vm.V[op.X] != op.NN)
	case SkipEqReg:
		vm.skipIf(vm.V[op.X] == vm.V[op.Y])
	case Load:
		vm.V[op.X] = op.NN
	case Add:
		vm.V[op.X] += op.NN
	case LoadReg:
		vm.V[op.X] = vm.V[op.Y]
	case Or:
		vm.or(op.X, op.Y)
	case And:
		vm.and(op.X, op.Y)
	case Xor:
		vm.xor(op.X, op.Y)
	case AddReg:
		vm.addXY(op.X, op.Y)
	case Sub:
		vm.subXY(op.X, op.Y)
	case Shr:
		vm.shr(op.X, op.Y)
	case SubRev:
		vm.subYX(op.X, op.Y)
	case Shl:
		vm.shl(op.X, op.Y)
	case SkipNeReg:
		vm.skipIf(vm.V[op.X] != vm.V[op.Y])
	case LoadI:
		vm.I = op.NNN
	case JumpV0:
		vm.PC = op.NNN + uint16(vm.V[0])
	case Rand:
		vm.V[op.X] = byte(rand.Int31()) & op.NN
	case Draw:
		return vm.drw(op.X, op.Y, op.N, pc)
	case SkipKey:
		vm.skipIf(vm.Keys[vm.V[op.X]&0xF])
	case SkipNoKey:
		vm.skipIf(!vm.Keys[vm.V[op.X]&0xF])
	case LoadTimer:
		vm.V[op.X] = vm.DT
	case WaitKey:
		vm.waitKey(op.X)
	case SetTimer:
		vm.DT = vm.V[op.X]
	case SetSound:
		// sound is unimplemented, the opcode is accepted as a no-op
	case AddI:
		vm.I += uint16(vm.V[op.X])
	case LoadFont:
		vm.I = uint16(vm.V[op.X]) * FontSpriteSize
	case StoreBCD:
		return vm.storeBCD(op.X, pc)
	case StoreRegs:
		return vm.storeRegs(op.X, pc)
	case LoadRegs:
		return vm.loadRegs(op.X, pc)
	default:
		return UnknownOpcodeError{Word: op.Word, PC: pc}
	}

	return nil
}

/// Skip the next instruction when the condition holds.
///
func (vm *VM) skipIf(cond bool) {
	if cond {
		vm.PC += 2
	}
}

/// Call a subroutine, pushing the return address.
///
func (vm *VM) call(address, pc uint16) error {
	if len(vm.Stack) == StackDepth {
		return StackOverflowError{PC: pc}
	}

	vm.Stack = append(vm.Stack, vm.PC)
	vm.PC = address

	return nil
}

/// Return from a subroutine, popping the return address.
///
func (vm *VM) ret(pc uint16) error {
	if len(vm.Stack) == 0 {
		return StackUnderflowError{PC: pc}
	}

	vm.PC = vm.Stack[len(vm.Stack)-1]
	vm.Stack = vm.Stack[:len(vm.Stack)-1]

	return nil
}

/// Or vx with vy into vx. The flag register is cleared as a side effect.
///
func (vm *VM) or(x, y byte) {
	vm.V[x] |= vm.V[y]
	vm.V[0xF] = 0
}

/// And vx with vy into vx. The flag register is cleared as a side effect.
///
func (vm *VM) and(x, y byte) {
	vm.V[x] &= vm.V[y]
	vm.V[0xF] = 0
}

/// Xor vx with vy into vx. The flag register is cleared as a side effect.
///
func (vm *VM) xor(x, y byte) {
	vm.V[x] ^= vm.V[y]
	vm.V[0xF] = 0
}

/// Add vy to vx, VF = 1 on carry out of 8 bits.
///
func (vm *VM) addXY(x, y byte) {
	carry := int(vm.V[x])+int(vm.V[y]) > 0xFF

	vm.V[x] += vm.V[y]

	if carry {
		vm.V[0xF] = 1
	} else {
		vm.V[0xF] = 0
	}
}

/// Subtract vy from vx, VF = 1 when no borrow occurred.
///
func (vm *VM) subXY(x, y byte) {
	borrow := vm.V[y] > vm.V[x]

	vm.V[x] -= vm.V[y]

	if borrow {
		vm.V[0xF] = 0
	} else {
		vm.V[0xF] = 1
	}
}

/// Subtract vx from vy into vx, VF = 1 when no borrow occurred.
///
func (vm *VM) subYX(x, y byte) {
	borrow := vm.V[x] > vm.V[y]

	vm.V[x] = vm.V[y] - vm.V[x]

	if borrow {
		vm.V[0xF] = 0
	} else {
		vm.V[0xF] = 1
	}
}

/// Shift vy right 1 bit into vx, VF = bit 0 of vy before the shift.
///
func (vm *VM) shr(x, y byte) {
	bit := vm.V[y] & 1

	vm.V[x] = vm.V[y] >> 1
	vm.V[0xF] = bit
}

/// Shift vy left 1 bit into vx, VF = bit 7 of vy before the shift.
///
func (vm *VM) shl(x, y byte) {
	bit := vm.V[y] >> 7

	vm.V[x] = vm.V[y] << 1
	vm.V[0xF] = bit
}

/// Suspend execution until the host reports a key release; the released
/// key index lands in vx.
///
func (vm *VM) waitKey(x byte) {
	vm.State = WaitingForKey
	vm.W = x
}

/// Draw an n-byte sprite at I to the screen at vx, vy. The compositor
/// only ever lights pixels, so the collision flag always clears.
///
func (vm *VM) drw(x, y, n byte, pc uint16) error {
	lo := int(vm.I)
	hi := lo + int(n)

	if hi > MemorySize {
		return MemoryError{Addr: hi - 1, PC: pc}
	}

	vm.V[0xF] = 0
	vm.Screen.Draw(vm.Memory[lo:hi], vm.V[x], vm.V[y])

	return nil
}

/// Store the BCD digits of vx at I, I+1, I+2.
///
func (vm *VM) storeBCD(x byte, pc uint16) error {
	if int(vm.I)+2 >= MemorySize {
		return MemoryError{Addr: int(vm.I) + 2, PC: pc}
	}

	vm.Memory[vm.I+0] = vm.V[x] / 100
	vm.Memory[vm.I+1] = vm.V[x] / 10 % 10
	vm.Memory[vm.I+2] = vm.V[x] % 10

	return nil
}

/// Store registers v0..vx to memory at I. I is left just past the last
/// register written.
///
func (vm *VM) storeRegs(x byte, pc uint16) error {
	if int(vm.I)+int(x) >= MemorySize {
		return MemoryError{Addr: int(vm.I) + int(x), PC: pc}
	}

	copy(vm.Memory[vm.I:], vm.V[:x+1])
	vm.I += uint16(x) + 1

	return nil
}

/// Load registers v0..vx from memory at I. I is left just past the last
/// register read.
///
func (vm *VM) loadRegs(x byte, pc uint16) error {
	if int(vm.I)+int(x) >= MemorySize {
		return MemoryError{Addr: int(vm.I) + int(x), PC: pc}
	}

	copy(vm.V[:x+1], vm.Memory[vm.I:])
	vm.I += uint16(x) + 1

	return nil
}
