package chip8

import "fmt"

/// Kind identifies a decoded CHIP-8 instruction.
///
type Kind int

const (
	/// Unknown is any bit pattern with no handler.
	///
	Unknown Kind = iota

	Cls       // 00E0 - clear the screen
	Ret       // 00EE - return from subroutine
	Jump      // 1NNN - jump to address
	Call      // 2NNN - call subroutine
	SkipEq    // 3XNN - skip if VX == NN
	SkipNe    // 4XNN - skip if VX != NN
	SkipEqReg // 5XY0 - skip if VX == VY
	Load      // 6XNN - VX = NN
	Add       // 7XNN - VX += NN, no flag
	LoadReg   // 8XY0 - VX = VY
	Or        // 8XY1 - VX |= VY, VF = 0
	And       // 8XY2 - VX &= VY, VF = 0
	Xor       // 8XY3 - VX ^= VY, VF = 0
	AddReg    // 8XY4 - VX += VY, VF = carry
	Sub       // 8XY5 - VX -= VY, VF = no borrow
	Shr       // 8XY6 - VX = VY >> 1, VF = bit 0 of VY
	SubRev    // 8XY7 - VX = VY - VX, VF = no borrow
	Shl       // 8XYE - VX = VY << 1, VF = bit 7 of VY
	SkipNeReg // 9XY0 - skip if VX != VY
	LoadI     // ANNN - I = NNN
	JumpV0    // BNNN - jump to NNN + V0
	Rand      // CXNN - VX = random & NN
	Draw      // DXYN - draw sprite at I to VX, VY
	SkipKey   // EX9E - skip if key VX pressed
	SkipNoKey // EXA1 - skip if key VX not pressed
	LoadTimer // FX07 - VX = DT
	WaitKey   // FX0A - wait for a key, VX = key
	SetTimer  // FX15 - DT = VX
	SetSound  // FX18 - sound timer, acknowledged without effect
	AddI      // FX1E - I += VX
	LoadFont  // FX29 - I = font sprite of VX
	StoreBCD  // FX33 - memory[I..I+2] = BCD of VX
	StoreRegs // FX55 - memory[I..I+X] = V0..VX
	LoadRegs  // FX65 - V0..VX = memory[I..I+X]
)

/// Opcode is a decoded instruction: the raw word, its kind, and the
/// operand fields sliced out of it.
///
type Opcode struct {
	/// Word is the raw, big-endian instruction.
	///
	Word uint16

	/// Kind selects the operation.
	///
	Kind Kind

	/// X and Y are the register selector nibbles.
	///
	X, Y byte

	/// N is the low nibble, NN the low byte, NNN the low 12 bits.
	///
	N   byte
	NN  byte
	NNN uint16
}

/// Decode an instruction word into a tagged Opcode. Bit patterns that
/// match no instruction at any dispatch level decode to Unknown.
///
func Decode(word uint16) Opcode {
	op := Opcode{
		Word: word,
		X:    byte(word >> 8 & 0xF),
		Y:    byte(word >> 4 & 0xF),
		N:    byte(word & 0xF),
		NN:   byte(word & 0xFF),
		NNN:  word & 0xFFF,
	}

	// dispatch on the top nibble, then the low nibble or byte
	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			op.Kind = Cls
		case 0x00EE:
			op.Kind = Ret
		}
	case 0x1:
		op.Kind = Jump
	case 0x2:
		op.Kind = Call
	case 0x3:
		op.Kind = SkipEq
	case 0x4:
		op.Kind = SkipNe
	case 0x5:
		if op.N == 0 {
			op.Kind = SkipEqReg
		}
	case 0x6:
		op.Kind = Load
	case 0x7:
		op.Kind = Add
	case 0x8:
		switch op.N {
		case 0x0:
			op.Kind = LoadReg
		case 0x1:
			op.Kind = Or
		case 0x2:
			op.Kind = And
		case 0x3:
			op.Kind = Xor
		case 0x4:
			op.Kind = AddReg
		case 0x5:
			op.Kind = Sub
		case 0x6:
			op.Kind = Shr
		case 0x7:
			op.Kind = SubRev
		case 0xE:
			op.Kind = Shl
		}
	case 0x9:
		if op.N == 0 {
			op.Kind = SkipNeReg
		}
	case 0xA:
		op.Kind = LoadI
	case 0xB:
		op.Kind = JumpV0
	case 0xC:
		op.Kind = Rand
	case 0xD:
		op.Kind = Draw
	case 0xE:
		switch op.NN {
		case 0x9E:
			op.Kind = SkipKey
		case 0xA1:
			op.Kind = SkipNoKey
		}
	case 0xF:
		switch op.NN {
		case 0x07:
			op.Kind = LoadTimer
		case 0x0A:
			op.Kind = WaitKey
		case 0x15:
			op.Kind = SetTimer
		case 0x18:
			op.Kind = SetSound
		case 0x1E:
			op.Kind = AddI
		case 0x29:
			op.Kind = LoadFont
		case 0x33:
			op.Kind = StoreBCD
		case 0x55:
			op.Kind = StoreRegs
		case 0x65:
			op.Kind = LoadRegs
		}
	}

	return op
}

/// String disassembles the opcode into its mnemonic form.
///
func (op Opcode) String() string {
	switch op.Kind {
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jump:
		return fmt.Sprintf("JP     #%03X", op.NNN)
	case Call:
		return fmt.Sprintf("CALL   #%03X", op.NNN)
	case SkipEq:
		return fmt.Sprintf("SE     V%X, #%02X", op.X, op.NN)
	case SkipNe:
		return fmt.Sprintf("SNE    V%X, #%02X", op.X, op.NN)
	case SkipEqReg:
		return fmt.Sprintf("SE     V%X, V%X", op.X, op.Y)
	case Load:
		return fmt.Sprintf("LD     V%X, #%02X", op.X, op.NN)
	case Add:
		return fmt.Sprintf("ADD    V%X, #%02X", op.X, op.NN)
	case LoadReg:
		return fmt.Sprintf("LD     V%X, V%X", op.X, op.Y)
	case Or:
		return fmt.Sprintf("OR     V%X, V%X", op.X, op.Y)
	case And:
		return fmt.Sprintf("AND    V%X, V%X", op.X, op.Y)
	case Xor:
		return fmt.Sprintf("XOR    V%X, V%X", op.X, op.Y)
	case AddReg:
		return fmt.Sprintf("ADD    V%X, V%X", op.X, op.Y)
	case Sub:
		return fmt.Sprintf("SUB    V%X, V%X", op.X, op.Y)
	case Shr:
		return fmt.Sprintf("SHR    V%X, V%X", op.X, op.Y)
	case SubRev:
		return fmt.Sprintf("SUBN   V%X, V%X", op.X, op.Y)
	case Shl:
		return fmt.Sprintf("SHL    V%X, V%X", op.X, op.Y)
	case SkipNeReg:
		return fmt.Sprintf("SNE    V%X, V%X", op.X, op.Y)
	case LoadI:
		return fmt.Sprintf("LD     I, #%03X", op.NNN)
	case JumpV0:
		return fmt.Sprintf("JP     V0, #%03X", op.NNN)
	case Rand:
		return fmt.Sprintf("RND    V%X, #%02X", op.X, op.NN)
	case Draw:
		return fmt.Sprintf("DRW    V%X, V%X, %d", op.X, op.Y, op.N)
	case SkipKey:
		return fmt.Sprintf("SKP    V%X", op.X)
	case SkipNoKey:
		return fmt.Sprintf("SKNP   V%X", op.X)
	case LoadTimer:
		return fmt.Sprintf("LD     V%X, DT", op.X)
	case WaitKey:
		return fmt.Sprintf("LD     V%X, K", op.X)
	case SetTimer:
		return fmt.Sprintf("LD     DT, V%X", op.X)
	case SetSound:
		return fmt.Sprintf("LD     ST, V%X", op.X)
	case AddI:
		return fmt.Sprintf("ADD    I, V%X", op.X)
	case LoadFont:
		return fmt.Sprintf("LD     F, V%X", op.X)
	case StoreBCD:
		return fmt.Sprintf("LD     B, V%X", op.X)
	case StoreRegs:
		return fmt.Sprintf("LD     [I], V%X", op.X)
	case LoadRegs:
		return fmt.Sprintf("LD     V%X, [I]", op.X)
	}

	return fmt.Sprintf("??     #%04X", op.Word)
}
