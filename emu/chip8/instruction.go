package chip8

import "fmt"

// Op identifies one operation of the base CHIP-8 instruction set.
type Op int

const (
	OpCls    Op = iota // 00E0 clear the display
	OpRet              // 00EE return from subroutine
	OpJp               // 1nnn jump to nnn
	OpCall             // 2nnn call subroutine at nnn
	OpSeNN             // 3xnn skip next if Vx == nn
	OpSneNN            // 4xnn skip next if Vx != nn
	OpSeVy             // 5xy0 skip next if Vx == Vy
	OpLdNN             // 6xnn Vx = nn
	OpAddNN            // 7xnn Vx += nn, no carry flag
	OpLdVy             // 8xy0 Vx = Vy
	OpOr               // 8xy1 Vx |= Vy
	OpAnd              // 8xy2 Vx &= Vy
	OpXor              // 8xy3 Vx ^= Vy
	OpAddVy            // 8xy4 Vx += Vy, VF = carry
	OpSubVy            // 8xy5 Vx -= Vy, VF = not borrow
	OpShr              // 8xy6 shift right, VF = shifted-out bit
	OpSubn             // 8xy7 Vx = Vy - Vx, VF = not borrow
	OpShl              // 8xyE shift left, VF = shifted-out bit
	OpSneVy            // 9xy0 skip next if Vx != Vy
	OpLdI              // Annn I = nnn
	OpJpV0             // Bnnn jump to nnn + V0
	OpRnd              // Cxnn Vx = random & nn
	OpDrw              // Dxyn draw n-byte sprite at (Vx, Vy), VF = collision
	OpSkp              // Ex9E skip next if key Vx down
	OpSknp             // ExA1 skip next if key Vx up
	OpLdDT             // Fx07 Vx = delay timer
	OpLdK              // Fx0A wait for a key press, Vx = key
	OpStDT             // Fx15 delay timer = Vx
	OpStST             // Fx18 sound timer = Vx
	OpAddI             // Fx1E I += Vx
	OpLdF              // Fx29 I = font sprite address for digit Vx
	OpBCD              // Fx33 memory[I..I+2] = BCD of Vx
	OpStV              // Fx55 memory[I..I+x] = V0..Vx
	OpLdV              // Fx65 V0..Vx = memory[I..I+x]
)

// Instruction is a fully decoded opcode: the operation plus every field
// the base instruction set uses, extracted once so execution never touches
// raw bits again.
type Instruction struct {
	Op  Op
	X   uint8  // register index, bits 8-11
	Y   uint8  // register index, bits 4-7
	N   uint8  // immediate nibble, bits 0-3
	NN  uint8  // immediate byte, bits 0-7
	NNN uint16 // immediate address, bits 0-11
	Raw uint16
}

// Decode splits a raw 16-bit opcode into an Instruction. Opcodes outside
// the base instruction set return an UnknownOpcodeError carrying the raw
// value.
func Decode(opcode uint16) (Instruction, error) {
	in := Instruction{
		X:   uint8(opcode >> 8 & 0x0F),
		Y:   uint8(opcode >> 4 & 0x0F),
		N:   uint8(opcode & 0x000F),
		NN:  uint8(opcode & 0x00FF),
		NNN: opcode & 0x0FFF,
		Raw: opcode,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			in.Op = OpCls
		case 0x00EE:
			in.Op = OpRet
		default:
			// 0nnn called a machine-code routine on the host 1802;
			// no software interpreter can honor it.
			return in, UnknownOpcodeError{Opcode: opcode}
		}
	case 0x1:
		in.Op = OpJp
	case 0x2:
		in.Op = OpCall
	case 0x3:
		in.Op = OpSeNN
	case 0x4:
		in.Op = OpSneNN
	case 0x5:
		if in.N != 0 {
			return in, UnknownOpcodeError{Opcode: opcode}
		}
		in.Op = OpSeVy
	case 0x6:
		in.Op = OpLdNN
	case 0x7:
		in.Op = OpAddNN
	case 0x8:
		switch in.N {
		case 0x0:
			in.Op = OpLdVy
		case 0x1:
			in.Op = OpOr
		case 0x2:
			in.Op = OpAnd
		case 0x3:
			in.Op = OpXor
		case 0x4:
			in.Op = OpAddVy
		case 0x5:
			in.Op = OpSubVy
		case 0x6:
			in.Op = OpShr
		case 0x7:
			in.Op = OpSubn
		case 0xE:
			in.Op = OpShl
		default:
			return in, UnknownOpcodeError{Opcode: opcode}
		}
	case 0x9:
		if in.N != 0 {
			return in, UnknownOpcodeError{Opcode: opcode}
		}
		in.Op = OpSneVy
	case 0xA:
		in.Op = OpLdI
	case 0xB:
		in.Op = OpJpV0
	case 0xC:
		in.Op = OpRnd
	case 0xD:
		in.Op = OpDrw
	case 0xE:
		switch in.NN {
		case 0x9E:
			in.Op = OpSkp
		case 0xA1:
			in.Op = OpSknp
		default:
			return in, UnknownOpcodeError{Opcode: opcode}
		}
	case 0xF:
		switch in.NN {
		case 0x07:
			in.Op = OpLdDT
		case 0x0A:
			in.Op = OpLdK
		case 0x15:
			in.Op = OpStDT
		case 0x18:
			in.Op = OpStST
		case 0x1E:
			in.Op = OpAddI
		case 0x29:
			in.Op = OpLdF
		case 0x33:
			in.Op = OpBCD
		case 0x55:
			in.Op = OpStV
		case 0x65:
			in.Op = OpLdV
		default:
			return in, UnknownOpcodeError{Opcode: opcode}
		}
	}
	return in, nil
}

// String renders the instruction in conventional CHIP-8 assembly form.
func (in Instruction) String() string {
	switch in.Op {
	case OpCls:
		return "CLS"
	case OpRet:
		return "RET"
	case OpJp:
		return fmt.Sprintf("JP %#03x", in.NNN)
	case OpCall:
		return fmt.Sprintf("CALL %#03x", in.NNN)
	case OpSeNN:
		return fmt.Sprintf("SE V%X, %#02x", in.X, in.NN)
	case OpSneNN:
		return fmt.Sprintf("SNE V%X, %#02x", in.X, in.NN)
	case OpSeVy:
		return fmt.Sprintf("SE V%X, V%X", in.X, in.Y)
	case OpLdNN:
		return fmt.Sprintf("LD V%X, %#02x", in.X, in.NN)
	case OpAddNN:
		return fmt.Sprintf("ADD V%X, %#02x", in.X, in.NN)
	case OpLdVy:
		return fmt.Sprintf("LD V%X, V%X", in.X, in.Y)
	case OpOr:
		return fmt.Sprintf("OR V%X, V%X", in.X, in.Y)
	case OpAnd:
		return fmt.Sprintf("AND V%X, V%X", in.X, in.Y)
	case OpXor:
		return fmt.Sprintf("XOR V%X, V%X", in.X, in.Y)
	case OpAddVy:
		return fmt.Sprintf("ADD V%X, V%X", in.X, in.Y)
	case OpSubVy:
		return fmt.Sprintf("SUB V%X, V%X", in.X, in.Y)
	case OpShr:
		return fmt.Sprintf("SHR V%X, V%X", in.X, in.Y)
	case OpSubn:
		return fmt.Sprintf("SUBN V%X, V%X", in.X, in.Y)
	case OpShl:
		return fmt.Sprintf("SHL V%X, V%X", in.X, in.Y)
	case OpSneVy:
		return fmt.Sprintf("SNE V%X, V%X", in.X, in.Y)
	case OpLdI:
		return fmt.Sprintf("LD I, %#03x", in.NNN)
	case OpJpV0:
		return fmt.Sprintf("JP V0, %#03x", in.NNN)
	case OpRnd:
		return fmt.Sprintf("RND V%X, %#02x", in.X, in.NN)
	case OpDrw:
		return fmt.Sprintf("DRW V%X, V%X, %d", in.X, in.Y, in.N)
	case OpSkp:
		return fmt.Sprintf("SKP V%X", in.X)
	case OpSknp:
		return fmt.Sprintf("SKNP V%X", in.X)
	case OpLdDT:
		return fmt.Sprintf("LD V%X, DT", in.X)
	case OpLdK:
		return fmt.Sprintf("LD V%X, K", in.X)
	case OpStDT:
		return fmt.Sprintf("LD DT, V%X", in.X)
	case OpStST:
		return fmt.Sprintf("LD ST, V%X", in.X)
	case OpAddI:
		return fmt.Sprintf("ADD I, V%X", in.X)
	case OpLdF:
		return fmt.Sprintf("LD F, V%X", in.X)
	case OpBCD:
		return fmt.Sprintf("LD B, V%X", in.X)
	case OpStV:
		return fmt.Sprintf("LD [I], V%X", in.X)
	case OpLdV:
		return fmt.Sprintf("LD V%X, [I]", in.X)
	}
	return fmt.Sprintf("DW %#04x", in.Raw)
}
