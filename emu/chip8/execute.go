package chip8

const flagReg = 0xF

// execute applies one decoded instruction to the machine state. PC has
// already been advanced past the instruction, so the return address for
// CALL and the fall-through for skips are simply the current PC.
func (m *Machine) execute(in Instruction) error {
	switch in.Op {
	case OpCls:
		m.Display.Clear()

	case OpRet:
		addr, err := m.pop()
		if err != nil {
			return err
		}
		m.PC = addr

	case OpJp:
		m.PC = in.NNN

	case OpCall:
		if err := m.push(m.PC); err != nil {
			return err
		}
		m.PC = in.NNN

	case OpSeNN:
		if m.V[in.X] == in.NN {
			m.skip()
		}

	case OpSneNN:
		if m.V[in.X] != in.NN {
			m.skip()
		}

	case OpSeVy:
		if m.V[in.X] == m.V[in.Y] {
			m.skip()
		}

	case OpLdNN:
		m.V[in.X] = in.NN

	case OpAddNN:
		// no carry flag on the immediate form
		m.V[in.X] += in.NN

	case OpLdVy:
		m.V[in.X] = m.V[in.Y]

	case OpOr:
		m.V[in.X] |= m.V[in.Y]
		if m.quirks.VFReset {
			m.V[flagReg] = 0
		}

	case OpAnd:
		m.V[in.X] &= m.V[in.Y]
		if m.quirks.VFReset {
			m.V[flagReg] = 0
		}

	case OpXor:
		m.V[in.X] ^= m.V[in.Y]
		if m.quirks.VFReset {
			m.V[flagReg] = 0
		}

	case OpAddVy:
		sum := uint16(m.V[in.X]) + uint16(m.V[in.Y])
		m.V[in.X] = uint8(sum)
		if sum > 0xFF {
			m.V[flagReg] = 1
		} else {
			m.V[flagReg] = 0
		}

	case OpSubVy:
		vx, vy := m.V[in.X], m.V[in.Y]
		m.V[in.X] = vx - vy
		if vx >= vy {
			m.V[flagReg] = 1
		} else {
			m.V[flagReg] = 0
		}

	case OpShr:
		src := m.V[in.X]
		if m.quirks.ShiftUsesVY {
			src = m.V[in.Y]
		}
		m.V[in.X] = src >> 1
		m.V[flagReg] = src & 0x01

	case OpSubn:
		vx, vy := m.V[in.X], m.V[in.Y]
		m.V[in.X] = vy - vx
		if vy >= vx {
			m.V[flagReg] = 1
		} else {
			m.V[flagReg] = 0
		}

	case OpShl:
		src := m.V[in.X]
		if m.quirks.ShiftUsesVY {
			src = m.V[in.Y]
		}
		m.V[in.X] = src << 1
		m.V[flagReg] = src >> 7

	case OpSneVy:
		if m.V[in.X] != m.V[in.Y] {
			m.skip()
		}

	case OpLdI:
		m.I = in.NNN

	case OpJpV0:
		offset := m.V[0]
		if m.quirks.JumpUsesVX {
			offset = m.V[in.X]
		}
		m.PC = in.NNN + uint16(offset)

	case OpRnd:
		m.V[in.X] = uint8(m.rng.Intn(256)) & in.NN

	case OpDrw:
		sprite, err := m.Memory.ReadRange(m.I, uint16(in.N))
		if err != nil {
			return err
		}
		collided := m.Display.DrawSprite(m.V[in.X], m.V[in.Y], sprite, m.quirks.ClipSprites)
		if collided {
			m.V[flagReg] = 1
		} else {
			m.V[flagReg] = 0
		}

	case OpSkp:
		if m.Keypad.IsPressed(m.V[in.X] & 0x0F) {
			m.skip()
		}

	case OpSknp:
		if !m.Keypad.IsPressed(m.V[in.X] & 0x0F) {
			m.skip()
		}

	case OpLdDT:
		m.V[in.X] = m.Timers.Delay

	case OpLdK:
		m.awaitingKey = true
		m.awaitReg = in.X

	case OpStDT:
		m.Timers.Delay = m.V[in.X]

	case OpStST:
		m.Timers.Sound = m.V[in.X]

	case OpAddI:
		m.I += uint16(m.V[in.X])

	case OpLdF:
		m.I = FontOffset + uint16(m.V[in.X]&0x0F)*FontSpriteSize

	case OpBCD:
		vx := m.V[in.X]
		digits := [3]uint8{vx / 100, vx / 10 % 10, vx % 10}
		for i, d := range digits {
			if err := m.Memory.Write(m.I+uint16(i), d); err != nil {
				return err
			}
		}

	case OpStV:
		for i := uint16(0); i <= uint16(in.X); i++ {
			if err := m.Memory.Write(m.I+i, m.V[i]); err != nil {
				return err
			}
		}
		if m.quirks.LoadStoreIncrementsI {
			m.I += uint16(in.X) + 1
		}

	case OpLdV:
		for i := uint16(0); i <= uint16(in.X); i++ {
			b, err := m.Memory.Read(m.I + i)
			if err != nil {
				return err
			}
			m.V[i] = b
		}
		if m.quirks.LoadStoreIncrementsI {
			m.I += uint16(in.X) + 1
		}

	default:
		// Decode rejects anything it cannot name, so this is only
		// reachable through a hand-built Instruction.
		return UnknownOpcodeError{Opcode: in.Raw}
	}
	return nil
}
