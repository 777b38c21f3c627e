package chip8

// NumKeys is the number of keys on the hexadecimal keypad.
const NumKeys = 16

// Keypad is the 16-key state vector. The input collaborator writes it via
// SetKey; the executor only reads it (SKP, SKNP and the key-wait
// instruction).
type Keypad struct {
	keys [NumKeys]bool
}

// SetKey records whether the key with the given hex index is down.
// Indexes outside 0x0-0xF are ignored.
func (k *Keypad) SetKey(idx uint8, pressed bool) {
	if idx >= NumKeys {
		return
	}
	k.keys[idx] = pressed
}

// IsPressed reports whether the key with the given hex index is down.
func (k *Keypad) IsPressed(idx uint8) bool {
	if idx >= NumKeys {
		return false
	}
	return k.keys[idx]
}

// AnyPressed returns the lowest-numbered key currently down, if any.
func (k *Keypad) AnyPressed() (uint8, bool) {
	for i, down := range k.keys {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}
