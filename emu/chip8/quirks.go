package chip8

// Quirks are the documented points where historical interpreters disagree.
// Community test ROMs probe every one of them, so each is a switch rather
// than a fixed choice.
type Quirks struct {
	// VFReset makes the logic instructions 8xy1/8xy2/8xy3 zero VF as a
	// side effect, the way the COSMAC VIP interpreter did.
	VFReset bool

	// ShiftUsesVY makes 8xy6/8xyE shift Vy into Vx instead of shifting
	// Vx in place.
	ShiftUsesVY bool

	// LoadStoreIncrementsI leaves I pointing past the transferred block
	// (I = I + x + 1) after Fx55/Fx65.
	LoadStoreIncrementsI bool

	// JumpUsesVX makes Bnnn add Vx (x = high nibble of nnn) instead of
	// V0 to the jump target.
	JumpUsesVX bool

	// ClipSprites makes DRW discard pixels past the display edges
	// instead of wrapping them to the opposite edge.
	ClipSprites bool
}

// DefaultQuirks is the configuration most test-suite ROMs expect of a
// plain CHIP-8 interpreter.
func DefaultQuirks() Quirks {
	return Quirks{
		VFReset: true,
	}
}
