package chip8

// MemorySize is the full CHIP-8 address space in bytes.
const MemorySize = 4096

// ProgramStart is the conventional load address for program images. The
// region below it belongs to the interpreter and holds the font sprites.
const ProgramStart = 0x200

// FontOffset is where the hexadecimal font sprites live in memory.
const FontOffset = 0x000

// FontSpriteSize is the size of a single hexadecimal glyph in bytes.
const FontSpriteSize = 5

// FontSet holds the canonical 8x5 glyphs for digits 0 through F.
var FontSet = [80]uint8{
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

// Memory is the flat 4 KiB address space. The font sprites are copied in
// at construction; nothing stops a program from overwriting them, matching
// the original interpreters.
type Memory struct {
	data [MemorySize]uint8
}

// NewMemory returns zeroed memory with the font sprites pre-loaded at
// FontOffset.
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.data[FontOffset:], FontSet[:])
	return m
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) (uint8, error) {
	if int(addr) >= MemorySize {
		return 0, MemoryFault{Addr: addr}
	}
	return m.data[addr], nil
}

// Write stores b at addr.
func (m *Memory) Write(addr uint16, b uint8) error {
	if int(addr) >= MemorySize {
		return MemoryFault{Addr: addr}
	}
	m.data[addr] = b
	return nil
}

// ReadRange returns a copy of count bytes starting at start.
func (m *Memory) ReadRange(start, count uint16) ([]uint8, error) {
	end := int(start) + int(count)
	if end > MemorySize {
		return nil, MemoryFault{Addr: uint16(end - 1)}
	}
	out := make([]uint8, count)
	copy(out, m.data[start:end])
	return out, nil
}

// LoadProgram copies a raw program image into memory starting at origin.
// Byte N of the image lands at origin+N. Images that run past the end of
// memory are rejected with ErrOutOfSpace.
func (m *Memory) LoadProgram(rom []uint8, origin uint16) error {
	if int(origin) >= MemorySize {
		return MemoryFault{Addr: origin}
	}
	if len(rom) > MemorySize-int(origin) {
		return ErrOutOfSpace
	}
	copy(m.data[origin:], rom)
	return nil
}
