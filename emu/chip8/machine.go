// Package chip8 implements the CHIP-8 interpreter core: memory, register
// file, timers, framebuffer, keypad and the fetch-decode-execute cycle.
// The package has no I/O; the driver owns the clock and presents the
// framebuffer.
package chip8

import (
	"math/rand"
	"time"
)

// StackDepth is the maximum call nesting of the interpreter.
const StackDepth = 16

// Machine aggregates the complete interpreter state. It is owned by a
// single goroutine; Step and Tick are the only entry points the driver
// needs per cycle.
type Machine struct {
	Memory  *Memory
	Display *Display
	Keypad  *Keypad
	Timers  *Timers

	V  [16]uint8
	I  uint16
	PC uint16
	SP uint8

	stack [StackDepth]uint16

	// key-wait state for Fx0A: while waiting, Step only polls the keypad
	awaitingKey bool
	awaitReg    uint8

	quirks Quirks
	origin uint16
	rng    *rand.Rand
}

// New returns a powered-on machine with the font loaded and PC at the
// default program origin.
func New(quirks Quirks) *Machine {
	return &Machine{
		Memory:  NewMemory(),
		Display: NewDisplay(),
		Keypad:  &Keypad{},
		Timers:  &Timers{},
		PC:      ProgramStart,
		quirks:  quirks,
		origin:  ProgramStart,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeedRandom re-seeds the RNG behind Cxnn. Tests use it to make the
// instruction deterministic.
func (m *Machine) SeedRandom(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
}

// Quirks returns the behavior switches the machine was built with.
func (m *Machine) Quirks() Quirks {
	return m.quirks
}

// LoadProgram places a program image at the default origin and points PC
// at it.
func (m *Machine) LoadProgram(rom []uint8) error {
	return m.LoadProgramAt(rom, ProgramStart)
}

// LoadProgramAt places a program image at a custom origin and points PC
// at it.
func (m *Machine) LoadProgramAt(rom []uint8, origin uint16) error {
	if err := m.Memory.LoadProgram(rom, origin); err != nil {
		return err
	}
	m.origin = origin
	m.PC = origin
	return nil
}

// Reset restores power-on state. Memory is left alone so the loaded
// program survives; everything else is cleared.
func (m *Machine) Reset() {
	m.V = [16]uint8{}
	m.I = 0
	m.PC = m.origin
	m.SP = 0
	m.stack = [StackDepth]uint16{}
	m.awaitingKey = false
	m.awaitReg = 0
	*m.Timers = Timers{}
	m.Display.Clear()
	*m.Keypad = Keypad{}
}

// AwaitingKey reports whether the machine is suspended on Fx0A.
func (m *Machine) AwaitingKey() bool {
	return m.awaitingKey
}

// SoundActive reports whether the audio collaborator should emit the tone.
func (m *Machine) SoundActive() bool {
	return m.Timers.SoundActive()
}

// Tick advances the delay and sound timers by one 60 Hz period. It is
// independent of Step so a machine suspended on Fx0A keeps counting down.
func (m *Machine) Tick() {
	m.Timers.Tick()
}

// Step runs exactly one fetch-decode-execute cycle. All faults come back
// as errors; PC has already moved past the faulting instruction — fetch
// faults included — so a driver that prefers to log and continue can just
// call Step again without re-faulting on the same address.
//
// While the machine awaits a key (Fx0A) Step only re-checks the keypad:
// it stores the pressed key and lifts the suspension, or returns having
// changed nothing.
func (m *Machine) Step() error {
	if m.awaitingKey {
		if key, ok := m.Keypad.AnyPressed(); ok {
			m.V[m.awaitReg] = key
			m.awaitingKey = false
		}
		return nil
	}

	hi, err := m.Memory.Read(m.PC)
	if err != nil {
		m.PC += 2
		return err
	}
	lo, err := m.Memory.Read(m.PC + 1)
	if err != nil {
		m.PC += 2
		return err
	}
	opcode := uint16(hi)<<8 | uint16(lo)

	// advance before executing so jumps and calls can overwrite PC
	m.PC += 2

	in, err := Decode(opcode)
	if err != nil {
		return err
	}
	return m.execute(in)
}

// skip advances PC past the next instruction (SE/SNE/SKP/SKNP).
func (m *Machine) skip() {
	m.PC += 2
}

func (m *Machine) push(addr uint16) error {
	if m.SP >= StackDepth {
		return ErrStackOverflow
	}
	m.stack[m.SP] = addr
	m.SP++
	return nil
}

func (m *Machine) pop() (uint16, error) {
	if m.SP == 0 {
		return 0, ErrStackUnderflow
	}
	m.SP--
	return m.stack[m.SP], nil
}
