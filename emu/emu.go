// Package emu is the driver: it loads the ROM, owns the interpreter core
// and its collaborators, and interleaves instruction execution, timer
// decrement and frame presentation on wall-clock tickers.
package emu

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"

	"gochip8/emu/audio"
	"gochip8/emu/chip8"
	"gochip8/emu/screen"
)

// timerRate is the fixed decrement rate of the delay and sound timers.
const timerRate = 60

// Config collects everything the driver needs to start.
type Config struct {
	ROMPath string
	ClockHz int     // instruction rate
	Scale   int     // window pixels per CHIP-8 pixel
	ToneHz  float64 // beep frequency
	// HaltOnFault stops emulation on the first core fault instead of
	// logging it and continuing with the next instruction.
	HaltOnFault bool
	Quirks      chip8.Quirks
	Logger      *log.Logger
}

// Emulator ties the interpreter core to the window and the speaker.
type Emulator struct {
	machine *chip8.Machine
	window  *screen.Window
	tone    *audio.Tone
	logger  *log.Logger

	clockHz     int
	haltOnFault bool
}

// New loads the ROM into a fresh machine and opens the window and the
// speaker. Must run on the pixelgl main thread.
func New(cfg Config) (*Emulator, error) {
	if cfg.ClockHz <= 0 {
		return nil, fmt.Errorf("instruction rate must be positive, got %d Hz", cfg.ClockHz)
	}

	rom, err := LoadROM(cfg.ROMPath)
	if err != nil {
		return nil, err
	}

	machine := chip8.New(cfg.Quirks)
	if err := machine.LoadProgram(rom); err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfg.ROMPath, err)
	}

	window, err := screen.New("gochip8 - "+cfg.ROMPath, cfg.Scale)
	if err != nil {
		return nil, err
	}

	tone, err := audio.New(cfg.ToneHz)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Debug("ROM loaded",
		log.String("path", cfg.ROMPath),
		log.Int("bytes", len(rom)),
		log.Int("clock_hz", cfg.ClockHz))

	return &Emulator{
		machine:     machine,
		window:      window,
		tone:        tone,
		logger:      cfg.Logger,
		clockHz:     cfg.ClockHz,
		haltOnFault: cfg.HaltOnFault,
	}, nil
}

// LoadROM reads a raw program image from disk. No header, no metadata:
// the file bytes map directly onto memory from the program origin.
func LoadROM(path string) ([]byte, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	if len(rom) == 0 {
		return nil, fmt.Errorf("ROM %s is empty", path)
	}
	return rom, nil
}

// Run drives the machine until the window closes or, with HaltOnFault, a
// core fault surfaces. Instructions run at the configured clock, timers
// and frames at 60 Hz.
func (e *Emulator) Run() error {
	cpu := time.NewTicker(time.Second / time.Duration(e.clockHz))
	defer cpu.Stop()
	timers := time.NewTicker(time.Second / timerRate)
	defer timers.Stop()
	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	for !e.window.ShouldClose() {
		select {
		case <-cpu.C:
			e.window.ForwardKeys(e.machine.Keypad)
			if err := e.machine.Step(); err != nil {
				if e.haltOnFault {
					return err
				}
				e.logFault(err)
			}

		case <-timers.C:
			e.machine.Tick()
			e.tone.SetActive(e.machine.SoundActive())

		case <-frame.C:
			e.window.Render(e.machine.Display.Snapshot())
		}
	}

	e.tone.SetActive(false)
	e.logger.Info("window closed, shutting down")
	return nil
}

// logFault reports a recoverable core fault. PC has already moved past
// the faulting instruction, so execution simply continues.
func (e *Emulator) logFault(err error) {
	var unknown chip8.UnknownOpcodeError
	if errors.As(err, &unknown) {
		e.logger.Error("skipping unknown opcode",
			log.Hex("opcode", unknown.Opcode),
			log.Hex("pc", e.machine.PC))
		return
	}
	var fault chip8.MemoryFault
	if errors.As(err, &fault) {
		e.logger.Error("memory fault",
			log.Hex("address", fault.Addr),
			log.Hex("pc", e.machine.PC))
		return
	}
	e.logger.Error("core fault", log.Err(err), log.Hex("pc", e.machine.PC))
}
