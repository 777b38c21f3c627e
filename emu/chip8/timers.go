package chip8

// Timers holds the delay and sound timers. Both decrement toward zero at
// 60 Hz; the rate is the driver's responsibility, the core only exposes
// Tick.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Tick decrements both timers by one, flooring at zero. The driver calls
// it at 60 Hz regardless of the instruction rate.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

// SoundActive reports whether the tone should currently be audible.
func (t *Timers) SoundActive() bool {
	return t.Sound > 0
}
