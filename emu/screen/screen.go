// Package screen owns the emulator window: it presents the 64x32
// framebuffer through pixel/pixelgl and maps the physical keyboard onto
// the hexadecimal keypad.
package screen

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"

	"gochip8/emu/chip8"
)

// Window wraps the pixelgl window together with the key map and the pixel
// scale used when presenting the framebuffer.
type Window struct {
	*pixelgl.Window

	scale    float64
	onColor  pixel.RGBA
	offColor pixel.RGBA
}

// New opens the emulator window. scale is the presented size of one
// CHIP-8 pixel in screen pixels.
func New(title string, scale int) (*Window, error) {
	if scale < 1 {
		scale = 1
	}
	cfg := pixelgl.WindowConfig{
		Title: title,
		Bounds: pixel.R(0, 0,
			float64(chip8.DisplayWidth*scale),
			float64(chip8.DisplayHeight*scale)),
		VSync: true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening window: %w", err)
	}

	return &Window{
		Window:   win,
		scale:    float64(scale),
		onColor:  pixel.RGB(0.56, 0.93, 0.56),
		offColor: pixel.RGB(0.05, 0.07, 0.05),
	}, nil
}

// Render presents one framebuffer snapshot and pumps the window's event
// loop. It must run on the pixelgl main thread, once per frame.
func (w *Window) Render(frame [][]bool) {
	w.Clear(w.offColor)

	imd := imdraw.New(nil)
	imd.Color = w.onColor
	for y, row := range frame {
		for x, lit := range row {
			if !lit {
				continue
			}
			// framebuffer y grows downward, window y grows upward
			wy := float64(chip8.DisplayHeight-1-y) * w.scale
			wx := float64(x) * w.scale
			imd.Push(pixel.V(wx, wy), pixel.V(wx+w.scale, wy+w.scale))
			imd.Rectangle(0)
		}
	}
	imd.Draw(w.Window)
	w.Update()
}

// ShouldClose reports whether the user asked to quit, via the window
// close button or Escape.
func (w *Window) ShouldClose() bool {
	return w.Closed() || w.JustPressed(pixelgl.KeyEscape)
}

// ForwardKeys copies the current state of every mapped physical key into
// the machine's keypad.
func (w *Window) ForwardKeys(pad *chip8.Keypad) {
	for idx, button := range keyMap {
		pad.SetKey(uint8(idx), w.Pressed(button))
	}
}
