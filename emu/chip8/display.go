package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the 64x32 monochrome framebuffer. Sprite drawing is the only
// mutator besides Clear; pixels are composed with XOR and a draw reports
// whether it erased any previously lit pixel.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// NewDisplay returns a cleared framebuffer.
func NewDisplay() *Display {
	return &Display{}
}

// Clear unsets every pixel.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]bool{}
}

// Pixel reports whether the pixel at (x, y) is lit. Coordinates are taken
// modulo the display size.
func (d *Display) Pixel(x, y int) bool {
	x %= DisplayWidth
	y %= DisplayHeight
	return d.pixels[y*DisplayWidth+x]
}

// DrawSprite XOR-draws an 8-pixel-wide sprite of len(sprite) rows with its
// top-left corner at (x mod 64, y mod 32). It returns true if any pixel
// flipped from lit to unlit.
//
// Pixels that run past the right or bottom edge wrap around to the
// opposite edge, matching the reference interpreter this emulator follows.
// With clip enabled they are discarded instead, for ROMs written against
// clipping interpreters.
func (d *Display) DrawSprite(x, y uint8, sprite []uint8, clip bool) bool {
	startX := int(x) % DisplayWidth
	startY := int(y) % DisplayHeight
	collided := false

	for row, line := range sprite {
		py := startY + row
		if py >= DisplayHeight {
			if clip {
				break
			}
			py %= DisplayHeight
		}
		for bit := 0; bit < 8; bit++ {
			if line&(0x80>>bit) == 0 {
				continue
			}
			px := startX + bit
			if px >= DisplayWidth {
				if clip {
					continue
				}
				px %= DisplayWidth
			}
			idx := py*DisplayWidth + px
			if d.pixels[idx] {
				collided = true
			}
			d.pixels[idx] = !d.pixels[idx]
		}
	}
	return collided
}

// Snapshot returns a row-major copy of the framebuffer for presentation.
// The copy is independent of the live buffer.
func (d *Display) Snapshot() [][]bool {
	grid := make([][]bool, DisplayHeight)
	for y := range grid {
		row := make([]bool, DisplayWidth)
		copy(row, d.pixels[y*DisplayWidth:(y+1)*DisplayWidth])
		grid[y] = row
	}
	return grid
}
