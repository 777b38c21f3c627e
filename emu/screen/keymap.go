package screen

import (
	"github.com/faiface/pixel/pixelgl"

	"gochip8/emu/chip8"
)

// keyMap lays the COSMAC keypad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// onto the left-hand block of a QWERTY keyboard:
//
//	1 2 3 4
//	Q W E R
//	A S D F
//	Z X C V
//
// Indexed by hex key value.
var keyMap = [chip8.NumKeys]pixelgl.Button{
	0x0: pixelgl.KeyX,
	0x1: pixelgl.Key1,
	0x2: pixelgl.Key2,
	0x3: pixelgl.Key3,
	0x4: pixelgl.KeyQ,
	0x5: pixelgl.KeyW,
	0x6: pixelgl.KeyE,
	0x7: pixelgl.KeyA,
	0x8: pixelgl.KeyS,
	0x9: pixelgl.KeyD,
	0xA: pixelgl.KeyZ,
	0xB: pixelgl.KeyC,
	0xC: pixelgl.Key4,
	0xD: pixelgl.KeyR,
	0xE: pixelgl.KeyF,
	0xF: pixelgl.KeyV,
}
