package main

import (
	"gochip8/cmd"

	"github.com/faiface/pixel/pixelgl"
)

func main() {
	// pixelgl needs to own the main thread; everything else runs inside it
	pixelgl.Run(cmd.Execute)
}
