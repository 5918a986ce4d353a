package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/retroshade/chip8/chip8"
)

/// Refresh redraws the CHIP-8 framebuffer into the window.
///
func Refresh() {
	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	// draw all the lit pixels, scaled up
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if VM.Screen.Pixel(x, y) {
				Renderer.FillRect(&sdl.Rect{
					X: int32(x * Scale),
					Y: int32(y * Scale),
					W: int32(Scale),
					H: int32(Scale),
				})
			}
		}
	}

	// show the new frame
	Renderer.Present()
}
