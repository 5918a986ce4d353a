package main

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys.
	///
	KeyMap = map[sdl.Scancode]uint{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

/// ProcessEvents from SDL and map keys to the CHIP-8 VM.
///
func ProcessEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN {
				if !keyDown(ev.Keysym.Scancode) {
					return false
				}
			} else if ev.Type == sdl.KEYUP {
				if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
					VM.ReleaseKey(key)
				}
			}
		}
	}

	return true
}

/// keyDown handles a single key press, either a CHIP-8 key or an
/// emulator control. It returns false when the user quit.
///
func keyDown(code sdl.Scancode) bool {
	if key, ok := KeyMap[code]; ok {
		VM.PressKey(key)

		return true
	}

	switch code {
	case sdl.SCANCODE_ESCAPE:
		return false
	case sdl.SCANCODE_BACKSPACE:
		Logger.Info("Reset")
		VM.Reset()
	case sdl.SCANCODE_F3:
		if rom := RomDialog(); rom != "" {
			if err := Boot(rom); err != nil {
				Logger.Error("Failed to load ROM",
					log.String("file", rom),
					log.String("error", err.Error()))
			}
		}
	case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
		Paused = !Paused
	case sdl.SCANCODE_F6, sdl.SCANCODE_F10:
		if Paused {
			StepOnce()
		}
	}

	return true
}

/// StepOnce executes a single instruction while paused, logging the
/// instruction about to run.
///
func StepOnce() {
	Logger.Info("Step", log.String("instruction", VM.Disassemble(VM.PC)))

	if err := VM.Step(); err != nil {
		Fault(err)
	}
}
