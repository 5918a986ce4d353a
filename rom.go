package main

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"

	"github.com/retroshade/chip8/chip8"
)

/// Boot loads a ROM file into a fresh virtual machine and makes it the
/// running one.
///
func Boot(file string) error {
	vm, err := chip8.LoadFile(file)
	if err != nil {
		return err
	}

	if TraceDepth > 0 {
		vm.SetTrace(chip8.NewHistory(TraceDepth))
	}

	VM = vm

	Logger.Info("Loaded ROM", log.String("file", file))

	return nil
}

/// RomDialog asks the user to pick a ROM file. It returns an empty
/// string when the dialog is cancelled.
///
func RomDialog() string {
	file, err := dialog.File().Filter("CHIP-8 ROMs", "ch8", "rom").Load()
	if err != nil {
		return ""
	}

	return file
}
