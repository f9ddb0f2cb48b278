// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs assembled programs on a Little Man Computer.
package emulator

import (
	"log"

	"github.com/ezrec/littleman/asm"
	"github.com/ezrec/littleman/io"
	"github.com/ezrec/littleman/isa"
	"github.com/ezrec/littleman/vm"
)

// Emulator state. Machine + program listing + tape.
type Emulator struct {
	Verbose     bool         // If set, enables verbose logging.
	*vm.Machine              // Reference to the machine simulation.
	Program     *asm.Program // Listing of the loaded program, if known.
	Image       []isa.Word   // Load image.
	Offset      int          // First mailbox of the load image.
	Input       []int16      // Input values, nil for none.

	Tape io.Tape // Tape IO for printed values.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &asm.Program{},
	}

	return
}

// SetProgram uses an assembled program as the load image.
func (emu *Emulator) SetProgram(prog *asm.Program) {
	emu.Program = prog
	emu.Image = prog.Words()
}

// Reset the emulator: a new machine is loaded with the image and input.
func (emu *Emulator) Reset() (err error) {
	machine, err := vm.New(vm.Config{
		Program: emu.Image,
		Offset:  emu.Offset,
		Input:   emu.Input,
		Output:  &emu.Tape,
		Verbose: emu.Verbose,
	})
	if err != nil {
		return
	}

	emu.Machine = machine

	if emu.Verbose {
		log.Printf("emulator: %d words at %d, %d inputs", len(emu.Image), emu.Offset, len(emu.Input))
	}

	return
}

// Ticks returns the total ticks since a reset, 0 before the first reset.
func (emu *Emulator) Ticks() int {
	if emu.Machine == nil {
		return 0
	}
	return emu.Machine.Ticks
}

// LineNo returns the source line number of the next instruction, 0 before
// the first reset.
func (emu *Emulator) LineNo() int {
	if emu.Machine == nil {
		return 0
	}
	return emu.lineNo(emu.Machine.Ic)
}

// lineNo maps a mailbox to a source line number.
func (emu *Emulator) lineNo(slot int) int {
	if emu.Program == nil {
		return 0
	}
	return emu.Program.LineNo(slot - emu.Offset)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Machine == nil {
		err = ErrNotReset
		return
	}

	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	slot := emu.Machine.Ic
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: emu.lineNo(slot), Slot: slot, Err: err}
		}
	}()

	done, err = emu.Machine.Step()
	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d ticks", emu.Ticks())
	}

	return
}
