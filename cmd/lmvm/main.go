// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ezrec/littleman/asm"
	"github.com/ezrec/littleman/emulator"
	lmio "github.com/ezrec/littleman/io"
	"github.com/ezrec/littleman/translate"
)

func main() {
	app := &cli.App{
		Name:      "lmvm",
		Usage:     "Little Man Computer virtual machine",
		ArgsUsage: "<image>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "offset",
				Usage: "first mailbox of the load image",
				Value: 0,
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input values, as an expression such as \"[7, -3]\" or \"range(5)\"",
			},
			&cli.StringFlag{
				Name:  "tape",
				Usage: "file of input values, '-' for stdin",
			},
			&cli.BoolFlag{
				Name:    "assemble",
				Aliases: []string{"c"},
				Usage:   "the argument is source text to assemble first",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print the machine state on exit",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose mode",
			},
		},
		Action: doRun,
	}

	if err := app.Run(os.Args); err != nil {
		translate.Fprintf(os.Stderr, "%v: %v\n", app.Name, err)
		os.Exit(1)
	}
}

func doRun(context *cli.Context) (err error) {
	if context.NArg() != 1 {
		return fmt.Errorf("expected exactly one program file, got %d", context.NArg())
	}
	path := context.Args().First()

	emu := emulator.NewEmulator()
	emu.Verbose = context.Bool("verbose")
	emu.Offset = context.Int("offset")
	emu.Tape.Output = os.Stdout

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if context.Bool("assemble") {
		assembler := &asm.Assembler{Verbose: emu.Verbose}
		var prog *asm.Program
		prog, err = assembler.Parse(inf)
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
		emu.SetProgram(prog)
	} else {
		emu.Program = nil
		emu.Image, err = lmio.ReadWords(inf)
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
	}

	emu.Input, err = readInput(context)
	if err != nil {
		return
	}

	err = emu.Reset()
	if err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}

	if context.Bool("dump") {
		defer func() {
			fmt.Fprint(os.Stderr, emu.Machine.String())
		}()
	}

	err = emu.Run()
	if err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}

	return
}

// readInput collects the input values of --input and --tape, in that order.
// Nil means no input was given.
func readInput(context *cli.Context) (values []int16, err error) {
	if context.IsSet("input") {
		values, err = lmio.ParseValues(context.String("input"))
		if err != nil {
			return
		}
		if values == nil {
			values = []int16{}
		}
	}

	if !context.IsSet("tape") {
		return
	}

	tape := &lmio.Tape{}
	name := context.String("tape")
	if name == "-" {
		tape.Input = os.Stdin
	} else {
		var inf *os.File
		inf, err = os.Open(name)
		if err != nil {
			return
		}
		defer inf.Close()
		tape.Input = inf
	}

	more, err := tape.Values()
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}
	if context.Bool("verbose") {
		log.Printf("lmvm: %d values from %v", len(more), name)
	}

	values = append(values, more...)
	if values == nil {
		values = []int16{}
	}

	return
}
