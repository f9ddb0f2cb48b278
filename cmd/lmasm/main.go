// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ezrec/littleman/asm"
	lmio "github.com/ezrec/littleman/io"
	"github.com/ezrec/littleman/translate"
)

func main() {
	app := &cli.App{
		Name:      "lmasm",
		Usage:     "Little Man Computer assembler",
		ArgsUsage: "<source>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "load image to write",
				Value:   "a.out",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "reject labels that are bound more than once",
			},
			&cli.BoolFlag{
				Name:  "listing",
				Usage: "print the slot, line and word of every instruction",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose mode",
			},
		},
		Action: doAssemble,
	}

	if err := app.Run(os.Args); err != nil {
		translate.Fprintf(os.Stderr, "%v: %v\n", app.Name, err)
		os.Exit(1)
	}
}

func doAssemble(context *cli.Context) error {
	if context.NArg() != 1 {
		return fmt.Errorf("expected exactly one source file, got %d", context.NArg())
	}
	source := context.Args().First()

	inf, err := os.Open(source)
	if err != nil {
		return err
	}
	defer inf.Close()

	assembler := &asm.Assembler{
		Verbose: context.Bool("verbose"),
		Strict:  context.Bool("strict"),
	}
	prog, err := assembler.Parse(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", source, err)
	}

	if context.Bool("listing") {
		for _, op := range prog.Opcodes {
			label := ""
			if len(op.Label) != 0 {
				label = string(asm.LABEL_CHAR) + op.Label
			}
			fmt.Printf("%02d %4d  %03d  %-10v %v\n", op.Slot, op.LineNo, op.Word, label, op.Instruction)
		}
	}

	output := context.String("output")
	ouf, err := os.Create(output)
	if err != nil {
		return err
	}

	err = lmio.WriteWords(ouf, prog.Words())
	if err != nil {
		ouf.Close()
		return fmt.Errorf("%v: %w", output, err)
	}

	return ouf.Close()
}
