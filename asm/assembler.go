// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/littleman/isa"
)

// Assembler is a three pass assembler for the Little Man Computer.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, a label bound twice is an error.

	Opcode []Opcode       // List of generated opcodes, one per slot.
	Label  map[string]int // Map of labels to slot indexes.
}

// Parse tokenizes and assembles an input stream.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	tokens, err := asm.Tokenize(input)
	if err != nil {
		return
	}

	prog, err = asm.Assemble(tokens)
	return
}

// Assemble resolves labels and encodes the instructions of a token
// stream. Label tokens contribute no words.
func (asm *Assembler) Assemble(tokens []Token) (prog *Program, err error) {
	var op *Opcode

	defer func() {
		if err != nil && op != nil {
			err = &ErrAssembly{LineNo: op.LineNo, Slot: op.Slot, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)

	// Associate each instruction with the label immediately before it.
	var last *Token
	for n := range tokens {
		tok := &tokens[n]
		if tok.Kind == TOKEN_INSTRUCTION {
			opcode := Opcode{
				LineNo:      tok.LineNo,
				Slot:        len(asm.Opcode),
				Instruction: tok.Instruction,
			}
			if last != nil && last.Kind == TOKEN_LABEL {
				opcode.Label = last.Label
			}
			asm.Opcode = append(asm.Opcode, opcode)
		}
		last = tok
	}

	// Build the symbol table.
	for n := range asm.Opcode {
		op = &asm.Opcode[n]
		if len(op.Label) == 0 {
			continue
		}
		if _, ok := asm.Label[op.Label]; ok && asm.Strict {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[op.Label] = op.Slot
	}

	// Encode.
	for n := range asm.Opcode {
		op = &asm.Opcode[n]
		op.Word, err = asm.encode(op.Instruction)
		if err != nil {
			return
		}
		if asm.Verbose {
			log.Printf("%02d: %03d %v", op.Slot, op.Word, op.Instruction)
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Label:   maps.Clone(asm.Label),
	}

	return
}

// encode encodes a single instruction against the symbol table.
func (asm *Assembler) encode(in isa.Instruction) (word isa.Word, err error) {
	slot := int(in.Slot)
	if in.Op.IsBranch() {
		var ok bool
		slot, ok = asm.Label[in.Label]
		if !ok {
			err = ErrLabelDoesNotExist(in.Label)
			return
		}
	}

	return isa.MakeWord(in.Op, slot)
}
