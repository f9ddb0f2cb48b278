package asm

import (
	"iter"

	"github.com/ezrec/littleman/isa"
)

// Opcode is one assembled slot with its source location.
type Opcode struct {
	LineNo      int             // Source line of the instruction.
	Slot        int             // Mailbox the word is assembled for.
	Instruction isa.Instruction // Source instruction.
	Label       string          // Label bound to this slot, if any.
	Word        isa.Word        // Encoded word.
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
	Label   map[string]int
}

// Debug finds the opcode assembled for a slot.
type Debug struct {
	*Opcode
}

// Debug returns the opcode for slot, relative to the load offset. The
// Opcode is nil if the slot holds no assembled instruction.
func (prog *Program) Debug(slot int) (dbg Debug) {
	if slot >= 0 && slot < len(prog.Opcodes) {
		dbg.Opcode = &prog.Opcodes[slot]
	}
	return
}

// LineNo returns the source line of slot, or 0 if unknown.
func (prog *Program) LineNo(slot int) int {
	dbg := prog.Debug(slot)
	if dbg.Opcode == nil {
		return 0
	}
	return dbg.LineNo
}

// Words returns the encoded words, in slot order.
func (prog *Program) Words() (words []isa.Word) {
	words = make([]isa.Word, 0, len(prog.Opcodes))
	for _, word := range prog.Codes() {
		words = append(words, word)
	}
	return
}

// Codes iterates the slots and their encoded words.
func (prog *Program) Codes() iter.Seq2[int, isa.Word] {
	return func(yield func(slot int, word isa.Word) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Slot, op.Word) {
				return
			}
		}
	}
}
