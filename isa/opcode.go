package isa

import (
	"fmt"
)

const (
	MAILBOXES = 100 // Number of addressable mailboxes.
	SLOT_MAX  = 99  // Largest addressable mailbox.
)

// Op is the kind of an instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_STOP  = Op(0)  // stop
	OP_ADD   = Op(1)  // add
	OP_SUB   = Op(2)  // sub
	OP_STO   = Op(3)  // sto
	OP_STA   = Op(4)  // sta
	OP_LOAD  = Op(5)  // load
	OP_B     = Op(6)  // b
	OP_BZ    = Op(7)  // bz
	OP_BP    = Op(8)  // bp
	OP_READ  = Op(9)  // read
	OP_PRINT = Op(10) // print
)

// Word is one encoded instruction, or one mailbox of data.
type Word int16

const (
	WORD_STOP  = Word(0)
	WORD_READ  = Word(901)
	WORD_PRINT = Word(902)
)

// Base returns the encoding base of the op. Ops without a slot return
// their fixed word.
func (op Op) Base() Word {
	switch op {
	case OP_READ:
		return WORD_READ
	case OP_PRINT:
		return WORD_PRINT
	case OP_STOP:
		return WORD_STOP
	}

	return Word(op) * 100
}

// HasSlot returns true if the op addresses a mailbox.
func (op Op) HasSlot() bool {
	return op >= OP_ADD && op <= OP_BP
}

// IsBranch returns true for ops that take a label operand.
func (op Op) IsBranch() bool {
	return op == OP_B || op == OP_BZ || op == OP_BP
}

// Operands returns the number of operands in assembly syntax.
func (op Op) Operands() int {
	if op.HasSlot() {
		return 1
	}
	return 0
}

// opMap maps mnemonics to ops.
var opMap = map[string]Op{
	"stop":  OP_STOP,
	"add":   OP_ADD,
	"sub":   OP_SUB,
	"sto":   OP_STO,
	"sta":   OP_STA,
	"load":  OP_LOAD,
	"b":     OP_B,
	"bz":    OP_BZ,
	"bp":    OP_BP,
	"read":  OP_READ,
	"print": OP_PRINT,
}

// Lookup returns the op for a lower case mnemonic.
func Lookup(mnemonic string) (op Op, ok bool) {
	op, ok = opMap[mnemonic]
	return
}

// Instruction is a single source instruction. Slot is the mailbox operand
// of add, sub, sto, sta and load. Label is the branch target of b, bz and bp.
type Instruction struct {
	Op    Op
	Slot  uint8
	Label string
}

// String returns the assembly language representation of the instruction.
func (in Instruction) String() string {
	switch {
	case in.Op.IsBranch():
		return fmt.Sprintf("%v %v", in.Op, in.Label)
	case in.Op.HasSlot():
		return fmt.Sprintf("%v %v", in.Op, in.Slot)
	}
	return in.Op.String()
}

// MakeWord encodes an op and its slot. The slot is ignored for
// stop, read and print.
func MakeWord(op Op, slot int) (word Word, err error) {
	if !op.HasSlot() {
		word = op.Base()
		return
	}

	if slot < 0 || slot > SLOT_MAX {
		err = ErrIndexOutOfRange(slot)
		return
	}

	word = op.Base() + Word(slot)
	return
}

// Decode classifies the word by its 100-wide band.
func (word Word) Decode() (op Op, slot int, err error) {
	switch {
	case word == WORD_STOP:
		op = OP_STOP
	case word == WORD_READ:
		op = OP_READ
	case word == WORD_PRINT:
		op = OP_PRINT
	case word >= 100 && word < 900:
		op = Op(word / 100)
		slot = int(word % 100)
	default:
		err = ErrInvalidWord(word)
	}

	return
}

// String disassembles the word. Branch targets are shown as addresses.
func (word Word) String() string {
	op, slot, err := word.Decode()
	if err != nil {
		return "???"
	}
	if op.HasSlot() {
		return fmt.Sprintf("%v %v", op, slot)
	}
	return op.String()
}
