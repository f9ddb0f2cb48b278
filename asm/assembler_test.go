package asm

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/littleman/isa"
)

func parse(t *testing.T, asm *Assembler, program []string) (*Program, error) {
	t.Helper()
	return asm.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Empty(prog.Words())
}

func TestAssemblerEncode(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"stop",
		"add 1",
		"sub 2",
		"sto 3",
		"sta 4",
		"load 5",
		".here",
		"b here",
		"bz here",
		"bp here",
		"read",
		"print",
	}

	prog, err := parse(t, asm, program)
	assert.NoError(err)

	expected := []isa.Word{0, 101, 202, 303, 404, 505, 606, 706, 806, 901, 902}
	assert.Equal(expected, prog.Words())
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"b skip",    // 0
		".back",     // (label)
		"; note",    // (comment)
		"stop",      // 1
		".skip",     // (label)
		"",          // (blank)
		"bz back",   // 2
		".first",    // dropped: followed by a label
		".second",   // (label)
		"bp second", // 3
		".dangling",
	}

	prog, err := parse(t, asm, program)
	assert.NoError(err)

	expected := []Opcode{
		{1, 0, isa.Instruction{Op: isa.OP_B, Label: "skip"}, "", 602},
		{4, 1, isa.Instruction{Op: isa.OP_STOP}, "back", 0},
		{7, 2, isa.Instruction{Op: isa.OP_BZ, Label: "back"}, "skip", 701},
		{10, 3, isa.Instruction{Op: isa.OP_BP, Label: "second"}, "second", 803},
	}
	assert.Equal(expected, prog.Opcodes)
	assert.Equal(map[string]int{"back": 1, "skip": 2, "second": 3}, prog.Label)

	_, ok := prog.Label["first"]
	assert.False(ok)
	_, ok = prog.Label["dangling"]
	assert.False(ok)
}

func TestAssemblerLabelCase(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		prog  string
		words []isa.Word
	}){
		{".LOOP\nstop\nb loop\n", []isa.Word{0, 600}},
		{".Loop\nstop\nb LOOP\n", []isa.Word{0, 600}},
		{"stop\n.end\nBZ End\n", []isa.Word{0, 701}},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.prog))
		assert.NoError(err, entry.prog)
		if err != nil {
			continue
		}
		assert.Equal(entry.words, prog.Words(), entry.prog)
	}

	// Labels differing only in case are duplicates.
	asm := &Assembler{Strict: true}
	_, err := asm.Parse(strings.NewReader(".a\nstop\n.A\nstop\n"))
	assert.ErrorIs(err, ErrLabelDuplicate)
}

func TestAssemblerLabelMissing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"read",
		"b nowhere",
	}

	prog, err := parse(t, asm, program)
	assert.Nil(prog)
	assert.Equal(ErrLabelDoesNotExist("nowhere"), errors.Unwrap(err))

	var ea *ErrAssembly
	assert.True(errors.As(err, &ea))
	assert.Equal(2, ea.LineNo)
	assert.Equal(1, ea.Slot)
}

func TestAssemblerSlotOutOfRange(t *testing.T) {
	assert := assert.New(t)

	for _, slot := range []int{100, 199, 255} {
		asm := &Assembler{}
		_, err := parse(t, asm, []string{"stop", fmt.Sprintf("add %d", slot)})
		var eir ErrIndexOutOfRange
		assert.True(errors.As(err, &eir), slot)
		assert.Equal(ErrIndexOutOfRange(slot), eir)
	}
}

func TestAssemblerBranchOutOfRange(t *testing.T) {
	assert := assert.New(t)

	// 100 instructions, then a labelled one at slot 100.
	var program []string
	program = append(program, "b far")
	for range 99 {
		program = append(program, "stop")
	}
	program = append(program, ".far", "print")

	asm := &Assembler{}
	_, err := parse(t, asm, program)

	var eir ErrIndexOutOfRange
	assert.True(errors.As(err, &eir))
	assert.Equal(ErrIndexOutOfRange(100), eir)

	var ea *ErrAssembly
	assert.True(errors.As(err, &ea))
	assert.Equal(0, ea.Slot)

	// The same program without the branch assembles, at any length.
	program[0] = "stop"
	prog, err := parse(t, asm, program)
	assert.NoError(err)
	assert.Equal(101, len(prog.Words()))

	// A label at slot 99 is still reachable.
	program = append([]string{"b far"}, program[2:]...)
	prog, err = parse(t, asm, program)
	assert.NoError(err)
	assert.Equal(isa.Word(699), prog.Words()[0])
}

func TestAssemblerLabelDuplicate(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".again",
		"read",
		".again",
		"print",
		"b again",
	}

	asm := &Assembler{}
	prog, err := parse(t, asm, program)
	assert.NoError(err)
	assert.Equal([]isa.Word{901, 902, 601}, prog.Words())

	asm = &Assembler{Strict: true}
	_, err = parse(t, asm, program)
	assert.ErrorIs(err, ErrLabelDuplicate)
	var ea *ErrAssembly
	assert.True(errors.As(err, &ea))
	assert.Equal(4, ea.LineNo)
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := parse(t, asm, []string{".a", "stop", "b a"})
	assert.NoError(err)

	_, err = parse(t, asm, []string{"b a"})
	assert.Equal(ErrLabelDoesNotExist("a"), errors.Unwrap(err))
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := parse(t, asm, []string{"read", "jump 4"})

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(2, se.LineNo)
	assert.ErrorIs(err, ErrInvalidInstruction)
}

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := parse(t, asm, []string{"; header", "read", "", "print", "stop"})
	assert.NoError(err)

	assert.Equal(2, prog.LineNo(0))
	assert.Equal(4, prog.LineNo(1))
	assert.Equal(5, prog.LineNo(2))
	assert.Equal(0, prog.LineNo(3))
	assert.Equal(0, prog.LineNo(-1))

	dbg := prog.Debug(1)
	assert.NotNil(dbg.Opcode)
	assert.Equal(isa.OP_PRINT, dbg.Instruction.Op)

	dbg = prog.Debug(10)
	assert.Nil(dbg.Opcode)

	var slots []int
	for slot := range prog.Codes() {
		slots = append(slots, slot)
		if slot == 1 {
			break
		}
	}
	assert.Equal([]int{0, 1}, slots)
}
