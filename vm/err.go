package vm

import (
	"errors"

	"github.com/ezrec/littleman/isa"
	"github.com/ezrec/littleman/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrProgramDoesNotFit             = errors.New(f("program does not fit"))
	ErrInstructionCounterOutOfBounds = errors.New(f("instruction counter out of bounds"))
	ErrOutput                        = errors.New(f("output failed"))
)

// ErrNumberOutOfRange is an accumulator result outside of [-500, 499].
type ErrNumberOutOfRange int

func (err ErrNumberOutOfRange) Error() string {
	return f("number %d out of range", int(err))
}

// ErrInvalidInstruction is a fetched word that decodes to no instruction.
type ErrInvalidInstruction = isa.ErrInvalidWord
