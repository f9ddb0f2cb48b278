package asm

import (
	"errors"

	"github.com/ezrec/littleman/isa"
	"github.com/ezrec/littleman/translate"
)

var f = translate.From

var (
	// Tokenizer errors
	ErrInvalidInstruction = errors.New(f("invalid instruction"))

	// Assembler errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
)

// ErrIndexOutOfRange is a mailbox operand or branch target beyond the
// last mailbox.
type ErrIndexOutOfRange = isa.ErrIndexOutOfRange

// ErrParseNumber is an operand that is not an 8-bit unsigned number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is a $(...) operand that did not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrLabelDoesNotExist is a branch to a label that is never defined.
type ErrLabelDoesNotExist string

func (err ErrLabelDoesNotExist) Error() string {
	return f("label %v does not exist", string(err))
}

// ErrSyntax locates a tokenizer error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrAssembly locates an assembler error.
type ErrAssembly struct {
	LineNo int
	Slot   int
	Err    error
}

func (err *ErrAssembly) Error() string {
	return f("line %d slot %d %v", err.LineNo, err.Slot, err.Err)
}

func (err *ErrAssembly) Unwrap() error {
	return err.Err
}
