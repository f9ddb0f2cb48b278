package isa

import (
	"github.com/ezrec/littleman/translate"
)

var f = translate.From

// ErrIndexOutOfRange is a mailbox or branch target that does not fit
// in two decimal digits.
type ErrIndexOutOfRange int

func (err ErrIndexOutOfRange) Error() string {
	return f("index %d out of range", int(err))
}

// ErrInvalidWord is a word outside of every instruction band.
type ErrInvalidWord Word

func (err ErrInvalidWord) Error() string {
	return f("invalid instruction %d", int(err))
}
