package emulator

import (
	"errors"

	"github.com/ezrec/littleman/translate"
)

var f = translate.From

var (
	ErrNotReset = errors.New(f("emulator not reset"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int // Source line, 0 if there is no listing for the slot.
	Slot   int // Mailbox of the failing instruction.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("slot %d %v", err.Slot, err.Err)
	}
	return f("line %d slot %d %v", err.LineNo, err.Slot, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
