package vm

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/littleman/isa"
)

const (
	ACC_MIN = -500 // Smallest accumulator value.
	ACC_MAX = 499  // Largest accumulator value.
)

// Config is the machine configuration, assembled before execution begins.
type Config struct {
	Program []isa.Word // Load image.
	Offset  int        // First mailbox of the load image.
	Input   []int16    // Input values, consumed in order. Nil for no input.
	Output  Output     // Observer of printed values. May be nil.
	Verbose bool       // If set, logs every executed instruction.
}

// Machine is the simulation context of a single Little Man Computer.
type Machine struct {
	Verbose bool   // Set to enable verbose logging.
	Output  Output // Receives printed values.

	Mailbox  [isa.MAILBOXES]isa.Word // Memory image.
	Acc      int16                   // Accumulator.
	Ic       int                     // Instruction counter.
	Zero     bool                    // Zero flag.
	Positive bool                    // Positive (non-negative) flag.

	Ticks int // Executed instruction counter.

	input  []int16 // Pending input, next value first.
	output *int16  // Print register.
}

// New creates a machine from a configuration.
func New(config Config) (m *Machine, err error) {
	m = &Machine{
		Verbose: config.Verbose,
		Output:  config.Output,
	}
	m.Reset()

	err = m.Load(config.Program, config.Offset)
	if err != nil {
		m = nil
		return
	}

	if config.Input != nil {
		m.Feed(config.Input...)
	}

	return
}

// Reset the machine state.
// - Clears the mailboxes and the accumulator.
// - Sets the instruction counter to 0.
// - Sets the zero and positive flags.
// - Drops pending input.
func (m *Machine) Reset() {
	clear(m.Mailbox[:])
	m.Acc = 0
	m.Ic = 0
	m.Zero = true
	m.Positive = true
	m.Ticks = 0
	m.input = nil
	m.output = nil
}

// Load copies program into the mailboxes starting at mailbox at.
// The last mailbox is never part of a load image.
func (m *Machine) Load(program []isa.Word, at int) (err error) {
	if at < 0 || at+len(program) > isa.SLOT_MAX {
		err = ErrProgramDoesNotFit
		return
	}

	copy(m.Mailbox[at:], program)

	return
}

// Feed queues input values after any already pending, followed by a
// single 0.
func (m *Machine) Feed(values ...int16) {
	m.input = append(m.input, values...)
	m.input = append(m.input, 0)
}

// Pending returns a copy of the input values not yet read.
func (m *Machine) Pending() []int16 {
	return slices.Clone(m.input)
}

// String returns the current machine state as a string.
func (m *Machine) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "   ic: %02d\n", m.Ic)
	fmt.Fprintf(&sb, "  acc: %+04d\n", m.Acc)
	fmt.Fprintf(&sb, "flags: zero=%v positive=%v\n", m.Zero, m.Positive)
	for row := 0; row < isa.MAILBOXES; row += 10 {
		fmt.Fprintf(&sb, "   %02d:", row)
		for _, word := range m.Mailbox[row : row+10] {
			fmt.Fprintf(&sb, " %+04d", word)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Step executes a single instruction. Halted is true when the
// instruction was stop.
func (m *Machine) Step() (halted bool, err error) {
	if m.Ic < 0 || m.Ic > isa.SLOT_MAX {
		err = ErrInstructionCounterOutOfBounds
		return
	}

	word := m.Mailbox[m.Ic]
	if m.Verbose {
		log.Printf("%02d: %03d %v", m.Ic, word, word)
	}
	m.Ic++
	m.Ticks++

	op, slot, err := word.Decode()
	if err != nil {
		return
	}

	switch op {
	case isa.OP_STOP:
		halted = true
		return
	case isa.OP_ADD:
		err = m.setAcc(int(m.Acc) + int(m.Mailbox[slot]))
	case isa.OP_SUB:
		err = m.setAcc(int(m.Acc) - int(m.Mailbox[slot]))
	case isa.OP_STO:
		m.Mailbox[slot] = isa.Word(m.Acc)
	case isa.OP_STA:
		// Only the low two decimal digits, for branch target patching.
		m.Mailbox[slot] = isa.Word(m.Acc % 100)
	case isa.OP_LOAD:
		err = m.setAcc(int(m.Mailbox[slot]))
	case isa.OP_B:
		m.Ic = slot
	case isa.OP_BZ:
		if m.Zero {
			m.Ic = slot
		}
	case isa.OP_BP:
		if m.Positive {
			m.Ic = slot
		}
	case isa.OP_READ:
		if len(m.input) > 0 {
			value := m.input[0]
			m.input = m.input[1:]
			err = m.setAcc(int(value))
		}
	case isa.OP_PRINT:
		value := m.Acc
		m.output = &value
	}
	if err != nil {
		return
	}

	if m.output != nil {
		value := *m.output
		m.output = nil
		if m.Output != nil {
			if emit_err := m.Output.Emit(value); emit_err != nil {
				err = errors.Join(ErrOutput, emit_err)
			}
		}
	}

	return
}

// Run steps until the machine halts or fails.
func (m *Machine) Run() (err error) {
	for halted := false; !halted; {
		halted, err = m.Step()
		if err != nil {
			return
		}
	}

	return
}

// setAcc range checks value, then writes it to the accumulator and
// refreshes the flags. An out of range value leaves the state unchanged.
func (m *Machine) setAcc(value int) (err error) {
	if value < ACC_MIN || value > ACC_MAX {
		err = ErrNumberOutOfRange(value)
		return
	}

	m.Acc = int16(value)
	m.Zero = m.Acc == 0
	m.Positive = m.Acc >= 0

	return
}
