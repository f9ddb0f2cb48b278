// Package vm implements the Little Man Computer virtual machine.
//
// The machine has 100 mailboxes of signed 16-bit words, an accumulator
// limited to [-500, 499], an instruction counter, and zero and positive
// flags refreshed after every accumulator write. Execution proceeds one
// instruction per call to Step; the caller decides when to stop calling.
package vm
