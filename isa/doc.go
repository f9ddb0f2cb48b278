// Package isa defines the instruction set of the Little Man Computer.
//
// Every instruction is encoded as a single signed 16-bit word of the form
// base*100 + slot, where the hundreds digit selects the instruction family
// and the low two decimal digits address one of the 100 mailboxes. The
// fixed words 0, 901 and 902 encode stop, read and print.
//
// Decoding classifies a word by its 100-wide band; words outside of the
// defined bands are invalid.
package isa
