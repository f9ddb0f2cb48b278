// Package asm implements the tokenizer and assembler for Little Man
// Computer source text.
//
// Source is line oriented. A ';' starts a comment that runs to the end of
// the line. Each remaining line is either a label, written as '.' followed
// by its name, or a mnemonic followed by comma separated operands:
//
//	.loop
//	    read          ; mailbox operands are 0-99
//	    bz done
//	    sto $(3 * 4)  ; compile-time expression
//	    b loop
//	.done
//	    stop
//
// A label names the instruction that immediately follows it. Assembly
// resolves labels in a separate pass, so branches may refer forward.
package asm
