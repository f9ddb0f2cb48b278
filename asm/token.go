package asm

import (
	"fmt"

	"github.com/ezrec/littleman/isa"
)

// TokenKind separates instructions from labels.
type TokenKind int

const (
	TOKEN_INSTRUCTION = TokenKind(0)
	TOKEN_LABEL       = TokenKind(1)
)

// Token is one tokenized source line.
type Token struct {
	LineNo      int             // 1-based source line.
	Kind        TokenKind       // Instruction or label.
	Instruction isa.Instruction // Set for TOKEN_INSTRUCTION.
	Label       string          // Set for TOKEN_LABEL.
}

// MakeInstruction creates an instruction token.
func MakeInstruction(lineno int, in isa.Instruction) Token {
	return Token{LineNo: lineno, Kind: TOKEN_INSTRUCTION, Instruction: in}
}

// MakeLabel creates a label token.
func MakeLabel(lineno int, name string) Token {
	return Token{LineNo: lineno, Kind: TOKEN_LABEL, Label: name}
}

func (tok Token) String() string {
	if tok.Kind == TOKEN_LABEL {
		return fmt.Sprintf("%d: %c%v", tok.LineNo, LABEL_CHAR, tok.Label)
	}
	return fmt.Sprintf("%d: %v", tok.LineNo, tok.Instruction)
}
