package asm

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/littleman/isa"
)

const (
	COMMENT_CHAR = ';' // Starts a comment to end of line.
	LABEL_CHAR   = '.' // Prefixes a label name.
)

// Tokenize splits source text into tokens, in source order. Blank and
// comment-only lines produce no token, but still count for line numbers.
// Mnemonics and label names are case-folded.
func (asm *Assembler) Tokenize(input io.Reader) (tokens []Token, err error) {
	reader := bufio.NewReader(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for {
		text, read_err := reader.ReadString('\n')
		if read_err != nil && read_err != io.EOF {
			lineno += 1
			line = strings.TrimSpace(text)
			err = read_err
			return
		}
		if len(text) == 0 {
			break
		}
		text = strings.TrimRight(text, "\r\n")
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		code, _, _ := strings.Cut(text, string(COMMENT_CHAR))
		line = strings.TrimSpace(code)
		if len(line) == 0 {
			continue
		}

		var tok Token
		var ok bool
		tok, ok, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
		if ok {
			tokens = append(tokens, tok)
		}
	}

	return
}

// parseLine parses a single non-blank line. An empty label yields no token.
func (asm *Assembler) parseLine(line string, lineno int) (tok Token, ok bool, err error) {
	mnemonic, rest := line, ""
	if n := strings.IndexFunc(line, unicode.IsSpace); n >= 0 {
		mnemonic, rest = line[:n], line[n:]
	}
	operands := splitOperands(rest)

	if mnemonic[0] == LABEL_CHAR {
		if len(operands) != 0 {
			err = ErrInvalidInstruction
			return
		}
		name := strings.ToLower(mnemonic[1:])
		if len(name) == 0 {
			return
		}
		tok, ok = MakeLabel(lineno, name), true
		return
	}

	op, found := isa.Lookup(strings.ToLower(mnemonic))
	if !found || len(operands) != op.Operands() {
		err = ErrInvalidInstruction
		return
	}

	in := isa.Instruction{Op: op}
	switch {
	case op.IsBranch():
		in.Label = strings.ToLower(operands[0])
	case op.HasSlot():
		in.Slot, err = parseSlot(operands[0])
		if err != nil {
			return
		}
	}

	tok, ok = MakeInstruction(lineno, in), true
	return
}

// splitOperands splits on commas outside of parentheses, trims each field,
// and drops empty fields.
func splitOperands(rest string) (operands []string) {
	var depth int
	var start int
	emit := func(end int) {
		field := strings.TrimSpace(rest[start:end])
		if len(field) > 0 {
			operands = append(operands, field)
		}
		start = end + 1
	}

	for n, r := range rest {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				emit(n)
			}
		}
	}
	emit(len(rest))

	return
}

// parseSlot parses a mailbox operand as an 8-bit unsigned number. Range
// checking against the mailbox count is left to the assembler.
func parseSlot(word string) (slot uint8, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		var value int64
		value, err = parenEval(word[2 : len(word)-1])
		if err != nil {
			return
		}
		if value < 0 || value > 0xff {
			err = ErrParseNumber(word)
			return
		}
		slot = uint8(value)
		return
	}

	v64, err := strconv.ParseUint(word, 10, 8)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	slot = uint8(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}
