package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapeValues(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("7 -3\n12,13, 0x10\n\n  -500")}
	values, err := tape.Values()
	assert.NoError(err)
	assert.Equal([]int16{7, -3, 12, 13, 16, -500}, values)

	tape = &Tape{}
	values, err = tape.Values()
	assert.NoError(err)
	assert.Nil(values)

	tape = &Tape{Input: strings.NewReader("1 two 3")}
	_, err = tape.Values()
	assert.Equal(ErrParseValue("two"), err)

	tape = &Tape{Input: strings.NewReader("40000")}
	_, err = tape.Values()
	assert.Equal(ErrParseValue("40000"), err)
}

func TestTapeEmit(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Emit(42))
	assert.NoError(tape.Emit(-7))
	assert.Equal("OUTPUT: 42\nOUTPUT: -7\n", output.String())

	tape = &Tape{}
	assert.NoError(tape.Emit(1))
}

func TestParseValues(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr   string
		values []int16
	}){
		{"[7, -3]", []int16{7, -3}},
		{"(1, 2, 3)", []int16{1, 2, 3}},
		{"range(3)", []int16{0, 1, 2}},
		{"42", []int16{42}},
		{"[x * 2 for x in range(3)]", []int16{0, 2, 4}},
		{"[]", nil},
	}

	for _, entry := range table {
		values, err := ParseValues(entry.expr)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.values, values, entry.expr)
	}

	for _, expr := range []string{"\"abc\"", "[1, \"a\"]", "[40000]", "[1,", "None"} {
		_, err := ParseValues(expr)
		assert.Equal(ErrParseExpression(expr), err, expr)
	}
}
