package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tape provides the sequential input and output of a machine.
// Input is read as integers separated by spaces, commas or newlines.
// Every printed value is written to Output as one line.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

// Values reads all of the input values.
func (tc *Tape) Values() (values []int16, err error) {
	if tc.Input == nil {
		return
	}

	scanner := bufio.NewScanner(tc.Input)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		for _, word := range strings.Split(scanner.Text(), ",") {
			if len(word) == 0 {
				continue
			}
			var v64 int64
			v64, err = strconv.ParseInt(word, 0, 16)
			if err != nil {
				err = ErrParseValue(word)
				return
			}
			values = append(values, int16(v64))
		}
	}

	err = scanner.Err()
	return
}

// Emit writes a printed value to the output.
func (tc *Tape) Emit(value int16) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "OUTPUT: %d\n", value)
	return
}
