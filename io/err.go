package io

import (
	"errors"

	"github.com/ezrec/littleman/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageTruncated = errors.New(f("image truncated"))
)

// ErrParseValue is a tape input that is not a 16-bit integer.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value", string(err))
}

// ErrParseExpression is an input expression that is not a list of integers.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("%v is not a valid input expression", string(err))
}
