package io

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/littleman/isa"
)

func TestWriteWords(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	err := WriteWords(buf, []isa.Word{0, 901, 902, 0x1234, -1, -500})
	assert.NoError(err)

	expected := []byte{
		0x00, 0x00,
		0x85, 0x03,
		0x86, 0x03,
		0x34, 0x12,
		0xff, 0xff,
		0x0c, 0xfe,
	}
	assert.Equal(expected, buf.Bytes())
}

func TestReadWords(t *testing.T) {
	assert := assert.New(t)

	words, err := ReadWords(bytes.NewReader([]byte{0x85, 0x03, 0x0c, 0xfe, 0x65, 0x00}))
	assert.NoError(err)
	assert.Equal([]isa.Word{901, -500, 101}, words)

	words, err = ReadWords(bytes.NewReader(nil))
	assert.NoError(err)
	assert.Empty(words)

	_, err = ReadWords(bytes.NewReader([]byte{0x85, 0x03, 0x01}))
	assert.ErrorIs(err, ErrImageTruncated)

	broken := errors.New("broken")
	_, err = ReadWords(iotest.ErrReader(broken))
	assert.ErrorIs(err, broken)
}

func TestWordsRoundTrip(t *testing.T) {
	assert := assert.New(t)

	var words []isa.Word
	for value := -0x8000; value <= 0x7fff; value += 97 {
		words = append(words, isa.Word(value))
	}

	buf := &bytes.Buffer{}
	assert.NoError(WriteWords(buf, words))
	assert.Equal(len(words)*2, buf.Len())

	again, err := ReadWords(buf)
	assert.NoError(err)
	assert.Equal(words, again)
}

func TestWordsIterator(t *testing.T) {
	assert := assert.New(t)

	var words []isa.Word
	for word := range Words([]byte{1, 0, 2, 0, 3}) {
		words = append(words, word)
		if word == 2 {
			break
		}
	}
	assert.Equal([]isa.Word{1, 2}, words)
}
