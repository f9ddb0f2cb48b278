package io

import (
	"io"
	"iter"

	"github.com/ezrec/littleman/isa"
)

// AppendWord appends a word as two bytes, LSB first.
func AppendWord(data []byte, word isa.Word) []byte {
	value := uint16(word)
	return append(data, uint8(value&0xff), uint8(value>>8))
}

// Words returns an iterator over the words of an image, LSB first.
// A trailing odd byte is not yielded.
func Words(data []byte) iter.Seq[isa.Word] {
	return func(yield func(word isa.Word) bool) {
		for n := 0; n+1 < len(data); n += 2 {
			value := uint16(data[n]) | (uint16(data[n+1]) << 8)
			if !yield(isa.Word(int16(value))) {
				return
			}
		}
	}
}

// WriteWords writes a load image.
func WriteWords(w io.Writer, words []isa.Word) (err error) {
	data := make([]byte, 0, len(words)*2)
	for _, word := range words {
		data = AppendWord(data, word)
	}

	_, err = w.Write(data)
	return
}

// ReadWords reads a load image to the end of the stream.
func ReadWords(r io.Reader) (words []isa.Word, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	if len(data)%2 != 0 {
		err = ErrImageTruncated
		return
	}

	words = make([]isa.Word, 0, len(data)/2)
	for word := range Words(data) {
		words = append(words, word)
	}

	return
}
