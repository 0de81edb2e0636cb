// Package base58 encodes byte sequences as base58 text.
//
// The input is treated as a single unsigned big-endian number and repeatedly
// divided by 58; each remainder selects one symbol of Alphabet. Leading zero
// bytes get no separate '1' prefix pass: they only contribute the symbols the
// division loop itself produces, so the output can differ from Bitcoin-style
// encoders for inputs such as {0x00, 0xff}.
package base58

import (
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/opal-lang/base58/core/invariant"
)

// EncodedLen returns the capacity reserved for the encoding of n bytes.
// log(256)/log(58) is just under 1.37, so n*138/100 + 1 covers the output.
func EncodedLen(n int) int {
	if n == 0 {
		return 0
	}
	return n*138/100 + 1
}

// Encode returns the base58 encoding of src.
// src is not modified. Encoding an empty slice yields "".
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	buf := make([]byte, len(src))
	copy(buf, src)

	out := make([]byte, 0, EncodedLen(len(src)))

	// Every byte before cursor is zero and stays zero: dividing never
	// increases a digit that has already reached zero.
	cursor := 0
	for cursor < len(buf) {
		if cursor > 0 {
			invariant.Invariant(buf[cursor-1] == 0, "byte before cursor %d must stay zero", cursor)
		}

		remainder := divideBy58(buf, cursor)
		invariant.Invariant(remainder < uint16(radix), "remainder %d out of range", remainder)
		out = append(out, symbol(remainder))

		if buf[cursor] == 0 {
			cursor++
		}
	}

	// Digits were produced least significant first.
	slices.Reverse(out)

	invariant.Postcondition(utf8.Valid(out), "base58 output must be valid UTF-8")
	return string(out)
}

// EncodeString returns the base58 encoding of the bytes of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// EncodeReader reads r to EOF and returns the base58 encoding of its content.
// The only error returned is the one reported by r.
func EncodeReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return Encode(data), nil
}
