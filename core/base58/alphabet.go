package base58

import "github.com/opal-lang/base58/core/invariant"

// Alphabet is the Bitcoin-style base58 alphabet (no 0/O/I/l ambiguity).
// The symbol for digit d is Alphabet[d].
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// radix is the number of symbols in Alphabet.
const radix = len(Alphabet)

// symbol returns the alphabet character for a digit in [0, 57].
func symbol(digit uint16) byte {
	invariant.InRange(int(digit), 0, radix-1, "base58 digit")
	return Alphabet[digit]
}

// indexOf returns the digit value of c, or false if c is not in Alphabet.
func indexOf(c byte) (int, bool) {
	for i := 0; i < radix; i++ {
		if Alphabet[i] == c {
			return i, true
		}
	}
	return -1, false
}

// IsAlphabet reports whether every byte of s is a base58 symbol.
// The empty string is trivially valid.
func IsAlphabet(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := indexOf(s[i]); !ok {
			return false
		}
	}
	return true
}
