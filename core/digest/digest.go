// Package digest hashes input before it is base58 encoded.
//
// Base58 is mostly used to render fixed-size digests (content identifiers,
// display IDs), so the CLI can hash its input with one of the algorithms
// below and encode the digest instead of the raw bytes.
package digest

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// None leaves the input unchanged.
const None = "none"

var algorithms = map[string]func() hash.Hash{
	"sha256":      sha256.New,
	"sha3-256":    sha3.New256,
	"blake2b-256": newBlake2b256,
	"blake2s-256": newBlake2s256,
}

// Unkeyed constructors only fail for an oversized key.
func newBlake2b256() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("failed to create BLAKE2b hasher: %v", err))
	}
	return h
}

func newBlake2s256() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("failed to create BLAKE2s hasher: %v", err))
	}
	return h
}

// UnknownError is returned for an algorithm name that is not supported.
type UnknownError struct {
	Name       string
	Suggestion string // closest supported name, empty if nothing is close
}

func (e *UnknownError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown digest %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown digest %q", e.Name)
}

// Names returns the supported algorithm names, sorted, including None.
func Names() []string {
	names := make([]string, 0, len(algorithms)+1)
	names = append(names, None)
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sum hashes data with the named algorithm. For None it returns a copy of data.
func Sum(name string, data []byte) ([]byte, error) {
	if name == None {
		return append([]byte(nil), data...), nil
	}

	newHash, ok := algorithms[name]
	if !ok {
		return nil, &UnknownError{Name: name, Suggestion: suggest(name)}
	}

	h := newHash()
	h.Write(data)
	return h.Sum(nil), nil
}

// suggest returns the supported name closest to target, or "".
func suggest(target string) string {
	ranks := fuzzy.RankFindFold(target, Names())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
