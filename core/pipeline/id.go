package pipeline

import (
	"crypto/rand"
	"math/big"
)

// idLetterAlphabet is the character set the row ID's first character is
// drawn from (§3: "first is a lowercase letter").
const idLetterAlphabet = "abcdefghijklmnopqrstuvwxyz"

// idAlphabet is the character set the row ID's remaining characters are
// drawn from.
const idAlphabet = idLetterAlphabet + "0123456789"

// IDGenerator draws uniformly random 4-character ids and retries on
// collision (§4.H: "uniform random draws until a fresh id is produced;
// expected <1.01 draws at typical corpus sizes").
type IDGenerator struct {
	seen map[string]bool
}

// NewIDGenerator returns an empty generator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{seen: make(map[string]bool)}
}

// Next draws a fresh 4-character id, retrying on collision against every
// id this generator has issued (§8 invariant 3: ID uniqueness across the
// whole output).
func (g *IDGenerator) Next() (string, error) {
	for {
		id, err := randomID(4)
		if err != nil {
			return "", err
		}
		if !g.seen[id] {
			g.seen[id] = true
			return id, nil
		}
	}
}

func randomID(n int) (string, error) {
	buf := make([]byte, n)
	letterMax := big.NewInt(int64(len(idLetterAlphabet)))
	alnumMax := big.NewInt(int64(len(idAlphabet)))
	for i := range buf {
		alphabet, max := idAlphabet, alnumMax
		if i == 0 {
			alphabet, max = idLetterAlphabet, letterMax
		}
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}
