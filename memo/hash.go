package memo

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Pair is the index of a bivariate recurrence.
type Pair struct {
	N, K int
}

// HashInt hashes a univariate index.
func HashInt(n int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	return xxhash.Sum64(buf[:])
}

// HashPair hashes a bivariate index.
func HashPair(p Pair) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(p.N))
	binary.LittleEndian.PutUint64(buf[8:], uint64(p.K))
	return xxhash.Sum64(buf[:])
}
