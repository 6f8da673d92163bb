// Package dice provides the core randomness abstraction for the arena
// battle and tournament engine.
package dice

import (
	"crypto/rand"
	"math/big"
)

// Source is the randomness provider for the engine. All damage variance,
// seed shuffling, and match simulation draws flow through a Source so tests
// can substitute a deterministic implementation.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
}

// float64Bits is the resolution used to synthesise Float64 draws from Intn.
const float64Bits = 1 << 53

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are cryptographically secure and uniformly
// distributed over the requested range.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n); every value
// returned by Float64 is in [0.0, 1.0).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// Float64 returns a cryptographically secure random float64 in [0.0, 1.0).
func (c *cryptoSource) Float64() float64 {
	return float64(c.Intn(float64Bits)) / float64Bits
}

// Shuffle reorders items in place using a Fisher–Yates shuffle driven by src.
//
// Precondition: src must be non-nil.
// Postcondition: items holds the same elements in a permuted order.
func Shuffle[T any](items []T, src Source) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
