package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"
)

// Source is the single randomness contract the game resolvers depend on.
// Float64 returns a uniform value in [0,1); IntN a uniform int in [0,n).
type Source interface {
	Float64() float64
	IntN(n int) int
}

type cryptoSource struct {
	r io.Reader
}

// Crypto returns the default source, backed by crypto/rand. Outcomes carry
// stakes, so unpredictability is the default even though the resolvers only
// require uniformity.
func Crypto() Source { return cryptoSource{r: cryptorand.Reader} }

// Float64 panics if the entropy source fails: a predictable draw with money
// on the line is worse than a dead request.
func (s cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		panic("rng: entropy source unavailable: " + err.Error())
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func (s cryptoSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Float64() * float64(n))
}

type seededSource struct {
	r *rand.Rand
}

// NewSeeded returns a deterministic source for tests and replay.
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }

func (s *seededSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}
