package rng

import (
	"crypto/hmac"
	cryptorand "crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
	"time"
)

// SeedManager holds the server seed used by the provably-fair source and the
// sha256 commitment published to clients before any round is played. The seed
// rotates daily; the previous seed can then be disclosed for verification.
type SeedManager struct {
	mu        sync.Mutex
	seed      string
	hash      string
	prev      string
	rotatedAt time.Time
}

func NewSeedManager() *SeedManager {
	m := &SeedManager{}
	m.rotate()
	return m
}

func (m *SeedManager) rotate() {
	m.prev = m.seed
	m.seed = randomSeed()
	sum := sha256.Sum256([]byte(m.seed))
	m.hash = hex.EncodeToString(sum[:])
	m.rotatedAt = time.Now()
}

func randomSeed() string {
	var buf [32]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(buf[:])
}

// MaybeRotate swaps in a fresh seed once the current one is older than 24h.
func (m *SeedManager) MaybeRotate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if time.Since(m.rotatedAt).Hours() > 24 {
		m.rotate()
	}
}

// Commitment returns the sha256 hex of the current server seed.
func (m *SeedManager) Commitment() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hash
}

// Seed returns the current server seed. Handed to NewFair, never to clients
// while the seed is live.
func (m *SeedManager) Seed() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seed
}

// PreviousSeed returns the last rotated-out seed for client verification.
func (m *SeedManager) PreviousSeed() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prev
}

type fairSource struct {
	mu         sync.Mutex
	serverSeed string
	clientSeed string
	nonce      int
}

// NewFair returns a source whose draws are derived from
// HMAC-SHA256(serverSeed, clientSeed:nonce), one nonce per draw. Each draw is
// reproducible once the server seed is disclosed.
func NewFair(serverSeed, clientSeed string) Source {
	return &fairSource{serverSeed: serverSeed, clientSeed: clientSeed}
}

func (f *fairSource) Float64() float64 {
	f.mu.Lock()
	nonce := f.nonce
	f.nonce++
	f.mu.Unlock()
	return fairFloat(f.serverSeed, f.clientSeed, nonce)
}

func (f *fairSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(f.Float64() * float64(n))
}

func fairFloat(serverSeed, clientSeed string, nonce int) float64 {
	h := hmac.New(sha256.New, []byte(serverSeed))
	h.Write([]byte(clientSeed + ":" + strconv.Itoa(nonce)))
	digest := hex.EncodeToString(h.Sum(nil))
	num, _ := strconv.ParseUint(digest[:8], 16, 64)
	return float64(num) / float64(1<<32)
}
