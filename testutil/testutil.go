package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Word returns a random word from a fixed synthetic vocabulary of the
// given size. Word i is drawn with probability proportional to 1/(i+1),
// giving the skewed frequency distribution real text has.
func (r *RNG) Word(vocabSize int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return word(r.zipf(vocabSize))
}

// Document returns a random document of approximately n words.
func (r *RNG) Document(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	words := make([]string, n)
	for i := range words {
		words[i] = word(r.zipf(512))
	}

	return strings.Join(words, " ")
}

// Documents returns num random documents of approximately wordsPerDoc
// words each.
func (r *RNG) Documents(num, wordsPerDoc int) []string {
	docs := make([]string, num)
	for i := range docs {
		docs[i] = r.Document(wordsPerDoc)
	}

	return docs
}

// zipf picks a vocabulary index with probability proportional to 1/(i+1).
// Callers must hold r.mu.
func (r *RNG) zipf(vocabSize int) int {
	// Rejection-free inverse-ish sampling over the harmonic weights;
	// precision does not matter for test data.
	total := 0.0
	for i := range vocabSize {
		total += 1.0 / float64(i+1)
	}

	target := r.rand.Float64() * total
	for i := range vocabSize {
		target -= 1.0 / float64(i+1)
		if target <= 0 {
			return i
		}
	}

	return vocabSize - 1
}

// word spells vocabulary index i as a lowercase pseudo-word.
func word(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"

	var sb strings.Builder
	for {
		sb.WriteByte(letters[i%len(letters)])
		i /= len(letters)
		if i == 0 {
			break
		}
		i--
	}

	return "t" + sb.String()
}
